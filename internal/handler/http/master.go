package http

import (
	"encoding/json"
	"net/http"

	"github.com/shirayuki-snow/snowschool-backend-go/internal/domain/master/certification"
	"github.com/shirayuki-snow/snowschool-backend-go/internal/domain/master/department"
	"github.com/shirayuki-snow/snowschool-backend-go/internal/domain/master/shifttype"
	"github.com/shirayuki-snow/snowschool-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

// MasterHandler serves the department, certification and shift type
// master data endpoints.
type MasterHandler interface {
	CreateDepartment(w http.ResponseWriter, r *http.Request)
	ListDepartments(w http.ResponseWriter, r *http.Request)
	GetDepartment(w http.ResponseWriter, r *http.Request)
	UpdateDepartment(w http.ResponseWriter, r *http.Request)
	DeleteDepartment(w http.ResponseWriter, r *http.Request)

	CreateCertification(w http.ResponseWriter, r *http.Request)
	ListCertifications(w http.ResponseWriter, r *http.Request)
	GetCertification(w http.ResponseWriter, r *http.Request)
	UpdateCertification(w http.ResponseWriter, r *http.Request)
	DeleteCertification(w http.ResponseWriter, r *http.Request)

	CreateShiftType(w http.ResponseWriter, r *http.Request)
	ListShiftTypes(w http.ResponseWriter, r *http.Request)
	GetShiftType(w http.ResponseWriter, r *http.Request)
	UpdateShiftType(w http.ResponseWriter, r *http.Request)
	DeleteShiftType(w http.ResponseWriter, r *http.Request)
}

type MasterHandlerImpl struct {
	departmentService    department.DepartmentService
	certificationService certification.CertificationService
	shiftTypeService     shifttype.ShiftTypeService
}

func NewMasterHandler(
	departmentService department.DepartmentService,
	certificationService certification.CertificationService,
	shiftTypeService shifttype.ShiftTypeService,
) MasterHandler {
	return &MasterHandlerImpl{
		departmentService:    departmentService,
		certificationService: certificationService,
		shiftTypeService:     shiftTypeService,
	}
}

// CreateDepartment implements MasterHandler.
func (h *MasterHandlerImpl) CreateDepartment(w http.ResponseWriter, r *http.Request) {
	var req department.CreateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format")
		return
	}

	created, err := h.departmentService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, created)
}

// ListDepartments implements MasterHandler.
func (h *MasterHandlerImpl) ListDepartments(w http.ResponseWriter, r *http.Request) {
	deps, err := h.departmentService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessList(w, deps, len(deps))
}

// GetDepartment implements MasterHandler.
func (h *MasterHandlerImpl) GetDepartment(w http.ResponseWriter, r *http.Request) {
	dep, err := h.departmentService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, dep)
}

// UpdateDepartment implements MasterHandler.
func (h *MasterHandlerImpl) UpdateDepartment(w http.ResponseWriter, r *http.Request) {
	var req department.UpdateDepartmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format")
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.departmentService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, updated)
}

// DeleteDepartment implements MasterHandler.
func (h *MasterHandlerImpl) DeleteDepartment(w http.ResponseWriter, r *http.Request) {
	if err := h.departmentService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Department deleted", nil)
}

// CreateCertification implements MasterHandler.
func (h *MasterHandlerImpl) CreateCertification(w http.ResponseWriter, r *http.Request) {
	var req certification.CreateCertificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format")
		return
	}

	created, err := h.certificationService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, created)
}

// ListCertifications implements MasterHandler.
func (h *MasterHandlerImpl) ListCertifications(w http.ResponseWriter, r *http.Request) {
	certs, err := h.certificationService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessList(w, certs, len(certs))
}

// GetCertification implements MasterHandler.
func (h *MasterHandlerImpl) GetCertification(w http.ResponseWriter, r *http.Request) {
	cert, err := h.certificationService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, cert)
}

// UpdateCertification implements MasterHandler.
func (h *MasterHandlerImpl) UpdateCertification(w http.ResponseWriter, r *http.Request) {
	var req certification.UpdateCertificationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format")
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.certificationService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, updated)
}

// DeleteCertification implements MasterHandler.
func (h *MasterHandlerImpl) DeleteCertification(w http.ResponseWriter, r *http.Request) {
	if err := h.certificationService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Certification deleted", nil)
}

// CreateShiftType implements MasterHandler.
func (h *MasterHandlerImpl) CreateShiftType(w http.ResponseWriter, r *http.Request) {
	var req shifttype.CreateShiftTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format")
		return
	}

	created, err := h.shiftTypeService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, created)
}

// ListShiftTypes implements MasterHandler.
func (h *MasterHandlerImpl) ListShiftTypes(w http.ResponseWriter, r *http.Request) {
	types, err := h.shiftTypeService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessList(w, types, len(types))
}

// GetShiftType implements MasterHandler.
func (h *MasterHandlerImpl) GetShiftType(w http.ResponseWriter, r *http.Request) {
	st, err := h.shiftTypeService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, st)
}

// UpdateShiftType implements MasterHandler.
func (h *MasterHandlerImpl) UpdateShiftType(w http.ResponseWriter, r *http.Request) {
	var req shifttype.UpdateShiftTypeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format")
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.shiftTypeService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, updated)
}

// DeleteShiftType implements MasterHandler.
func (h *MasterHandlerImpl) DeleteShiftType(w http.ResponseWriter, r *http.Request) {
	if err := h.shiftTypeService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Shift type deleted", nil)
}
