package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/shirayuki-snow/snowschool-backend-go/internal/domain/auth"
	"github.com/shirayuki-snow/snowschool-backend-go/internal/domain/shift"
	"github.com/shirayuki-snow/snowschool-backend-go/internal/handler/http/middleware"
	"github.com/shirayuki-snow/snowschool-backend-go/internal/handler/http/response"
	"github.com/shirayuki-snow/snowschool-backend-go/internal/pkg/validator"
	"github.com/go-chi/chi/v5"
)

type ShiftHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Assign(w http.ResponseWriter, r *http.Request)
	Unassign(w http.ResponseWriter, r *http.Request)
}

type ShiftHandlerImpl struct {
	shiftService shift.ShiftService
}

func NewShiftHandler(shiftService shift.ShiftService) ShiftHandler {
	return &ShiftHandlerImpl{shiftService: shiftService}
}

// Create implements ShiftHandler.
func (h *ShiftHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req shift.CreateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format")
		return
	}

	created, err := h.shiftService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, created)
}

// List implements ShiftHandler. Defaults to the current week when no
// range is given.
func (h *ShiftHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	from := now.AddDate(0, 0, -int(now.Weekday()))
	to := from.AddDate(0, 0, 6)

	if v := r.URL.Query().Get("from"); v != "" {
		parsed, ok := validator.IsValidDate(v)
		if !ok {
			response.BadRequest(w, "from must be in YYYY-MM-DD format")
			return
		}
		from = parsed
	}
	if v := r.URL.Query().Get("to"); v != "" {
		parsed, ok := validator.IsValidDate(v)
		if !ok {
			response.BadRequest(w, "to must be in YYYY-MM-DD format")
			return
		}
		to = parsed
	}
	if to.Before(from) {
		response.BadRequest(w, "to must not be before from")
		return
	}

	shifts, err := h.shiftService.List(r.Context(), shift.ListShiftsRequest{
		From:         from,
		To:           to,
		DepartmentID: r.URL.Query().Get("departmentId"),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessList(w, shifts, len(shifts))
}

// Get implements ShiftHandler.
func (h *ShiftHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	sh, err := h.shiftService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, sh)
}

// Update implements ShiftHandler.
func (h *ShiftHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req shift.UpdateShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format")
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.shiftService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, updated)
}

// Delete implements ShiftHandler.
func (h *ShiftHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.shiftService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Shift deleted", nil)
}

// Assign implements ShiftHandler.
func (h *ShiftHandlerImpl) Assign(w http.ResponseWriter, r *http.Request) {
	requesterID := middleware.UserIDFromContext(r)
	if requesterID == "" {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var req shift.AssignRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format")
		return
	}
	req.ShiftID = chi.URLParam(r, "id")
	req.AssignedBy = requesterID

	updated, err := h.shiftService.Assign(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, updated)
}

// Unassign implements ShiftHandler.
func (h *ShiftHandlerImpl) Unassign(w http.ResponseWriter, r *http.Request) {
	err := h.shiftService.Unassign(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "instructorId"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Assignment removed", nil)
}
