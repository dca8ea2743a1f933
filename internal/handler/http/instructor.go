package http

import (
	"encoding/json"
	"net/http"

	"github.com/shirayuki-snow/snowschool-backend-go/internal/domain/instructor"
	"github.com/shirayuki-snow/snowschool-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type InstructorHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	LinkUser(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
}

type InstructorHandlerImpl struct {
	instructorService instructor.InstructorService
}

func NewInstructorHandler(instructorService instructor.InstructorService) InstructorHandler {
	return &InstructorHandlerImpl{instructorService: instructorService}
}

// Create implements InstructorHandler.
func (h *InstructorHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req instructor.CreateInstructorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format")
		return
	}

	created, err := h.instructorService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, created)
}

// List implements InstructorHandler.
func (h *InstructorHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	instructors, err := h.instructorService.List(r.Context(), instructor.ListInstructorsRequest{
		DepartmentID:    r.URL.Query().Get("departmentId"),
		IncludeInactive: r.URL.Query().Get("includeInactive") == "true",
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessList(w, instructors, len(instructors))
}

// Get implements InstructorHandler.
func (h *InstructorHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	ins, err := h.instructorService.GetByID(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, ins)
}

// Update implements InstructorHandler.
func (h *InstructorHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req instructor.UpdateInstructorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format")
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.instructorService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, updated)
}

// LinkUser implements InstructorHandler.
func (h *InstructorHandlerImpl) LinkUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format")
		return
	}
	if req.UserID == "" {
		response.BadRequest(w, "userId is required")
		return
	}

	if err := h.instructorService.LinkUser(r.Context(), chi.URLParam(r, "id"), req.UserID); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Instructor linked to user", nil)
}

// Delete implements InstructorHandler.
func (h *InstructorHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.instructorService.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Instructor deleted", nil)
}
