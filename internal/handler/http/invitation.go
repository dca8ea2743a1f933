package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/shirayuki-snow/snowschool-backend-go/internal/domain/auth"
	"github.com/shirayuki-snow/snowschool-backend-go/internal/domain/invitation"
	"github.com/shirayuki-snow/snowschool-backend-go/internal/handler/http/middleware"
	"github.com/shirayuki-snow/snowschool-backend-go/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type InvitationHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Deactivate(w http.ResponseWriter, r *http.Request)
}

type InvitationHandlerImpl struct {
	tokenService invitation.TokenService
}

func NewInvitationHandler(tokenService invitation.TokenService) InvitationHandler {
	return &InvitationHandlerImpl{tokenService: tokenService}
}

// Create implements InvitationHandler.
func (h *InvitationHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	requesterID := middleware.UserIDFromContext(r)
	if requesterID == "" {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	var req invitation.CreateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create invitation decode error", "error", err)
		response.BadRequest(w, "Invalid request format")
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	expiresAt := req.ExpiresAtTime()
	created, err := h.tokenService.Create(r.Context(), invitation.CreateParams{
		CreatedBy:   requesterID,
		Description: req.Description,
		ExpiresAt:   &expiresAt,
	})
	if err != nil {
		slog.Error("Create invitation service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Invitation token created", "created_by", requesterID)
	response.WriteJSON(w, http.StatusCreated, created)
}

// List implements InvitationHandler.
func (h *InvitationHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	requesterID := middleware.UserIDFromContext(r)
	if requesterID == "" {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	items, err := h.tokenService.List(r.Context(), invitation.ListRequest{
		RequesterID:     requesterID,
		IncludeInactive: r.URL.Query().Get("includeInactive") == "true",
		ShowAll:         r.URL.Query().Get("showAll") == "true",
	})
	if err != nil {
		slog.Error("List invitations service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, items)
}

// Deactivate implements InvitationHandler.
func (h *InvitationHandlerImpl) Deactivate(w http.ResponseWriter, r *http.Request) {
	requesterID := middleware.UserIDFromContext(r)
	if requesterID == "" {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	token := chi.URLParam(r, "token")

	result, err := h.tokenService.Deactivate(r.Context(), token, requesterID)
	if err != nil {
		slog.Error("Deactivate invitation service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Invitation token deactivated", "deactivated_by", requesterID)
	response.WriteJSON(w, http.StatusOK, result)
}
