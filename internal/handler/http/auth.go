package http

import (
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/shirayuki-snow/snowschool-backend-go/internal/domain/auth"
	"github.com/shirayuki-snow/snowschool-backend-go/internal/domain/invitation"
	"github.com/shirayuki-snow/snowschool-backend-go/internal/domain/user"
	"github.com/shirayuki-snow/snowschool-backend-go/internal/handler/http/middleware"
	"github.com/shirayuki-snow/snowschool-backend-go/internal/handler/http/response"
	"github.com/shirayuki-snow/snowschool-backend-go/internal/pkg/jwt"
	"github.com/shirayuki-snow/snowschool-backend-go/internal/pkg/oauth"
)

type AuthHandler interface {
	LoginWithLine(w http.ResponseWriter, r *http.Request)
	OAuthCallbackLine(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	Me(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	jwtService  jwt.Service
	authService auth.AuthService
	lineService oauth.LineService
	frontendURL string
}

func NewAuthHandler(
	jwtService jwt.Service,
	authService auth.AuthService,
	lineService oauth.LineService,
	frontendURL string,
) AuthHandler {
	return &AuthHandlerImpl{
		jwtService:  jwtService,
		authService: authService,
		lineService: lineService,
		frontendURL: frontendURL,
	}
}

// oauthState rides through the OAuth round trip in the state cookie. The
// invite token travels here because LINE only echoes the state parameter
// back.
type oauthState struct {
	State    string `json:"state"`
	Invite   string `json:"invite,omitempty"`
	Redirect string `json:"redirect,omitempty"`
}

// safeRedirectPath keeps post-login redirects on the frontend origin. Only
// absolute paths are accepted.
func safeRedirectPath(p string) string {
	if p == "" || p[0] != '/' || strings.HasPrefix(p, "//") {
		return "/"
	}
	return p
}

func encodeState(s oauthState) string {
	b, _ := json.Marshal(s)
	return base64.RawURLEncoding.EncodeToString(b)
}

func decodeState(value string) (oauthState, error) {
	b, err := base64.RawURLEncoding.DecodeString(value)
	if err != nil {
		return oauthState{}, err
	}
	var s oauthState
	if err := json.Unmarshal(b, &s); err != nil {
		return oauthState{}, err
	}
	return s, nil
}

// LoginWithLine implements AuthHandler.
func (a *AuthHandlerImpl) LoginWithLine(w http.ResponseWriter, r *http.Request) {
	state := a.lineService.GenerateState()
	if state == "" {
		response.InternalServerError(w, "Failed to start login")
		return
	}

	stateValue := encodeState(oauthState{
		State:    state,
		Invite:   r.URL.Query().Get("invite"),
		Redirect: safeRedirectPath(r.URL.Query().Get("redirect")),
	})

	cookie := &http.Cookie{
		Name:     "state",
		Value:    stateValue,
		Path:     "/api/v1/auth/line",
		Expires:  time.Now().Add(5 * time.Minute),
		HttpOnly: true,
		Secure:   false,
		SameSite: http.SameSiteLaxMode,
	}
	http.SetCookie(w, cookie)

	http.Redirect(w, r, a.lineService.RedirectURL(state), http.StatusTemporaryRedirect)
}

// OAuthCallbackLine implements AuthHandler.
func (a *AuthHandlerImpl) OAuthCallbackLine(w http.ResponseWriter, r *http.Request) {
	redirectWithError := func(reason string) {
		redirectURL := fmt.Sprintf("%s/login?error=%s", a.frontendURL, url.QueryEscape(reason))
		http.Redirect(w, r, redirectURL, http.StatusTemporaryRedirect)
	}

	stateReq, err := r.Cookie("state")
	if err != nil {
		slog.Error("State cookie not found", "error", auth.ErrStateCookieNotFound)
		redirectWithError("state_cookie_not_found")
		return
	}

	errorValue := r.URL.Query().Get("error")
	if errorValue == "access_denied" {
		slog.Error("LINE access denied by user", "error", auth.ErrLineAccessDeniedByUser)
		redirectWithError("access_denied")
		return
	}
	if errorValue != "" {
		slog.Error("Error in OAuth callback", "error", errorValue)
		redirectWithError(errorValue)
		return
	}

	if stateReq.Value == "" {
		slog.Error("State cookie is empty", "error", auth.ErrStateCookieEmpty)
		redirectWithError("state_cookie_empty")
		return
	}
	stored, err := decodeState(stateReq.Value)
	if err != nil {
		slog.Error("State cookie is malformed", "error", err)
		redirectWithError("state_cookie_invalid")
		return
	}

	stateParam := r.URL.Query().Get("state")
	if stateParam == "" {
		slog.Error("State parameter is empty", "error", auth.ErrStateParamEmpty)
		redirectWithError("state_param_empty")
		return
	}
	if stateParam != stored.State {
		slog.Error("State mismatch", "error", auth.ErrStateMismatch)
		redirectWithError("state_mismatch")
		return
	}

	code := r.URL.Query().Get("code")
	if code == "" {
		slog.Error("Code value is empty", "error", auth.ErrCodeValueEmpty)
		redirectWithError("code_empty")
		return
	}

	token, err := a.lineService.VerifyToken(r.Context(), code)
	if err != nil {
		slog.Error("Failed to verify token", "error", err)
		redirectWithError("token_verification_failed")
		return
	}

	profile, err := a.lineService.VerifyUser(r.Context(), token)
	if err != nil {
		slog.Error("Failed to fetch LINE profile", "error", err)
		redirectWithError("profile_fetch_failed")
		return
	}

	result, err := a.authService.LoginWithLine(r.Context(), auth.LineLogin{
		LineUserID:  profile.UserID,
		DisplayName: profile.DisplayName,
		PictureURL:  profile.PictureURL,
		InviteToken: stored.Invite,
	})
	if err != nil {
		slog.Error("Failed to login with LINE", "error", err)
		redirectWithError(loginFailureReason(err))
		return
	}

	sessionToken, expiresAt, err := a.jwtService.GenerateSessionToken(result.User)
	if err != nil {
		slog.Error("Failed to generate session token", "error", err)
		redirectWithError("session_creation_failed")
		return
	}
	http.SetCookie(w, a.jwtService.SessionCookie(sessionToken, expiresAt))

	slog.Info("User logged in via LINE", "user_id", result.User.ID, "new_user", result.IsNewUser)
	http.Redirect(w, r, a.frontendURL+safeRedirectPath(stored.Redirect), http.StatusTemporaryRedirect)
}

// loginFailureReason maps login errors to the reason codes the frontend
// login page understands.
func loginFailureReason(err error) string {
	switch {
	case errors.Is(err, auth.ErrInvitationRequired):
		return "invitation_required"
	case errors.Is(err, invitation.ErrTokenExpired):
		return "invitation_expired"
	case errors.Is(err, invitation.ErrMaxUsesExceeded):
		return "invitation_exhausted"
	case errors.Is(err, invitation.ErrTokenInactive):
		return "invitation_inactive"
	case errors.Is(err, invitation.ErrTokenNotFound):
		return "invitation_invalid"
	case errors.Is(err, user.ErrAccountDeactivated):
		return "account_deactivated"
	default:
		return "login_failed"
	}
}

// Logout implements AuthHandler.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, a.jwtService.ClearSessionCookie())
	response.SuccessWithMessage(w, "Logged out successfully", nil)
}

// Me implements AuthHandler.
func (a *AuthHandlerImpl) Me(w http.ResponseWriter, r *http.Request) {
	userID := middleware.UserIDFromContext(r)
	if userID == "" {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	me, err := a.authService.Me(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.WriteJSON(w, http.StatusOK, me)
}
