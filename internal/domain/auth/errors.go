package auth

import "errors"

var (
	ErrInvitationRequired     = errors.New("invitation token required for signup")
	ErrInvalidToken           = errors.New("invalid session token")
	ErrStateCookieNotFound    = errors.New("oauth state cookie not found")
	ErrStateCookieEmpty       = errors.New("oauth state cookie is empty")
	ErrStateParamEmpty        = errors.New("oauth state parameter is empty")
	ErrStateMismatch          = errors.New("oauth state mismatch")
	ErrCodeValueEmpty         = errors.New("oauth code value is empty")
	ErrLineAccessDeniedByUser = errors.New("line access denied by user")
)
