package auth

import "github.com/shirayuki-snow/snowschool-backend-go/internal/domain/user"

// LineLogin carries the verified LINE profile plus the pending invite token
// (empty for returning users) into the login/signup path.
type LineLogin struct {
	LineUserID  string
	DisplayName string
	PictureURL  *string
	InviteToken string
}

// SessionResult is what a successful login or signup produces.
type SessionResult struct {
	User      user.User
	IsNewUser bool
}

// MeResponse - GET /auth/me body.
type MeResponse struct {
	ID          string  `json:"id"`
	DisplayName string  `json:"displayName"`
	PictureURL  *string `json:"pictureUrl,omitempty"`
	Role        string  `json:"role"`
	IsActive    bool    `json:"isActive"`
}
