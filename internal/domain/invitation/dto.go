package invitation

import (
	"time"

	"github.com/shirayuki-snow/snowschool-backend-go/internal/pkg/validator"
)

// MaxExpiryAhead caps how far in the future an invitation may expire.
const MaxExpiryAhead = 31 * 24 * time.Hour

// CreateRequest - POST /invitations body.
type CreateRequest struct {
	CreatedBy   string  `json:"-"` // From session claims
	Description *string `json:"description,omitempty"`
	ExpiresAt   string  `json:"expiresAt"`
}

// Validate enforces the expiry window. The messages are shown to end users
// as-is, hence Japanese.
func (r *CreateRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ExpiresAt) {
		errs = append(errs, validator.ValidationError{
			Field:   "expiresAt",
			Message: "有効期限を指定してください",
		})
	} else if expiresAt, ok := validator.IsValidDateTime(r.ExpiresAt); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "expiresAt",
			Message: "有効期限の形式が正しくありません",
		})
	} else {
		now := time.Now()
		if !expiresAt.After(now) {
			errs = append(errs, validator.ValidationError{
				Field:   "expiresAt",
				Message: "有効期限は未来の日時を指定してください",
			})
		} else if expiresAt.After(now.Add(MaxExpiryAhead)) {
			errs = append(errs, validator.ValidationError{
				Field:   "expiresAt",
				Message: "有効期限は1ヶ月以内で指定してください",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// ExpiresAtTime returns the parsed expiry. Call after Validate.
func (r *CreateRequest) ExpiresAtTime() time.Time {
	t, _ := validator.IsValidDateTime(r.ExpiresAt)
	return t
}

// CreateParams is the service-level input. Exactly one of ExpiresAt or
// ExpiresInHours must be set.
type CreateParams struct {
	CreatedBy      string
	Description    *string
	ExpiresAt      *time.Time
	ExpiresInHours *int
}

// CreatedByResponse carries the creator's public fields.
type CreatedByResponse struct {
	ID          string `json:"id"`
	DisplayName string `json:"displayName"`
	Role        string `json:"role"`
}

// CreateResponse - 201 body for POST /invitations.
type CreateResponse struct {
	Token         string            `json:"token"`
	InvitationURL string            `json:"invitationUrl"`
	ExpiresAt     string            `json:"expiresAt"`
	MaxUses       *int              `json:"maxUses"`
	CreatedBy     CreatedByResponse `json:"createdBy"`
}

// ListRequest - GET /invitations query flags plus the requester identity.
type ListRequest struct {
	RequesterID     string
	IncludeInactive bool
	ShowAll         bool
}

// ListItem - one element of the GET /invitations response. IsExpired and
// RemainingUses are derived at the boundary, not stored.
type ListItem struct {
	Token         string  `json:"token"`
	Description   *string `json:"description"`
	ExpiresAt     string  `json:"expiresAt"`
	IsActive      bool    `json:"isActive"`
	IsExpired     bool    `json:"isExpired"`
	MaxUses       *int    `json:"maxUses"`
	UsedCount     int     `json:"usedCount"`
	RemainingUses *int    `json:"remainingUses"`
	CreatedAt     string  `json:"createdAt"`
	CreatedBy     string  `json:"createdBy"`
	CreatorName   string  `json:"creatorName"`
	CreatorRole   string  `json:"creatorRole"`
}

// DeactivateResponse - 200 body for DELETE /invitations/{token}.
type DeactivateResponse struct {
	Message       string `json:"message"`
	Token         string `json:"token"`
	DeactivatedAt string `json:"deactivatedAt"`
	DeactivatedBy string `json:"deactivatedBy"`
}
