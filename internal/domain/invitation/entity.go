package invitation

import (
	"time"

	"github.com/shirayuki-snow/snowschool-backend-go/internal/domain/user"
)

// InvitationToken gates new-user self registration. Tokens are never
// physically deleted; deactivated rows stay behind as an audit trail.
type InvitationToken struct {
	Token       string
	Description *string
	ExpiresAt   time.Time
	IsActive    bool
	MaxUses     *int
	UsedCount   int
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// TokenWithCreator contains token data with joined creator fields.
type TokenWithCreator struct {
	InvitationToken
	CreatorName string
	CreatorRole user.Role
}

// IsExpired checks expiry with <= semantics: a token whose expiry equals
// the current instant is already unusable.
func (t *InvitationToken) IsExpired() bool {
	return !t.ExpiresAt.After(time.Now())
}

// RemainingUses returns max_uses - used_count, or nil when unlimited.
func (t *InvitationToken) RemainingUses() *int {
	if t.MaxUses == nil {
		return nil
	}
	remaining := *t.MaxUses - t.UsedCount
	if remaining < 0 {
		remaining = 0
	}
	return &remaining
}

// CanBeConsumed checks whether a signup could currently consume the token.
func (t *InvitationToken) CanBeConsumed() bool {
	if !t.IsActive || t.IsExpired() {
		return false
	}
	return t.MaxUses == nil || t.UsedCount < *t.MaxUses
}
