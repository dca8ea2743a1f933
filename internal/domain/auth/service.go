package auth

import "context"

// AuthService defines the interface for login and invitation-gated signup.
type AuthService interface {
	// LoginWithLine signs a returning user in, or registers a new MEMBER
	// account when a valid invite token accompanies an unknown LINE user.
	// User creation and token consumption happen in one transaction.
	LoginWithLine(ctx context.Context, login LineLogin) (SessionResult, error)

	// Me resolves the current session user.
	Me(ctx context.Context, userID string) (MeResponse, error)
}
