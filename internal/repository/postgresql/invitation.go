package postgresql

import (
	"context"
	"fmt"

	"github.com/shirayuki-snow/snowschool-backend-go/internal/domain/invitation"
	"github.com/shirayuki-snow/snowschool-backend-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type invitationRepositoryImpl struct {
	db *database.DB
}

// NewInvitationRepository creates a new invitation token repository instance
func NewInvitationRepository(db *database.DB) invitation.TokenRepository {
	return &invitationRepositoryImpl{db: db}
}

// Create implements invitation.TokenRepository.
func (r *invitationRepositoryImpl) Create(ctx context.Context, tok invitation.InvitationToken) (invitation.InvitationToken, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO invitation_tokens (
			token, description, expires_at, is_active, max_uses, used_count, created_by
		) VALUES ($1, $2, $3, true, $4, 0, $5)
		RETURNING token, description, expires_at, is_active, max_uses, used_count,
				  created_by, created_at, updated_at
	`

	var created invitation.InvitationToken
	err := q.QueryRow(ctx, query,
		tok.Token, tok.Description, tok.ExpiresAt, tok.MaxUses, tok.CreatedBy,
	).Scan(
		&created.Token, &created.Description, &created.ExpiresAt, &created.IsActive,
		&created.MaxUses, &created.UsedCount, &created.CreatedBy,
		&created.CreatedAt, &created.UpdatedAt,
	)
	if err != nil {
		return invitation.InvitationToken{}, fmt.Errorf("failed to create invitation token: %w", err)
	}

	return created, nil
}

// GetByToken implements invitation.TokenRepository.
func (r *invitationRepositoryImpl) GetByToken(ctx context.Context, token string) (invitation.InvitationToken, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT token, description, expires_at, is_active, max_uses, used_count,
			   created_by, created_at, updated_at
		FROM invitation_tokens
		WHERE token = $1
	`

	var tok invitation.InvitationToken
	err := q.QueryRow(ctx, query, token).Scan(
		&tok.Token, &tok.Description, &tok.ExpiresAt, &tok.IsActive,
		&tok.MaxUses, &tok.UsedCount, &tok.CreatedBy, &tok.CreatedAt, &tok.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return tok, invitation.ErrTokenNotFound
		}
		return tok, fmt.Errorf("failed to get invitation token: %w", err)
	}

	return tok, nil
}

// GetByTokenWithCreator implements invitation.TokenRepository.
func (r *invitationRepositoryImpl) GetByTokenWithCreator(ctx context.Context, token string) (invitation.TokenWithCreator, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT it.token, it.description, it.expires_at, it.is_active, it.max_uses,
			   it.used_count, it.created_by, it.created_at, it.updated_at,
			   u.display_name AS creator_name, u.role AS creator_role
		FROM invitation_tokens it
		JOIN users u ON u.id = it.created_by
		WHERE it.token = $1
	`

	var tok invitation.TokenWithCreator
	err := q.QueryRow(ctx, query, token).Scan(
		&tok.Token, &tok.Description, &tok.ExpiresAt, &tok.IsActive,
		&tok.MaxUses, &tok.UsedCount, &tok.CreatedBy, &tok.CreatedAt, &tok.UpdatedAt,
		&tok.CreatorName, &tok.CreatorRole,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return tok, invitation.ErrTokenNotFound
		}
		return tok, fmt.Errorf("failed to get invitation token with creator: %w", err)
	}

	return tok, nil
}

// ExistsByToken implements invitation.TokenRepository.
func (r *invitationRepositoryImpl) ExistsByToken(ctx context.Context, token string) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT EXISTS(SELECT 1 FROM invitation_tokens WHERE token = $1)`

	var exists bool
	err := q.QueryRow(ctx, query, token).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check invitation token existence: %w", err)
	}

	return exists, nil
}

// DeactivateAllActive implements invitation.TokenRepository. This crosses
// creator boundaries on purpose: the single-active-invitation policy is
// system-wide.
func (r *invitationRepositoryImpl) DeactivateAllActive(ctx context.Context) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE invitation_tokens
		SET is_active = false, updated_at = NOW()
		WHERE is_active = true AND expires_at > NOW()
	`

	if _, err := q.Exec(ctx, query); err != nil {
		return fmt.Errorf("failed to deactivate active invitation tokens: %w", err)
	}

	return nil
}

// Deactivate implements invitation.TokenRepository.
func (r *invitationRepositoryImpl) Deactivate(ctx context.Context, token string) (invitation.InvitationToken, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE invitation_tokens
		SET is_active = false, updated_at = NOW()
		WHERE token = $1 AND is_active = true
		RETURNING token, description, expires_at, is_active, max_uses, used_count,
				  created_by, created_at, updated_at
	`

	var tok invitation.InvitationToken
	err := q.QueryRow(ctx, query, token).Scan(
		&tok.Token, &tok.Description, &tok.ExpiresAt, &tok.IsActive,
		&tok.MaxUses, &tok.UsedCount, &tok.CreatedBy, &tok.CreatedAt, &tok.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			// Zero rows means unknown token or one already deactivated.
			exists, exErr := r.ExistsByToken(ctx, token)
			if exErr != nil {
				return invitation.InvitationToken{}, exErr
			}
			if exists {
				return invitation.InvitationToken{}, invitation.ErrTokenAlreadyInactive
			}
			return invitation.InvitationToken{}, invitation.ErrTokenNotFound
		}
		return invitation.InvitationToken{}, fmt.Errorf("failed to deactivate invitation token: %w", err)
	}

	return tok, nil
}

// IncrementUsage implements invitation.TokenRepository. The usage cap sits
// inside the WHERE clause so two concurrent signups cannot both consume the
// last remaining use: the row version the second writer sees already has
// the incremented count and no longer matches.
func (r *invitationRepositoryImpl) IncrementUsage(ctx context.Context, token string) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE invitation_tokens
		SET used_count = used_count + 1, updated_at = NOW()
		WHERE token = $1 AND (max_uses IS NULL OR used_count < max_uses)
	`

	tag, err := q.Exec(ctx, query, token)
	if err != nil {
		return fmt.Errorf("failed to increment invitation token usage: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return invitation.ErrMaxUsesExceeded
	}

	return nil
}

const listColumns = `
	it.token, it.description, it.expires_at, it.is_active, it.max_uses,
	it.used_count, it.created_by, it.created_at, it.updated_at,
	u.display_name AS creator_name, u.role AS creator_role
`

// ListByCreator implements invitation.TokenRepository.
func (r *invitationRepositoryImpl) ListByCreator(ctx context.Context, creatorID string, includeInactive bool) ([]invitation.TokenWithCreator, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + listColumns + `
		FROM invitation_tokens it
		JOIN users u ON u.id = it.created_by
		WHERE it.created_by = $1 AND (it.is_active = true OR $2)
		ORDER BY it.created_at DESC
	`

	rows, err := q.Query(ctx, query, creatorID, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitation tokens: %w", err)
	}
	defer rows.Close()

	return scanTokenRows(rows)
}

// ListAll implements invitation.TokenRepository.
func (r *invitationRepositoryImpl) ListAll(ctx context.Context, includeInactive bool) ([]invitation.TokenWithCreator, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT ` + listColumns + `
		FROM invitation_tokens it
		JOIN users u ON u.id = it.created_by
		WHERE it.is_active = true OR $1
		ORDER BY it.created_at DESC
	`

	rows, err := q.Query(ctx, query, includeInactive)
	if err != nil {
		return nil, fmt.Errorf("failed to list invitation tokens: %w", err)
	}
	defer rows.Close()

	return scanTokenRows(rows)
}

func scanTokenRows(rows pgx.Rows) ([]invitation.TokenWithCreator, error) {
	var tokens []invitation.TokenWithCreator
	for rows.Next() {
		var tok invitation.TokenWithCreator
		err := rows.Scan(
			&tok.Token, &tok.Description, &tok.ExpiresAt, &tok.IsActive,
			&tok.MaxUses, &tok.UsedCount, &tok.CreatedBy, &tok.CreatedAt, &tok.UpdatedAt,
			&tok.CreatorName, &tok.CreatorRole,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan invitation token: %w", err)
		}
		tokens = append(tokens, tok)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return tokens, nil
}
