package repository

import (
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"fenix_office/internal/config/connections/postgres"
)

type PersonalAccessToken struct {
	ID        int64
	TokenHash string
	UserID    int64
	Abilities string
	ExpiresAt *time.Time
}

const userTokenableType = "App\\Models\\User"

type PersonalAccessTokenRepository struct {
	pg *postgres.Postgres
}

func NewPersonalAccessTokenRepository(pg *postgres.Postgres) *PersonalAccessTokenRepository {
	return &PersonalAccessTokenRepository{pg: pg}
}

// FindTokenByPlainToken resolves a Sanctum-style token ("id|secret" or bare
// secret). The stored value is the sha256 hex of the secret part.
func (r *PersonalAccessTokenRepository) FindTokenByPlainToken(ctx context.Context, plainToken string) (*PersonalAccessToken, error) {
	plainToken = strings.TrimSpace(plainToken)
	if plainToken == "" {
		return nil, errors.New("empty token")
	}

	var (
		tokenID   *int64
		tokenPart = plainToken
	)
	if idx := strings.Index(plainToken, "|"); idx > 0 {
		if id, err := strconv.ParseInt(plainToken[:idx], 10, 64); err == nil {
			tokenID = &id
			tokenPart = plainToken[idx+1:]
		}
	}

	sum := sha256.Sum256([]byte(tokenPart))
	hashStr := fmt.Sprintf("%x", sum)

	var pat PersonalAccessToken

	if tokenID != nil {
		query := `
            SELECT id, token, tokenable_id, abilities, expires_at
            FROM personal_access_tokens
            WHERE id = $1
              AND tokenable_type = $2
              AND (expires_at IS NULL OR expires_at > $3)
        `
		err := r.pg.Pool.QueryRow(ctx, query, *tokenID, userTokenableType, time.Now()).Scan(
			&pat.ID,
			&pat.TokenHash,
			&pat.UserID,
			&pat.Abilities,
			&pat.ExpiresAt,
		)
		if err == nil && pat.TokenHash == hashStr {
			return &pat, nil
		}
	}

	// fallback lookup by hash alone, for tokens issued without the id prefix
	query := `
        SELECT id, token, tokenable_id, abilities, expires_at
        FROM personal_access_tokens
        WHERE tokenable_type = $1
          AND token = $2
          AND (expires_at IS NULL OR expires_at > $3)
        ORDER BY created_at DESC
        LIMIT 1
    `
	err := r.pg.Pool.QueryRow(ctx, query, userTokenableType, hashStr, time.Now()).Scan(
		&pat.ID,
		&pat.TokenHash,
		&pat.UserID,
		&pat.Abilities,
		&pat.ExpiresAt,
	)
	if err != nil {
		return nil, errors.New("token not found")
	}
	return &pat, nil
}
