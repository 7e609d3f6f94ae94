package auth

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"fenix_office/internal/repository"
)

type ctxKey string

const UserIDKey ctxKey = "userID"

type TokenRepo interface {
	FindTokenByPlainToken(ctx context.Context, plainToken string) (*repository.PersonalAccessToken, error)
}

func BearerMiddleware(tokenRepo TokenRepo) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// allow OPTIONS (CORS preflight) to pass through
			if r.Method == http.MethodOptions {
				next.ServeHTTP(w, r)
				return
			}

			plain := bearerToken(r)
			if plain == "" {
				plain = r.URL.Query().Get("token")
			}
			if plain == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			pat, err := tokenRepo.FindTokenByPlainToken(r.Context(), plain)
			if err != nil || pat == nil {
				log.Debug().Err(err).Msg("token lookup failed")
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			if pat.ExpiresAt != nil && pat.ExpiresAt.Before(time.Now()) {
				http.Error(w, "Token expired", http.StatusUnauthorized)
				return
			}

			ctx := context.WithValue(r.Context(), UserIDKey, strconv.FormatInt(pat.UserID, 10))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func bearerToken(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))
}

func GetUserID(ctx context.Context) (string, error) {
	v, ok := ctx.Value(UserIDKey).(string)
	if !ok || v == "" {
		return "", errors.New("userID not found in context")
	}
	return v, nil
}
