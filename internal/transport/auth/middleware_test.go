package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fenix_office/internal/repository"
)

type fakeRepo struct {
	token *repository.PersonalAccessToken
	err   error
}

func (f *fakeRepo) FindTokenByPlainToken(ctx context.Context, plainToken string) (*repository.PersonalAccessToken, error) {
	return f.token, f.err
}

func TestBearerMiddleware_setsUserID(t *testing.T) {
	token := &repository.PersonalAccessToken{ID: 1, UserID: 123}
	fr := &fakeRepo{token: token}

	got := ""
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		uid, err := GetUserID(r.Context())
		if err != nil {
			t.Fatalf("expected user id present, got err: %v", err)
		}
		got = uid
		w.WriteHeader(http.StatusOK)
	})

	srv := BearerMiddleware(fr)(handler)

	req := httptest.NewRequest("POST", "/clients", nil)
	req.Header.Set("Authorization", "Bearer mytoken")
	rr := httptest.NewRecorder()

	srv.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", rr.Code)
	}
	if got != "123" {
		t.Fatalf("expected user id 123 in context, got %q", got)
	}
}

func TestBearerMiddleware_queryParamFallback(t *testing.T) {
	fr := &fakeRepo{token: &repository.PersonalAccessToken{ID: 2, UserID: 7}}
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	srv := BearerMiddleware(fr)(handler)

	req := httptest.NewRequest("GET", "/state?token=mytoken", nil)
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", rr.Code)
	}
}

func TestBearerMiddleware_blockWhenMissing(t *testing.T) {
	fr := &fakeRepo{token: nil}
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("should not reach handler with missing token")
	})
	srv := BearerMiddleware(fr)(handler)

	req := httptest.NewRequest("POST", "/clients", nil)
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 Unauthorized, got %d", rr.Code)
	}
}

func TestBearerMiddleware_blockWhenExpired(t *testing.T) {
	past := time.Now().Add(-time.Hour)
	fr := &fakeRepo{token: &repository.PersonalAccessToken{ID: 3, UserID: 9, ExpiresAt: &past}}
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatalf("should not reach handler with expired token")
	})
	srv := BearerMiddleware(fr)(handler)

	req := httptest.NewRequest("GET", "/state", nil)
	req.Header.Set("Authorization", "Bearer mytoken")
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 Unauthorized, got %d", rr.Code)
	}
}

func TestBearerMiddleware_allowsOptions(t *testing.T) {
	fr := &fakeRepo{token: nil}
	reached := false
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusNoContent)
	})
	srv := BearerMiddleware(fr)(handler)

	req := httptest.NewRequest("OPTIONS", "/clients", nil)
	rr := httptest.NewRecorder()
	srv.ServeHTTP(rr, req)
	if rr.Code != http.StatusNoContent {
		t.Fatalf("expected 204 No Content, got %d", rr.Code)
	}
	if !reached {
		t.Fatalf("expected handler to be reached on OPTIONS")
	}
}
