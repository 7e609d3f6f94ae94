package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/rs/zerolog"

	"fenix_office/internal/logger"
	"fenix_office/internal/ports"
	"fenix_office/internal/services/ledger"
	"fenix_office/internal/services/reports"
	"fenix_office/internal/services/sync"
	"fenix_office/internal/transport/auth"
)

type Handlers struct {
	State   *sync.Service
	Ledger  *ledger.Service
	Reports *reports.Exporter

	Log zerolog.Logger
}

func New(state *sync.Service, ledgerSvc *ledger.Service, exporter *reports.Exporter) *Handlers {
	return &Handlers{
		State:   state,
		Ledger:  ledgerSvc,
		Reports: exporter,
		Log:     logger.WithComponent("http"),
	}
}

func (h *Handlers) JSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

// Fail maps service errors onto HTTP statuses: validation rejections are
// the caller's fault, missing rows are 404, anything else is the backend's.
func (h *Handlers) Fail(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ledger.ErrValidation):
		h.JSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
	case errors.Is(err, ports.ErrNotFound):
		h.JSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	default:
		h.Log.Error().Err(err).Msg("request failed")
		h.JSON(w, http.StatusBadGateway, map[string]string{"error": err.Error()})
	}
}

func (h *Handlers) decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20))
	if err := dec.Decode(v); err != nil {
		h.JSON(w, http.StatusBadRequest, map[string]string{"error": "bad JSON: " + err.Error()})
		return false
	}
	return true
}

func userID(r *http.Request) string {
	uid, err := auth.GetUserID(r.Context())
	if err != nil {
		return ""
	}
	return uid
}

func parseDate(s string) (time.Time, error) {
	return time.ParseInLocation("2006-01-02", s, time.Local)
}
