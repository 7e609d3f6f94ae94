package handlers

import (
	"net/http"
	"strconv"
	"time"
)

// ExportMonthlyReport builds and uploads the workbook for the requested
// month (?year=2026&month=3, defaulting to the current one).
func (h *Handlers) ExportMonthlyReport(w http.ResponseWriter, r *http.Request) {
	now := time.Now()
	year, month := now.Year(), now.Month()
	if y := r.URL.Query().Get("year"); y != "" {
		v, err := strconv.Atoi(y)
		if err != nil {
			h.JSON(w, http.StatusBadRequest, map[string]string{"error": "year must be numeric"})
			return
		}
		year = v
	}
	if m := r.URL.Query().Get("month"); m != "" {
		v, err := strconv.Atoi(m)
		if err != nil || v < 1 || v > 12 {
			h.JSON(w, http.StatusBadRequest, map[string]string{"error": "month must be 1-12"})
			return
		}
		month = time.Month(v)
	}

	res, err := h.Reports.ExportMonth(r.Context(), year, month)
	if err != nil {
		h.Fail(w, err)
		return
	}
	h.JSON(w, http.StatusCreated, res)
}
