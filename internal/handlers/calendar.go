package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"fenix_office/internal/models"
)

type calendarRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Time        string `json:"time"`
}

func (h *Handlers) ListCalendarEvents(w http.ResponseWriter, r *http.Request) {
	h.JSON(w, http.StatusOK, h.State.Snapshot().CalendarEvents)
}

func (h *Handlers) CreateCalendarEvent(w http.ResponseWriter, r *http.Request) {
	var req calendarRequest
	if !h.decode(w, r, &req) {
		return
	}
	date, err := parseDate(req.Date)
	if err != nil {
		h.JSON(w, http.StatusBadRequest, map[string]string{"error": "date must be YYYY-MM-DD"})
		return
	}

	created, err := h.Ledger.CreateCalendarEvent(r.Context(), models.CalendarEvent{
		Title:       req.Title,
		Description: req.Description,
		Date:        date,
		Time:        req.Time,
	}, userID(r))
	if err != nil {
		h.Fail(w, err)
		return
	}
	h.JSON(w, http.StatusCreated, created)
}

func (h *Handlers) DeleteCalendarEvent(w http.ResponseWriter, r *http.Request) {
	if err := h.Ledger.DeleteCalendarEvent(r.Context(), mux.Vars(r)["id"], userID(r)); err != nil {
		h.Fail(w, err)
		return
	}
	h.JSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
