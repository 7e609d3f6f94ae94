package handlers

import "net/http"

// GetState returns the whole current snapshot in one consistent read.
func (h *Handlers) GetState(w http.ResponseWriter, r *http.Request) {
	h.JSON(w, http.StatusOK, h.State.Snapshot())
}

// RunSync triggers a non-silent refresh cycle on demand, on top of the
// periodic background schedule.
func (h *Handlers) RunSync(w http.ResponseWriter, r *http.Request) {
	if err := h.State.RunCycle(r.Context()); err != nil {
		h.Fail(w, err)
		return
	}
	h.JSON(w, http.StatusOK, map[string]string{"status": "synced"})
}
