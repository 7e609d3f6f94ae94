package handlers

import (
	"net/http"
	"time"
)

type healthResp struct {
	OK        bool      `json:"ok"`
	FetchedAt time.Time `json:"last_sync"`
	Degraded  bool      `json:"payables_degraded"`
}

// Health reports whether a sync cycle has ever completed and whether the
// payables are running on the local cache.
func (h *Handlers) Health(w http.ResponseWriter, _ *http.Request) {
	snap := h.State.Snapshot()

	resp := healthResp{
		OK:        !snap.FetchedAt.IsZero(),
		FetchedAt: snap.FetchedAt,
		Degraded:  snap.PayablesDegraded,
	}
	code := http.StatusOK
	if !resp.OK {
		code = http.StatusServiceUnavailable
	}
	h.JSON(w, code, resp)
}
