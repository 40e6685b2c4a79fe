package handlers

import "net/http"

func (h *Handler) DashboardSummaryHandler(w http.ResponseWriter, r *http.Request) {
	summary, err := h.dashboard.GetSummary(r.Context())
	if err != nil {
		h.serviceError(w, err)
		return
	}
	h.ok(w, "dashboard summary", summary)
}
