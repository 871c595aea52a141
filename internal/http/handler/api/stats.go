package api

import (
	"net/http"
)

type StatsResponse struct {
	Stats StatsHeader `json:"stats"`
}

type StatsHeader struct {
	TotalLeads       int64 `json:"total_leads"`
	TotalCaseStudies int64 `json:"total_cases"`
	TotalUsers       int64 `json:"total_users"`
}

func (h *Handler) handleGetStats(w http.ResponseWriter, r *http.Request) {
	stats := h.dashboard.Stats(r.Context(), nil)

	encode(w, r, http.StatusOK, StatsResponse{
		Stats: StatsHeader{
			TotalLeads:       stats.TotalLeads,
			TotalCaseStudies: stats.TotalCaseStudies,
			TotalUsers:       stats.TotalUsers,
		},
	})
}
