package api

import (
	"net/http"
)

func (h *Handler) orgChart(w http.ResponseWriter, r *http.Request) {
	orgID, err := pathID(r, "orgId")
	if err != nil {
		h.error(w, r, err)
		return
	}

	projectID, err := queryInt(r, "projectId", "invalid_project_id")
	if err != nil {
		h.error(w, r, err)
		return
	}

	chart, err := h.charts.Chart(r.Context(), orgID, projectID)
	if err != nil {
		h.error(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, chart)
}

func (h *Handler) orgChartFlat(w http.ResponseWriter, r *http.Request) {
	orgID, err := pathID(r, "orgId")
	if err != nil {
		h.error(w, r, err)
		return
	}

	nodes, err := h.charts.Flat(r.Context(), orgID)
	if err != nil {
		h.error(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, nodes)
}
