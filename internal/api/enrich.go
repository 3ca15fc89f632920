package api

import (
	"net/http"

	"github.com/orgchart/orgchart-backend/internal/pdl"
)

type providersResponse struct {
	Clearbit  bool    `json:"clearbit"`
	ZoomInfo  bool    `json:"zoominfo"`
	Apollo    bool    `json:"apollo"`
	PDL       bool    `json:"pdl"`
	PDLSource *string `json:"pdlSource"`
}

func (h *Handler) enrichProviders(w http.ResponseWriter, _ *http.Request) {
	resp := providersResponse{
		Clearbit: h.cfg.Providers.Clearbit,
		ZoomInfo: h.cfg.Providers.ZoomInfo,
		Apollo:   h.cfg.Providers.Apollo,
		PDL:      h.pdl.Configured(),
	}
	if h.cfg.PDLKeySource != "" {
		resp.PDLSource = &h.cfg.PDLKeySource
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) searchPDL(w http.ResponseWriter, r *http.Request) {
	params := pdl.SearchParams{}
	if err := h.decodeOptional(r, &params); err != nil {
		h.error(w, r, err)
		return
	}

	result, err := h.pdl.SearchPeople(r.Context(), params)
	if err != nil {
		h.error(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}
