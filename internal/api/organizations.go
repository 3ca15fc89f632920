package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/orgchart/orgchart-backend/internal/database"
	"github.com/orgchart/orgchart-backend/internal/database/gensql"
	"github.com/orgchart/orgchart-backend/internal/orgchart"
)

type organizationRequest struct {
	Name        string  `json:"name" validate:"required,max=200"`
	Sector      *string `json:"sector" validate:"omitempty,max=200"`
	Subsector   *string `json:"subsector" validate:"omitempty,max=200"`
	Domain      *string `json:"domain" validate:"omitempty,fqdn"`
	Country     *string `json:"country" validate:"omitempty,max=100"`
	Description *string `json:"description"`
}

type organizationPatch struct {
	Name        field[string] `json:"name"`
	Sector      field[string] `json:"sector"`
	Subsector   field[string] `json:"subsector"`
	Domain      field[string] `json:"domain"`
	Country     field[string] `json:"country"`
	Description field[string] `json:"description"`
}

type departmentRequest struct {
	Name string `json:"name" validate:"required,max=200"`
}

func (d *departmentRequest) normalize() {
	d.Name = strings.TrimSpace(d.Name)
}

func (o *organizationRequest) normalize() {
	o.Name = strings.TrimSpace(o.Name)
	o.Sector = trimmed(o.Sector)
	o.Subsector = trimmed(o.Subsector)
	o.Country = trimmed(o.Country)
	o.Description = trimmed(o.Description)
	if domain := trimmed(o.Domain); domain != nil {
		lower := strings.ToLower(*domain)
		o.Domain = &lower
	} else {
		o.Domain = nil
	}
}

func (h *Handler) listOrganizations(w http.ResponseWriter, r *http.Request) {
	orgs, err := h.repo.ListOrganizations(r.Context())
	if err != nil {
		h.error(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, orgs)
}

func (h *Handler) getOrganization(w http.ResponseWriter, r *http.Request) {
	orgID, err := pathID(r, "orgId")
	if err != nil {
		h.error(w, r, err)
		return
	}

	org, err := h.repo.GetOrganization(r.Context(), orgID)
	if err != nil {
		h.error(w, r, organizationError(err))
		return
	}
	writeJSON(w, http.StatusOK, org)
}

func (h *Handler) createOrganization(w http.ResponseWriter, r *http.Request) {
	req := organizationRequest{}
	if err := h.decode(r, &req); err != nil {
		h.error(w, r, err)
		return
	}

	org, err := h.repo.CreateOrganization(r.Context(), gensql.CreateOrganizationParams{
		Name:        req.Name,
		Sector:      req.Sector,
		Subsector:   req.Subsector,
		Domain:      req.Domain,
		Country:     req.Country,
		Description: req.Description,
	})
	if err != nil {
		h.error(w, r, err)
		return
	}

	h.actorLog(r).WithField("organization_id", org.ID).Info("organization created")
	writeJSON(w, http.StatusCreated, org)
}

func (h *Handler) updateOrganization(w http.ResponseWriter, r *http.Request) {
	orgID, err := pathID(r, "orgId")
	if err != nil {
		h.error(w, r, err)
		return
	}

	patch := organizationPatch{}
	if err := h.decode(r, &patch); err != nil {
		h.error(w, r, err)
		return
	}

	existing, err := h.repo.GetOrganization(r.Context(), orgID)
	if err != nil {
		h.error(w, r, organizationError(err))
		return
	}

	req := organizationRequest{
		Name:        existing.Name,
		Sector:      existing.Sector,
		Subsector:   existing.Subsector,
		Domain:      existing.Domain,
		Country:     existing.Country,
		Description: existing.Description,
	}
	patch.Name.applyValue(&req.Name)
	patch.Sector.apply(&req.Sector)
	patch.Subsector.apply(&req.Subsector)
	patch.Domain.apply(&req.Domain)
	patch.Country.apply(&req.Country)
	patch.Description.apply(&req.Description)
	req.normalize()
	if err := h.validateStruct(req); err != nil {
		h.error(w, r, err)
		return
	}

	org, err := h.repo.UpdateOrganization(r.Context(), gensql.UpdateOrganizationParams{
		ID:          orgID,
		Name:        req.Name,
		Sector:      req.Sector,
		Subsector:   req.Subsector,
		Domain:      req.Domain,
		Country:     req.Country,
		Description: req.Description,
	})
	if err != nil {
		h.error(w, r, organizationError(err))
		return
	}
	writeJSON(w, http.StatusOK, org)
}

func (h *Handler) deleteOrganization(w http.ResponseWriter, r *http.Request) {
	orgID, err := pathID(r, "orgId")
	if err != nil {
		h.error(w, r, err)
		return
	}

	if err := h.repo.DeleteOrganization(r.Context(), orgID); err != nil {
		h.error(w, r, organizationError(err))
		return
	}

	h.actorLog(r).WithField("organization_id", orgID).Info("organization deleted")
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listDepartments(w http.ResponseWriter, r *http.Request) {
	orgID, err := pathID(r, "orgId")
	if err != nil {
		h.error(w, r, err)
		return
	}

	departments, err := h.repo.ListDepartments(r.Context(), orgID)
	if err != nil {
		h.error(w, r, organizationError(err))
		return
	}
	writeJSON(w, http.StatusOK, departments)
}

func (h *Handler) createDepartment(w http.ResponseWriter, r *http.Request) {
	orgID, err := pathID(r, "orgId")
	if err != nil {
		h.error(w, r, err)
		return
	}

	req := departmentRequest{}
	if err := h.decode(r, &req); err != nil {
		h.error(w, r, err)
		return
	}

	department, err := h.repo.CreateDepartment(r.Context(), gensql.CreateDepartmentParams{
		OrganizationID: orgID,
		Name:           req.Name,
	})
	if err != nil {
		h.error(w, r, organizationError(err))
		return
	}
	writeJSON(w, http.StatusCreated, department)
}

func (h *Handler) exportOrganization(w http.ResponseWriter, r *http.Request) {
	orgID, err := pathID(r, "orgId")
	if err != nil {
		h.error(w, r, err)
		return
	}

	format := strings.ToLower(r.URL.Query().Get("format"))
	if format != "" && format != "json" && format != "xlsx" {
		h.error(w, r, errInvalidFormat(format))
		return
	}

	export, err := h.repo.ExportOrganization(r.Context(), orgID)
	if err != nil {
		h.error(w, r, organizationError(err))
		return
	}

	filename := fmt.Sprintf("organization-%d-%s", orgID, export.ExportedAt.Format("20060102"))
	if format == "xlsx" {
		h.writeWorkbook(w, r, filename+".xlsx", export)
		return
	}

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename+".json"))
	writeJSON(w, http.StatusOK, export)
}

// organizationError reports a missing organization the same way the chart endpoints do
func organizationError(err error) error {
	if errors.Is(err, database.ErrNotFound) {
		return fmt.Errorf("%w: %w", orgchart.ErrOrganizationNotFound, err)
	}
	return err
}
