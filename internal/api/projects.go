package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/orgchart/orgchart-backend/internal/api/apierror"
	"github.com/orgchart/orgchart-backend/internal/database/gensql"
)

const dateLayout = "2006-01-02"

type projectRequest struct {
	OrganizationID     int64   `json:"organizationId" validate:"required"`
	Name               string  `json:"name" validate:"required,max=200"`
	ProjectType        string  `json:"projectType" validate:"omitempty,oneof=project maintenance"`
	Status             *string `json:"status" validate:"omitempty,max=100"`
	Site               *string `json:"site" validate:"omitempty,max=200"`
	StartDate          *string `json:"startDate" validate:"omitempty,datetime=2006-01-02"`
	EndDate            *string `json:"endDate" validate:"omitempty,datetime=2006-01-02"`
	EpcCompany         *string `json:"epcCompany" validate:"omitempty,max=200"`
	EpcContactPersonID *int64  `json:"epcContactPersonId"`
}

type projectPatch struct {
	Name               field[string] `json:"name"`
	ProjectType        field[string] `json:"projectType"`
	Status             field[string] `json:"status"`
	Site               field[string] `json:"site"`
	StartDate          field[string] `json:"startDate"`
	EndDate            field[string] `json:"endDate"`
	EpcCompany         field[string] `json:"epcCompany"`
	EpcContactPersonID field[int64]  `json:"epcContactPersonId"`
}

type assignmentRequest struct {
	PersonID int64   `json:"personId" validate:"required"`
	Role     *string `json:"role" validate:"omitempty,max=100"`
}

func (p *projectRequest) normalize() {
	p.Name = strings.TrimSpace(p.Name)
	p.ProjectType = strings.ToLower(strings.TrimSpace(p.ProjectType))
	p.Status = trimmed(p.Status)
	p.Site = trimmed(p.Site)
	p.StartDate = trimmed(p.StartDate)
	p.EndDate = trimmed(p.EndDate)
	p.EpcCompany = trimmed(p.EpcCompany)
}

func (a *assignmentRequest) normalize() {
	a.Role = trimmed(a.Role)
}

// dates returns the parsed start and end dates. The end date can not be before the start date.
func (p *projectRequest) dates() (start, end *time.Time, err error) {
	parse := func(s *string) (*time.Time, error) {
		if s == nil {
			return nil, nil
		}
		t, err := time.Parse(dateLayout, *s)
		if err != nil {
			return nil, apierror.New(http.StatusBadRequest, "validation_failed", "%q is not a date formatted as %s", *s, dateLayout)
		}
		return &t, nil
	}

	if start, err = parse(p.StartDate); err != nil {
		return nil, nil, err
	}
	if end, err = parse(p.EndDate); err != nil {
		return nil, nil, err
	}
	if start != nil && end != nil && end.Before(*start) {
		return nil, nil, apierror.New(http.StatusBadRequest, "validation_failed", "endDate can not be before startDate")
	}
	return start, end, nil
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func (h *Handler) listProjects(w http.ResponseWriter, r *http.Request) {
	orgID, err := queryInt(r, "organizationId", "invalid_organization_id")
	if err != nil {
		h.error(w, r, err)
		return
	}

	projects, err := h.repo.ListProjects(r.Context(), orgID)
	if err != nil {
		h.error(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, projects)
}

func (h *Handler) getProject(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathID(r, "projectId")
	if err != nil {
		h.error(w, r, err)
		return
	}

	project, err := h.repo.GetProject(r.Context(), projectID)
	if err != nil {
		h.error(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, project)
}

func (h *Handler) createProject(w http.ResponseWriter, r *http.Request) {
	req := projectRequest{}
	if err := h.decode(r, &req); err != nil {
		h.error(w, r, err)
		return
	}

	start, end, err := req.dates()
	if err != nil {
		h.error(w, r, err)
		return
	}

	project, err := h.repo.CreateProject(r.Context(), gensql.CreateProjectParams{
		OrganizationID:     req.OrganizationID,
		Name:               req.Name,
		ProjectType:        gensql.ProjectType(req.ProjectType),
		Status:             req.Status,
		Site:               req.Site,
		StartDate:          start,
		EndDate:            end,
		EpcCompany:         req.EpcCompany,
		EpcContactPersonID: req.EpcContactPersonID,
	})
	if err != nil {
		h.error(w, r, err)
		return
	}

	h.actorLog(r).WithField("project_id", project.ID).WithField("organization_id", project.OrganizationID).Info("project created")
	writeJSON(w, http.StatusCreated, project)
}

func (h *Handler) updateProject(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathID(r, "projectId")
	if err != nil {
		h.error(w, r, err)
		return
	}

	patch := projectPatch{}
	if err := h.decode(r, &patch); err != nil {
		h.error(w, r, err)
		return
	}

	existing, err := h.repo.GetProject(r.Context(), projectID)
	if err != nil {
		h.error(w, r, err)
		return
	}

	req := projectRequest{
		OrganizationID:     existing.OrganizationID,
		Name:               existing.Name,
		ProjectType:        string(existing.ProjectType),
		Status:             existing.Status,
		Site:               existing.Site,
		StartDate:          formatDate(existing.StartDate),
		EndDate:            formatDate(existing.EndDate),
		EpcCompany:         existing.EpcCompany,
		EpcContactPersonID: existing.EpcContactPersonID,
	}
	patch.Name.applyValue(&req.Name)
	patch.ProjectType.applyValue(&req.ProjectType)
	patch.Status.apply(&req.Status)
	patch.Site.apply(&req.Site)
	patch.StartDate.apply(&req.StartDate)
	patch.EndDate.apply(&req.EndDate)
	patch.EpcCompany.apply(&req.EpcCompany)
	patch.EpcContactPersonID.apply(&req.EpcContactPersonID)
	req.normalize()
	if err := h.validateStruct(req); err != nil {
		h.error(w, r, err)
		return
	}

	start, end, err := req.dates()
	if err != nil {
		h.error(w, r, err)
		return
	}

	project, err := h.repo.UpdateProject(r.Context(), gensql.UpdateProjectParams{
		ID:                 projectID,
		Name:               req.Name,
		ProjectType:        gensql.ProjectType(req.ProjectType),
		Status:             req.Status,
		Site:               req.Site,
		StartDate:          start,
		EndDate:            end,
		EpcCompany:         req.EpcCompany,
		EpcContactPersonID: req.EpcContactPersonID,
	})
	if err != nil {
		h.error(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, project)
}

func (h *Handler) deleteProject(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathID(r, "projectId")
	if err != nil {
		h.error(w, r, err)
		return
	}

	if err := h.repo.DeleteProject(r.Context(), projectID); err != nil {
		h.error(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listAssignments(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathID(r, "projectId")
	if err != nil {
		h.error(w, r, err)
		return
	}

	assignments, err := h.repo.ListAssignments(r.Context(), projectID)
	if err != nil {
		h.error(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, assignments)
}

func (h *Handler) createAssignment(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathID(r, "projectId")
	if err != nil {
		h.error(w, r, err)
		return
	}

	req := assignmentRequest{}
	if err := h.decode(r, &req); err != nil {
		h.error(w, r, err)
		return
	}

	assignment, err := h.repo.CreateAssignment(r.Context(), gensql.CreateAssignmentParams{
		ProjectID: projectID,
		PersonID:  req.PersonID,
		Role:      req.Role,
	})
	if err != nil {
		h.error(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, assignment)
}

func (h *Handler) deleteAssignment(w http.ResponseWriter, r *http.Request) {
	projectID, err := pathID(r, "projectId")
	if err != nil {
		h.error(w, r, err)
		return
	}

	assignmentID, err := pathID(r, "assignmentId")
	if err != nil {
		h.error(w, r, err)
		return
	}

	if err := h.repo.DeleteAssignment(r.Context(), projectID, assignmentID); err != nil {
		h.error(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
