package api

import (
	"net/http"
	"strings"

	"github.com/orgchart/orgchart-backend/internal/database"
	"github.com/orgchart/orgchart-backend/internal/database/gensql"
	"github.com/orgchart/orgchart-backend/internal/search"
)

const sourceManual = "manual"

type personRequest struct {
	OrganizationID int64   `json:"organizationId" validate:"required"`
	DepartmentID   *int64  `json:"departmentId"`
	FullName       string  `json:"fullName" validate:"required,max=200"`
	Title          *string `json:"title" validate:"omitempty,max=200"`
	Email          *string `json:"email" validate:"omitempty,email"`
	Phone          *string `json:"phone" validate:"omitempty,max=50"`
	Location       *string `json:"location" validate:"omitempty,max=200"`
	IsEpcContact   bool    `json:"isEpcContact"`
	Source         *string `json:"source" validate:"omitempty,oneof=manual csv xlsx pdl"`
	ManagerID      *int64  `json:"managerId"`
}

type personPatch struct {
	DepartmentID field[int64]  `json:"departmentId"`
	FullName     field[string] `json:"fullName"`
	Title        field[string] `json:"title"`
	Email        field[string] `json:"email"`
	Phone        field[string] `json:"phone"`
	Location     field[string] `json:"location"`
	IsEpcContact field[bool]   `json:"isEpcContact"`
	ManagerID    field[int64]  `json:"managerId"`
}

func (p *personRequest) normalize() {
	p.FullName = strings.TrimSpace(p.FullName)
	p.Title = trimmed(p.Title)
	p.Phone = trimmed(p.Phone)
	p.Location = trimmed(p.Location)
	if email := trimmed(p.Email); email != nil {
		lower := strings.ToLower(*email)
		p.Email = &lower
	} else {
		p.Email = nil
	}
}

// trimmed returns s without surrounding whitespace, or nil when nothing is left
func trimmed(s *string) *string {
	if s == nil {
		return nil
	}
	t := strings.TrimSpace(*s)
	if t == "" {
		return nil
	}
	return &t
}

func (h *Handler) listPeople(w http.ResponseWriter, r *http.Request) {
	orgID, err := queryInt(r, "organizationId", "invalid_organization_id")
	if err != nil {
		h.error(w, r, err)
		return
	}

	page, err := paginationFromRequest(r)
	if err != nil {
		h.error(w, r, err)
		return
	}

	filter := database.PeopleFilter{
		OrganizationID: orgID,
		Email:          queryString(r, "email"),
	}

	q := strings.TrimSpace(r.URL.Query().Get("q"))
	if q == "" {
		filter.Limit = page.Limit()
		filter.Offset = page.Offset()
		people, total, err := h.repo.ListPeople(r.Context(), filter)
		if err != nil {
			h.error(w, r, err)
			return
		}
		writeJSON(w, http.StatusOK, Page[*gensql.Person]{Nodes: people, PageInfo: page.PageInfo(int(total))})
		return
	}

	people, _, err := h.repo.ListPeople(r.Context(), filter)
	if err != nil {
		h.error(w, r, err)
		return
	}

	ranked := search.RankPeople(q, people)
	start, end := page.ForSlice(len(ranked))
	writeJSON(w, http.StatusOK, Page[*gensql.Person]{Nodes: ranked[start:end], PageInfo: page.PageInfo(len(ranked))})
}

func (h *Handler) getPerson(w http.ResponseWriter, r *http.Request) {
	personID, err := pathID(r, "personId")
	if err != nil {
		h.error(w, r, err)
		return
	}

	person, err := h.repo.GetPerson(r.Context(), personID)
	if err != nil {
		h.error(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, person)
}

func (h *Handler) createPerson(w http.ResponseWriter, r *http.Request) {
	req := personRequest{}
	if err := h.decode(r, &req); err != nil {
		h.error(w, r, err)
		return
	}

	source := sourceManual
	if req.Source != nil {
		source = *req.Source
	}

	person, err := h.repo.CreatePerson(r.Context(), gensql.CreatePersonParams{
		OrganizationID: req.OrganizationID,
		DepartmentID:   req.DepartmentID,
		FullName:       req.FullName,
		Title:          req.Title,
		Email:          req.Email,
		Phone:          req.Phone,
		Location:       req.Location,
		IsEpcContact:   req.IsEpcContact,
		Source:         &source,
		ManagerID:      req.ManagerID,
	})
	if err != nil {
		h.error(w, r, err)
		return
	}

	h.actorLog(r).WithField("person_id", person.ID).WithField("organization_id", person.OrganizationID).Debug("person created")
	writeJSON(w, http.StatusCreated, person)
}

func (h *Handler) updatePerson(w http.ResponseWriter, r *http.Request) {
	personID, err := pathID(r, "personId")
	if err != nil {
		h.error(w, r, err)
		return
	}

	patch := personPatch{}
	if err := h.decode(r, &patch); err != nil {
		h.error(w, r, err)
		return
	}

	existing, err := h.repo.GetPerson(r.Context(), personID)
	if err != nil {
		h.error(w, r, err)
		return
	}

	req := personRequest{
		OrganizationID: existing.OrganizationID,
		DepartmentID:   existing.DepartmentID,
		FullName:       existing.FullName,
		Title:          existing.Title,
		Email:          existing.Email,
		Phone:          existing.Phone,
		Location:       existing.Location,
		IsEpcContact:   existing.IsEpcContact,
		Source:         existing.Source,
		ManagerID:      existing.ManagerID,
	}
	patch.DepartmentID.apply(&req.DepartmentID)
	patch.FullName.applyValue(&req.FullName)
	patch.Title.apply(&req.Title)
	patch.Email.apply(&req.Email)
	patch.Phone.apply(&req.Phone)
	patch.Location.apply(&req.Location)
	patch.IsEpcContact.applyValue(&req.IsEpcContact)
	patch.ManagerID.apply(&req.ManagerID)
	req.normalize()
	if err := h.validateStruct(req); err != nil {
		h.error(w, r, err)
		return
	}

	person, err := h.repo.UpdatePerson(r.Context(), gensql.UpdatePersonParams{
		ID:           personID,
		DepartmentID: req.DepartmentID,
		FullName:     req.FullName,
		Title:        req.Title,
		Email:        req.Email,
		Phone:        req.Phone,
		Location:     req.Location,
		IsEpcContact: req.IsEpcContact,
		ManagerID:    req.ManagerID,
	})
	if err != nil {
		h.error(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, person)
}

func (h *Handler) deletePerson(w http.ResponseWriter, r *http.Request) {
	personID, err := pathID(r, "personId")
	if err != nil {
		h.error(w, r, err)
		return
	}

	if err := h.repo.DeletePerson(r.Context(), personID); err != nil {
		h.error(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
