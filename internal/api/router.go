package api

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/orgchart/orgchart-backend/internal/auth"
	"go.opentelemetry.io/otel/metric"
)

// NewRouter returns the routes of the service. Everything below /api goes through authMiddleware when it is set.
func NewRouter(h *Handler, meter metric.Meter, authMiddleware auth.Middleware) (*mux.Router, error) {
	metrics, err := NewMetrics(meter)
	if err != nil {
		return nil, err
	}

	r := mux.NewRouter()
	r.NotFoundHandler = http.HandlerFunc(h.notFound)
	r.MethodNotAllowedHandler = http.HandlerFunc(h.methodNotAllowed)
	r.Use(requestID, metrics.Middleware)

	r.HandleFunc("/healthz", h.healthz).Methods(http.MethodGet)

	api := r.PathPrefix("/api").Subrouter()
	if authMiddleware != nil {
		api.Use(mux.MiddlewareFunc(authMiddleware))
	}

	api.HandleFunc("/organizations", h.listOrganizations).Methods(http.MethodGet)
	api.HandleFunc("/organizations", h.createOrganization).Methods(http.MethodPost)
	api.HandleFunc("/organizations/{orgId}", h.getOrganization).Methods(http.MethodGet)
	api.HandleFunc("/organizations/{orgId}", h.updateOrganization).Methods(http.MethodPatch)
	api.HandleFunc("/organizations/{orgId}", h.deleteOrganization).Methods(http.MethodDelete)
	api.HandleFunc("/organizations/{orgId}/departments", h.listDepartments).Methods(http.MethodGet)
	api.HandleFunc("/organizations/{orgId}/departments", h.createDepartment).Methods(http.MethodPost)
	api.HandleFunc("/organizations/{orgId}/orgchart", h.orgChart).Methods(http.MethodGet)
	api.HandleFunc("/organizations/{orgId}/orgchart/flat", h.orgChartFlat).Methods(http.MethodGet)
	api.HandleFunc("/organizations/{orgId}/export", h.exportOrganization).Methods(http.MethodGet)

	api.HandleFunc("/people", h.listPeople).Methods(http.MethodGet)
	api.HandleFunc("/people", h.createPerson).Methods(http.MethodPost)
	api.HandleFunc("/people/{personId}", h.getPerson).Methods(http.MethodGet)
	api.HandleFunc("/people/{personId}", h.updatePerson).Methods(http.MethodPatch)
	api.HandleFunc("/people/{personId}", h.deletePerson).Methods(http.MethodDelete)

	api.HandleFunc("/projects", h.listProjects).Methods(http.MethodGet)
	api.HandleFunc("/projects", h.createProject).Methods(http.MethodPost)
	api.HandleFunc("/projects/{projectId}", h.getProject).Methods(http.MethodGet)
	api.HandleFunc("/projects/{projectId}", h.updateProject).Methods(http.MethodPatch)
	api.HandleFunc("/projects/{projectId}", h.deleteProject).Methods(http.MethodDelete)
	api.HandleFunc("/projects/{projectId}/assignments", h.listAssignments).Methods(http.MethodGet)
	api.HandleFunc("/projects/{projectId}/assignments", h.createAssignment).Methods(http.MethodPost)
	api.HandleFunc("/projects/{projectId}/assignments/{assignmentId}", h.deleteAssignment).Methods(http.MethodDelete)

	api.HandleFunc("/imports/people", h.importPeople).Methods(http.MethodPost)
	api.HandleFunc("/imports/people-csv", h.importPeople).Methods(http.MethodPost)

	api.HandleFunc("/enrich/providers", h.enrichProviders).Methods(http.MethodGet)
	api.HandleFunc("/enrich/pdl/search", h.searchPDL).Methods(http.MethodPost)

	return r, nil
}
