package api

import (
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/orgchart/orgchart-backend/internal/api/apierror"
	"github.com/orgchart/orgchart-backend/internal/auth"
	"github.com/orgchart/orgchart-backend/internal/config"
	"github.com/orgchart/orgchart-backend/internal/database"
	"github.com/orgchart/orgchart-backend/internal/orgchart"
	"github.com/orgchart/orgchart-backend/internal/pdl"
	"github.com/sirupsen/logrus"
)

type Config struct {
	MaxUploadBytes int64
	Providers      config.Providers

	// PDLKeySource is the name of the environment variable the PDL API key was read from
	PDLKeySource string
}

type Handler struct {
	repo     database.Repo
	charts   *orgchart.Service
	pdl      *pdl.Client
	cfg      Config
	validate *validator.Validate
	log      logrus.FieldLogger
}

func New(repo database.Repo, charts *orgchart.Service, pdlClient *pdl.Client, cfg Config, log logrus.FieldLogger) *Handler {
	validate := validator.New(validator.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonFieldName)

	return &Handler{
		repo:     repo,
		charts:   charts,
		pdl:      pdlClient,
		cfg:      cfg,
		validate: validate,
		log:      log,
	}
}

func (h *Handler) error(w http.ResponseWriter, r *http.Request, err error) {
	apierror.Write(w, r, h.log, err)
}

// actorLog returns the handler logger with the email of the authenticated user, when there is one
func (h *Handler) actorLog(r *http.Request) logrus.FieldLogger {
	email, err := auth.GetEmail(r.Context())
	if err != nil {
		return h.log
	}
	return h.log.WithField("actor", email)
}

func (h *Handler) healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) notFound(w http.ResponseWriter, r *http.Request) {
	h.error(w, r, apierror.New(http.StatusNotFound, "route_not_found", "No route for %s %s.", r.Method, r.URL.Path))
}

func (h *Handler) methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.error(w, r, apierror.New(http.StatusMethodNotAllowed, "method_not_allowed", "Method %s is not allowed for %s.", r.Method, r.URL.Path))
}

// jsonFieldName names validation errors after the JSON field of the struct field
func jsonFieldName(f reflect.StructField) string {
	name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
	switch name {
	case "-":
		return ""
	case "":
		return f.Name
	}
	return name
}
