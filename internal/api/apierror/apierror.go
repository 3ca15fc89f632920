package apierror

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/orgchart/orgchart-backend/internal/database"
	"github.com/orgchart/orgchart-backend/internal/orgchart"
	"github.com/orgchart/orgchart-backend/internal/pdl"
	"github.com/sirupsen/logrus"
)

const (
	RequestIDHeader = "X-Request-Id"

	// statusClientClosedRequest is used when the client went away before we could answer
	statusClientClosedRequest = 499
)

var (
	ErrInternal = Errorf("The server errored out while processing your request, and we didn't write a suitable error message. You might consider that a bug on our side. Please try again, and if the error persists, contact the orgchart team.")
	ErrDatabase = Errorf("The database system encountered an error while processing your request. This is probably a transient error, please try again. If the error persists, contact the orgchart team.")
)

// Error is an error that can be presented to end-users
type Error struct {
	err    error
	status int
	code   string
}

func (e Error) Error() string {
	return e.err.Error()
}

func (e Error) Code() string {
	return e.code
}

func (e Error) Status() int {
	return e.status
}

// Errorf formats a bad request message for end-users. Remember not to leak sensitive information in error messages
func Errorf(format string, args ...any) Error {
	return New(http.StatusBadRequest, "bad_request", format, args...)
}

// New formats an error message for end-users with a specific status and error code
func New(status int, code, format string, args ...any) Error {
	return Error{
		err:    fmt.Errorf(format, args...),
		status: status,
		code:   code,
	}
}

// Response is the JSON body of every error response
type Response struct {
	Error     string `json:"error"`
	Message   string `json:"message"`
	Detail    string `json:"detail,omitempty"`
	RequestID string `json:"requestId"`
}

var sentinels = []struct {
	err    error
	status int
	code   string
}{
	{orgchart.ErrOrganizationNotFound, http.StatusNotFound, "organization_not_found"},
	{orgchart.ErrProjectNotFound, http.StatusNotFound, "project_not_found"},
	{database.ErrInvalidOrganization, http.StatusBadRequest, "invalid_organization"},
	{database.ErrInvalidDepartment, http.StatusBadRequest, "invalid_department"},
	{database.ErrInvalidManager, http.StatusBadRequest, "invalid_manager"},
	{database.ErrInvalidPerson, http.StatusBadRequest, "invalid_person"},
	{database.ErrManagerCycle, http.StatusBadRequest, "manager_cycle"},
	{pdl.ErrNotConfigured, http.StatusBadRequest, "pdl_not_configured"},
}

// Present returns the status and body for err. Errors not intended for end users are logged with the original error
// attached and replaced by a generic message.
func Present(log logrus.FieldLogger, err error) (int, Response) {
	var apiErr Error
	if errors.As(err, &apiErr) {
		return apiErr.status, Response{Error: apiErr.code, Message: apiErr.Error()}
	}

	for _, s := range sentinels {
		if errors.Is(err, s.err) {
			return s.status, Response{Error: s.code, Message: s.err.Error()}
		}
	}

	var pdlErr *pdl.Error
	if errors.As(err, &pdlErr) {
		return pdlErr.StatusCode, Response{Error: "pdl_error", Message: "People Data Labs returned an error.", Detail: pdlErr.Body}
	}

	var pgErr *pgconn.PgError
	switch {
	case errors.Is(err, database.ErrNotFound), errors.Is(err, pgx.ErrNoRows):
		return http.StatusNotFound, Response{Error: "not_found", Message: "Object was not found in the database."}
	case errors.Is(err, database.ErrConflict):
		return http.StatusConflict, Response{Error: "conflict", Message: "Object conflicts with an existing object."}
	case errors.As(err, &pgErr):
		log.WithError(err).Errorf("database error")
		return http.StatusInternalServerError, Response{Error: "database_error", Message: ErrDatabase.Error()}
	case errors.Is(err, context.Canceled):
		return statusClientClosedRequest, Response{Error: "request_canceled", Message: "Request canceled."}
	}

	log.WithError(err).Errorf("unhandled error in the api error writer")
	return http.StatusInternalServerError, Response{Error: "internal_error", Message: ErrInternal.Error()}
}

// Write writes err as a JSON error response
func Write(w http.ResponseWriter, r *http.Request, log logrus.FieldLogger, err error) {
	status, body := Present(log, err)
	body.RequestID = RequestID(w, r)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		log.WithError(err).Debug("writing error response")
	}
}

// RequestID returns the id of the request, taken from the request or response headers. A new id is generated and set
// on the response when neither has one.
func RequestID(w http.ResponseWriter, r *http.Request) string {
	if id := strings.TrimSpace(w.Header().Get(RequestIDHeader)); id != "" {
		return id
	}

	id := strings.TrimSpace(r.Header.Get(RequestIDHeader))
	if id == "" {
		id = uuid.NewString()
	}
	w.Header().Set(RequestIDHeader, id)
	return id
}
