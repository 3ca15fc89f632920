package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gorilla/mux"
	"github.com/orgchart/orgchart-backend/internal/api/apierror"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(payload)
}

// decode reads a JSON request body into dst and validates it
func (h *Handler) decode(r *http.Request, dst any) error {
	return h.decodeBody(r, dst, false)
}

// decodeOptional is decode for requests where an empty body means the zero value of dst
func (h *Handler) decodeOptional(r *http.Request, dst any) error {
	return h.decodeBody(r, dst, true)
}

func (h *Handler) decodeBody(r *http.Request, dst any, allowEmpty bool) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		switch {
		case errors.Is(err, io.EOF) && allowEmpty:
		case errors.Is(err, io.EOF):
			return apierror.New(http.StatusBadRequest, "invalid_body", "Request body is empty.")
		default:
			return apierror.New(http.StatusBadRequest, "invalid_body", "Request body is not valid JSON: %v", err)
		}
	}
	if n, ok := dst.(normalizer); ok {
		n.normalize()
	}
	return h.validateStruct(dst)
}

// normalizer is implemented by request bodies that clean up their values before validation
type normalizer interface {
	normalize()
}

func (h *Handler) validateStruct(v any) error {
	err := h.validate.Struct(v)
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return err
	}

	msgs := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		msgs = append(msgs, fieldMessage(fe))
	}
	return apierror.New(http.StatusBadRequest, "validation_failed", "%s", strings.Join(msgs, "; "))
}

func fieldMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", fe.Field(), fe.Param())
	case "datetime":
		return fmt.Sprintf("%s must be a date formatted as %s", fe.Field(), fe.Param())
	}
	return fmt.Sprintf("%s is invalid (%s)", fe.Field(), fe.Tag())
}

// pathID returns the integer path variable name
func pathID(r *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(mux.Vars(r)[name], 10, 64)
	if err != nil {
		return 0, apierror.New(http.StatusBadRequest, "invalid_id", "%s must be an integer.", name)
	}
	return id, nil
}

// queryInt returns the integer query parameter name, or nil when it is not set
func queryInt(r *http.Request, name, code string) (*int64, error) {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		return nil, nil
	}

	i, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return nil, apierror.New(http.StatusBadRequest, code, "%s must be an integer.", name)
	}
	return &i, nil
}

// queryString returns the query parameter name, or nil when it is empty
func queryString(r *http.Request, name string) *string {
	v := strings.TrimSpace(r.URL.Query().Get(name))
	if v == "" {
		return nil
	}
	return &v
}
