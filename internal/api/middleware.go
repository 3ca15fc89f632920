package api

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/orgchart/orgchart-backend/internal/api/apierror"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

type Metrics struct {
	requestTime metric.Int64Histogram
}

func NewMetrics(meter metric.Meter) (*Metrics, error) {
	reqTime, err := meter.Int64Histogram("http_request_duration", metric.WithDescription("http request duration per route"), metric.WithUnit("ms"))
	if err != nil {
		return nil, fmt.Errorf("failed to create http_request_duration histogram: %w", err)
	}

	return &Metrics{
		requestTime: reqTime,
	}, nil
}

// Middleware records the duration of every request matched by the router
func (m *Metrics) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		route := "unknown"
		if current := mux.CurrentRoute(r); current != nil {
			if tpl, err := current.GetPathTemplate(); err == nil {
				route = tpl
			}
		}

		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)
		m.requestTime.Record(r.Context(), time.Since(start).Milliseconds(), metric.WithAttributes(
			attribute.String("route", r.Method+" "+route),
			attribute.String("status", strconv.Itoa(rec.status)),
		))
	})
}

type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// requestID makes sure every response carries a request id
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		apierror.RequestID(w, r)
		next.ServeHTTP(w, r)
	})
}
