package api_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/orgchart/orgchart-backend/internal/api"
	"github.com/orgchart/orgchart-backend/internal/config"
	"github.com/orgchart/orgchart-backend/internal/orgchart"
	"github.com/orgchart/orgchart-backend/internal/pdl"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

func TestMetrics_Middleware(t *testing.T) {
	log, _ := test.NewNullLogger()
	reader := metric.NewManualReader()
	meter := metric.NewMeterProvider(metric.WithReader(reader)).Meter("test")

	h := api.New(&fakeRepo{}, orgchart.NewService(orgchart.NewMockSource(t), log), pdl.New(config.PDL{}, errorsMeter(t), log), api.Config{}, log)
	router, err := api.NewRouter(h, meter, nil)
	require.NoError(t, err)

	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/enrich/providers", nil))
	router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/api/organizations/x/orgchart", nil))

	rm := metricdata.ResourceMetrics{}
	require.NoError(t, reader.Collect(context.Background(), &rm))
	require.Len(t, rm.ScopeMetrics, 1)
	require.Len(t, rm.ScopeMetrics[0].Metrics, 1)

	m := rm.ScopeMetrics[0].Metrics[0]
	assert.Equal(t, "http_request_duration", m.Name)

	hist, ok := m.Data.(metricdata.Histogram[int64])
	require.True(t, ok)

	recorded := map[string]string{}
	for _, dp := range hist.DataPoints {
		route, _ := dp.Attributes.Value(attribute.Key("route"))
		status, _ := dp.Attributes.Value(attribute.Key("status"))
		recorded[route.AsString()] = status.AsString()
		assert.Equal(t, uint64(1), dp.Count)
	}
	assert.Equal(t, map[string]string{
		"GET /api/enrich/providers":               "200",
		"GET /api/organizations/{orgId}/orgchart": "400",
	}, recorded)
}
