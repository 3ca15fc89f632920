package pdl_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/orgchart/orgchart-backend/internal/config"
	"github.com/orgchart/orgchart-backend/internal/pdl"
	"github.com/orgchart/orgchart-backend/internal/test"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	api "go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/sdk/metric"
	"go.opentelemetry.io/otel/sdk/metric/metricdata"
)

const apiKey = "pdl-key"

func TestBuildQuery(t *testing.T) {
	tests := []struct {
		name   string
		params pdl.SearchParams
		want   string
	}{
		{
			name: "no fields",
			want: `SELECT * FROM person WHERE job_title:"manager"`,
		},
		{
			name:   "company domain wins over company name",
			params: pdl.SearchParams{Company: "Acme", CompanyDomain: "acme.com", Title: "engineer"},
			want:   `SELECT * FROM person WHERE job_company_website:"acme.com" AND job_title:"engineer"`,
		},
		{
			name:   "all fields in order",
			params: pdl.SearchParams{Company: "Acme", Title: "VP", Seniority: "vp", Location: "Oslo", Name: "Ada Lovelace", FirstName: "Ada", LastName: "Lovelace"},
			want:   `SELECT * FROM person WHERE job_company_name:"Acme" AND job_title:"VP" AND job_title_levels:"vp" AND location_name:"Oslo" AND full_name:"Ada Lovelace" AND first_name:"Ada" AND last_name:"Lovelace"`,
		},
		{
			name:   "quotes are escaped",
			params: pdl.SearchParams{Company: `The "Best" Co`},
			want:   `SELECT * FROM person WHERE job_company_name:"The \"Best\" Co"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pdl.BuildQuery(tt.params))
		})
	}
}

func TestClient_SearchPeople(t *testing.T) {
	ctx := context.Background()
	log, _ := logrustest.NewNullLogger()

	t.Run("not configured", func(t *testing.T) {
		server := test.NewHttpServerWithHandlers(t, []http.HandlerFunc{})
		client := pdl.New(config.PDL{Endpoint: server.URL}, errorsMeter(t), log)

		assert.False(t, client.Configured())
		result, err := client.SearchPeople(ctx, pdl.SearchParams{})
		assert.ErrorIs(t, err, pdl.ErrNotConfigured)
		assert.Nil(t, result)
	})

	t.Run("request and mapping", func(t *testing.T) {
		server := test.NewHttpServerWithHandlers(t, []http.HandlerFunc{
			func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodPost, r.Method)
				assert.Equal(t, "/person/search", r.URL.Path)
				assert.Equal(t, apiKey, r.Header.Get("X-Api-Key"))
				assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

				body := map[string]any{}
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, `SELECT * FROM person WHERE job_title:"cto"`, body["sql"])
				assert.Equal(t, float64(25), body["size"])
				assert.Equal(t, true, body["pretty"])

				w.WriteHeader(http.StatusOK)
				w.Write([]byte(`{
					"status": 200,
					"total": 42,
					"data": [
						{"first_name": "ada", "last_name": "lovelace", "job_title": "cto", "work_email": "ada@acme.com", "phone_numbers": ["+4712345678"], "location_name": "oslo, norway", "job_company_name": "acme", "job_company_website": "acme.com"},
						{"first_name": "bob", "full_name": "bob builder", "title": "engineer", "emails": [{"address": "bob@example.com", "type": "personal"}], "phone_numbers": [{"number": "+4787654321"}], "work_email": true}
					]
				}`))
			},
		})
		client := pdl.New(config.PDL{Endpoint: server.URL + "/", APIKey: apiKey}, errorsMeter(t), log)

		result, err := client.SearchPeople(ctx, pdl.SearchParams{Title: "cto", Limit: 100})
		require.NoError(t, err)
		assert.Equal(t, 42, result.Total)
		require.Len(t, result.Results, 2)

		ada := result.Results[0]
		assert.Equal(t, "ada lovelace", ada.FullName)
		assert.Equal(t, "cto", *ada.Title)
		assert.Equal(t, "ada@acme.com", *ada.Email)
		assert.Equal(t, "+4712345678", *ada.Phone)
		assert.Equal(t, "oslo, norway", *ada.Location)
		assert.Equal(t, "acme", *ada.Company)
		assert.Equal(t, "acme.com", *ada.CompanyDomain)
		assert.Equal(t, pdl.SourcePDL, ada.Source)

		bob := result.Results[1]
		assert.Equal(t, "bob builder", bob.FullName)
		assert.Equal(t, "", bob.LastName)
		assert.Equal(t, "engineer", *bob.Title)
		assert.Equal(t, "bob@example.com", *bob.Email)
		assert.Equal(t, "+4787654321", *bob.Phone)
		assert.Nil(t, bob.Location)
		assert.Nil(t, bob.Company)
		assert.Nil(t, bob.CompanyDomain)
	})

	t.Run("default size and total from results", func(t *testing.T) {
		server := test.NewHttpServerWithHandlers(t, []http.HandlerFunc{
			func(w http.ResponseWriter, r *http.Request) {
				body := map[string]any{}
				assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
				assert.Equal(t, float64(10), body["size"])
				w.Write([]byte(`{"data": [{"first_name": "ada"}]}`))
			},
		})
		client := pdl.New(config.PDL{Endpoint: server.URL, APIKey: apiKey}, errorsMeter(t), log)

		result, err := client.SearchPeople(ctx, pdl.SearchParams{})
		require.NoError(t, err)
		assert.Equal(t, 1, result.Total)
		assert.Equal(t, "ada", result.Results[0].FullName)
	})

	t.Run("no results", func(t *testing.T) {
		server := test.NewHttpServerWithHandlers(t, []http.HandlerFunc{
			func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(`{"status": 200}`))
			},
		})
		client := pdl.New(config.PDL{Endpoint: server.URL, APIKey: apiKey}, errorsMeter(t), log)

		result, err := client.SearchPeople(ctx, pdl.SearchParams{Limit: -5})
		require.NoError(t, err)
		assert.Equal(t, 0, result.Total)
		assert.NotNil(t, result.Results)
		assert.Empty(t, result.Results)
	})

	t.Run("error response is counted", func(t *testing.T) {
		server := test.NewHttpServerWithHandlers(t, []http.HandlerFunc{
			func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusPaymentRequired)
				w.Write([]byte(`{"error": {"type": "payment_required"}}`))
			},
		})
		reader := metric.NewManualReader()
		counter, _ := metric.NewMeterProvider(metric.WithReader(reader)).Meter("test").Int64Counter("errors")
		client := pdl.New(config.PDL{Endpoint: server.URL, APIKey: apiKey}, counter, log)

		result, err := client.SearchPeople(ctx, pdl.SearchParams{})
		assert.Nil(t, result)

		var pdlErr *pdl.Error
		require.True(t, errors.As(err, &pdlErr))
		assert.Equal(t, http.StatusPaymentRequired, pdlErr.StatusCode)
		assert.Equal(t, `{"error": {"type": "payment_required"}}`, pdlErr.Body)

		rm := metricdata.ResourceMetrics{}
		require.NoError(t, reader.Collect(ctx, &rm))
		require.Len(t, rm.ScopeMetrics, 1)
		require.Len(t, rm.ScopeMetrics[0].Metrics, 1)
		sum, ok := rm.ScopeMetrics[0].Metrics[0].Data.(metricdata.Sum[int64])
		require.True(t, ok)
		require.Len(t, sum.DataPoints, 1)
		assert.Equal(t, int64(1), sum.DataPoints[0].Value)
		component, _ := sum.DataPoints[0].Attributes.Value("component")
		assert.Equal(t, "pdl-client", component.AsString())
	})
}

func errorsMeter(t *testing.T) api.Int64Counter {
	t.Helper()

	meter := metric.NewMeterProvider().Meter("github.com/orgchart/orgchart-backend")
	errors, _ := meter.Int64Counter("errors")
	return errors
}
