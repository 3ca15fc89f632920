package api_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/orgchart/orgchart-backend/internal/api"
	"github.com/orgchart/orgchart-backend/internal/config"
	"github.com/orgchart/orgchart-backend/internal/pdl"
	"github.com/orgchart/orgchart-backend/internal/test"
	logrustest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrichProviders(t *testing.T) {
	log, _ := logrustest.NewNullLogger()

	t.Run("nothing configured", func(t *testing.T) {
		rec := testServer{}.do(t, httptest.NewRequest(http.MethodGet, "/api/enrich/providers", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"clearbit": false, "zoominfo": false, "apollo": false, "pdl": false, "pdlSource": null}`, rec.Body.String())
	})

	t.Run("pdl key and provider flags", func(t *testing.T) {
		s := testServer{
			pdl: pdl.New(config.PDL{Endpoint: "http://pdl.invalid", APIKey: "key"}, errorsMeter(t), log),
			cfg: api.Config{
				Providers:    config.Providers{Apollo: true},
				PDLKeySource: "PEOPLE_DATA_LABS_API_KEY",
			},
		}

		rec := s.do(t, httptest.NewRequest(http.MethodGet, "/api/enrich/providers", nil))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"clearbit": false, "zoominfo": false, "apollo": true, "pdl": true, "pdlSource": "PEOPLE_DATA_LABS_API_KEY"}`, rec.Body.String())
	})
}

func TestSearchPDL(t *testing.T) {
	log, _ := logrustest.NewNullLogger()

	t.Run("not configured", func(t *testing.T) {
		rec := testServer{}.do(t, httptest.NewRequest(http.MethodPost, "/api/enrich/pdl/search", strings.NewReader(`{"company": "Acme"}`)))
		assertAPIError(t, rec, http.StatusBadRequest, "pdl_not_configured")
	})

	t.Run("contacts from people data labs", func(t *testing.T) {
		srv := test.NewHttpServerWithHandlers(t, []http.HandlerFunc{
			func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/person/search", r.URL.Path)
				assert.Equal(t, "key", r.Header.Get("X-Api-Key"))

				b, err := io.ReadAll(r.Body)
				require.NoError(t, err)
				req := map[string]any{}
				require.NoError(t, json.Unmarshal(b, &req))
				assert.Equal(t, `SELECT * FROM person WHERE job_company_name:"Acme" AND job_title:"CTO"`, req["sql"])
				assert.EqualValues(t, 10, req["size"])

				_, _ = w.Write([]byte(`{"status": 200, "total": 1, "data": [{
					"full_name": "ada lovelace",
					"job_title": "cto",
					"work_email": "ada@acme.com",
					"job_company_name": "acme"
				}]}`))
			},
		})
		defer srv.Close()

		s := testServer{pdl: pdl.New(config.PDL{Endpoint: srv.URL, APIKey: "key"}, errorsMeter(t), log)}
		rec := s.do(t, httptest.NewRequest(http.MethodPost, "/api/enrich/pdl/search", strings.NewReader(`{"company": "Acme", "title": "CTO"}`)))
		require.Equal(t, http.StatusOK, rec.Code)

		result := decodeBody[pdl.SearchResult](t, rec.Body)
		assert.Equal(t, 1, result.Total)
		require.Len(t, result.Results, 1)
		assert.Equal(t, "ada lovelace", result.Results[0].FullName)
		require.NotNil(t, result.Results[0].Email)
		assert.Equal(t, "ada@acme.com", *result.Results[0].Email)
		assert.Equal(t, pdl.SourcePDL, result.Results[0].Source)
	})

	t.Run("empty body uses the default query", func(t *testing.T) {
		srv := test.NewHttpServerWithHandlers(t, []http.HandlerFunc{
			func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"status": 200, "data": []}`))
			},
		})
		defer srv.Close()

		s := testServer{pdl: pdl.New(config.PDL{Endpoint: srv.URL, APIKey: "key"}, errorsMeter(t), log)}
		rec := s.do(t, httptest.NewRequest(http.MethodPost, "/api/enrich/pdl/search", nil))
		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"total": 0, "results": []}`, rec.Body.String())
	})

	t.Run("upstream error", func(t *testing.T) {
		srv := test.NewHttpServerWithHandlers(t, []http.HandlerFunc{
			func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusPaymentRequired)
				_, _ = w.Write([]byte(`{"error": {"type": "payment_required"}}`))
			},
		})
		defer srv.Close()

		s := testServer{pdl: pdl.New(config.PDL{Endpoint: srv.URL, APIKey: "key"}, errorsMeter(t), log)}
		rec := s.do(t, httptest.NewRequest(http.MethodPost, "/api/enrich/pdl/search", strings.NewReader(`{}`)))
		resp := assertAPIError(t, rec, http.StatusPaymentRequired, "pdl_error")
		assert.Contains(t, resp.Detail, "payment_required")
	})

	t.Run("invalid company domain", func(t *testing.T) {
		s := testServer{pdl: pdl.New(config.PDL{Endpoint: "http://pdl.invalid", APIKey: "key"}, errorsMeter(t), log)}
		rec := s.do(t, httptest.NewRequest(http.MethodPost, "/api/enrich/pdl/search", strings.NewReader(`{"companyDomain": "not a domain"}`)))
		assertAPIError(t, rec, http.StatusBadRequest, "validation_failed")
	})
}
