package pdl

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/orgchart/orgchart-backend/internal/config"
	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	defaultSize  = 10
	maxSize      = 25
	defaultQuery = `SELECT * FROM person WHERE job_title:"manager"`

	// SourcePDL is the person source of contacts found through People Data Labs
	SourcePDL = "pdl"
)

var ErrNotConfigured = errors.New("PDL_API_KEY not configured")

// Error is a non-200 response from People Data Labs
type Error struct {
	StatusCode int
	Body       string
}

func (e *Error) Error() string {
	return fmt.Sprintf("pdl: status %d: %s", e.StatusCode, e.Body)
}

// SearchParams are the fields a person search can be narrowed by. Empty fields are ignored.
type SearchParams struct {
	Name          string `json:"name"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Company       string `json:"company"`
	CompanyDomain string `json:"companyDomain" validate:"omitempty,hostname"`
	Title         string `json:"title"`
	Seniority     string `json:"seniority"`
	Location      string `json:"location"`
	Limit         int    `json:"limit"`
}

// Contact is a person found through People Data Labs
type Contact struct {
	FirstName     string  `json:"firstName"`
	LastName      string  `json:"lastName"`
	FullName      string  `json:"fullName"`
	Title         *string `json:"title"`
	Email         *string `json:"email"`
	Phone         *string `json:"phone"`
	Location      *string `json:"location"`
	Company       *string `json:"company"`
	CompanyDomain *string `json:"companyDomain"`
	Source        string  `json:"source"`
}

type SearchResult struct {
	Total   int       `json:"total"`
	Results []Contact `json:"results"`
}

type Client struct {
	endpoint   string
	apiKey     string
	httpClient *http.Client
	log        logrus.FieldLogger
	errors     metric.Int64Counter
}

func New(cfg config.PDL, errors metric.Int64Counter, log logrus.FieldLogger) *Client {
	return &Client{
		endpoint:   strings.TrimSuffix(cfg.Endpoint, "/"),
		apiKey:     cfg.APIKey,
		httpClient: Transport{APIKey: cfg.APIKey}.Client(),
		log:        log,
		errors:     errors,
	}
}

// Configured reports whether the client has an API key
func (c *Client) Configured() bool {
	return c.apiKey != ""
}

// SearchPeople runs a person search against the People Data Labs search API
func (c *Client) SearchPeople(ctx context.Context, params SearchParams) (*SearchResult, error) {
	if !c.Configured() {
		return nil, ErrNotConfigured
	}

	body, err := json.Marshal(searchRequest{
		SQL:    BuildQuery(params),
		Size:   clampSize(params.Limit),
		Pretty: true,
	})
	if err != nil {
		return nil, fmt.Errorf("encoding search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/person/search", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.error(ctx, err, "searching people data labs")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 64<<10))
		return nil, c.error(ctx, &Error{StatusCode: resp.StatusCode, Body: string(text)}, "searching people data labs")
	}

	var data searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&data); err != nil {
		return nil, c.error(ctx, err, "decoding people data labs response")
	}

	results := make([]Contact, 0, len(data.Data))
	for _, p := range data.Data {
		results = append(results, p.contact())
	}

	total := data.Total
	if total == 0 {
		total = len(results)
	}

	c.log.WithField("results", len(results)).Debug("people data labs search")
	return &SearchResult{Total: total, Results: results}, nil
}

// BuildQuery returns the PDL SQL query for params
func BuildQuery(params SearchParams) string {
	conditions := []string{}
	add := func(field, value string) {
		if value != "" {
			conditions = append(conditions, fmt.Sprintf(`%s:"%s"`, field, escape(value)))
		}
	}

	if params.CompanyDomain != "" {
		add("job_company_website", params.CompanyDomain)
	} else {
		add("job_company_name", params.Company)
	}
	add("job_title", params.Title)
	add("job_title_levels", params.Seniority)
	add("location_name", params.Location)
	add("full_name", params.Name)
	add("first_name", params.FirstName)
	add("last_name", params.LastName)

	if len(conditions) == 0 {
		return defaultQuery
	}
	return "SELECT * FROM person WHERE " + strings.Join(conditions, " AND ")
}

func escape(s string) string {
	return strings.ReplaceAll(s, `"`, `\"`)
}

func clampSize(limit int) int {
	switch {
	case limit == 0:
		return defaultSize
	case limit < 1:
		return 1
	case limit > maxSize:
		return maxSize
	}
	return limit
}

func (c *Client) error(ctx context.Context, err error, msg string) error {
	c.errors.Add(ctx, 1, metric.WithAttributes(attribute.String("component", "pdl-client")))
	c.log.WithError(err).Error(msg)
	return fmt.Errorf("%s: %w", msg, err)
}
