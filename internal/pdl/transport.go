package pdl

import (
	"net/http"
)

type Transport struct {
	APIKey string
}

func (t Transport) Client() *http.Client {
	return &http.Client{Transport: t}
}

func (t Transport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Set("X-Api-Key", t.APIKey)
	req.Header.Set("Accept", "application/json")
	return http.DefaultTransport.RoundTrip(req)
}
