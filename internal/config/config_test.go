package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFirstEnv(t *testing.T) {
	t.Run("nothing set", func(t *testing.T) {
		clearPDLKeys(t)

		name, value := firstEnv(pdlKeyVariables...)
		assert.Empty(t, name)
		assert.Empty(t, value)
	})

	t.Run("first non-empty wins", func(t *testing.T) {
		clearPDLKeys(t)
		t.Setenv("PDL_KEY", "key-1")
		t.Setenv("PDLAPIKEY", "key-2")

		name, value := firstEnv(pdlKeyVariables...)
		assert.Equal(t, "PDL_KEY", name)
		assert.Equal(t, "key-1", value)
	})

	t.Run("preferred variable", func(t *testing.T) {
		clearPDLKeys(t)
		t.Setenv("PDL_API_KEY", "main")
		t.Setenv("PDLAPIKEY", "other")

		name, value := firstEnv(pdlKeyVariables...)
		assert.Equal(t, "PDL_API_KEY", name)
		assert.Equal(t, "main", value)
	})
}

func TestHelpers(t *testing.T) {
	t.Run("envOrDefault keeps an explicitly empty value", func(t *testing.T) {
		t.Setenv("ORGCHART_TEST_VALUE", "")
		assert.Equal(t, "", envOrDefault("ORGCHART_TEST_VALUE", "fallback"))
		assert.Equal(t, "fallback", envOrDefault("ORGCHART_TEST_UNSET", "fallback"))
	})

	t.Run("getEnv falls back on empty values", func(t *testing.T) {
		t.Setenv("ORGCHART_TEST_VALUE", "")
		assert.Equal(t, "fallback", getEnv("ORGCHART_TEST_VALUE", "fallback"))
		t.Setenv("ORGCHART_TEST_VALUE", "value")
		assert.Equal(t, "value", getEnv("ORGCHART_TEST_VALUE", "fallback"))
	})

	t.Run("splitEnv", func(t *testing.T) {
		t.Setenv("ORGCHART_TEST_VALUE", "a,b")
		assert.Equal(t, []string{"a", "b"}, splitEnv("ORGCHART_TEST_VALUE", ","))
		assert.Nil(t, splitEnv("ORGCHART_TEST_UNSET", ","))
	})
}

func TestNew(t *testing.T) {
	clearPDLKeys(t)
	t.Setenv("PEOPLEDATALABS_API_KEY", "pdl-secret")
	t.Setenv("APOLLO_API_KEY", "apollo")
	t.Setenv("CLEARBIT_API_KEY", "")
	t.Setenv("ZOOMINFO_API_KEY", "")
	t.Setenv("PDL_ENDPOINT", "http://pdl.local")

	cfg := New()
	assert.Equal(t, "pdl-secret", cfg.PDL.APIKey)
	assert.Equal(t, "PEOPLEDATALABS_API_KEY", cfg.PDL.KeySource)
	assert.Equal(t, "http://pdl.local", cfg.PDL.Endpoint)
	assert.Equal(t, Providers{Apollo: true}, cfg.Providers)
	assert.Equal(t, []string{"https://*", "http://*"}, cfg.AllowedOrigins)
	assert.Equal(t, int64(10<<20), cfg.MaxUploadBytes)
}

func clearPDLKeys(t *testing.T) {
	t.Helper()
	for _, key := range pdlKeyVariables {
		t.Setenv(key, "")
	}
}
