package rest

import (
	"hvac_registry/internal/config"

	"github.com/go-resty/resty/v2"
)

// NewClient returns a resty client for a PostgREST-compatible endpoint such
// as Supabase. The key is sent both as apikey and as bearer token. Requests
// are not retried.
func NewClient(cfg config.RESTConfig) *resty.Client {
	c := resty.New().
		SetBaseURL(cfg.BaseURL+"/rest/v1").
		SetTimeout(cfg.Timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	if cfg.APIKey != "" {
		c.SetHeader("apikey", cfg.APIKey).SetAuthToken(cfg.APIKey)
	}
	return c
}
