package repository

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"hvac_registry/internal/usecase/interfaces"

	"github.com/go-resty/resty/v2"
)

const preferRepresentation = "return=representation"

var errEmptyRepresentation = errors.New("empty representation returned")

type idRow struct {
	ID int64 `json:"id"`
}

// restError turns a transport error or non-2xx response into an error.
// PostgREST answers 409 on unique violations.
func restError(op, table string, resp *resty.Response, err error) error {
	if err != nil {
		return fmt.Errorf("%s %s: %w", op, table, err)
	}
	if resp.IsSuccess() {
		return nil
	}
	if resp.StatusCode() == http.StatusConflict {
		return interfaces.ErrStoreConflict
	}
	return fmt.Errorf("%s %s: status %d: %s", op, table, resp.StatusCode(), strings.TrimSpace(resp.String()))
}

func eqFilter(id int64) string {
	return "eq." + int64ToString(id)
}

func strPtr(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
