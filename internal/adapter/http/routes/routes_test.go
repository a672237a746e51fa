package routes

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"hvac_registry/internal/adapter/http/handlers/mocks"
	"hvac_registry/internal/domain/entities"
	"hvac_registry/internal/infrastructure/metrics"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func TestNewRouter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	uc := mocks.NewMockICatalogUseCase(ctrl)
	router := newRouter(uc, metrics.New("dynamodb"), zap.NewNop())

	t.Run("ping", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ping", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("export is not taken as an id", func(t *testing.T) {
		uc.EXPECT().ExportEquipments(gomock.Any()).DoAndReturn(func(w io.Writer) error {
			_, err := w.Write([]byte("PK"))
			return err
		})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/equipments/export", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("brands", func(t *testing.T) {
		uc.EXPECT().ListBrands().Return([]entities.ReferenceOption{{ID: 1, Name: "Daikin"}})

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/brands", nil))
		if w.Code != http.StatusOK || !strings.Contains(w.Body.String(), "Daikin") {
			t.Fatalf("unexpected response %d %s", w.Code, w.Body.String())
		}
	})

	t.Run("metrics", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if !strings.Contains(w.Body.String(), "hvac_registry_http_requests_total") {
			t.Fatalf("expected http metrics in output")
		}
	})
}
