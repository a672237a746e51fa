package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"hvac_registry/internal/adapter/http/dto/response"
	"hvac_registry/internal/adapter/http/handlers/mocks"
	"hvac_registry/internal/domain/entities"
	"hvac_registry/internal/domain/variant"
	"hvac_registry/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestModelFamilyHandler(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICatalogUseCase(ctrl)
		uc.EXPECT().Profile(gomock.Any()).DoAndReturn(func(family string) (entities.ModelFamily, variant.Profile, error) {
			f := entities.ModelFamily(family)
			p, err := variant.Resolve(f)
			return f, p, err
		}).Times(len(variant.Families()))

		h := NewModelFamilyHandler(uc, nil)
		r := gin.New()
		r.GET("/v1/model-families", h.ListModelFamilies)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/model-families", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []response.ProfileResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if len(body) != 6 || body[0].ModelFamily != "Fancoil" || !body[0].Profile.AllowsFilters {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("profile", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICatalogUseCase(ctrl)
		p, _ := variant.Resolve(entities.ModelFamilyPisoTeto)
		uc.EXPECT().Profile("pisoteto").Return(entities.ModelFamilyPisoTeto, p, nil)

		h := NewModelFamilyHandler(uc, nil)
		r := gin.New()
		r.GET("/v1/model-families/:family/profile", h.GetProfile)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/model-families/pisoteto/profile", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body response.ProfileResponse
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body.ModelFamily != "Piso Teto" || !body.Profile.RequiresSplitLocations {
			t.Fatalf("unexpected body: %+v", body)
		}
	})

	t.Run("unknown family", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICatalogUseCase(ctrl)
		uc.EXPECT().Profile("split").Return(entities.ModelFamily(""), variant.Profile{}, variant.ErrUnknownModelFamily)

		h := NewModelFamilyHandler(uc, nil)
		r := gin.New()
		r.GET("/v1/model-families/:family/profile", h.GetProfile)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/model-families/split/profile", nil))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestSyncHandler(t *testing.T) {
	t.Run("synced", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICatalogUseCase(ctrl)
		uc.EXPECT().Load(gomock.Any()).Return(nil)
		uc.EXPECT().ListEquipments("").Return([]entities.Equipment{sampleEquipment()})
		uc.EXPECT().ListBrands().Return([]entities.ReferenceOption{{ID: 1, Name: "Daikin"}})
		uc.EXPECT().ListLocations().Return(nil)

		h := NewSyncHandler(uc, nil)
		r := gin.New()
		r.POST("/v1/sync", h.Sync)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/sync", nil))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]int
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if body["equipments"] != 1 || body["brands"] != 1 || body["locations"] != 0 {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("remote failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICatalogUseCase(ctrl)
		uc.EXPECT().Load(gomock.Any()).Return(&usecase.RemoteError{Op: "list marcas", Err: errors.New("down")})

		h := NewSyncHandler(uc, nil)
		r := gin.New()
		r.POST("/v1/sync", h.Sync)

		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/sync", nil))

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}
