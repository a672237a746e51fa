package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"hvac_registry/internal/adapter/http/dto/response"
	"hvac_registry/internal/adapter/http/handlers/mocks"
	"hvac_registry/internal/domain/entities"
	"hvac_registry/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newReferenceRouter(uc usecase.ICatalogUseCase) *gin.Engine {
	h := NewReferenceHandler(uc, nil)
	r := gin.New()
	r.GET("/v1/brands", h.ListBrands)
	r.POST("/v1/brands", h.AddBrand)
	r.DELETE("/v1/brands/:id", h.RemoveBrand)
	r.GET("/v1/locations", h.ListLocations)
	r.POST("/v1/locations", h.AddLocation)
	r.DELETE("/v1/locations/:id", h.RemoveLocation)
	return r
}

func TestReferenceHandler_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockICatalogUseCase(ctrl)
	uc.EXPECT().ListLocations().Return([]entities.ReferenceOption{{ID: 1, Name: "Sala 5"}, {ID: 2, Name: "Telhado"}})

	w := httptest.NewRecorder()
	newReferenceRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/locations", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []response.ReferenceOptionResponse
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("invalid body: %v", err)
	}
	if len(body) != 2 || body[1].Name != "Telhado" {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestReferenceHandler_AddBrand(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICatalogUseCase(ctrl)

		w := httptest.NewRecorder()
		newReferenceRouter(uc).ServeHTTP(w, jsonRequest(http.MethodPost, "/v1/brands", `{}`))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("new brand", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICatalogUseCase(ctrl)
		uc.EXPECT().AddBrand(gomock.Any(), "Midea").Return(entities.ReferenceOption{ID: 3, Name: "Midea"}, true, nil)

		w := httptest.NewRecorder()
		newReferenceRouter(uc).ServeHTTP(w, jsonRequest(http.MethodPost, "/v1/brands", `{"nome":"Midea"}`))

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
	})

	t.Run("already listed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICatalogUseCase(ctrl)
		uc.EXPECT().AddBrand(gomock.Any(), "daikin").Return(entities.ReferenceOption{ID: 1, Name: "Daikin"}, false, nil)

		w := httptest.NewRecorder()
		newReferenceRouter(uc).ServeHTTP(w, jsonRequest(http.MethodPost, "/v1/brands", `{"nome":"daikin"}`))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("inserted by another session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICatalogUseCase(ctrl)
		// The status comes from AddBrand alone; the cached list is never read.
		uc.EXPECT().AddBrand(gomock.Any(), "LG").Return(entities.ReferenceOption{ID: 9, Name: "LG"}, false, nil)

		w := httptest.NewRecorder()
		newReferenceRouter(uc).ServeHTTP(w, jsonRequest(http.MethodPost, "/v1/brands", `{"nome":"LG"}`))

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var got response.ReferenceOptionResponse
		if err := json.Unmarshal(w.Body.Bytes(), &got); err != nil || got.ID != 9 {
			t.Fatalf("expected existing option in body, got %s", w.Body.String())
		}
	})

	t.Run("blank name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICatalogUseCase(ctrl)
		uc.EXPECT().AddBrand(gomock.Any(), "  ").Return(entities.ReferenceOption{}, false, usecase.ErrInvalidOptionName)

		w := httptest.NewRecorder()
		newReferenceRouter(uc).ServeHTTP(w, jsonRequest(http.MethodPost, "/v1/brands", `{"nome":"  "}`))

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})
}

func TestReferenceHandler_AddLocation(t *testing.T) {
	ctrl := gomock.NewController(t)
	uc := mocks.NewMockICatalogUseCase(ctrl)
	uc.EXPECT().AddLocation(gomock.Any(), "Cobertura").
		Return(entities.ReferenceOption{}, false, &usecase.RemoteError{Op: "insert locais", Err: errors.New("down")})

	w := httptest.NewRecorder()
	newReferenceRouter(uc).ServeHTTP(w, jsonRequest(http.MethodPost, "/v1/locations", `{"nome":"Cobertura"}`))

	if w.Code != http.StatusBadGateway {
		t.Fatalf("expected 502, got %d", w.Code)
	}
}

func TestReferenceHandler_Remove(t *testing.T) {
	t.Run("in use", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICatalogUseCase(ctrl)
		uc.EXPECT().RemoveBrand(gomock.Any(), int64(1)).Return(fmt.Errorf("%w: %q is used by 2 equipment", usecase.ErrOptionInUse, "Daikin"))

		w := httptest.NewRecorder()
		newReferenceRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/brands/1", nil))

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
		if got := decodeError(t, w).Code; got != "OPTION_IN_USE" {
			t.Fatalf("unexpected code %s", got)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICatalogUseCase(ctrl)
		uc.EXPECT().RemoveLocation(gomock.Any(), int64(8)).Return(usecase.ErrOptionNotFound)

		w := httptest.NewRecorder()
		newReferenceRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/locations/8", nil))

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("removed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICatalogUseCase(ctrl)
		uc.EXPECT().RemoveLocation(gomock.Any(), int64(2)).Return(nil)

		w := httptest.NewRecorder()
		newReferenceRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/locations/2", nil))

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("invalid id", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		uc := mocks.NewMockICatalogUseCase(ctrl)

		w := httptest.NewRecorder()
		newReferenceRouter(uc).ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/v1/locations/0", nil))

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
