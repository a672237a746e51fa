package handlers

import (
	"errors"
	"net/http"

	"hvac_registry/internal/adapter/http/dto/response"
	"hvac_registry/internal/domain/variant"
	"hvac_registry/internal/usecase"
	"hvac_registry/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ModelFamilyHandler lets a UI decide which form fields to show.
type ModelFamilyHandler struct {
	usecase usecase.ICatalogUseCase
	logger  *zap.Logger
}

func NewModelFamilyHandler(uc usecase.ICatalogUseCase, logger *zap.Logger) *ModelFamilyHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ModelFamilyHandler{usecase: uc, logger: logger.Named("model_family_handler")}
}

// ListModelFamilies godoc
// @Summary      List model families with their field profiles
// @Tags         model-families
// @Produce      json
// @Success      200  {array}  response.ProfileResponse
// @Router       /model-families [get]
func (h *ModelFamilyHandler) ListModelFamilies(c *gin.Context) {
	families := variant.Families()
	out := make([]response.ProfileResponse, 0, len(families))
	for _, f := range families {
		family, profile, err := h.usecase.Profile(string(f))
		if err != nil {
			abortWithError(c, h.logger, mapModelFamilyError(err))
			return
		}
		out = append(out, response.FromProfile(family, profile))
	}
	c.JSON(http.StatusOK, out)
}

// GetProfile godoc
// @Summary      Field profile of a model family
// @Tags         model-families
// @Produce      json
// @Param        family  path      string  true  "Model family, any case"
// @Success      200     {object}  response.ProfileResponse
// @Failure      404     {object}  pkg.HTTPError
// @Router       /model-families/{family}/profile [get]
func (h *ModelFamilyHandler) GetProfile(c *gin.Context) {
	family, profile, err := h.usecase.Profile(c.Param("family"))
	if err != nil {
		abortWithError(c, h.logger, mapModelFamilyError(err))
		return
	}
	c.JSON(http.StatusOK, response.FromProfile(family, profile))
}

func mapModelFamilyError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, variant.ErrUnknownModelFamily):
		return pkg.NewDomainErrorSimple("MODEL_FAMILY_NOT_FOUND", "Unknown model family", http.StatusNotFound)
	default:
		return internalError(err)
	}
}
