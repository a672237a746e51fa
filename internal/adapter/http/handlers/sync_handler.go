package handlers

import (
	"net/http"

	"hvac_registry/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SyncHandler struct {
	usecase usecase.ICatalogUseCase
	logger  *zap.Logger
}

func NewSyncHandler(uc usecase.ICatalogUseCase, logger *zap.Logger) *SyncHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SyncHandler{usecase: uc, logger: logger.Named("sync_handler")}
}

// Sync refetches the reference lists and the equipment collection and
// reports the new sizes.
//
// @Summary      Refetch everything from the remote store
// @Tags         sync
// @Produce      json
// @Success      200  {object}  map[string]int
// @Failure      502  {object}  pkg.HTTPError
// @Router       /sync [post]
func (h *SyncHandler) Sync(c *gin.Context) {
	if err := h.usecase.Load(c.Request.Context()); err != nil {
		abortWithError(c, h.logger, mapEquipmentError(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"equipments": len(h.usecase.ListEquipments("")),
		"brands":     len(h.usecase.ListBrands()),
		"locations":  len(h.usecase.ListLocations()),
	})
}
