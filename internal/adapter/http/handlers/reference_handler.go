package handlers

import (
	"context"
	"errors"
	"net/http"

	"hvac_registry/internal/adapter/http/dto/request"
	"hvac_registry/internal/adapter/http/dto/response"
	"hvac_registry/internal/domain/entities"
	"hvac_registry/internal/usecase"
	"hvac_registry/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidOptionPayload = pkg.NewDomainErrorSimple("INVALID_OPTION_INPUT", "Invalid reference option payload", http.StatusBadRequest)
	errInvalidOptionID      = pkg.NewDomainErrorSimple("INVALID_OPTION_ID", "Option id must be a positive integer", http.StatusBadRequest)
)

// ReferenceHandler serves the brand and location lists. Both lists share the
// same handlers; the routes bind them to one list or the other.
type ReferenceHandler struct {
	usecase usecase.ICatalogUseCase
	logger  *zap.Logger
}

func NewReferenceHandler(uc usecase.ICatalogUseCase, logger *zap.Logger) *ReferenceHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReferenceHandler{usecase: uc, logger: logger.Named("reference_handler")}
}

// ListBrands godoc
// @Summary      List brands
// @Tags         brands
// @Produce      json
// @Success      200  {array}  response.ReferenceOptionResponse
// @Router       /brands [get]
func (h *ReferenceHandler) ListBrands(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromReferenceOptions(h.usecase.ListBrands()))
}

// AddBrand godoc
// @Summary      Add a brand
// @Description  Answers 200 with the existing option when the name is already listed.
// @Tags         brands
// @Accept       json
// @Produce      json
// @Param        option  body      request.ReferenceOptionRequest  true  "Brand"
// @Success      201     {object}  response.ReferenceOptionResponse
// @Success      200     {object}  response.ReferenceOptionResponse
// @Failure      422     {object}  pkg.HTTPError
// @Router       /brands [post]
func (h *ReferenceHandler) AddBrand(c *gin.Context) {
	h.add(c, h.usecase.AddBrand)
}

// RemoveBrand godoc
// @Summary      Remove a brand
// @Tags         brands
// @Param        id   path  int  true  "Brand id"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /brands/{id} [delete]
func (h *ReferenceHandler) RemoveBrand(c *gin.Context) {
	h.remove(c, h.usecase.RemoveBrand)
}

// ListLocations godoc
// @Summary      List locations
// @Tags         locations
// @Produce      json
// @Success      200  {array}  response.ReferenceOptionResponse
// @Router       /locations [get]
func (h *ReferenceHandler) ListLocations(c *gin.Context) {
	c.JSON(http.StatusOK, response.FromReferenceOptions(h.usecase.ListLocations()))
}

// AddLocation godoc
// @Summary      Add a location
// @Tags         locations
// @Accept       json
// @Produce      json
// @Param        option  body      request.ReferenceOptionRequest  true  "Location"
// @Success      201     {object}  response.ReferenceOptionResponse
// @Success      200     {object}  response.ReferenceOptionResponse
// @Failure      422     {object}  pkg.HTTPError
// @Router       /locations [post]
func (h *ReferenceHandler) AddLocation(c *gin.Context) {
	h.add(c, h.usecase.AddLocation)
}

// RemoveLocation godoc
// @Summary      Remove a location
// @Tags         locations
// @Param        id   path  int  true  "Location id"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Failure      409  {object}  pkg.HTTPError
// @Router       /locations/{id} [delete]
func (h *ReferenceHandler) RemoveLocation(c *gin.Context) {
	h.remove(c, h.usecase.RemoveLocation)
}

// add answers 201 for a new option and 200 when the name was already listed.
func (h *ReferenceHandler) add(
	c *gin.Context,
	adder func(ctx context.Context, name string) (entities.ReferenceOption, bool, error),
) {
	var payload request.ReferenceOptionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, h.logger, errInvalidOptionPayload)
		return
	}

	opt, created, err := adder(c.Request.Context(), payload.Name)
	if err != nil {
		abortWithError(c, h.logger, mapReferenceError(err))
		return
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	c.JSON(status, response.ReferenceOptionResponse(opt))
}

func (h *ReferenceHandler) remove(c *gin.Context, remover func(ctx context.Context, id int64) error) {
	id, ok := parseID(c)
	if !ok {
		abortWithError(c, h.logger, errInvalidOptionID)
		return
	}

	if err := remover(c.Request.Context(), id); err != nil {
		abortWithError(c, h.logger, mapReferenceError(err))
		return
	}

	c.Status(http.StatusNoContent)
}

func mapReferenceError(err error) *pkg.AppError {
	if appErr, ok := mapStoreError(err); ok {
		return appErr
	}

	switch {
	case errors.Is(err, usecase.ErrInvalidOptionName):
		return pkg.NewDomainErrorSimple("INVALID_OPTION_NAME", "Option name must not be blank", http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrOptionNotFound):
		return pkg.NewDomainErrorSimple("OPTION_NOT_FOUND", "Reference option not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrOptionInUse):
		return pkg.NewDomainError("OPTION_IN_USE", "Reference option is still used by equipment", err, http.StatusConflict)
	default:
		return internalError(err)
	}
}
