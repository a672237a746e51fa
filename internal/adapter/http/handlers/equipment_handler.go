package handlers

import (
	"bytes"
	"errors"
	"net/http"

	"hvac_registry/internal/adapter/http/dto/request"
	"hvac_registry/internal/adapter/http/dto/response"
	"hvac_registry/internal/usecase"
	"hvac_registry/internal/usecase/interfaces"
	"hvac_registry/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

var (
	errInvalidEquipmentPayload = pkg.NewDomainErrorSimple("INVALID_EQUIPMENT_INPUT", "Invalid equipment payload", http.StatusBadRequest)
	errInvalidEquipmentID      = pkg.NewDomainErrorSimple("INVALID_EQUIPMENT_ID", "Equipment id must be a positive integer", http.StatusBadRequest)
	errMissingImportFile       = pkg.NewDomainErrorSimple("INVALID_IMPORT_FILE", "An XLSX workbook must be sent in the file field", http.StatusBadRequest)
)

// EquipmentHandler exposes the equipment registry.
type EquipmentHandler struct {
	usecase usecase.ICatalogUseCase
	logger  *zap.Logger
}

func NewEquipmentHandler(uc usecase.ICatalogUseCase, logger *zap.Logger) *EquipmentHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &EquipmentHandler{usecase: uc, logger: logger.Named("equipment_handler")}
}

// ListEquipments godoc
// @Summary      List equipment
// @Tags         equipments
// @Produce      json
// @Param        search  query     string  false  "Substring of tag, model family or location"
// @Success      200     {array}   response.EquipmentResponse
// @Router       /equipments [get]
func (h *EquipmentHandler) ListEquipments(c *gin.Context) {
	items := h.usecase.ListEquipments(c.Query("search"))
	c.JSON(http.StatusOK, response.FromEquipments(items))
}

// GetEquipment godoc
// @Summary      Get equipment by id
// @Tags         equipments
// @Produce      json
// @Param        id   path      int  true  "Equipment id"
// @Success      200  {object}  response.EquipmentResponse
// @Failure      400  {object}  pkg.HTTPError
// @Failure      404  {object}  pkg.HTTPError
// @Router       /equipments/{id} [get]
func (h *EquipmentHandler) GetEquipment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		abortWithError(c, h.logger, errInvalidEquipmentID)
		return
	}

	equipment, err := h.usecase.GetEquipment(id)
	if err != nil {
		abortWithError(c, h.logger, mapEquipmentError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromEquipment(equipment))
}

// CreateEquipment godoc
// @Summary      Register equipment
// @Tags         equipments
// @Accept       json
// @Produce      json
// @Param        equipment  body      request.EquipmentRequest  true  "Equipment"
// @Success      201        {object}  response.EquipmentResponse
// @Failure      400        {object}  pkg.HTTPError
// @Failure      409        {object}  pkg.HTTPError
// @Failure      422        {object}  pkg.HTTPError
// @Failure      502        {object}  pkg.HTTPError
// @Router       /equipments [post]
func (h *EquipmentHandler) CreateEquipment(c *gin.Context) {
	var payload request.EquipmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, h.logger, errInvalidEquipmentPayload.WithDetails(err.Error()))
		return
	}

	created, err := h.usecase.CreateEquipment(c.Request.Context(), payload.ToDraft())
	if err != nil {
		abortWithError(c, h.logger, mapEquipmentError(err))
		return
	}

	c.JSON(http.StatusCreated, response.FromEquipment(created))
}

// UpdateEquipment replaces every field of the record; fields left out of the
// payload are cleared.
//
// @Summary      Replace equipment
// @Tags         equipments
// @Accept       json
// @Produce      json
// @Param        id         path      int                       true  "Equipment id"
// @Param        equipment  body      request.EquipmentRequest  true  "Equipment"
// @Success      200        {object}  response.EquipmentResponse
// @Failure      404        {object}  pkg.HTTPError
// @Failure      409        {object}  pkg.HTTPError
// @Failure      422        {object}  pkg.HTTPError
// @Failure      502        {object}  pkg.HTTPError
// @Router       /equipments/{id} [put]
func (h *EquipmentHandler) UpdateEquipment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		abortWithError(c, h.logger, errInvalidEquipmentID)
		return
	}

	var payload request.EquipmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		abortWithError(c, h.logger, errInvalidEquipmentPayload.WithDetails(err.Error()))
		return
	}

	updated, err := h.usecase.UpdateEquipment(c.Request.Context(), id, payload.ToDraft())
	if err != nil {
		abortWithError(c, h.logger, mapEquipmentError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromEquipment(updated))
}

// DeleteEquipment godoc
// @Summary      Delete equipment
// @Tags         equipments
// @Param        id   path  int  true  "Equipment id"
// @Success      204
// @Failure      404  {object}  pkg.HTTPError
// @Failure      502  {object}  pkg.HTTPError
// @Router       /equipments/{id} [delete]
func (h *EquipmentHandler) DeleteEquipment(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		abortWithError(c, h.logger, errInvalidEquipmentID)
		return
	}

	if err := h.usecase.DeleteEquipment(c.Request.Context(), id); err != nil {
		abortWithError(c, h.logger, mapEquipmentError(err))
		return
	}

	c.Status(http.StatusNoContent)
}

// ExportEquipments godoc
// @Summary      Export equipment as XLSX
// @Tags         equipments
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  file
// @Router       /equipments/export [get]
func (h *EquipmentHandler) ExportEquipments(c *gin.Context) {
	var buf bytes.Buffer
	if err := h.usecase.ExportEquipments(&buf); err != nil {
		abortWithError(c, h.logger, mapEquipmentError(err))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="equipamentos.xlsx"`)
	c.Data(http.StatusOK, xlsxContentType, buf.Bytes())
}

// ImportEquipments reads the multipart field "file". Rejected rows are
// reported in the body; the status is 200 as long as the workbook was read.
//
// @Summary      Import equipment from XLSX
// @Tags         equipments
// @Accept       multipart/form-data
// @Produce      json
// @Param        file  formData  file  true  "XLSX workbook"
// @Success      200   {object}  response.ImportReportResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /equipments/import [post]
func (h *EquipmentHandler) ImportEquipments(c *gin.Context) {
	header, err := c.FormFile("file")
	if err != nil {
		abortWithError(c, h.logger, errMissingImportFile)
		return
	}
	file, err := header.Open()
	if err != nil {
		abortWithError(c, h.logger, errMissingImportFile)
		return
	}
	defer file.Close()

	report, err := h.usecase.ImportEquipments(c.Request.Context(), file)
	if err != nil {
		abortWithError(c, h.logger, mapEquipmentError(err))
		return
	}

	c.JSON(http.StatusOK, response.FromImportReport(report))
}

func mapEquipmentError(err error) *pkg.AppError {
	if appErr, ok := mapStoreError(err); ok {
		return appErr
	}

	switch {
	case errors.Is(err, usecase.ErrDuplicateTag):
		return pkg.NewDomainErrorSimple("DUPLICATE_TAG", "Another equipment already uses this tag", http.StatusConflict).WithDetails(validationDetails(err))
	case errors.Is(err, usecase.ErrMissingRequiredField):
		return pkg.NewDomainErrorSimple("MISSING_REQUIRED_FIELDS", "Required fields are missing", http.StatusUnprocessableEntity).WithDetails(validationDetails(err))
	case errors.Is(err, usecase.ErrUnknownReference):
		return pkg.NewDomainErrorSimple("UNKNOWN_REFERENCE", "Brand or location is not registered", http.StatusUnprocessableEntity).WithDetails(validationDetails(err))
	case errors.Is(err, usecase.ErrInvalidValue):
		return pkg.NewDomainErrorSimple("INVALID_FIELD_VALUE", "Some fields have values outside their lists", http.StatusUnprocessableEntity).WithDetails(validationDetails(err))
	case errors.Is(err, usecase.ErrFilterRowNotFound), errors.Is(err, usecase.ErrFiltersNotAllowed):
		return pkg.NewDomainError("INVALID_FILTERS", "Filter rows are not valid for this equipment", err, http.StatusUnprocessableEntity)
	case errors.Is(err, usecase.ErrEquipmentNotFound):
		return pkg.NewDomainErrorSimple("EQUIPMENT_NOT_FOUND", "Equipment not found", http.StatusNotFound)
	case errors.Is(err, interfaces.ErrInvalidSheet):
		return pkg.NewDomainError(errMissingImportFile.Code, "The workbook could not be read", err, http.StatusBadRequest)
	default:
		return internalError(err)
	}
}
