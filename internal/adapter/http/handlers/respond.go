package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"hvac_registry/internal/usecase"
	"hvac_registry/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errRemoteStore = pkg.NewDomainErrorSimple("REMOTE_STORE_ERROR", "The remote store could not complete the operation", http.StatusBadGateway)

// abortWithError writes the error envelope. Server-side failures are logged,
// client errors are not.
func abortWithError(c *gin.Context, logger *zap.Logger, appErr *pkg.AppError) {
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logger.Error("request failed",
			zap.String("method", c.Request.Method),
			zap.String("path", c.FullPath()),
			zap.String("code", appErr.Code),
			zap.Error(appErr.Err),
		)
	}
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

// mapStoreError covers the errors every catalog operation can return.
func mapStoreError(err error) (*pkg.AppError, bool) {
	if errors.Is(err, usecase.ErrRemoteOperation) {
		return pkg.NewDomainError(errRemoteStore.Code, errRemoteStore.Message, err, errRemoteStore.HTTPStatus), true
	}
	return nil, false
}

func internalError(err error) *pkg.AppError {
	return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func validationDetails(err error) any {
	var verr *usecase.ValidationError
	if !errors.As(err, &verr) {
		return nil
	}
	return gin.H{"kind": verr.Kind, "fields": verr.Fields}
}
