package handlers

import (
	"errors"
	"net/http"

	request "oficina_mecanica/internal/adapter/http/dto/request"
	"oficina_mecanica/internal/domain/entities"
	"oficina_mecanica/internal/infrastructure/logging"
	"oficina_mecanica/pkg"
	"oficina_mecanica/pkg/pagination"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var errInvalidRequest = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)

// mapDomainError translates the core's error kinds into HTTP envelopes.
// Business rule and validation messages are shown to the client as-is.
func mapDomainError(err error) *pkg.AppError {
	var (
		notFound   *entities.NotFoundError
		rule       *entities.BusinessRuleError
		validation *entities.ValidationError
	)
	switch {
	case errors.As(err, &validation):
		return pkg.NewDomainError("INVALID_REQUEST", validation.Error(), err, http.StatusBadRequest)
	case errors.Is(err, entities.ErrValidation):
		return pkg.NewDomainError("INVALID_REQUEST", err.Error(), err, http.StatusBadRequest)
	case errors.Is(err, pagination.ErrInvalidPageToken):
		return pkg.NewDomainError("INVALID_PAGE_TOKEN", "Invalid page token", err, http.StatusBadRequest)
	case errors.As(err, &notFound):
		return pkg.NewDomainError("NOT_FOUND", notFound.Error(), err, http.StatusNotFound)
	case errors.Is(err, entities.ErrNotFound):
		return pkg.NewDomainError("NOT_FOUND", "Not found", err, http.StatusNotFound)
	case errors.As(err, &rule):
		return pkg.NewDomainError("BUSINESS_RULE_VIOLATION", rule.Reason, err, http.StatusBadRequest)
	case errors.Is(err, entities.ErrConflict):
		return pkg.NewDomainError("CONFLICT", "The resource was modified concurrently, retry the request", err, http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}

func writeError(c *gin.Context, appErr *pkg.AppError) {
	logger := logging.FromContext(c.Request.Context())
	if appErr.HTTPStatus >= http.StatusInternalServerError {
		logger.Error("request failed", zap.String("code", appErr.Code), zap.Error(appErr))
	} else {
		logger.Info("request rejected", zap.String("code", appErr.Code), zap.String("reason", appErr.Message))
	}
	c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
}

func writeDomainError(c *gin.Context, err error) {
	writeError(c, mapDomainError(err))
}

func bindPage(c *gin.Context) (entities.PageRequest, bool) {
	var q request.PageQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		writeError(c, pkg.NewDomainError("INVALID_REQUEST", "Invalid pagination parameters", err, http.StatusBadRequest))
		return entities.PageRequest{}, false
	}
	return q.ToPageRequest(), true
}
