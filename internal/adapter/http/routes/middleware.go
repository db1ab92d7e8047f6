package routes

import (
	"net/http"
	"strings"
	"time"

	"oficina_mecanica/internal/infrastructure/logging"
	"oficina_mecanica/pkg"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	HeaderRequestID = "X-Request-ID"
	HeaderOperator  = "X-Operator"
)

// requestLogger attaches a request-scoped logger and the operator to the
// request context and logs each completed request.
func requestLogger(base *zap.Logger) gin.HandlerFunc {
	if base == nil {
		base = zap.NewNop()
	}
	return func(c *gin.Context) {
		requestID := strings.TrimSpace(c.GetHeader(HeaderRequestID))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		operator := strings.TrimSpace(c.GetHeader(HeaderOperator))
		if operator == "" {
			operator = logging.AnonymousOperator
		}
		c.Header(HeaderRequestID, requestID)

		logger := base.With(
			zap.String("request_id", requestID),
			zap.String("method", c.Request.Method),
			zap.String("route", c.FullPath()),
			zap.String("operator", operator),
		)
		ctx := logging.WithOperator(logging.WithLogger(c.Request.Context(), logger), operator)
		c.Request = c.Request.WithContext(ctx)

		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		fields := []zap.Field{
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
			zap.Int("bytes", c.Writer.Size()),
		}
		switch {
		case status >= http.StatusInternalServerError:
			logger.Error("request completed", fields...)
		case status >= http.StatusBadRequest:
			logger.Warn("request completed", fields...)
		default:
			logger.Info("request completed", fields...)
		}
	}
}

func recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logging.FromContext(c.Request.Context()).Error("recovered from panic", zap.Any("panic", recovered), zap.Stack("stack"))
		appErr := pkg.NewDomainErrorSimple("INTERNAL_ERROR", "An internal error occurred", http.StatusInternalServerError)
		c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
	})
}
