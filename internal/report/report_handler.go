package report

import (
	"net/http"
	"strconv"

	"go-simpeg/internal/shared/apperror"
	"go-simpeg/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("report.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("report.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) LeaveRecap(c *gin.Context) {
	year, err := strconv.Atoi(c.Param("year"))
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Tahun tidak valid", nil)
		return
	}

	resp, err := h.service.LeaveRecap(c.Request.Context(), year)
	if err != nil {
		httpErr := apperror.ToHTTP(err)
		h.logger.Warn("leave recap request failed",
			zap.Int("year", year),
			zap.Int("status", httpErr.Status),
			zap.String("code", httpErr.Code),
		)
		response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}
