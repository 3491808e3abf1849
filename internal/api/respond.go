package api

import (
	"alcyxob/fitness-tracker/internal/logger"
	"alcyxob/fitness-tracker/internal/service"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// respondError maps a service error onto the {message} contract:
// NotFoundError is a 404, anything else a 500.
func respondError(c *gin.Context, err error) {
	var notFound *service.NotFoundError
	if errors.As(err, &notFound) {
		abortWithError(c, http.StatusNotFound, notFound.Error())
		return
	}

	logger.FromGin(c).Error("request failed", zap.Error(err))
	_ = c.Error(err)
	abortWithError(c, http.StatusInternalServerError, err.Error())
}

// bindBody decodes a JSON body into obj. A missing body counts as {}.
func bindBody(c *gin.Context, obj any) error {
	if c.Request.Body == nil || c.Request.ContentLength == 0 {
		return nil
	}
	if err := c.ShouldBindJSON(obj); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}
