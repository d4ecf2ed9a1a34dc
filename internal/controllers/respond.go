package controllers

import (
	"io"
	"net/http"

	"github.com/franciscosanchezn/pizza-restaurants-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

var log = logrus.New()

func init() {
	log.SetFormatter(&logrus.JSONFormatter{})
	log.SetLevel(logrus.InfoLevel)
}

// SetLogOutput redirects the package logger, tests pass io.Discard
func SetLogOutput(w io.Writer) {
	log.SetOutput(w)
}

// SetLogLevel aligns the package logger with the application level
func SetLogLevel(level logrus.Level) {
	log.SetLevel(level)
}

// respondInternalError logs the cause and answers with a generic 500 body
func respondInternalError(ctx *gin.Context, err error, message string) {
	log.WithFields(logrus.Fields{
		"request_id": ctx.GetString("requestID"),
		"path":       ctx.FullPath(),
	}).WithError(err).Error(message)
	ctx.JSON(http.StatusInternalServerError, models.NewErrorResponse(message))
}

func respondRestaurantNotFound(ctx *gin.Context) {
	ctx.JSON(http.StatusNotFound, models.NewErrorResponse(models.MsgRestaurantNotFound))
}
