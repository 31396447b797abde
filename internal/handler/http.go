// Package handler provides the HTTP handlers for all API routes.
package handler

import (
	"net/http"

	"visionflow/internal/services"
	"visionflow/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

func writeError(c *gin.Context, err error) {
	c.JSON(services.HTTPStatus(err), httpdto.NewErrorResponse(err.Error()))
}

func writeBindError(c *gin.Context) {
	c.JSON(http.StatusBadRequest, httpdto.NewErrorResponse("Invalid request body."))
}
