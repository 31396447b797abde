package handler

import (
	"net/http"

	"visionflow/internal/services"
	"visionflow/internal/transport/httpdto"

	"github.com/gin-gonic/gin"
)

// ChatHandler routes chat requests, which may resolve to a text reply or
// a generated logo URL.
type ChatHandler struct {
	service *services.ChatService
}

func NewChatHandler(service *services.ChatService) *ChatHandler {
	return &ChatHandler{service: service}
}

func (h *ChatHandler) Chat(c *gin.Context) {
	var req httpdto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c)
		return
	}

	result, err := h.service.Converse(c.Request.Context(), services.ChatInput{
		Message: req.Message,
		Tool:    req.Tool,
		Email:   req.Email,
		Plan:    req.Plan,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	if result.ImageURL != "" {
		c.JSON(http.StatusOK, httpdto.ImageResponse{Image: result.ImageURL})
		return
	}
	c.JSON(http.StatusOK, httpdto.ReplyResponse{Reply: result.Reply})
}
