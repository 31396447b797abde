package handler

import (
	"net/http"

	"visionflow/internal/services"
	"visionflow/internal/transport/httpdto"
	"visionflow/pkg/logger"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	service  *services.ContactService
	waitlist *services.WaitlistService
	log      *logger.Logger
}

func NewContactHandler(service *services.ContactService, waitlist *services.WaitlistService, log *logger.Logger) *ContactHandler {
	return &ContactHandler{service: service, waitlist: waitlist, log: log}
}

func (h *ContactHandler) SendMessage(c *gin.Context) {
	var req httpdto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeBindError(c)
		return
	}

	submission, err := h.service.Submit(c.Request.Context(), req.Name, req.Email, req.Message)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, httpdto.ContactResponse{
		Success: true,
		Data: []httpdto.ContactDTO{{
			Name:    submission.Name,
			Email:   submission.Email,
			Message: submission.Message,
		}},
	})
}

// AddWaitlist always answers success; storage problems are logged but the
// route's contract declares no failure codes.
func (h *ContactHandler) AddWaitlist(c *gin.Context) {
	var req httpdto.WaitlistRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusOK, httpdto.WaitlistResponse{Success: true})
		return
	}

	if err := h.waitlist.Join(c.Request.Context(), req.Email); err != nil {
		h.log.Errorf("waitlist signup failed for %s: %s", req.Email, err)
	}

	c.JSON(http.StatusOK, httpdto.WaitlistResponse{Success: true})
}
