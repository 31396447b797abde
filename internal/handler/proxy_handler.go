package handler

import (
	"net/http"
	"strings"
	"time"

	"visionflow/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ProxyHandler relays a generated image so the browser can download it
// without tripping over the provider's CORS policy.
type ProxyHandler struct {
	client *http.Client
	log    *logger.Logger
}

func NewProxyHandler(log *logger.Logger) *ProxyHandler {
	return &ProxyHandler{
		client: &http.Client{Timeout: 30 * time.Second},
		log:    log,
	}
}

func (h *ProxyHandler) ProxyImage(c *gin.Context) {
	rawURL := c.Query("url")
	if !strings.HasPrefix(rawURL, "https://") {
		c.String(http.StatusBadRequest, "Invalid image URL")
		return
	}

	req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodGet, rawURL, nil)
	if err != nil {
		c.String(http.StatusBadRequest, "Invalid image URL")
		return
	}

	resp, err := h.client.Do(req)
	if err != nil {
		h.log.Errorf("image proxy fetch failed: %s", err)
		c.String(http.StatusInternalServerError, "Failed to fetch image")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		h.log.Errorf("image proxy upstream returned %d", resp.StatusCode)
		c.String(http.StatusInternalServerError, "Failed to fetch image")
		return
	}

	contentType := resp.Header.Get("Content-Type")
	if contentType == "" {
		contentType = "image/png"
	}

	c.Header("Content-Disposition", "attachment; filename=logo.png")
	c.Header("Access-Control-Allow-Origin", "*")
	c.DataFromReader(http.StatusOK, resp.ContentLength, contentType, resp.Body, nil)
}
