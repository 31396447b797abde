package handler

import (
	"path/filepath"

	"github.com/gin-gonic/gin"
)

// StaticHandler serves the fixed marketing pages from a sibling directory.
type StaticHandler struct {
	dir string
}

func NewStaticHandler(dir string) *StaticHandler {
	return &StaticHandler{dir: dir}
}

func (h *StaticHandler) Landing(c *gin.Context) {
	c.File(filepath.Join(h.dir, "landingpage.html"))
}

func (h *StaticHandler) Index(c *gin.Context) {
	c.File(filepath.Join(h.dir, "index.html"))
}

func (h *StaticHandler) Plan(c *gin.Context) {
	c.File(filepath.Join(h.dir, "plan.html"))
}
