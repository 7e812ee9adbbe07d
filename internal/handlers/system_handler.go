package handlers

import (
	"github.com/gofiber/fiber/v2"
	pkgConfig "github.com/kerimovok/go-pkg-utils/config"
	"github.com/kerimovok/go-pkg-utils/httpx"

	"github.com/tokumei-gr/doki/internal/utils"
)

// SystemHandler handles host-environment requests
type SystemHandler struct {
	contentRoot string
}

func NewSystemHandler() *SystemHandler {
	return &SystemHandler{contentRoot: pkgConfig.GetEnv("CONTENT_ROOT")}
}

// FreeSpace returns the free bytes of the filesystem holding the content root
func (h *SystemHandler) FreeSpace(c *fiber.Ctx) error {
	free, err := utils.FreeDiskSpace(h.contentRoot)
	if err != nil {
		response := httpx.NotFound("Failed to read free disk space")
		return httpx.SendResponse(c, response)
	}
	response := httpx.OK("Free disk space retrieved successfully", free)
	return httpx.SendResponse(c, response)
}
