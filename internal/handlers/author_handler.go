package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"
	pkgConfig "github.com/kerimovok/go-pkg-utils/config"
	"github.com/kerimovok/go-pkg-utils/httpx"

	"github.com/tokumei-gr/doki/internal/database"
	"github.com/tokumei-gr/doki/internal/services"
	"github.com/tokumei-gr/doki/internal/store"
)

// AuthorHandler handles author-related HTTP requests
type AuthorHandler struct {
	catalog  *services.CatalogService
	deletion *services.DeletionService
}

// NewAuthorHandler creates a new author handler over the shared database
func NewAuthorHandler() *AuthorHandler {
	gateway := store.NewGormGateway(database.DB)
	identity := services.NewIdentityService(gateway)
	return &AuthorHandler{
		catalog:  services.NewCatalogService(gateway, identity),
		deletion: services.NewDeletionService(gateway, pkgConfig.GetEnv("CONTENT_ROOT")),
	}
}

func parseAuthorID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}

// FilesByAuthor lists all files owned by the author token
func (h *AuthorHandler) FilesByAuthor(c *fiber.Ctx) error {
	authorID, err := parseAuthorID(c)
	if err != nil {
		response := httpx.BadRequest("Invalid author ID", err)
		return httpx.SendResponse(c, response)
	}

	files, err := h.catalog.AllByAuthor(c.Context(), authorID)
	if err != nil {
		response := httpx.InternalServerError("Failed to fetch files", err)
		return httpx.SendResponse(c, response)
	}
	response := httpx.OK("Files retrieved successfully", files)
	return httpx.SendResponse(c, response)
}

// AuthorName returns the display name behind a file-owning author id
func (h *AuthorHandler) AuthorName(c *fiber.Ctx) error {
	authorID, err := parseAuthorID(c)
	if err != nil {
		response := httpx.BadRequest("Invalid author ID", err)
		return httpx.SendResponse(c, response)
	}

	author, err := h.catalog.AuthorFor(c.Context(), authorID)
	if err != nil {
		response := httpx.InternalServerError("Failed to fetch author", err)
		return httpx.SendResponse(c, response)
	}
	if author == nil {
		response := httpx.NotFound("Author not found")
		return httpx.SendResponse(c, response)
	}
	response := httpx.OK("Author retrieved successfully", author.Name)
	return httpx.SendResponse(c, response)
}

// DeleteAuthor removes the author together with every owned file
func (h *AuthorHandler) DeleteAuthor(c *fiber.Ctx) error {
	authorID, err := parseAuthorID(c)
	if err != nil {
		response := httpx.BadRequest("Invalid author ID", err)
		return httpx.SendResponse(c, response)
	}

	if err := h.deletion.DeleteAuthorCascade(c.Context(), authorID); err != nil {
		response := httpx.NotFound("Failed to delete author")
		return httpx.SendResponse(c, response)
	}

	files, err := h.catalog.All(c.Context())
	if err != nil {
		response := httpx.InternalServerError("Failed to fetch files", err)
		return httpx.SendResponse(c, response)
	}
	response := httpx.OK("Author deleted successfully", files)
	return httpx.SendResponse(c, response)
}
