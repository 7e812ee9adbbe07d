package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/kerimovok/go-pkg-utils/httpx"
	"github.com/kerimovok/go-pkg-utils/validator"

	"github.com/tokumei-gr/doki/internal/database"
	"github.com/tokumei-gr/doki/internal/requests"
	"github.com/tokumei-gr/doki/internal/services"
	"github.com/tokumei-gr/doki/internal/store"
)

// CommentHandler handles comment-related HTTP requests
type CommentHandler struct {
	catalog *services.CatalogService
}

// NewCommentHandler creates a new comment handler over the shared database
func NewCommentHandler() *CommentHandler {
	gateway := store.NewGormGateway(database.DB)
	return &CommentHandler{
		catalog: services.NewCatalogService(gateway, services.NewIdentityService(gateway)),
	}
}

// List returns all comments attached to a file
func (h *CommentHandler) List(c *fiber.Ctx) error {
	fileID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		response := httpx.BadRequest("Invalid file ID", err)
		return httpx.SendResponse(c, response)
	}

	comments, err := h.catalog.CommentsForFile(c.Context(), fileID)
	if err != nil {
		response := httpx.InternalServerError("Failed to fetch comments", err)
		return httpx.SendResponse(c, response)
	}
	response := httpx.OK("Comments retrieved successfully", comments)
	return httpx.SendResponse(c, response)
}

// Add attaches a comment to a file, anonymously when no token is supplied
func (h *CommentHandler) Add(c *fiber.Ctx) error {
	fileID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		response := httpx.BadRequest("Invalid file ID", err)
		return httpx.SendResponse(c, response)
	}

	var input requests.AddCommentRequest
	if err := c.BodyParser(&input); err != nil {
		response := httpx.BadRequest("Invalid request body", err)
		return httpx.SendResponse(c, response)
	}
	if err := validator.ValidateStruct(&input); err != nil {
		response := httpx.BadRequest("Validation failed", err)
		return httpx.SendResponse(c, response)
	}

	comment, err := h.catalog.AddComment(c.Context(), fileID, input.AuthorID, input.Content, input.Date)
	if err != nil {
		response := httpx.InternalServerError("Failed to add comment", err)
		return httpx.SendResponse(c, response)
	}
	if comment == nil {
		response := httpx.NotFound("File not found")
		return httpx.SendResponse(c, response)
	}
	return h.List(c)
}

// Delete removes one comment; the comment must belong to the stated file
func (h *CommentHandler) Delete(c *fiber.Ctx) error {
	fileID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		response := httpx.BadRequest("Invalid file ID", err)
		return httpx.SendResponse(c, response)
	}
	commentID, err := uuid.Parse(c.Params("commentId"))
	if err != nil {
		response := httpx.BadRequest("Invalid comment ID", err)
		return httpx.SendResponse(c, response)
	}

	deleted, err := h.catalog.DeleteComment(c.Context(), fileID, commentID)
	if err != nil {
		response := httpx.InternalServerError("Failed to delete comment", err)
		return httpx.SendResponse(c, response)
	}
	if deleted == 0 {
		response := httpx.NotFound("Comment not found")
		return httpx.SendResponse(c, response)
	}
	return h.List(c)
}
