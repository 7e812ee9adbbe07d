package handlers

import (
	"context"
	"errors"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	pkgConfig "github.com/kerimovok/go-pkg-utils/config"
	"github.com/kerimovok/go-pkg-utils/httpx"
	"github.com/kerimovok/go-pkg-utils/validator"

	"github.com/tokumei-gr/doki/internal/config"
	"github.com/tokumei-gr/doki/internal/database"
	"github.com/tokumei-gr/doki/internal/requests"
	"github.com/tokumei-gr/doki/internal/services"
	"github.com/tokumei-gr/doki/internal/store"
)

// CatalogHandler handles catalog-related HTTP requests
type CatalogHandler struct {
	catalog     *services.CatalogService
	selection   *services.SelectionService
	ingestion   *services.IngestionService
	deletion    *services.DeletionService
	contentRoot string
}

// NewCatalogHandler creates a new catalog handler over the shared database
func NewCatalogHandler() *CatalogHandler {
	gateway := store.NewGormGateway(database.DB)
	identity := services.NewIdentityService(gateway)
	contentRoot := pkgConfig.GetEnv("CONTENT_ROOT")
	return &CatalogHandler{
		catalog:     services.NewCatalogService(gateway, identity),
		selection:   services.NewSelectionService(gateway),
		ingestion:   services.NewIngestionService(gateway, identity, config.GetConfig().Catalog, contentRoot),
		deletion:    services.NewDeletionService(gateway, contentRoot),
		contentRoot: contentRoot,
	}
}

// Count returns the total file count
func (h *CatalogHandler) Count(c *fiber.Ctx) error {
	count, err := h.catalog.Count(c.Context())
	if err != nil {
		response := httpx.InternalServerError("Failed to count files", err)
		return httpx.SendResponse(c, response)
	}
	response := httpx.OK("File count retrieved successfully", count)
	return httpx.SendResponse(c, response)
}

// List returns the full catalog listing
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	files, err := h.catalog.All(c.Context())
	if err != nil {
		response := httpx.InternalServerError("Failed to fetch files", err)
		return httpx.SendResponse(c, response)
	}
	response := httpx.OK("Files retrieved successfully", files)
	return httpx.SendResponse(c, response)
}

// GetFile retrieves one file by id
func (h *CatalogHandler) GetFile(c *fiber.Ctx) error {
	fileID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		response := httpx.BadRequest("Invalid file ID", err)
		return httpx.SendResponse(c, response)
	}

	file, err := h.catalog.OneByID(c.Context(), fileID)
	if err != nil {
		response := httpx.InternalServerError("Failed to fetch file", err)
		return httpx.SendResponse(c, response)
	}
	if file == nil {
		response := httpx.NotFound("File not found")
		return httpx.SendResponse(c, response)
	}
	response := httpx.OK("File retrieved successfully", file)
	return httpx.SendResponse(c, response)
}

// DownloadFile streams the backing bytes of a file
func (h *CatalogHandler) DownloadFile(c *fiber.Ctx) error {
	fileID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		response := httpx.BadRequest("Invalid file ID", err)
		return httpx.SendResponse(c, response)
	}

	file, err := h.catalog.OneByID(c.Context(), fileID)
	if err != nil {
		response := httpx.InternalServerError("Failed to fetch file", err)
		return httpx.SendResponse(c, response)
	}
	if file == nil {
		response := httpx.NotFound("File not found")
		return httpx.SendResponse(c, response)
	}

	diskPath := filepath.Join(h.contentRoot, filepath.FromSlash(file.FileURL))
	if _, err := os.Stat(diskPath); os.IsNotExist(err) {
		response := httpx.NotFound("File not found on disk")
		return httpx.SendResponse(c, response)
	}
	return c.Download(diskPath, filepath.Base(file.FileURL))
}

// Random returns a uniform random file from the catalog
func (h *CatalogHandler) Random(c *fiber.Ctx) error {
	file, err := h.selection.RandomFile(c.Context())
	if err != nil {
		response := httpx.InternalServerError("Failed to pick a file", err)
		return httpx.SendResponse(c, response)
	}
	if file == nil {
		response := httpx.NotFound("Catalog is empty")
		return httpx.SendResponse(c, response)
	}
	response := httpx.OK("File retrieved successfully", file)
	return httpx.SendResponse(c, response)
}

func (h *CatalogHandler) parseRandomMedia(c *fiber.Ctx) (uuid.UUID, services.RandomFilter, error) {
	var input requests.RandomMediaRequest
	if err := c.BodyParser(&input); err != nil {
		return uuid.Nil, services.RandomFilter{}, err
	}
	excludeID := uuid.Nil
	if input.ExcludeID != "" {
		parsed, err := uuid.Parse(input.ExcludeID)
		if err != nil {
			return uuid.Nil, services.RandomFilter{}, err
		}
		excludeID = parsed
	}
	return excludeID, input.Filter, nil
}

// RandomMedia returns a random file matching the client filter
func (h *CatalogHandler) RandomMedia(c *fiber.Ctx) error {
	excludeID, filter, err := h.parseRandomMedia(c)
	if err != nil {
		response := httpx.BadRequest("Invalid request body", err)
		return httpx.SendResponse(c, response)
	}

	file, err := h.selection.RandomFiltered(c.Context(), excludeID, filter)
	if err != nil {
		response := httpx.InternalServerError("Failed to pick a file", err)
		return httpx.SendResponse(c, response)
	}
	if file == nil {
		response := httpx.NotFound("No file matches the filter")
		return httpx.SendResponse(c, response)
	}
	response := httpx.OK("File retrieved successfully", file)
	return httpx.SendResponse(c, response)
}

// RandomMediaID is the prefetch variant returning only the chosen id
func (h *CatalogHandler) RandomMediaID(c *fiber.Ctx) error {
	excludeID, filter, err := h.parseRandomMedia(c)
	if err != nil {
		response := httpx.BadRequest("Invalid request body", err)
		return httpx.SendResponse(c, response)
	}

	id, err := h.selection.RandomFilteredID(c.Context(), excludeID, filter)
	if err != nil {
		response := httpx.InternalServerError("Failed to pick a file", err)
		return httpx.SendResponse(c, response)
	}
	if id == uuid.Nil {
		response := httpx.NotFound("No file matches the filter")
		return httpx.SendResponse(c, response)
	}
	response := httpx.OK("File id retrieved successfully", id)
	return httpx.SendResponse(c, response)
}

// Search matches the term against title, tags, folder and file URL
func (h *CatalogHandler) Search(c *fiber.Ctx) error {
	term := c.Query("term")
	if term == "" {
		response := httpx.BadRequest("Search term is required", nil)
		return httpx.SendResponse(c, response)
	}

	files, err := h.catalog.Search(c.Context(), term)
	if err != nil {
		response := httpx.InternalServerError("Failed to search files", err)
		return httpx.SendResponse(c, response)
	}
	response := httpx.OK("Files retrieved successfully", files)
	return httpx.SendResponse(c, response)
}

// ByFolder lists the files with an exactly matching folder label
func (h *CatalogHandler) ByFolder(c *fiber.Ctx) error {
	files, err := h.catalog.ByFolder(c.Context(), c.Params("name"))
	if err != nil {
		response := httpx.InternalServerError("Failed to fetch files", err)
		return httpx.SendResponse(c, response)
	}
	response := httpx.OK("Files retrieved successfully", files)
	return httpx.SendResponse(c, response)
}

// Upload ingests a multipart batch of files with positional folder/NSFW
// attributes
func (h *CatalogHandler) Upload(c *fiber.Ctx) error {
	form, err := c.MultipartForm()
	if err != nil {
		response := httpx.BadRequest("Invalid multipart form", err)
		return httpx.SendResponse(c, response)
	}

	token, err := strconv.ParseInt(c.FormValue("authorId"), 10, 64)
	if err != nil {
		response := httpx.BadRequest("Invalid author token", err)
		return httpx.SendResponse(c, response)
	}

	headers := form.File["files"]
	if len(headers) == 0 {
		response := httpx.BadRequest("Nothing to upload", services.ErrNothingToUpload)
		return httpx.SendResponse(c, response)
	}

	folders := form.Value["folder"]
	nsfw := form.Value["nsfw"]
	titles := form.Value["title"]
	tags := form.Value["tags"]
	if len(folders) != len(headers) || len(nsfw) != len(headers) {
		response := httpx.BadRequest("Positional folder/nsfw values must match the file count", nil)
		return httpx.SendResponse(c, response)
	}

	items := make([]services.UploadItem, 0, len(headers))
	var sources []multipart.File
	defer func() {
		for _, src := range sources {
			src.Close()
		}
	}()
	for i, header := range headers {
		src, err := header.Open()
		if err != nil {
			response := httpx.InternalServerError("Failed to open uploaded file", err)
			return httpx.SendResponse(c, response)
		}
		sources = append(sources, src)
		items = append(items, services.UploadItem{
			Name:   header.Filename,
			Size:   header.Size,
			Reader: src,
			Title:  valueAt(titles, i),
			Tags:   valueAt(tags, i),
			Folder: folders[i],
			NSFW:   nsfw[i] == "1" || nsfw[i] == "true",
		})
	}

	files, err := h.ingestion.UploadBatch(c.Context(), token, items)
	if err != nil {
		if errors.Is(err, services.ErrNothingToUpload) {
			response := httpx.BadRequest("Nothing to upload", err)
			return httpx.SendResponse(c, response)
		}
		response := httpx.BadRequest("Upload failed", err)
		return httpx.SendResponse(c, response)
	}
	response := httpx.Created("Files uploaded successfully", files)
	return httpx.SendResponse(c, response)
}

func valueAt(values []string, i int) string {
	if i < len(values) {
		return values[i]
	}
	return ""
}

// DeleteFile removes one file's bytes and metadata
func (h *CatalogHandler) DeleteFile(c *fiber.Ctx) error {
	fileID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		response := httpx.BadRequest("Invalid file ID", err)
		return httpx.SendResponse(c, response)
	}

	var input requests.DeleteFileRequest
	if err := c.BodyParser(&input); err != nil {
		response := httpx.BadRequest("Invalid request body", err)
		return httpx.SendResponse(c, response)
	}
	if err := validator.ValidateStruct(&input); err != nil {
		response := httpx.BadRequest("Validation failed", err)
		return httpx.SendResponse(c, response)
	}

	deleted, err := h.deletion.DeleteFile(c.Context(), fileID)
	if err != nil {
		response := httpx.InternalServerError("Failed to delete file", err)
		return httpx.SendResponse(c, response)
	}
	if deleted == 0 {
		response := httpx.NotFound("File not found")
		return httpx.SendResponse(c, response)
	}
	return h.List(c)
}

// UpdateFolder moves a file to another folder label
func (h *CatalogHandler) UpdateFolder(c *fiber.Ctx) error {
	fileID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		response := httpx.BadRequest("Invalid file ID", err)
		return httpx.SendResponse(c, response)
	}

	var input requests.UpdateFolderRequest
	if err := c.BodyParser(&input); err != nil {
		response := httpx.BadRequest("Invalid request body", err)
		return httpx.SendResponse(c, response)
	}
	if err := validator.ValidateStruct(&input); err != nil {
		response := httpx.BadRequest("Validation failed", err)
		return httpx.SendResponse(c, response)
	}

	file, err := h.catalog.UpdateFolder(c.Context(), fileID, input.Folder)
	if err != nil {
		response := httpx.InternalServerError("Failed to update folder", err)
		return httpx.SendResponse(c, response)
	}
	if file == nil {
		response := httpx.NotFound("File not found")
		return httpx.SendResponse(c, response)
	}
	return h.List(c)
}

// Like increments the like counter by one
func (h *CatalogHandler) Like(c *fiber.Ctx) error {
	return h.increment(c, h.catalog.IncrementLikes)
}

// View increments the view counter by one
func (h *CatalogHandler) View(c *fiber.Ctx) error {
	return h.increment(c, h.catalog.IncrementViews)
}

func (h *CatalogHandler) increment(c *fiber.Ctx, bump func(ctx context.Context, id uuid.UUID) (bool, error)) error {
	fileID, err := uuid.Parse(c.Params("id"))
	if err != nil {
		response := httpx.BadRequest("Invalid file ID", err)
		return httpx.SendResponse(c, response)
	}

	found, err := bump(c.Context(), fileID)
	if err != nil {
		response := httpx.InternalServerError("Failed to update counter", err)
		return httpx.SendResponse(c, response)
	}
	if !found {
		response := httpx.NotFound("File not found")
		return httpx.SendResponse(c, response)
	}
	return h.List(c)
}
