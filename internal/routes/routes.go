package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/monitor"

	"github.com/tokumei-gr/doki/internal/handlers"
)

func SetupRoutes(app *fiber.App) {
	// API routes group
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Monitor route
	app.Get("/metrics", monitor.New())

	// Health check route
	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":    "healthy",
			"service":   "doki-catalog",
			"timestamp": time.Now().UTC(),
		})
	})

	catalogHandler := handlers.NewCatalogHandler()
	authorHandler := handlers.NewAuthorHandler()
	commentHandler := handlers.NewCommentHandler()
	systemHandler := handlers.NewSystemHandler()

	catalog := v1.Group("/catalog")
	catalog.Get("/", catalogHandler.List)
	catalog.Post("/", catalogHandler.Upload)
	catalog.Get("/count", catalogHandler.Count)
	catalog.Get("/random", catalogHandler.Random)
	catalog.Post("/random/media", catalogHandler.RandomMedia)
	catalog.Post("/random/media/id", catalogHandler.RandomMediaID)
	catalog.Get("/search", catalogHandler.Search)
	catalog.Get("/:id", catalogHandler.GetFile)
	catalog.Get("/:id/download", catalogHandler.DownloadFile)
	catalog.Delete("/:id", catalogHandler.DeleteFile)
	catalog.Patch("/:id/folder", catalogHandler.UpdateFolder)
	catalog.Post("/:id/likes", catalogHandler.Like)
	catalog.Post("/:id/views", catalogHandler.View)
	catalog.Get("/:id/comments", commentHandler.List)
	catalog.Post("/:id/comments", commentHandler.Add)
	catalog.Delete("/:id/comments/:commentId", commentHandler.Delete)

	folders := v1.Group("/folders")
	folders.Get("/:name", catalogHandler.ByFolder)

	authors := v1.Group("/authors")
	authors.Get("/:id/files", authorHandler.FilesByAuthor)
	authors.Get("/:id/name", authorHandler.AuthorName)
	authors.Delete("/:id", authorHandler.DeleteAuthor)

	system := v1.Group("/system")
	system.Get("/space", systemHandler.FreeSpace)
}
