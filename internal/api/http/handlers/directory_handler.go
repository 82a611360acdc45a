package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/intervention-desk/internal/directory"
)

// DirectoryHandler exposes the read-only staff roster.
type DirectoryHandler struct {
	directory *directory.Directory
}

// NewDirectoryHandler constructs handler.
func NewDirectoryHandler(dir *directory.Directory) *DirectoryHandler {
	return &DirectoryHandler{directory: dir}
}

// ListPeople GET /directory.
func (h *DirectoryHandler) ListPeople(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"data": h.directory.List()})
}

// GetPerson GET /directory/:id.
func (h *DirectoryHandler) GetPerson(c *fiber.Ctx) error {
	person, err := h.directory.GetByID(c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": person})
}
