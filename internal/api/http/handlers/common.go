package handlers

import (
	"mime/multipart"

	"github.com/gofiber/fiber/v2"
)

// formFile returns the named multipart file, or nil when the field is absent.
func formFile(c *fiber.Ctx, name string) *multipart.FileHeader {
	file, err := c.FormFile(name)
	if err != nil {
		return nil
	}
	return file
}
