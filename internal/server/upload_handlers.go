package server

import (
	"fmt"
	"mime/multipart"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

var allowedImageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// storeUpload writes an uploaded image into the uploads directory under a
// server-generated name and returns that name. The client-supplied filename
// only contributes its extension, and only from the allow-list.
func (s *Server) storeUpload(c *fiber.Ctx, file *multipart.FileHeader) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowedImageExts[ext] {
		return "", fmt.Errorf("only png, jpg, jpeg, gif and webp uploads are allowed")
	}

	name := uuid.New().String() + ext
	if err := c.SaveFile(file, filepath.Join(s.config.UploadsDir, name)); err != nil {
		return "", fmt.Errorf("could not store the uploaded file")
	}
	return name, nil
}

// ServeUpload handles GET /uploads/:filename. Only plain filenames resolving
// inside the uploads directory are served; anything carrying path separators
// or traversal sequences is rejected.
func (s *Server) ServeUpload(c *fiber.Ctx) error {
	raw := c.Params("filename")
	name, err := url.PathUnescape(raw)
	if err != nil || name == "" {
		return s.renderError(c, fiber.StatusBadRequest, "Invalid filename.")
	}

	if name != filepath.Base(name) ||
		name == "." || name == ".." ||
		strings.ContainsAny(name, `/\`) {
		return s.renderError(c, fiber.StatusBadRequest, "Invalid filename.")
	}

	dir, err := filepath.Abs(s.config.UploadsDir)
	if err != nil {
		return s.renderError(c, fiber.StatusInternalServerError, "Something went wrong on our end.")
	}
	full := filepath.Join(dir, name)
	if !strings.HasPrefix(full, dir+string(os.PathSeparator)) {
		return s.renderError(c, fiber.StatusBadRequest, "Invalid filename.")
	}

	if _, statErr := os.Stat(full); statErr != nil {
		return s.renderError(c, fiber.StatusNotFound, "That file does not exist.")
	}
	return c.SendFile(full)
}
