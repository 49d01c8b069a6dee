package controller

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/gofiber/fiber/v2"

	"github.com/EasonYD88/SURF-application-website/utils"
)

// GatewayController is the file half of the companion process: it moves
// files under a configurable storage root on local disk on behalf of the
// client. It holds no tracker state; the client folds upload results into
// ordinary patches.
type GatewayController struct {
	configFile string
	logger     *log.Logger

	mu   sync.Mutex
	root string
}

func NewGatewayController(defaultRoot, configFile string, logger *log.Logger) *GatewayController {
	gc := &GatewayController{
		configFile: configFile,
		logger:     logger,
		root:       defaultRoot,
	}
	gc.loadRoot()
	return gc
}

type gatewayConfig struct {
	StorageRoot string `json:"storageRoot"`
}

func (gc *GatewayController) loadRoot() {
	data, err := os.ReadFile(gc.configFile)
	if err != nil {
		return
	}
	var cfg gatewayConfig
	if err := json.Unmarshal(data, &cfg); err != nil || cfg.StorageRoot == "" {
		gc.logger.Printf("Ignoring malformed gateway config: %v", err)
		return
	}
	gc.root = cfg.StorageRoot
}

func (gc *GatewayController) saveRoot() error {
	data, err := json.Marshal(gatewayConfig{StorageRoot: gc.root})
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(gc.configFile), 0o755); err != nil {
		return err
	}
	return os.WriteFile(gc.configFile, data, 0o644)
}

// resolve maps a client-supplied relative path into the storage root,
// refusing anything that would escape it.
func (gc *GatewayController) resolve(rel string) (string, error) {
	cleaned := filepath.Clean("/" + rel)
	abs := filepath.Join(gc.root, cleaned)
	rootAbs, err := filepath.Abs(gc.root)
	if err != nil {
		return "", err
	}
	absResolved, err := filepath.Abs(abs)
	if err != nil {
		return "", err
	}
	if absResolved != rootAbs && !strings.HasPrefix(absResolved, rootAbs+string(os.PathSeparator)) {
		return "", fmt.Errorf("path escapes storage root")
	}
	return absResolved, nil
}

// GetStorageConfig returns the current storage root.
func (gc *GatewayController) GetStorageConfig(c *fiber.Ctx) error {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return c.JSON(utils.SuccessResponse(fiber.Map{"storageRoot": gc.root}))
}

// UpdateStorageConfig changes and persists the storage root.
func (gc *GatewayController) UpdateStorageConfig(c *fiber.Ctx) error {
	var input struct {
		StorageRoot string `json:"storageRoot" validate:"required"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	gc.mu.Lock()
	defer gc.mu.Unlock()
	if err := os.MkdirAll(input.StorageRoot, 0o755); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Storage root is not usable", err)
	}
	gc.root = input.StorageRoot
	if err := gc.saveRoot(); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to persist storage config", err)
	}
	utils.LogEvent("storage_root_changed", map[string]interface{}{"root": gc.root})
	return c.JSON(utils.SuccessResponse(fiber.Map{"storageRoot": gc.root}))
}

// CreateFolder makes a per-project folder under the storage root.
func (gc *GatewayController) CreateFolder(c *fiber.Ctx) error {
	var input struct {
		ProjectCode string `json:"projectCode" validate:"required,max=100"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	gc.mu.Lock()
	defer gc.mu.Unlock()
	dir, err := gc.resolve(input.ProjectCode)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid folder name", err)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to create folder", err)
	}
	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse(fiber.Map{"folder": input.ProjectCode}))
}

// RenameFolder renames a per-project folder, typically after a project
// code change.
func (gc *GatewayController) RenameFolder(c *fiber.Ctx) error {
	var input struct {
		From string `json:"from" validate:"required,max=100"`
		To   string `json:"to" validate:"required,max=100"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	gc.mu.Lock()
	defer gc.mu.Unlock()
	from, err := gc.resolve(input.From)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid folder name", err)
	}
	to, err := gc.resolve(input.To)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid folder name", err)
	}
	if err := os.Rename(from, to); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to rename folder", err)
	}
	return c.JSON(utils.SuccessResponse(fiber.Map{"folder": input.To}))
}

// DeleteFolder removes a per-project folder and its contents.
func (gc *GatewayController) DeleteFolder(c *fiber.Ctx) error {
	var input struct {
		ProjectCode string `json:"projectCode" validate:"required,max=100"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	gc.mu.Lock()
	defer gc.mu.Unlock()
	dir, err := gc.resolve(input.ProjectCode)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid folder name", err)
	}
	if err := os.RemoveAll(dir); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete folder", err)
	}
	return c.JSON(utils.SuccessResponse(fiber.Map{"deleted": input.ProjectCode}))
}

// UploadFile stores a multipart file classified by project and material
// type and answers with the stable URL the client records on the task.
func (gc *GatewayController) UploadFile(c *fiber.Ctx) error {
	projectCode := c.FormValue("projectCode")
	materialType := c.FormValue("materialType")
	if projectCode == "" || materialType == "" {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "projectCode and materialType are required", nil)
	}

	file, err := c.FormFile("file")
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Missing file upload", err)
	}

	rel := filepath.Join(projectCode, materialType, filepath.Base(file.Filename))

	gc.mu.Lock()
	defer gc.mu.Unlock()
	dest, err := gc.resolve(rel)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid upload path", err)
	}
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to prepare upload folder", err)
	}
	if err := c.SaveFile(file, dest); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to store file", err)
	}

	utils.LogEvent("file_uploaded", map[string]interface{}{
		"project":  projectCode,
		"material": materialType,
		"size":     file.Size,
	})
	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse(fiber.Map{
		"path": filepath.ToSlash(rel),
		"url":  "/api/v1/files/serve/" + filepath.ToSlash(rel),
	}))
}

// MoveFile relocates a stored file within the storage root.
func (gc *GatewayController) MoveFile(c *fiber.Ctx) error {
	var input struct {
		From string `json:"from" validate:"required"`
		To   string `json:"to" validate:"required"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	gc.mu.Lock()
	defer gc.mu.Unlock()
	from, err := gc.resolve(input.From)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid source path", err)
	}
	to, err := gc.resolve(input.To)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid destination path", err)
	}
	if err := os.MkdirAll(filepath.Dir(to), 0o755); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to prepare destination", err)
	}
	if err := os.Rename(from, to); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to move file", err)
	}
	return c.JSON(utils.SuccessResponse(fiber.Map{
		"path": filepath.ToSlash(filepath.Clean(input.To)),
		"url":  "/api/v1/files/serve/" + filepath.ToSlash(filepath.Clean(input.To)),
	}))
}

// DeleteFile removes a stored file.
func (gc *GatewayController) DeleteFile(c *fiber.Ctx) error {
	var input struct {
		Path string `json:"path" validate:"required"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid request body", err)
	}
	if err := utils.ValidateStruct(input); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Validation failed", err)
	}

	gc.mu.Lock()
	defer gc.mu.Unlock()
	path, err := gc.resolve(input.Path)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid path", err)
	}
	if err := os.Remove(path); err != nil {
		if os.IsNotExist(err) {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "File not found", nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, "Failed to delete file", err)
	}
	return c.JSON(utils.SuccessResponse(fiber.Map{"deleted": input.Path}))
}

// ServeFile streams a stored file back by its relative path.
func (gc *GatewayController) ServeFile(c *fiber.Ctx) error {
	gc.mu.Lock()
	defer gc.mu.Unlock()

	path, err := gc.resolve(c.Params("*"))
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "Invalid path", err)
	}
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "File not found", nil)
	}
	return c.SendFile(path)
}
