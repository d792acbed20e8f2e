package handlers

import (
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"pairchat-backend/internal/services"
	"pairchat-backend/internal/utils"

	"github.com/gofiber/fiber/v2"
)

// GetProfileHandler returns the authenticated user's profile
func GetProfileHandler(userService *services.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(int)
		u, err := userService.GetProfile(c.Context(), userID)
		if err != nil {
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}
		return c.JSON(u)
	}
}

// UploadAvatarHandler replaces the authenticated user's avatar
func UploadAvatarHandler(userService *services.UserService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		userID := c.Locals("user_id").(int)

		// Expect a multipart form file named "avatar"
		fileHeader, err := c.FormFile("avatar")
		if err != nil {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{"error": "avatar file is required"})
		}

		uploadDir := utils.GetEnv("UPLOAD_DIR", "uploads")
		if err := os.MkdirAll(uploadDir, 0755); err != nil {
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to create upload dir"})
		}

		// Generate unique filename preserving extension
		ext := filepath.Ext(fileHeader.Filename)
		filename := fmt.Sprintf("%d_%d%s", userID, time.Now().UnixNano(), ext)
		destPath := filepath.Join(uploadDir, filename)

		if err := c.SaveFile(fileHeader, destPath); err != nil {
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": "failed to save file"})
		}

		// Build accessible URL (served from /uploads)
		base := utils.GetEnv("BASE_URL", "")
		var url string
		if base == "" {
			url = "/uploads/" + filename
		} else {
			url = fmt.Sprintf("%s/uploads/%s", base, filename)
		}

		if err := userService.UpdateAvatar(c.Context(), userID, url); err != nil {
			// Try to cleanup file if DB update fails
			_ = os.Remove(destPath)
			return c.Status(http.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
		}

		return c.JSON(fiber.Map{"avatar": url})
	}
}
