package Controllers

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"Puantaj/Models"

	"github.com/disintegration/imaging"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AvatarController stores resized staff avatars under a static directory
type AvatarController struct {
	DB  *gorm.DB
	Dir string
}

// NewAvatarController creates a new AvatarController
func NewAvatarController(db *gorm.DB, dir string) *AvatarController {
	return &AvatarController{DB: db, Dir: dir}
}

// Upload accepts a multipart image, resizes it to a square thumbnail and
// records its public path on the user.
func (c *AvatarController) Upload(ctx *fiber.Ctx) error {
	id, err := strconv.Atoi(ctx.Params("id"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid user ID"})
	}

	var user Models.User
	if result := c.DB.First(&user, id); result.Error != nil {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "User not found"})
	}

	fileHeader, err := ctx.FormFile("avatar")
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "avatar file is required"})
	}

	file, err := fileHeader.Open()
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Could not read uploaded file"})
	}
	defer file.Close()

	img, err := imaging.Decode(file, imaging.AutoOrientation(true))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Uploaded file is not a valid image"})
	}

	thumbnail := imaging.Fill(img, 256, 256, imaging.Center, imaging.Lanczos)

	if err := os.MkdirAll(c.Dir, 0755); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to prepare avatar directory"})
	}
	filename := fmt.Sprintf("user_%d.jpg", user.ID)
	if err := imaging.Save(thumbnail, filepath.Join(c.Dir, filename)); err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save avatar"})
	}

	user.Avatar = "/Avatars/" + filename
	if result := c.DB.Save(&user); result.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update user"})
	}

	return ctx.JSON(fiber.Map{"avatar": user.Avatar})
}
