package controllers

import (
	"errors"

	"quizbuilder/backend/config"
	"quizbuilder/backend/middleware"
	"quizbuilder/backend/storage"
	"quizbuilder/backend/store"
	"quizbuilder/backend/utils"

	"github.com/gofiber/fiber/v2"
)

const maxAvatarBytes = 2 << 20

type UserController struct {
	Store   *store.Store
	Cfg     *config.Config
	Avatars *storage.AvatarStore
}

// NewUserController accepts a nil avatar store; uploads then answer 503.
func NewUserController(s *store.Store, cfg *config.Config, avatars *storage.AvatarStore) *UserController {
	return &UserController{Store: s, Cfg: cfg, Avatars: avatars}
}

type UpdateUserRequest struct {
	FullName *string `json:"full_name" example:"Ada Lovelace"`
	Avatar   *string `json:"avatar" example:"https://cdn.example.com/avatars/1.png"`
}

// GetProfile godoc
// @Summary Get user profile
// @Tags users
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /users/me [get]
func (uc *UserController) GetProfile(c *fiber.Ctx) error {
	return c.JSON(middleware.CurrentUser(c))
}

// UpdateProfile godoc
// @Summary Update user profile
// @Description Only fields present in the body are changed
// @Tags users
// @Accept json
// @Produce json
// @Param input body UpdateUserRequest true "Profile update data"
// @Success 200 {object} models.User
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /users/me [put]
func (uc *UserController) UpdateProfile(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	var input UpdateUserRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	updated, err := uc.Store.UpdateProfile(c.UserContext(), user.ID, store.ProfileUpdate{
		FullName: input.FullName,
		Avatar:   input.Avatar,
	})
	if errors.Is(err, store.ErrNotFound) {
		return utils.NotFound(c, "User not found")
	}
	if err != nil {
		return err
	}

	return c.JSON(updated)
}

// UploadAvatar godoc
// @Summary Upload a profile picture
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "Image file"
// @Success 200 {object} models.User
// @Failure 400 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /users/me/avatar [post]
func (uc *UserController) UploadAvatar(c *fiber.Ctx) error {
	if uc.Avatars == nil {
		return utils.ServiceUnavailable(c, "Avatar uploads are not configured")
	}
	user := middleware.CurrentUser(c)

	header, err := c.FormFile("file")
	if err != nil {
		return utils.BadRequest(c, "Missing file")
	}
	if header.Size > maxAvatarBytes {
		return utils.BadRequest(c, "File is too large")
	}

	file, err := header.Open()
	if err != nil {
		return utils.BadRequest(c, "Cannot read file")
	}
	defer file.Close()

	url, err := uc.Avatars.Upload(c.UserContext(), user.ID, header.Filename, file, header.Size)
	if errors.Is(err, storage.ErrUnsupportedImage) {
		return utils.BadRequest(c, "Unsupported image type")
	}
	if err != nil {
		return err
	}

	updated, err := uc.Store.UpdateProfile(c.UserContext(), user.ID, store.ProfileUpdate{Avatar: &url})
	if err != nil {
		return err
	}
	return c.JSON(updated)
}
