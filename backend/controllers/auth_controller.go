package controllers

import (
	"errors"
	"strings"

	"quizbuilder/backend/config"
	"quizbuilder/backend/store"
	"quizbuilder/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type AuthController struct {
	Store *store.Store
	Cfg   *config.Config
}

func NewAuthController(s *store.Store, cfg *config.Config) *AuthController {
	return &AuthController{Store: s, Cfg: cfg}
}

type CredentialsRequest struct {
	Email    string `json:"email" example:"user@example.com"`
	Password string `json:"password" example:"password123"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

func (r *CredentialsRequest) validate() map[string]string {
	errs := map[string]string{}
	r.Email = strings.TrimSpace(r.Email)
	if r.Email == "" {
		errs["email"] = "required"
	}
	if r.Password == "" {
		errs["password"] = "required"
	}
	return errs
}

// Register godoc
// @Summary Register a new user
// @Tags auth
// @Accept json
// @Produce json
// @Param user body CredentialsRequest true "Email and password"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /auth/register [post]
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var input CredentialsRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if errs := input.validate(); len(errs) > 0 {
		return utils.ValidationError(c, errs)
	}

	hashedPassword, err := utils.HashPassword(input.Password)
	if errors.Is(err, utils.ErrPasswordTooLong) {
		return utils.BadRequest(c, "Password is too long")
	}
	if err != nil {
		return utils.InternalServerError(c, "Could not hash password")
	}

	user, err := ac.Store.CreateUser(c.UserContext(), input.Email, hashedPassword)
	if errors.Is(err, store.ErrEmailTaken) {
		return utils.BadRequest(c, "Email already registered")
	}
	if err != nil {
		return err
	}

	return ac.issueToken(c, user.Email)
}

// Login godoc
// @Summary User login
// @Tags auth
// @Accept json
// @Produce json
// @Param request body CredentialsRequest true "Login credentials"
// @Success 200 {object} TokenResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /auth/login [post]
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var input CredentialsRequest
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if errs := input.validate(); len(errs) > 0 {
		return utils.ValidationError(c, errs)
	}

	user, err := ac.Store.UserByEmail(c.UserContext(), input.Email)
	if errors.Is(err, store.ErrNotFound) {
		return utils.Unauthorized(c, "Invalid credentials")
	}
	if err != nil {
		return err
	}

	if !utils.CheckPassword(user.HashedPassword, input.Password) {
		return utils.Unauthorized(c, "Invalid credentials")
	}

	return ac.issueToken(c, user.Email)
}

func (ac *AuthController) issueToken(c *fiber.Ctx, email string) error {
	token, err := utils.GenerateJWTToken(email, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}
	return c.JSON(TokenResponse{AccessToken: token, TokenType: "bearer"})
}
