package controllers

import (
	"quizbuilder/backend/config"
	"quizbuilder/backend/middleware"
	"quizbuilder/backend/store"

	"github.com/gofiber/fiber/v2"
)

type ProgressController struct {
	Store *store.Store
	Cfg   *config.Config
}

func NewProgressController(s *store.Store, cfg *config.Config) *ProgressController {
	return &ProgressController{Store: s, Cfg: cfg}
}

// GetProgressOverview godoc
// @Summary Get progress overview
// @Description Quiz count, attempt count and average score for the caller
// @Tags progress
// @Produce json
// @Success 200 {object} models.ProgressOverview
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /progress/overview [get]
func (pc *ProgressController) GetProgressOverview(c *fiber.Ctx) error {
	user := middleware.CurrentUser(c)

	overview, err := pc.Store.Overview(c.UserContext(), user.ID)
	if err != nil {
		return err
	}
	return c.JSON(overview)
}
