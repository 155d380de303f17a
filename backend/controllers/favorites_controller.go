package controllers

import (
	"strconv"

	"eduplatform/backend/store"
	"eduplatform/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type FavoritesController struct {
	Store *store.Store
}

func NewFavoritesController(st *store.Store) *FavoritesController {
	return &FavoritesController{Store: st}
}

func (fc *FavoritesController) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"favorites": fc.Store.Favorites(),
	})
}

// Toggle flips the favorite flag for one course and returns the new state.
func (fc *FavoritesController) Toggle(c *fiber.Ctx) error {
	courseID, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return utils.BadRequest(c, "Invalid course ID")
	}

	fc.Store.ToggleFavorite(courseID)
	return c.JSON(fiber.Map{
		"courseId": courseID,
		"favorite": fc.Store.IsFavorite(courseID),
	})
}
