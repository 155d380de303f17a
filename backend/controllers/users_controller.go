package controllers

import (
	"eduplatform/backend/store"

	"github.com/gofiber/fiber/v2"
)

type UsersController struct {
	Store *store.Store
}

func NewUsersController(st *store.Store) *UsersController {
	return &UsersController{Store: st}
}

// List returns every known user. Admin only, enforced by the route group.
func (uc *UsersController) List(c *fiber.Ctx) error {
	users := uc.Store.AllUsers()
	return c.JSON(fiber.Map{
		"users": users,
		"total": len(users),
	})
}
