package controllers

import (
	"eduplatform/backend/store"

	"github.com/gofiber/fiber/v2"
)

type NotificationsController struct {
	Store *store.Store
}

func NewNotificationsController(st *store.Store) *NotificationsController {
	return &NotificationsController{Store: st}
}

func (nc *NotificationsController) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"notifications": nc.Store.Notifications(),
		"unreadCount":   nc.Store.UnreadNotificationCount(),
	})
}

func (nc *NotificationsController) MarkRead(c *fiber.Ctx) error {
	nc.Store.MarkNotificationRead(c.Params("id"))
	return c.JSON(fiber.Map{
		"unreadCount": nc.Store.UnreadNotificationCount(),
	})
}

func (nc *NotificationsController) MarkAllRead(c *fiber.Ctx) error {
	nc.Store.MarkAllNotificationsRead()
	return c.JSON(fiber.Map{
		"unreadCount": 0,
	})
}

func (nc *NotificationsController) Delete(c *fiber.Ctx) error {
	nc.Store.DeleteNotification(c.Params("id"))
	return c.SendStatus(fiber.StatusNoContent)
}
