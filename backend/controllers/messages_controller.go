package controllers

import (
	"eduplatform/backend/models"
	"eduplatform/backend/store"
	"eduplatform/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type MessagesController struct {
	Store *store.Store
}

func NewMessagesController(st *store.Store) *MessagesController {
	return &MessagesController{Store: st}
}

func (mc *MessagesController) ListConversations(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"conversations": mc.Store.Conversations(),
		"totalUnread":   mc.Store.TotalUnreadMessages(),
	})
}

func (mc *MessagesController) GetMessages(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"messages": mc.Store.GetConversationMessages(c.Params("id")),
	})
}

func (mc *MessagesController) Send(c *fiber.Ctx) error {
	var input struct {
		Content     string              `json:"content"`
		Attachments []models.Attachment `json:"attachments"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	result := mc.Store.SendMessage(c.Params("id"), input.Content, input.Attachments)
	if !result.Success {
		return utils.BadRequest(c, result.Error)
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Sent",
	})
}

func (mc *MessagesController) MarkRead(c *fiber.Ctx) error {
	mc.Store.MarkConversationRead(c.Params("id"))
	return c.JSON(fiber.Map{
		"totalUnread": mc.Store.TotalUnreadMessages(),
	})
}

func (mc *MessagesController) Start(c *fiber.Ctx) error {
	var input struct {
		Participants []string `json:"participants" validate:"required,min=1"`
		Type         string   `json:"type" validate:"required,oneof=direct group"`
		Name         string   `json:"name"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if err := validate.Struct(input); err != nil {
		return utils.ValidationError(c, validationDetails(err))
	}

	conv, result := mc.Store.StartConversation(input.Participants, input.Type, input.Name)
	if !result.Success {
		return utils.BadRequest(c, result.Error)
	}
	return utils.Created(c, conv)
}
