package controllers

import (
	"eduplatform/backend/models"
	"eduplatform/backend/store"
	"eduplatform/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type LiveController struct {
	Store *store.Store
}

func NewLiveController(st *store.Store) *LiveController {
	return &LiveController{Store: st}
}

func (lc *LiveController) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"sessions": lc.Store.LiveSessions(),
	})
}

// Create schedules a live session. Teacher or admin only, enforced by the
// route group.
func (lc *LiveController) Create(c *fiber.Ctx) error {
	var input struct {
		Title       string `json:"title" validate:"required,min=3"`
		CourseID    int    `json:"courseId"`
		ScheduledAt string `json:"scheduledAt" validate:"required"`
		Description string `json:"description"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if err := validate.Struct(input); err != nil {
		return utils.ValidationError(c, validationDetails(err))
	}

	session := lc.Store.AddLiveSession(models.LiveSession{
		Title:       input.Title,
		CourseID:    input.CourseID,
		ScheduledAt: input.ScheduledAt,
		Description: input.Description,
	})
	return utils.Created(c, session)
}

// UpdateStatus moves a session along scheduled -> live -> ended. Backward
// transitions are rejected.
func (lc *LiveController) UpdateStatus(c *fiber.Ctx) error {
	var input struct {
		Status models.LiveStatus `json:"status" validate:"required,oneof=scheduled live ended"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if err := validate.Struct(input); err != nil {
		return utils.ValidationError(c, validationDetails(err))
	}

	result := lc.Store.UpdateLiveStatus(c.Params("id"), input.Status)
	if !result.Success {
		return utils.BadRequest(c, result.Error)
	}
	return c.JSON(fiber.Map{
		"message": "Status updated",
	})
}

func (lc *LiveController) Join(c *fiber.Ctx) error {
	result := lc.Store.JoinLiveSession(c.Params("id"))
	if !result.Success {
		return utils.BadRequest(c, result.Error)
	}
	return c.JSON(fiber.Map{
		"message": "Joined",
	})
}

func (lc *LiveController) Chat(c *fiber.Ctx) error {
	var input struct {
		Content string `json:"content"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	result := lc.Store.AddLiveChatMessage(c.Params("id"), input.Content)
	if !result.Success {
		return utils.BadRequest(c, result.Error)
	}
	return c.SendStatus(fiber.StatusCreated)
}
