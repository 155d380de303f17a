package controllers

import (
	"strings"

	"eduplatform/backend/models"
	"eduplatform/backend/store"
	"eduplatform/backend/utils"

	"github.com/gofiber/fiber/v2"
)

type DiscountsController struct {
	Store *store.Store
}

func NewDiscountsController(st *store.Store) *DiscountsController {
	return &DiscountsController{Store: st}
}

// Validate checks a code without consuming a use.
func (dc *DiscountsController) Validate(c *fiber.Ctx) error {
	var input struct {
		Code string `json:"code"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	v := dc.Store.ValidateDiscount(input.Code)
	if !v.Valid {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"valid": false,
			"error": v.Error,
		})
	}
	return c.JSON(fiber.Map{
		"valid":    true,
		"discount": v.Discount,
	})
}

// Redeem validates and consumes one use of the code.
func (dc *DiscountsController) Redeem(c *fiber.Ctx) error {
	var input struct {
		Code string `json:"code"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	v := dc.Store.ValidateDiscount(input.Code)
	if !v.Valid {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"valid": false,
			"error": v.Error,
		})
	}
	dc.Store.RedeemDiscount(input.Code)
	return c.JSON(fiber.Map{
		"valid":    true,
		"discount": v.Discount,
	})
}

func (dc *DiscountsController) List(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"codes": dc.Store.DiscountCodes(),
	})
}

// Create registers a new code. Admin only, enforced by the route group.
func (dc *DiscountsController) Create(c *fiber.Ctx) error {
	var input struct {
		Code     string `json:"code" validate:"required,min=3"`
		Discount int    `json:"discount" validate:"required,min=1,max=100"`
		Type     string `json:"type" validate:"omitempty,oneof=percentage fixed"`
		Expiry   string `json:"expiry"`
		MaxUses  int    `json:"maxUses" validate:"required,min=1"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if err := validate.Struct(input); err != nil {
		return utils.ValidationError(c, validationDetails(err))
	}

	codeType := input.Type
	if codeType == "" {
		codeType = "percentage"
	}
	userID, _ := c.Locals("userID").(string)
	result := dc.Store.AddDiscountCode(models.DiscountCode{
		Code:      strings.ToUpper(input.Code),
		Discount:  input.Discount,
		Type:      codeType,
		Expiry:    input.Expiry,
		MaxUses:   input.MaxUses,
		Active:    true,
		CreatedBy: userID,
	})
	if !result.Success {
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": result.Error,
		})
	}
	return c.SendStatus(fiber.StatusCreated)
}
