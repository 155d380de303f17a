package controllers

import (
	"eduplatform/backend/config"
	"eduplatform/backend/models"
	"eduplatform/backend/store"
	"eduplatform/backend/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type AuthController struct {
	Store *store.Store
	Cfg   *config.Config
}

func NewAuthController(st *store.Store, cfg *config.Config) *AuthController {
	return &AuthController{Store: st, Cfg: cfg}
}

// Register godoc
// @Summary Register a new user
// @Description Creates a demo account and signs it in
// @Tags auth
// @Accept json
// @Produce json
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} utils.ErrorResponse
// @Router /auth/register [post]
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var input struct {
		Name     string `json:"name" validate:"required"`
		Email    string `json:"email" validate:"required,email"`
		Password string `json:"password" validate:"required,min=8"`
		Role     string `json:"role" validate:"omitempty,oneof=student teacher instructor admin"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}
	if err := validate.Struct(input); err != nil {
		return utils.ValidationError(c, validationDetails(err))
	}

	result := ac.Store.Signup(input.Name, input.Email, input.Password, models.NormalizeRole(input.Role))
	if !result.Success {
		return utils.BadRequest(c, result.Error)
	}

	user := ac.Store.CurrentUser()
	token, err := utils.GenerateJWTToken(user.ID, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

// Login godoc
// @Summary Sign in
// @Description Demo-path sign-in by email; disabled when the identity provider is configured
// @Tags auth
// @Accept json
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} utils.ErrorResponse
// @Router /auth/login [post]
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	result := ac.Store.Login(input.Email, input.Password)
	if !result.Success {
		return utils.Unauthorized(c, result.Error)
	}

	user := ac.Store.CurrentUser()
	token, err := utils.GenerateJWTToken(user.ID, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	return c.JSON(fiber.Map{
		"token": token,
		"user":  user,
	})
}

func (ac *AuthController) Logout(c *fiber.Ctx) error {
	ac.Store.Logout()
	return c.JSON(fiber.Map{
		"message": "Signed out",
	})
}

func (ac *AuthController) Me(c *fiber.Ctx) error {
	user := ac.Store.CurrentUser()
	if user == nil {
		return utils.Unauthorized(c, "Unauthorized")
	}
	return c.JSON(user)
}

func (ac *AuthController) UpdateProfile(c *fiber.Ctx) error {
	var update models.UserUpdate
	if err := c.BodyParser(&update); err != nil {
		return utils.BadRequest(c, "Cannot parse JSON")
	}

	ac.Store.UpdateUser(update)
	return c.JSON(ac.Store.CurrentUser())
}

func validationDetails(err error) map[string]string {
	details := map[string]string{}
	if verrs, ok := err.(validator.ValidationErrors); ok {
		for _, fe := range verrs {
			details[fe.Field()] = fe.Tag()
		}
	}
	return details
}
