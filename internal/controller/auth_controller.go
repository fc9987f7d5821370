package controller

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"sharenotes-be/internal/dto"
	"sharenotes-be/internal/pkg/serverutils"
	"sharenotes-be/internal/service"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Register(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
}

type authController struct {
	authService service.IAuthService
	tokenExpiry time.Duration
}

func NewAuthController(authService service.IAuthService, tokenExpiry time.Duration) IAuthController {
	return &authController{
		authService: authService,
		tokenExpiry: tokenExpiry,
	}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth/v1")
	h.Post("register", c.Register)
	h.Post("login", c.Login)
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.authService.Register(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success register user", res))
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.authService.Login(ctx.Context(), &req)
	if err != nil {
		return err
	}

	// The token also travels as a cookie for browser clients; API clients
	// keep using the Authorization header.
	ctx.Cookie(&fiber.Cookie{
		Name:     "access_token",
		Value:    res.AccessToken,
		Expires:  time.Now().Add(c.tokenExpiry),
		HTTPOnly: true,
		SameSite: fiber.CookieSameSiteLaxMode,
	})

	return ctx.JSON(serverutils.SuccessResponse("Success login", res))
}
