package controller

import (
	"github.com/gofiber/fiber/v2"

	"sharenotes-be/internal/dto"
	"sharenotes-be/internal/pkg/serverutils"
	"sharenotes-be/internal/service"
)

type IUserController interface {
	RegisterRoutes(r fiber.Router)
	Me(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Friends(ctx *fiber.Ctx) error
	Search(ctx *fiber.Ctx) error
	SearchFriends(ctx *fiber.Ctx) error
}

type userController struct {
	userService service.IUserService
}

func NewUserController(userService service.IUserService) IUserController {
	return &userController{
		userService: userService,
	}
}

func (c *userController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/user/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("me", c.Me)
	h.Put("me", c.Update)
	h.Delete("me", c.Delete)
	h.Get("friends", c.Friends)
	h.Get("friends/search", c.SearchFriends)
	h.Get("search", c.Search)
}

func (c *userController) Me(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return err
	}

	res, err := c.userService.GetById(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show user", res))
}

func (c *userController) Update(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return err
	}

	var req dto.UpdateUserRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.Id = userId

	res, err := c.userService.UpdateName(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success update user", res))
}

func (c *userController) Delete(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return err
	}

	if err := c.userService.Delete(ctx.Context(), userId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success delete user", fiber.Map{}))
}

func (c *userController) Friends(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return err
	}

	res, err := c.userService.Friends(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list friends", res))
}

func (c *userController) Search(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return err
	}

	req := dto.SearchUsersRequest{
		UserId: userId,
		Query:  ctx.Query("q"),
	}

	res, err := c.userService.SearchUsers(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success search users", res))
}

func (c *userController) SearchFriends(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return err
	}

	req := dto.SearchUsersRequest{
		UserId: userId,
		Query:  ctx.Query("q"),
	}

	res, err := c.userService.SearchFriends(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success search friends", res))
}
