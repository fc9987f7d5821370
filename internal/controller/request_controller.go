package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"sharenotes-be/internal/dto"
	"sharenotes-be/internal/pkg/serverutils"
	"sharenotes-be/internal/service"
)

type IRequestController interface {
	RegisterRoutes(r fiber.Router)
	Send(ctx *fiber.Ctx) error
	Accept(ctx *fiber.Ctx) error
	Decline(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Sent(ctx *fiber.Ctx) error
	Received(ctx *fiber.Ctx) error
	RemoveFriend(ctx *fiber.Ctx) error
}

type requestController struct {
	requestService service.IRequestService
}

func NewRequestController(requestService service.IRequestService) IRequestController {
	return &requestController{
		requestService: requestService,
	}
}

func (c *requestController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/request/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Send)
	h.Get("sent", c.Sent)
	h.Get("received", c.Received)
	h.Put(":id/accept", c.Accept)
	h.Put(":id/decline", c.Decline)
	h.Delete(":id", c.Delete)
	h.Delete("friend/:friendId", c.RemoveFriend)
}

func (c *requestController) Send(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return err
	}

	var req dto.SendRequestRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.SenderId = userId

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.requestService.Send(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success send request", res))
}

func (c *requestController) Accept(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return err
	}

	requestId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request id")
	}

	if err := c.requestService.Accept(ctx.Context(), userId, requestId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success accept request", fiber.Map{}))
}

func (c *requestController) Decline(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return err
	}

	requestId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request id")
	}

	if err := c.requestService.Decline(ctx.Context(), userId, requestId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success decline request", fiber.Map{}))
}

func (c *requestController) Delete(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return err
	}

	requestId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid request id")
	}

	if err := c.requestService.Delete(ctx.Context(), userId, requestId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success delete request", fiber.Map{}))
}

func (c *requestController) Sent(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return err
	}

	res, err := c.requestService.SentRequests(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list sent requests", res))
}

func (c *requestController) Received(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return err
	}

	res, err := c.requestService.ReceivedRequests(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list received requests", res))
}

func (c *requestController) RemoveFriend(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return err
	}

	friendId, err := uuid.Parse(ctx.Params("friendId"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid friend id")
	}

	if err := c.requestService.RemoveFriend(ctx.Context(), userId, friendId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success remove friend", fiber.Map{}))
}
