package controller

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"sharenotes-be/internal/dto"
	"sharenotes-be/internal/pkg/serverutils"
	"sharenotes-be/internal/service"
)

type IShareController interface {
	RegisterRoutes(r fiber.Router)
	Share(ctx *fiber.Ctx) error
	Sent(ctx *fiber.Ctx) error
	Received(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
}

type shareController struct {
	shareService service.IShareService
}

func NewShareController(shareService service.IShareService) IShareController {
	return &shareController{
		shareService: shareService,
	}
}

func (c *shareController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/share/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.Share)
	h.Get("sent", c.Sent)
	h.Get("received", c.Received)
	h.Get(":id", c.Show)
}

func (c *shareController) Share(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return err
	}

	var req dto.ShareNoteRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}
	req.SenderId = userId

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.shareService.ShareNote(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Success share note", res))
}

func (c *shareController) Sent(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return err
	}

	req := dto.ListSharesRequest{
		UserId: userId,
		Email:  ctx.Query("receiver_email"),
	}

	res, err := c.shareService.ListSent(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list sent shares", res))
}

func (c *shareController) Received(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return err
	}

	req := dto.ListSharesRequest{
		UserId: userId,
		Email:  ctx.Query("sender_email"),
	}

	res, err := c.shareService.ListReceived(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list received shares", res))
}

func (c *shareController) Show(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return err
	}

	shareId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid share id")
	}

	res, err := c.shareService.GetById(ctx.Context(), userId, shareId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show share", res))
}
