package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/kampusapp/admin-backend/internal/dto"
	"github.com/kampusapp/admin-backend/internal/services"
)

type CollaborationCodeHandler struct {
	codeService *services.CollaborationCodeService
}

func NewCollaborationCodeHandler(codeService *services.CollaborationCodeService) *CollaborationCodeHandler {
	return &CollaborationCodeHandler{codeService: codeService}
}

func (h *CollaborationCodeHandler) ListCodes(c *fiber.Ctx) error {
	codes, err := h.codeService.List()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch collaboration codes",
		})
	}
	return c.JSON(codes)
}

func (h *CollaborationCodeHandler) CreateCode(c *fiber.Ctx) error {
	var req dto.CreateCollaborationCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}
	if err := validateStruct(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: err.Error(),
		})
	}

	code, err := h.codeService.Create(&req)
	if err != nil {
		if errors.Is(err, services.ErrCodeTaken) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to create collaboration code",
		})
	}

	return c.Status(fiber.StatusCreated).JSON(code)
}

func (h *CollaborationCodeHandler) UpdateCode(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid code ID",
		})
	}

	var req dto.UpdateCollaborationCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid request body",
		})
	}

	code, err := h.codeService.SetActive(id, req.IsActive)
	if err != nil {
		if errors.Is(err, services.ErrCodeNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to update collaboration code",
		})
	}

	return c.JSON(code)
}

func (h *CollaborationCodeHandler) DeleteCode(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{
			Error: true, Message: "Invalid code ID",
		})
	}

	if err := h.codeService.Delete(id); err != nil {
		if errors.Is(err, services.ErrCodeNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
				Error: true, Message: err.Error(),
			})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete collaboration code",
		})
	}

	return c.JSON(fiber.Map{"message": "Collaboration code deleted"})
}
