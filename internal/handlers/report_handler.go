package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/kampusapp/admin-backend/internal/dto"
	"github.com/kampusapp/admin-backend/internal/services"
)

type ReportHandler struct {
	reportService *services.ReportService
}

func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

func (h *ReportHandler) FinancialStats(c *fiber.Ctx) error {
	stats, err := h.reportService.FinancialStats(time.Now().UTC())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to compute financial stats",
		})
	}
	return c.JSON(stats)
}

func (h *ReportHandler) CustomerRevenue(c *fiber.Ctx) error {
	list, err := h.reportService.CustomerRevenue()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to compute customer revenue",
		})
	}
	return c.JSON(list)
}

func (h *ReportHandler) CollaborationStats(c *fiber.Ctx) error {
	stats, err := h.reportService.CollaborationStats()
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to compute collaboration stats",
		})
	}
	return c.JSON(stats)
}
