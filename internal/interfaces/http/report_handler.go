package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/medagenda/clinica-api/internal/application/dto"
	"github.com/medagenda/clinica-api/internal/application/reports"
	"github.com/medagenda/clinica-api/internal/domain"
)

// ReportHandler maneja las peticiones HTTP de reportes (protegido, solo admin).
type ReportHandler struct {
	uc *reports.PyGUseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.PyGUseCase) *ReportHandler {
	return &ReportHandler{uc: uc}
}

// PyG genera el reporte de pérdidas y ganancias del período.
// GET /api/reports/pyg?from=&to=
func (h *ReportHandler) PyG(c *fiber.Ctx) error {
	orgID := GetOrganizationID(c)
	if orgID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "UNAUTHORIZED", Message: "token inválido"})
	}
	from, to, err := rangeFromQuery(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "from y to son requeridos (YYYY-MM-DD)"})
	}
	out, err := h.uc.Generate(c.Context(), orgID, from, to)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "to debe ser posterior a from"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
