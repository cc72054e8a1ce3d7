package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/gestion-api/internal/application/dto"
	"github.com/jhoicas/gestion-api/internal/domain"
	"github.com/jhoicas/gestion-api/pkg/logger"
)

type errorKind struct {
	target error
	status int
	code   string
}

// Orden importa: el primer sentinel que coincide decide el código.
var errorKinds = []errorKind{
	{domain.ErrNotFound, fiber.StatusNotFound, "NOT_FOUND"},
	{domain.ErrInvalidAmount, fiber.StatusUnprocessableEntity, "INVALID_AMOUNT"},
	{domain.ErrAmountExceedsBalance, fiber.StatusConflict, "AMOUNT_EXCEEDS_BALANCE"},
	{domain.ErrReceivingIncomplete, fiber.StatusConflict, "RECEIVING_INCOMPLETE"},
	{domain.ErrInvalidLine, fiber.StatusUnprocessableEntity, "INVALID_LINE"},
	{domain.ErrInvalidInput, fiber.StatusBadRequest, "VALIDATION"},
	{domain.ErrDuplicate, fiber.StatusConflict, "DUPLICATE"},
	{domain.ErrUnauthorized, fiber.StatusUnauthorized, "UNAUTHORIZED"},
	{domain.ErrForbidden, fiber.StatusForbidden, "FORBIDDEN"},
	{domain.ErrStoreUnavailable, fiber.StatusServiceUnavailable, "STORE_UNAVAILABLE"},
}

// writeError traduce un error de la aplicación a dto.ErrorResponse.
// Los errores no clasificados se registran y se responden como 500 sin detalle interno.
func writeError(c *fiber.Ctx, err error) error {
	for _, k := range errorKinds {
		if errors.Is(err, k.target) {
			return c.Status(k.status).JSON(dto.ErrorResponse{Code: k.code, Message: clientMessage(err, k.target)})
		}
	}
	l := logger.WithComponent("http")
	l.Error().Err(err).Str("method", c.Method()).Str("path", c.Path()).Msg("error interno")
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno del servidor"})
}

// clientMessage usa el detalle de domain.DetailError si existe; si no, el texto del sentinel.
func clientMessage(err, target error) string {
	var de *domain.DetailError
	if errors.As(err, &de) && errors.Is(de.Err, target) {
		return de.Error()
	}
	return target.Error()
}

func badRequest(c *fiber.Ctx, code, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: code, Message: msg})
}
