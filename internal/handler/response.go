package handler

import (
	"errors"
	"strconv"

	"go-gudang-api/internal/service"
	"go-gudang-api/pkg/pagination"

	"github.com/gofiber/fiber/v2"
)

// statusFor maps service errors to the HTTP taxonomy: validation 400,
// not-found 404, conflict 409, insufficient stock 400, everything else 500.
func statusFor(err error) int {
	switch {
	case errors.Is(err, service.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrConflict):
		return fiber.StatusConflict
	case errors.Is(err, service.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, service.ErrValidation),
		errors.Is(err, service.ErrStokKurang),
		errors.Is(err, service.ErrNoFoto):
		return fiber.StatusBadRequest
	}
	return fiber.StatusInternalServerError
}

func fail(c *fiber.Ctx, status int, message string, err error) error {
	body := fiber.Map{"message": message}
	if err != nil {
		body["error"] = err.Error()
	}
	return c.Status(status).JSON(body)
}

func listEnvelope(message string, p pagination.Params, total int64, data interface{}) fiber.Map {
	return fiber.Map{
		"message":     message,
		"currentPage": p.Page,
		"totalPages":  p.TotalPages(total),
		"totalItems":  total,
		"perPage":     p.Limit,
		"data":        data,
	}
}

// listParams reads the shared page/limit/search query parameters.
func listParams(c *fiber.Ctx) pagination.Params {
	return pagination.Params{
		Page:   c.QueryInt("page", 1),
		Limit:  c.QueryInt("limit", pagination.DefaultLimit),
		Search: c.Query("search"),
	}.Normalize()
}

func parseID(c *fiber.Ctx) (uint, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
