package handler

import (
	"github.com/gofiber/fiber/v2"

	"barcodeapi/internal/http/middleware"
	"barcodeapi/internal/service"
)

// ListHistory godoc
// @Summary List the caller's barcodes
// @Tags barcode
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 20, max 100)"
// @Param type query string false "Barcode type"
// @Param edited query string false "Edit flag filter; \"true\" or anything else for false"
// @Param sortBy query string false "createdAt or updatedAt"
// @Success 200 {object} service.BarcodePage
// @Failure 400 {object} errorPayload
// @Failure 401 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /barcode/history [get]
func ListHistory(svc service.BarcodeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var p historyParams
		if ok, err := parseQuery(c, &p); !ok {
			return err
		}

		res, err := svc.History(c.UserContext(), service.HistoryQuery{
			OwnerID: middleware.ActorID(c),
			Page:    intOrZero(p.Page),
			Limit:   intOrZero(p.Limit),
			Type:    typeFilter(p.Type),
			Edited:  editedFilter(p.Edited),
			SortBy:  sortField(p.SortBy),
		})
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// GetBarcode godoc
// @Summary Get one of the caller's barcodes
// @Tags barcode
// @Produce json
// @Security BearerAuth
// @Param id path string true "Barcode ID (UUID)"
// @Success 200 {object} model.Barcode
// @Failure 400 {object} errorPayload
// @Failure 403 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /barcode/{id} [get]
func GetBarcode(svc service.BarcodeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		b, err := svc.Get(c.UserContext(), id, middleware.ActorID(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(b)
	}
}

// GetStatus godoc
// @Summary Report whether one of the caller's barcodes may be edited
// @Tags barcode
// @Produce json
// @Security BearerAuth
// @Param id path string true "Barcode ID (UUID)"
// @Success 200 {object} service.StatusResult
// @Failure 400 {object} errorPayload
// @Failure 403 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /barcode/status/{id} [get]
func GetStatus(svc service.BarcodeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		res, err := svc.Status(c.UserContext(), id, middleware.ActorID(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}

// DeleteBarcode godoc
// @Summary Delete one of the caller's barcodes
// @Tags barcode
// @Produce json
// @Security BearerAuth
// @Param id path string true "Barcode ID (UUID)"
// @Success 200 {object} service.MessageResult
// @Failure 400 {object} errorPayload
// @Failure 403 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /barcode/{id} [delete]
func DeleteBarcode(svc service.BarcodeService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		res, err := svc.Delete(c.UserContext(), id, middleware.ActorID(c))
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(res)
	}
}
