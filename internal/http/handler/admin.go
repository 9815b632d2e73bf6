package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"barcodeapi/internal/http/middleware"
	"barcodeapi/internal/service"
)

// AdminListBarcodes godoc
// @Summary List a user's barcodes
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param userId query string true "Target user ID (UUID)"
// @Param page query int false "Page number (default 1)"
// @Param limit query int false "Page size (default 10, max 100)"
// @Success 200 {object} service.BarcodePage
// @Failure 400 {object} errorPayload
// @Failure 401 {object} errorPayload
// @Failure 403 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /admin/barcodes [get]
func AdminListBarcodes(svc service.AdminService, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var p adminListParams
		if ok, err := parseQuery(c, &p); !ok {
			return err
		}

		res, err := svc.List(c.UserContext(), p.UserID, intOrZero(p.Page), intOrZero(p.Limit))
		if err != nil {
			return writeServiceError(c, err)
		}

		log.Info("admin listed barcodes",
			zap.String("admin_id", middleware.ActorID(c)),
			zap.String("user_id", p.UserID),
			zap.String("request_id", requestIDFromCtx(c)),
		)
		return c.JSON(res)
	}
}

// AdminGetBarcode godoc
// @Summary Get any barcode
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Barcode ID (UUID)"
// @Success 200 {object} model.Barcode
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /admin/barcodes/{id} [get]
func AdminGetBarcode(svc service.AdminService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		b, err := svc.Get(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}
		return c.JSON(b)
	}
}

// AdminDeleteBarcode godoc
// @Summary Delete any barcode
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path string true "Barcode ID (UUID)"
// @Success 200 {object} service.MessageResult
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /admin/barcodes/{id} [delete]
func AdminDeleteBarcode(svc service.AdminService, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		res, err := svc.Delete(c.UserContext(), id)
		if err != nil {
			return writeServiceError(c, err)
		}

		log.Info("admin deleted barcode",
			zap.String("admin_id", middleware.ActorID(c)),
			zap.String("id", id),
			zap.String("request_id", requestIDFromCtx(c)),
		)
		return c.JSON(res)
	}
}

// AdminEditStatus godoc
// @Summary Set a barcode's edit flag
// @Description Returns the record's id and owner as read before the update.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Barcode ID (UUID)"
// @Param body body editStatusRequest true "New status"
// @Success 200 {object} model.BarcodeOwner
// @Failure 400 {object} errorPayload
// @Failure 404 {object} errorPayload
// @Failure 500 {object} errorPayload
// @Router /admin/status/{id} [patch]
func AdminEditStatus(svc service.AdminService, log *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, ok := parseID(c)
		if !ok {
			return writeError(c, fiber.StatusBadRequest, "INVALID_ID", "invalid id format")
		}

		var req editStatusRequest
		if err := c.BodyParser(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", "status must be a boolean")
		}
		if err := validate.Struct(&req); err != nil {
			return writeError(c, fiber.StatusBadRequest, "VALIDATION_ERROR", validationMessage(err))
		}

		status := bool(*req.Status)
		res, err := svc.EditStatus(c.UserContext(), id, status)
		if err != nil {
			return writeServiceError(c, err)
		}

		log.Info("admin edited barcode status",
			zap.String("admin_id", middleware.ActorID(c)),
			zap.String("id", id),
			zap.Bool("status", status),
			zap.String("request_id", requestIDFromCtx(c)),
		)
		return c.JSON(res)
	}
}
