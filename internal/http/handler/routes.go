package handler

import (
	"database/sql"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/timeout"
	"go.uber.org/zap"

	"barcodeapi/internal/http/middleware"
	"barcodeapi/internal/service"
)

// RegisterRoutes attaches the probe, user and admin routes to app. auth must
// authenticate the caller and populate the actor locals. Barcode and admin
// handlers run under a requestTimeout deadline; zero disables it.
func RegisterRoutes(
	app *fiber.App,
	db *sql.DB,
	auth fiber.Handler,
	barcodeSvc service.BarcodeService,
	adminSvc service.AdminService,
	requestTimeout time.Duration,
	log *zap.Logger,
) {
	bounded := func(h fiber.Handler) fiber.Handler {
		if requestTimeout <= 0 {
			return h
		}
		return timeout.NewWithContext(h, requestTimeout)
	}

	app.Get("/healthz", LivenessProbe())
	app.Get("/readyz", ReadinessProbe(db))

	// Literal segments are registered before /:id so they are not captured by it.
	barcode := app.Group("/barcode", auth)
	barcode.Get("/history", bounded(ListHistory(barcodeSvc)))
	barcode.Get("/status/:id", bounded(GetStatus(barcodeSvc)))
	barcode.Get("/:id", bounded(GetBarcode(barcodeSvc)))
	barcode.Delete("/:id", bounded(DeleteBarcode(barcodeSvc)))

	log = log.Named("admin")
	admin := app.Group("/admin", auth, middleware.RequireAdmin())
	admin.Get("/barcodes", bounded(AdminListBarcodes(adminSvc, log)))
	admin.Get("/barcodes/:id", bounded(AdminGetBarcode(adminSvc)))
	admin.Delete("/barcodes/:id", bounded(AdminDeleteBarcode(adminSvc, log)))
	admin.Patch("/status/:id", bounded(AdminEditStatus(adminSvc, log)))
}
