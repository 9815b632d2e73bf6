package service

import (
	"context"

	"go.uber.org/zap"

	"barcodeapi/internal/model"
	"barcodeapi/internal/repository"
)

const (
	msgAdminListFailed   = "Error occurred in admin get barcodes"
	msgAdminGetFailed    = "Error occurred during get barcode for admin"
	msgAdminDeleteFailed = "Error occurred during delete barcode for admin"
	msgAdminEditFailed   = "Error occurred during edit status for admin"
)

// AdminService moderates any user's barcodes. Callers must already be
// verified as admins; no ownership checks are applied.
type AdminService interface {
	// List pages through the barcodes of userID.
	List(ctx context.Context, userID string, page, limit int) (*BarcodePage, error)

	// Get returns a full record.
	Get(ctx context.Context, id string) (*model.Barcode, error)

	// Delete removes a record.
	Delete(ctx context.Context, id string) (*MessageResult, error)

	// EditStatus sets the edit flag and returns the record's id/owner
	// projection as read before the update.
	EditStatus(ctx context.Context, id string, status bool) (*model.BarcodeOwner, error)
}

type adminService struct {
	repo repository.BarcodeRepository
	log  *zap.Logger
}

// NewAdminService constructs a new AdminService.
func NewAdminService(repo repository.BarcodeRepository, log *zap.Logger) AdminService {
	return &adminService{repo: repo, log: log.Named("admin")}
}

func (s *adminService) List(ctx context.Context, userID string, page, limit int) (*BarcodePage, error) {
	page, limit = withDefaults(page, limit, DefaultAdminLimit)

	res, err := s.repo.List(ctx, repository.ListQuery{
		Filter: repository.Filter{UserID: &userID},
		SortBy: repository.SortByCreatedAt,
		Limit:  limit,
		Offset: Skip(page, limit),
	})
	if err != nil {
		err = classify(err, msgAdminListFailed)
		logFailure(s.log, "admin get barcodes failed", err, zap.String("user_id", userID))
		return nil, err
	}

	return &BarcodePage{
		Data: res.Items,
		Meta: NewPageMeta(page, limit, res.Total),
	}, nil
}

// Get reports a missing record as NotFound, like the user-facing reads.
func (s *adminService) Get(ctx context.Context, id string) (*model.Barcode, error) {
	b, err := found(s.repo.FindByID(ctx, id))
	if err == nil && b == nil {
		err = ErrBarcodeNotFound
	}
	if err != nil {
		err = classify(err, msgAdminGetFailed)
		logFailure(s.log, "admin get barcode failed", err, zap.String("id", id))
		return nil, err
	}
	return b, nil
}

func (s *adminService) Delete(ctx context.Context, id string) (*MessageResult, error) {
	b, err := found(s.repo.FindByID(ctx, id))
	if err == nil && b == nil {
		err = ErrBarcodeNotFound
	}
	if err == nil {
		err = s.repo.Delete(ctx, id)
	}
	if err != nil {
		err = classify(err, msgAdminDeleteFailed)
		logFailure(s.log, "admin delete barcode failed", err, zap.String("id", id))
		return nil, err
	}

	s.log.Info("barcode deleted", zap.String("id", id), zap.String("owner_id", b.UserID))
	return &MessageResult{Message: msgDeleted}, nil
}

func (s *adminService) EditStatus(ctx context.Context, id string, status bool) (*model.BarcodeOwner, error) {
	o, err := found(s.repo.FindOwner(ctx, id))
	if err == nil && o == nil {
		err = ErrBarcodeNotFound
	}
	if err == nil {
		err = s.repo.UpdateEditFlag(ctx, id, status)
	}
	if err != nil {
		err = classify(err, msgAdminEditFailed)
		logFailure(s.log, "admin edit status failed", err, zap.String("id", id), zap.Bool("status", status))
		return nil, err
	}

	s.log.Info("barcode status edited", zap.String("id", id), zap.Bool("status", status))
	return o, nil
}
