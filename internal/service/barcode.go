package service

import (
	"context"
	"database/sql"
	"errors"

	"go.uber.org/zap"

	"barcodeapi/internal/model"
	"barcodeapi/internal/repository"
)

const (
	msgHistoryFailed = "Error occurred while retrieving barcode history"
	msgGetFailed     = "Error occurred during get barcode"
	msgDeleteFailed  = "Error occurred during delete barcode"
	msgDeleted       = "Deleted successfully"
)

// HistoryQuery holds the caller's listing parameters. Nil Type and Edited mean
// "do not filter on this field".
type HistoryQuery struct {
	OwnerID string
	Page    int
	Limit   int
	Type    *model.BarcodeType
	Edited  *bool
	SortBy  repository.SortField
}

// BarcodePage is the {data, meta} listing response.
type BarcodePage struct {
	Data []model.Barcode `json:"data"`
	Meta PageMeta        `json:"meta"`
}

// StatusResult reports whether a barcode may be edited.
type StatusResult struct {
	CanEdit bool `json:"canEdit"`
}

// MessageResult is a plain confirmation body.
type MessageResult struct {
	Message string `json:"message"`
}

// BarcodeService is the user-facing view of barcodes. Every single-record
// operation is restricted to records owned by ownerID.
type BarcodeService interface {
	// History lists the owner's barcodes with optional type/edited filters.
	History(ctx context.Context, q HistoryQuery) (*BarcodePage, error)

	// Get returns a full record.
	Get(ctx context.Context, id, ownerID string) (*model.Barcode, error)

	// Status reports whether the record may be edited.
	Status(ctx context.Context, id, ownerID string) (*StatusResult, error)

	// Delete removes the record after the ownership check.
	Delete(ctx context.Context, id, ownerID string) (*MessageResult, error)
}

type barcodeService struct {
	repo repository.BarcodeRepository
	log  *zap.Logger
}

// NewBarcodeService constructs a new BarcodeService.
func NewBarcodeService(repo repository.BarcodeRepository, log *zap.Logger) BarcodeService {
	return &barcodeService{repo: repo, log: log.Named("barcode")}
}

// found turns a missing row into a nil record so the ownership guard can
// report it.
func found[T any](rec *T, err error) (*T, error) {
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	return rec, err
}

func (s *barcodeService) History(ctx context.Context, q HistoryQuery) (*BarcodePage, error) {
	page, limit := withDefaults(q.Page, q.Limit, DefaultHistoryLimit)

	res, err := s.repo.List(ctx, repository.ListQuery{
		Filter: BuildHistoryFilter(q.OwnerID, q.Type, q.Edited),
		SortBy: sortOrDefault(q.SortBy),
		Limit:  limit,
		Offset: Skip(page, limit),
	})
	if err != nil {
		err = classify(err, msgHistoryFailed)
		logFailure(s.log, "get history failed", err, zap.String("user_id", q.OwnerID))
		return nil, err
	}

	return &BarcodePage{
		Data: res.Items,
		Meta: NewPageMeta(page, limit, res.Total),
	}, nil
}

func (s *barcodeService) Get(ctx context.Context, id, ownerID string) (*model.Barcode, error) {
	b, err := found(s.repo.FindByID(ctx, id))
	if err == nil {
		err = AuthorizeOwner(b, ownerID)
	}
	if err != nil {
		err = classify(err, msgGetFailed)
		logFailure(s.log, "get barcode failed", err, zap.String("id", id), zap.String("user_id", ownerID))
		return nil, err
	}
	return b, nil
}

func (s *barcodeService) Status(ctx context.Context, id, ownerID string) (*StatusResult, error) {
	st, err := found(s.repo.FindStatus(ctx, id))
	if err == nil {
		err = AuthorizeOwner(st, ownerID)
	}
	if err != nil {
		err = classify(err, msgGetFailed)
		logFailure(s.log, "get status failed", err, zap.String("id", id), zap.String("user_id", ownerID))
		return nil, err
	}
	return &StatusResult{CanEdit: st.EditFlag}, nil
}

// Delete is fetch-then-delete; a row that disappears in between makes the
// delete report sql.ErrNoRows, which surfaces as an internal failure.
func (s *barcodeService) Delete(ctx context.Context, id, ownerID string) (*MessageResult, error) {
	b, err := found(s.repo.FindByID(ctx, id))
	if err == nil {
		err = AuthorizeOwner(b, ownerID)
	}
	if err == nil {
		err = s.repo.Delete(ctx, id)
	}
	if err != nil {
		err = classify(err, msgDeleteFailed)
		logFailure(s.log, "delete barcode failed", err, zap.String("id", id), zap.String("user_id", ownerID))
		return nil, err
	}

	s.log.Info("barcode deleted", zap.String("id", id), zap.String("user_id", ownerID))
	return &MessageResult{Message: msgDeleted}, nil
}
