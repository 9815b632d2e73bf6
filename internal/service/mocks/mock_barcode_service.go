package mocks

import (
	"context"

	"barcodeapi/internal/model"
	"barcodeapi/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockBarcodeService struct {
	mock.Mock
}

func (m *MockBarcodeService) History(ctx context.Context, q service.HistoryQuery) (*service.BarcodePage, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.BarcodePage), args.Error(1)
}

func (m *MockBarcodeService) Get(ctx context.Context, id, ownerID string) (*model.Barcode, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Barcode), args.Error(1)
}

func (m *MockBarcodeService) Status(ctx context.Context, id, ownerID string) (*service.StatusResult, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.StatusResult), args.Error(1)
}

func (m *MockBarcodeService) Delete(ctx context.Context, id, ownerID string) (*service.MessageResult, error) {
	args := m.Called(ctx, id, ownerID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.MessageResult), args.Error(1)
}
