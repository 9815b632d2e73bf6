package mocks

import (
	"context"

	"barcodeapi/internal/model"
	"barcodeapi/internal/service"

	"github.com/stretchr/testify/mock"
)

type MockAdminService struct {
	mock.Mock
}

func (m *MockAdminService) List(ctx context.Context, userID string, page, limit int) (*service.BarcodePage, error) {
	args := m.Called(ctx, userID, page, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.BarcodePage), args.Error(1)
}

func (m *MockAdminService) Get(ctx context.Context, id string) (*model.Barcode, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Barcode), args.Error(1)
}

func (m *MockAdminService) Delete(ctx context.Context, id string) (*service.MessageResult, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.MessageResult), args.Error(1)
}

func (m *MockAdminService) EditStatus(ctx context.Context, id string, status bool) (*model.BarcodeOwner, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BarcodeOwner), args.Error(1)
}
