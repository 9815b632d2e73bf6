package mocks

import (
	"context"

	"barcodeapi/internal/model"
	"barcodeapi/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockBarcodeRepository struct {
	mock.Mock
}

func (m *MockBarcodeRepository) FindByID(ctx context.Context, id string) (*model.Barcode, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Barcode), args.Error(1)
}

func (m *MockBarcodeRepository) FindStatus(ctx context.Context, id string) (*model.BarcodeStatus, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BarcodeStatus), args.Error(1)
}

func (m *MockBarcodeRepository) FindOwner(ctx context.Context, id string) (*model.BarcodeOwner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.BarcodeOwner), args.Error(1)
}

func (m *MockBarcodeRepository) List(ctx context.Context, q repository.ListQuery) (*repository.PageResult[model.Barcode], error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*repository.PageResult[model.Barcode]), args.Error(1)
}

func (m *MockBarcodeRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockBarcodeRepository) UpdateEditFlag(ctx context.Context, id string, editFlag bool) error {
	args := m.Called(ctx, id, editFlag)
	return args.Error(0)
}
