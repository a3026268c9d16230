package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/freightdev/openhwy-sub001/internal/auth"
	"github.com/freightdev/openhwy-sub001/internal/model"
	"github.com/freightdev/openhwy-sub001/internal/repository"
	"github.com/freightdev/openhwy-sub001/internal/service"
)

type MockDocumentService struct {
	mock.Mock
}

func (m *MockDocumentService) Upload(ctx context.Context, tenant auth.Tenant, in service.UploadInput) (*model.DriverDocument, error) {
	args := m.Called(ctx, tenant, in)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DriverDocument), args.Error(1)
}

func (m *MockDocumentService) List(ctx context.Context, tenant auth.Tenant, driverID string, q repository.ListQuery) (*service.DocumentListResult, error) {
	args := m.Called(ctx, tenant, driverID, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.DocumentListResult), args.Error(1)
}

func (m *MockDocumentService) Get(ctx context.Context, tenant auth.Tenant, driverID, id string) (*model.DriverDocument, error) {
	args := m.Called(ctx, tenant, driverID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.DriverDocument), args.Error(1)
}

func (m *MockDocumentService) Open(ctx context.Context, tenant auth.Tenant, driverID, id string) (*model.DriverDocument, io.ReadCloser, error) {
	args := m.Called(ctx, tenant, driverID, id)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(*model.DriverDocument), args.Get(1).(io.ReadCloser), args.Error(2)
}

func (m *MockDocumentService) Delete(ctx context.Context, tenant auth.Tenant, driverID, id string) error {
	args := m.Called(ctx, tenant, driverID, id)
	return args.Error(0)
}
