package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"sellapi/internal/image"
	"sellapi/internal/model"
)

// MockSellRepository is a mock implementation of repository.SellRepository.
type MockSellRepository struct {
	mock.Mock
}

func (m *MockSellRepository) Create(ctx context.Context, sell *model.Sell) error {
	args := m.Called(ctx, sell)
	return args.Error(0)
}

func (m *MockSellRepository) FindByID(ctx context.Context, id string) (*model.Sell, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Sell), args.Error(1)
}

func (m *MockSellRepository) FindByIDWithPassword(ctx context.Context, id string) (*model.Sell, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Sell), args.Error(1)
}

func (m *MockSellRepository) FindByEmail(ctx context.Context, email string) (*model.Sell, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Sell), args.Error(1)
}

func (m *MockSellRepository) FindByEmailWithPassword(ctx context.Context, email string) (*model.Sell, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Sell), args.Error(1)
}

func (m *MockSellRepository) FindByResetToken(ctx context.Context, tokenHash string) (*model.Sell, error) {
	args := m.Called(ctx, tokenHash)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*model.Sell), args.Error(1)
}

func (m *MockSellRepository) List(ctx context.Context) ([]model.Sell, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]model.Sell), args.Error(1)
}

func (m *MockSellRepository) UpdateProfile(ctx context.Context, id string, update model.ProfileUpdate) error {
	args := m.Called(ctx, id, update)
	return args.Error(0)
}

func (m *MockSellRepository) UpdateRole(ctx context.Context, id string, update model.AdminUpdate) error {
	args := m.Called(ctx, id, update)
	return args.Error(0)
}

func (m *MockSellRepository) UpdatePassword(ctx context.Context, id string, passwordHash string) error {
	args := m.Called(ctx, id, passwordHash)
	return args.Error(0)
}

func (m *MockSellRepository) SetResetToken(ctx context.Context, id string, tokenHash string, expire time.Time) error {
	args := m.Called(ctx, id, tokenHash, expire)
	return args.Error(0)
}

func (m *MockSellRepository) ClearResetToken(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockSellRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockUploader is a mock implementation of image.Uploader.
type MockUploader struct {
	mock.Mock
}

func (m *MockUploader) UploadAvatar(ctx context.Context, payload string) (*image.Upload, error) {
	args := m.Called(ctx, payload)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*image.Upload), args.Error(1)
}

func (m *MockUploader) Destroy(ctx context.Context, publicID string) error {
	args := m.Called(ctx, publicID)
	return args.Error(0)
}

// MockMailer is a mock implementation of mailer.Mailer.
type MockMailer struct {
	mock.Mock
}

func (m *MockMailer) Send(ctx context.Context, to, templateID string, data map[string]interface{}) error {
	args := m.Called(ctx, to, templateID, data)
	return args.Error(0)
}
