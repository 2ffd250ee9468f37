package handlers

import (
	"context"
	"io"

	"mediahub/internal/models"
	"mediahub/internal/services"

	"github.com/stretchr/testify/mock"
)

type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, email, password string) (*models.AuthResult, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AuthResult), args.Error(1)
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (*models.AuthResult, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AuthResult), args.Error(1)
}

func (m *MockAuthService) GenerateToken(userID int64) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

func (m *MockAuthService) ValidateToken(token string) (*services.TokenClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.TokenClaims), args.Error(1)
}

type MockImageService struct {
	mock.Mock
}

func (m *MockImageService) List(ctx context.Context, req models.PageRequest) (models.Page[models.ImageProduct], error) {
	args := m.Called(ctx, req)
	return args.Get(0).(models.Page[models.ImageProduct]), args.Error(1)
}

func (m *MockImageService) GetByID(ctx context.Context, id int64) (*models.ImageProduct, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ImageProduct), args.Error(1)
}

func (m *MockImageService) Create(ctx context.Context, input services.CreateImagesInput) (*services.CreateImagesResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.CreateImagesResult), args.Error(1)
}

func (m *MockImageService) Update(ctx context.Context, id int64, input services.UpdateImagesInput) (*services.UpdateImagesResult, error) {
	args := m.Called(ctx, id, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.UpdateImagesResult), args.Error(1)
}

func (m *MockImageService) DeleteImage(ctx context.Context, imageID int64) error {
	return m.Called(ctx, imageID).Error(0)
}

func (m *MockImageService) DeleteAll(ctx context.Context, productID int64) error {
	return m.Called(ctx, productID).Error(0)
}

type MockUploadService struct {
	mock.Mock
}

func (m *MockUploadService) UploadImage(ctx context.Context, filename, contentType string, size int64, reader io.Reader) (*models.UploadedImage, error) {
	body, _ := io.ReadAll(reader)
	args := m.Called(ctx, filename, contentType, size, body)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UploadedImage), args.Error(1)
}

type MockLinkService struct {
	mock.Mock
}

func (m *MockLinkService) List(ctx context.Context, req models.PageRequest) (models.Page[models.LinkProduct], error) {
	args := m.Called(ctx, req)
	return args.Get(0).(models.Page[models.LinkProduct]), args.Error(1)
}

func (m *MockLinkService) GetByID(ctx context.Context, id int64) (*models.LinkProduct, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.LinkProduct), args.Error(1)
}

func (m *MockLinkService) Create(ctx context.Context, input services.CreateLinkInput) (*services.LinkResult, error) {
	args := m.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.LinkResult), args.Error(1)
}

func (m *MockLinkService) Update(ctx context.Context, linkID int64, input services.UpdateLinkInput) (*services.LinkResult, error) {
	args := m.Called(ctx, linkID, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*services.LinkResult), args.Error(1)
}

func (m *MockLinkService) Delete(ctx context.Context, productID int64) error {
	return m.Called(ctx, productID).Error(0)
}

func stringPtr(s string) *string {
	return &s
}
