package services

import (
	"context"
	"io"
	"time"

	"mediahub/internal/models"
	"mediahub/internal/repositories"

	"github.com/stretchr/testify/mock"
)

// Mock repositories and services
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

type MockProductRepository struct {
	mock.Mock
}

func (m *MockProductRepository) Create(ctx context.Context, product *models.Product) error {
	args := m.Called(ctx, product)
	return args.Error(0)
}

func (m *MockProductRepository) GetByID(ctx context.Context, contentType models.ContentType, id int64) (*models.Product, error) {
	args := m.Called(ctx, contentType, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Update(ctx context.Context, contentType models.ContentType, id int64, update models.ProductUpdate) (*models.Product, error) {
	args := m.Called(ctx, contentType, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Product), args.Error(1)
}

func (m *MockProductRepository) Delete(ctx context.Context, contentType models.ContentType, id int64) error {
	args := m.Called(ctx, contentType, id)
	return args.Error(0)
}

func (m *MockProductRepository) List(ctx context.Context, contentType models.ContentType, search string, limit, offset int) ([]models.Product, int, error) {
	args := m.Called(ctx, contentType, search, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Int(1), args.Error(2)
	}
	return args.Get(0).([]models.Product), args.Int(1), args.Error(2)
}

type MockProductImageRepository struct {
	mock.Mock
}

func (m *MockProductImageRepository) CreateMany(ctx context.Context, productID int64, images []string) (int64, error) {
	args := m.Called(ctx, productID, images)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockProductImageRepository) ListByProducts(ctx context.Context, productIDs []int64) (map[int64][]models.ProductImage, error) {
	args := m.Called(ctx, productIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64][]models.ProductImage), args.Error(1)
}

func (m *MockProductImageRepository) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockProductImageRepository) DeleteByProduct(ctx context.Context, productID int64) (int64, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(int64), args.Error(1)
}

type MockProductLinkRepository struct {
	mock.Mock
}

func (m *MockProductLinkRepository) Create(ctx context.Context, link *models.ProductLink) error {
	args := m.Called(ctx, link)
	return args.Error(0)
}

func (m *MockProductLinkRepository) UpdateURL(ctx context.Context, id int64, url string) (*models.ProductLink, error) {
	args := m.Called(ctx, id, url)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ProductLink), args.Error(1)
}

func (m *MockProductLinkRepository) ListByProducts(ctx context.Context, productIDs []int64) (map[int64][]models.ProductLink, error) {
	args := m.Called(ctx, productIDs)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[int64][]models.ProductLink), args.Error(1)
}

func (m *MockProductLinkRepository) DeleteByProduct(ctx context.Context, productID int64) (int64, error) {
	args := m.Called(ctx, productID)
	return args.Get(0).(int64), args.Error(1)
}

// fakeTxManager runs the unit of work against the mocks and records whether it
// would have committed
type fakeTxManager struct {
	repos     repositories.Repos
	calls     int
	committed bool
}

func (f *fakeTxManager) WithinTx(ctx context.Context, fn func(repos repositories.Repos) error) error {
	f.calls++
	err := fn(f.repos)
	f.committed = err == nil
	return err
}

type MockObjectStorage struct {
	mock.Mock
}

func (m *MockObjectStorage) PutObject(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	args := m.Called(ctx, key, reader, size, contentType)
	return args.Error(0)
}

func (m *MockObjectStorage) PresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, key, expiry)
	return args.String(0), args.Error(1)
}

func (m *MockObjectStorage) EnsureBucketExists(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockObjectStorage) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func stringPtr(s string) *string {
	return &s
}
