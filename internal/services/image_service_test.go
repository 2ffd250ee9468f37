package services

import (
	"context"
	"errors"
	"testing"

	"mediahub/internal/common"
	"mediahub/internal/models"
	"mediahub/internal/repositories"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

type ImageServiceTestSuite struct {
	suite.Suite
	products *MockProductRepository
	images   *MockProductImageRepository
	tx       *fakeTxManager
	service  ImageService
	ctx      context.Context
}

func (suite *ImageServiceTestSuite) SetupTest() {
	suite.products = new(MockProductRepository)
	suite.images = new(MockProductImageRepository)
	repos := repositories.Repos{Products: suite.products, Images: suite.images}
	suite.tx = &fakeTxManager{repos: repos}
	suite.service = NewImageService(repos, suite.tx)
	suite.ctx = context.Background()
}

func (suite *ImageServiceTestSuite) TearDownTest() {
	suite.products.AssertExpectations(suite.T())
	suite.images.AssertExpectations(suite.T())
}

func TestImageServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ImageServiceTestSuite))
}

func (suite *ImageServiceTestSuite) TestList_Paginates() {
	products := []models.Product{
		{ID: 9, ContentType: models.ContentTypeImages, Title: stringPtr("Cat 9")},
		{ID: 7, ContentType: models.ContentTypeImages, Title: stringPtr("Cat 7")},
	}
	suite.products.On("List", suite.ctx, models.ContentTypeImages, "cat", 5, 5).Return(products, 12, nil).Once()
	suite.images.On("ListByProducts", suite.ctx, []int64{9, 7}).Return(map[int64][]models.ProductImage{
		9: {{ID: 1, ProductID: 9, Image: "a.png"}},
	}, nil).Once()

	page, err := suite.service.List(suite.ctx, models.PageRequest{Page: 2, PageSize: 5, Search: "cat"})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 12, page.Total)
	assert.Equal(suite.T(), 3, page.TotalPages)
	assert.Equal(suite.T(), 2, page.Page)
	require.Len(suite.T(), page.Data, 2)
	assert.Len(suite.T(), page.Data[0].Images, 1)
	assert.NotNil(suite.T(), page.Data[1].Images)
	assert.Empty(suite.T(), page.Data[1].Images)
}

func (suite *ImageServiceTestSuite) TestList_Empty() {
	suite.products.On("List", suite.ctx, models.ContentTypeImages, "", 10, 0).Return([]models.Product{}, 0, nil).Once()
	suite.images.On("ListByProducts", suite.ctx, []int64{}).Return(map[int64][]models.ProductImage{}, nil).Once()

	page, err := suite.service.List(suite.ctx, models.PageRequest{Page: 1, PageSize: 10})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), 0, page.TotalPages)
	assert.NotNil(suite.T(), page.Data)
	assert.Empty(suite.T(), page.Data)
}

func (suite *ImageServiceTestSuite) TestList_RepositoryFailure() {
	suite.products.On("List", suite.ctx, models.ContentTypeImages, "", 10, 0).Return(nil, 0, errors.New("db down")).Once()

	_, err := suite.service.List(suite.ctx, models.PageRequest{Page: 1, PageSize: 10})
	assert.True(suite.T(), common.IsKind(err, common.KindInternal))
}

func (suite *ImageServiceTestSuite) TestGetByID_NotFound() {
	suite.products.On("GetByID", suite.ctx, models.ContentTypeImages, int64(4)).Return(nil, repositories.ErrNotFound).Once()

	_, err := suite.service.GetByID(suite.ctx, 4)
	assert.True(suite.T(), common.IsKind(err, common.KindNotFound))
	assert.EqualError(suite.T(), err, "Product not found")
}

func (suite *ImageServiceTestSuite) TestGetByID_WithImages() {
	product := &models.Product{ID: 4, ContentType: models.ContentTypeImages}
	suite.products.On("GetByID", suite.ctx, models.ContentTypeImages, int64(4)).Return(product, nil).Once()
	suite.images.On("ListByProducts", suite.ctx, []int64{4}).Return(map[int64][]models.ProductImage{
		4: {{ID: 1, ProductID: 4, Image: "a.png"}, {ID: 2, ProductID: 4, Image: "b.png"}},
	}, nil).Once()

	result, err := suite.service.GetByID(suite.ctx, 4)
	require.NoError(suite.T(), err)
	assert.Len(suite.T(), result.Images, 2)
}

func (suite *ImageServiceTestSuite) TestCreate_Success() {
	suite.products.On("Create", suite.ctx, mock.MatchedBy(func(p *models.Product) bool {
		return p.ContentType == models.ContentTypeImages && *p.Title == "Cats"
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*models.Product).ID = 21
	}).Return(nil).Once()
	suite.images.On("CreateMany", suite.ctx, int64(21), []string{"a.png", "b.png"}).Return(int64(2), nil).Once()

	result, err := suite.service.Create(suite.ctx, CreateImagesInput{Title: "Cats", Images: []string{"a.png", "b.png"}})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(21), result.Product.ID)
	assert.Equal(suite.T(), int64(2), result.ImagesCount)
	assert.Equal(suite.T(), 1, suite.tx.calls)
	assert.True(suite.T(), suite.tx.committed)
}

func (suite *ImageServiceTestSuite) TestCreate_Validation() {
	_, err := suite.service.Create(suite.ctx, CreateImagesInput{Title: "", Images: []string{"a.png"}})
	assert.EqualError(suite.T(), err, "Title and images are required")

	_, err = suite.service.Create(suite.ctx, CreateImagesInput{Title: "Cats"})
	assert.EqualError(suite.T(), err, "Title and images are required")

	_, err = suite.service.Create(suite.ctx, CreateImagesInput{Title: "Cats", Images: []string{"a.png", " "}})
	assert.True(suite.T(), common.IsKind(err, common.KindValidation))

	assert.Zero(suite.T(), suite.tx.calls)
}

func (suite *ImageServiceTestSuite) TestCreate_ImageInsertFailureRollsBack() {
	suite.products.On("Create", suite.ctx, mock.Anything).Return(nil).Once()
	suite.images.On("CreateMany", suite.ctx, mock.Anything, mock.Anything).Return(int64(0), errors.New("copy failed")).Once()

	_, err := suite.service.Create(suite.ctx, CreateImagesInput{Title: "Cats", Images: []string{"a.png"}})
	assert.True(suite.T(), common.IsKind(err, common.KindInternal))
	assert.False(suite.T(), suite.tx.committed)
}

func (suite *ImageServiceTestSuite) TestUpdate_AppendsImages() {
	update := models.ProductUpdate{Title: stringPtr("Dogs")}
	updated := &models.Product{ID: 4, ContentType: models.ContentTypeImages, Title: stringPtr("Dogs")}
	suite.products.On("Update", suite.ctx, models.ContentTypeImages, int64(4), update).Return(updated, nil).Once()
	suite.images.On("CreateMany", suite.ctx, int64(4), []string{"c.png"}).Return(int64(1), nil).Once()
	suite.images.On("ListByProducts", suite.ctx, []int64{4}).Return(map[int64][]models.ProductImage{
		4: {{ID: 1, Image: "a.png"}, {ID: 2, Image: "b.png"}, {ID: 3, Image: "c.png"}},
	}, nil).Once()

	result, err := suite.service.Update(suite.ctx, 4, UpdateImagesInput{Title: stringPtr("Dogs"), Images: []string{"c.png"}})
	require.NoError(suite.T(), err)
	assert.Equal(suite.T(), int64(1), result.ImagesAdded)
	assert.Len(suite.T(), result.Product.Images, 3)
	assert.Equal(suite.T(), "Dogs", *result.Product.Title)
}

func (suite *ImageServiceTestSuite) TestUpdate_NotFound() {
	suite.products.On("Update", suite.ctx, models.ContentTypeImages, int64(4), models.ProductUpdate{}).
		Return(nil, repositories.ErrNotFound).Once()

	_, err := suite.service.Update(suite.ctx, 4, UpdateImagesInput{})
	assert.True(suite.T(), common.IsKind(err, common.KindNotFound))
	assert.False(suite.T(), suite.tx.committed)
}

func (suite *ImageServiceTestSuite) TestDeleteImage() {
	suite.images.On("Delete", suite.ctx, int64(1)).Return(nil).Once()
	suite.images.On("Delete", suite.ctx, int64(2)).Return(repositories.ErrNotFound).Once()

	assert.NoError(suite.T(), suite.service.DeleteImage(suite.ctx, 1))

	err := suite.service.DeleteImage(suite.ctx, 2)
	assert.True(suite.T(), common.IsKind(err, common.KindNotFound))
	assert.EqualError(suite.T(), err, "Image not found")
}

func (suite *ImageServiceTestSuite) TestDeleteAll_ChildrenThenParent() {
	var order []string
	suite.images.On("DeleteByProduct", suite.ctx, int64(4)).Run(func(mock.Arguments) {
		order = append(order, "images")
	}).Return(int64(2), nil).Once()
	suite.products.On("Delete", suite.ctx, models.ContentTypeImages, int64(4)).Run(func(mock.Arguments) {
		order = append(order, "product")
	}).Return(nil).Once()

	require.NoError(suite.T(), suite.service.DeleteAll(suite.ctx, 4))
	assert.Equal(suite.T(), []string{"images", "product"}, order)
	assert.True(suite.T(), suite.tx.committed)
}

func (suite *ImageServiceTestSuite) TestDeleteAll_NotFound() {
	suite.images.On("DeleteByProduct", suite.ctx, int64(4)).Return(int64(0), nil).Once()
	suite.products.On("Delete", suite.ctx, models.ContentTypeImages, int64(4)).Return(repositories.ErrNotFound).Once()

	err := suite.service.DeleteAll(suite.ctx, 4)
	assert.EqualError(suite.T(), err, "Product not found")
	assert.False(suite.T(), suite.tx.committed)
}
