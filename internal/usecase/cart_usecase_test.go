package usecase_test

import (
	"context"
	"testing"

	"sweetshop/internal/domain/model"
	repo "sweetshop/internal/repository"
	"sweetshop/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// Mocks（Cart向け：衝突回避の命名）
// =====================

type CartCartItemRepoMock struct{ mock.Mock }

func (m *CartCartItemRepoMock) ListByUserID(ctx context.Context, userID int64) ([]model.CartItem, error) {
	args := m.Called(ctx, userID)
	items, _ := args.Get(0).([]model.CartItem)
	return items, args.Error(1)
}

func (m *CartCartItemRepoMock) Exists(ctx context.Context, userID int64, productID int64) (bool, error) {
	args := m.Called(ctx, userID, productID)
	return args.Bool(0), args.Error(1)
}

func (m *CartCartItemRepoMock) Add(ctx context.Context, item model.CartItem) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}

func (m *CartCartItemRepoMock) DeleteByUserAndProduct(ctx context.Context, userID int64, productID int64) error {
	args := m.Called(ctx, userID, productID)
	return args.Error(0)
}

func (m *CartCartItemRepoMock) ClearByUserID(ctx context.Context, userID int64) error {
	panic("not used in CartUsecase tests")
}

type CartProductRepoMock struct{ mock.Mock }

func (m *CartProductRepoMock) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, int64, error) {
	panic("not used in CartUsecase tests")
}

func (m *CartProductRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *CartProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	panic("not used in CartUsecase tests")
}

func (m *CartProductRepoMock) Update(ctx context.Context, p model.Product) error {
	panic("not used in CartUsecase tests")
}

// =====================
// GetCart tests
// =====================

func TestCartUsecase_GetCart_Unauthorized(t *testing.T) {
	cartRepo := new(CartCartItemRepoMock)
	productRepo := new(CartProductRepoMock)
	uc := usecase.NewCartUsecase(cartRepo, productRepo)

	_, err := uc.GetCart(context.Background(), 0)
	assertErrContains(t, err, "unauthorized")
}

func TestCartUsecase_GetCart_SumsSnapshotPrices(t *testing.T) {
	ctx := context.Background()
	userID := int64(7)

	cartRepo := new(CartCartItemRepoMock)
	productRepo := new(CartProductRepoMock)

	cartRepo.On("ListByUserID", mock.Anything, userID).Return([]model.CartItem{
		{ID: 1, ProductID: 101, Name: "いちご大福", Price: 250, Unit: "kg"},
		{ID: 2, ProductID: 102, Name: "黒豆", Price: 100, Unit: "kg"},
	}, nil)

	uc := usecase.NewCartUsecase(cartRepo, productRepo)

	out, err := uc.GetCart(ctx, userID)
	assert.NoError(t, err)
	assert.Equal(t, 2, len(out.Items))
	assert.Equal(t, int64(350), out.Total)

	cartRepo.AssertExpectations(t)
}

func TestCartUsecase_GetCart_Empty(t *testing.T) {
	ctx := context.Background()

	cartRepo := new(CartCartItemRepoMock)
	productRepo := new(CartProductRepoMock)

	cartRepo.On("ListByUserID", mock.Anything, int64(7)).Return([]model.CartItem{}, nil)

	uc := usecase.NewCartUsecase(cartRepo, productRepo)

	out, err := uc.GetCart(ctx, 7)
	assert.NoError(t, err)
	assert.NotNil(t, out.Items)
	assert.Equal(t, 0, len(out.Items))
	assert.Equal(t, int64(0), out.Total)
}

// =====================
// Toggle tests
// =====================

func TestCartUsecase_Toggle_AddsWithSnapshot(t *testing.T) {
	ctx := context.Background()
	userID := int64(7)

	cartRepo := new(CartCartItemRepoMock)
	productRepo := new(CartProductRepoMock)

	cartRepo.On("Exists", mock.Anything, userID, int64(101)).Return(false, nil)
	productRepo.On("FindByID", mock.Anything, int64(101)).Return(model.Product{
		ID:       101,
		Name:     "いちご大福",
		Price:    250,
		Unit:     "kg",
		ImageURL: "https://example.com/daifuku.jpg",
	}, nil)

	// 追加時は今の商品情報がスナップショットで写る
	cartRepo.On("Add", mock.Anything, mock.MatchedBy(func(it model.CartItem) bool {
		return it.UserID == userID &&
			it.ProductID == 101 &&
			it.Name == "いちご大福" &&
			it.Price == 250 &&
			it.Unit == "kg"
	})).Return(nil)

	cartRepo.On("ListByUserID", mock.Anything, userID).Return([]model.CartItem{
		{ID: 1, ProductID: 101, Name: "いちご大福", Price: 250, Unit: "kg"},
	}, nil)

	uc := usecase.NewCartUsecase(cartRepo, productRepo)

	out, err := uc.Toggle(ctx, userID, usecase.ToggleCartInput{ProductID: 101})
	assert.NoError(t, err)
	assert.Equal(t, 1, len(out.Items))
	assert.Equal(t, int64(250), out.Total)

	cartRepo.AssertExpectations(t)
	productRepo.AssertExpectations(t)
}

func TestCartUsecase_Toggle_RemovesExisting(t *testing.T) {
	ctx := context.Background()
	userID := int64(7)

	cartRepo := new(CartCartItemRepoMock)
	productRepo := new(CartProductRepoMock)

	cartRepo.On("Exists", mock.Anything, userID, int64(101)).Return(true, nil)
	cartRepo.On("DeleteByUserAndProduct", mock.Anything, userID, int64(101)).Return(nil)
	cartRepo.On("ListByUserID", mock.Anything, userID).Return([]model.CartItem{}, nil)

	uc := usecase.NewCartUsecase(cartRepo, productRepo)

	out, err := uc.Toggle(ctx, userID, usecase.ToggleCartInput{ProductID: 101})
	assert.NoError(t, err)
	assert.Equal(t, 0, len(out.Items))

	// 既に入っているなら商品は引かない
	productRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	cartRepo.AssertExpectations(t)
}

func TestCartUsecase_Toggle_UnknownProduct(t *testing.T) {
	ctx := context.Background()
	userID := int64(7)

	cartRepo := new(CartCartItemRepoMock)
	productRepo := new(CartProductRepoMock)

	cartRepo.On("Exists", mock.Anything, userID, int64(999)).Return(false, nil)
	productRepo.On("FindByID", mock.Anything, int64(999)).Return(model.Product{}, repo.ErrNotFound)

	uc := usecase.NewCartUsecase(cartRepo, productRepo)

	_, err := uc.Toggle(ctx, userID, usecase.ToggleCartInput{ProductID: 999})
	assertErrContains(t, err, "invalid")

	cartRepo.AssertNotCalled(t, "Add", mock.Anything, mock.Anything)
}

func TestCartUsecase_Toggle_InvalidProductID(t *testing.T) {
	cartRepo := new(CartCartItemRepoMock)
	productRepo := new(CartProductRepoMock)
	uc := usecase.NewCartUsecase(cartRepo, productRepo)

	_, err := uc.Toggle(context.Background(), 7, usecase.ToggleCartInput{ProductID: 0})
	assertErrContains(t, err, "invalid product_id")
}
