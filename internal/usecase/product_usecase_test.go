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
// Mocks（Product向け：衝突回避の命名）
// =====================

type ProdProductRepoMock struct{ mock.Mock }

func (m *ProdProductRepoMock) List(ctx context.Context, q repo.ProductListQuery) ([]model.Product, int64, error) {
	args := m.Called(ctx, q)
	items, _ := args.Get(0).([]model.Product)
	return items, args.Get(1).(int64), args.Error(2)
}

func (m *ProdProductRepoMock) FindByID(ctx context.Context, id int64) (model.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(model.Product)
	return p, args.Error(1)
}

func (m *ProdProductRepoMock) Create(ctx context.Context, p model.Product) (model.Product, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(model.Product)
	return created, args.Error(1)
}

func (m *ProdProductRepoMock) Update(ctx context.Context, p model.Product) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

type ProdInventoryRepoMock struct{ mock.Mock }

func (m *ProdInventoryRepoMock) SetStock(ctx context.Context, productID int64, newStock int64) error {
	args := m.Called(ctx, productID, newStock)
	return args.Error(0)
}

func (m *ProdInventoryRepoMock) DecreaseStockIfEnough(ctx context.Context, productID int64, qty int64) (bool, error) {
	panic("not used in ProductUsecase tests")
}

func (m *ProdInventoryRepoMock) IncreaseStock(ctx context.Context, productID int64, qty int64) error {
	panic("not used in ProductUsecase tests")
}

func (m *ProdInventoryRepoMock) CreateAdjustment(ctx context.Context, adj model.InventoryAdjustment) error {
	args := m.Called(ctx, adj)
	return args.Error(0)
}

type ProdAuditRepoMock struct{ mock.Mock }

func (m *ProdAuditRepoMock) Create(ctx context.Context, log model.AuditLog) error {
	args := m.Called(ctx, log)
	return args.Error(0)
}

func (m *ProdAuditRepoMock) List(ctx context.Context, filter repo.AuditLogFilter) ([]model.AuditLog, error) {
	panic("not used in ProductUsecase tests")
}

func newProductUsecaseForTest() (*usecase.ProductUsecase, *ProdProductRepoMock, *ProdInventoryRepoMock, *ProdAuditRepoMock) {
	productRepo := new(ProdProductRepoMock)
	invRepo := new(ProdInventoryRepoMock)
	audit := new(ProdAuditRepoMock)
	return usecase.NewProductUsecase(productRepo, invRepo, audit), productRepo, invRepo, audit
}

// =====================
// ListProducts tests
// =====================

func TestProductUsecase_ListProducts_InvalidPage(t *testing.T) {
	uc, _, _, _ := newProductUsecaseForTest()

	_, err := uc.ListProducts(context.Background(), usecase.ListProductsInput{Page: 0, Limit: 20})
	assertErrContains(t, err, "invalid page")
}

func TestProductUsecase_ListProducts_InvalidLimit(t *testing.T) {
	uc, _, _, _ := newProductUsecaseForTest()

	_, err := uc.ListProducts(context.Background(), usecase.ListProductsInput{Page: 1, Limit: 101})
	assertErrContains(t, err, "invalid limit")
}

func TestProductUsecase_ListProducts_InvalidSort(t *testing.T) {
	uc, _, _, _ := newProductUsecaseForTest()

	_, err := uc.ListProducts(context.Background(), usecase.ListProductsInput{Page: 1, Limit: 20, Sort: "oldest"})
	assertErrContains(t, err, "invalid sort")
}

func TestProductUsecase_ListProducts_QTooLong(t *testing.T) {
	uc, _, _, _ := newProductUsecaseForTest()

	q := make([]byte, 101)
	for i := range q {
		q[i] = 'a'
	}

	_, err := uc.ListProducts(context.Background(), usecase.ListProductsInput{Page: 1, Limit: 20, Q: string(q)})
	assertErrContains(t, err, "q too long")
}

func TestProductUsecase_ListProducts_TrimsQuery(t *testing.T) {
	ctx := context.Background()
	uc, productRepo, _, _ := newProductUsecaseForTest()

	// 前後の空白は削った状態で検索に渡る
	productRepo.On("List", mock.Anything, repo.ProductListQuery{
		Page:  1,
		Limit: 20,
		Q:     "大福",
		Sort:  "price_asc",
	}).Return([]model.Product{{ID: 101, Name: "いちご大福"}}, int64(1), nil)

	out, err := uc.ListProducts(ctx, usecase.ListProductsInput{Page: 1, Limit: 20, Q: "  大福  ", Sort: "price_asc"})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), out.Total)
	assert.Equal(t, 1, len(out.Items))

	productRepo.AssertExpectations(t)
}

// =====================
// GetProductDetail tests
// =====================

func TestProductUsecase_GetProductDetail_NotFound(t *testing.T) {
	ctx := context.Background()
	uc, productRepo, _, _ := newProductUsecaseForTest()

	productRepo.On("FindByID", mock.Anything, int64(999)).Return(model.Product{}, repo.ErrNotFound)

	_, err := uc.GetProductDetail(ctx, 999)
	assertErrContains(t, err, "not found")
}

func TestProductUsecase_GetProductDetail_Success(t *testing.T) {
	ctx := context.Background()
	uc, productRepo, _, _ := newProductUsecaseForTest()

	productRepo.On("FindByID", mock.Anything, int64(101)).Return(model.Product{ID: 101, Name: "いちご大福", Price: 250}, nil)

	p, err := uc.GetProductDetail(ctx, 101)
	assert.NoError(t, err)
	assert.Equal(t, "いちご大福", p.Name)
}

// =====================
// AdminCreateProduct tests
// =====================

func TestProductUsecase_AdminCreateProduct_NameRequired(t *testing.T) {
	uc, _, _, _ := newProductUsecaseForTest()

	_, err := uc.AdminCreateProduct(context.Background(), 1, usecase.AdminCreateProductInput{Name: "  ", Price: 100})
	assertErrContains(t, err, "name required")
}

func TestProductUsecase_AdminCreateProduct_NegativePrice(t *testing.T) {
	uc, _, _, _ := newProductUsecaseForTest()

	_, err := uc.AdminCreateProduct(context.Background(), 1, usecase.AdminCreateProductInput{Name: "黒豆", Price: -1})
	assertErrContains(t, err, "price must be >= 0")
}

func TestProductUsecase_AdminCreateProduct_DefaultsUnitToKg(t *testing.T) {
	ctx := context.Background()
	uc, productRepo, _, audit := newProductUsecaseForTest()

	productRepo.On("Create", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		return p.Name == "黒豆" && p.Unit == "kg" && p.Price == 100 && p.Quantity == 5
	})).Return(model.Product{ID: 42, Name: "黒豆", Unit: "kg", Price: 100, Quantity: 5}, nil)

	audit.On("Create", mock.Anything, mock.MatchedBy(func(l model.AuditLog) bool {
		return l.ActorUserID == int64(1) &&
			l.Action == model.AuditActionCreateProduct &&
			l.ResourceID == int64(42)
	})).Return(nil)

	id, err := uc.AdminCreateProduct(ctx, 1, usecase.AdminCreateProductInput{Name: "黒豆", Price: 100, Quantity: 5})
	assert.NoError(t, err)
	assert.Equal(t, int64(42), id)

	productRepo.AssertExpectations(t)
	audit.AssertExpectations(t)
}

// =====================
// AdminSetStock tests
// =====================

func TestProductUsecase_AdminSetStock_ReasonRequired(t *testing.T) {
	uc, _, _, _ := newProductUsecaseForTest()

	err := uc.AdminSetStock(context.Background(), 1, 101, 10, "  ")
	assertErrContains(t, err, "reason required")
}

func TestProductUsecase_AdminSetStock_NotFound(t *testing.T) {
	ctx := context.Background()
	uc, productRepo, _, _ := newProductUsecaseForTest()

	productRepo.On("FindByID", mock.Anything, int64(999)).Return(model.Product{}, repo.ErrNotFound)

	err := uc.AdminSetStock(ctx, 1, 999, 10, "入荷")
	assertErrContains(t, err, "not found")
}

func TestProductUsecase_AdminSetStock_RecordsDeltaAndAudit(t *testing.T) {
	ctx := context.Background()
	uc, productRepo, invRepo, audit := newProductUsecaseForTest()

	productRepo.On("FindByID", mock.Anything, int64(101)).Return(model.Product{ID: 101, Quantity: 3}, nil)
	invRepo.On("SetStock", mock.Anything, int64(101), int64(10)).Return(nil)

	// 3→10なので差分は+7
	invRepo.On("CreateAdjustment", mock.Anything, mock.MatchedBy(func(a model.InventoryAdjustment) bool {
		return a.ProductID == int64(101) && a.AdminUserID == int64(1) && a.Delta == int64(7) && a.Reason == "入荷"
	})).Return(nil)

	audit.On("Create", mock.Anything, mock.MatchedBy(func(l model.AuditLog) bool {
		return l.Action == model.AuditActionUpdateStock &&
			l.BeforeJSON == `{"quantity":3}` &&
			l.AfterJSON == `{"quantity":10}`
	})).Return(nil)

	err := uc.AdminSetStock(ctx, 1, 101, 10, "入荷")
	assert.NoError(t, err)

	productRepo.AssertExpectations(t)
	invRepo.AssertExpectations(t)
	audit.AssertExpectations(t)
}
