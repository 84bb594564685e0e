package validator_test

import (
	"context"
	"testing"

	"sweetshop/internal/domain/model"
	"sweetshop/internal/usecase"
	"sweetshop/internal/validator"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// UserRepository モック（validator専用：名前衝突回避）
// =====================

type ValUserRepoMock struct{ mock.Mock }

func (m *ValUserRepoMock) Create(ctx context.Context, user *model.User) error {
	panic("not used in validator tests")
}

func (m *ValUserRepoMock) FindByID(ctx context.Context, userID int64) (*model.User, error) {
	panic("not used in validator tests")
}

func (m *ValUserRepoMock) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	args := m.Called(ctx, email)
	u, _ := args.Get(0).(*model.User)
	return u, args.Error(1)
}

func (m *ValUserRepoMock) MarkEmailVerified(ctx context.Context, userID int64) error {
	panic("not used in validator tests")
}

func (m *ValUserRepoMock) FindByIDs(ctx context.Context, userIDs []int64) (map[int64]model.User, error) {
	panic("not used in validator tests")
}

// =====================
// ValidateRegister
// =====================

func TestAuthValidator_ValidateRegister_MissingFields(t *testing.T) {
	users := new(ValUserRepoMock)
	v := validator.NewAuthValidator(users)

	err := v.ValidateRegister(context.Background(), "", "hanako@example.com", "password123")
	assert.ErrorIs(t, err, usecase.ErrValidation)
}

func TestAuthValidator_ValidateRegister_BadEmail(t *testing.T) {
	users := new(ValUserRepoMock)
	v := validator.NewAuthValidator(users)

	err := v.ValidateRegister(context.Background(), "hanako", "not-an-email", "password123")
	assert.ErrorIs(t, err, usecase.ErrValidation)
}

func TestAuthValidator_ValidateRegister_ShortPassword(t *testing.T) {
	users := new(ValUserRepoMock)
	v := validator.NewAuthValidator(users)

	err := v.ValidateRegister(context.Background(), "hanako", "hanako@example.com", "short")
	assert.ErrorIs(t, err, usecase.ErrValidation)
}

func TestAuthValidator_ValidateRegister_DuplicateEmail(t *testing.T) {
	users := new(ValUserRepoMock)
	v := validator.NewAuthValidator(users)

	users.On("FindByEmail", mock.Anything, "hanako@example.com").Return(&model.User{ID: 7}, nil)

	err := v.ValidateRegister(context.Background(), "hanako", "hanako@example.com", "password123")
	assert.ErrorIs(t, err, usecase.ErrConflict)
}

func TestAuthValidator_ValidateRegister_OK(t *testing.T) {
	users := new(ValUserRepoMock)
	v := validator.NewAuthValidator(users)

	users.On("FindByEmail", mock.Anything, "hanako@example.com").Return(nil, nil)

	err := v.ValidateRegister(context.Background(), "hanako", "hanako@example.com", "password123")
	assert.NoError(t, err)
}

// =====================
// ValidateLogin / ValidateRefresh
// =====================

func TestAuthValidator_ValidateLogin_MissingFields(t *testing.T) {
	users := new(ValUserRepoMock)
	v := validator.NewAuthValidator(users)

	err := v.ValidateLogin(context.Background(), "", "password123")
	assert.ErrorIs(t, err, usecase.ErrValidation)
}

func TestAuthValidator_ValidateLogin_OK(t *testing.T) {
	users := new(ValUserRepoMock)
	v := validator.NewAuthValidator(users)

	err := v.ValidateLogin(context.Background(), "hanako@example.com", "password123")
	assert.NoError(t, err)
}

func TestAuthValidator_ValidateRefresh_Empty(t *testing.T) {
	users := new(ValUserRepoMock)
	v := validator.NewAuthValidator(users)

	err := v.ValidateRefresh(context.Background(), "  ", "ua")
	assert.ErrorIs(t, err, usecase.ErrValidation)
}
