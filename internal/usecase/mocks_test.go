package usecase

import (
	"context"

	"estatelink/internal/data/entity"
	"estatelink/pkg/database"
)

// mockUserRepo implements repository.UserRepository with per-test func
// fields. Unset methods return zero values.
type mockUserRepo struct {
	createFn     func(user *entity.User) (*entity.User, error)
	existsFn     func(username, email string) (bool, error)
	findActiveFn func(username string) (*entity.User, error)
	findByIDFn   func(id string) (*entity.User, error)
	findAllFn    func(accountType entity.AccountType, excludeUsername string) ([]*entity.User, error)
	updateFn     func(id string, fields []database.Field) (*entity.User, error)
	setActiveFn  func(id string, active bool) (*entity.User, error)
	deleteFn     func(id string) (bool, error)
	hasAdminFn   func() (bool, error)

	createCalls []entity.User
	touchedIDs  []string
}

func (m *mockUserRepo) Create(_ context.Context, user *entity.User) (*entity.User, error) {
	m.createCalls = append(m.createCalls, *user)
	if m.createFn != nil {
		return m.createFn(user)
	}
	return user, nil
}

func (m *mockUserRepo) ExistsByUsernameOrEmail(_ context.Context, username, email string) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(username, email)
	}
	return false, nil
}

func (m *mockUserRepo) FindActiveByUsername(_ context.Context, username string) (*entity.User, error) {
	if m.findActiveFn != nil {
		return m.findActiveFn(username)
	}
	return nil, nil
}

func (m *mockUserRepo) FindByID(_ context.Context, id string) (*entity.User, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(id)
	}
	return nil, nil
}

func (m *mockUserRepo) FindAll(_ context.Context, accountType entity.AccountType, excludeUsername string) ([]*entity.User, error) {
	if m.findAllFn != nil {
		return m.findAllFn(accountType, excludeUsername)
	}
	return nil, nil
}

func (m *mockUserRepo) UpdateFields(_ context.Context, id string, fields []database.Field) (*entity.User, error) {
	if m.updateFn != nil {
		return m.updateFn(id, fields)
	}
	return nil, nil
}

func (m *mockUserRepo) SetActive(_ context.Context, id string, active bool) (*entity.User, error) {
	if m.setActiveFn != nil {
		return m.setActiveFn(id, active)
	}
	return nil, nil
}

func (m *mockUserRepo) Delete(_ context.Context, id string) (bool, error) {
	if m.deleteFn != nil {
		return m.deleteFn(id)
	}
	return false, nil
}

func (m *mockUserRepo) TouchLastLogin(_ context.Context, id string) error {
	m.touchedIDs = append(m.touchedIDs, id)
	return nil
}

func (m *mockUserRepo) HasAdmin(_ context.Context) (bool, error) {
	if m.hasAdminFn != nil {
		return m.hasAdminFn()
	}
	return false, nil
}

// mockPropertyRepo implements repository.PropertyRepository the same way.
type mockPropertyRepo struct {
	createFn        func(p *entity.Property) (*entity.Property, error)
	findAllFn       func(landlordID string, status entity.PropertyStatus) ([]*entity.PropertyWithOwner, error)
	findByIDFn      func(id int64) (*entity.PropertyWithOwner, error)
	statusByIDFn    func(id int64) (entity.PropertyStatus, bool, error)
	updateFieldsFn  func(id int64, fields []database.Field) (*entity.Property, error)
	updatePaymentFn func(id int64, fields []database.Field) (*entity.Property, error)
	setStatusFn     func(id int64, status entity.PropertyStatus) (*entity.Property, error)
	deleteFn        func(id int64) (bool, error)

	deletedIDs []int64
}

func (m *mockPropertyRepo) Create(_ context.Context, p *entity.Property) (*entity.Property, error) {
	if m.createFn != nil {
		return m.createFn(p)
	}
	return p, nil
}

func (m *mockPropertyRepo) FindAll(_ context.Context, landlordID string, status entity.PropertyStatus) ([]*entity.PropertyWithOwner, error) {
	if m.findAllFn != nil {
		return m.findAllFn(landlordID, status)
	}
	return nil, nil
}

func (m *mockPropertyRepo) FindByID(_ context.Context, id int64) (*entity.PropertyWithOwner, error) {
	if m.findByIDFn != nil {
		return m.findByIDFn(id)
	}
	return nil, nil
}

func (m *mockPropertyRepo) StatusByID(_ context.Context, id int64) (entity.PropertyStatus, bool, error) {
	if m.statusByIDFn != nil {
		return m.statusByIDFn(id)
	}
	return "", false, nil
}

func (m *mockPropertyRepo) UpdateFields(_ context.Context, id int64, fields []database.Field) (*entity.Property, error) {
	if m.updateFieldsFn != nil {
		return m.updateFieldsFn(id, fields)
	}
	return nil, nil
}

func (m *mockPropertyRepo) UpdatePayment(_ context.Context, id int64, fields []database.Field) (*entity.Property, error) {
	if m.updatePaymentFn != nil {
		return m.updatePaymentFn(id, fields)
	}
	return nil, nil
}

func (m *mockPropertyRepo) SetStatus(_ context.Context, id int64, status entity.PropertyStatus) (*entity.Property, error) {
	if m.setStatusFn != nil {
		return m.setStatusFn(id, status)
	}
	return nil, nil
}

func (m *mockPropertyRepo) Delete(_ context.Context, id int64) (bool, error) {
	m.deletedIDs = append(m.deletedIDs, id)
	if m.deleteFn != nil {
		return m.deleteFn(id)
	}
	return true, nil
}
