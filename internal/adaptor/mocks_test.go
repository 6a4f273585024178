package adaptor

import (
	"context"

	"estatelink/internal/dto/request"
	"estatelink/internal/dto/response"
)

type mockAuthService struct {
	registerFn func(req *request.RegisterRequest) (*response.UserResponse, error)
	loginFn    func(req *request.LoginRequest) (*response.LoginResponse, error)
	profileFn  func(userID string) (*response.UserResponse, error)
}

func (m *mockAuthService) Register(_ context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
	return m.registerFn(req)
}

func (m *mockAuthService) Login(_ context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	return m.loginFn(req)
}

func (m *mockAuthService) Profile(_ context.Context, userID string) (*response.UserResponse, error) {
	return m.profileFn(userID)
}

func (m *mockAuthService) EnsureDefaultAdmin(context.Context) error { return nil }

type mockPropertyService struct {
	createFn        func(req *request.CreatePropertyRequest) (*response.PropertyResponse, error)
	listFn          func(landlordID, status string) ([]*response.PropertyWithOwnerResponse, error)
	getFn           func(id int64) (*response.PropertyWithOwnerResponse, error)
	updateFn        func(id int64, req *request.UpdatePropertyRequest) (*response.PropertyResponse, error)
	deleteFn        func(id int64) error
	forwardFn       func(id int64) (*response.PropertyResponse, error)
	updatePaymentFn func(id int64, req *request.PaymentRequest) (*response.PropertyResponse, error)
}

func (m *mockPropertyService) Create(_ context.Context, req *request.CreatePropertyRequest) (*response.PropertyResponse, error) {
	return m.createFn(req)
}

func (m *mockPropertyService) List(_ context.Context, landlordID, status string) ([]*response.PropertyWithOwnerResponse, error) {
	return m.listFn(landlordID, status)
}

func (m *mockPropertyService) Get(_ context.Context, id int64) (*response.PropertyWithOwnerResponse, error) {
	return m.getFn(id)
}

func (m *mockPropertyService) Update(_ context.Context, id int64, req *request.UpdatePropertyRequest) (*response.PropertyResponse, error) {
	return m.updateFn(id, req)
}

func (m *mockPropertyService) Delete(_ context.Context, id int64) error {
	return m.deleteFn(id)
}

func (m *mockPropertyService) ForwardToCouncil(_ context.Context, id int64) (*response.PropertyResponse, error) {
	return m.forwardFn(id)
}

func (m *mockPropertyService) UpdatePayment(_ context.Context, id int64, req *request.PaymentRequest) (*response.PropertyResponse, error) {
	return m.updatePaymentFn(id, req)
}
