package usecase

import (
	"context"
	"strings"

	"estatelink/internal/data/entity"
	"estatelink/internal/data/repository"
	"estatelink/internal/dto/request"
	"estatelink/internal/dto/response"
	"estatelink/pkg/apperr"
	"estatelink/pkg/database"
	"estatelink/pkg/utils"

	"go.uber.org/zap"
)

// displayAccountTypes maps the role names the frontend sends to the
// stored values. Council officials are stored as admin accounts.
var displayAccountTypes = map[string]entity.AccountType{
	"Landlords":         entity.AccountLandlord,
	"Tenants/Buyers":    entity.AccountTenant,
	"Technicians":       entity.AccountTechnician,
	"Council Officials": entity.AccountAdmin,
}

// councilView is the display filter whose listing hides the seeded
// administrator account.
const councilView = "Council Officials"

type UserService interface {
	List(ctx context.Context, accountType string) ([]*response.UserResponse, error)
	Update(ctx context.Context, id string, req *request.UpdateUserRequest) (*response.UserResponse, error)
	SetStatus(ctx context.Context, id string, req *request.UserStatusRequest) (*response.UserResponse, bool, error)
	Delete(ctx context.Context, id string) error
}

type userService struct {
	users         repository.UserRepository
	adminUsername string
	log           *zap.Logger
}

func NewUserService(users repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		users:         users,
		adminUsername: "default_admin",
		log:           log,
	}
}

func (s *userService) List(ctx context.Context, accountType string) ([]*response.UserResponse, error) {
	var filter entity.AccountType
	var exclude string

	// Frontends have been seen sending the literal strings "undefined"
	// and "null"; treat them as no filter.
	if accountType != "" && accountType != "undefined" && accountType != "null" {
		mapped, ok := displayAccountTypes[accountType]
		if !ok {
			mapped = entity.AccountType(strings.ToLower(accountType))
		}
		s.log.Debug("Mapped account type filter",
			zap.String("requested", accountType),
			zap.String("stored", string(mapped)),
		)
		filter = mapped

		if accountType == councilView {
			exclude = s.adminUsername
		}
	}

	users, err := s.users.FindAll(ctx, filter, exclude)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindStore, "Failed to get users", err)
	}

	result := make([]*response.UserResponse, 0, len(users))
	for _, u := range users {
		result = append(result, convertUserResponse(u))
	}
	return result, nil
}

func (s *userService) Update(ctx context.Context, id string, req *request.UpdateUserRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Newf(apperr.KindValidation, "Validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// Only supplied fields are applied, in this fixed order.
	var fields []database.Field
	if req.FullName != nil {
		fields = append(fields, database.Field{Column: "fullName", Value: *req.FullName})
	}
	if req.Email != nil {
		fields = append(fields, database.Field{Column: "email", Value: *req.Email})
	}
	if req.PhoneNumber != nil {
		fields = append(fields, database.Field{Column: "phoneNumber", Value: *req.PhoneNumber})
	}
	if req.AccountType != nil {
		fields = append(fields, database.Field{Column: "accountType", Value: *req.AccountType})
	}

	user, err := s.users.UpdateFields(ctx, id, fields)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNoFieldsToUpdate {
			return nil, err
		}
		if repository.IsUniqueViolation(err) {
			return nil, apperr.New(apperr.KindDuplicate, "Username or email already exists")
		}
		return nil, apperr.Wrap(apperr.KindStore, "Failed to update user", err)
	}
	if user == nil {
		return nil, apperr.New(apperr.KindNotFound, "User not found")
	}

	s.log.Info("User updated", zap.String("user_id", id))
	return convertUserResponse(user), nil
}

// SetStatus toggles suspension. The bool result reports the new state for
// the response message. IsActive must be a strict JSON boolean.
func (s *userService) SetStatus(ctx context.Context, id string, req *request.UserStatusRequest) (*response.UserResponse, bool, error) {
	active, ok := req.IsActive.(bool)
	if !ok {
		return nil, false, apperr.New(apperr.KindValidation, "isActive must be a boolean value")
	}

	user, err := s.users.SetActive(ctx, id, active)
	if err != nil {
		return nil, false, apperr.Wrap(apperr.KindStore, "Failed to update user status", err)
	}
	if user == nil {
		return nil, false, apperr.New(apperr.KindNotFound, "User not found")
	}

	s.log.Info("User status changed",
		zap.String("user_id", id),
		zap.Bool("active", active),
	)
	return convertUserResponse(user), active, nil
}

func (s *userService) Delete(ctx context.Context, id string) error {
	deleted, err := s.users.Delete(ctx, id)
	if err != nil {
		return apperr.Wrap(apperr.KindStore, "Failed to delete user", err)
	}
	if !deleted {
		return apperr.New(apperr.KindNotFound, "User not found")
	}
	return nil
}
