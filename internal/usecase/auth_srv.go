package usecase

import (
	"context"

	"estatelink/internal/data/entity"
	"estatelink/internal/data/repository"
	"estatelink/internal/dto/request"
	"estatelink/internal/dto/response"
	"estatelink/pkg/apperr"
	"estatelink/pkg/utils"

	"go.uber.org/zap"
)

// invalidCredentials is shared by the unknown-username and wrong-password
// paths so the response never reveals which check failed.
var invalidCredentials = apperr.New(apperr.KindInvalidCredentials, "Invalid username or password")

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)
	Profile(ctx context.Context, userID string) (*response.UserResponse, error)
	EnsureDefaultAdmin(ctx context.Context) error
}

type authService struct {
	users  repository.UserRepository
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(users repository.UserRepository, config *utils.Config, log *zap.Logger) AuthService {
	return &authService{
		users:  users,
		config: config,
		log:    log,
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, apperr.Newf(apperr.KindValidation, "Validation failed: %s", utils.FormatValidationErrors(errs))
	}

	exists, err := s.users.ExistsByUsernameOrEmail(ctx, req.Username, req.Email)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindStore, "Registration failed", err)
	}
	if exists {
		return nil, apperr.New(apperr.KindDuplicate, "Username or email already exists")
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, apperr.Wrap(apperr.KindStore, "Registration failed", err)
	}

	accountType := entity.AccountType(req.AccountType)
	if accountType == "" {
		accountType = entity.AccountTenant
	}

	user := &entity.User{
		Username:     req.Username,
		FullName:     req.FullName,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		AccountType:  accountType,
		PasswordHash: hashedPassword,
	}

	created, err := s.users.Create(ctx, user)
	if err != nil {
		// The existence check above is not atomic with the insert; a
		// racing registration can still trip the unique index and must
		// read as the same duplicate error.
		if repository.IsUniqueViolation(err) {
			return nil, apperr.New(apperr.KindDuplicate, "Username or email already exists")
		}
		return nil, apperr.Wrap(apperr.KindStore, "Registration failed", err)
	}

	s.log.Info("User registered",
		zap.String("user_id", created.ID),
		zap.String("username", created.Username),
		zap.String("account_type", string(created.AccountType)),
	)

	return convertUserResponse(created), nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.New(apperr.KindValidation, "Username and password are required")
	}

	user, err := s.users.FindActiveByUsername(ctx, req.Username)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindStore, "Login failed", err)
	}
	if user == nil {
		s.log.Warn("Login for unknown or inactive username", zap.String("username", req.Username))
		return nil, invalidCredentials
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Login with wrong password", zap.String("user_id", user.ID))
		return nil, invalidCredentials
	}

	if err := s.users.TouchLastLogin(ctx, user.ID); err != nil {
		return nil, apperr.Wrap(apperr.KindStore, "Login failed", err)
	}

	s.log.Info("User logged in",
		zap.String("user_id", user.ID),
		zap.String("username", user.Username),
	)

	// The response carries the lastLogin read before the touch, i.e. the
	// previous login time.
	return &response.LoginResponse{
		ID:          user.ID,
		Username:    user.Username,
		FullName:    user.FullName,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		AccountType: string(user.AccountType),
		LastLogin:   user.LastLogin,
	}, nil
}

func (s *authService) Profile(ctx context.Context, userID string) (*response.UserResponse, error) {
	if userID == "" {
		return nil, apperr.New(apperr.KindValidation, "User ID is required")
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindStore, "Failed to get profile", err)
	}
	if user == nil {
		return nil, apperr.New(apperr.KindNotFound, "User not found")
	}

	return convertUserResponse(user), nil
}

// EnsureDefaultAdmin seeds one administrator account when none exists.
// Runs at startup after the schema bootstrap.
func (s *authService) EnsureDefaultAdmin(ctx context.Context) error {
	hasAdmin, err := s.users.HasAdmin(ctx)
	if err != nil {
		return err
	}
	if hasAdmin {
		s.log.Info("Admin account already exists")
		return nil
	}

	hashedPassword, err := utils.HashPassword(s.config.Admin.Password)
	if err != nil {
		return err
	}

	admin := &entity.User{
		Username:     s.config.Admin.Username,
		FullName:     s.config.Admin.FullName,
		Email:        s.config.Admin.Email,
		PhoneNumber:  s.config.Admin.PhoneNumber,
		AccountType:  entity.AccountAdmin,
		PasswordHash: hashedPassword,
	}

	created, err := s.users.Create(ctx, admin)
	if err != nil {
		return err
	}

	s.log.Info("Admin account created",
		zap.String("user_id", created.ID),
		zap.String("username", created.Username),
	)
	return nil
}

func convertUserResponse(user *entity.User) *response.UserResponse {
	return &response.UserResponse{
		ID:          user.ID,
		Username:    user.Username,
		FullName:    user.FullName,
		Email:       user.Email,
		PhoneNumber: user.PhoneNumber,
		AccountType: string(user.AccountType),
		IsActive:    user.IsActive,
		LastLogin:   user.LastLogin,
		CreatedAt:   user.CreatedAt,
	}
}
