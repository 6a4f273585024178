package usecase

import (
	"estatelink/internal/data/repository"
	"estatelink/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth     AuthService
	User     UserService
	Property PropertyService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:     NewAuthService(repo.User, config, log),
		User:     NewUserService(repo.User, log),
		Property: NewPropertyService(repo.Property, log),
	}
}
