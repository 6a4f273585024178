package adaptor

import (
	"net/http"

	"estatelink/internal/usecase"
	"estatelink/pkg/apperr"
	"estatelink/pkg/database"
	"estatelink/pkg/utils"

	"go.uber.org/zap"
)

type Handler struct {
	Auth     *AuthHandler
	User     *UserHandler
	Property *PropertyHandler
	System   *SystemHandler
}

func NewHandler(service *usecase.Service, db database.PgxIface, config *utils.Config, log *zap.Logger) *Handler {
	return &Handler{
		Auth:     NewAuthHandler(service.Auth, config.App.Debug, log),
		User:     NewUserHandler(service.User, config.App.Debug, log),
		Property: NewPropertyHandler(service.Property, config.App.Debug, log),
		System:   NewSystemHandler(db, config, log),
	}
}

// writeServiceError maps the error taxonomy onto HTTP statuses. Raw error
// detail is echoed only in debug mode; production responses carry the
// user-facing message alone.
func writeServiceError(w http.ResponseWriter, log *zap.Logger, err error, operation string, debug bool) {
	message := apperr.Message(err)

	var detail any
	if debug {
		detail = err.Error()
	}

	switch apperr.KindOf(err) {
	case apperr.KindValidation, apperr.KindDuplicate, apperr.KindNotPending, apperr.KindNoFieldsToUpdate:
		log.Warn(operation+" rejected", zap.Error(err))
		utils.ResponseBadRequest(w, message, detail)

	case apperr.KindInvalidCredentials:
		log.Warn(operation+" failed - invalid credentials")
		utils.ResponseUnauthorized(w, message)

	case apperr.KindNotFound:
		log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, message)

	default:
		log.Error("Failed to "+operation, zap.Error(err))
		utils.ResponseInternalError(w, message, detail)
	}
}
