package usecase

import (
	"context"

	"estatelink/internal/data/entity"
	"estatelink/internal/data/repository"
	"estatelink/internal/dto/request"
	"estatelink/internal/dto/response"
	"estatelink/pkg/apperr"
	"estatelink/pkg/database"
	"estatelink/pkg/utils"

	"go.uber.org/zap"
)

type PropertyService interface {
	Create(ctx context.Context, req *request.CreatePropertyRequest) (*response.PropertyResponse, error)
	List(ctx context.Context, landlordID, status string) ([]*response.PropertyWithOwnerResponse, error)
	Get(ctx context.Context, id int64) (*response.PropertyWithOwnerResponse, error)
	Update(ctx context.Context, id int64, req *request.UpdatePropertyRequest) (*response.PropertyResponse, error)
	Delete(ctx context.Context, id int64) error
	ForwardToCouncil(ctx context.Context, id int64) (*response.PropertyResponse, error)
	UpdatePayment(ctx context.Context, id int64, req *request.PaymentRequest) (*response.PropertyResponse, error)
}

type propertyService struct {
	properties repository.PropertyRepository
	log        *zap.Logger
}

func NewPropertyService(properties repository.PropertyRepository, log *zap.Logger) PropertyService {
	return &propertyService{
		properties: properties,
		log:        log,
	}
}

func (s *propertyService) Create(ctx context.Context, req *request.CreatePropertyRequest) (*response.PropertyResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Property create validation failed", zap.Any("errors", errs))
		return nil, apperr.New(apperr.KindValidation, "Landlord ID, title, location, and price are required")
	}

	property := &entity.Property{
		LandlordID:           req.LandlordID,
		Title:                req.Title,
		Description:          req.Description,
		Location:             req.Location,
		Price:                req.Price,
		PropertyType:         req.PropertyType,
		Bedrooms:             req.Bedrooms,
		Bathrooms:            req.Bathrooms,
		Area:                 req.Area,
		Picture:              req.Picture,
		Video:                req.Video,
		VerificationDocument: req.VerificationDocument,
	}

	created, err := s.properties.Create(ctx, property)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindStore, "Property creation failed", err)
	}

	s.log.Info("Property created",
		zap.Int64("property_id", created.ID),
		zap.String("landlord_id", created.LandlordID),
	)
	return convertPropertyResponse(created), nil
}

func (s *propertyService) List(ctx context.Context, landlordID, status string) ([]*response.PropertyWithOwnerResponse, error) {
	properties, err := s.properties.FindAll(ctx, landlordID, entity.PropertyStatus(status))
	if err != nil {
		return nil, apperr.Wrap(apperr.KindStore, "Failed to get properties", err)
	}

	result := make([]*response.PropertyWithOwnerResponse, 0, len(properties))
	for _, p := range properties {
		result = append(result, convertPropertyWithOwnerResponse(p))
	}
	return result, nil
}

func (s *propertyService) Get(ctx context.Context, id int64) (*response.PropertyWithOwnerResponse, error) {
	property, err := s.properties.FindByID(ctx, id)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindStore, "Failed to get property", err)
	}
	if property == nil {
		return nil, apperr.New(apperr.KindNotFound, "Property not found")
	}

	return convertPropertyWithOwnerResponse(property), nil
}

func (s *propertyService) Update(ctx context.Context, id int64, req *request.UpdatePropertyRequest) (*response.PropertyResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Newf(apperr.KindValidation, "Validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// Only supplied fields are applied, in this fixed order.
	var fields []database.Field
	if req.Title != nil {
		fields = append(fields, database.Field{Column: "title", Value: *req.Title})
	}
	if req.Description != nil {
		fields = append(fields, database.Field{Column: "description", Value: *req.Description})
	}
	if req.Location != nil {
		fields = append(fields, database.Field{Column: "location", Value: *req.Location})
	}
	if req.Price != nil {
		fields = append(fields, database.Field{Column: "price", Value: *req.Price})
	}
	if req.PropertyType != nil {
		fields = append(fields, database.Field{Column: "propertyType", Value: *req.PropertyType})
	}
	if req.Bedrooms != nil {
		fields = append(fields, database.Field{Column: "bedrooms", Value: *req.Bedrooms})
	}
	if req.Bathrooms != nil {
		fields = append(fields, database.Field{Column: "bathrooms", Value: *req.Bathrooms})
	}
	if req.Area != nil {
		fields = append(fields, database.Field{Column: "area", Value: *req.Area})
	}
	if req.Picture != nil {
		fields = append(fields, database.Field{Column: "picture", Value: *req.Picture})
	}
	if req.Video != nil {
		fields = append(fields, database.Field{Column: "video", Value: *req.Video})
	}
	if req.VerificationDocument != nil {
		fields = append(fields, database.Field{Column: "verificationDocument", Value: *req.VerificationDocument})
	}

	property, err := s.properties.UpdateFields(ctx, id, fields)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNoFieldsToUpdate {
			return nil, err
		}
		return nil, apperr.Wrap(apperr.KindStore, "Failed to update property", err)
	}
	if property == nil {
		return nil, apperr.New(apperr.KindNotFound, "Property not found")
	}

	s.log.Info("Property updated", zap.Int64("property_id", id))
	return convertPropertyResponse(property), nil
}

// Delete removes a listing permanently, allowed only while its workflow
// status is still pending.
func (s *propertyService) Delete(ctx context.Context, id int64) error {
	status, found, err := s.properties.StatusByID(ctx, id)
	if err != nil {
		return apperr.Wrap(apperr.KindStore, "Failed to delete property", err)
	}
	if !found {
		return apperr.New(apperr.KindNotFound, "Property not found")
	}
	if status != entity.StatusPending {
		return apperr.New(apperr.KindNotPending, "Cannot delete property that is not pending")
	}

	deleted, err := s.properties.Delete(ctx, id)
	if err != nil {
		return apperr.Wrap(apperr.KindStore, "Failed to delete property", err)
	}
	if !deleted {
		return apperr.New(apperr.KindNotFound, "Property not found")
	}
	return nil
}

func (s *propertyService) ForwardToCouncil(ctx context.Context, id int64) (*response.PropertyResponse, error) {
	property, err := s.properties.SetStatus(ctx, id, entity.StatusForwardedToCouncil)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindStore, "Failed to forward property", err)
	}
	if property == nil {
		return nil, apperr.New(apperr.KindNotFound, "Property not found")
	}

	s.log.Info("Property forwarded to council", zap.Int64("property_id", id))
	return convertPropertyResponse(property), nil
}

func (s *propertyService) UpdatePayment(ctx context.Context, id int64, req *request.PaymentRequest) (*response.PropertyResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, apperr.Newf(apperr.KindValidation, "Validation failed: %s", utils.FormatValidationErrors(errs))
	}

	var fields []database.Field
	if req.PaymentStatus != nil {
		fields = append(fields, database.Field{Column: "paymentStatus", Value: *req.PaymentStatus})
	}
	if req.PaymentMethod != nil {
		fields = append(fields, database.Field{Column: "paymentMethod", Value: *req.PaymentMethod})
	}

	property, err := s.properties.UpdatePayment(ctx, id, fields)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindNoFieldsToUpdate {
			return nil, apperr.New(apperr.KindNoFieldsToUpdate, "No payment fields to update")
		}
		return nil, apperr.Wrap(apperr.KindStore, "Failed to update payment status", err)
	}
	if property == nil {
		return nil, apperr.New(apperr.KindNotFound, "Property not found")
	}

	s.log.Info("Payment status updated", zap.Int64("property_id", id))
	return convertPropertyResponse(property), nil
}

func convertPropertyResponse(p *entity.Property) *response.PropertyResponse {
	return &response.PropertyResponse{
		ID:                   p.ID,
		LandlordID:           p.LandlordID,
		Title:                p.Title,
		Description:          p.Description,
		Location:             p.Location,
		Price:                p.Price,
		PropertyType:         p.PropertyType,
		Bedrooms:             p.Bedrooms,
		Bathrooms:            p.Bathrooms,
		Area:                 p.Area,
		Picture:              p.Picture,
		Video:                p.Video,
		VerificationDocument: p.VerificationDocument,
		Status:               string(p.Status),
		PaymentStatus:        string(p.PaymentStatus),
		PaymentMethod:        p.PaymentMethod,
		CreatedAt:            p.CreatedAt,
		UpdatedAt:            p.UpdatedAt,
	}
}

func convertPropertyWithOwnerResponse(p *entity.PropertyWithOwner) *response.PropertyWithOwnerResponse {
	return &response.PropertyWithOwnerResponse{
		PropertyResponse: *convertPropertyResponse(&p.Property),
		Username:         p.OwnerUsername,
		FullName:         p.OwnerFullName,
		Email:            p.OwnerEmail,
	}
}
