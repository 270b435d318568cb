package usecase

import (
	"context"
	"fmt"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/internal/data/repository"
	"hotel-booking/internal/dto/request"
	"hotel-booking/internal/dto/response"
	"hotel-booking/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type HotelService interface {
	GetHotel(ctx context.Context, hotelID uuid.UUID) (*response.HotelResponse, error)
	ListHotels(ctx context.Context, city string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.HotelResponse], error)
	ListActiveHotels(ctx context.Context) ([]response.HotelResponse, error)

	// Admin endpoints
	CreateHotel(ctx context.Context, req *request.CreateHotelRequest) (*response.HotelResponse, error)
	UpdateHotel(ctx context.Context, hotelID uuid.UUID, req *request.UpdateHotelRequest) (*response.HotelResponse, error)
	DeleteHotel(ctx context.Context, hotelID uuid.UUID) error
}

type hotelService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewHotelService(repo *repository.Repository, log *zap.Logger) HotelService {
	return &hotelService{
		repo: repo,
		log:  log.With(zap.String("service", "hotel")),
	}
}

func (s *hotelService) GetHotel(ctx context.Context, hotelID uuid.UUID) (*response.HotelResponse, error) {
	hotel, err := s.repo.Hotel.FindByID(ctx, hotelID)
	if err != nil {
		return nil, fmt.Errorf("find hotel: %w", err)
	}
	if hotel == nil {
		return nil, fmt.Errorf("%w: hotel %s", ErrNotFound, hotelID)
	}

	resp := response.HotelToResponse(hotel)
	return &resp, nil
}

func (s *hotelService) ListHotels(ctx context.Context, city string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.HotelResponse], error) {
	var (
		hotels []*entity.Hotel
		total  int64
		err    error
	)

	if city != "" {
		hotels, err = s.repo.Hotel.FindByCity(ctx, city, req.Limit(), req.Offset())
		if err != nil {
			return nil, fmt.Errorf("list hotels by city: %w", err)
		}
		total, err = s.repo.Hotel.CountByCity(ctx, city)
	} else {
		hotels, err = s.repo.Hotel.FindAll(ctx, req.Limit(), req.Offset())
		if err != nil {
			return nil, fmt.Errorf("list hotels: %w", err)
		}
		total, err = s.repo.Hotel.CountAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("count hotels: %w", err)
	}

	items := make([]response.HotelResponse, len(hotels))
	for i, hotel := range hotels {
		items[i] = response.HotelToResponse(hotel)
	}

	return response.NewPaginatedResponse(items, req.Page, req.Limit(), total), nil
}

func (s *hotelService) ListActiveHotels(ctx context.Context) ([]response.HotelResponse, error) {
	hotels, err := s.repo.Hotel.FindAllActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("list active hotels: %w", err)
	}

	items := make([]response.HotelResponse, len(hotels))
	for i, hotel := range hotels {
		items[i] = response.HotelToResponse(hotel)
	}
	return items, nil
}

func (s *hotelService) CreateHotel(ctx context.Context, req *request.CreateHotelRequest) (*response.HotelResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create hotel validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrInvalidArgument, utils.FormatValidationErrors(errs))
	}

	hotel := &entity.Hotel{
		Name:         req.Name,
		Description:  req.Description,
		Address:      req.Address,
		City:         req.City,
		Country:      req.Country,
		PostalCode:   req.PostalCode,
		StarRating:   req.StarRating,
		Amenities:    req.Amenities,
		CheckInTime:  req.CheckInTime,
		CheckOutTime: req.CheckOutTime,
		Status:       entity.HotelStatusActive,
	}
	hotel.ID = utils.GenerateUUID()
	now := time.Now()
	hotel.CreatedAt = now
	hotel.UpdatedAt = now

	if err := s.repo.Hotel.Create(ctx, hotel); err != nil {
		return nil, fmt.Errorf("create hotel: %w", err)
	}

	s.log.Info("Hotel created", zap.String("hotel_id", hotel.ID.String()), zap.String("name", hotel.Name))

	resp := response.HotelToResponse(hotel)
	return &resp, nil
}

func (s *hotelService) UpdateHotel(ctx context.Context, hotelID uuid.UUID, req *request.UpdateHotelRequest) (*response.HotelResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidArgument, utils.FormatValidationErrors(errs))
	}

	hotel, err := s.repo.Hotel.FindByID(ctx, hotelID)
	if err != nil {
		return nil, fmt.Errorf("find hotel: %w", err)
	}
	if hotel == nil {
		return nil, fmt.Errorf("%w: hotel %s", ErrNotFound, hotelID)
	}

	if req.Name != nil {
		hotel.Name = *req.Name
	}
	if req.Description != nil {
		hotel.Description = req.Description
	}
	if req.Address != nil {
		hotel.Address = *req.Address
	}
	if req.City != nil {
		hotel.City = *req.City
	}
	if req.Country != nil {
		hotel.Country = *req.Country
	}
	if req.PostalCode != nil {
		hotel.PostalCode = req.PostalCode
	}
	if req.StarRating != nil {
		hotel.StarRating = req.StarRating
	}
	if req.Amenities != nil {
		hotel.Amenities = req.Amenities
	}
	if req.CheckInTime != nil {
		hotel.CheckInTime = *req.CheckInTime
	}
	if req.CheckOutTime != nil {
		hotel.CheckOutTime = *req.CheckOutTime
	}
	if req.Status != nil {
		hotel.Status = entity.HotelStatus(*req.Status)
	}

	hotel.UpdatedAt = time.Now()
	if err := s.repo.Hotel.Update(ctx, hotel); err != nil {
		return nil, fmt.Errorf("update hotel: %w", err)
	}

	resp := response.HotelToResponse(hotel)
	return &resp, nil
}

func (s *hotelService) DeleteHotel(ctx context.Context, hotelID uuid.UUID) error {
	hotel, err := s.repo.Hotel.FindByID(ctx, hotelID)
	if err != nil {
		return fmt.Errorf("find hotel: %w", err)
	}
	if hotel == nil {
		return fmt.Errorf("%w: hotel %s", ErrNotFound, hotelID)
	}

	if err := s.repo.Hotel.Delete(ctx, hotelID); err != nil {
		return fmt.Errorf("delete hotel: %w", err)
	}

	s.log.Info("Hotel deleted", zap.String("hotel_id", hotelID.String()))
	return nil
}
