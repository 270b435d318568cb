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
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

type RoomService interface {
	GetRoom(ctx context.Context, roomID uuid.UUID) (*response.RoomResponse, error)
	ListRooms(ctx context.Context, hotelID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.RoomResponse], error)
	FindAvailableRooms(ctx context.Context, hotelID uuid.UUID, checkIn, checkOut time.Time) ([]response.RoomResponse, error)
	ListRoomTypes(ctx context.Context) ([]response.RoomTypeResponse, error)

	// Admin endpoints
	CreateRoom(ctx context.Context, req *request.CreateRoomRequest) (*response.RoomResponse, error)
	UpdateRoom(ctx context.Context, roomID uuid.UUID, req *request.UpdateRoomRequest) (*response.RoomResponse, error)
	DeleteRoom(ctx context.Context, roomID uuid.UUID) error
	CreateRoomType(ctx context.Context, req *request.CreateRoomTypeRequest) (*response.RoomTypeResponse, error)
}

type roomService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewRoomService(repo *repository.Repository, log *zap.Logger) RoomService {
	return &roomService{
		repo: repo,
		log:  log.With(zap.String("service", "room")),
	}
}

func (s *roomService) GetRoom(ctx context.Context, roomID uuid.UUID) (*response.RoomResponse, error) {
	room, err := s.repo.Room.FindByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("find room: %w", err)
	}
	if room == nil {
		return nil, fmt.Errorf("%w: room %s", ErrNotFound, roomID)
	}

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *roomService) ListRooms(ctx context.Context, hotelID uuid.UUID, req *request.PaginatedRequest) (*response.PaginatedResponse[response.RoomResponse], error) {
	hotel, err := s.repo.Hotel.FindByID(ctx, hotelID)
	if err != nil {
		return nil, fmt.Errorf("find hotel: %w", err)
	}
	if hotel == nil {
		return nil, fmt.Errorf("%w: hotel %s", ErrNotFound, hotelID)
	}

	rooms, err := s.repo.Room.FindByHotelID(ctx, hotelID, req.Limit(), req.Offset())
	if err != nil {
		return nil, fmt.Errorf("list rooms: %w", err)
	}

	total, err := s.repo.Room.CountByHotelID(ctx, hotelID)
	if err != nil {
		return nil, fmt.Errorf("count rooms: %w", err)
	}

	items := make([]response.RoomResponse, len(rooms))
	for i, room := range rooms {
		items[i] = response.RoomToResponse(room)
	}

	return response.NewPaginatedResponse(items, req.Page, req.Limit(), total), nil
}

func (s *roomService) FindAvailableRooms(ctx context.Context, hotelID uuid.UUID, checkIn, checkOut time.Time) ([]response.RoomResponse, error) {
	if !checkOut.After(checkIn) {
		return nil, fmt.Errorf("%w: check-out must be after check-in", ErrInvalidArgument)
	}

	hotel, err := s.repo.Hotel.FindByID(ctx, hotelID)
	if err != nil {
		return nil, fmt.Errorf("find hotel: %w", err)
	}
	if hotel == nil {
		return nil, fmt.Errorf("%w: hotel %s", ErrNotFound, hotelID)
	}

	rooms, err := s.repo.Room.FindAvailable(ctx, hotelID, checkIn, checkOut)
	if err != nil {
		return nil, fmt.Errorf("find available rooms: %w", err)
	}

	items := make([]response.RoomResponse, len(rooms))
	for i, room := range rooms {
		items[i] = response.RoomToResponse(room)
	}
	return items, nil
}

func (s *roomService) ListRoomTypes(ctx context.Context) ([]response.RoomTypeResponse, error) {
	roomTypes, err := s.repo.RoomType.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list room types: %w", err)
	}

	items := make([]response.RoomTypeResponse, len(roomTypes))
	for i, roomType := range roomTypes {
		items[i] = response.RoomTypeToResponse(roomType)
	}
	return items, nil
}

func (s *roomService) CreateRoom(ctx context.Context, req *request.CreateRoomRequest) (*response.RoomResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create room validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("%w: %s", ErrInvalidArgument, utils.FormatValidationErrors(errs))
	}

	hotelID, err := utils.ParseUUID(req.HotelID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid hotel id %s", ErrInvalidArgument, req.HotelID)
	}
	roomTypeID, err := utils.ParseUUID(req.RoomTypeID)
	if err != nil {
		return nil, fmt.Errorf("%w: invalid room type id %s", ErrInvalidArgument, req.RoomTypeID)
	}

	price, err := decimal.NewFromString(req.PricePerNight)
	if err != nil || price.IsNegative() {
		return nil, fmt.Errorf("%w: invalid price %s", ErrInvalidArgument, req.PricePerNight)
	}

	hotel, err := s.repo.Hotel.FindByID(ctx, hotelID)
	if err != nil {
		return nil, fmt.Errorf("find hotel: %w", err)
	}
	if hotel == nil {
		return nil, fmt.Errorf("%w: hotel %s", ErrNotFound, hotelID)
	}

	roomType, err := s.repo.RoomType.FindByID(ctx, roomTypeID)
	if err != nil {
		return nil, fmt.Errorf("find room type: %w", err)
	}
	if roomType == nil {
		return nil, fmt.Errorf("%w: room type %s", ErrNotFound, roomTypeID)
	}

	existing, err := s.repo.Room.FindByHotelAndRoomNumber(ctx, hotelID, req.RoomNumber)
	if err != nil {
		return nil, fmt.Errorf("check room number: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: room %s already exists in hotel", ErrConflict, req.RoomNumber)
	}

	room := &entity.Room{
		HotelID:       hotelID,
		RoomTypeID:    roomTypeID,
		RoomNumber:    req.RoomNumber,
		Floor:         req.Floor,
		Capacity:      req.Capacity,
		PricePerNight: price,
		Description:   req.Description,
		Status:        entity.RoomStatusAvailable,
	}
	room.ID = utils.GenerateUUID()
	now := time.Now()
	room.CreatedAt = now
	room.UpdatedAt = now

	if err := s.repo.Room.Create(ctx, room); err != nil {
		return nil, fmt.Errorf("create room: %w", err)
	}

	s.log.Info("Room created",
		zap.String("room_id", room.ID.String()),
		zap.String("hotel_id", hotelID.String()),
		zap.String("room_number", room.RoomNumber))

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *roomService) UpdateRoom(ctx context.Context, roomID uuid.UUID, req *request.UpdateRoomRequest) (*response.RoomResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidArgument, utils.FormatValidationErrors(errs))
	}

	room, err := s.repo.Room.FindByID(ctx, roomID)
	if err != nil {
		return nil, fmt.Errorf("find room: %w", err)
	}
	if room == nil {
		return nil, fmt.Errorf("%w: room %s", ErrNotFound, roomID)
	}

	if req.RoomTypeID != nil {
		roomTypeID, err := utils.ParseUUID(*req.RoomTypeID)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid room type id %s", ErrInvalidArgument, *req.RoomTypeID)
		}
		roomType, err := s.repo.RoomType.FindByID(ctx, roomTypeID)
		if err != nil {
			return nil, fmt.Errorf("find room type: %w", err)
		}
		if roomType == nil {
			return nil, fmt.Errorf("%w: room type %s", ErrNotFound, roomTypeID)
		}
		room.RoomTypeID = roomTypeID
	}
	if req.RoomNumber != nil && *req.RoomNumber != room.RoomNumber {
		existing, err := s.repo.Room.FindByHotelAndRoomNumber(ctx, room.HotelID, *req.RoomNumber)
		if err != nil {
			return nil, fmt.Errorf("check room number: %w", err)
		}
		if existing != nil {
			return nil, fmt.Errorf("%w: room %s already exists in hotel", ErrConflict, *req.RoomNumber)
		}
		room.RoomNumber = *req.RoomNumber
	}
	if req.Floor != nil {
		room.Floor = req.Floor
	}
	if req.Capacity != nil {
		room.Capacity = *req.Capacity
	}
	if req.PricePerNight != nil {
		price, err := decimal.NewFromString(*req.PricePerNight)
		if err != nil || price.IsNegative() {
			return nil, fmt.Errorf("%w: invalid price %s", ErrInvalidArgument, *req.PricePerNight)
		}
		room.PricePerNight = price
	}
	if req.Description != nil {
		room.Description = req.Description
	}
	if req.Status != nil {
		room.Status = entity.RoomStatus(*req.Status)
	}

	room.UpdatedAt = time.Now()
	if err := s.repo.Room.Update(ctx, room); err != nil {
		return nil, fmt.Errorf("update room: %w", err)
	}

	resp := response.RoomToResponse(room)
	return &resp, nil
}

func (s *roomService) DeleteRoom(ctx context.Context, roomID uuid.UUID) error {
	room, err := s.repo.Room.FindByID(ctx, roomID)
	if err != nil {
		return fmt.Errorf("find room: %w", err)
	}
	if room == nil {
		return fmt.Errorf("%w: room %s", ErrNotFound, roomID)
	}

	if err := s.repo.Room.Delete(ctx, roomID); err != nil {
		return fmt.Errorf("delete room: %w", err)
	}

	s.log.Info("Room deleted", zap.String("room_id", roomID.String()))
	return nil
}

func (s *roomService) CreateRoomType(ctx context.Context, req *request.CreateRoomTypeRequest) (*response.RoomTypeResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidArgument, utils.FormatValidationErrors(errs))
	}

	if req.MaxCapacity < req.BaseCapacity {
		return nil, fmt.Errorf("%w: max capacity below base capacity", ErrInvalidArgument)
	}

	basePrice, err := decimal.NewFromString(req.BasePrice)
	if err != nil || basePrice.IsNegative() {
		return nil, fmt.Errorf("%w: invalid base price %s", ErrInvalidArgument, req.BasePrice)
	}

	existing, err := s.repo.RoomType.FindByName(ctx, req.Name)
	if err != nil {
		return nil, fmt.Errorf("check room type name: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: room type %s already exists", ErrConflict, req.Name)
	}

	roomType := &entity.RoomType{
		Name:         req.Name,
		Description:  req.Description,
		BaseCapacity: req.BaseCapacity,
		MaxCapacity:  req.MaxCapacity,
		BasePrice:    basePrice,
		Amenities:    req.Amenities,
	}
	roomType.ID = utils.GenerateUUID()
	now := time.Now()
	roomType.CreatedAt = now
	roomType.UpdatedAt = now

	if err := s.repo.RoomType.Create(ctx, roomType); err != nil {
		return nil, fmt.Errorf("create room type: %w", err)
	}

	resp := response.RoomTypeToResponse(roomType)
	return &resp, nil
}
