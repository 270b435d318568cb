package repository

import (
	"context"
	"fmt"
	"time"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RoomRepository interface {
	Create(ctx context.Context, room *entity.Room) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error)
	FindByHotelID(ctx context.Context, hotelID uuid.UUID, limit, offset int) ([]*entity.Room, error)
	CountByHotelID(ctx context.Context, hotelID uuid.UUID) (int64, error)
	FindByHotelAndRoomNumber(ctx context.Context, hotelID uuid.UUID, roomNumber string) (*entity.Room, error)
	Update(ctx context.Context, room *entity.Room) error
	Delete(ctx context.Context, id uuid.UUID) error

	// Business queries
	FindAvailable(ctx context.Context, hotelID uuid.UUID, checkIn, checkOut time.Time) ([]*entity.Room, error)
}

type roomRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRoomRepository(db database.PgxIface, log *zap.Logger) RoomRepository {
	return &roomRepository{
		db:  db,
		log: log.With(zap.String("repository", "room")),
	}
}

const roomColumns = `id, hotel_id, room_type_id, room_number, floor, capacity, price_per_night, description, status, created_at, updated_at`

func scanRoom(row pgx.Row) (*entity.Room, error) {
	var room entity.Room
	err := row.Scan(
		&room.ID,
		&room.HotelID,
		&room.RoomTypeID,
		&room.RoomNumber,
		&room.Floor,
		&room.Capacity,
		&room.PricePerNight,
		&room.Description,
		&room.Status,
		&room.CreatedAt,
		&room.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *roomRepository) Create(ctx context.Context, room *entity.Room) error {
	query := `
		INSERT INTO rooms (id, hotel_id, room_type_id, room_number, floor, capacity, price_per_night,
		                   description, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.db.Exec(ctx, query,
		room.ID,
		room.HotelID,
		room.RoomTypeID,
		room.RoomNumber,
		room.Floor,
		room.Capacity,
		room.PricePerNight,
		room.Description,
		room.Status,
		room.CreatedAt,
		room.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create room",
			zap.Error(err),
			zap.String("hotel_id", room.HotelID.String()),
			zap.String("room_number", room.RoomNumber),
		)
		return fmt.Errorf("create room %s: %w", room.RoomNumber, err)
	}

	return nil
}

func (r *roomRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE id = $1`

	room, err := scanRoom(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room by ID",
			zap.Error(err),
			zap.String("room_id", id.String()),
		)
		return nil, fmt.Errorf("find room by ID %s: %w", id.String(), err)
	}

	return room, nil
}

func (r *roomRepository) FindByHotelID(ctx context.Context, hotelID uuid.UUID, limit, offset int) ([]*entity.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE hotel_id = $1 ORDER BY room_number LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, hotelID, limit, offset)
	if err != nil {
		r.log.Error("Failed to find rooms by hotel ID",
			zap.Error(err),
			zap.String("hotel_id", hotelID.String()),
		)
		return nil, fmt.Errorf("find rooms by hotel ID %s: %w", hotelID.String(), err)
	}
	defer rows.Close()

	var rooms []*entity.Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			r.log.Error("Failed to scan room row", zap.Error(err))
			return nil, fmt.Errorf("scan room row: %w", err)
		}
		rooms = append(rooms, room)
	}

	return rooms, nil
}

func (r *roomRepository) CountByHotelID(ctx context.Context, hotelID uuid.UUID) (int64, error) {
	query := `SELECT COUNT(*) FROM rooms WHERE hotel_id = $1`

	var count int64
	err := r.db.QueryRow(ctx, query, hotelID).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count rooms by hotel ID",
			zap.Error(err),
			zap.String("hotel_id", hotelID.String()),
		)
		return 0, fmt.Errorf("count rooms by hotel ID %s: %w", hotelID.String(), err)
	}

	return count, nil
}

func (r *roomRepository) FindByHotelAndRoomNumber(ctx context.Context, hotelID uuid.UUID, roomNumber string) (*entity.Room, error) {
	query := `SELECT ` + roomColumns + ` FROM rooms WHERE hotel_id = $1 AND room_number = $2`

	room, err := scanRoom(r.db.QueryRow(ctx, query, hotelID, roomNumber))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room by hotel and room number",
			zap.Error(err),
			zap.String("hotel_id", hotelID.String()),
			zap.String("room_number", roomNumber),
		)
		return nil, fmt.Errorf("find room %s in hotel %s: %w", roomNumber, hotelID.String(), err)
	}

	return room, nil
}

func (r *roomRepository) Update(ctx context.Context, room *entity.Room) error {
	query := `
		UPDATE rooms
		SET room_type_id = $2, room_number = $3, floor = $4, capacity = $5,
		    price_per_night = $6, description = $7, status = $8, updated_at = $9
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		room.ID,
		room.RoomTypeID,
		room.RoomNumber,
		room.Floor,
		room.Capacity,
		room.PricePerNight,
		room.Description,
		room.Status,
		room.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update room",
			zap.Error(err),
			zap.String("room_id", room.ID.String()),
		)
		return fmt.Errorf("update room %s: %w", room.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room %s not found", room.ID.String())
	}

	return nil
}

func (r *roomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM rooms WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete room",
			zap.Error(err),
			zap.String("room_id", id.String()),
		)
		return fmt.Errorf("delete room %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("room %s not found", id.String())
	}

	r.log.Info("Room deleted", zap.String("room_id", id.String()))
	return nil
}

// FindAvailable lists rooms of a hotel with no blocking booking overlapping
// the date range (inclusive overlap rule).
func (r *roomRepository) FindAvailable(ctx context.Context, hotelID uuid.UUID, checkIn, checkOut time.Time) ([]*entity.Room, error) {
	query := `
		SELECT ` + roomColumns + `
		FROM rooms
		WHERE hotel_id = $1
		  AND status = 'available'
		  AND id NOT IN (
			SELECT room_id FROM bookings
			WHERE status NOT IN ('cancelled', 'no_show')
			  AND check_in_date <= $3
			  AND check_out_date >= $2
		  )
		ORDER BY room_number
	`

	rows, err := r.db.Query(ctx, query, hotelID, checkIn, checkOut)
	if err != nil {
		r.log.Error("Failed to find available rooms",
			zap.Error(err),
			zap.String("hotel_id", hotelID.String()),
			zap.Time("check_in", checkIn),
			zap.Time("check_out", checkOut),
		)
		return nil, fmt.Errorf("find available rooms for hotel %s: %w", hotelID.String(), err)
	}
	defer rows.Close()

	var rooms []*entity.Room
	for rows.Next() {
		room, err := scanRoom(rows)
		if err != nil {
			r.log.Error("Failed to scan room row", zap.Error(err))
			return nil, fmt.Errorf("scan room row: %w", err)
		}
		rooms = append(rooms, room)
	}

	return rooms, nil
}
