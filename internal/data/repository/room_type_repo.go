package repository

import (
	"context"
	"fmt"

	"hotel-booking/internal/data/entity"
	"hotel-booking/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type RoomTypeRepository interface {
	Create(ctx context.Context, roomType *entity.RoomType) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.RoomType, error)
	FindByName(ctx context.Context, name string) (*entity.RoomType, error)
	FindAll(ctx context.Context) ([]*entity.RoomType, error)
}

type roomTypeRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewRoomTypeRepository(db database.PgxIface, log *zap.Logger) RoomTypeRepository {
	return &roomTypeRepository{
		db:  db,
		log: log.With(zap.String("repository", "room_type")),
	}
}

const roomTypeColumns = `id, name, description, base_capacity, max_capacity, base_price, amenities, created_at, updated_at`

func scanRoomType(row pgx.Row) (*entity.RoomType, error) {
	var roomType entity.RoomType
	err := row.Scan(
		&roomType.ID,
		&roomType.Name,
		&roomType.Description,
		&roomType.BaseCapacity,
		&roomType.MaxCapacity,
		&roomType.BasePrice,
		&roomType.Amenities,
		&roomType.CreatedAt,
		&roomType.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &roomType, nil
}

func (r *roomTypeRepository) Create(ctx context.Context, roomType *entity.RoomType) error {
	query := `
		INSERT INTO room_types (id, name, description, base_capacity, max_capacity, base_price, amenities, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.db.Exec(ctx, query,
		roomType.ID,
		roomType.Name,
		roomType.Description,
		roomType.BaseCapacity,
		roomType.MaxCapacity,
		roomType.BasePrice,
		roomType.Amenities,
		roomType.CreatedAt,
		roomType.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create room type",
			zap.Error(err),
			zap.String("name", roomType.Name),
		)
		return fmt.Errorf("create room type %s: %w", roomType.Name, err)
	}

	return nil
}

func (r *roomTypeRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.RoomType, error) {
	query := `SELECT ` + roomTypeColumns + ` FROM room_types WHERE id = $1`

	roomType, err := scanRoomType(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room type by ID",
			zap.Error(err),
			zap.String("room_type_id", id.String()),
		)
		return nil, fmt.Errorf("find room type by ID %s: %w", id.String(), err)
	}

	return roomType, nil
}

func (r *roomTypeRepository) FindByName(ctx context.Context, name string) (*entity.RoomType, error) {
	query := `SELECT ` + roomTypeColumns + ` FROM room_types WHERE name = $1`

	roomType, err := scanRoomType(r.db.QueryRow(ctx, query, name))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find room type by name",
			zap.Error(err),
			zap.String("name", name),
		)
		return nil, fmt.Errorf("find room type by name %s: %w", name, err)
	}

	return roomType, nil
}

func (r *roomTypeRepository) FindAll(ctx context.Context) ([]*entity.RoomType, error) {
	query := `SELECT ` + roomTypeColumns + ` FROM room_types ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find room types", zap.Error(err))
		return nil, fmt.Errorf("find room types: %w", err)
	}
	defer rows.Close()

	var roomTypes []*entity.RoomType
	for rows.Next() {
		roomType, err := scanRoomType(rows)
		if err != nil {
			r.log.Error("Failed to scan room type row", zap.Error(err))
			return nil, fmt.Errorf("scan room type row: %w", err)
		}
		roomTypes = append(roomTypes, roomType)
	}

	return roomTypes, nil
}
