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

type HotelRepository interface {
	Create(ctx context.Context, hotel *entity.Hotel) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Hotel, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Hotel, error)
	CountAll(ctx context.Context) (int64, error)
	FindByCity(ctx context.Context, city string, limit, offset int) ([]*entity.Hotel, error)
	CountByCity(ctx context.Context, city string) (int64, error)
	FindAllActive(ctx context.Context) ([]*entity.Hotel, error)
	Update(ctx context.Context, hotel *entity.Hotel) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type hotelRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewHotelRepository(db database.PgxIface, log *zap.Logger) HotelRepository {
	return &hotelRepository{
		db:  db,
		log: log.With(zap.String("repository", "hotel")),
	}
}

const hotelColumns = `id, name, description, address, city, country, postal_code, star_rating, amenities, check_in_time, check_out_time, status, created_at, updated_at`

func scanHotel(row pgx.Row) (*entity.Hotel, error) {
	var hotel entity.Hotel
	err := row.Scan(
		&hotel.ID,
		&hotel.Name,
		&hotel.Description,
		&hotel.Address,
		&hotel.City,
		&hotel.Country,
		&hotel.PostalCode,
		&hotel.StarRating,
		&hotel.Amenities,
		&hotel.CheckInTime,
		&hotel.CheckOutTime,
		&hotel.Status,
		&hotel.CreatedAt,
		&hotel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &hotel, nil
}

func (r *hotelRepository) Create(ctx context.Context, hotel *entity.Hotel) error {
	query := `
		INSERT INTO hotels (id, name, description, address, city, country, postal_code, star_rating,
		                    amenities, check_in_time, check_out_time, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
	`

	_, err := r.db.Exec(ctx, query,
		hotel.ID,
		hotel.Name,
		hotel.Description,
		hotel.Address,
		hotel.City,
		hotel.Country,
		hotel.PostalCode,
		hotel.StarRating,
		hotel.Amenities,
		hotel.CheckInTime,
		hotel.CheckOutTime,
		hotel.Status,
		hotel.CreatedAt,
		hotel.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create hotel",
			zap.Error(err),
			zap.String("name", hotel.Name),
		)
		return fmt.Errorf("create hotel %s: %w", hotel.Name, err)
	}

	return nil
}

func (r *hotelRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Hotel, error) {
	query := `SELECT ` + hotelColumns + ` FROM hotels WHERE id = $1`

	hotel, err := scanHotel(r.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find hotel by ID",
			zap.Error(err),
			zap.String("hotel_id", id.String()),
		)
		return nil, fmt.Errorf("find hotel by ID %s: %w", id.String(), err)
	}

	return hotel, nil
}

func (r *hotelRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Hotel, error) {
	query := `SELECT ` + hotelColumns + ` FROM hotels ORDER BY name LIMIT $1 OFFSET $2`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		r.log.Error("Failed to find hotels",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find hotels: %w", err)
	}
	defer rows.Close()

	var hotels []*entity.Hotel
	for rows.Next() {
		hotel, err := scanHotel(rows)
		if err != nil {
			r.log.Error("Failed to scan hotel row", zap.Error(err))
			return nil, fmt.Errorf("scan hotel row: %w", err)
		}
		hotels = append(hotels, hotel)
	}

	return hotels, nil
}

func (r *hotelRepository) CountAll(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM hotels`

	var count int64
	err := r.db.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count hotels", zap.Error(err))
		return 0, fmt.Errorf("count hotels: %w", err)
	}

	return count, nil
}

func (r *hotelRepository) FindByCity(ctx context.Context, city string, limit, offset int) ([]*entity.Hotel, error) {
	query := `SELECT ` + hotelColumns + ` FROM hotels WHERE LOWER(city) = LOWER($1) ORDER BY name LIMIT $2 OFFSET $3`

	rows, err := r.db.Query(ctx, query, city, limit, offset)
	if err != nil {
		r.log.Error("Failed to find hotels by city",
			zap.Error(err),
			zap.String("city", city),
		)
		return nil, fmt.Errorf("find hotels by city %s: %w", city, err)
	}
	defer rows.Close()

	var hotels []*entity.Hotel
	for rows.Next() {
		hotel, err := scanHotel(rows)
		if err != nil {
			r.log.Error("Failed to scan hotel row", zap.Error(err))
			return nil, fmt.Errorf("scan hotel row: %w", err)
		}
		hotels = append(hotels, hotel)
	}

	return hotels, nil
}

func (r *hotelRepository) CountByCity(ctx context.Context, city string) (int64, error) {
	query := `SELECT COUNT(*) FROM hotels WHERE LOWER(city) = LOWER($1)`

	var count int64
	err := r.db.QueryRow(ctx, query, city).Scan(&count)
	if err != nil {
		r.log.Error("Failed to count hotels by city",
			zap.Error(err),
			zap.String("city", city),
		)
		return 0, fmt.Errorf("count hotels by city %s: %w", city, err)
	}

	return count, nil
}

func (r *hotelRepository) FindAllActive(ctx context.Context) ([]*entity.Hotel, error) {
	query := `SELECT ` + hotelColumns + ` FROM hotels WHERE status = 'active' ORDER BY name`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find active hotels", zap.Error(err))
		return nil, fmt.Errorf("find active hotels: %w", err)
	}
	defer rows.Close()

	var hotels []*entity.Hotel
	for rows.Next() {
		hotel, err := scanHotel(rows)
		if err != nil {
			r.log.Error("Failed to scan hotel row", zap.Error(err))
			return nil, fmt.Errorf("scan hotel row: %w", err)
		}
		hotels = append(hotels, hotel)
	}

	return hotels, nil
}

func (r *hotelRepository) Update(ctx context.Context, hotel *entity.Hotel) error {
	query := `
		UPDATE hotels
		SET name = $2, description = $3, address = $4, city = $5, country = $6, postal_code = $7,
		    star_rating = $8, amenities = $9, check_in_time = $10, check_out_time = $11,
		    status = $12, updated_at = $13
		WHERE id = $1
	`

	result, err := r.db.Exec(ctx, query,
		hotel.ID,
		hotel.Name,
		hotel.Description,
		hotel.Address,
		hotel.City,
		hotel.Country,
		hotel.PostalCode,
		hotel.StarRating,
		hotel.Amenities,
		hotel.CheckInTime,
		hotel.CheckOutTime,
		hotel.Status,
		hotel.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to update hotel",
			zap.Error(err),
			zap.String("hotel_id", hotel.ID.String()),
		)
		return fmt.Errorf("update hotel %s: %w", hotel.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("hotel %s not found", hotel.ID.String())
	}

	return nil
}

func (r *hotelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM hotels WHERE id = $1`

	result, err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.log.Error("Failed to delete hotel",
			zap.Error(err),
			zap.String("hotel_id", id.String()),
		)
		return fmt.Errorf("delete hotel %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("hotel %s not found", id.String())
	}

	r.log.Info("Hotel deleted", zap.String("hotel_id", id.String()))
	return nil
}
