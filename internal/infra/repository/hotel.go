package repository

import (
	"context"
	"time"

	"hotel-booking/internal/domain/hotel"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type HotelRepository struct {
	db *pgxpool.Pool
}

func NewHotelRepository(db *pgxpool.Pool) *HotelRepository {
	return &HotelRepository{db: db}
}

const hotelColumns = `id, name, address, description, stars, updated_by, created_at, updated_at`

func (r *HotelRepository) Create(ctx context.Context, h *hotel.Hotel) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO hotels (id, name, address, description, stars, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6)`,
		pgconv.UUIDToPgtype(h.ID()),
		h.Name(),
		h.Address(),
		h.Description(),
		h.Stars(),
		pgconv.UUIDPtrToPgtype(h.UpdatedBy()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert hotel", err)
	}
	return nil
}

func (r *HotelRepository) FindByID(ctx context.Context, id uuid.UUID) (*hotel.Hotel, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+hotelColumns+` FROM hotels WHERE id = $1`,
		pgconv.UUIDToPgtype(id),
	)
	return scanHotel(row)
}

func (r *HotelRepository) FindAll(ctx context.Context) ([]*hotel.Hotel, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+hotelColumns+` FROM hotels ORDER BY created_at`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query hotels", err)
	}
	defer rows.Close()

	var hotels []*hotel.Hotel
	for rows.Next() {
		h, err := scanHotel(rows)
		if err != nil {
			return nil, err
		}
		hotels = append(hotels, h)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate hotels", err)
	}
	return hotels, nil
}

func (r *HotelRepository) Update(ctx context.Context, h *hotel.Hotel) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE hotels
		SET name = $2, address = $3, description = $4, stars = $5,
		    updated_by = $6, updated_at = now()
		WHERE id = $1`,
		pgconv.UUIDToPgtype(h.ID()),
		h.Name(),
		h.Address(),
		h.Description(),
		h.Stars(),
		pgconv.UUIDPtrToPgtype(h.UpdatedBy()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update hotel", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("hotel not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *HotelRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM hotels WHERE id = $1`,
		pgconv.UUIDToPgtype(id),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to delete hotel", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("hotel not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanHotel(row pgx.Row) (*hotel.Hotel, error) {
	var (
		id                         pgtype.UUID
		name, address, description string
		stars                      int16
		updatedBy                  pgtype.UUID
		createdAt, updatedAt       time.Time
	)

	err := row.Scan(&id, &name, &address, &description, &stars, &updatedBy, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hotel not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan hotel", err)
	}

	return hotel.ReconstructHotel(
		uuid.UUID(id.Bytes),
		name, address, description,
		stars,
		pgconv.UUIDPtrFromPgtype(updatedBy),
		createdAt, updatedAt,
	), nil
}
