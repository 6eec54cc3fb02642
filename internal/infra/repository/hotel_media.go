package repository

import (
	"context"

	"hotel-booking/internal/domain/hotel"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type HotelMediaRepository struct {
	db *pgxpool.Pool
}

func NewHotelMediaRepository(db *pgxpool.Pool) *HotelMediaRepository {
	return &HotelMediaRepository{db: db}
}

func (r *HotelMediaRepository) Create(ctx context.Context, m *hotel.Media) error {
	_, err := r.db.Exec(ctx,
		`INSERT INTO hotel_media (id, hotel_id, path) VALUES ($1, $2, $3)`,
		pgconv.UUIDToPgtype(m.ID()),
		pgconv.UUIDToPgtype(m.HotelID()),
		m.Path(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert hotel media", err)
	}
	return nil
}

func (r *HotelMediaRepository) FindByID(ctx context.Context, id uuid.UUID) (*hotel.Media, error) {
	row := r.db.QueryRow(ctx,
		`SELECT id, hotel_id, path FROM hotel_media WHERE id = $1`,
		pgconv.UUIDToPgtype(id),
	)
	return scanHotelMedia(row)
}

func (r *HotelMediaRepository) FindByHotelID(ctx context.Context, hotelID uuid.UUID) ([]*hotel.Media, error) {
	rows, err := r.db.Query(ctx,
		`SELECT id, hotel_id, path FROM hotel_media WHERE hotel_id = $1 ORDER BY id`,
		pgconv.UUIDToPgtype(hotelID),
	)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query hotel media", err)
	}
	defer rows.Close()

	var media []*hotel.Media
	for rows.Next() {
		m, err := scanHotelMedia(rows)
		if err != nil {
			return nil, err
		}
		media = append(media, m)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate hotel media", err)
	}
	return media, nil
}

func (r *HotelMediaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM hotel_media WHERE id = $1`,
		pgconv.UUIDToPgtype(id),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to delete hotel media", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("hotel media not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanHotelMedia(row pgx.Row) (*hotel.Media, error) {
	var (
		id, hotelID pgtype.UUID
		path        string
	)

	if err := row.Scan(&id, &hotelID, &path); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("hotel media not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan hotel media", err)
	}

	return hotel.ReconstructMedia(uuid.UUID(id.Bytes), uuid.UUID(hotelID.Bytes), path), nil
}
