package repository

import (
	"context"
	"time"

	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RoomRepository struct {
	db *pgxpool.Pool
}

func NewRoomRepository(db *pgxpool.Pool) *RoomRepository {
	return &RoomRepository{db: db}
}

const roomColumns = `id, hotel_id, name, number, description, status, room_type,
	price_cents, capacity, beds, updated_by, created_at, updated_at`

func (r *RoomRepository) Create(ctx context.Context, rm *room.Room) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO rooms (id, hotel_id, name, number, description, status, room_type,
			price_cents, capacity, beds, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`,
		pgconv.UUIDToPgtype(rm.ID()),
		pgconv.UUIDToPgtype(rm.HotelID()),
		pgconv.StringPtrToPgtype(rm.Name()),
		pgconv.Int32PtrToPgtype(rm.Number()),
		rm.Description(),
		string(rm.Status()),
		string(rm.RoomType()),
		rm.PriceCents(),
		rm.Capacity(),
		rm.Beds(),
		pgconv.UUIDPtrToPgtype(rm.UpdatedBy()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert room", err)
	}
	return nil
}

func (r *RoomRepository) FindByID(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+roomColumns+` FROM rooms WHERE id = $1`,
		pgconv.UUIDToPgtype(id),
	)
	return scanRoom(row)
}

func (r *RoomRepository) FindAll(ctx context.Context) ([]*room.Room, error) {
	return r.queryRooms(ctx,
		`SELECT `+roomColumns+` FROM rooms ORDER BY created_at`)
}

func (r *RoomRepository) FindByHotelID(ctx context.Context, hotelID uuid.UUID) ([]*room.Room, error) {
	return r.queryRooms(ctx,
		`SELECT `+roomColumns+` FROM rooms WHERE hotel_id = $1 ORDER BY created_at`,
		pgconv.UUIDToPgtype(hotelID))
}

func (r *RoomRepository) queryRooms(ctx context.Context, sql string, args ...any) ([]*room.Room, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query rooms", err)
	}
	defer rows.Close()

	var rooms []*room.Room
	for rows.Next() {
		rm, err := scanRoom(rows)
		if err != nil {
			return nil, err
		}
		rooms = append(rooms, rm)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate rooms", err)
	}
	return rooms, nil
}

func (r *RoomRepository) Update(ctx context.Context, rm *room.Room) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE rooms
		SET hotel_id = $2, name = $3, number = $4, description = $5, status = $6,
		    room_type = $7, price_cents = $8, capacity = $9, beds = $10,
		    updated_by = $11, updated_at = now()
		WHERE id = $1`,
		pgconv.UUIDToPgtype(rm.ID()),
		pgconv.UUIDToPgtype(rm.HotelID()),
		pgconv.StringPtrToPgtype(rm.Name()),
		pgconv.Int32PtrToPgtype(rm.Number()),
		rm.Description(),
		string(rm.Status()),
		string(rm.RoomType()),
		rm.PriceCents(),
		rm.Capacity(),
		rm.Beds(),
		pgconv.UUIDPtrToPgtype(rm.UpdatedBy()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *RoomRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM rooms WHERE id = $1`,
		pgconv.UUIDToPgtype(id),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to delete room", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanRoom(row pgx.Row) (*room.Room, error) {
	var (
		id, hotelID          pgtype.UUID
		name                 pgtype.Text
		number               pgtype.Int4
		description          string
		status, roomType     string
		priceCents           int64
		capacity, beds       int16
		updatedBy            pgtype.UUID
		createdAt, updatedAt time.Time
	)

	err := row.Scan(&id, &hotelID, &name, &number, &description, &status, &roomType,
		&priceCents, &capacity, &beds, &updatedBy, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan room", err)
	}

	return room.ReconstructRoom(
		uuid.UUID(id.Bytes),
		uuid.UUID(hotelID.Bytes),
		pgconv.StringPtrFromPgtype(name),
		pgconv.Int32PtrFromPgtype(number),
		description,
		room.Status(status),
		room.RoomType(roomType),
		priceCents,
		capacity, beds,
		pgconv.UUIDPtrFromPgtype(updatedBy),
		createdAt, updatedAt,
	), nil
}
