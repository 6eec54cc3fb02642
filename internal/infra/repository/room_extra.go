package repository

import (
	"context"

	"hotel-booking/internal/domain/room"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type RoomExtraRepository struct {
	db *pgxpool.Pool
}

func NewRoomExtraRepository(db *pgxpool.Pool) *RoomExtraRepository {
	return &RoomExtraRepository{db: db}
}

const roomExtraQuery = `
	SELECT e.id, e.has_internet, e.has_tv,
	       COALESCE(array_agg(j.room_id) FILTER (WHERE j.room_id IS NOT NULL), '{}')
	FROM room_extras e
	LEFT JOIN room_extra_rooms j ON j.extra_id = e.id`

func (r *RoomExtraRepository) Create(ctx context.Context, e *room.Extra) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO room_extras (id, has_internet, has_tv) VALUES ($1, $2, $3)`,
		pgconv.UUIDToPgtype(e.ID()),
		e.HasInternet(),
		e.HasTV(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert room extra", err)
	}

	if err := insertExtraRooms(ctx, tx, e.ID(), e.RoomIDs()); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit room extra", err)
	}
	return nil
}

func (r *RoomExtraRepository) FindByID(ctx context.Context, id uuid.UUID) (*room.Extra, error) {
	row := r.db.QueryRow(ctx,
		roomExtraQuery+` WHERE e.id = $1 GROUP BY e.id, e.has_internet, e.has_tv`,
		pgconv.UUIDToPgtype(id),
	)
	return scanRoomExtra(row)
}

// FindByFlags looks up the row keyed by the amenity pair. The pair carries a
// unique constraint, so at most one row can match.
func (r *RoomExtraRepository) FindByFlags(ctx context.Context, hasInternet, hasTV bool) (*room.Extra, error) {
	row := r.db.QueryRow(ctx,
		roomExtraQuery+` WHERE e.has_internet = $1 AND e.has_tv = $2
		GROUP BY e.id, e.has_internet, e.has_tv`,
		hasInternet, hasTV,
	)
	return scanRoomExtra(row)
}

func (r *RoomExtraRepository) FindAll(ctx context.Context) ([]*room.Extra, error) {
	rows, err := r.db.Query(ctx,
		roomExtraQuery+` GROUP BY e.id, e.has_internet, e.has_tv ORDER BY e.id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query room extras", err)
	}
	defer rows.Close()

	var extras []*room.Extra
	for rows.Next() {
		e, err := scanRoomExtra(rows)
		if err != nil {
			return nil, err
		}
		extras = append(extras, e)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room extras", err)
	}
	return extras, nil
}

// ReplaceRooms rewrites the extra's room associations to match the entity.
func (r *RoomExtraRepository) ReplaceRooms(ctx context.Context, e *room.Extra) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`DELETE FROM room_extra_rooms WHERE extra_id = $1`,
		pgconv.UUIDToPgtype(e.ID()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to clear room extra associations", err)
	}

	if err := insertExtraRooms(ctx, tx, e.ID(), e.RoomIDs()); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit room extra associations", err)
	}
	return nil
}

func (r *RoomExtraRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM room_extras WHERE id = $1`,
		pgconv.UUIDToPgtype(id),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to delete room extra", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room extra not found", nil, infra.KindNotFound)
	}
	return nil
}

func insertExtraRooms(ctx context.Context, tx pgx.Tx, extraID uuid.UUID, roomIDs []uuid.UUID) error {
	for _, roomID := range roomIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO room_extra_rooms (extra_id, room_id) VALUES ($1, $2)`,
			pgconv.UUIDToPgtype(extraID),
			pgconv.UUIDToPgtype(roomID),
		)
		if err != nil {
			return infra.WrapRepoErr("failed to attach room to extra", err)
		}
	}
	return nil
}

func scanRoomExtra(row pgx.Row) (*room.Extra, error) {
	var (
		id                 pgtype.UUID
		hasInternet, hasTV bool
		roomIDs            []pgtype.UUID
	)

	if err := row.Scan(&id, &hasInternet, &hasTV, &roomIDs); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room extra not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan room extra", err)
	}

	return room.ReconstructExtra(uuid.UUID(id.Bytes), hasInternet, hasTV, uuidSlice(roomIDs)), nil
}
