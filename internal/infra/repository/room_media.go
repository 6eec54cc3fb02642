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

type RoomMediaRepository struct {
	db *pgxpool.Pool
}

func NewRoomMediaRepository(db *pgxpool.Pool) *RoomMediaRepository {
	return &RoomMediaRepository{db: db}
}

const roomMediaQuery = `
	SELECT m.id, m.path,
	       COALESCE(array_agg(j.room_id) FILTER (WHERE j.room_id IS NOT NULL), '{}')
	FROM room_media m
	LEFT JOIN room_media_rooms j ON j.media_id = m.id`

func (r *RoomMediaRepository) Create(ctx context.Context, m *room.Media) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`INSERT INTO room_media (id, path) VALUES ($1, $2)`,
		pgconv.UUIDToPgtype(m.ID()),
		m.Path(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert room media", err)
	}

	if err := insertMediaRooms(ctx, tx, m.ID(), m.RoomIDs()); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit room media", err)
	}
	return nil
}

func (r *RoomMediaRepository) FindByID(ctx context.Context, id uuid.UUID) (*room.Media, error) {
	row := r.db.QueryRow(ctx,
		roomMediaQuery+` WHERE m.id = $1 GROUP BY m.id, m.path`,
		pgconv.UUIDToPgtype(id),
	)
	return scanRoomMedia(row)
}

func (r *RoomMediaRepository) FindAll(ctx context.Context) ([]*room.Media, error) {
	rows, err := r.db.Query(ctx, roomMediaQuery+` GROUP BY m.id, m.path ORDER BY m.id`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query room media", err)
	}
	defer rows.Close()

	var media []*room.Media
	for rows.Next() {
		m, err := scanRoomMedia(rows)
		if err != nil {
			return nil, err
		}
		media = append(media, m)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate room media", err)
	}
	return media, nil
}

// ReplaceRooms rewrites the media's room associations to match the entity.
func (r *RoomMediaRepository) ReplaceRooms(ctx context.Context, m *room.Media) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		return infra.WrapRepoErr("failed to begin transaction", err)
	}
	defer tx.Rollback(ctx)

	_, err = tx.Exec(ctx,
		`DELETE FROM room_media_rooms WHERE media_id = $1`,
		pgconv.UUIDToPgtype(m.ID()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to clear room media associations", err)
	}

	if err := insertMediaRooms(ctx, tx, m.ID(), m.RoomIDs()); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return infra.WrapRepoErr("failed to commit room media associations", err)
	}
	return nil
}

func (r *RoomMediaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM room_media WHERE id = $1`,
		pgconv.UUIDToPgtype(id),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to delete room media", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("room media not found", nil, infra.KindNotFound)
	}
	return nil
}

func insertMediaRooms(ctx context.Context, tx pgx.Tx, mediaID uuid.UUID, roomIDs []uuid.UUID) error {
	for _, roomID := range roomIDs {
		_, err := tx.Exec(ctx,
			`INSERT INTO room_media_rooms (media_id, room_id) VALUES ($1, $2)`,
			pgconv.UUIDToPgtype(mediaID),
			pgconv.UUIDToPgtype(roomID),
		)
		if err != nil {
			return infra.WrapRepoErr("failed to attach room to media", err)
		}
	}
	return nil
}

func scanRoomMedia(row pgx.Row) (*room.Media, error) {
	var (
		id      pgtype.UUID
		path    string
		roomIDs []pgtype.UUID
	)

	if err := row.Scan(&id, &path, &roomIDs); err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("room media not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan room media", err)
	}

	return room.ReconstructMedia(uuid.UUID(id.Bytes), path, uuidSlice(roomIDs)), nil
}

func uuidSlice(in []pgtype.UUID) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(in))
	for _, u := range in {
		out = append(out, uuid.UUID(u.Bytes))
	}
	return out
}
