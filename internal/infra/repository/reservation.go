package repository

import (
	"context"
	"time"

	"hotel-booking/internal/domain/reservation"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ReservationRepository struct {
	db *pgxpool.Pool
}

func NewReservationRepository(db *pgxpool.Pool) *ReservationRepository {
	return &ReservationRepository{db: db}
}

const reservationColumns = `id, room_id, account_id, discount_id, guests, price_cents,
	check_in, check_out, has_canceled, updated_by, created_at, updated_at`

func (r *ReservationRepository) Create(ctx context.Context, rv *reservation.Reservation) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO reservations (id, room_id, account_id, discount_id, guests, price_cents,
			check_in, check_out, has_canceled, updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		pgconv.UUIDToPgtype(rv.ID()),
		pgconv.UUIDToPgtype(rv.RoomID()),
		pgconv.UUIDPtrToPgtype(rv.AccountID()),
		pgconv.UUIDPtrToPgtype(rv.DiscountID()),
		rv.Guests(),
		rv.Price().Cents(),
		pgconv.TimeToPgtype(rv.Stay().CheckIn()),
		pgconv.TimeToPgtype(rv.Stay().CheckOut()),
		rv.HasCanceled(),
		pgconv.UUIDPtrToPgtype(rv.UpdatedBy()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert reservation", err)
	}
	return nil
}

func (r *ReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*reservation.Reservation, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+reservationColumns+` FROM reservations WHERE id = $1`,
		pgconv.UUIDToPgtype(id),
	)
	return scanReservation(row)
}

func (r *ReservationRepository) FindAll(ctx context.Context) ([]*reservation.Reservation, error) {
	return r.queryReservations(ctx,
		`SELECT `+reservationColumns+` FROM reservations ORDER BY created_at`)
}

func (r *ReservationRepository) FindByAccountID(ctx context.Context, accountID uuid.UUID) ([]*reservation.Reservation, error) {
	return r.queryReservations(ctx,
		`SELECT `+reservationColumns+` FROM reservations WHERE account_id = $1 ORDER BY created_at`,
		pgconv.UUIDToPgtype(accountID))
}

func (r *ReservationRepository) queryReservations(ctx context.Context, sql string, args ...any) ([]*reservation.Reservation, error) {
	rows, err := r.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query reservations", err)
	}
	defer rows.Close()

	var reservations []*reservation.Reservation
	for rows.Next() {
		rv, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, rv)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate reservations", err)
	}
	return reservations, nil
}

func (r *ReservationRepository) Update(ctx context.Context, rv *reservation.Reservation) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE reservations
		SET room_id = $2, account_id = $3, discount_id = $4, guests = $5,
		    check_in = $6, check_out = $7, has_canceled = $8,
		    updated_by = $9, updated_at = now()
		WHERE id = $1`,
		pgconv.UUIDToPgtype(rv.ID()),
		pgconv.UUIDToPgtype(rv.RoomID()),
		pgconv.UUIDPtrToPgtype(rv.AccountID()),
		pgconv.UUIDPtrToPgtype(rv.DiscountID()),
		rv.Guests(),
		pgconv.TimeToPgtype(rv.Stay().CheckIn()),
		pgconv.TimeToPgtype(rv.Stay().CheckOut()),
		rv.HasCanceled(),
		pgconv.UUIDPtrToPgtype(rv.UpdatedBy()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *ReservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM reservations WHERE id = $1`,
		pgconv.UUIDToPgtype(id),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to delete reservation", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("reservation not found", nil, infra.KindNotFound)
	}
	return nil
}

// The price column is intentionally absent from Update: it is written once at
// insert and never recomputed afterwards.

func scanReservation(row pgx.Row) (*reservation.Reservation, error) {
	var (
		id, roomID            pgtype.UUID
		accountID, discountID pgtype.UUID
		guests                int32
		priceCents            int64
		checkIn, checkOut     time.Time
		hasCanceled           bool
		updatedBy             pgtype.UUID
		createdAt, updatedAt  time.Time
	)

	err := row.Scan(&id, &roomID, &accountID, &discountID, &guests, &priceCents,
		&checkIn, &checkOut, &hasCanceled, &updatedBy, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("reservation not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan reservation", err)
	}

	return reservation.ReconstructReservation(
		uuid.UUID(id.Bytes),
		uuid.UUID(roomID.Bytes),
		pgconv.UUIDPtrFromPgtype(accountID),
		pgconv.UUIDPtrFromPgtype(discountID),
		guests,
		reservation.ReconstructStayPeriod(checkIn, checkOut),
		reservation.NewMoney(priceCents),
		hasCanceled,
		pgconv.UUIDPtrFromPgtype(updatedBy),
		createdAt, updatedAt,
	), nil
}
