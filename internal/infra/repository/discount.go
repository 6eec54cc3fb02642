package repository

import (
	"context"
	"time"

	"hotel-booking/internal/domain/discount"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type DiscountRepository struct {
	db *pgxpool.Pool
}

func NewDiscountRepository(db *pgxpool.Pool) *DiscountRepository {
	return &DiscountRepository{db: db}
}

const discountColumns = `id, code, rate_percent, flat_cents, updated_by, created_at, updated_at`

func (r *DiscountRepository) Create(ctx context.Context, d *discount.Discount) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO discounts (id, code, rate_percent, flat_cents, updated_by)
		VALUES ($1, $2, $3, $4, $5)`,
		pgconv.UUIDToPgtype(d.ID()),
		d.Code().Value(),
		d.Terms().RatePercent(),
		d.Terms().FlatCents(),
		pgconv.UUIDPtrToPgtype(d.UpdatedBy()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert discount", err)
	}
	return nil
}

func (r *DiscountRepository) FindByID(ctx context.Context, id uuid.UUID) (*discount.Discount, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+discountColumns+` FROM discounts WHERE id = $1`,
		pgconv.UUIDToPgtype(id),
	)
	return scanDiscount(row)
}

func (r *DiscountRepository) FindByCode(ctx context.Context, code discount.Code) (*discount.Discount, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+discountColumns+` FROM discounts WHERE code = $1`,
		code.Value(),
	)
	return scanDiscount(row)
}

func (r *DiscountRepository) FindAll(ctx context.Context) ([]*discount.Discount, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+discountColumns+` FROM discounts ORDER BY created_at`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query discounts", err)
	}
	defer rows.Close()

	var discounts []*discount.Discount
	for rows.Next() {
		d, err := scanDiscount(rows)
		if err != nil {
			return nil, err
		}
		discounts = append(discounts, d)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate discounts", err)
	}
	return discounts, nil
}

func (r *DiscountRepository) Update(ctx context.Context, d *discount.Discount) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE discounts
		SET code = $2, rate_percent = $3, flat_cents = $4, updated_by = $5, updated_at = now()
		WHERE id = $1`,
		pgconv.UUIDToPgtype(d.ID()),
		d.Code().Value(),
		d.Terms().RatePercent(),
		d.Terms().FlatCents(),
		pgconv.UUIDPtrToPgtype(d.UpdatedBy()),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update discount", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("discount not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *DiscountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM discounts WHERE id = $1`,
		pgconv.UUIDToPgtype(id),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to delete discount", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("discount not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanDiscount(row pgx.Row) (*discount.Discount, error) {
	var (
		id                   pgtype.UUID
		code                 string
		ratePercent          float64
		flatCents            int64
		updatedBy            pgtype.UUID
		createdAt, updatedAt time.Time
	)

	err := row.Scan(&id, &code, &ratePercent, &flatCents, &updatedBy, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("discount not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan discount", err)
	}

	return discount.ReconstructDiscount(
		uuid.UUID(id.Bytes),
		discount.ReconstructCode(code),
		discount.ReconstructTerms(ratePercent, flatCents),
		pgconv.UUIDPtrFromPgtype(updatedBy),
		createdAt, updatedAt,
	), nil
}
