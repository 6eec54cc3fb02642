package repository

import (
	"context"
	"time"

	"hotel-booking/internal/domain/account"
	"hotel-booking/internal/infra"
	"hotel-booking/internal/pkg/pgconv"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AccountRepository struct {
	db *pgxpool.Pool
}

func NewAccountRepository(db *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{db: db}
}

const accountColumns = `id, email, name, last_name, password_hash,
	is_staff, is_superuser, is_active, last_login, created_at, updated_at`

func (r *AccountRepository) Create(ctx context.Context, a *account.Account) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO accounts (id, email, name, last_name, password_hash, is_staff, is_superuser, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		pgconv.UUIDToPgtype(a.ID()),
		a.Email().Value(),
		a.Name(),
		a.LastName(),
		a.PasswordHash(),
		a.IsStaff(),
		a.IsSuperuser(),
		a.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to insert account", err)
	}
	return nil
}

func (r *AccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE id = $1`,
		pgconv.UUIDToPgtype(id),
	)
	return scanAccount(row)
}

func (r *AccountRepository) FindByEmail(ctx context.Context, email account.Email) (*account.Account, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE email = $1`,
		email.Value(),
	)
	return scanAccount(row)
}

func (r *AccountRepository) FindAll(ctx context.Context) ([]*account.Account, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+accountColumns+` FROM accounts ORDER BY created_at`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to query accounts", err)
	}
	defer rows.Close()

	var accounts []*account.Account
	for rows.Next() {
		a, err := scanAccount(rows)
		if err != nil {
			return nil, err
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to iterate accounts", err)
	}
	return accounts, nil
}

func (r *AccountRepository) Update(ctx context.Context, a *account.Account) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE accounts
		SET email = $2, name = $3, last_name = $4, password_hash = $5,
		    is_staff = $6, is_superuser = $7, is_active = $8, updated_at = now()
		WHERE id = $1`,
		pgconv.UUIDToPgtype(a.ID()),
		a.Email().Value(),
		a.Name(),
		a.LastName(),
		a.PasswordHash(),
		a.IsStaff(),
		a.IsSuperuser(),
		a.IsActive(),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update account", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("account not found", nil, infra.KindNotFound)
	}
	return nil
}

func (r *AccountRepository) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	_, err := r.db.Exec(ctx,
		`UPDATE accounts SET last_login = $2 WHERE id = $1`,
		pgconv.UUIDToPgtype(id),
		pgconv.TimeToPgtype(at),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to update last login", err)
	}
	return nil
}

func (r *AccountRepository) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM accounts WHERE id = $1`,
		pgconv.UUIDToPgtype(id),
	)
	if err != nil {
		return infra.WrapRepoErr("failed to delete account", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("account not found", nil, infra.KindNotFound)
	}
	return nil
}

func scanAccount(row pgx.Row) (*account.Account, error) {
	var (
		id                            pgtype.UUID
		email, name, lastName, hash   string
		isStaff, isSuperuser, active  bool
		lastLogin                     pgtype.Timestamptz
		createdAt, updatedAt          time.Time
	)

	err := row.Scan(&id, &email, &name, &lastName, &hash,
		&isStaff, &isSuperuser, &active, &lastLogin, &createdAt, &updatedAt)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("account not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to scan account", err)
	}

	return account.ReconstructAccount(
		uuid.UUID(id.Bytes),
		account.ReconstructEmail(email),
		name, lastName, hash,
		isStaff, isSuperuser, active,
		pgconv.TimePtrFromPgtype(lastLogin),
		createdAt, updatedAt,
	), nil
}
