// Package data implements Postgres-backed repositories for companies and
// jobs, plus the Redis cache used by the analytics read path.
package data

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/rpoworks/console/internal/data/pgxutil"
	"github.com/rpoworks/console/internal/domain/model"
	apperrors "github.com/rpoworks/console/internal/errors"
)

const defaultListLimit = 50

const companyColumns = "id, company_name, phone, company_email, hq_address, representative_name, created_at, updated_at"

// CompanyRepo provides database operations for companies.
type CompanyRepo struct {
	DB    *sql.DB
	clock Clock
}

// NewCompanyRepo creates a CompanyRepo using the system clock.
func NewCompanyRepo(db *sql.DB) *CompanyRepo {
	return &CompanyRepo{DB: db, clock: SystemClock{}}
}

// NewCompanyRepoWithClock creates a CompanyRepo with an injectable clock.
func NewCompanyRepoWithClock(db *sql.DB, clock Clock) *CompanyRepo {
	return &CompanyRepo{DB: db, clock: clock}
}

// Create inserts a new company.
func (r *CompanyRepo) Create(ctx context.Context, req *model.CreateCompanyRequest) (*model.Company, error) {
	if req == nil {
		return nil, apperrors.Validation("create company request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	now := r.clock.Now().UTC()
	var out model.Company
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO companies (
				id, company_name, phone, company_email, hq_address, representative_name, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $7)
			RETURNING `+companyColumns,
			uuid.NewString(),
			strings.TrimSpace(req.CompanyName),
			req.Phone,
			req.CompanyEmail,
			req.HQAddress,
			req.RepresentativeName,
			now,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Company])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// GetByID retrieves a company by ID.
func (r *CompanyRepo) GetByID(ctx context.Context, id string) (*model.Company, error) {
	var out model.Company
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+companyColumns+` FROM companies WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Company])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// List retrieves companies with pagination and optional name substring match.
func (r *CompanyRepo) List(ctx context.Context, opts model.CompaniesListOptions) ([]*model.Company, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	offset := opts.Offset
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + companyColumns + ` FROM companies`
	args := []any{}
	if opts.Q != nil && strings.TrimSpace(*opts.Q) != "" {
		query += ` WHERE company_name ILIKE '%' || $1 || '%' ORDER BY company_name LIMIT $2 OFFSET $3`
		args = append(args, strings.TrimSpace(*opts.Q), limit, offset)
	} else {
		query += ` ORDER BY company_name LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}

	var out []*model.Company
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		collected, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Company])
		if err != nil {
			return err
		}
		out = make([]*model.Company, len(collected))
		for i := range collected {
			out[i] = &collected[i]
		}
		return nil
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return out, nil
}

// Update applies a partial update; nil fields keep their current value.
func (r *CompanyRepo) Update(ctx context.Context, id string, req model.UpdateCompanyRequest) (*model.Company, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	var name *string
	if req.CompanyName != nil {
		trimmed := strings.TrimSpace(*req.CompanyName)
		name = &trimmed
	}

	var out model.Company
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			UPDATE companies SET
				company_name        = COALESCE($2, company_name),
				phone               = COALESCE($3, phone),
				company_email       = COALESCE($4, company_email),
				hq_address          = COALESCE($5, hq_address),
				representative_name = COALESCE($6, representative_name),
				updated_at          = $7
			WHERE id = $1
			RETURNING `+companyColumns,
			id,
			name,
			req.Phone,
			req.CompanyEmail,
			req.HQAddress,
			req.RepresentativeName,
			r.clock.Now().UTC(),
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Company])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// Delete removes a company. Returns false when no row matched.
func (r *CompanyRepo) Delete(ctx context.Context, id string) (bool, error) {
	var deleted bool
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		tag, err := conn.Exec(ctx, `DELETE FROM companies WHERE id = $1`, id)
		if err != nil {
			return err
		}
		deleted = tag.RowsAffected() > 0
		return nil
	}); err != nil {
		return false, apperrors.MapDBError(err)
	}
	return deleted, nil
}

// Snapshot returns every company for one work-queue derivation.
func (r *CompanyRepo) Snapshot(ctx context.Context) ([]model.Company, error) {
	var out []model.Company
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+companyColumns+` FROM companies ORDER BY created_at`)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Company])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return out, nil
}
