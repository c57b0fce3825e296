package data

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/rpoworks/console/internal/data/pgxutil"
	"github.com/rpoworks/console/internal/domain/model"
	apperrors "github.com/rpoworks/console/internal/errors"
)

const jobColumns = "id, company_id, company_name, job_title, employment_type, pay_note, description, site_status, created_at, updated_at"

// JobRepo provides database operations for job openings. The per-site status
// map lives in a single site_status JSONB column; site-level mutations run
// read-modify-write inside a transaction so concurrent touches on different
// sites of the same job cannot lose updates.
type JobRepo struct {
	DB    *sql.DB
	clock Clock
}

// NewJobRepo creates a JobRepo using the system clock.
func NewJobRepo(db *sql.DB) *JobRepo {
	return &JobRepo{DB: db, clock: SystemClock{}}
}

// NewJobRepoWithClock creates a JobRepo with an injectable clock.
func NewJobRepoWithClock(db *sql.DB, clock Clock) *JobRepo {
	return &JobRepo{DB: db, clock: clock}
}

// Create inserts a new job.
func (r *JobRepo) Create(ctx context.Context, req *model.CreateJobRequest) (*model.Job, error) {
	if req == nil {
		return nil, apperrors.Validation("create job request is required")
	}
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	now := r.clock.Now().UTC()
	var out model.Job
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `
			INSERT INTO jobs (
				id, company_id, company_name, job_title, employment_type, pay_note, description, site_status, created_at, updated_at
			) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $9)
			RETURNING `+jobColumns,
			uuid.NewString(),
			req.CompanyID,
			strings.TrimSpace(req.CompanyName),
			strings.TrimSpace(req.JobTitle),
			req.EmploymentType,
			req.PayNote,
			req.Description,
			req.SiteStatus,
			now,
		)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Job])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// GetByID retrieves a job by ID.
func (r *JobRepo) GetByID(ctx context.Context, id string) (*model.Job, error) {
	var out model.Job
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1`, id)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Job])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// List retrieves jobs with pagination, optionally scoped to one company.
func (r *JobRepo) List(ctx context.Context, opts model.JobsListOptions) ([]*model.Job, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	offset := opts.Offset
	if offset < 0 {
		offset = 0
	}

	query := `SELECT ` + jobColumns + ` FROM jobs`
	args := []any{}
	if opts.CompanyID != nil {
		query += ` WHERE company_id = $1 ORDER BY created_at DESC LIMIT $2 OFFSET $3`
		args = append(args, *opts.CompanyID, limit, offset)
	} else {
		query += ` ORDER BY created_at DESC LIMIT $1 OFFSET $2`
		args = append(args, limit, offset)
	}

	var out []*model.Job
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()
		collected, err := pgx.CollectRows(rows, pgx.RowToStructByName[model.Job])
		if err != nil {
			return err
		}
		out = make([]*model.Job, len(collected))
		for i := range collected {
			out[i] = &collected[i]
		}
		return nil
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return out, nil
}

// Update applies a partial update; nil fields keep their current value and a
// non-nil SiteStatus replaces the whole map.
func (r *JobRepo) Update(ctx context.Context, id string, req model.UpdateJobRequest) (*model.Job, error) {
	if err := req.Validate(); err != nil {
		return nil, apperrors.Validation(err.Error())
	}

	var out model.Job
	if err := pgxutil.WithPgxTx(ctx, r.DB, func(tx pgx.Tx) error {
		current, err := lockJob(ctx, tx, id)
		if err != nil {
			return err
		}

		if req.CompanyID != nil {
			current.CompanyID = req.CompanyID
		}
		if req.CompanyName != nil {
			current.CompanyName = strings.TrimSpace(*req.CompanyName)
		}
		if req.JobTitle != nil {
			current.JobTitle = strings.TrimSpace(*req.JobTitle)
		}
		if req.EmploymentType != nil {
			current.EmploymentType = req.EmploymentType
		}
		if req.PayNote != nil {
			current.PayNote = req.PayNote
		}
		if req.Description != nil {
			current.Description = req.Description
		}
		if req.SiteStatus != nil {
			current.SiteStatus = req.SiteStatus
		}

		out, err = writeJob(ctx, tx, current, r.clock.Now().UTC())
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// Delete removes a job. Returns false when no row matched.
func (r *JobRepo) Delete(ctx context.Context, id string) (bool, error) {
	var deleted bool
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		tag, err := conn.Exec(ctx, `DELETE FROM jobs WHERE id = $1`, id)
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

// SetSiteState sets or replaces one (job, site) entry.
func (r *JobRepo) SetSiteState(ctx context.Context, jobID, siteKey string, state model.SiteState) (*model.Job, error) {
	if strings.TrimSpace(siteKey) == "" {
		return nil, apperrors.Validation("site key is required")
	}
	if !state.Status.Valid() {
		return nil, apperrors.Validation("invalid site status")
	}

	var out model.Job
	if err := pgxutil.WithPgxTx(ctx, r.DB, func(tx pgx.Tx) error {
		current, err := lockJob(ctx, tx, jobID)
		if err != nil {
			return err
		}

		if current.SiteStatus == nil {
			current.SiteStatus = make(map[string]model.SiteState, 1)
		}
		current.SiteStatus[siteKey] = state

		out, err = writeJob(ctx, tx, current, r.clock.Now().UTC())
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// TouchRPO stamps rpoLastTouchedAt on an existing (job, site) entry. The
// listing's own updatedAt is deliberately left alone: an operations touch is
// not a media update.
func (r *JobRepo) TouchRPO(ctx context.Context, jobID, siteKey string, at time.Time) (*model.Job, error) {
	var out model.Job
	if err := pgxutil.WithPgxTx(ctx, r.DB, func(tx pgx.Tx) error {
		current, err := lockJob(ctx, tx, jobID)
		if err != nil {
			return err
		}

		state, ok := current.SiteStatus[siteKey]
		if !ok {
			return apperrors.NotFoundf("site %q not found on job %s", siteKey, jobID)
		}
		state.RPOLastTouchedAt = at.UTC().Format(time.RFC3339)
		current.SiteStatus[siteKey] = state

		out, err = writeJob(ctx, tx, current, r.clock.Now().UTC())
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return &out, nil
}

// Snapshot returns every job for one work-queue derivation.
func (r *JobRepo) Snapshot(ctx context.Context) ([]model.Job, error) {
	var out []model.Job
	if err := pgxutil.WithPgxConn(ctx, r.DB, func(conn *pgx.Conn) error {
		rows, err := conn.Query(ctx, `SELECT `+jobColumns+` FROM jobs ORDER BY created_at`)
		if err != nil {
			return err
		}
		defer rows.Close()
		out, err = pgx.CollectRows(rows, pgx.RowToStructByName[model.Job])
		return err
	}); err != nil {
		return nil, apperrors.MapDBError(err)
	}
	return out, nil
}

func lockJob(ctx context.Context, tx pgx.Tx, id string) (model.Job, error) {
	rows, err := tx.Query(ctx, `SELECT `+jobColumns+` FROM jobs WHERE id = $1 FOR UPDATE`, id)
	if err != nil {
		return model.Job{}, err
	}
	defer rows.Close()
	return pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Job])
}

func writeJob(ctx context.Context, tx pgx.Tx, job model.Job, now time.Time) (model.Job, error) {
	rows, err := tx.Query(ctx, `
		UPDATE jobs SET
			company_id      = $2,
			company_name    = $3,
			job_title       = $4,
			employment_type = $5,
			pay_note        = $6,
			description     = $7,
			site_status     = $8,
			updated_at      = $9
		WHERE id = $1
		RETURNING `+jobColumns,
		job.ID,
		job.CompanyID,
		job.CompanyName,
		job.JobTitle,
		job.EmploymentType,
		job.PayNote,
		job.Description,
		job.SiteStatus,
		now,
	)
	if err != nil {
		return model.Job{}, err
	}
	defer rows.Close()
	return pgx.CollectOneRow(rows, pgx.RowToStructByName[model.Job])
}
