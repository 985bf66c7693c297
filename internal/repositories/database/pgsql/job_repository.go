package pgsql

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ImpexFlow/impex_backoffice_app/internal/apperrors"
	"github.com/ImpexFlow/impex_backoffice_app/internal/core/domain"
	portsrepo "github.com/ImpexFlow/impex_backoffice_app/internal/core/ports/repositories"
	"github.com/ImpexFlow/impex_backoffice_app/internal/core/stages"
	"github.com/ImpexFlow/impex_backoffice_app/internal/models"
	"github.com/ImpexFlow/impex_backoffice_app/internal/utils/mapping"
	"github.com/ImpexFlow/impex_backoffice_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const jobColumns = `
	job_no, year, status, importer, consignee, custom_house,
	eta_date, estimated_time_of_arrival, gateway_igm_filed_date, discharged_date,
	be_noted_arrival_date, be_noted_clearance_date, duty_payment_date, custom_clearance_date,
	billing_date, esanchit_submitted_date, documentation_done_date, submission_done_date,
	do_planning_done_date, operations_done_date,
	cth_basic_duty_sch, cth_basic_duty_ntfn, cth_igst_amount, cth_sws_amount, cth_bcd_amount,
	version, created_at, created_by, last_updated_at, last_updated_by`

type PgxJobRepository struct {
	BaseRepository
}

// NewPgxJobRepository creates a new repository for job data.
func NewPgxJobRepository(pool *pgxpool.Pool) portsrepo.JobRepositoryFacade {
	return &PgxJobRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.JobRepositoryFacade = (*PgxJobRepository)(nil)

func scanJob(row pgx.Row) (models.Job, error) {
	var m models.Job
	err := row.Scan(
		&m.JobNo, &m.Year, &m.Status, &m.Importer, &m.Consignee, &m.CustomHouse,
		&m.ETADate, &m.EstimatedTimeOfArrival, &m.GatewayIGMFiledDate, &m.DischargedDate,
		&m.BENotedArrivalDate, &m.BENotedClearanceDate, &m.DutyPaymentDate, &m.CustomClearanceDate,
		&m.BillingDate, &m.ESanchitSubmittedDate, &m.DocumentationDoneDate, &m.SubmissionDoneDate,
		&m.DOPlanningDoneDate, &m.OperationsDoneDate,
		&m.CTHBasicDutySch, &m.CTHBasicDutyNtfn, &m.CTHIGSTAmount, &m.CTHSWSAmount, &m.CTHBCDAmount,
		&m.Version, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// bucketPredicate renders the classifier's membership rule as SQL. The column
// name comes from the stage registry, never from request input.
func bucketPredicate(bucket stages.Bucket) string {
	if bucket.Sense == stages.SenseCompleted {
		return bucket.Column + " IS NOT NULL"
	}
	return bucket.Column + " IS NULL AND status = 'Pending'"
}

// FindJobByKey retrieves a job by its (job_no, year) natural key.
func (r *PgxJobRepository) FindJobByKey(ctx context.Context, jobNo, year string) (*domain.Job, error) {
	ctx, cancel := r.opContext(ctx)
	defer cancel()

	query := `SELECT ` + jobColumns + ` FROM jobs WHERE job_no = $1 AND year = $2;`

	m, err := scanJob(r.Pool.QueryRow(ctx, query, jobNo, year))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("job " + jobNo + " not found for year " + year)
		}
		return nil, apperrors.NewAppError(500, "failed to find job "+jobNo, err)
	}

	job := mapping.ToDomainJob(m)
	return &job, nil
}

// SaveJob persists a new job. The unique (job_no, year) constraint turns a
// duplicate booking into apperrors.ErrDuplicate.
func (r *PgxJobRepository) SaveJob(ctx context.Context, job domain.Job) error {
	ctx, cancel := r.opContext(ctx)
	defer cancel()

	m := mapping.ToModelJob(job)
	query := `
		INSERT INTO jobs (` + jobColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
		        $16, $17, $18, $19, $20, $21, $22, $23, $24, $25, $26, $27, $28, $29, $30);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.JobNo, m.Year, m.Status, m.Importer, m.Consignee, m.CustomHouse,
		m.ETADate, m.EstimatedTimeOfArrival, m.GatewayIGMFiledDate, m.DischargedDate,
		m.BENotedArrivalDate, m.BENotedClearanceDate, m.DutyPaymentDate, m.CustomClearanceDate,
		m.BillingDate, m.ESanchitSubmittedDate, m.DocumentationDoneDate, m.SubmissionDoneDate,
		m.DOPlanningDoneDate, m.OperationsDoneDate,
		m.CTHBasicDutySch, m.CTHBasicDutyNtfn, m.CTHIGSTAmount, m.CTHSWSAmount, m.CTHBCDAmount,
		m.Version, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return apperrors.NewAppError(409, "job "+m.JobNo+" already exists for year "+m.Year, apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to insert job "+m.JobNo, err)
	}
	return nil
}

// patchAssignments renders the non-nil patch fields as SET clauses.
func patchAssignments(patch domain.JobPatch, args *[]any) []string {
	var sets []string
	add := func(col string, val any) {
		*args = append(*args, val)
		sets = append(sets, fmt.Sprintf("%s = $%d", col, len(*args)))
	}

	if patch.Status != nil {
		add("status", string(*patch.Status))
	}
	if patch.Importer != nil {
		add("importer", *patch.Importer)
	}
	if patch.Consignee != nil {
		add("consignee", *patch.Consignee)
	}
	if patch.CustomHouse != nil {
		add("custom_house", *patch.CustomHouse)
	}
	if patch.ETADate != nil {
		add("eta_date", *patch.ETADate)
	}
	if patch.EstimatedTimeOfArrival != nil {
		add("estimated_time_of_arrival", *patch.EstimatedTimeOfArrival)
	}
	if patch.GatewayIGMFiledDate != nil {
		add("gateway_igm_filed_date", *patch.GatewayIGMFiledDate)
	}
	if patch.DischargedDate != nil {
		add("discharged_date", *patch.DischargedDate)
	}
	if patch.BENotedArrivalDate != nil {
		add("be_noted_arrival_date", *patch.BENotedArrivalDate)
	}
	if patch.BENotedClearanceDate != nil {
		add("be_noted_clearance_date", *patch.BENotedClearanceDate)
	}
	if patch.DutyPaymentDate != nil {
		add("duty_payment_date", *patch.DutyPaymentDate)
	}
	if patch.CustomClearanceDate != nil {
		add("custom_clearance_date", *patch.CustomClearanceDate)
	}
	if patch.BillingDate != nil {
		add("billing_date", *patch.BillingDate)
	}
	if patch.ESanchitSubmittedDate != nil {
		add("esanchit_submitted_date", *patch.ESanchitSubmittedDate)
	}
	if patch.DocumentationDoneDate != nil {
		add("documentation_done_date", *patch.DocumentationDoneDate)
	}
	if patch.SubmissionDoneDate != nil {
		add("submission_done_date", *patch.SubmissionDoneDate)
	}
	if patch.DOPlanningDoneDate != nil {
		add("do_planning_done_date", *patch.DOPlanningDoneDate)
	}
	if patch.OperationsDoneDate != nil {
		add("operations_done_date", *patch.OperationsDoneDate)
	}
	return sets
}

// UpdateJob applies a field patch in one statement guarded by the version
// column. RowsAffected 0 means either the job vanished or the version is
// stale; a follow-up probe tells the two apart.
func (r *PgxJobRepository) UpdateJob(ctx context.Context, jobNo, year string, patch domain.JobPatch, expectedVersion int64, updatedBy string) (*domain.Job, error) {
	ctx, cancel := r.opContext(ctx)
	defer cancel()

	var args []any
	sets := patchAssignments(patch, &args)
	if len(sets) == 0 {
		return nil, apperrors.NewValidationError("update for job " + jobNo + " carries no fields")
	}

	args = append(args, updatedBy)
	sets = append(sets,
		"last_updated_at = NOW()",
		fmt.Sprintf("last_updated_by = $%d", len(args)),
		"version = version + 1",
	)

	args = append(args, jobNo, year, expectedVersion)
	query := fmt.Sprintf(`
		UPDATE jobs SET %s
		WHERE job_no = $%d AND year = $%d AND version = $%d
		RETURNING %s;
	`, strings.Join(sets, ", "), len(args)-2, len(args)-1, len(args), jobColumns)

	m, err := scanJob(r.Pool.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.classifyMissedUpdate(ctx, jobNo, year)
		}
		return nil, apperrors.NewAppError(500, "failed to update job "+jobNo, err)
	}

	job := mapping.ToDomainJob(m)
	return &job, nil
}

// UpdateJobDuty writes all five derived duty fields together, version-checked.
// One statement, so a concurrent stage update can never observe a half-written
// duty set.
func (r *PgxJobRepository) UpdateJobDuty(ctx context.Context, jobNo, year string, duty domain.DutyFields, expectedVersion int64, updatedBy string) (*domain.Job, error) {
	ctx, cancel := r.opContext(ctx)
	defer cancel()

	query := `
		UPDATE jobs SET
			cth_basic_duty_sch = $1, cth_basic_duty_ntfn = $2,
			cth_igst_amount = $3, cth_sws_amount = $4, cth_bcd_amount = $5,
			last_updated_at = NOW(), last_updated_by = $6, version = version + 1
		WHERE job_no = $7 AND year = $8 AND version = $9
		RETURNING ` + jobColumns + `;
	`
	m, err := scanJob(r.Pool.QueryRow(ctx, query,
		duty.CTHBasicDutySch, duty.CTHBasicDutyNtfn,
		duty.CTHIGSTAmount, duty.CTHSWSAmount, duty.CTHBCDAmount,
		updatedBy, jobNo, year, expectedVersion,
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, r.classifyMissedUpdate(ctx, jobNo, year)
		}
		return nil, apperrors.NewAppError(500, "failed to update duty fields for job "+jobNo, err)
	}

	job := mapping.ToDomainJob(m)
	return &job, nil
}

// classifyMissedUpdate distinguishes a stale version from a missing job after
// a guarded UPDATE touched no rows.
func (r *PgxJobRepository) classifyMissedUpdate(ctx context.Context, jobNo, year string) error {
	var exists bool
	err := r.Pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM jobs WHERE job_no = $1 AND year = $2);`, jobNo, year).Scan(&exists)
	if err != nil {
		return apperrors.NewAppError(500, "failed to probe job "+jobNo+" after missed update", err)
	}
	if exists {
		return apperrors.NewConflictError("job " + jobNo + " was modified concurrently, re-read and retry")
	}
	return apperrors.NewNotFoundError("job " + jobNo + " not found for year " + year)
}

// ListJobsByBucket serves one page of a stage bucket. Total and page come from
// the same predicate, so the envelope count always matches the bucket.
func (r *PgxJobRepository) ListJobsByBucket(ctx context.Context, year string, bucket stages.Bucket, params pagination.Params, search string) ([]domain.Job, int64, error) {
	ctx, cancel := r.opContext(ctx)
	defer cancel()

	where := "year = $1 AND " + bucketPredicate(bucket)
	args := []any{year}

	if search != "" {
		args = append(args, "%"+search+"%")
		n := len(args)
		where += fmt.Sprintf(" AND (job_no ILIKE $%d OR importer ILIKE $%d OR consignee ILIKE $%d)", n, n, n)
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM jobs WHERE " + where + ";"
	if err := r.Pool.QueryRow(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count bucket "+bucket.Key, err)
	}

	args = append(args, params.Limit, params.Offset())
	listQuery := fmt.Sprintf(`
		SELECT %s FROM jobs
		WHERE %s
		ORDER BY job_no
		LIMIT $%d OFFSET $%d;
	`, jobColumns, where, len(args)-1, len(args))

	rows, err := r.Pool.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to list bucket "+bucket.Key, err)
	}
	defer rows.Close()

	var jobs []models.Job
	for rows.Next() {
		m, err := scanJob(rows)
		if err != nil {
			return nil, 0, apperrors.NewAppError(500, "failed to scan job row", err)
		}
		jobs = append(jobs, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed reading bucket "+bucket.Key, err)
	}

	return mapping.ToDomainJobs(jobs), total, nil
}

// CountOverview tallies per-status totals in a single scan.
func (r *PgxJobRepository) CountOverview(ctx context.Context, year string) (domain.OverviewCounts, error) {
	ctx, cancel := r.opContext(ctx)
	defer cancel()

	query := `
		SELECT COUNT(*),
		       COUNT(*) FILTER (WHERE status = 'Pending'),
		       COUNT(*) FILTER (WHERE status = 'Completed'),
		       COUNT(*) FILTER (WHERE status = 'Cancelled')
		FROM jobs
		WHERE year = $1;
	`
	var counts domain.OverviewCounts
	err := r.Pool.QueryRow(ctx, query, year).Scan(
		&counts.TotalJobs, &counts.PendingJobs, &counts.CompletedJobs, &counts.CancelledJobs,
	)
	if err != nil {
		return domain.OverviewCounts{}, apperrors.NewAppError(500, "failed to count jobs for year "+year, err)
	}
	return counts, nil
}

// CountBucket counts the jobs currently matching one stage bucket.
func (r *PgxJobRepository) CountBucket(ctx context.Context, year string, bucket stages.Bucket) (int64, error) {
	ctx, cancel := r.opContext(ctx)
	defer cancel()

	query := "SELECT COUNT(*) FROM jobs WHERE year = $1 AND " + bucketPredicate(bucket) + ";"

	var total int64
	if err := r.Pool.QueryRow(ctx, query, year).Scan(&total); err != nil {
		return 0, apperrors.NewAppError(500, "failed to count bucket "+bucket.Key, err)
	}
	return total, nil
}
