package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/ImpexFlow/impex_backoffice_app/internal/apperrors"
	"github.com/ImpexFlow/impex_backoffice_app/internal/core/domain"
	portsrepo "github.com/ImpexFlow/impex_backoffice_app/internal/core/ports/repositories"
	"github.com/ImpexFlow/impex_backoffice_app/internal/models"
	"github.com/ImpexFlow/impex_backoffice_app/internal/utils/mapping"
	"github.com/ImpexFlow/impex_backoffice_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const tariffColumns = `
	hs_code, item_description, unit, basic_duty_sch, basic_duty_ntfn, igst, sws,
	created_at, created_by, last_updated_at, last_updated_by`

// PgxTariffRepository reads the tariff reference table. There are no write
// methods: the tariff directory collaborator owns the data.
type PgxTariffRepository struct {
	BaseRepository
}

// NewPgxTariffRepository creates a new repository for tariff reference data.
func NewPgxTariffRepository(pool *pgxpool.Pool) portsrepo.TariffRepositoryFacade {
	return &PgxTariffRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TariffRepositoryFacade = (*PgxTariffRepository)(nil)

func scanTariff(row pgx.Row) (models.TariffEntry, error) {
	var m models.TariffEntry
	err := row.Scan(
		&m.HSCode, &m.ItemDescription, &m.Unit,
		&m.BasicDutySch, &m.BasicDutyNtfn, &m.IGST, &m.SWS,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}

// FindTariffByHSCode retrieves one tariff entry by HS code.
func (r *PgxTariffRepository) FindTariffByHSCode(ctx context.Context, hsCode string) (*domain.TariffEntry, error) {
	ctx, cancel := r.opContext(ctx)
	defer cancel()

	query := `SELECT ` + tariffColumns + ` FROM tariff_entries WHERE hs_code = $1;`

	m, err := scanTariff(r.Pool.QueryRow(ctx, query, hsCode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError("tariff entry " + hsCode + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find tariff entry "+hsCode, err)
	}

	entry := mapping.ToDomainTariffEntry(m)
	return &entry, nil
}

// ListTariffs serves one page of the tariff directory.
func (r *PgxTariffRepository) ListTariffs(ctx context.Context, search string, params pagination.Params) ([]domain.TariffEntry, int64, error) {
	ctx, cancel := r.opContext(ctx)
	defer cancel()

	where := "TRUE"
	var args []any
	if search != "" {
		args = append(args, "%"+search+"%")
		where = "(hs_code ILIKE $1 OR item_description ILIKE $1)"
	}

	var total int64
	if err := r.Pool.QueryRow(ctx, "SELECT COUNT(*) FROM tariff_entries WHERE "+where+";", args...).Scan(&total); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count tariff entries", err)
	}

	args = append(args, params.Limit, params.Offset())
	listQuery := fmt.Sprintf(`
		SELECT %s FROM tariff_entries
		WHERE %s
		ORDER BY hs_code
		LIMIT $%d OFFSET $%d;
	`, tariffColumns, where, len(args)-1, len(args))

	rows, err := r.Pool.Query(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to list tariff entries", err)
	}
	defer rows.Close()

	var entries []models.TariffEntry
	for rows.Next() {
		m, err := scanTariff(rows)
		if err != nil {
			return nil, 0, apperrors.NewAppError(500, "failed to scan tariff row", err)
		}
		entries = append(entries, m)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed reading tariff entries", err)
	}

	return mapping.ToDomainTariffEntries(entries), total, nil
}
