package pgsql

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// queryTimeout bounds every repository operation. An operation that cannot
// finish in time fails cleanly; retrying is the caller's decision.
const queryTimeout = 5 * time.Second

// BaseRepository provides common functionality for all repositories.
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// opContext derives the bounded context used for a single store operation.
func (r *BaseRepository) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, queryTimeout)
}
