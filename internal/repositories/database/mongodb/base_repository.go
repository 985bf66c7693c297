package mongodb

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
)

// queryTimeout bounds every repository operation, mirroring the pgsql side.
const queryTimeout = 5 * time.Second

// BaseRepository provides common functionality for all Mongo repositories.
type BaseRepository struct {
	DB *mongo.Database
}

// opContext derives the bounded context used for a single store operation.
func (r *BaseRepository) opContext(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, queryTimeout)
}
