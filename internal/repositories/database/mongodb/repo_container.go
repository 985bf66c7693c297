package mongodb

import (
	portsrepo "github.com/ImpexFlow/impex_backoffice_app/internal/core/ports/repositories"
	"go.mongodb.org/mongo-driver/mongo"
)

// NewRepositoryProvider builds the MongoDB-backed repository set.
func NewRepositoryProvider(db *mongo.Database) *portsrepo.RepositoryProvider {
	return &portsrepo.RepositoryProvider{
		JobRepo:    NewMongoJobRepository(db),
		TariffRepo: NewMongoTariffRepository(db),
	}
}
