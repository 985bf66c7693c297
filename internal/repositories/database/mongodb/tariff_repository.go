package mongodb

import (
	"context"
	"errors"
	"regexp"

	"github.com/ImpexFlow/impex_backoffice_app/internal/apperrors"
	"github.com/ImpexFlow/impex_backoffice_app/internal/core/domain"
	portsrepo "github.com/ImpexFlow/impex_backoffice_app/internal/core/ports/repositories"
	"github.com/ImpexFlow/impex_backoffice_app/internal/models"
	"github.com/ImpexFlow/impex_backoffice_app/internal/utils/mapping"
	"github.com/ImpexFlow/impex_backoffice_app/internal/utils/pagination"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const tariffCollection = "tariff_entries"

// MongoTariffRepository reads the tariff reference collection.
type MongoTariffRepository struct {
	BaseRepository
}

// NewMongoTariffRepository creates a new Mongo-backed tariff repository.
func NewMongoTariffRepository(db *mongo.Database) portsrepo.TariffRepositoryFacade {
	return &MongoTariffRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.TariffRepositoryFacade = (*MongoTariffRepository)(nil)

// FindTariffByHSCode retrieves one tariff entry by HS code.
func (r *MongoTariffRepository) FindTariffByHSCode(ctx context.Context, hsCode string) (*domain.TariffEntry, error) {
	ctx, cancel := r.opContext(ctx)
	defer cancel()

	var m models.TariffEntry
	err := r.DB.Collection(tariffCollection).FindOne(ctx, bson.M{"hs_code": hsCode}).Decode(&m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewNotFoundError("tariff entry " + hsCode + " not found")
		}
		return nil, apperrors.NewAppError(500, "failed to find tariff entry "+hsCode, err)
	}

	entry := mapping.ToDomainTariffEntry(m)
	return &entry, nil
}

// ListTariffs serves one page of the tariff directory.
func (r *MongoTariffRepository) ListTariffs(ctx context.Context, search string, params pagination.Params) ([]domain.TariffEntry, int64, error) {
	ctx, cancel := r.opContext(ctx)
	defer cancel()

	filter := bson.M{}
	if search != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"hs_code": re},
			bson.M{"item_description": re},
		}
	}

	coll := r.DB.Collection(tariffCollection)

	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count tariff entries", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "hs_code", Value: 1}}).
		SetSkip(int64(params.Offset())).
		SetLimit(int64(params.Limit))

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to list tariff entries", err)
	}
	defer cursor.Close(ctx)

	var entries []models.TariffEntry
	if err := cursor.All(ctx, &entries); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed reading tariff entries", err)
	}

	return mapping.ToDomainTariffEntries(entries), total, nil
}
