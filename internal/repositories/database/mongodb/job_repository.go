package mongodb

import (
	"context"
	"errors"
	"regexp"
	"time"

	"github.com/ImpexFlow/impex_backoffice_app/internal/apperrors"
	"github.com/ImpexFlow/impex_backoffice_app/internal/core/domain"
	portsrepo "github.com/ImpexFlow/impex_backoffice_app/internal/core/ports/repositories"
	"github.com/ImpexFlow/impex_backoffice_app/internal/core/stages"
	"github.com/ImpexFlow/impex_backoffice_app/internal/models"
	"github.com/ImpexFlow/impex_backoffice_app/internal/utils/mapping"
	"github.com/ImpexFlow/impex_backoffice_app/internal/utils/pagination"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const jobCollection = "jobs"

type MongoJobRepository struct {
	BaseRepository
}

// NewMongoJobRepository creates a new Mongo-backed repository for job data.
func NewMongoJobRepository(db *mongo.Database) portsrepo.JobRepositoryFacade {
	return &MongoJobRepository{BaseRepository: BaseRepository{DB: db}}
}

var _ portsrepo.JobRepositoryFacade = (*MongoJobRepository)(nil)

func jobKeyFilter(jobNo, year string) bson.M {
	return bson.M{"job_no": jobNo, "year": year}
}

// bucketFilter renders the classifier's membership rule as a bson filter.
// A pending marker matches both missing and explicit-null values.
func bucketFilter(bucket stages.Bucket) bson.M {
	if bucket.Sense == stages.SenseCompleted {
		return bson.M{bucket.Column: bson.M{"$ne": nil}}
	}
	return bson.M{bucket.Column: nil, "status": string(domain.JobStatusPending)}
}

// FindJobByKey retrieves a job by its (job_no, year) natural key.
func (r *MongoJobRepository) FindJobByKey(ctx context.Context, jobNo, year string) (*domain.Job, error) {
	ctx, cancel := r.opContext(ctx)
	defer cancel()

	var m models.Job
	err := r.DB.Collection(jobCollection).FindOne(ctx, jobKeyFilter(jobNo, year)).Decode(&m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.NewNotFoundError("job " + jobNo + " not found for year " + year)
		}
		return nil, apperrors.NewAppError(500, "failed to find job "+jobNo, err)
	}

	job := mapping.ToDomainJob(m)
	return &job, nil
}

// SaveJob persists a new job; the unique (job_no, year) index turns a
// duplicate booking into apperrors.ErrDuplicate.
func (r *MongoJobRepository) SaveJob(ctx context.Context, job domain.Job) error {
	ctx, cancel := r.opContext(ctx)
	defer cancel()

	_, err := r.DB.Collection(jobCollection).InsertOne(ctx, mapping.ToModelJob(job))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return apperrors.NewAppError(409, "job "+job.JobNo+" already exists for year "+job.Year, apperrors.ErrDuplicate)
		}
		return apperrors.NewAppError(500, "failed to insert job "+job.JobNo, err)
	}
	return nil
}

// patchDocument renders the non-nil patch fields as a $set document.
func patchDocument(patch domain.JobPatch) bson.M {
	set := bson.M{}
	setTime := func(col string, val *time.Time) {
		if val != nil {
			set[col] = *val
		}
	}

	if patch.Status != nil {
		set["status"] = string(*patch.Status)
	}
	if patch.Importer != nil {
		set["importer"] = *patch.Importer
	}
	if patch.Consignee != nil {
		set["consignee"] = *patch.Consignee
	}
	if patch.CustomHouse != nil {
		set["custom_house"] = *patch.CustomHouse
	}
	if patch.EstimatedTimeOfArrival != nil {
		set["estimated_time_of_arrival"] = *patch.EstimatedTimeOfArrival
	}
	setTime("eta_date", patch.ETADate)
	setTime("gateway_igm_filed_date", patch.GatewayIGMFiledDate)
	setTime("discharged_date", patch.DischargedDate)
	setTime("be_noted_arrival_date", patch.BENotedArrivalDate)
	setTime("be_noted_clearance_date", patch.BENotedClearanceDate)
	setTime("duty_payment_date", patch.DutyPaymentDate)
	setTime("custom_clearance_date", patch.CustomClearanceDate)
	setTime("billing_date", patch.BillingDate)
	setTime("esanchit_submitted_date", patch.ESanchitSubmittedDate)
	setTime("documentation_done_date", patch.DocumentationDoneDate)
	setTime("submission_done_date", patch.SubmissionDoneDate)
	setTime("do_planning_done_date", patch.DOPlanningDoneDate)
	setTime("operations_done_date", patch.OperationsDoneDate)
	return set
}

// guardedUpdate runs one FindOneAndUpdate with the version in the filter, so
// the field writes and the version bump land atomically on a single document.
func (r *MongoJobRepository) guardedUpdate(ctx context.Context, jobNo, year string, expectedVersion int64, set bson.M, updatedBy string) (*domain.Job, error) {
	set["last_updated_at"] = time.Now().UTC()
	set["last_updated_by"] = updatedBy

	filter := jobKeyFilter(jobNo, year)
	filter["version"] = expectedVersion

	update := bson.M{"$set": set, "$inc": bson.M{"version": 1}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var m models.Job
	err := r.DB.Collection(jobCollection).FindOneAndUpdate(ctx, filter, update, opts).Decode(&m)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, r.classifyMissedUpdate(ctx, jobNo, year)
		}
		return nil, apperrors.NewAppError(500, "failed to update job "+jobNo, err)
	}

	job := mapping.ToDomainJob(m)
	return &job, nil
}

// UpdateJob applies a field patch, version-checked.
func (r *MongoJobRepository) UpdateJob(ctx context.Context, jobNo, year string, patch domain.JobPatch, expectedVersion int64, updatedBy string) (*domain.Job, error) {
	ctx, cancel := r.opContext(ctx)
	defer cancel()

	set := patchDocument(patch)
	if len(set) == 0 {
		return nil, apperrors.NewValidationError("update for job " + jobNo + " carries no fields")
	}
	return r.guardedUpdate(ctx, jobNo, year, expectedVersion, set, updatedBy)
}

// UpdateJobDuty writes all five derived duty fields together, version-checked.
func (r *MongoJobRepository) UpdateJobDuty(ctx context.Context, jobNo, year string, duty domain.DutyFields, expectedVersion int64, updatedBy string) (*domain.Job, error) {
	ctx, cancel := r.opContext(ctx)
	defer cancel()

	set := bson.M{
		"cth_basic_duty_sch":  duty.CTHBasicDutySch,
		"cth_basic_duty_ntfn": duty.CTHBasicDutyNtfn,
		"cth_igst_amount":     duty.CTHIGSTAmount,
		"cth_sws_amount":      duty.CTHSWSAmount,
		"cth_bcd_amount":      duty.CTHBCDAmount,
	}
	return r.guardedUpdate(ctx, jobNo, year, expectedVersion, set, updatedBy)
}

// classifyMissedUpdate distinguishes a stale version from a missing job after
// a guarded update matched nothing.
func (r *MongoJobRepository) classifyMissedUpdate(ctx context.Context, jobNo, year string) error {
	n, err := r.DB.Collection(jobCollection).CountDocuments(ctx, jobKeyFilter(jobNo, year))
	if err != nil {
		return apperrors.NewAppError(500, "failed to probe job "+jobNo+" after missed update", err)
	}
	if n > 0 {
		return apperrors.NewConflictError("job " + jobNo + " was modified concurrently, re-read and retry")
	}
	return apperrors.NewNotFoundError("job " + jobNo + " not found for year " + year)
}

// ListJobsByBucket serves one page of a stage bucket.
func (r *MongoJobRepository) ListJobsByBucket(ctx context.Context, year string, bucket stages.Bucket, params pagination.Params, search string) ([]domain.Job, int64, error) {
	ctx, cancel := r.opContext(ctx)
	defer cancel()

	filter := bucketFilter(bucket)
	filter["year"] = year
	if search != "" {
		re := primitive.Regex{Pattern: regexp.QuoteMeta(search), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"job_no": re},
			bson.M{"importer": re},
			bson.M{"consignee": re},
		}
	}

	coll := r.DB.Collection(jobCollection)

	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to count bucket "+bucket.Key, err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "job_no", Value: 1}}).
		SetSkip(int64(params.Offset())).
		SetLimit(int64(params.Limit))

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed to list bucket "+bucket.Key, err)
	}
	defer cursor.Close(ctx)

	var jobs []models.Job
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, 0, apperrors.NewAppError(500, "failed reading bucket "+bucket.Key, err)
	}

	return mapping.ToDomainJobs(jobs), total, nil
}

// CountOverview tallies per-status totals from a single aggregation pass;
// the total is the sum of the parts by construction.
func (r *MongoJobRepository) CountOverview(ctx context.Context, year string) (domain.OverviewCounts, error) {
	ctx, cancel := r.opContext(ctx)
	defer cancel()

	pipeline := mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"year": year}}},
		{{Key: "$group", Value: bson.M{"_id": "$status", "count": bson.M{"$sum": 1}}}},
	}

	cursor, err := r.DB.Collection(jobCollection).Aggregate(ctx, pipeline)
	if err != nil {
		return domain.OverviewCounts{}, apperrors.NewAppError(500, "failed to count jobs for year "+year, err)
	}
	defer cursor.Close(ctx)

	var rows []struct {
		Status string `bson:"_id"`
		Count  int64  `bson:"count"`
	}
	if err := cursor.All(ctx, &rows); err != nil {
		return domain.OverviewCounts{}, apperrors.NewAppError(500, "failed reading status counts", err)
	}

	var counts domain.OverviewCounts
	for _, row := range rows {
		switch domain.JobStatus(row.Status) {
		case domain.JobStatusPending:
			counts.PendingJobs = row.Count
		case domain.JobStatusCompleted:
			counts.CompletedJobs = row.Count
		case domain.JobStatusCancelled:
			counts.CancelledJobs = row.Count
		}
		counts.TotalJobs += row.Count
	}
	return counts, nil
}

// CountBucket counts the jobs currently matching one stage bucket.
func (r *MongoJobRepository) CountBucket(ctx context.Context, year string, bucket stages.Bucket) (int64, error) {
	ctx, cancel := r.opContext(ctx)
	defer cancel()

	filter := bucketFilter(bucket)
	filter["year"] = year

	total, err := r.DB.Collection(jobCollection).CountDocuments(ctx, filter)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to count bucket "+bucket.Key, err)
	}
	return total, nil
}
