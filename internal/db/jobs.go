package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/joblane/joblane/internal/models"
)

var ErrJobNotFound = errors.New("db: job not found")

// JobStore persists listings in the jobs collection.
type JobStore struct {
	coll *mongo.Collection
}

func NewJobStore(m *Mongo) *JobStore {
	return &JobStore{coll: m.Jobs}
}

func (s *JobStore) Insert(ctx context.Context, job *models.Job) error {
	now := time.Now().UTC()
	job.ID = primitive.NewObjectID()
	job.CreatedAt = now
	job.UpdatedAt = now

	if _, err := s.coll.InsertOne(ctx, job); err != nil {
		return fmt.Errorf("insert job: %w", err)
	}
	return nil
}

// List returns listings newest first.
func (s *JobStore) List(ctx context.Context) ([]models.Job, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("list jobs: %w", err)
	}
	defer cursor.Close(ctx)

	jobs := make([]models.Job, 0)
	if err := cursor.All(ctx, &jobs); err != nil {
		return nil, fmt.Errorf("decode jobs: %w", err)
	}
	return jobs, nil
}

func (s *JobStore) FindByID(ctx context.Context, id string) (*models.Job, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrJobNotFound
	}

	var job models.Job
	if err := s.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&job); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, ErrJobNotFound
		}
		return nil, fmt.Errorf("find job by id: %w", err)
	}
	return &job, nil
}

// Update replaces the mutable fields of an existing listing.
func (s *JobStore) Update(ctx context.Context, id string, job *models.Job) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrJobNotFound
	}

	update := bson.M{"$set": bson.M{
		"title":       job.Title,
		"type":        job.Type,
		"description": job.Description,
		"company":     job.Company,
		"location":    job.Location,
		"salary":      job.Salary,
		"updatedAt":   time.Now().UTC(),
	}}

	result, err := s.coll.UpdateByID(ctx, oid, update)
	if err != nil {
		return fmt.Errorf("update job: %w", err)
	}
	if result.MatchedCount == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (s *JobStore) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrJobNotFound
	}

	result, err := s.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return fmt.Errorf("delete job: %w", err)
	}
	if result.DeletedCount == 0 {
		return ErrJobNotFound
	}
	return nil
}
