package repository

import (
	"context"
	"errors"
	"time"

	"github.com/fadilmartias/ai-interviewer/internal/model"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type jobDocument struct {
	ID             string    `bson:"_id"`
	RoleTitle      string    `bson:"roleTitle"`
	JobDescription string    `bson:"jobDescription"`
	Difficulty     string    `bson:"difficulty"`
	Duration       string    `bson:"duration"`
	CreatedAt      time.Time `bson:"createdAt"`
}

func newJobDocument(j *model.Job) jobDocument {
	return jobDocument{
		ID:             j.ID.String(),
		RoleTitle:      j.RoleTitle,
		JobDescription: j.JobDescription,
		Difficulty:     j.Difficulty,
		Duration:       j.Duration,
		CreatedAt:      j.CreatedAt,
	}
}

func (d jobDocument) toModel() (*model.Job, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return nil, err
	}
	return &model.Job{
		ID:             id,
		RoleTitle:      d.RoleTitle,
		JobDescription: d.JobDescription,
		Difficulty:     d.Difficulty,
		Duration:       d.Duration,
		CreatedAt:      d.CreatedAt,
	}, nil
}

type MongoJobRepository struct {
	col *mongo.Collection
}

func NewMongoJobRepository(c *MongoClient) *MongoJobRepository {
	return &MongoJobRepository{col: c.Database().Collection(jobsCollection)}
}

func (r *MongoJobRepository) CreateJob(ctx context.Context, job *model.Job) error {
	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now().UTC()
	}
	_, err := r.col.InsertOne(ctx, newJobDocument(job))
	return err
}

func (r *MongoJobRepository) FindJobByID(ctx context.Context, id string) (*model.Job, error) {
	var doc jobDocument
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return doc.toModel()
}

var _ JobStore = (*MongoJobRepository)(nil)
