package repository

import (
	"context"
	"time"

	"github.com/fadilmartias/ai-interviewer/internal/model"
	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type interviewDocument struct {
	ID                 string               `bson:"_id"`
	CandidateName      string               `bson:"candidateName"`
	JobRole            string               `bson:"jobRole"`
	Difficulty         string               `bson:"difficulty"`
	Duration           string               `bson:"duration"`
	TechnicalScore     int                  `bson:"technicalScore"`
	CommunicationScore int                  `bson:"communicationScore"`
	ConfidenceScore    int                  `bson:"confidenceScore"`
	Feedback           []model.FeedbackItem `bson:"feedback"`
	CreatedAt          time.Time            `bson:"createdAt"`
}

func newInterviewDocument(i *model.Interview) interviewDocument {
	return interviewDocument{
		ID:                 i.ID.String(),
		CandidateName:      i.CandidateName,
		JobRole:            i.JobRole,
		Difficulty:         i.Difficulty,
		Duration:           i.Duration,
		TechnicalScore:     i.TechnicalScore,
		CommunicationScore: i.CommunicationScore,
		ConfidenceScore:    i.ConfidenceScore,
		Feedback:           i.Feedback,
		CreatedAt:          i.CreatedAt,
	}
}

func (d interviewDocument) toModel() model.Interview {
	id, _ := uuid.Parse(d.ID)
	return model.Interview{
		ID:                 id,
		CandidateName:      d.CandidateName,
		JobRole:            d.JobRole,
		Difficulty:         d.Difficulty,
		Duration:           d.Duration,
		TechnicalScore:     d.TechnicalScore,
		CommunicationScore: d.CommunicationScore,
		ConfidenceScore:    d.ConfidenceScore,
		Feedback:           d.Feedback,
		CreatedAt:          d.CreatedAt,
	}
}

type MongoInterviewRepository struct {
	col *mongo.Collection
}

func NewMongoInterviewRepository(c *MongoClient) *MongoInterviewRepository {
	return &MongoInterviewRepository{col: c.Database().Collection(interviewsCollection)}
}

func (r *MongoInterviewRepository) CreateInterview(ctx context.Context, interview *model.Interview) error {
	if interview.ID == uuid.Nil {
		interview.ID = uuid.New()
	}
	if interview.CreatedAt.IsZero() {
		interview.CreatedAt = time.Now().UTC()
	}
	_, err := r.col.InsertOne(ctx, newInterviewDocument(interview))
	return err
}

func (r *MongoInterviewRepository) ListInterviews(ctx context.Context, offset, limit int) ([]model.Interview, int64, error) {
	total, err := r.col.CountDocuments(ctx, bson.M{})
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetSkip(int64(offset))
	if limit > 0 {
		opts.SetLimit(int64(limit))
	}

	cur, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, 0, err
	}
	defer cur.Close(ctx)

	var docs []interviewDocument
	if err := cur.All(ctx, &docs); err != nil {
		return nil, 0, err
	}

	out := make([]model.Interview, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.toModel())
	}
	return out, total, nil
}

var _ InterviewStore = (*MongoInterviewRepository)(nil)
