package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DefaultCandidateName = "Anonymous"
	DefaultJobRole       = "Practice Interview"
	NotApplicable        = "N/A"
)

type FeedbackItem struct {
	Topic        string `bson:"topic" json:"topic"`
	Feedback     string `bson:"feedback" json:"feedback"`
	BetterAnswer string `bson:"better_answer" json:"better_answer"`
}

// Interview is the stored outcome of a finished session.
type Interview struct {
	ID                 uuid.UUID      `gorm:"type:uuid;primaryKey" json:"id"`
	CandidateName      string         `gorm:"type:varchar(255);not null" json:"candidateName"`
	JobRole            string         `gorm:"type:varchar(255)" json:"jobRole"`
	Difficulty         string         `gorm:"type:varchar(20)" json:"difficulty"`
	Duration           string         `gorm:"type:varchar(50)" json:"duration"`
	TechnicalScore     int            `json:"technicalScore"`
	CommunicationScore int            `json:"communicationScore"`
	ConfidenceScore    int            `json:"confidenceScore"`
	Feedback           []FeedbackItem `gorm:"type:jsonb;serializer:json" json:"feedback"`
	CreatedAt          time.Time      `gorm:"index" json:"createdAt"`
}

func (i *Interview) TableName() string {
	return "interviews"
}

func (i *Interview) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}
