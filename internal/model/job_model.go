package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"

	DurationShort    = "Short (15 min)"
	DurationStandard = "Standard (30 min)"
	DurationDeepDive = "Deep Dive (60 min)"
)

var (
	Difficulties = []string{DifficultyEasy, DifficultyMedium, DifficultyHard}
	Durations    = []string{DurationShort, DurationStandard, DurationDeepDive}
)

// Job is a recruiter posting. It is never updated once created.
type Job struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	RoleTitle      string    `gorm:"type:varchar(255);not null" json:"roleTitle"`
	JobDescription string    `gorm:"type:text;not null" json:"jobDescription"`
	Difficulty     string    `gorm:"type:varchar(20);not null" json:"difficulty"`
	Duration       string    `gorm:"type:varchar(50);not null" json:"duration"`
	CreatedAt      time.Time `json:"createdAt"`
}

func (j *Job) TableName() string {
	return "jobs"
}

func (j *Job) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return nil
}

// Context returns the slice of the job that is fed to interview prompts.
func (j *Job) Context() *JobContext {
	return &JobContext{
		RoleTitle:      j.RoleTitle,
		JobDescription: j.JobDescription,
		Difficulty:     j.Difficulty,
	}
}

func IsValidDifficulty(d string) bool {
	return contains(Difficulties, d)
}

func IsValidDuration(d string) bool {
	return contains(Durations, d)
}

func contains(values []string, v string) bool {
	for _, s := range values {
		if s == v {
			return true
		}
	}
	return false
}
