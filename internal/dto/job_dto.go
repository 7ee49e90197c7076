package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateJobRequest struct {
	RoleTitle      string `json:"roleTitle"`
	JobDescription string `json:"jobDescription"`
	Difficulty     string `json:"difficulty"`
	Duration       string `json:"duration,omitempty"`
}

type CreatedJobDTO struct {
	ID         uuid.UUID `json:"id"`
	RoleTitle  string    `json:"roleTitle"`
	Difficulty string    `json:"difficulty"`
	Duration   string    `json:"duration"`
	CreatedAt  time.Time `json:"createdAt"`
}

type JobDTO struct {
	ID             uuid.UUID `json:"id"`
	RoleTitle      string    `json:"roleTitle"`
	JobDescription string    `json:"jobDescription"`
	Difficulty     string    `json:"difficulty"`
	Duration       string    `json:"duration"`
	CreatedAt      time.Time `json:"createdAt"`
}
