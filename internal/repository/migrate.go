package repository

import (
	"github.com/fadilmartias/ai-interviewer/internal/model"
	"gorm.io/gorm"
)

func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(&model.Job{}, &model.Interview{})
}
