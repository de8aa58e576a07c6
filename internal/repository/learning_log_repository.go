package repository

import (
	"elearn_backend/internal/model"

	"gorm.io/gorm"
)

type LearningLogRepository struct {
	DB *gorm.DB
}

func NewLearningLogRepository(db *gorm.DB) *LearningLogRepository {
	return &LearningLogRepository{DB: db}
}

// CreateBatch 1 回のクイズ提出分の履歴をまとめて追記する。
func (r *LearningLogRepository) CreateBatch(logs []model.LearningLog) error {
	if len(logs) == 0 {
		return nil
	}
	return r.DB.Create(&logs).Error
}

// FindByUserAsc 診断入力用。時刻昇順、問題（ジャンル参照用）を同時読み込みする。
func (r *LearningLogRepository) FindByUserAsc(userID uint) ([]model.LearningLog, error) {
	var logs []model.LearningLog
	err := r.DB.Where("user_id = ?", userID).
		Preload("Question").
		Order("created_at ASC, id ASC").
		Find(&logs).Error
	return logs, err
}

func (r *LearningLogRepository) CountByUser(userID uint) (int64, error) {
	var count int64
	err := r.DB.Model(&model.LearningLog{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
