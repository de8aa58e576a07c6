package repository

import (
	"elearn_backend/internal/model"

	"gorm.io/gorm"
)

type QuestionRepository struct {
	DB *gorm.DB
}

func NewQuestionRepository(db *gorm.DB) *QuestionRepository {
	return &QuestionRepository{DB: db}
}

func (r *QuestionRepository) Create(q *model.Question) error {
	return r.DB.Create(q).Error
}

func (r *QuestionRepository) FindByID(id uint) (*model.Question, error) {
	var q model.Question
	err := r.DB.First(&q, id).Error
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// visibleScope テナント所有 ∪ 共通（company_id IS NULL）の可視集合。
func (r *QuestionRepository) visibleScope(companyID uint) *gorm.DB {
	return r.DB.Where("company_id = ? OR company_id IS NULL", companyID)
}

// DistinctGenres 可視集合に含まれるジャンルの重複なし一覧。空文字は除外する。
func (r *QuestionRepository) DistinctGenres(companyID uint) ([]string, error) {
	var genres []string
	err := r.visibleScope(companyID).
		Model(&model.Question{}).
		Where("genre <> ''").
		Distinct("genre").
		Order("genre").
		Pluck("genre", &genres).Error
	return genres, err
}

// FindVisibleByGenre 可視集合からジャンル一致の問題を最大 limit 件返す。
// 件数が足りない場合はある分だけ返す。順序は id 昇順で決定的にする。
func (r *QuestionRepository) FindVisibleByGenre(companyID uint, genre string, limit int) ([]model.Question, error) {
	var questions []model.Question
	err := r.visibleScope(companyID).
		Where("genre = ?", genre).
		Order("id").
		Limit(limit).
		Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) ListVisible(companyID uint) ([]model.Question, error) {
	var questions []model.Question
	err := r.visibleScope(companyID).
		Preload("Company").
		Order("id").
		Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) ListAll() ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.Preload("Company").Order("id").Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) ListCommon() ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.Where("company_id IS NULL").Order("id").Find(&questions).Error
	return questions, err
}

func (r *QuestionRepository) FindByIDs(ids []uint) ([]model.Question, error) {
	var questions []model.Question
	err := r.DB.Where("id IN ?", ids).Find(&questions).Error
	return questions, err
}
