package repository

import (
	"time"

	"elearn_backend/internal/model"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Create(user).Error
}

func (r *UserRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	err := r.DB.First(&user, id).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) FindByUsername(username string) (*model.User, error) {
	var user model.User
	err := r.DB.Where("username = ?", username).First(&user).Error
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) ListByCompany(companyID uint) ([]model.User, error) {
	var users []model.User
	err := r.DB.Where("company_id = ?", companyID).Order("id").Find(&users).Error
	return users, err
}

func (r *UserRepository) ListAll() ([]model.User, error) {
	var users []model.User
	err := r.DB.Order("id").Find(&users).Error
	return users, err
}

func (r *UserRepository) Update(user *model.User) error {
	return r.DB.Save(user).Error
}

func (r *UserRepository) UpdateLastLogin(userID uint) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Update("last_login", time.Now()).
		Error
}

// SaveDiagnosis 診断結果のキャッシュ列のみを更新する。genreStats と推奨文は
// 保存対象外。
func (r *UserRepository) SaveDiagnosis(userID uint, patternType string, score, concentration int, growthRate float64, diagnosedAt time.Time) error {
	return r.DB.Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"pattern_type":        patternType,
			"pattern_score":       score,
			"genre_concentration": concentration,
			"growth_rate":         growthRate,
			"diagnosed_at":        diagnosedAt,
		}).Error
}
