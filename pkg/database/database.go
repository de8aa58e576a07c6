package database

import (
	"fmt"
	"log"

	"elearn_backend/internal/config"
	"elearn_backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func InitDB(cfg *config.DatabaseConfig) (*gorm.DB, error) {
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?charset=%s&parseTime=%t&loc=Local",
		cfg.User,
		cfg.Password,
		cfg.Host,
		cfg.Port,
		cfg.DBName,
		cfg.Charset,
		cfg.ParseTime,
	)

	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	})

	if err != nil {
		return nil, err
	}

	log.Println("Database connection established")

	err = db.AutoMigrate(
		&model.Company{},
		&model.Department{},
		&model.Section{},
		&model.User{},
		&model.Question{},
		&model.LearningLog{},
		&model.Course{},
	)

	if err != nil {
		return nil, err
	}

	log.Println("Database migration completed")

	if err := seedDefaults(db); err != nil {
		return nil, err
	}

	return db, nil
}

// seedDefaults 初回起動時の最低限のデータ投入。運用会社とマスターアカウント、
// 共通ライブラリのサンプル問題を空のときだけ作成する。
func seedDefaults(db *gorm.DB) error {
	var companyCount int64
	db.Model(&model.Company{}).Count(&companyCount)
	if companyCount == 0 {
		db.Create(&model.Company{Name: "運営会社", Active: true})
	}

	var masterCount int64
	db.Model(&model.User{}).Where("role = ?", model.RoleMaster).Count(&masterCount)
	if masterCount == 0 {
		var company model.Company
		if err := db.Order("id").First(&company).Error; err != nil {
			return err
		}
		hashed, err := bcrypt.GenerateFromPassword([]byte("ChangeMe123!"), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		db.Create(&model.User{
			Username:  "master",
			Password:  string(hashed),
			Role:      model.RoleMaster,
			CompanyID: company.ID,
			Active:    true,
		})
		log.Println("Seeded master account (username: master) - change the password immediately")
	}

	var questionCount int64
	db.Model(&model.Question{}).Where("company_id IS NULL").Count(&questionCount)
	if questionCount == 0 {
		defaults := []model.Question{
			{
				Type:    model.SingleChoice,
				Genre:   "情報セキュリティ",
				Title:   "パスワードの取り扱いとして最も適切なものはどれですか。",
				Choices: model.EncodeChoices([]string{"A:付箋に書いて貼る", "B:同僚と共有する", "C:パスワードマネージャーで管理する", "D:全サービスで同じものを使う"}),
				Answer:  model.EncodeAnswer([]string{"C"}),
			},
			{
				Type:    model.MultipleChoice,
				Genre:   "情報セキュリティ",
				Title:   "フィッシングメールの特徴として当てはまるものをすべて選んでください。",
				Choices: model.EncodeChoices([]string{"A:緊急性をあおる文面", "B:不審なリンク", "C:送信元ドメインの偽装", "D:社内ポータルからの定期通知"}),
				Answer:  model.EncodeAnswer([]string{"A", "B", "C"}),
			},
			{
				Type:    model.SingleChoice,
				Genre:   "ビジネスマナー",
				Title:   "名刺交換の際、名刺を受け取るときの正しい作法はどれですか。",
				Choices: model.EncodeChoices([]string{"A:片手で受け取る", "B:両手で受け取る", "C:すぐにポケットへしまう", "D:机の上に置いたまま受け取る"}),
				Answer:  model.EncodeAnswer([]string{"B"}),
			},
		}
		for _, q := range defaults {
			db.Create(&q)
		}
	}

	return nil
}
