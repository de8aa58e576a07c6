package model

import (
	"time"
)

// LearningLog 学習履歴。回答 1 件につき 1 行、追記のみで更新・削除はしない。
// SessionID は 1 回のクイズ提出をまとめる識別子。
type LearningLog struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     uint      `gorm:"index;not null" json:"userId"`
	QuestionID uint      `gorm:"index;not null" json:"questionId"`
	Question   *Question `gorm:"foreignKey:QuestionID" json:"question,omitempty"`
	IsCorrect  bool      `gorm:"not null" json:"isCorrect"`
	SessionID  string    `gorm:"size:36;index" json:"sessionId"`
	CreatedAt  time.Time `json:"createdAt"`
}

func (LearningLog) TableName() string {
	return "learning_logs"
}
