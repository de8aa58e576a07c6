package model

import (
	"encoding/json"
	"strings"
)

type QuestionType string

const (
	SingleChoice   QuestionType = "SINGLE"
	MultipleChoice QuestionType = "MULTIPLE"
)

// Question 問題。CompanyID が nil のものは共通ライブラリ問題で、
// 全テナントから参照できるがテナント経由では編集できない。
// Choices / Answer はレガシーの区切り文字列のまま保存する。
// swagger:model Question
type Question struct {
	BaseModel
	Type      QuestionType `gorm:"type:enum('SINGLE','MULTIPLE');default:'SINGLE'" json:"type"`
	Genre     string       `gorm:"size:100;index" json:"genre"`
	Title     string       `gorm:"type:text;not null" json:"title"`
	Choices   string       `gorm:"type:text" json:"choices"`
	Answer    string       `gorm:"size:255" json:"answer"`
	CompanyID *uint        `gorm:"index" json:"companyId"`
	Company   *Company     `gorm:"foreignKey:CompanyID" json:"company,omitempty"`
}

func (Question) TableName() string {
	return "questions"
}

// IsCommon 共通（テナント非所有）問題かどうか。
func (q *Question) IsCommon() bool {
	return q.CompanyID == nil
}

// ChoiceList 選択肢を復号して返す。
func (q *Question) ChoiceList() []string {
	return DecodeChoices(q.Choices)
}

// AnswerList 正解ラベルを復号して返す。
func (q *Question) AnswerList() []string {
	return DecodeAnswer(q.Answer)
}

// DecodeChoices 選択肢文字列を復号する。
// 先頭が "[" なら JSON 配列、それ以外は "|" 区切り。復号失敗時は
// 生文字列 1 要素にフォールバックする（エラーにはしない）。
func DecodeChoices(s string) []string {
	if s == "" {
		return []string{}
	}
	if strings.HasPrefix(s, "[") {
		var arr []string
		if err := json.Unmarshal([]byte(s), &arr); err == nil {
			return arr
		}
		return []string{s}
	}
	parts := strings.Split(s, "|")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

// DecodeAnswer 正解ラベル文字列（カンマ区切り）を復号する。空文字は空リスト。
func DecodeAnswer(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, strings.TrimSpace(p))
	}
	return out
}

// EncodeChoices 構造化された選択肢を保存形式（"|" 区切り）へ符号化する。
func EncodeChoices(choices []string) string {
	return strings.Join(choices, "|")
}

// EncodeAnswer 正解ラベルを保存形式（カンマ区切り）へ符号化する。
func EncodeAnswer(labels []string) string {
	return strings.Join(labels, ",")
}
