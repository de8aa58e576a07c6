package service

import (
	"errors"

	"elearn_backend/internal/model"
	"elearn_backend/internal/repository"
	"elearn_backend/internal/util"

	"gorm.io/gorm"
)

// QuestionService 問題バンク。呼び出し元のテナントに応じた可視範囲の解決と、
// 所有権に基づく変更権限の判定を担う。
type QuestionService struct {
	QuestionRepo *repository.QuestionRepository
}

func NewQuestionService(questionRepo *repository.QuestionRepository) *QuestionService {
	return &QuestionService{QuestionRepo: questionRepo}
}

// QuestionInput 問題作成の入力。選択肢・正解は構造化リストで受け取り、
// 保存時にレガシー形式へ符号化する。
type QuestionInput struct {
	Type    model.QuestionType `json:"type"`
	Genre   string             `json:"genre"`
	Title   string             `json:"title" binding:"required"`
	Choices []string           `json:"choices"`
	Answer  []string           `json:"answer"`
	Common  bool               `json:"common"`
}

// QuestionPatch 部分更新。nil のフィールドは変更しない。
// id と company はパッチでは決して変更できない。
type QuestionPatch struct {
	Type    *model.QuestionType `json:"type"`
	Genre   *string             `json:"genre"`
	Title   *string             `json:"title"`
	Choices []string            `json:"choices"`
	Answer  []string            `json:"answer"`
}

// canModifyQuestion MASTER は全問題、それ以外は自社所有の問題のみ変更できる。
// 共通問題（company なし）はテナント経由では変更不可。
func canModifyQuestion(caller model.Caller, q *model.Question) bool {
	if caller.IsMaster() {
		return true
	}
	return q.CompanyID != nil && *q.CompanyID == caller.CompanyID
}

func applyQuestionPatch(q *model.Question, patch QuestionPatch) {
	if patch.Type != nil {
		q.Type = *patch.Type
	}
	if patch.Genre != nil {
		q.Genre = *patch.Genre
	}
	if patch.Title != nil {
		q.Title = *patch.Title
	}
	if patch.Choices != nil {
		q.Choices = model.EncodeChoices(patch.Choices)
	}
	if patch.Answer != nil {
		q.Answer = model.EncodeAnswer(patch.Answer)
	}
}

// ListGenres 可視範囲（自社所有 ∪ 共通）に存在するジャンルの重複なし一覧。
func (s *QuestionService) ListGenres(caller model.Caller) ([]string, error) {
	return s.QuestionRepo.DistinctGenres(caller.CompanyID)
}

// ListQuizQuestions ジャンル一致の問題を最大 count 件返す。不足時はある分だけ。
func (s *QuestionService) ListQuizQuestions(caller model.Caller, genre string, count int) ([]model.Question, error) {
	if count <= 0 {
		count = util.DefaultQuizCount
	}
	if count > util.MaxQuizCount {
		count = util.MaxQuizCount
	}
	return s.QuestionRepo.FindVisibleByGenre(caller.CompanyID, genre, count)
}

// ListAll MASTER は全問題、それ以外は可視範囲を所有会社付きで返す。
func (s *QuestionService) ListAll(caller model.Caller) ([]model.Question, error) {
	if caller.IsMaster() {
		return s.QuestionRepo.ListAll()
	}
	return s.QuestionRepo.ListVisible(caller.CompanyID)
}

// ListCommon 共通ライブラリ問題のみ。テナントに依存しない。
func (s *QuestionService) ListCommon() ([]model.Question, error) {
	return s.QuestionRepo.ListCommon()
}

// Create 新しい問題を作成する。共通問題を作れるのは MASTER だけ。
func (s *QuestionService) Create(caller model.Caller, input QuestionInput) (*model.Question, error) {
	q := &model.Question{
		Type:    input.Type,
		Genre:   input.Genre,
		Title:   input.Title,
		Choices: model.EncodeChoices(input.Choices),
		Answer:  model.EncodeAnswer(input.Answer),
	}
	if q.Type == "" {
		q.Type = model.SingleChoice
	}
	if input.Common {
		if !caller.IsMaster() {
			return nil, util.ErrPermissionDenied
		}
	} else {
		companyID := caller.CompanyID
		q.CompanyID = &companyID
	}
	if err := s.QuestionRepo.Create(q); err != nil {
		return nil, err
	}
	return q, nil
}

// Update 単一行の read-check-write を 1 トランザクションで行う。
// 存在しなければ NotFound、権限がなければ Forbidden。
func (s *QuestionService) Update(id uint, patch QuestionPatch, caller model.Caller) (*model.Question, error) {
	var q model.Question
	err := s.QuestionRepo.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&q, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.ErrQuestionNotFound
			}
			return err
		}
		if !canModifyQuestion(caller, &q) {
			return util.ErrPermissionDenied
		}
		applyQuestionPatch(&q, patch)
		return tx.Save(&q).Error
	})
	if err != nil {
		return nil, err
	}
	return &q, nil
}

// CopyToCompany 問題を呼び出し元の会社へ複製する。共通問題をテナントで
// 編集可能にする唯一の経路で、元の行は一切変更しない。
func (s *QuestionService) CopyToCompany(id uint, caller model.Caller) (*model.Question, error) {
	var copied model.Question
	err := s.QuestionRepo.DB.Transaction(func(tx *gorm.DB) error {
		var src model.Question
		if err := tx.First(&src, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.ErrQuestionNotFound
			}
			return err
		}
		companyID := caller.CompanyID
		copied = model.Question{
			Type:      src.Type,
			Genre:     src.Genre,
			Title:     src.Title,
			Choices:   src.Choices,
			Answer:    src.Answer,
			CompanyID: &companyID,
		}
		return tx.Create(&copied).Error
	})
	if err != nil {
		return nil, err
	}
	return &copied, nil
}

// Remove 問題を削除する。権限判定は Update と同じ。
func (s *QuestionService) Remove(id uint, caller model.Caller) error {
	return s.QuestionRepo.DB.Transaction(func(tx *gorm.DB) error {
		var q model.Question
		if err := tx.First(&q, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return util.ErrQuestionNotFound
			}
			return err
		}
		if !canModifyQuestion(caller, &q) {
			return util.ErrPermissionDenied
		}
		return tx.Delete(&q).Error
	})
}
