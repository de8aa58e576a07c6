package service

import (
	"math"

	"elearn_backend/internal/model"
	"elearn_backend/internal/repository"
	"elearn_backend/internal/util"
)

// QuizService クイズ提出の採点と学習履歴の追記。履歴は追記のみで、
// 提出後に書き換えられることはない。
type QuizService struct {
	QuestionRepo    *repository.QuestionRepository
	LearningLogRepo *repository.LearningLogRepository
	UserRepo        *repository.UserRepository
}

func NewQuizService(questionRepo *repository.QuestionRepository, logRepo *repository.LearningLogRepository, userRepo *repository.UserRepository) *QuizService {
	return &QuizService{
		QuestionRepo:    questionRepo,
		LearningLogRepo: logRepo,
		UserRepo:        userRepo,
	}
}

// AnswerSubmission 1 問分の回答。Selected は選択肢ラベルのリスト。
type AnswerSubmission struct {
	QuestionID uint     `json:"questionId" binding:"required"`
	Selected   []string `json:"selected"`
}

type QuestionResult struct {
	QuestionID    uint     `json:"questionId"`
	Correct       bool     `json:"correct"`
	CorrectAnswer []string `json:"correctAnswer"`
}

type QuizResult struct {
	SessionID    string           `json:"sessionId"`
	Total        int              `json:"total"`
	CorrectCount int              `json:"correctCount"`
	Score        int              `json:"score"`
	Results      []QuestionResult `json:"results"`
}

// gradeAnswer SINGLE は正解ラベル 1 つとの一致、MULTIPLE は正解集合との
// 完全一致（順序・重複は無視）で判定する。
func gradeAnswer(qType model.QuestionType, correct, selected []string) bool {
	if len(correct) == 0 {
		return false
	}
	if qType == model.MultipleChoice {
		return labelSetEqual(correct, selected)
	}
	return len(selected) == 1 && selected[0] == correct[0]
}

func labelSetEqual(a, b []string) bool {
	setA := make(map[string]bool, len(a))
	for _, v := range a {
		setA[v] = true
	}
	setB := make(map[string]bool, len(b))
	for _, v := range b {
		setB[v] = true
	}
	if len(setA) != len(setB) {
		return false
	}
	for v := range setA {
		if !setB[v] {
			return false
		}
	}
	return true
}

// Submit 提出された回答を採点し、1 問 1 行で履歴に追記する。可視範囲外の
// 問題 ID は存在しないものとして扱う。
func (s *QuizService) Submit(caller model.Caller, submissions []AnswerSubmission) (*QuizResult, error) {
	if len(submissions) == 0 {
		return &QuizResult{SessionID: model.GenerateUUID(), Results: []QuestionResult{}}, nil
	}

	ids := make([]uint, 0, len(submissions))
	for _, sub := range submissions {
		ids = append(ids, sub.QuestionID)
	}
	questions, err := s.QuestionRepo.FindByIDs(ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uint]*model.Question, len(questions))
	for i := range questions {
		byID[questions[i].ID] = &questions[i]
	}

	sessionID := model.GenerateUUID()
	result := &QuizResult{
		SessionID: sessionID,
		Total:     len(submissions),
		Results:   make([]QuestionResult, 0, len(submissions)),
	}
	logs := make([]model.LearningLog, 0, len(submissions))

	for _, sub := range submissions {
		q, ok := byID[sub.QuestionID]
		if !ok || !visibleTo(caller, q) {
			return nil, util.ErrQuestionNotFound
		}
		answer := q.AnswerList()
		correct := gradeAnswer(q.Type, answer, sub.Selected)
		if correct {
			result.CorrectCount++
		}
		result.Results = append(result.Results, QuestionResult{
			QuestionID:    q.ID,
			Correct:       correct,
			CorrectAnswer: answer,
		})
		logs = append(logs, model.LearningLog{
			UserID:     caller.UserID,
			QuestionID: q.ID,
			IsCorrect:  correct,
			SessionID:  sessionID,
		})
	}

	if err := s.LearningLogRepo.CreateBatch(logs); err != nil {
		return nil, err
	}

	result.Score = int(math.Round(100 * float64(result.CorrectCount) / float64(result.Total)))
	return result, nil
}

// visibleTo 自社所有または共通の問題だけが見える。MASTER は全件。
func visibleTo(caller model.Caller, q *model.Question) bool {
	if caller.IsMaster() || q.IsCommon() {
		return true
	}
	return *q.CompanyID == caller.CompanyID
}

// History 学習履歴を時刻昇順で返す。本人以外の履歴は同じ会社の管理者
// （または MASTER）のみ参照できる。
func (s *QuizService) History(caller model.Caller, targetUserID uint) ([]model.LearningLog, error) {
	if targetUserID != caller.UserID {
		if !caller.IsAdmin() {
			return nil, util.ErrPermissionDenied
		}
		target, err := s.UserRepo.FindByID(targetUserID)
		if err != nil {
			return nil, util.ErrUserNotFound
		}
		if !caller.IsMaster() && target.CompanyID != caller.CompanyID {
			return nil, util.ErrPermissionDenied
		}
	}
	return s.LearningLogRepo.FindByUserAsc(targetUserID)
}
