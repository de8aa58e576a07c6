package service

import (
	"testing"

	"elearn_backend/internal/model"

	"github.com/stretchr/testify/assert"
)

func TestCanModifyQuestion(t *testing.T) {
	companyA := uint(1)
	companyB := uint(2)
	owned := &model.Question{CompanyID: &companyA}
	foreign := &model.Question{CompanyID: &companyB}
	common := &model.Question{}

	tests := []struct {
		name   string
		caller model.Caller
		q      *model.Question
		want   bool
	}{
		{"master modifies any tenant question", model.Caller{Role: model.RoleMaster, CompanyID: 99}, foreign, true},
		{"master modifies common question", model.Caller{Role: model.RoleMaster, CompanyID: 99}, common, true},
		{"admin modifies own company question", model.Caller{Role: model.RoleAdmin, CompanyID: companyA}, owned, true},
		{"admin cannot modify other company question", model.Caller{Role: model.RoleAdmin, CompanyID: companyA}, foreign, false},
		{"admin cannot modify common question", model.Caller{Role: model.RoleAdmin, CompanyID: companyA}, common, false},
		{"super admin bound to own company too", model.Caller{Role: model.RoleSuperAdmin, CompanyID: companyB}, owned, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := canModifyQuestion(tt.caller, tt.q); got != tt.want {
				t.Errorf("canModifyQuestion(%v) = %v, want %v", tt.caller.Role, got, tt.want)
			}
		})
	}
}

func TestApplyQuestionPatch_PartialUpdate(t *testing.T) {
	companyA := uint(1)
	q := model.Question{
		Type:      model.SingleChoice,
		Genre:     "歴史",
		Title:     "旧タイトル",
		Choices:   "A:x|B:y",
		Answer:    "A",
		CompanyID: &companyA,
	}
	q.ID = 42

	newTitle := "新タイトル"
	applyQuestionPatch(&q, QuestionPatch{Title: &newTitle})

	assert.Equal(t, "新タイトル", q.Title)
	assert.Equal(t, "歴史", q.Genre)
	assert.Equal(t, "A:x|B:y", q.Choices)
	assert.Equal(t, "A", q.Answer)
	assert.Equal(t, model.SingleChoice, q.Type)
}

func TestApplyQuestionPatch_FullUpdateKeepsIdentity(t *testing.T) {
	companyA := uint(1)
	q := model.Question{
		Type:      model.SingleChoice,
		Genre:     "歴史",
		Title:     "旧タイトル",
		Choices:   "A:x|B:y",
		Answer:    "A",
		CompanyID: &companyA,
	}
	q.ID = 42

	newType := model.MultipleChoice
	genre := "地理"
	title := "新タイトル"
	applyQuestionPatch(&q, QuestionPatch{
		Type:    &newType,
		Genre:   &genre,
		Title:   &title,
		Choices: []string{"A:p", "B:q", "C:r"},
		Answer:  []string{"A", "C"},
	})

	assert.Equal(t, model.MultipleChoice, q.Type)
	assert.Equal(t, "地理", q.Genre)
	assert.Equal(t, "A:p|B:q|C:r", q.Choices)
	assert.Equal(t, "A,C", q.Answer)

	// id と所有会社はパッチでは変わらない。
	assert.Equal(t, uint(42), q.ID)
	if q.CompanyID == nil || *q.CompanyID != companyA {
		t.Errorf("company ownership changed: %v", q.CompanyID)
	}
}

func TestApplyQuestionPatch_EmptySliceClearsField(t *testing.T) {
	q := model.Question{Choices: "A:x|B:y", Answer: "A"}

	applyQuestionPatch(&q, QuestionPatch{Choices: []string{}, Answer: []string{}})

	assert.Equal(t, "", q.Choices)
	assert.Equal(t, "", q.Answer)
}
