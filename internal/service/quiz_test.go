package service

import (
	"testing"

	"elearn_backend/internal/model"
)

func TestGradeAnswer_Single(t *testing.T) {
	tests := []struct {
		name     string
		correct  []string
		selected []string
		want     bool
	}{
		{"exact match", []string{"A"}, []string{"A"}, true},
		{"wrong label", []string{"A"}, []string{"B"}, false},
		{"nothing selected", []string{"A"}, nil, false},
		{"two selected on single", []string{"A"}, []string{"A", "B"}, false},
		{"no correct answer defined", []string{}, []string{"A"}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := gradeAnswer(model.SingleChoice, tt.correct, tt.selected); got != tt.want {
				t.Errorf("gradeAnswer(SINGLE, %v, %v) = %v, want %v", tt.correct, tt.selected, got, tt.want)
			}
		})
	}
}

func TestGradeAnswer_Multiple(t *testing.T) {
	tests := []struct {
		name     string
		correct  []string
		selected []string
		want     bool
	}{
		{"same set same order", []string{"A", "C"}, []string{"A", "C"}, true},
		{"same set different order", []string{"A", "C"}, []string{"C", "A"}, true},
		{"duplicates ignored", []string{"A", "C"}, []string{"A", "C", "C"}, true},
		{"missing one", []string{"A", "C"}, []string{"A"}, false},
		{"extra one", []string{"A", "C"}, []string{"A", "B", "C"}, false},
		{"empty selection", []string{"A", "C"}, nil, false},
		{"no correct answer defined", []string{}, nil, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := gradeAnswer(model.MultipleChoice, tt.correct, tt.selected); got != tt.want {
				t.Errorf("gradeAnswer(MULTIPLE, %v, %v) = %v, want %v", tt.correct, tt.selected, got, tt.want)
			}
		})
	}
}

func TestVisibleTo(t *testing.T) {
	companyA := uint(1)
	companyB := uint(2)
	owned := &model.Question{CompanyID: &companyA}
	foreign := &model.Question{CompanyID: &companyB}
	common := &model.Question{}

	user := model.Caller{UserID: 10, CompanyID: companyA, Role: model.RoleUser}
	master := model.Caller{UserID: 1, CompanyID: companyA, Role: model.RoleMaster}

	if !visibleTo(user, owned) {
		t.Error("own company question should be visible")
	}
	if visibleTo(user, foreign) {
		t.Error("other company question should not be visible")
	}
	if !visibleTo(user, common) {
		t.Error("common question should be visible to every tenant")
	}
	for _, q := range []*model.Question{owned, foreign, common} {
		if !visibleTo(master, q) {
			t.Errorf("master should see question owned by %v", q.CompanyID)
		}
	}
}
