package model

import (
	"reflect"
	"testing"
)

func TestDecodeChoices(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"pipe delimited", "A:犬|B:猫|C:鳥", []string{"A:犬", "B:猫", "C:鳥"}},
		{"pipe delimited with spaces", " A:犬 | B:猫 ", []string{"A:犬", "B:猫"}},
		{"single choice no delimiter", "A:犬", []string{"A:犬"}},
		{"json array", `["A:犬","B:猫"]`, []string{"A:犬", "B:猫"}},
		{"malformed json falls back to raw string", "[broken", []string{"[broken"}},
		{"empty", "", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecodeChoices(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DecodeChoices(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestDecodeAnswer(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"single label", "A", []string{"A"}},
		{"multiple labels", "A,C", []string{"A", "C"}},
		{"labels with spaces", "A, C", []string{"A", "C"}},
		{"empty", "", []string{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DecodeAnswer(tt.in); !reflect.DeepEqual(got, tt.want) {
				t.Errorf("DecodeAnswer(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	choices := []string{"A:犬", "B:猫", "C:鳥"}
	if got := DecodeChoices(EncodeChoices(choices)); !reflect.DeepEqual(got, choices) {
		t.Errorf("choices round trip = %v, want %v", got, choices)
	}

	answer := []string{"A", "C"}
	if got := DecodeAnswer(EncodeAnswer(answer)); !reflect.DeepEqual(got, answer) {
		t.Errorf("answer round trip = %v, want %v", got, answer)
	}
}

func TestQuestionIsCommon(t *testing.T) {
	companyID := uint(3)
	owned := Question{CompanyID: &companyID}
	common := Question{}

	if owned.IsCommon() {
		t.Error("question with company should not be common")
	}
	if !common.IsCommon() {
		t.Error("question without company should be common")
	}
}
