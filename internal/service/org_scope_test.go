package service

import (
	"errors"
	"testing"

	"elearn_backend/internal/model"
	"elearn_backend/internal/util"
)

func TestResolveCompanyID(t *testing.T) {
	s := &OrgService{}
	master := model.Caller{CompanyID: 1, Role: model.RoleMaster}
	admin := model.Caller{CompanyID: 2, Role: model.RoleAdmin}

	tests := []struct {
		name      string
		caller    model.Caller
		requested uint
		want      uint
		wantErr   error
	}{
		{"master picks any company", master, 7, 7, nil},
		{"master defaults to own company", master, 0, 1, nil},
		{"admin defaults to own company", admin, 0, 2, nil},
		{"admin may name own company explicitly", admin, 2, 2, nil},
		{"admin cannot reach another company", admin, 7, 0, util.ErrPermissionDenied},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := s.resolveCompanyID(tt.caller, tt.requested)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("error = %v, want %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("company = %d, want %d", got, tt.want)
			}
		})
	}
}
