package model

import (
	"strings"
	"time"
)

type UserRole string

const (
	RoleMaster     UserRole = "MASTER"
	RoleSuperAdmin UserRole = "SUPER_ADMIN"
	RoleAdmin      UserRole = "ADMIN"
	RoleUser       UserRole = "USER"
)

// NormalizeRole ロール文字列は登録経路によって大文字小文字が揺れるため、
// 比較前に必ず大文字へ正規化する。
func NormalizeRole(s string) UserRole {
	return UserRole(strings.ToUpper(strings.TrimSpace(s)))
}

func (r UserRole) Valid() bool {
	switch r {
	case RoleMaster, RoleSuperAdmin, RoleAdmin, RoleUser:
		return true
	}
	return false
}

// swagger:model User
type User struct {
	BaseModel
	Username     string    `gorm:"size:100;unique;not null" json:"username"`
	Password     string    `gorm:"size:100;not null" json:"-"`
	Role         UserRole  `gorm:"type:enum('MASTER','SUPER_ADMIN','ADMIN','USER');default:'USER'" json:"role"`
	CompanyID    uint      `gorm:"index;not null" json:"companyId"`
	DepartmentID *uint     `gorm:"index" json:"departmentId"`
	SectionID    *uint     `gorm:"index" json:"sectionId"`
	Active       bool      `gorm:"default:true" json:"active"`
	LastLogin    time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"lastLogin"`

	// 直近のパターン診断のキャッシュ。genreStats と推奨文は保存しない（都度再計算）。
	PatternType        string     `gorm:"size:32" json:"patternType,omitempty"`
	PatternScore       int        `gorm:"default:0" json:"patternScore"`
	GenreConcentration int        `gorm:"default:0" json:"genreConcentration"`
	GrowthRate         float64    `gorm:"default:0" json:"growthRate"`
	DiagnosedAt        *time.Time `json:"diagnosedAt,omitempty"`
}

func (User) TableName() string {
	return "users"
}

// Caller 認証済みリクエストの呼び出し元。JWT クレームから構築され、
// ロールはこの境界で一度だけ正規化される。
type Caller struct {
	UserID    uint
	CompanyID uint
	Role      UserRole
}

func (c Caller) IsMaster() bool {
	return c.Role == RoleMaster
}

// IsAdmin 管理系ロール（MASTER / SUPER_ADMIN / ADMIN）かどうか。
func (c Caller) IsAdmin() bool {
	switch c.Role {
	case RoleMaster, RoleSuperAdmin, RoleAdmin:
		return true
	}
	return false
}
