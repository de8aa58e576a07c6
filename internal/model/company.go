package model

// Company 会社（テナントのルート）。部署・ユーザー・自社問題を所有する。
// swagger:model Company
type Company struct {
	BaseModel
	Name        string       `gorm:"size:100;unique;not null" json:"name"`
	Active      bool         `gorm:"default:true" json:"active"`
	Departments []Department `gorm:"foreignKey:CompanyID" json:"departments,omitempty"`
	Users       []User       `gorm:"foreignKey:CompanyID" json:"users,omitempty"`
	Courses     []Course     `gorm:"foreignKey:CompanyID" json:"courses,omitempty"`
}

func (Company) TableName() string {
	return "companies"
}

// Department 部署。必ず一つの会社に属する。
// swagger:model Department
type Department struct {
	BaseModel
	Name      string    `gorm:"size:100;not null" json:"name"`
	CompanyID uint      `gorm:"index;not null" json:"companyId"`
	Sections  []Section `gorm:"foreignKey:DepartmentID" json:"sections,omitempty"`
}

func (Department) TableName() string {
	return "departments"
}

// Section 課。必ず一つの部署に属する。
// swagger:model Section
type Section struct {
	BaseModel
	Name         string `gorm:"size:100;not null" json:"name"`
	DepartmentID uint   `gorm:"index;not null" json:"departmentId"`
}

func (Section) TableName() string {
	return "sections"
}
