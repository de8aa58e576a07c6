package repository

import (
	"elearn_backend/internal/model"

	"gorm.io/gorm"
)

type CompanyRepository struct {
	DB *gorm.DB
}

func NewCompanyRepository(db *gorm.DB) *CompanyRepository {
	return &CompanyRepository{DB: db}
}

func (r *CompanyRepository) Create(company *model.Company) error {
	return r.DB.Create(company).Error
}

func (r *CompanyRepository) FindByID(id uint) (*model.Company, error) {
	var company model.Company
	err := r.DB.First(&company, id).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepository) FindByName(name string) (*model.Company, error) {
	var company model.Company
	err := r.DB.Where("name = ?", name).First(&company).Error
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (r *CompanyRepository) List() ([]model.Company, error) {
	var companies []model.Company
	err := r.DB.Order("id").Find(&companies).Error
	return companies, err
}

func (r *CompanyRepository) Update(company *model.Company) error {
	return r.DB.Save(company).Error
}

func (r *CompanyRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Company{}, id).Error
}

type DepartmentRepository struct {
	DB *gorm.DB
}

func NewDepartmentRepository(db *gorm.DB) *DepartmentRepository {
	return &DepartmentRepository{DB: db}
}

func (r *DepartmentRepository) Create(dept *model.Department) error {
	return r.DB.Create(dept).Error
}

func (r *DepartmentRepository) FindByID(id uint) (*model.Department, error) {
	var dept model.Department
	err := r.DB.First(&dept, id).Error
	if err != nil {
		return nil, err
	}
	return &dept, nil
}

// ListByCompany 課まで含めて部署一覧を返す。
func (r *DepartmentRepository) ListByCompany(companyID uint) ([]model.Department, error) {
	var depts []model.Department
	err := r.DB.Where("company_id = ?", companyID).
		Preload("Sections").
		Order("id").
		Find(&depts).Error
	return depts, err
}

func (r *DepartmentRepository) Update(dept *model.Department) error {
	return r.DB.Save(dept).Error
}

func (r *DepartmentRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Department{}, id).Error
}

type SectionRepository struct {
	DB *gorm.DB
}

func NewSectionRepository(db *gorm.DB) *SectionRepository {
	return &SectionRepository{DB: db}
}

func (r *SectionRepository) Create(section *model.Section) error {
	return r.DB.Create(section).Error
}

func (r *SectionRepository) FindByID(id uint) (*model.Section, error) {
	var section model.Section
	err := r.DB.First(&section, id).Error
	if err != nil {
		return nil, err
	}
	return &section, nil
}

func (r *SectionRepository) ListByDepartment(departmentID uint) ([]model.Section, error) {
	var sections []model.Section
	err := r.DB.Where("department_id = ?", departmentID).Order("id").Find(&sections).Error
	return sections, err
}

func (r *SectionRepository) Update(section *model.Section) error {
	return r.DB.Save(section).Error
}

func (r *SectionRepository) Delete(id uint) error {
	return r.DB.Delete(&model.Section{}, id).Error
}
