package service

import (
	"errors"

	"elearn_backend/internal/model"
	"elearn_backend/internal/repository"
	"elearn_backend/internal/util"

	"gorm.io/gorm"
)

// OrgService 会社・部署・課のディレクトリ管理。会社は MASTER 専用、
// 部署・課は自社スコープの管理者が扱う。
type OrgService struct {
	CompanyRepo    *repository.CompanyRepository
	DepartmentRepo *repository.DepartmentRepository
	SectionRepo    *repository.SectionRepository
}

func NewOrgService(companyRepo *repository.CompanyRepository, deptRepo *repository.DepartmentRepository, sectionRepo *repository.SectionRepository) *OrgService {
	return &OrgService{
		CompanyRepo:    companyRepo,
		DepartmentRepo: deptRepo,
		SectionRepo:    sectionRepo,
	}
}

func (s *OrgService) CreateCompany(caller model.Caller, name string) (*model.Company, error) {
	if !caller.IsMaster() {
		return nil, util.ErrPermissionDenied
	}
	if _, err := s.CompanyRepo.FindByName(name); err == nil {
		return nil, util.ErrCompanyNameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}
	company := &model.Company{Name: name, Active: true}
	if err := s.CompanyRepo.Create(company); err != nil {
		return nil, err
	}
	return company, nil
}

func (s *OrgService) ListCompanies(caller model.Caller) ([]model.Company, error) {
	if !caller.IsMaster() {
		return nil, util.ErrPermissionDenied
	}
	return s.CompanyRepo.List()
}

func (s *OrgService) UpdateCompany(caller model.Caller, id uint, name *string, active *bool) (*model.Company, error) {
	if !caller.IsMaster() {
		return nil, util.ErrPermissionDenied
	}
	company, err := s.CompanyRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCompanyNotFound
		}
		return nil, err
	}
	if name != nil {
		company.Name = *name
	}
	if active != nil {
		company.Active = *active
	}
	if err := s.CompanyRepo.Update(company); err != nil {
		return nil, err
	}
	return company, nil
}

func (s *OrgService) DeleteCompany(caller model.Caller, id uint) error {
	if !caller.IsMaster() {
		return util.ErrPermissionDenied
	}
	if _, err := s.CompanyRepo.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrCompanyNotFound
		}
		return err
	}
	return s.CompanyRepo.Delete(id)
}

// resolveCompanyID MASTER は任意の会社、それ以外は常に自社に固定する。
func (s *OrgService) resolveCompanyID(caller model.Caller, requested uint) (uint, error) {
	if caller.IsMaster() {
		if requested == 0 {
			return caller.CompanyID, nil
		}
		return requested, nil
	}
	if requested != 0 && requested != caller.CompanyID {
		return 0, util.ErrPermissionDenied
	}
	return caller.CompanyID, nil
}

func (s *OrgService) CreateDepartment(caller model.Caller, name string, companyID uint) (*model.Department, error) {
	if !caller.IsAdmin() {
		return nil, util.ErrPermissionDenied
	}
	resolved, err := s.resolveCompanyID(caller, companyID)
	if err != nil {
		return nil, err
	}
	if _, err := s.CompanyRepo.FindByID(resolved); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCompanyNotFound
		}
		return nil, err
	}
	dept := &model.Department{Name: name, CompanyID: resolved}
	if err := s.DepartmentRepo.Create(dept); err != nil {
		return nil, err
	}
	return dept, nil
}

func (s *OrgService) ListDepartments(caller model.Caller, companyID uint) ([]model.Department, error) {
	resolved, err := s.resolveCompanyID(caller, companyID)
	if err != nil {
		return nil, err
	}
	return s.DepartmentRepo.ListByCompany(resolved)
}

func (s *OrgService) findScopedDepartment(caller model.Caller, id uint) (*model.Department, error) {
	dept, err := s.DepartmentRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrDepartmentNotFound
		}
		return nil, err
	}
	if !caller.IsMaster() && dept.CompanyID != caller.CompanyID {
		return nil, util.ErrPermissionDenied
	}
	return dept, nil
}

func (s *OrgService) UpdateDepartment(caller model.Caller, id uint, name string) (*model.Department, error) {
	if !caller.IsAdmin() {
		return nil, util.ErrPermissionDenied
	}
	dept, err := s.findScopedDepartment(caller, id)
	if err != nil {
		return nil, err
	}
	dept.Name = name
	if err := s.DepartmentRepo.Update(dept); err != nil {
		return nil, err
	}
	return dept, nil
}

func (s *OrgService) DeleteDepartment(caller model.Caller, id uint) error {
	if !caller.IsAdmin() {
		return util.ErrPermissionDenied
	}
	if _, err := s.findScopedDepartment(caller, id); err != nil {
		return err
	}
	return s.DepartmentRepo.Delete(id)
}

func (s *OrgService) CreateSection(caller model.Caller, name string, departmentID uint) (*model.Section, error) {
	if !caller.IsAdmin() {
		return nil, util.ErrPermissionDenied
	}
	if _, err := s.findScopedDepartment(caller, departmentID); err != nil {
		return nil, err
	}
	section := &model.Section{Name: name, DepartmentID: departmentID}
	if err := s.SectionRepo.Create(section); err != nil {
		return nil, err
	}
	return section, nil
}

func (s *OrgService) ListSections(caller model.Caller, departmentID uint) ([]model.Section, error) {
	if _, err := s.findScopedDepartment(caller, departmentID); err != nil {
		return nil, err
	}
	return s.SectionRepo.ListByDepartment(departmentID)
}

func (s *OrgService) UpdateSection(caller model.Caller, id uint, name string) (*model.Section, error) {
	if !caller.IsAdmin() {
		return nil, util.ErrPermissionDenied
	}
	section, err := s.SectionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrSectionNotFound
		}
		return nil, err
	}
	if _, err := s.findScopedDepartment(caller, section.DepartmentID); err != nil {
		return nil, err
	}
	section.Name = name
	if err := s.SectionRepo.Update(section); err != nil {
		return nil, err
	}
	return section, nil
}

func (s *OrgService) DeleteSection(caller model.Caller, id uint) error {
	if !caller.IsAdmin() {
		return util.ErrPermissionDenied
	}
	section, err := s.SectionRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return util.ErrSectionNotFound
		}
		return err
	}
	if _, err := s.findScopedDepartment(caller, section.DepartmentID); err != nil {
		return err
	}
	return s.SectionRepo.Delete(id)
}
