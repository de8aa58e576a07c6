package service

import (
	"errors"

	"elearn_backend/internal/model"
	"elearn_backend/internal/repository"
	"elearn_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// UserService ユーザー管理。MASTER 以外は自社のユーザーしか参照・変更できない。
type UserService struct {
	UserRepo    *repository.UserRepository
	CompanyRepo *repository.CompanyRepository
}

func NewUserService(userRepo *repository.UserRepository, companyRepo *repository.CompanyRepository) *UserService {
	return &UserService{
		UserRepo:    userRepo,
		CompanyRepo: companyRepo,
	}
}

// UserInput ユーザー作成の入力。ロールは登録経路によらずここで正規化される。
type UserInput struct {
	Username     string `json:"username" binding:"required"`
	Password     string `json:"password" binding:"required"`
	Role         string `json:"role"`
	CompanyID    uint   `json:"companyId"`
	DepartmentID *uint  `json:"departmentId"`
	SectionID    *uint  `json:"sectionId"`
}

// UserPatch ユーザー部分更新。nil のフィールドは変更しない。
type UserPatch struct {
	Password     *string `json:"password"`
	Role         *string `json:"role"`
	DepartmentID *uint   `json:"departmentId"`
	SectionID    *uint   `json:"sectionId"`
	Active       *bool   `json:"active"`
}

func (s *UserService) GetUsers(caller model.Caller) ([]model.User, error) {
	if caller.IsMaster() {
		return s.UserRepo.ListAll()
	}
	return s.UserRepo.ListByCompany(caller.CompanyID)
}

func (s *UserService) GetUser(caller model.Caller, id uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	if !caller.IsMaster() && user.CompanyID != caller.CompanyID {
		return nil, util.ErrPermissionDenied
	}
	return user, nil
}

// CreateUser 管理者によるユーザー作成。MASTER 以外は自社にしか作れず、
// MASTER ロールのユーザーも作れない。
func (s *UserService) CreateUser(caller model.Caller, input UserInput) (*model.User, error) {
	role := model.NormalizeRole(input.Role)
	if input.Role == "" {
		role = model.RoleUser
	}
	if !role.Valid() {
		return nil, util.ErrInvalidRole
	}

	companyID := input.CompanyID
	if caller.IsMaster() {
		if companyID == 0 {
			companyID = caller.CompanyID
		}
	} else {
		if !caller.IsAdmin() {
			return nil, util.ErrPermissionDenied
		}
		if companyID != 0 && companyID != caller.CompanyID {
			return nil, util.ErrPermissionDenied
		}
		companyID = caller.CompanyID
		if role == model.RoleMaster {
			return nil, util.ErrPermissionDenied
		}
	}

	if _, err := s.CompanyRepo.FindByID(companyID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCompanyNotFound
		}
		return nil, err
	}

	if _, err := s.UserRepo.FindByUsername(input.Username); err == nil {
		return nil, util.ErrUsernameTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:     input.Username,
		Password:     string(hashed),
		Role:         role,
		CompanyID:    companyID,
		DepartmentID: input.DepartmentID,
		SectionID:    input.SectionID,
		Active:       true,
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, err
	}
	return user, nil
}

// UpdateUser 会社スコープを確認した上での部分更新。MASTER 以外は他社ユーザーに
// 触れず、ロールを MASTER へ引き上げることもできない。
func (s *UserService) UpdateUser(caller model.Caller, id uint, patch UserPatch) (*model.User, error) {
	user, err := s.UserRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrUserNotFound
		}
		return nil, err
	}
	if !caller.IsMaster() {
		if !caller.IsAdmin() || user.CompanyID != caller.CompanyID {
			return nil, util.ErrPermissionDenied
		}
	}

	if patch.Role != nil {
		role := model.NormalizeRole(*patch.Role)
		if !role.Valid() {
			return nil, util.ErrInvalidRole
		}
		if role == model.RoleMaster && !caller.IsMaster() {
			return nil, util.ErrPermissionDenied
		}
		user.Role = role
	}
	if patch.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*patch.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hashed)
	}
	if patch.DepartmentID != nil {
		user.DepartmentID = patch.DepartmentID
	}
	if patch.SectionID != nil {
		user.SectionID = patch.SectionID
	}
	if patch.Active != nil {
		user.Active = *patch.Active
	}

	if err := s.UserRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeactivateUser 論理的な利用停止。履歴は残す。
func (s *UserService) DeactivateUser(caller model.Caller, id uint) error {
	inactive := false
	_, err := s.UpdateUser(caller, id, UserPatch{Active: &inactive})
	return err
}
