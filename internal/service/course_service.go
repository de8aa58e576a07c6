package service

import (
	"errors"

	"elearn_backend/internal/model"
	"elearn_backend/internal/repository"
	"elearn_backend/internal/util"

	"gorm.io/gorm"
)

// CourseService 会社単位の学習コース。対象ジャンルの束ねと公開フラグのみの
// 軽い編成機能。
type CourseService struct {
	CourseRepo *repository.CourseRepository
}

func NewCourseService(courseRepo *repository.CourseRepository) *CourseService {
	return &CourseService{CourseRepo: courseRepo}
}

type CourseInput struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Genres      []string `json:"genres"`
}

func (s *CourseService) CreateCourse(caller model.Caller, input CourseInput) (*model.Course, error) {
	if !caller.IsAdmin() {
		return nil, util.ErrPermissionDenied
	}
	course := &model.Course{
		Code:        model.GenerateUUID(),
		Name:        input.Name,
		Description: input.Description,
		Genres:      model.EncodeChoices(input.Genres),
		CompanyID:   caller.CompanyID,
	}
	if err := s.CourseRepo.Create(course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) ListCourses(caller model.Caller) ([]model.Course, error) {
	return s.CourseRepo.ListByCompany(caller.CompanyID)
}

func (s *CourseService) findScoped(caller model.Caller, id uint) (*model.Course, error) {
	course, err := s.CourseRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrCourseNotFound
		}
		return nil, err
	}
	if !caller.IsMaster() && course.CompanyID != caller.CompanyID {
		return nil, util.ErrPermissionDenied
	}
	return course, nil
}

func (s *CourseService) UpdateCourse(caller model.Caller, id uint, input CourseInput) (*model.Course, error) {
	if !caller.IsAdmin() {
		return nil, util.ErrPermissionDenied
	}
	course, err := s.findScoped(caller, id)
	if err != nil {
		return nil, err
	}
	course.Name = input.Name
	course.Description = input.Description
	course.Genres = model.EncodeChoices(input.Genres)
	if err := s.CourseRepo.Update(course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) PublishCourse(caller model.Caller, id uint, published bool) (*model.Course, error) {
	if !caller.IsAdmin() {
		return nil, util.ErrPermissionDenied
	}
	course, err := s.findScoped(caller, id)
	if err != nil {
		return nil, err
	}
	course.Published = published
	if err := s.CourseRepo.Update(course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *CourseService) DeleteCourse(caller model.Caller, id uint) error {
	if !caller.IsAdmin() {
		return util.ErrPermissionDenied
	}
	if _, err := s.findScoped(caller, id); err != nil {
		return err
	}
	return s.CourseRepo.Delete(id)
}
