package util

import "errors"

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrQuestionNotFound   = errors.New("question not found")
	ErrCompanyNotFound    = errors.New("company not found")
	ErrDepartmentNotFound = errors.New("department not found")
	ErrSectionNotFound    = errors.New("section not found")
	ErrCourseNotFound     = errors.New("course not found")
	ErrNoDiagnosis        = errors.New("no cached diagnosis")
	ErrPermissionDenied   = errors.New("permission denied")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrCompanyNameTaken   = errors.New("company name already taken")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrAccountLocked      = errors.New("account temporarily locked")
	ErrInvalidRole        = errors.New("invalid role")
)

// IsNotFound NotFound 系の番兵エラーかどうか。トランスポート層は 404 に写像する。
func IsNotFound(err error) bool {
	return errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrQuestionNotFound) ||
		errors.Is(err, ErrCompanyNotFound) ||
		errors.Is(err, ErrDepartmentNotFound) ||
		errors.Is(err, ErrSectionNotFound) ||
		errors.Is(err, ErrCourseNotFound) ||
		errors.Is(err, ErrNoDiagnosis)
}
