package catalog

import "errors"

const (
	StatusOK       = 200
	StatusNotFound = 404
)

const (
	ErrCodeCourseNotFound = "COURSE_NOT_FOUND"
	ErrCodeTimeout        = "TIMEOUT"
	ErrCodeServerError    = "SERVER_ERROR"
)

var (
	ErrCourseNotFound = errors.New(ErrCodeCourseNotFound)
	ErrTimeout        = errors.New(ErrCodeTimeout)
	ErrServerError    = errors.New(ErrCodeServerError)
)

var statusErrorMap = map[int]error{
	StatusNotFound: ErrCourseNotFound,
}

func MapStatusToError(statusCode int) error {
	if err, exists := statusErrorMap[statusCode]; exists {
		return err
	}

	return ErrServerError
}
