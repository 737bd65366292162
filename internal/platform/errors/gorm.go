package errors

import (
	stderrs "errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// FromGorm maps a gorm error onto an ErrorCode: missing records become NotFound,
// sqlite constraint failures become DuplicateKey or Validation; nil stays nil
func FromGorm(err error, msg string) error {
	if err == nil {
		return nil
	}
	switch {
	case stderrs.Is(err, gorm.ErrRecordNotFound):
		return Wrap(err, ErrorCodeNotFound, msg)
	case stderrs.Is(err, gorm.ErrDuplicatedKey):
		return Wrap(err, ErrorCodeDuplicateKey, msg)
	case stderrs.Is(err, gorm.ErrInvalidData), stderrs.Is(err, gorm.ErrInvalidValue):
		return Wrap(err, ErrorCodeInvalidArgument, msg)
	}

	s := strings.ToLower(err.Error())
	switch {
	case strings.Contains(s, "unique constraint failed"):
		return Wrap(err, ErrorCodeDuplicateKey, msg)
	case strings.Contains(s, "not null constraint failed"), strings.Contains(s, "check constraint failed"):
		return Wrap(err, ErrorCodeValidation, msg)
	}
	return Wrap(err, ErrorCodeDB, msg)
}

// FromGormf is the formatted variant of FromGorm
func FromGormf(err error, format string, a ...any) error {
	return FromGorm(err, fmt.Sprintf(format, a...))
}
