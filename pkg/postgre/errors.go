package postgre

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

var (
	ErrNotFound            = errors.New("postgre: not found")
	ErrUniqueViolation     = errors.New("postgre: unique violation")
	ErrForeignKeyViolation = errors.New("postgre: foreign key violation")
	ErrInvalidText         = errors.New("postgre: invalid text representation")
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeInvalidText         = "22P02"
)

// MapError converts driver errors into the package sentinels. Other errors are returned unchanged.
func MapError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case codeUniqueViolation:
			return ErrUniqueViolation
		case codeForeignKeyViolation:
			return ErrForeignKeyViolation
		case codeInvalidText:
			return ErrInvalidText
		}
	}
	return err
}
