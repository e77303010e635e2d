package services

import (
	"errors"

	"inkwell/app/apperr"
	"inkwell/app/repositories"
)

// repoErr translates repository sentinels into the application error
// taxonomy. notFound is the message used for a missing record.
func repoErr(err error, notFound string) error {
	switch {
	case errors.Is(err, repositories.ErrNotFound):
		return apperr.NotFound(notFound)
	case errors.Is(err, repositories.ErrConflict):
		return apperr.Conflict("record already exists")
	default:
		return apperr.Unexpected(err)
	}
}
