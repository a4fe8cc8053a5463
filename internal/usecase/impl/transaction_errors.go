package impl

import (
	domainerrors "roster/internal/domain/errors"

	"github.com/pkg/errors"
)

// asTransactionFailure normalizes errors escaping a write transaction.
// Business errors raised inside the closure pass through untouched; anything
// else (driver failures, commit failures) has already been rolled back and
// surfaces as ErrTransactionFailed.
func asTransactionFailure(err error) error {
	var baseErr *domainerrors.BaseError
	if errors.As(err, &baseErr) {
		return err
	}

	return domainerrors.ErrTransactionFailed.WrapMessage(err.Error())
}
