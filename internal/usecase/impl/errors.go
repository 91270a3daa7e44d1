package impl

import (
	"fmt"
	"strings"

	domainerrors "examhub/internal/domain/errors"
	"examhub/internal/domain/repository"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// mapRepositoryError turns repository sentinels into AppErrors.
// Errors that already carry an AppError pass through untouched.
func mapRepositoryError(err error, action string) error {
	if err == nil {
		return nil
	}

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return err
	}

	switch {
	case errors.Is(err, repository.ErrAccountNotFound):
		return errors.Wrap(domainerrors.ErrAccountNotFound, action)
	case errors.Is(err, repository.ErrExamNotFound):
		return errors.Wrap(domainerrors.ErrExamNotFound, action)
	case errors.Is(err, repository.ErrDuplicateEmail):
		return errors.Wrap(domainerrors.ErrDuplicateEmail, action)
	case errors.Is(err, repository.ErrDuplicateIdentifier):
		return errors.Wrap(domainerrors.ErrDuplicateIdentifier, action)
	default:
		return domainerrors.NewDatabaseExecuteError(err, action)
	}
}

// invalidInput builds a VALIDATION_FAILED error carrying details.
func invalidInput(details string) error {
	return errors.WithStack(domainerrors.ErrValidationFailed.WithDetails(details))
}

// validationError converts validator failures into a single VALIDATION_FAILED error.
func validationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return invalidInput(err.Error())
	}

	problems := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		problems = append(problems, fmt.Sprintf("%s failed on %s", strings.ToLower(fe.Field()), fe.Tag()))
	}

	return invalidInput(strings.Join(problems, "; "))
}

// passwordError maps hasher policy failures to VALIDATION_FAILED, keeping the policy details.
func passwordError(err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) && appErr.Details() != "" {
		return invalidInput("password " + appErr.Details())
	}

	return invalidInput("password does not meet the strength requirements")
}
