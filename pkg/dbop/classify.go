package dbop

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/v2/mongo"
)

// mongo server error code for "document failed validation"
const codeDocumentValidationFailure = 121

// Classify tags err with a taxonomy kind, preserving the original error via
// Unwrap. Already-classified errors pass through unchanged.
func Classify(err error) error {
	if err == nil {
		return nil
	}
	var opErr *Error
	if errors.As(err, &opErr) {
		return err
	}

	switch {
	case errors.Is(err, context.DeadlineExceeded) || mongo.IsTimeout(err):
		return NewError(KindOperationTimeout, err)
	case mongo.IsDuplicateKeyError(err):
		return &Error{
			Kind:    KindDuplicateKey,
			Message: duplicateKeyMessage(err),
			cause:   err,
		}
	case isValidationFailure(err):
		return &Error{
			Kind:    KindValidation,
			Message: validationMessage(err),
			cause:   err,
		}
	case errors.Is(err, mongo.ErrClientDisconnected) || mongo.IsNetworkError(err):
		return NewError(KindDriver, err)
	default:
		return NewError(KindUnknown, err)
	}
}

func isValidationFailure(err error) bool {
	var se mongo.ServerError
	return errors.As(err, &se) && se.HasErrorCode(codeDocumentValidationFailure)
}

// validationMessage joins the per-write messages the server reported, one per
// rejected document, so callers see which constraint was violated.
func validationMessage(err error) string {
	var we mongo.WriteException
	if errors.As(err, &we) && len(we.WriteErrors) > 0 {
		msgs := make([]string, 0, len(we.WriteErrors))
		for _, werr := range we.WriteErrors {
			msgs = append(msgs, werr.Message)
		}
		return strings.Join(msgs, "; ")
	}
	return err.Error()
}

// duplicateKeyMessage names the conflicting index when the server's message
// carries one, e.g. "E11000 ... index: code_1 dup key: ...".
func duplicateKeyMessage(err error) string {
	msg := err.Error()
	const marker = "index: "
	if i := strings.Index(msg, marker); i >= 0 {
		rest := msg[i+len(marker):]
		if j := strings.IndexAny(rest, " \t"); j > 0 {
			rest = rest[:j]
		}
		return fmt.Sprintf("duplicate value for unique index %q", rest)
	}
	return msg
}
