// Package errs is a thin facade over cockroachdb/errors so the rest of
// the codebase never imports it directly.
package errs

import (
	cr "github.com/cockroachdb/errors"
)

func New(msg string) error {
	return cr.New(msg)
}

func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return cr.Wrap(err, msg)
}

// Mark attaches markErr as an equivalence marker. markErr is joined into
// the chain so plain errors.Is matches it, and the cockroachdb mark is
// kept on top so cross-network equivalence keeps working too. The
// original cause stays in the chain for %+v formatting.
func Mark(err error, markErr error) error {
	if err == nil {
		return markErr
	}
	return cr.Mark(cr.Join(err, markErr), markErr)
}
