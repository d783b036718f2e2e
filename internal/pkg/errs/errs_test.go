//go:build unit

package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"fitclass-server/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestMark(t *testing.T) {
	t.Run("marked errors match the sentinel with plain errors.Is", func(t *testing.T) {
		cause := errs.New("seat 4 is occupied")
		sentinel := errors.New("seat already taken")

		marked := errs.Mark(cause, sentinel)

		assert.True(t, errors.Is(marked, sentinel))
		assert.True(t, errors.Is(marked, cause))
	})

	t.Run("mark survives further wrapping", func(t *testing.T) {
		sentinel := errors.New("class not found")
		err := errs.Wrap(errs.Mark(errs.New("row missing"), sentinel), "loading class")

		assert.True(t, errors.Is(err, sentinel))
	})

	t.Run("nil cause degrades to the sentinel itself", func(t *testing.T) {
		sentinel := errors.New("class not found")
		assert.Equal(t, sentinel, errs.Mark(nil, sentinel))
	})

	t.Run("cause message is preserved in verbose formatting", func(t *testing.T) {
		marked := errs.Mark(errs.New("row missing"), errors.New("class not found"))
		assert.Contains(t, fmt.Sprintf("%+v", marked), "row missing")
	})
}

func TestWrap(t *testing.T) {
	t.Run("nil passes through", func(t *testing.T) {
		assert.NoError(t, errs.Wrap(nil, "ignored"))
	})

	t.Run("cause stays in the chain", func(t *testing.T) {
		cause := errs.New("connection reset")
		wrapped := errs.Wrap(cause, "saving class")

		assert.True(t, errors.Is(wrapped, cause))
		assert.Contains(t, wrapped.Error(), "saving class")
	})
}
