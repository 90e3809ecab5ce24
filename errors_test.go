package pkmeans

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestErrors(t *testing.T) {
	t.Run("PreconditionError", func(t *testing.T) {
		err := fmt.Errorf("run: %w", &PreconditionError{K: 4, Points: 2})
		assert.ErrorIs(t, err, ErrPreconditionViolation)
		assert.NotErrorIs(t, err, ErrIndexOutOfRange)
		assert.Equal(t, "run: precondition violation: k=4 exceeds point count 2", err.Error())

		withReason := &PreconditionError{K: 1, Points: 0, Reason: "no points"}
		assert.Equal(t, "precondition violation: no points (k=1, points=0)", withReason.Error())
	})

	t.Run("IndexOutOfRangeError", func(t *testing.T) {
		err := fmt.Errorf("centroid: %w", &IndexOutOfRangeError{Index: 5, Dimension: 3})
		assert.ErrorIs(t, err, ErrIndexOutOfRange)

		var ioe *IndexOutOfRangeError
		assert.True(t, errors.As(err, &ioe))
		assert.Equal(t, 5, ioe.Index)
		assert.Contains(t, err.Error(), "5 not in [0, 3)")
	})
}
