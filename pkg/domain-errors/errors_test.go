package domainerrors_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	dErrors "muster/pkg/domain-errors"
	"muster/pkg/platform/sentinel"
)

func TestHasCode(t *testing.T) {
	t.Run("matches direct code", func(t *testing.T) {
		err := dErrors.New(dErrors.CodeConflict, "overlapping commitment")
		assert.True(t, dErrors.HasCode(err, dErrors.CodeConflict))
		assert.False(t, dErrors.HasCode(err, dErrors.CodeNotFound))
	})

	t.Run("matches code buried in chain", func(t *testing.T) {
		inner := dErrors.New(dErrors.CodeNotFound, "disaster missing")
		outer := dErrors.Wrap(inner, dErrors.CodeInternal, "lookup failed")
		assert.True(t, dErrors.HasCode(outer, dErrors.CodeNotFound))
		assert.True(t, dErrors.HasCode(outer, dErrors.CodeInternal))
	})

	t.Run("plain errors carry no code", func(t *testing.T) {
		assert.False(t, dErrors.HasCode(errors.New("boom"), dErrors.CodeInternal))
		assert.False(t, dErrors.HasCode(nil, dErrors.CodeInternal))
	})
}

func TestWrapPreservesSentinels(t *testing.T) {
	err := dErrors.Wrap(sentinel.ErrNotFound, dErrors.CodeNotFound, "no such disaster")
	assert.ErrorIs(t, err, sentinel.ErrNotFound)
	assert.Equal(t, dErrors.CodeNotFound, dErrors.CodeOf(err))
}

func TestCodeOf(t *testing.T) {
	assert.Equal(t, dErrors.CodeValidation, dErrors.CodeOf(dErrors.New(dErrors.CodeValidation, "start after end")))
	assert.Equal(t, dErrors.CodeInternal, dErrors.CodeOf(errors.New("uncoded")))
}
