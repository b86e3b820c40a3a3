package apperr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	base := New(KindNotFound, "project not found")

	assert.Equal(t, KindNotFound, KindOf(base))
	assert.Equal(t, KindNotFound, KindOf(fmt.Errorf("outer: %w", base)))
	assert.Equal(t, KindUnknown, KindOf(errors.New("plain")))
	assert.Equal(t, KindUnknown, KindOf(nil))
}

func TestWrapPreservesCause(t *testing.T) {
	cause := errors.New("pq: deadlock detected")
	err := Wrap(KindPersistence, "create pledge", cause)

	assert.True(t, IsKind(err, KindPersistence))
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "create pledge")
	assert.Contains(t, err.Error(), "deadlock")
	assert.Equal(t, "create pledge", err.Message())
}
