package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestModelInvocationError_WrapsCause(t *testing.T) {
	underlying := errors.New("boom")
	err := &ModelInvocationError{Cause: CauseTimeout, Err: underlying}

	assert.ErrorIs(t, err, underlying)
	assert.Contains(t, err.Error(), "timeout")

	wrapped := fmt.Errorf("turn failed: %w", err)
	var mie *ModelInvocationError
	assert.ErrorAs(t, wrapped, &mie)
	assert.Equal(t, CauseTimeout, mie.Cause)
}

func TestSessionStoreError_Message(t *testing.T) {
	err := &SessionStoreError{Op: "append", ThreadID: "u1", Err: errors.New("disk full")}
	assert.Contains(t, err.Error(), "append")
	assert.Contains(t, err.Error(), `"u1"`)

	var sse *SessionStoreError
	assert.ErrorAs(t, fmt.Errorf("wrap: %w", err), &sse)
}
