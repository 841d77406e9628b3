package model

import (
	"context"
	"testing"
	"time"

	"github.com/aitalenthub/advisorbot/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ Model = (*MockModel)(nil)

func TestMockModel_CannedResponse(t *testing.T) {
	m := NewMockModel("test", "mock")
	m.AddResponse("hello", "hi there")

	resp, err := m.Generate(context.Background(), Request{
		Instructions: "be helpful",
		Messages:     []core.Message{{Role: core.RoleUser, Content: "hello"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "hi there", resp.Text)
	assert.Equal(t, "stop", resp.FinishReason)

	require.Len(t, m.Requests(), 1)
	assert.Equal(t, "be helpful", m.Requests()[0].Instructions)
}

func TestMockModel_DefaultEcho(t *testing.T) {
	m := NewMockModel("test", "mock")

	resp, err := m.Generate(context.Background(), Request{
		Messages: []core.Message{{Role: core.RoleUser, Content: "anything"}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Mock response to: anything", resp.Text)
}

func TestMockModel_ExpiredContextClassifiesTimeout(t *testing.T) {
	m := NewMockModel("test", "mock")

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	<-ctx.Done()

	_, err := m.Generate(ctx, Request{})
	var mie *core.ModelInvocationError
	require.ErrorAs(t, err, &mie)
	assert.Equal(t, core.CauseTimeout, mie.Cause)
}
