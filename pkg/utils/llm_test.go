package utils

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type deadlineProbe struct {
	hadDeadline bool
	closed      bool
}

func (p *deadlineProbe) GenerateContent(ctx context.Context, _, _ string) (string, error) {
	_, p.hadDeadline = ctx.Deadline()
	return "{}", nil
}

func (p *deadlineProbe) Close() error {
	p.closed = true
	return nil
}

func TestWithTimeoutAddsDeadline(t *testing.T) {
	probe := &deadlineProbe{}
	client := WithTimeout(probe, 50*time.Millisecond)

	_, err := client.GenerateContent(context.Background(), "system", "user")
	require.NoError(t, err)
	assert.True(t, probe.hadDeadline)

	require.NoError(t, client.Close())
	assert.True(t, probe.closed)
}

func TestWithTimeoutZeroIsPassthrough(t *testing.T) {
	probe := &deadlineProbe{}
	assert.Same(t, GenerativeClientInterface(probe), WithTimeout(probe, 0))
}

func TestNewGenerativeClientUnknownProvider(t *testing.T) {
	_, err := NewGenerativeClient("mystery", "key", "model")
	assert.Error(t, err)
}
