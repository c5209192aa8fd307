package behavior

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCallRunsInOrder(t *testing.T) {
	s := NewStack()
	var seen []string
	s.Add("evt", func(_ context.Context, arg any) error {
		seen = append(seen, "first:"+arg.(string))
		return nil
	})
	s.Add("evt", func(_ context.Context, arg any) error {
		seen = append(seen, "second:"+arg.(string))
		return nil
	})

	assert.NoError(t, s.Call(context.Background(), "evt", "x"))
	assert.Equal(t, []string{"first:x", "second:x"}, seen)
	assert.True(t, s.Has("evt"))
}

func TestCallStopsOnError(t *testing.T) {
	s := NewStack()
	boom := errors.New("boom")
	called := false
	s.Add("evt", func(context.Context, any) error { return boom })
	s.Add("evt", func(context.Context, any) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, s.Call(context.Background(), "evt", nil), boom)
	assert.False(t, called)
}

func TestCallUnknownIsNoop(t *testing.T) {
	s := NewStack()
	assert.NoError(t, s.Call(context.Background(), "nothing", nil))
	assert.False(t, s.Has("nothing"))
}

func TestCallbackMutatesArgument(t *testing.T) {
	s := NewStack()
	s.Add("lines", func(_ context.Context, arg any) error {
		lines := arg.(*[]string)
		*lines = append(*lines, "added")
		return nil
	})

	var lines []string
	assert.NoError(t, s.Call(context.Background(), "lines", &lines))
	assert.Equal(t, []string{"added"}, lines)
}
