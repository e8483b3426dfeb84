package honk_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/honkjs/injector/honk"
)

func TestNewInvocationKinds(t *testing.T) {
	t.Parallel()

	var nilAction honk.Action

	tests := []struct {
		name string
		args []any
		want honk.Kind
	}{
		{name: "no arguments", args: nil, want: honk.KindCall},
		{name: "single string", args: []any{"x"}, want: honk.KindCall},
		{name: "single nil", args: []any{nil}, want: honk.KindCall},
		{name: "nil action", args: []any{nilAction}, want: honk.KindCall},
		{name: "unsupported func shape", args: []any{func(int) int { return 0 }}, want: honk.KindCall},
		{name: "two functions", args: []any{func() {}, func() {}}, want: honk.KindCall},
		{name: "action", args: []any{honk.Action(func(honk.Services) (any, error) { return nil, nil })}, want: honk.KindInject},
		{name: "services to value and error", args: []any{func(honk.Services) (any, error) { return nil, nil }}, want: honk.KindInject},
		{name: "services to value", args: []any{func(honk.Services) any { return nil }}, want: honk.KindInject},
		{name: "services only", args: []any{func(honk.Services) {}}, want: honk.KindInject},
		{name: "nullary value and error", args: []any{func() (any, error) { return nil, nil }}, want: honk.KindInject},
		{name: "nullary value", args: []any{func() any { return nil }}, want: honk.KindInject},
		{name: "nullary", args: []any{func() {}}, want: honk.KindInject},
		{name: "plain map to value", args: []any{func(map[string]any) any { return nil }}, want: honk.KindInject},
		{name: "services to int and error", args: []any{func(honk.Services) (int, error) { return 0, nil }}, want: honk.KindInject},
		{name: "services to error", args: []any{func(honk.Services) error { return nil }}, want: honk.KindInject},
		{name: "any parameter", args: []any{func(any) string { return "" }}, want: honk.KindInject},
		{name: "nullary string", args: []any{func() string { return "" }}, want: honk.KindInject},
		{name: "second result not error", args: []any{func(honk.Services) (int, int) { return 0, 0 }}, want: honk.KindCall},
		{name: "three results", args: []any{func() (int, int, error) { return 0, 0, nil }}, want: honk.KindCall},
		{name: "two parameters", args: []any{func(honk.Services, int) {}}, want: honk.KindCall},
		{name: "variadic", args: []any{honk.Func(func(...any) (any, error) { return nil, nil })}, want: honk.KindCall},
		{name: "string keyed map of strings", args: []any{func(map[string]string) {}}, want: honk.KindCall},
		{name: "nil plain map func", args: []any{(func(map[string]any) any)(nil)}, want: honk.KindCall},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			inv := honk.NewInvocation(tt.args...)
			assert.Equal(t, tt.want, inv.Kind())
			assert.Len(t, inv.Args, len(tt.args))
		})
	}
}

func TestInvocationAdaptsCallables(t *testing.T) {
	t.Parallel()

	services := honk.Services{"n": 41}
	sentinel := errors.New("boom")

	t.Run("value", func(t *testing.T) {
		t.Parallel()

		inv := honk.NewInvocation(func(s honk.Services) any { return s["n"].(int) + 1 })
		got, err := inv.Action(services)
		require.NoError(t, err)
		assert.Equal(t, 42, got)
	})

	t.Run("error", func(t *testing.T) {
		t.Parallel()

		inv := honk.NewInvocation(func() (any, error) { return nil, sentinel })
		_, err := inv.Action(services)
		assert.ErrorIs(t, err, sentinel)
	})

	t.Run("no result", func(t *testing.T) {
		t.Parallel()

		called := false
		inv := honk.NewInvocation(func() { called = true })
		got, err := inv.Action(services)
		require.NoError(t, err)
		assert.Nil(t, got)
		assert.True(t, called)
	})

	t.Run("services only", func(t *testing.T) {
		t.Parallel()

		var seen honk.Services
		inv := honk.NewInvocation(func(s honk.Services) { seen = s })
		got, err := inv.Action(services)
		require.NoError(t, err)
		assert.Nil(t, got)
		assert.Equal(t, services, seen)
	})
}

func TestInvocationAdaptsOtherShapes(t *testing.T) {
	t.Parallel()

	services := honk.Services{"n": 41}
	sentinel := errors.New("boom")

	t.Run("plain map", func(t *testing.T) {
		t.Parallel()

		inv := honk.NewInvocation(func(s map[string]any) any { return s["n"].(int) + 1 })
		got, err := inv.Action(services)
		require.NoError(t, err)
		assert.Equal(t, 42, got)
	})

	t.Run("typed result and error", func(t *testing.T) {
		t.Parallel()

		inv := honk.NewInvocation(func(s honk.Services) (int, error) { return s["n"].(int), sentinel })
		got, err := inv.Action(services)
		assert.Equal(t, 41, got)
		assert.ErrorIs(t, err, sentinel)
	})

	t.Run("typed result and nil error", func(t *testing.T) {
		t.Parallel()

		inv := honk.NewInvocation(func(honk.Services) (string, error) { return "ok", nil })
		got, err := inv.Action(services)
		require.NoError(t, err)
		assert.Equal(t, "ok", got)
	})

	t.Run("error only", func(t *testing.T) {
		t.Parallel()

		inv := honk.NewInvocation(func(honk.Services) error { return sentinel })
		got, err := inv.Action(services)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, sentinel)
	})

	t.Run("any parameter", func(t *testing.T) {
		t.Parallel()

		var seen any
		inv := honk.NewInvocation(func(v any) { seen = v })
		_, err := inv.Action(services)
		require.NoError(t, err)
		assert.Equal(t, services, seen)
	})
}

func TestInvocationLiteralIsCall(t *testing.T) {
	t.Parallel()

	inv := honk.Invocation{
		Action: func(honk.Services) (any, error) { return nil, nil },
		Args:   []any{1, 2},
	}
	assert.Equal(t, honk.KindCall, inv.Kind())
}

func TestKindString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "call", honk.KindCall.String())
	assert.Equal(t, "inject", honk.KindInject.String())
	assert.Equal(t, "unknown", honk.Kind(7).String())
}
