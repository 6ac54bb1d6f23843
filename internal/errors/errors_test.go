package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWrapConfigValidation(t *testing.T) {
	base := errors.New("missing required environment: envProd")

	wrapped := WrapConfigValidation(base)
	assert.True(t, IsConfigValidation(wrapped))
	assert.ErrorIs(t, wrapped, base)

	// Wrapping an already-wrapped error must not double-wrap.
	again := WrapConfigValidation(wrapped)
	assert.Equal(t, wrapped, again)

	assert.Nil(t, WrapConfigValidation(nil))
}

func TestWrapInvalidRunnerConfig(t *testing.T) {
	base := errors.New("environment spec has no region")

	wrapped := WrapInvalidRunnerConfig(base)
	assert.True(t, IsInvalidRunnerConfig(wrapped))
	assert.False(t, IsConfigValidation(wrapped))
	assert.ErrorIs(t, wrapped, base)
}

func TestWrapUnsupportedPlatform(t *testing.T) {
	base := fmt.Errorf("no dispatch entry for platform %q", "solaris")

	wrapped := WrapUnsupportedPlatform(base)
	assert.True(t, IsUnsupportedPlatform(wrapped))
	assert.ErrorIs(t, wrapped, base)
}

func TestIsStartupFatal(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{
			name: "nil error",
			err:  nil,
			want: false,
		},
		{
			name: "config validation is startup fatal",
			err:  WrapConfigValidation(errors.New("missing envBeta")),
			want: true,
		},
		{
			name: "invalid runner config fails one fleet only",
			err:  WrapInvalidRunnerConfig(errors.New("no account")),
			want: false,
		},
		{
			name: "unsupported platform fails one fleet only",
			err:  WrapUnsupportedPlatform(errors.New("bsd")),
			want: false,
		},
		{
			name: "unrelated error",
			err:  errors.New("boom"),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsStartupFatal(tt.err))
		})
	}
}
