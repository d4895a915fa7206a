package domain

import (
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestSentinelErrors verifies sentinel errors are defined
func TestSentinelErrors(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check string
	}{
		{"ErrConfigNotFound", ErrConfigNotFound, "not found"},
		{"ErrConfigMalformed", ErrConfigMalformed, "malformed"},
		{"ErrMissingProjectRoot", ErrMissingProjectRoot, "project_root"},
		{"ErrRootNotFound", ErrRootNotFound, "project root not found"},
		{"ErrNoFilesMatched", ErrNoFilesMatched, "no files"},
		{"ErrOutputWrite", ErrOutputWrite, "output write failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.NotNil(t, tt.err)
			assert.Contains(t, tt.err.Error(), tt.check)
		})
	}
}

func TestConfigError(t *testing.T) {
	t.Run("with path", func(t *testing.T) {
		err := NewConfigError("config.json", ErrConfigMalformed)
		assert.Equal(t, "config error (config.json): configuration file is malformed", err.Error())
		assert.True(t, errors.Is(err, ErrConfigMalformed))
	})

	t.Run("without path", func(t *testing.T) {
		err := NewConfigError("", ErrMissingProjectRoot)
		assert.Equal(t, "config error: project_root is not defined", err.Error())
		assert.True(t, errors.Is(err, ErrMissingProjectRoot))
	})

	t.Run("errors.As", func(t *testing.T) {
		var wrapped error = NewConfigError("x.json", ErrConfigNotFound)
		var cfgErr *ConfigError
		assert.True(t, errors.As(wrapped, &cfgErr))
		assert.Equal(t, "x.json", cfgErr.Path)
	})
}

func TestRootNotFoundError(t *testing.T) {
	err := NewRootNotFoundError("/missing", os.ErrNotExist)

	assert.True(t, errors.Is(err, ErrRootNotFound))
	assert.True(t, errors.Is(err, os.ErrNotExist))
	assert.Contains(t, err.Error(), "/missing")

	bare := NewRootNotFoundError("/file.txt", nil)
	assert.True(t, errors.Is(bare, ErrRootNotFound))
	assert.Equal(t, "project root not found: /file.txt", bare.Error())
}

func TestOutputWriteError(t *testing.T) {
	cause := errors.New("disk full")
	err := NewOutputWriteError("write", "/out/a.txt", cause)

	assert.True(t, errors.Is(err, ErrOutputWrite))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, "output write failed: write /out/a.txt: disk full", err.Error())
}

func TestFileReadError(t *testing.T) {
	err := &FileReadError{Path: "a.bin", Err: os.ErrPermission}
	assert.True(t, errors.Is(err, os.ErrPermission))
	assert.Contains(t, err.Error(), "a.bin")
}

func TestIsFatal(t *testing.T) {
	assert.False(t, IsFatal(nil))
	assert.False(t, IsFatal(ErrNoFilesMatched))
	assert.False(t, IsFatal(NewConfigError("config.json", ErrConfigNotFound)))
	assert.False(t, IsFatal(NewConfigError("config.json", ErrConfigMalformed)))
	assert.False(t, IsFatal(NewConfigError("", ErrMissingProjectRoot)))
	assert.False(t, IsFatal(NewRootNotFoundError("/x", nil)))
	assert.True(t, IsFatal(NewOutputWriteError("open", "/x", os.ErrPermission)))
	assert.True(t, IsFatal(fmt.Errorf("run: %w", NewOutputWriteError("write", "/x", os.ErrClosed))))
}
