package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors
var (
	// ErrConfigNotFound indicates the configuration file does not exist
	ErrConfigNotFound = errors.New("configuration file not found")

	// ErrConfigMalformed indicates the configuration file could not be parsed
	ErrConfigMalformed = errors.New("configuration file is malformed")

	// ErrMissingProjectRoot indicates project_root is not set
	ErrMissingProjectRoot = errors.New("project_root is not defined")

	// ErrRootNotFound indicates the project root is missing or not a directory
	ErrRootNotFound = errors.New("project root not found")

	// ErrNoFilesMatched indicates discovery produced no files
	ErrNoFilesMatched = errors.New("no files matched the filters")

	// ErrOutputWrite indicates the snapshot could not be written
	ErrOutputWrite = errors.New("output write failed")
)

// ConfigError represents a failure to load or validate configuration
type ConfigError struct {
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	if e.Path != "" {
		return fmt.Sprintf("config error (%s): %v", e.Path, e.Err)
	}
	return fmt.Sprintf("config error: %v", e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// NewConfigError creates a new ConfigError
func NewConfigError(path string, err error) *ConfigError {
	return &ConfigError{Path: path, Err: err}
}

// RootNotFoundError reports a project root that cannot be walked
type RootNotFoundError struct {
	Root string
	Err  error
}

func (e *RootNotFoundError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%v: %s: %v", ErrRootNotFound, e.Root, e.Err)
	}
	return fmt.Sprintf("%v: %s", ErrRootNotFound, e.Root)
}

// Unwrap returns ErrRootNotFound alongside the underlying cause
func (e *RootNotFoundError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrRootNotFound}
	}
	return []error{ErrRootNotFound, e.Err}
}

// NewRootNotFoundError creates a new RootNotFoundError
func NewRootNotFoundError(root string, err error) *RootNotFoundError {
	return &RootNotFoundError{Root: root, Err: err}
}

// OutputWriteError represents a failure creating or writing the snapshot file
type OutputWriteError struct {
	Path string
	Op   string
	Err  error
}

func (e *OutputWriteError) Error() string {
	return fmt.Sprintf("%v: %s %s: %v", ErrOutputWrite, e.Op, e.Path, e.Err)
}

func (e *OutputWriteError) Unwrap() []error {
	return []error{ErrOutputWrite, e.Err}
}

// NewOutputWriteError creates a new OutputWriteError
func NewOutputWriteError(op, path string, err error) *OutputWriteError {
	return &OutputWriteError{Op: op, Path: path, Err: err}
}

// FileReadError is a per-file failure recorded inline in the snapshot
type FileReadError struct {
	Path string
	Err  error
}

func (e *FileReadError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e *FileReadError) Unwrap() error {
	return e.Err
}

// IsFatal reports whether err must fail the host process. Only output
// write failures do; config and root problems are reported and the run
// ends normally.
func IsFatal(err error) bool {
	return errors.Is(err, ErrOutputWrite)
}
