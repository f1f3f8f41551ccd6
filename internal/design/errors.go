// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package design

import "fmt"

// ConfigLoadError reports that an authoritative design file, or a document
// the validators need to read, could not be read, parsed, or validated.
// It is fatal: callers abort instead of running checks on partial data.
type ConfigLoadError struct {
	Path string
	Err  error
}

func (e *ConfigLoadError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("loading configuration: %v", e.Err)
	}
	return fmt.Sprintf("loading %s: %v", e.Path, e.Err)
}

func (e *ConfigLoadError) Unwrap() error {
	return e.Err
}

// NewConfigLoadError creates a new load error for path.
func NewConfigLoadError(path string, err error) *ConfigLoadError {
	return &ConfigLoadError{Path: path, Err: err}
}
