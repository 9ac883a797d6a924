package assets

import (
	"errors"
	"fmt"
)

// ErrInit reports that the asset pipeline could not be set up
var ErrInit = errors.New("asset init failure")

// LoadError reports a missing or undecodable asset file
type LoadError struct {
	Name string
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load asset %s: %v", e.Name, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}
