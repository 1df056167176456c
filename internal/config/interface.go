package config

import "context"

// Loader parses an experiment description file into the canonical model.
// Implementations validate the description and return errors of type *Error
// for anything an operator can fix by editing the file.
type Loader interface {
	Load(ctx context.Context, path string) (*Config, error)
}
