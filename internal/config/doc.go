// Package config defines the format-agnostic model of an experiment
// description: the global settings, the suites with their sweep parameter
// lists, and the partitioner variants each suite runs.
//
// The model is parsed once per run and immutable afterwards. Concrete
// loaders, such as the HCL one in internal/hcl_adapter, implement the Loader
// interface defined here.
package config
