// Package schema defines the structs that mirror the HCL experiment
// description on disk. The blocks are decoded in two stages: the outer
// structs capture block labels and keep the body around, so that a decode
// error in a suite or variant can be attributed to it by name.
package schema

import "github.com/hashicorp/hcl/v2"

// Document is the root of an experiment description file.
type Document struct {
	System      string        `hcl:"system,optional"`
	CallWrapper string        `hcl:"call-wrapper,optional"`
	TimeCmd     string        `hcl:"time-cmd,optional"`
	Env         string        `hcl:"env,optional"`
	Suites      []*SuiteBlock `hcl:"suite,block"`
}

// SuiteBlock is a named suite block whose body is decoded separately.
type SuiteBlock struct {
	Name string   `hcl:"name,label"`
	Body hcl.Body `hcl:",remain"`
}

// Suite is the decoded body of a suite block.
type Suite struct {
	Graphs    string          `hcl:"graphs"`
	Timeout   int             `hcl:"timeout,optional"`
	Processes []int           `hcl:"processes"`
	Threads   []int           `hcl:"threads"`
	Ks        []int           `hcl:"ks"`
	Epsilons  []float64       `hcl:"epsilons"`
	Seeds     []int           `hcl:"seeds"`
	Variants  []*VariantBlock `hcl:"variant,block"`
}

// VariantBlock is a named variant block whose body is decoded separately.
type VariantBlock struct {
	Name string   `hcl:"name,label"`
	Body hcl.Body `hcl:",remain"`
}

// Variant is the decoded body of a variant block. PerKArgs stays an
// expression because its keys are integers, which gohcl cannot decode into a
// Go map directly.
type Variant struct {
	GitURL       string         `hcl:"git-url"`
	Branch       string         `hcl:"branch,optional"`
	Target       string         `hcl:"target,optional"`
	CompileFlags []string       `hcl:"compile-flags,optional"`
	Args         []string       `hcl:"args,optional"`
	PerKArgs     hcl.Expression `hcl:"per-k-args,optional"`
}
