package config

import (
	"crypto/sha256"
	"encoding/hex"
	"slices"
)

// DescriptionFile is the file name an experiment description lives under,
// relative to the experiment directory.
const DescriptionFile = "Experiment.hcl"

// Defaults applied by loaders when the experiment description leaves the
// corresponding key out.
const (
	DefaultBranch = "main"
	DefaultTarget = "KaMinPar"
)

// heapProfileFlag is the compile flag that enables the KaMinPar heap
// profiler; variants built with it need an extra -H argument at run time.
const heapProfileFlag = "-DKAMINPAR_ENABLE_HEAP_PROFILING=On"

// Config is the in-memory form of a full experiment description.
type Config struct {
	System      System
	CallWrapper CallWrapper
	TimeCmd     string // resource-usage timer prefixed to every command, empty disables it
	Env         string // file sourced by the generated scripts before any command, empty disables it
	Suites      []*Suite
}

// Suite is one named sweep: a directory of input graphs crossed with the
// parameter lists below, run for every variant it declares.
type Suite struct {
	Name      string
	Graphs    string // directory holding the input graphs
	Timeout   int    // per-invocation time limit in minutes, 0 disables it
	Processes []int
	Threads   []int
	Ks        []int
	Epsilons  []float64
	Seeds     []int
	Variants  []*Variant
}

// Variant is one distinct build of the partitioner: a pinned source revision,
// its compile flags, and the arguments appended to every generated command.
type Variant struct {
	Name         string
	GitURL       string
	Branch       string
	Target       string
	CompileFlags []string
	Args         []string         // baseline arguments, always passed
	PerKArgs     map[int][]string // extra arguments for specific k-values
}

// Fingerprint returns the deterministic identity of the variant's build
// inputs. Variants that share a git URL and branch but differ in compile
// flags must not share a source directory, so the flags are part of the key.
func (v *Variant) Fingerprint() string {
	h := sha256.New()
	for _, part := range append([]string{v.GitURL, v.Branch}, v.CompileFlags...) {
		h.Write([]byte(part))
		h.Write([]byte{0})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// HeapProfiled reports whether the variant is compiled with the heap
// profiler enabled.
func (v *Variant) HeapProfiled() bool {
	return slices.Contains(v.CompileFlags, heapProfileFlag)
}
