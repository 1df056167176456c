package config

import "fmt"

// System selects how the submission scripts hand a starter script to the
// machine that runs the experiments.
type System string

const (
	// SystemGeneric runs starters in the foreground of the invoking shell.
	SystemGeneric System = "generic"
	// SystemBackground detaches starters with nohup so the batch survives
	// the operator logging out.
	SystemBackground System = "background"
	// SystemI10Exclusive and SystemI10Nonexclusive additionally reserve (or
	// explicitly share) the machine through the i10 queueing helpers.
	SystemI10Exclusive    System = "i10-exclusive"
	SystemI10Nonexclusive System = "i10-nonexclusive"
)

// ParseSystem validates a system name from the experiment description.
func ParseSystem(s string) (System, error) {
	switch sys := System(s); sys {
	case SystemGeneric, SystemBackground, SystemI10Exclusive, SystemI10Nonexclusive:
		return sys, nil
	default:
		return "", Errorf("system", "unknown system %q", s)
	}
}

// Submit wraps the invocation of a starter script for the submission script.
// The result may span multiple lines.
func (s System) Submit(path string) string {
	switch s {
	case SystemBackground:
		return fmt.Sprintf("nohup bash -- %s &\ndisown", path)
	case SystemI10Exclusive:
		return fmt.Sprintf("nohup exclusive bash -- %s &\ndisown", path)
	case SystemI10Nonexclusive:
		return fmt.Sprintf("nohup nonexclusive bash -- %s &\ndisown", path)
	default:
		return fmt.Sprintf("bash %s", path)
	}
}

// CallWrapper selects the launcher program prefixed to every generated
// partitioner command.
type CallWrapper string

const (
	// WrapperNone leaves commands bare.
	WrapperNone CallWrapper = "none"
	// WrapperTaskset pins each invocation to as many cores as it has threads.
	WrapperTaskset CallWrapper = "taskset"
	// WrapperMPI launches each invocation through mpirun, one rank per
	// process with the threads of a rank packed onto one socket.
	WrapperMPI CallWrapper = "mpi"
	// WrapperPerf records hardware performance counters for each invocation.
	WrapperPerf CallWrapper = "perf"
)

// ParseCallWrapper validates a call-wrapper name from the experiment
// description.
func ParseCallWrapper(s string) (CallWrapper, error) {
	switch w := CallWrapper(s); w {
	case WrapperNone, WrapperTaskset, WrapperMPI, WrapperPerf:
		return w, nil
	default:
		return "", Errorf("call-wrapper", "unknown call wrapper %q", s)
	}
}

// Wrap prefixes cmd with the configured launcher, sized to the invocation's
// process and thread counts.
func (w CallWrapper) Wrap(processes, threads int, cmd string) string {
	switch w {
	case WrapperTaskset:
		return fmt.Sprintf("taskset -c 0-%d %s", threads-1, cmd)
	case WrapperMPI:
		return fmt.Sprintf("mpirun -n %d --bind-to core --map-by socket:PE=%d %s", processes, threads, cmd)
	case WrapperPerf:
		return fmt.Sprintf("perf stat %s", cmd)
	default:
		return cmd
	}
}
