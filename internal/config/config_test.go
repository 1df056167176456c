package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSystem(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    System
		wantErr bool
	}{
		{name: "generic", input: "generic", want: SystemGeneric},
		{name: "background", input: "background", want: SystemBackground},
		{name: "i10 exclusive", input: "i10-exclusive", want: SystemI10Exclusive},
		{name: "i10 nonexclusive", input: "i10-nonexclusive", want: SystemI10Nonexclusive},
		{name: "unknown", input: "slurm", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseSystem(tc.input)
			if tc.wantErr {
				var cfgErr *Error
				require.ErrorAs(t, err, &cfgErr)
				assert.Equal(t, "system", cfgErr.Key)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestSystem_Submit(t *testing.T) {
	testCases := []struct {
		name   string
		system System
		want   string
	}{
		{
			name:   "generic runs in the foreground",
			system: SystemGeneric,
			want:   "bash /tmp/starter.sh",
		},
		{
			name:   "background detaches",
			system: SystemBackground,
			want:   "nohup bash -- /tmp/starter.sh &\ndisown",
		},
		{
			name:   "i10 exclusive reserves the machine",
			system: SystemI10Exclusive,
			want:   "nohup exclusive bash -- /tmp/starter.sh &\ndisown",
		},
		{
			name:   "i10 nonexclusive shares the machine",
			system: SystemI10Nonexclusive,
			want:   "nohup nonexclusive bash -- /tmp/starter.sh &\ndisown",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.system.Submit("/tmp/starter.sh"))
		})
	}
}

func TestParseCallWrapper(t *testing.T) {
	got, err := ParseCallWrapper("mpi")
	require.NoError(t, err)
	assert.Equal(t, WrapperMPI, got)

	_, err = ParseCallWrapper("strace")
	var cfgErr *Error
	require.ErrorAs(t, err, &cfgErr)
	assert.Equal(t, "call-wrapper", cfgErr.Key)
}

func TestCallWrapper_Wrap(t *testing.T) {
	testCases := []struct {
		name      string
		wrapper   CallWrapper
		processes int
		threads   int
		want      string
	}{
		{
			name:      "none leaves the command bare",
			wrapper:   WrapperNone,
			processes: 2,
			threads:   4,
			want:      "KaMinPar graph.metis",
		},
		{
			name:      "taskset pins one core per thread",
			wrapper:   WrapperTaskset,
			processes: 1,
			threads:   4,
			want:      "taskset -c 0-3 KaMinPar graph.metis",
		},
		{
			name:      "mpi launches one rank per process",
			wrapper:   WrapperMPI,
			processes: 2,
			threads:   8,
			want:      "mpirun -n 2 --bind-to core --map-by socket:PE=8 KaMinPar graph.metis",
		},
		{
			name:      "perf records counters",
			wrapper:   WrapperPerf,
			processes: 1,
			threads:   1,
			want:      "perf stat KaMinPar graph.metis",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.wrapper.Wrap(tc.processes, tc.threads, "KaMinPar graph.metis"))
		})
	}
}

func TestVariant_Fingerprint(t *testing.T) {
	base := &Variant{
		Name:         "baseline",
		GitURL:       "https://github.com/KaHIP/KaMinPar.git",
		Branch:       "main",
		CompileFlags: []string{"-DKAMINPAR_ENABLE_HEAP_PROFILING=On"},
	}

	t.Run("is stable", func(t *testing.T) {
		assert.Equal(t, base.Fingerprint(), base.Fingerprint())
	})

	t.Run("ignores name, target and arguments", func(t *testing.T) {
		other := &Variant{
			Name:         "tuned",
			GitURL:       base.GitURL,
			Branch:       base.Branch,
			Target:       "dKaMinPar",
			CompileFlags: base.CompileFlags,
			Args:         []string{"--rearrange-by=deg"},
		}
		assert.Equal(t, base.Fingerprint(), other.Fingerprint())
	})

	t.Run("depends on branch", func(t *testing.T) {
		other := *base
		other.Branch = "dev"
		assert.NotEqual(t, base.Fingerprint(), other.Fingerprint())
	})

	t.Run("depends on compile flags", func(t *testing.T) {
		other := *base
		other.CompileFlags = []string{"-DKAMINPAR_64BIT_IDS=On"}
		assert.NotEqual(t, base.Fingerprint(), other.Fingerprint())
	})
}

func TestVariant_HeapProfiled(t *testing.T) {
	profiled := &Variant{CompileFlags: []string{"-DCMAKE_BUILD_TYPE=Debug", "-DKAMINPAR_ENABLE_HEAP_PROFILING=On"}}
	assert.True(t, profiled.HeapProfiled())

	plain := &Variant{CompileFlags: []string{"-DCMAKE_BUILD_TYPE=Debug"}}
	assert.False(t, plain.HeapProfiled())
}

func TestError_Error(t *testing.T) {
	withKey := &Error{Key: `suite "scaling"`, Reason: "declared more than once"}
	assert.Equal(t, `config: suite "scaling": declared more than once`, withKey.Error())

	withoutKey := &Error{Reason: "no experiment description found at /tmp/x"}
	assert.Equal(t, "config: no experiment description found at /tmp/x", withoutKey.Error())
}
