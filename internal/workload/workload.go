// Package workload ships the built-in benchmark bodies.
//
// Every workload has the same shape: a pure function from a single int32
// parameter to an int32 checksum. Bodies mark their measured region with
// bench.Start/bench.End and route the checksum through bench.Sink so the
// computation survives optimization. The registry carries the checksum
// expected at each workload's default parameter, which lets the runner
// verify that a body still computes what it claims to.
package workload

// Func is a benchmark body: one parameter in, one checksum out.
type Func func(param int32) int32

// Spec describes a registered workload.
type Spec struct {
	// Name uniquely identifies the workload (CLI and suite files use it).
	Name string

	// Description is a one-line summary for listings.
	Description string

	// DefaultParam is the parameter used when the caller supplies none.
	DefaultParam int32

	// Checksum is the expected result at DefaultParam, valid only when
	// HasChecksum is set. Workloads whose expected value is impractical to
	// state in closed form leave it unset.
	Checksum int32

	// HasChecksum reports whether Checksum is meaningful.
	HasChecksum bool

	// Fn is the body itself.
	Fn Func
}

// registry lists workloads in presentation order.
var registry = []Spec{
	{
		Name:         "fib_loop",
		Description:  "iterative Fibonacci, returns F(n)",
		DefaultParam: 30,
		Checksum:     832040,
		HasChecksum:  true,
		Fn:           fibLoop,
	},
	{
		Name:         "gcd",
		Description:  "Euclidean gcd over n scaled pairs, returns summed gcds",
		DefaultParam: 1000,
		Checksum:     10510500,
		HasChecksum:  true,
		Fn:           gcdSum,
	},
	{
		Name:         "sieve",
		Description:  "sieve of Eratosthenes below n, returns prime count",
		DefaultParam: 10000,
		Checksum:     1229,
		HasChecksum:  true,
		Fn:           sieve,
	},
	{
		Name:         "nqueens",
		Description:  "iterative 8-queens backtracking, returns solutions found",
		DefaultParam: 50,
		Checksum:     4600,
		HasChecksum:  true,
		Fn:           nqueens,
	},
	{
		Name:         "mfr",
		Description:  "map/filter/reduce over 500 int64s per iteration",
		DefaultParam: 10,
		Checksum:     207085000,
		HasChecksum:  true,
		Fn:           mfr,
	},
	{
		Name:         "list_build",
		Description:  "build and traverse a 500-node linked list per iteration",
		DefaultParam: 100,
		Checksum:     50000,
		HasChecksum:  true,
		Fn:           listBuild,
	},
	{
		Name:         "string_ops",
		Description:  "digit-count totals for integers 0..n-1",
		DefaultParam: 10000,
		Checksum:     38890,
		HasChecksum:  true,
		Fn:           stringOps,
	},
	{
		Name:         "real_work",
		Description:  "build n records, filter active, sum doubled values",
		DefaultParam: 999,
		Checksum:     331668,
		HasChecksum:  true,
		Fn:           realWork,
	},
}

// Lookup returns the spec registered under name.
func Lookup(name string) (Spec, bool) {
	for _, s := range registry {
		if s.Name == name {
			return s, true
		}
	}
	return Spec{}, false
}

// Names returns all workload names in registration order.
func Names() []string {
	names := make([]string, len(registry))
	for i, s := range registry {
		names[i] = s.Name
	}
	return names
}

// All returns every registered spec in registration order.
// The returned slice is a copy; callers may reorder it freely.
func All() []Spec {
	out := make([]Spec, len(registry))
	copy(out, registry)
	return out
}
