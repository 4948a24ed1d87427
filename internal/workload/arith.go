package workload

import "github.com/benchlab/sightline/bench"

// fibLoop computes F(n) iteratively. int32 wraparound is part of the
// contract for large n; the default parameter stays well below it.
func fibLoop(n int32) int32 {
	bench.Start()
	var a, b int32 = 0, 1
	for i := int32(0); i < n; i++ {
		a, b = b, a+b
	}
	bench.Sink(&a)
	bench.End()
	return a
}

// gcdSum runs the Euclidean remainder loop over n scaled copies of the
// classic (1071, 462) pair. gcd(i*1071, i*462) = 21*i, so the total is
// 21*n*(n+1)/2, which keeps the expected checksum in closed form while
// every pair still exercises the full division loop.
func gcdSum(n int32) int32 {
	bench.Start()
	var total int32
	for i := int32(1); i <= n; i++ {
		a, b := i*1071, i*462
		for b != 0 {
			a, b = b, a%b
		}
		total += a
	}
	bench.Sink(&total)
	bench.End()
	return total
}

// stringOps totals digit counts for 0..n-1. Matches the original body,
// which counted digits manually rather than formatting strings.
func stringOps(n int32) int32 {
	bench.Start()
	var total int32
	for i := int32(0); i < n; i++ {
		total += digitCount(i)
	}
	bench.Sink(&total)
	bench.End()
	return total
}

func digitCount(v int32) int32 {
	if v == 0 {
		return 1
	}
	count := int32(0)
	if v < 0 {
		v = -v
		count = 1 // minus sign
	}
	for v > 0 {
		v /= 10
		count++
	}
	return count
}
