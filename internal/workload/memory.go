package workload

import "github.com/benchlab/sightline/bench"

// mfrSize is the array length each map/filter/reduce iteration works over.
const mfrSize = 500

// listSize is the node count each list iteration builds and traverses.
const listSize = 500

// sieve counts primes below n with a byte-flag sieve of Eratosthenes.
func sieve(n int32) int32 {
	bench.Start()
	flags := make([]byte, n)
	for i := int32(2); i < n; i++ {
		flags[i] = 1
	}

	for i := int32(2); i*i < n; i++ {
		if flags[i] != 0 {
			for j := i * i; j < n; j += i {
				flags[j] = 0
			}
		}
	}

	count := int32(0)
	for i := int32(2); i < n; i++ {
		if flags[i] != 0 {
			count++
		}
	}
	bench.Sink(&count)
	bench.End()
	return count
}

// mfr is the map/filter/reduce body: square each element, keep the even
// squares, sum them. Repeated iters times; returns the low 31 bits of the
// accumulated total.
func mfr(iters int32) int32 {
	bench.Start()
	arr := make([]int64, mfrSize)
	var total int64

	for iter := int32(0); iter < iters; iter++ {
		for i := range arr {
			arr[i] = int64(i)
		}

		for i, v := range arr {
			arr[i] = v * v
		}

		var sum int64
		for _, v := range arr {
			if v%2 == 0 {
				sum += v
			}
		}
		total += sum
	}

	result := int32(total & 0x7FFFFFFF)
	bench.Sink(&result)
	bench.End()
	return result
}

// listNode is one linked-list element; next indexes into the node arena,
// -1 meaning nil.
type listNode struct {
	val  int32
	next int32
}

// listBuild prepends listSize nodes into an arena-backed list, then
// traverses and counts them. Returns total nodes traversed across all
// iterations.
func listBuild(iters int32) int32 {
	bench.Start()
	arena := make([]listNode, listSize)
	var total int32

	for iter := int32(0); iter < iters; iter++ {
		head := int32(-1)
		for i := int32(0); i < listSize; i++ {
			arena[i] = listNode{val: i, next: head}
			head = i
		}

		count := int32(0)
		for cur := head; cur >= 0; cur = arena[cur].next {
			count++
		}
		total += count
	}

	bench.Sink(&total)
	bench.End()
	return total
}

// record mirrors the original 12-byte layout as a plain struct.
type record struct {
	id     int32
	value  int32
	active bool
}

// realWork builds n records, filters the active ones (every third), and
// sums their values.
func realWork(n int32) int32 {
	bench.Start()
	records := make([]record, n)
	for i := int32(0); i < n; i++ {
		records[i] = record{
			id:     i,
			value:  i * 2,
			active: i%3 == 0,
		}
	}

	var sum int32
	for i := range records {
		if records[i].active {
			sum += records[i].value
		}
	}

	bench.Sink(&sum)
	bench.End()
	return sum
}
