package workload

import "github.com/benchlab/sightline/bench"

// boardSize fixes the board at 8x8; the classic count is 92 solutions.
const boardSize = 8

// nqueens solves the 8-queens board iters times via iterative
// backtracking with an explicit row stack. Returns total solutions found
// across all iterations.
func nqueens(iters int32) int32 {
	bench.Start()
	var queens [boardSize]int32
	var total int32

	for iter := int32(0); iter < iters; iter++ {
		solutions := int32(0)
		row := int32(0)

		for i := range queens {
			queens[i] = -1
		}

		for row >= 0 {
			queens[row]++

			if queens[row] >= boardSize {
				queens[row] = -1
				row--
				continue
			}

			col := queens[row]
			ok := true
			for r := int32(0); r < row; r++ {
				d := queens[r] - col
				if d == 0 || d == r-row || d == row-r {
					ok = false
					break
				}
			}
			if !ok {
				continue
			}

			if row == boardSize-1 {
				solutions++
				continue
			}
			row++
		}
		total += solutions
	}

	bench.Sink(&total)
	bench.End()
	return total
}
