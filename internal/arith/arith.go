// internal/arith/arith.go
//
// Column-arithmetic problems ("Rechnen wie im Heft").
// Responsibilities:
//   - Generate addition/subtraction tasks whose results never go
//     negative and always fit the 6-column notebook grid.
//   - Compute the expected result digits and the carry/borrow row
//     (Merkzahlen) for grid checking.
//   - Check a submitted result, either as a plain number or as filled
//     grid cells.
//
// Grid layout (mirroring the notebook): GridCols columns, digits
// right-aligned; the carry row sits between the operand rows and the
// result row.
package arith

import (
	"math/rand"
	"strconv"
	"strings"
)

// Op is the arithmetic operator of a problem.
type Op string

const (
	OpAdd Op = "+"
	OpSub Op = "-"
)

// GridCols is the notebook grid width; enough for results up to 999999.
const GridCols = 6

// Problem is one column-arithmetic task.
type Problem struct {
	A  int
	B  int
	Op Op
}

// NewProblem generates a random task. Operand ranges keep sums below
// 91000 and differences at least 1, so results stay positive and
// grid-sized.
func NewProblem(rng *rand.Rand) Problem {
	if rng.Intn(2) == 0 {
		a := rng.Intn(80000) + 1000 // 1000..80999
		b := rng.Intn(90000-a) + 1000
		return Problem{A: a, B: b, Op: OpAdd}
	}
	a := rng.Intn(80000) + 2000 // 2000..81999
	b := rng.Intn(a-1000) + 1000
	return Problem{A: a, B: b, Op: OpSub}
}

// Result computes the expected answer.
func (p Problem) Result() int {
	if p.Op == OpSub {
		return p.A - p.B
	}
	return p.A + p.B
}

// String renders the task, e.g. "34512 + 11200".
func (p Problem) String() string {
	return strconv.Itoa(p.A) + " " + string(p.Op) + " " + strconv.Itoa(p.B)
}

// CheckResult reports whether got is the correct answer.
func (p Problem) CheckResult(got int) bool { return got == p.Result() }

// ResultCells returns the expected result digits, right-aligned into
// GridCols cells; unused leading cells are empty strings.
func (p Problem) ResultCells() []string {
	return rightAligned(p.Result())
}

// CarryCells returns the expected carry (addition) or borrow
// (subtraction) digits per grid column. A cell is empty where no carry
// is written; a written carry is always "1" for two-operand tasks.
func (p Problem) CarryCells() []string {
	cells := make([]string, GridCols)
	carry := 0
	for place := 0; place < GridCols-1; place++ {
		var next int
		if p.Op == OpAdd {
			next = (digitAt(p.A, place) + digitAt(p.B, place) + carry) / 10
		} else {
			if digitAt(p.A, place)-digitAt(p.B, place)-carry < 0 {
				next = 1
			}
		}
		if next > 0 {
			// Written above the next column to the left.
			cells[GridCols-2-place] = strconv.Itoa(next)
		}
		carry = next
	}
	return cells
}

// CheckGrid checks a filled-in grid. The result row must parse to the
// correct number. Carry cells are optional: empty cells are accepted,
// filled cells must match the expected carry ("0" counts as empty).
func (p Problem) CheckGrid(result, carry []string) bool {
	var sb strings.Builder
	for _, c := range result {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		sb.WriteString(c)
	}
	got, err := strconv.Atoi(sb.String())
	if err != nil || got != p.Result() {
		return false
	}

	expected := p.CarryCells()
	for i, c := range carry {
		if i >= GridCols {
			return false
		}
		c = strings.TrimSpace(c)
		if c == "" || (c == "0" && expected[i] == "") {
			continue
		}
		if c != expected[i] {
			return false
		}
	}
	return true
}

// digitAt returns the decimal digit of n at the given place (0 = ones).
func digitAt(n, place int) int {
	for ; place > 0; place-- {
		n /= 10
	}
	return n % 10
}

// rightAligned spreads n's digits over GridCols cells, right-aligned.
func rightAligned(n int) []string {
	cells := make([]string, GridCols)
	str := strconv.Itoa(n)
	for i := 0; i < len(str) && i < GridCols; i++ {
		cells[GridCols-1-i] = string(str[len(str)-1-i])
	}
	return cells
}
