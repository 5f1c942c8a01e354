package engine_test

import "errors"

// fixedRoller always rolls the same face, which makes weighted draws
// deterministic: 1 picks the first candidate, size picks the last
type fixedRoller struct {
	face int
}

func (r *fixedRoller) Roll(size int) (int, error) {
	if r.face > size {
		return size, nil
	}
	if r.face < 1 {
		return size, nil
	}
	return r.face, nil
}

func (r *fixedRoller) RollN(count, size int) ([]int, error) {
	out := make([]int, count)
	for i := range out {
		out[i], _ = r.Roll(size)
	}
	return out, nil
}

type failingRoller struct{}

func (failingRoller) Roll(int) (int, error)          { return 0, errors.New("dice jammed") }
func (failingRoller) RollN(int, int) ([]int, error) { return nil, errors.New("dice jammed") }
