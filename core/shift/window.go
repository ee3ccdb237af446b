package shift

import "github.com/kilianp07/shiftcheck/core/model"

// FindWindow returns the smallest index i >= from such that every unit in
// [i, i+length) has positive availability. The second result is false when
// no such window starts at or after from.
func FindWindow(units model.Units, length, from int) (int, bool) {
	if length <= 0 {
		return -1, false
	}
	if from < 0 {
		from = 0
	}
	last := len(units) - length
	if from > last {
		return -1, false
	}
	zeros := 0
	for _, v := range units[from : from+length] {
		if v <= 0 {
			zeros++
		}
	}
	for i := from; ; i++ {
		if zeros == 0 {
			return i, true
		}
		if i == last {
			return -1, false
		}
		if units[i] <= 0 {
			zeros--
		}
		if units[i+length] <= 0 {
			zeros++
		}
	}
}

// Reduce returns a copy of units where every entry of [start, start+length)
// is lowered by k. The input is left untouched.
//
// Callers must keep k within the window minimum so no entry goes negative.
func Reduce(units model.Units, start, length, k int) model.Units {
	out := units.Clone()
	if k == 0 {
		return out
	}
	for i := start; i < start+length; i++ {
		out[i] -= k
	}
	return out
}
