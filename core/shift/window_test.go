package shift

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/kilianp07/shiftcheck/core/model"
)

// naiveFind scans every position and checks the whole window.
func naiveFind(units model.Units, length, from int) (int, bool) {
	for i := from; i <= len(units)-length; i++ {
		ok := true
		for j := 0; j < length; j++ {
			if units[i+j] <= 0 {
				ok = false
				break
			}
		}
		if ok {
			return i, true
		}
	}
	return -1, false
}

func TestFindWindow(t *testing.T) {
	units := model.Units{2, 2, 2, 0, 2, 2, 2}
	cases := []struct {
		name   string
		units  model.Units
		length int
		from   int
		want   int
		found  bool
	}{
		{"first", units, 3, 0, 0, true},
		{"skip zero", units, 3, 1, 4, true},
		{"last window", units, 3, 4, 4, true},
		{"past last", units, 3, 5, -1, false},
		{"negative cursor", units, 3, -3, 0, true},
		{"all zero", model.Units{0, 0, 0, 0}, 2, 0, -1, false},
		{"too short", model.Units{1, 1}, 3, 0, -1, false},
		{"exact length", model.Units{3, 1, 2}, 3, 0, 0, true},
		{"zero length", units, 0, 0, -1, false},
		{"empty", model.Units{}, 1, 0, -1, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, ok := FindWindow(c.units, c.length, c.from)
			assert.Equal(t, c.found, ok)
			assert.Equal(t, c.want, got)
		})
	}
}

func TestFindWindowMatchesNaiveScan(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 500; i++ {
		n := rng.Intn(30)
		units := make(model.Units, n)
		for j := range units {
			units[j] = rng.Intn(3)
		}
		length := 1 + rng.Intn(5)
		from := rng.Intn(n + 1)
		wantIdx, wantOK := naiveFind(units, length, from)
		gotIdx, gotOK := FindWindow(units, length, from)
		if wantOK != gotOK || wantIdx != gotIdx {
			t.Fatalf("units=%v length=%d from=%d: want (%d,%v) got (%d,%v)",
				units, length, from, wantIdx, wantOK, gotIdx, gotOK)
		}
	}
}

func TestReduce(t *testing.T) {
	units := model.Units{2, 2, 2, 0, 2, 2, 2}
	got := Reduce(units, 0, 3, 2)
	assert.Equal(t, model.Units{0, 0, 0, 0, 2, 2, 2}, got)
	assert.Equal(t, model.Units{2, 2, 2, 0, 2, 2, 2}, units, "input must not change")
}

func TestReduceByZeroIsIdentity(t *testing.T) {
	units := model.Units{3, 1, 4, 1, 5}
	got := Reduce(units, 1, 3, 0)
	assert.Equal(t, units, got)
	got[0] = 99
	assert.Equal(t, 3, units[0], "result must be a copy")
}

func TestReduceKeepsInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	for i := 0; i < 300; i++ {
		n := 1 + rng.Intn(20)
		units := make(model.Units, n)
		for j := range units {
			units[j] = rng.Intn(5)
		}
		length := 1 + rng.Intn(n)
		start := rng.Intn(n - length + 1)
		k := rng.Intn(units.Min(start, length) + 1)

		got := Reduce(units, start, length, k)
		if !got.Valid() {
			t.Fatalf("negative entry after reducing %v at %d by %d: %v", units, start, k, got)
		}
		for j := range units {
			inside := j >= start && j < start+length
			switch {
			case inside && got[j] != units[j]-k:
				t.Fatalf("unit %d: want %d got %d", j, units[j]-k, got[j])
			case !inside && got[j] != units[j]:
				t.Fatalf("unit %d outside window changed: %d -> %d", j, units[j], got[j])
			}
		}
	}
}
