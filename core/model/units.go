package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Units is an availability vector: index i holds the remaining availability
// of time unit i. Entries are never negative.
type Units []int

// Clone returns an independent copy of u.
func (u Units) Clone() Units {
	if u == nil {
		return nil
	}
	cp := make(Units, len(u))
	copy(cp, u)
	return cp
}

// Min returns the smallest value in u[start:start+length].
// The range must lie inside the vector and be non-empty.
func (u Units) Min(start, length int) int {
	m := u[start]
	for _, v := range u[start+1 : start+length] {
		if v < m {
			m = v
		}
	}
	return m
}

// Valid reports whether every entry is non-negative.
func (u Units) Valid() bool {
	for _, v := range u {
		if v < 0 {
			return false
		}
	}
	return true
}

// Sum returns the total availability across all units.
func (u Units) Sum() int {
	total := 0
	for _, v := range u {
		total += v
	}
	return total
}

// String renders the vector as "[a, b, c]".
func (u Units) String() string {
	var b strings.Builder
	b.WriteByte('[')
	for i, v := range u {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(strconv.Itoa(v))
	}
	b.WriteByte(']')
	return b.String()
}

// ParseUnits parses a comma separated list such as "2,2,0,1".
// Surrounding brackets and whitespace are ignored.
func ParseUnits(s string) (Units, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "[")
	s = strings.TrimSuffix(s, "]")
	if strings.TrimSpace(s) == "" {
		return Units{}, nil
	}
	parts := strings.Split(s, ",")
	out := make(Units, len(parts))
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("unit %d: %w", i, err)
		}
		if v < 0 {
			return nil, fmt.Errorf("unit %d: negative availability %d", i, v)
		}
		out[i] = v
	}
	return out, nil
}
