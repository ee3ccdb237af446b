package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitsClone(t *testing.T) {
	u := Units{1, 2, 3}
	cp := u.Clone()
	cp[0] = 9
	assert.Equal(t, 1, u[0], "clone must not alias the original")
	assert.Nil(t, Units(nil).Clone())
}

func TestUnitsMin(t *testing.T) {
	u := Units{4, 2, 7, 1, 5}
	assert.Equal(t, 2, u.Min(0, 3))
	assert.Equal(t, 1, u.Min(2, 3))
	assert.Equal(t, 5, u.Min(4, 1))
}

func TestUnitsValid(t *testing.T) {
	assert.True(t, Units{0, 1, 2}.Valid())
	assert.False(t, Units{0, -1, 2}.Valid())
}

func TestUnitsString(t *testing.T) {
	assert.Equal(t, "[2, 2, 0]", Units{2, 2, 0}.String())
	assert.Equal(t, "[]", Units{}.String())
}

func TestParseUnits(t *testing.T) {
	u, err := ParseUnits("[2, 2,2,0 ,2]")
	require.NoError(t, err)
	assert.Equal(t, Units{2, 2, 2, 0, 2}, u)

	u, err = ParseUnits("")
	require.NoError(t, err)
	assert.Empty(t, u)

	_, err = ParseUnits("1,x")
	assert.Error(t, err)
	_, err = ParseUnits("1,-2")
	assert.Error(t, err)
}

func TestShape(t *testing.T) {
	assert.Error(t, Shape{NumUnits: 10}.Validate())
	assert.Error(t, Shape{NumUnits: -1, ShiftLength: 2}.Validate())
	assert.NoError(t, Shape{NumUnits: 672, ShiftLength: 24}.Validate())
	assert.Equal(t, 649, Shape{NumUnits: 672, ShiftLength: 24}.Windows())
	assert.Equal(t, 0, Shape{NumUnits: 2, ShiftLength: 3}.Windows())
	assert.Equal(t, 1, Shape{NumUnits: 3, ShiftLength: 3}.Windows())
}
