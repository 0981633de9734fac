package grid

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPosition(t *testing.T) {
	tests := []struct {
		n, row, col int
	}{
		{1, 0, 0}, {2, 0, 1}, {3, 0, 2},
		{4, 1, 0}, {5, 1, 1}, {6, 1, 2},
		{7, 2, 0}, {8, 2, 1}, {9, 2, 2},
	}
	for _, tt := range tests {
		row, col := Position(tt.n)
		assert.Equal(t, tt.row, row, "row of %d", tt.n)
		assert.Equal(t, tt.col, col, "col of %d", tt.n)
	}
}

func TestOccupiedAddKeepsOrder(t *testing.T) {
	o := Occupied{4, 1}
	o.Add(7)
	o.Add(1)
	assert.Equal(t, Occupied{4, 1, 7}, o)
	assert.Equal(t, 2, o.Index(7))
	assert.Equal(t, -1, o.Index(9))
}

func TestOccupiedUsesLowerRows(t *testing.T) {
	assert.False(t, Occupied{1, 2, 5}.UsesLowerRows())
	assert.False(t, Occupied{}.UsesLowerRows())
	assert.True(t, Occupied{1, 7}.UsesLowerRows())
	assert.True(t, Occupied{3}.UsesLowerRows())
}

func TestParseMode(t *testing.T) {
	for _, s := range []string{"move", "switch", "display"} {
		m, err := ParseMode(s)
		require.NoError(t, err)
		assert.Equal(t, Mode(s), m)
	}

	_, err := ParseMode("jump")
	assert.Error(t, err)
}

func TestParseRequest(t *testing.T) {
	assert.Equal(t, Request{Absolute: true, Dest: 7}, ParseRequest("7"))
	assert.Equal(t, Request{Absolute: true, Dest: -1}, ParseRequest("-1"))
	assert.Equal(t, Request{Direction: Up}, ParseRequest("up"))
	assert.Equal(t, Request{Direction: "foo"}, ParseRequest("foo"))
	assert.Equal(t, "7", ParseRequest("7").String())
	assert.Equal(t, "next", ParseRequest("next").String())
}
