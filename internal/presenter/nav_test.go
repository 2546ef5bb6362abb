package presenter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNavigatorClamps(t *testing.T) {
	n := NewNavigator(3)
	assert.Equal(t, 0, n.Index())
	assert.True(t, n.First())

	n = n.Prev()
	assert.Equal(t, 0, n.Index())

	n = n.Next().Next().Next().Next()
	assert.Equal(t, 2, n.Index())
	assert.True(t, n.Last())

	assert.Equal(t, 0, n.Jump(-5).Index())
	assert.Equal(t, 2, n.Jump(99).Index())
	assert.Equal(t, 1, n.Jump(1).Index())
	assert.Equal(t, 0, n.Start().Index())
	assert.Equal(t, 2, n.Start().End().Index())
}

func TestNavigatorEmpty(t *testing.T) {
	n := NewNavigator(0)
	assert.Equal(t, 0, n.Next().Index())
	assert.Equal(t, 0, n.End().Index())
	assert.Equal(t, 0.0, n.Percent())
}

func TestNavigatorResize(t *testing.T) {
	n := NewNavigator(5).Jump(4)
	assert.Equal(t, 4, n.Resize(10).Index())
	assert.Equal(t, 1, n.Resize(2).Index())
	assert.Equal(t, 0, n.Resize(0).Index())
}

func TestNavigatorPercent(t *testing.T) {
	n := NewNavigator(4)
	assert.InDelta(t, 0.25, n.Percent(), 1e-9)
	assert.InDelta(t, 1.0, n.End().Percent(), 1e-9)
}
