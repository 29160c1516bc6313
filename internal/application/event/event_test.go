package event

import (
	"testing"

	"github.com/penwyp/go-linechart/internal/core/model"
	"github.com/stretchr/testify/assert"
)

func TestDispatcherDeliversByKind(t *testing.T) {
	d := NewDispatcher(model.Rect{Width: 600, Height: 200})

	var moves, leaves int
	d.Listen(PointerMove, func(Pointer) { moves++ })
	d.Listen(PointerLeave, func(Pointer) { leaves++ })

	d.Dispatch(Pointer{Kind: PointerMove})
	d.Dispatch(Pointer{Kind: PointerMove})
	d.Dispatch(Pointer{Kind: PointerLeave})
	d.Dispatch(Pointer{Kind: PointerUp})

	assert.Equal(t, 2, moves)
	assert.Equal(t, 1, leaves)
}

func TestDispatcherRemove(t *testing.T) {
	d := NewDispatcher(model.Rect{})

	var calls []string
	removeA := d.Listen(PointerMove, func(Pointer) { calls = append(calls, "a") })
	d.Listen(PointerMove, func(Pointer) { calls = append(calls, "b") })

	d.Dispatch(Pointer{Kind: PointerMove})
	removeA()
	removeA()
	d.Dispatch(Pointer{Kind: PointerMove})

	assert.Equal(t, []string{"a", "b", "b"}, calls)
	assert.Equal(t, 1, d.ListenerCount(PointerMove))
}

func TestDispatcherRemoveDuringDispatch(t *testing.T) {
	d := NewDispatcher(model.Rect{})

	count := 0
	var remove func()
	remove = d.Listen(PointerUp, func(Pointer) {
		count++
		remove()
	})

	d.Dispatch(Pointer{Kind: PointerUp})
	d.Dispatch(Pointer{Kind: PointerUp})
	assert.Equal(t, 1, count)
	assert.Zero(t, d.ListenerCount(PointerUp))
}

func TestDispatcherRect(t *testing.T) {
	d := NewDispatcher(model.Rect{Left: 10, Top: 20, Width: 600, Height: 200})
	assert.True(t, d.Rect().Contains(15, 25))
	assert.False(t, d.Rect().Contains(5, 25))

	d.SetRect(model.Rect{Width: 1, Height: 1})
	assert.Equal(t, model.Rect{Width: 1, Height: 1}, d.Rect())
}

func TestKindString(t *testing.T) {
	assert.Equal(t, "pointer-move", PointerMove.String())
	assert.Equal(t, "pointer-up", PointerUp.String())
	assert.Equal(t, "unknown", Kind(42).String())
}
