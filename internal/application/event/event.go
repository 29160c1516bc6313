package event

import (
	"sync"

	"github.com/penwyp/go-linechart/internal/core/model"
)

// Kind is the type of a pointer event
type Kind int

const (
	PointerMove Kind = iota
	PointerLeave
	PointerDown
	PointerUp
)

func (k Kind) String() string {
	switch k {
	case PointerMove:
		return "pointer-move"
	case PointerLeave:
		return "pointer-leave"
	case PointerDown:
		return "pointer-down"
	case PointerUp:
		return "pointer-up"
	default:
		return "unknown"
	}
}

// Role identifies the slider part a pointer-down landed on
type Role string

const (
	RoleNone   Role = ""
	RoleWindow Role = "window"
	RoleLeft   Role = "left"
	RoleRight  Role = "right"
)

// Pointer is a pointer event in client coordinates. PageX equals ClientX for
// hosts that do not scroll.
type Pointer struct {
	Kind    Kind
	ClientX float64
	ClientY float64
	PageX   float64
	Target  Role
}

// Handler receives pointer events
type Handler func(Pointer)

// Element is an event target with a position on screen
type Element interface {
	// Listen registers h for events of kind and returns a function removing
	// the registration. Calling the returned function twice is safe.
	Listen(kind Kind, h Handler) (remove func())
	// Rect returns the element's bounding box in client coordinates
	Rect() model.Rect
}

type listener struct {
	id uint64
	h  Handler
}

// Dispatcher is an Element delivering events to its listeners in
// registration order.
type Dispatcher struct {
	mu        sync.Mutex
	rect      model.Rect
	listeners map[Kind][]listener
	nextID    uint64
}

// NewDispatcher creates a dispatcher occupying rect
func NewDispatcher(rect model.Rect) *Dispatcher {
	return &Dispatcher{
		rect:      rect,
		listeners: make(map[Kind][]listener),
	}
}

func (d *Dispatcher) Listen(kind Kind, h Handler) func() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.nextID++
	id := d.nextID
	d.listeners[kind] = append(d.listeners[kind], listener{id: id, h: h})

	var once sync.Once
	return func() {
		once.Do(func() { d.remove(kind, id) })
	}
}

func (d *Dispatcher) remove(kind Kind, id uint64) {
	d.mu.Lock()
	defer d.mu.Unlock()

	ls := d.listeners[kind]
	for i, l := range ls {
		if l.id == id {
			d.listeners[kind] = append(ls[:i:i], ls[i+1:]...)
			return
		}
	}
}

// Dispatch delivers ev to the listeners registered for its kind. Listeners
// added or removed by a handler take effect for the next event.
func (d *Dispatcher) Dispatch(ev Pointer) {
	d.mu.Lock()
	ls := make([]listener, len(d.listeners[ev.Kind]))
	copy(ls, d.listeners[ev.Kind])
	d.mu.Unlock()

	for _, l := range ls {
		l.h(ev)
	}
}

// ListenerCount returns the number of listeners registered for kind
func (d *Dispatcher) ListenerCount(kind Kind) int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.listeners[kind])
}

func (d *Dispatcher) Rect() model.Rect {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.rect
}

// SetRect moves the element
func (d *Dispatcher) SetRect(rect model.Rect) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.rect = rect
}
