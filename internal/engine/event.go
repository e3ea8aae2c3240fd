package engine

// Handle identifies a registered listener so it can be removed later.
// Function values can't be compared in Go, so removal goes through the
// handle returned at registration time.
type Handle int

type listener struct {
	handle   Handle
	callback func()
}

// Event is a multi-cast event. Listeners are invoked in registration order.
type Event struct {
	next      Handle
	listeners []listener
}

// AddListener registers a callback and returns a handle for later removal.
func (e *Event) AddListener(callback func()) Handle {
	if callback == nil {
		return 0
	}
	e.next++
	e.listeners = append(e.listeners, listener{handle: e.next, callback: callback})
	return e.next
}

// RemoveListener unregisters the listener with the given handle.
func (e *Event) RemoveListener(h Handle) {
	for i, l := range e.listeners {
		if l.handle == h {
			e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
			return
		}
	}
}

// RemoveAllListeners clears all listeners.
func (e *Event) RemoveAllListeners() {
	e.listeners = nil
}

// Invoke calls all registered listeners.
func (e *Event) Invoke() {
	for _, l := range e.listeners {
		l.callback()
	}
}

// ListenerCount returns the number of registered listeners.
func (e *Event) ListenerCount() int {
	return len(e.listeners)
}

type listenerArg[T any] struct {
	handle   Handle
	callback func(T)
}

// EventWithArg is a multi-cast event carrying one argument.
type EventWithArg[T any] struct {
	next      Handle
	listeners []listenerArg[T]
}

func (e *EventWithArg[T]) AddListener(callback func(T)) Handle {
	if callback == nil {
		return 0
	}
	e.next++
	e.listeners = append(e.listeners, listenerArg[T]{handle: e.next, callback: callback})
	return e.next
}

func (e *EventWithArg[T]) RemoveListener(h Handle) {
	for i, l := range e.listeners {
		if l.handle == h {
			e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
			return
		}
	}
}

func (e *EventWithArg[T]) RemoveAllListeners() {
	e.listeners = nil
}

func (e *EventWithArg[T]) Invoke(arg T) {
	for _, l := range e.listeners {
		l.callback(arg)
	}
}

func (e *EventWithArg[T]) ListenerCount() int {
	return len(e.listeners)
}
