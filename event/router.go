package event

// Handler processes hooks it declares interest in
// Implemented by collaborators that react to several hooks at once
type Handler interface {
	// HandleEvent is called synchronously at the point the hook fires
	HandleEvent(et EventType)

	// EventTypes returns the hooks this handler processes
	EventTypes() []EventType
}

// Listener is a zero-argument hook callback
type Listener func()

// Router fans hooks out to listeners
//
// Architecture:
//   - Synchronous: Emit returns after every listener ran
//   - Listeners for one hook run in registration order
//   - Registration during Emit takes effect on the next Emit
//   - Not safe for concurrent use; owned by one dispatcher
type Router struct {
	listeners [EventTypeCount][]Listener
}

func NewRouter() *Router {
	return &Router{}
}

// On registers a listener for one hook; unknown hooks and nil listeners are ignored
func (r *Router) On(et EventType, fn Listener) {
	if fn == nil || et < 0 || et >= EventTypeCount {
		return
	}
	r.listeners[et] = append(r.listeners[et], fn)
}

// Register adds a handler for each of its declared hooks
func (r *Router) Register(h Handler) {
	for _, et := range h.EventTypes() {
		r.On(et, func() { h.HandleEvent(et) })
	}
}

// Emit invokes every listener registered for the hook
func (r *Router) Emit(et EventType) {
	if et < 0 || et >= EventTypeCount {
		return
	}
	// Range header is evaluated once; listeners added here wait for the next Emit
	for _, fn := range r.listeners[et] {
		fn()
	}
}

// Clear removes all listeners for one hook
func (r *Router) Clear(et EventType) {
	if et < 0 || et >= EventTypeCount {
		return
	}
	r.listeners[et] = nil
}

// handlerCount returns the number of listeners registered for the hook
func (r *Router) handlerCount(et EventType) int {
	if et < 0 || et >= EventTypeCount {
		return 0
	}
	return len(r.listeners[et])
}
