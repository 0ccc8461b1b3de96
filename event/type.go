// Package event defines the drop dispatcher hooks and the synchronous router that
// fans them out to listeners
package event

// EventType identifies a dispatcher hook
type EventType int

const (
	// EventPrefabDropped fires after a queued item was instantiated and launched
	// Trigger: Dispatcher.Advance release | Payload: none
	EventPrefabDropped EventType = iota

	// EventSuccessfulDropQueued fires after a repetition was appended to the queue
	// Trigger: Dispatcher.QueueRepetition | Payload: none
	EventSuccessfulDropQueued

	// EventFirstDropQueued fires when the dispatcher's rep counter goes 0 -> 1
	// Trigger: Dispatcher.QueueRepetition, after EventSuccessfulDropQueued | Payload: none
	EventFirstDropQueued

	// EventLastDropQueued fires when a finite dispatcher cap is reached exactly
	// Trigger: Dispatcher.QueueRepetition, after EventFirstDropQueued | Payload: none
	EventLastDropQueued

	// EventFailedDropQueued fires when a queue request is rejected
	// Covers nil/empty table, exhausted dispatcher cap, exhausted entries and a
	// repetition whose amounts all drew 0
	// Trigger: Dispatcher.QueueRepetition | Payload: none
	EventFailedDropQueued

	EventTypeCount // Sentinel
)
