package sim

import "sync/atomic"

// Global event ID counter for deterministic tie-breaking
var globalEventID uint64

// EventType identifies the kind of a simulation event.
type EventType string

const (
	EventTypeCompletion EventType = "Completion"
	EventTypeDispatch   EventType = "Dispatch"
	EventTypeArrival    EventType = "Arrival"
)

// EventTypePriority defines ordering for simultaneous events.
// Lower values are processed first: completions free workers before a freed
// worker is offered queued work, and both happen before any same-tick arrival
// competes for the worker.
var EventTypePriority = map[EventType]int{
	EventTypeCompletion: 1,
	EventTypeDispatch:   2,
	EventTypeArrival:    3,
}

// Event represents a simulation event. Each event has a timestamp in ticks, a
// type (for same-tick ordering), a creation-ordered ID (final tie-breaker),
// and an Execute method that advances simulation state when invoked.
type Event interface {
	Timestamp() int64
	EventID() uint64
	Type() EventType
	Execute(sim *Simulator)
}

// BaseEvent provides common event fields
type BaseEvent struct {
	timestamp int64
	eventID   uint64
	eventType EventType
}

func newBaseEvent(timestamp int64, eventType EventType) BaseEvent {
	return BaseEvent{
		timestamp: timestamp,
		eventID:   atomic.AddUint64(&globalEventID, 1),
		eventType: eventType,
	}
}

func (e *BaseEvent) Timestamp() int64 {
	return e.timestamp
}

func (e *BaseEvent) EventID() uint64 {
	return e.eventID
}

func (e *BaseEvent) Type() EventType {
	return e.eventType
}

// ArrivalEvent represents a task arriving at the system.
type ArrivalEvent struct {
	BaseEvent
	Task *Task
}

func NewArrivalEvent(timestamp int64, task *Task) *ArrivalEvent {
	return &ArrivalEvent{
		BaseEvent: newBaseEvent(timestamp, EventTypeArrival),
		Task:      task,
	}
}

func (e *ArrivalEvent) Execute(sim *Simulator) {
	sim.handleArrival(e)
}

// DispatchEvent offers queued work to a worker that was just freed.
type DispatchEvent struct {
	BaseEvent
	Worker *Worker
}

func NewDispatchEvent(timestamp int64, w *Worker) *DispatchEvent {
	return &DispatchEvent{
		BaseEvent: newBaseEvent(timestamp, EventTypeDispatch),
		Worker:    w,
	}
}

func (e *DispatchEvent) Execute(sim *Simulator) {
	sim.handleDispatch(e)
}

// CompletionEvent represents a worker finishing its current task.
type CompletionEvent struct {
	BaseEvent
	Worker *Worker
	Task   *Task
}

func NewCompletionEvent(timestamp int64, w *Worker, task *Task) *CompletionEvent {
	return &CompletionEvent{
		BaseEvent: newBaseEvent(timestamp, EventTypeCompletion),
		Worker:    w,
		Task:      task,
	}
}

func (e *CompletionEvent) Execute(sim *Simulator) {
	sim.handleCompletion(e)
}
