package sim

import "container/heap"

// pendingEvents implements heap.Interface over the simulator's future events.
// See canonical Golang example here: https://pkg.go.dev/container/heap#example-package-IntHeap
type pendingEvents []Event

func (pe pendingEvents) Len() int { return len(pe) }

// Less orders deterministically: timestamp → type priority → event ID.
// The final event-ID tie-break makes equal (timestamp, type) events resolve
// in creation order, so identical inputs replay identically.
func (pe pendingEvents) Less(i, j int) bool {
	ei, ej := pe[i], pe[j]
	if ei.Timestamp() != ej.Timestamp() {
		return ei.Timestamp() < ej.Timestamp()
	}
	if pi, pj := EventTypePriority[ei.Type()], EventTypePriority[ej.Type()]; pi != pj {
		return pi < pj
	}
	return ei.EventID() < ej.EventID()
}

func (pe pendingEvents) Swap(i, j int) { pe[i], pe[j] = pe[j], pe[i] }

func (pe *pendingEvents) Push(x any) {
	*pe = append(*pe, x.(Event))
}

func (pe *pendingEvents) Pop() any {
	old := *pe
	n := len(old)
	item := old[n-1]
	*pe = old[0 : n-1]
	return item
}

// EventHeap is the simulator's time-ordered pending-event collection.
type EventHeap struct {
	events pendingEvents
}

// NewEventHeap creates an empty event heap.
func NewEventHeap() *EventHeap {
	return &EventHeap{events: make(pendingEvents, 0)}
}

// Len returns the number of pending events.
func (h *EventHeap) Len() int {
	return len(h.events)
}

// Schedule adds an event to the heap.
func (h *EventHeap) Schedule(e Event) {
	heap.Push(&h.events, e)
}

// PopNext removes and returns the next event, nil when the heap is empty.
func (h *EventHeap) PopNext() Event {
	if len(h.events) == 0 {
		return nil
	}
	return heap.Pop(&h.events).(Event)
}

// Peek returns the next event without removing it, nil when the heap is empty.
func (h *EventHeap) Peek() Event {
	if len(h.events) == 0 {
		return nil
	}
	return h.events[0]
}
