// Package sim provides the discrete-event simulation engine for capsim.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - task.go: Task lifecycle (arrived → queued/in-service → terminal) and state machine
//   - event.go: Event types that drive the simulation (Arrival, Dispatch, Completion)
//   - simulator.go: The event loop, the arrival fast path, and worker dispatch
//
// # Architecture
//
// A single Simulator owns one admission-controlled FIFO queue (queue.go), a
// fixed pool of workers (worker.go), and one rate-limited client shared by all
// workers (client.go, endpoint.go). Virtual time advances only by draining the
// pending-event heap (event_heap.go); every handler runs to completion before
// the next event is popped, so no locking is needed within a run.
//
// Sub-packages:
//   - sim/trace/: optional per-decision recording (admissions, dispatches)
//   - sim/workload/: synthetic arrival-trace generation
//
// Terminal task records are post-processed into a Report by metrics.go.
package sim
