package sim

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/capacity-sim/capacity-sim/sim/trace"
)

// Simulator is the core object that holds virtual time, system state, and the
// event loop. All state is mutated exclusively by event handlers, one event at
// a time; the single-threaded loop is itself the serialization mechanism.
// Independent runs may be executed in parallel, but a Simulator must not be
// shared across goroutines.
type Simulator struct {
	Clock  int64
	Config Config
	// Pending has all the simulator events, like arrival and completion events
	Pending *EventHeap
	// Queue holds tasks that arrived while every worker was busy
	Queue   *AdmissionQueue
	Client  *RateLimitedClient
	Workers []*Worker
	// Tasks is the full input task list; every entry is terminal after Run
	Tasks []*Task
	// Trace records per-decision data when non-nil
	Trace *trace.SimulationTrace
}

// NewSimulator validates the configuration and the input tasks and builds a
// run. Returns an error instead of a simulator when either is malformed.
func NewSimulator(cfg Config, tasks []*Task) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	for _, t := range tasks {
		if t.ArrivalTime < 0 {
			return nil, fmt.Errorf("task %s: arrival time must be non-negative, got %d", t.ID, t.ArrivalTime)
		}
		if t.ServiceDuration < 0 {
			return nil, fmt.Errorf("task %s: service duration must be non-negative, got %d", t.ID, t.ServiceDuration)
		}
	}

	client := NewRateLimitedClient(cfg.RPMLimits)
	workers := make([]*Worker, 0, cfg.Workers)
	for i := 0; i < cfg.Workers; i++ {
		workers = append(workers, NewWorker(i, client))
	}

	s := &Simulator{
		Config:  cfg,
		Pending: NewEventHeap(),
		Queue:   NewAdmissionQueue(cfg.QueueCapacity),
		Client:  client,
		Workers: workers,
		Tasks:   tasks,
	}

	for _, t := range tasks {
		t.State = StateArrived
		s.Schedule(NewArrivalEvent(t.ArrivalTime, t))
	}
	return s, nil
}

// Schedule pushes an event into the simulator's pending-event heap.
func (s *Simulator) Schedule(ev Event) {
	s.Pending.Schedule(ev)
}

// Run drains the event heap to empty and returns the terminal task list.
// Ties at equal timestamps resolve completion < dispatch < arrival, then by
// event creation order, so runs with identical input are reproducible.
func (s *Simulator) Run() []*Task {
	for s.Pending.Len() > 0 {
		ev := s.Pending.PopNext()
		s.Clock = ev.Timestamp()
		logrus.Debugf("[tick %07d] Executing %s event", s.Clock, ev.Type())
		ev.Execute(s)
	}
	logrus.Infof("[tick %07d] Simulation ended: %d tasks terminal", s.Clock, len(s.Tasks))
	return s.Tasks
}

// idleWorker returns the lowest-ID idle worker, nil when all are busy.
func (s *Simulator) idleWorker() *Worker {
	for _, w := range s.Workers {
		if w.IsIdle() {
			return w
		}
	}
	return nil
}

// handleArrival admits the task to an idle worker or the queue. An idle
// worker bypasses the queue entirely (queue of depth 0 when capacity exists);
// otherwise the queue's admission control decides, and a full queue makes the
// task terminal on the spot.
func (s *Simulator) handleArrival(e *ArrivalEvent) {
	t := e.Task
	t.QueueEntryTime = s.Clock
	logrus.Debugf("[tick %07d] << Arrival: %s", s.Clock, t.ID)

	if w := s.idleWorker(); w != nil {
		s.recordAdmission(t, true, trace.ReasonFastPath)
		s.startService(w, t)
		if t.State == StateFailed {
			// The worker is still idle; offer it queued work so an
			// exhaustion failure never stalls throughput.
			s.dispatchWorker(w)
		}
		return
	}

	if s.Queue.TryEnqueue(t) {
		t.State = StateQueued
		s.recordAdmission(t, true, trace.ReasonQueued)
		return
	}
	t.State = StateRejected
	s.recordAdmission(t, false, trace.ReasonQueueFull)
	logrus.Debugf("[tick %07d] task %s rejected, queue at capacity %d", s.Clock, t.ID, s.Queue.Capacity())
}

// handleCompletion marks the worker's task completed, frees the worker, and
// schedules a same-tick dispatch so the freed worker is offered the next
// queued task before any same-tick arrival is considered.
func (s *Simulator) handleCompletion(e *CompletionEvent) {
	t := e.Worker.Complete(s.Clock)
	logrus.Debugf("[tick %07d] >> Completed: %s on worker %d", s.Clock, t.ID, e.Worker.ID())
	s.Schedule(NewDispatchEvent(s.Clock, e.Worker))
}

// handleDispatch drains queued work into the freed worker.
func (s *Simulator) handleDispatch(e *DispatchEvent) {
	s.dispatchWorker(e.Worker)
}

// dispatchWorker pulls queue heads into w until w becomes busy or the queue
// is empty. Exhaustion failures leave w idle, so the loop keeps pulling: a
// failed resource call never blocks the work behind it.
func (s *Simulator) dispatchWorker(w *Worker) {
	for w.IsIdle() {
		t := s.Queue.Dequeue()
		if t == nil {
			return
		}
		s.startService(w, t)
	}
}

// startService invokes the worker's resource call and, on a grant, schedules
// the matching completion event. Failures are terminal and generate no event.
func (s *Simulator) startService(w *Worker, t *Task) {
	if w.StartService(t, s.Clock) {
		s.recordDispatch(t, w, true)
		s.Schedule(NewCompletionEvent(w.CompletionTime(), w, t))
		return
	}
	s.recordDispatch(t, w, false)
}

func (s *Simulator) recordAdmission(t *Task, admitted bool, reason string) {
	if s.Trace == nil || !s.Trace.Enabled() {
		return
	}
	s.Trace.RecordAdmission(trace.AdmissionRecord{
		Clock:    s.Clock,
		TaskID:   t.ID,
		Admitted: admitted,
		Reason:   reason,
		QueueLen: s.Queue.Len(),
	})
}

func (s *Simulator) recordDispatch(t *Task, w *Worker, granted bool) {
	if s.Trace == nil || !s.Trace.Enabled() {
		return
	}
	s.Trace.RecordDispatch(trace.DispatchRecord{
		Clock:      s.Clock,
		TaskID:     t.ID,
		WorkerID:   w.ID(),
		EndpointID: t.EndpointID,
		Granted:    granted,
	})
}
