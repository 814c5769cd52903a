package trace

// Admission reasons recorded by the engine.
const (
	// ReasonFastPath marks a task handed straight to an idle worker,
	// bypassing the queue.
	ReasonFastPath = "idle-worker-fast-path"
	// ReasonQueued marks a task accepted into the admission queue.
	ReasonQueued = "queued"
	// ReasonQueueFull marks a task rejected because the queue was at capacity.
	ReasonQueueFull = "queue-full"
)

// AdmissionRecord captures one admission-control decision at arrival time.
type AdmissionRecord struct {
	Clock    int64
	TaskID   string
	Admitted bool
	Reason   string
	QueueLen int // queue length observed after the decision
}

// DispatchRecord captures one resource-acquisition attempt at dispatch time.
// EndpointID is zero when the fallback chain was exhausted.
type DispatchRecord struct {
	Clock      int64
	TaskID     string
	WorkerID   int
	EndpointID int
	Granted    bool
}
