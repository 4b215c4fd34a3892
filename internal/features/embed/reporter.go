package embed

// ReporterState tracks where a frame's reporter is in its lifecycle.
type ReporterState string

const (
	StateIdle      ReporterState = "IDLE"
	StateObserving ReporterState = "OBSERVING"
	StateMeasuring ReporterState = "MEASURING"
	StateReporting ReporterState = "REPORTING"
)

// Sink receives outbound messages for the host page. Posting is
// fire-and-forget: no acknowledgment, no retry, no ordering guarantee
// beyond last-message-wins per embed id. Implementations must not block
// because the reporter runs on the frame's own event loop.
type Sink interface {
	Post(message ResizeMessage)
}

// Reporter implements the frame side of the resize protocol. It is
// cooperative and single-threaded per frame: all calls are expected from
// the same event loop, so it holds no locks.
type Reporter struct {
	embedID string
	sink    Sink
	state   ReporterState
}

func NewReporter(params Params, sink Sink) *Reporter {
	return &Reporter{
		embedID: params.ID(),
		sink:    sink,
		state:   StateIdle,
	}
}

func (r *Reporter) EmbedID() string {
	return r.embedID
}

func (r *Reporter) State() ReporterState {
	return r.state
}

// Start begins observing the frame's content box. Height changes observed
// before Start are dropped.
func (r *Reporter) Start() {
	if r.state == StateIdle {
		r.state = StateObserving
	}
}

// OnHeightChange is invoked for every observed size change, including the
// first paint. Each call measures and reports; repeated heights are still
// posted because the host only keeps the latest value anyway.
func (r *Reporter) OnHeightChange(height int) {
	if r.state == StateIdle {
		return
	}

	r.state = StateMeasuring

	message := NewResizeMessage(height, r.embedID)

	r.state = StateReporting
	r.sink.Post(message)

	r.state = StateObserving
}
