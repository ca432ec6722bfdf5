package playback

const eventBufferSize = 16

// Subscription provides event channels for a subscriber.
// Sends never block: events are dropped when a buffer is full.
type Subscription struct {
	StateChanged <-chan StateChange
	TrackChanged <-chan TrackChange
	QueueChanged <-chan QueueChange
	Error        <-chan ErrorEvent
	Done         <-chan struct{}

	stateCh chan StateChange
	trackCh chan TrackChange
	queueCh chan QueueChange
	errorCh chan ErrorEvent
	doneCh  chan struct{}
}

func newSubscription() *Subscription {
	s := &Subscription{
		stateCh: make(chan StateChange, eventBufferSize),
		trackCh: make(chan TrackChange, eventBufferSize),
		queueCh: make(chan QueueChange, eventBufferSize),
		errorCh: make(chan ErrorEvent, eventBufferSize),
		doneCh:  make(chan struct{}),
	}
	s.StateChanged = s.stateCh
	s.TrackChanged = s.trackCh
	s.QueueChanged = s.queueCh
	s.Error = s.errorCh
	s.Done = s.doneCh
	return s
}

func (s *Subscription) close() {
	close(s.doneCh)
}

func trySend[T any](ch chan T, e T) {
	select {
	case ch <- e:
	default:
	}
}

func (s *Subscription) sendState(e StateChange) { trySend(s.stateCh, e) }

func (s *Subscription) sendTrack(e TrackChange) { trySend(s.trackCh, e) }

func (s *Subscription) sendQueue(e QueueChange) { trySend(s.queueCh, e) }

func (s *Subscription) sendError(e ErrorEvent) { trySend(s.errorCh, e) }
