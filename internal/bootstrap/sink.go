package bootstrap

// ErrorSink receives error notifications raised by the windowing subsystem
// while one of its calls is in progress. It holds at most one pending error:
// the first report wins and Take hands it to a single consumer.
//
// The sink is passed to Windowing.Init and lives as long as the bootstrap
// run; nothing registers it globally.
type ErrorSink struct {
	pending error
	dropped int
}

// Report records err unless an earlier report is still pending. Report must
// not block: it runs on the stack of an in-progress windowing call.
func (s *ErrorSink) Report(err error) {
	if err == nil {
		return
	}
	if s.pending != nil {
		s.dropped++
		return
	}
	s.pending = err
}

// Take returns the pending error, if any, and clears it.
func (s *ErrorSink) Take() error {
	err := s.pending
	s.pending = nil
	return err
}

// Dropped is the number of reports discarded because one was already pending.
func (s *ErrorSink) Dropped() int {
	return s.dropped
}
