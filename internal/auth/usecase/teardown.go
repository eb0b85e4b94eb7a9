package usecase

import (
	"context"
	"log/slog"
)

// Teardown discards the session with its timers and scheduled work. Late
// backend answers for it are ignored.
func (s *Usecase) Teardown(ctx context.Context) {
	_, span := s.startSpan(ctx, "Teardown")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.sess != nil {
		slog.InfoContext(ctx, "verification session discarded", "session_id", s.sess.id)
	}

	s.closeSessionLocked()
	s.epoch++
	s.sendSeq++
	s.sending = false
}
