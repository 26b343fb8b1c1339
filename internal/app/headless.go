package app

import "context"

// RunHeadless drives the session for frames fixed steps of dt without a
// window. It stops early when ctx is cancelled.
func RunHeadless(ctx context.Context, s *Session, frames int, dt float64) error {
	for i := 0; i < frames; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		s.Frame(dt)
	}
	s.logger.Info("headless run finished", s.Summary()...)
	return nil
}
