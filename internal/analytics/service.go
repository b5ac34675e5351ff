// File: internal/analytics/service.go
package analytics

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Service records usage events. Recording is fire-and-forget: callers never
// block on the sink and failures are logged, not surfaced.
type Service interface {
	TrackLogin(uid, method string)
	TrackSignUp(uid string)
	TrackPlay(songID, songName string)
	// Wait blocks until all in-flight events have been flushed. Used on shutdown.
	Wait()
}

// ServiceImplementation implements the Service interface.
type ServiceImplementation struct {
	repo   Repository
	logger *zap.Logger
	wg     sync.WaitGroup
}

var _ Service = (*ServiceImplementation)(nil)

// NewService creates a new analytics service.
func NewService(repo Repository, logger *zap.Logger) *ServiceImplementation {
	return &ServiceImplementation{
		repo:   repo,
		logger: logger.Named("AnalyticsService"),
	}
}

// TrackLogin records a login event with the sign-in method used.
func (s *ServiceImplementation) TrackLogin(uid, method string) {
	s.track(Event{Name: EventLogin, Method: method, TargetID: uid})
}

// TrackSignUp records a sign_up event.
func (s *ServiceImplementation) TrackSignUp(uid string) {
	s.track(Event{Name: EventSignUp, TargetID: uid})
}

// TrackPlay records a play event carrying the song id and its name at play time.
func (s *ServiceImplementation) TrackPlay(songID, songName string) {
	s.track(Event{Name: EventPlay, TargetID: songID, TargetName: songName})
}

// Wait blocks until all in-flight events have been flushed.
func (s *ServiceImplementation) Wait() {
	s.wg.Wait()
}

func (s *ServiceImplementation) track(event Event) {
	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := s.repo.Create(ctx, &event); err != nil {
			s.logger.Warn("Failed to record analytics event",
				zap.String("event", event.Name),
				zap.String("target_id", event.TargetID),
				zap.Error(err),
			)
		}
	}()
}
