package analytics

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type recordingRepository struct {
	mu     sync.Mutex
	events []Event
	err    error
}

func (r *recordingRepository) Create(_ context.Context, event *Event) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.events = append(r.events, *event)
	return nil
}

func (r *recordingRepository) recorded() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.events))
	copy(out, r.events)
	return out
}

func TestService_TrackPlay_RecordsEvent(t *testing.T) {
	repo := &recordingRepository{}
	svc := NewService(repo, zap.NewNop())

	svc.TrackPlay("song-1", "Midnight Drive")
	svc.Wait()

	events := repo.recorded()
	require.Len(t, events, 1)
	assert.Equal(t, EventPlay, events[0].Name)
	assert.Equal(t, "song-1", events[0].TargetID)
	assert.Equal(t, "Midnight Drive", events[0].TargetName)
}

func TestService_TrackLogin_CarriesMethod(t *testing.T) {
	repo := &recordingRepository{}
	svc := NewService(repo, zap.NewNop())

	svc.TrackLogin("uid-1", "password")
	svc.TrackSignUp("uid-2")
	svc.Wait()

	events := repo.recorded()
	require.Len(t, events, 2)

	byName := map[string]Event{}
	for _, e := range events {
		byName[e.Name] = e
	}
	assert.Equal(t, "password", byName[EventLogin].Method)
	assert.Equal(t, "uid-1", byName[EventLogin].TargetID)
	assert.Equal(t, "uid-2", byName[EventSignUp].TargetID)
}

func TestService_Track_SwallowsSinkFailures(t *testing.T) {
	repo := &recordingRepository{err: errors.New("sink down")}
	svc := NewService(repo, zap.NewNop())

	// Must not panic or surface the failure to the caller.
	svc.TrackPlay("song-1", "Midnight Drive")
	svc.Wait()

	assert.Empty(t, repo.recorded())
}
