package service

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"brandkit-admin-be/internal/dto"
	"brandkit-admin-be/internal/entity"
	"brandkit-admin-be/internal/repository/unitofwork"
	"brandkit-admin-be/internal/testutil"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type recordingJobs struct {
	mu       sync.Mutex
	payloads [][]byte
	err      error
}

func (r *recordingJobs) Publish(_ context.Context, payload []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.payloads = append(r.payloads, payload)
	return r.err
}

func (r *recordingJobs) jobs(t *testing.T) []dto.GenerationJobMessage {
	t.Helper()
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]dto.GenerationJobMessage, 0, len(r.payloads))
	for _, p := range r.payloads {
		var msg dto.GenerationJobMessage
		require.NoError(t, json.Unmarshal(p, &msg))
		out = append(out, msg)
	}
	return out
}

type statusChange struct {
	id       int64
	previous entity.GenerationStatus
	current  entity.GenerationStatus
}

type recordingEvents struct {
	mu        sync.Mutex
	requested []int64
	changes   []statusChange
}

func (r *recordingEvents) PublishGenerationRequested(_ context.Context, ep *entity.EntityProduct, _, _ string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.requested = append(r.requested, ep.Id)
}

func (r *recordingEvents) PublishGenerationStatusChanged(_ context.Context, ep *entity.EntityProduct, previous entity.GenerationStatus) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.changes = append(r.changes, statusChange{id: ep.Id, previous: previous, current: ep.Status})
}

type recordingBroadcaster struct {
	mu     sync.Mutex
	frames []*dto.EntityProductResponse
}

func (r *recordingBroadcaster) BroadcastStatus(ep *dto.EntityProductResponse) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.frames = append(r.frames, ep)
}

func (r *recordingBroadcaster) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.frames)
}

type testEnv struct {
	db          *gorm.DB
	fixture     *testutil.Fixture
	uowFactory  unitofwork.RepositoryFactory
	jobs        *recordingJobs
	events      *recordingEvents
	broadcaster *recordingBroadcaster
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	db := testutil.NewDB(t)
	return &testEnv{
		db:          db,
		fixture:     testutil.Seed(t, db),
		uowFactory:  unitofwork.NewRepositoryFactory(db),
		jobs:        &recordingJobs{},
		events:      &recordingEvents{},
		broadcaster: &recordingBroadcaster{},
	}
}

func strPtr(s string) *string { return &s }
