package careers

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/curanova/curanova-site/internal/db"
	"github.com/curanova/curanova-site/internal/types"
)

// fakeJobStore keeps jobs in memory.
type fakeJobStore struct {
	jobs map[uuid.UUID]*db.Job
}

func newFakeJobStore() *fakeJobStore {
	return &fakeJobStore{jobs: make(map[uuid.UUID]*db.Job)}
}

func (f *fakeJobStore) CreateJob(_ context.Context, j *db.Job) (uuid.UUID, error) {
	id := uuid.New()
	stored := *j
	stored.ID = id
	f.jobs[id] = &stored
	return id, nil
}

func (f *fakeJobStore) GetJob(_ context.Context, id uuid.UUID) (*db.Job, error) {
	return f.jobs[id], nil
}

func (f *fakeJobStore) ListJobs(_ context.Context, publishedOnly bool) ([]db.Job, error) {
	var out []db.Job
	for _, j := range f.jobs {
		if publishedOnly && j.Status != db.JobPublished {
			continue
		}
		out = append(out, *j)
	}
	return out, nil
}

func (f *fakeJobStore) UpdateJob(_ context.Context, j *db.Job) error {
	if _, ok := f.jobs[j.ID]; !ok {
		return pgx.ErrNoRows
	}
	stored := *j
	f.jobs[j.ID] = &stored
	return nil
}

func (f *fakeJobStore) DeleteJob(_ context.Context, id uuid.UUID) error {
	if _, ok := f.jobs[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.jobs, id)
	return nil
}

func seedJob(t *testing.T, store *fakeJobStore, status string) uuid.UUID {
	t.Helper()
	id, err := store.CreateJob(context.Background(), &db.Job{
		Title:       "Clinical Data Engineer",
		Department:  "Engineering",
		Location:    "Remote",
		Type:        "Full-time",
		Description: "Build data pipelines.",
		Status:      status,
	})
	require.NoError(t, err)
	return id
}

func TestJobList_VisibilityByStatus(t *testing.T) {
	store := newFakeJobStore()
	svc := NewJobService(store)

	seedJob(t, store, db.JobPublished)
	seedJob(t, store, db.JobDraft)
	seedJob(t, store, db.JobClosed)

	public, err := svc.List(context.Background(), false)
	require.NoError(t, err)
	assert.Len(t, public, 1)
	assert.Equal(t, db.JobPublished, public[0].Status)

	all, err := svc.List(context.Background(), true)
	require.NoError(t, err)
	assert.Len(t, all, 3)
}

func TestJobGet_UnpublishedHiddenFromPublic(t *testing.T) {
	store := newFakeJobStore()
	svc := NewJobService(store)
	draftID := seedJob(t, store, db.JobDraft)

	// Indistinguishable from a missing job for public callers.
	_, err := svc.Get(context.Background(), draftID, false)
	var notFound *ErrNotFound
	require.ErrorAs(t, err, &notFound)

	job, err := svc.Get(context.Background(), draftID, true)
	require.NoError(t, err)
	assert.Equal(t, db.JobDraft, job.Status)
}

func TestJobCreate(t *testing.T) {
	store := newFakeJobStore()
	svc := NewJobService(store)

	job, err := svc.Create(context.Background(), &types.CreateJobRequest{
		Title:       "ML Engineer",
		Department:  "Research",
		Location:    "Boston, MA",
		Type:        "Full-time",
		Description: "Train clinical models.",
		ClosingDate: "2026-10-01",
	})
	require.NoError(t, err)
	assert.Equal(t, db.JobDraft, job.Status, "status defaults to DRAFT")
	require.NotNil(t, job.ClosingDate)
	assert.Equal(t, "2026-10-01", job.ClosingDate.Format("2006-01-02"))
}

func TestJobCreate_RejectsUnknownStatus(t *testing.T) {
	svc := NewJobService(newFakeJobStore())

	_, err := svc.Create(context.Background(), &types.CreateJobRequest{
		Title:       "ML Engineer",
		Department:  "Research",
		Location:    "Remote",
		Type:        "Full-time",
		Description: "d",
		Status:      "OPEN",
	})
	var invalid *ErrInvalidField
	require.ErrorAs(t, err, &invalid)
	assert.Equal(t, "status", invalid.Field)
}

func TestJobUpdate_PartialMerge(t *testing.T) {
	store := newFakeJobStore()
	svc := NewJobService(store)
	id := seedJob(t, store, db.JobDraft)

	status := db.JobPublished
	title := "Senior Clinical Data Engineer"
	job, err := svc.Update(context.Background(), id, &types.UpdateJobRequest{
		Title:  &title,
		Status: &status,
	})
	require.NoError(t, err)
	assert.Equal(t, title, job.Title)
	assert.Equal(t, db.JobPublished, job.Status)
	// Untouched fields keep their stored values.
	assert.Equal(t, "Engineering", job.Department)
	assert.Equal(t, "Remote", job.Location)
}

func TestJobUpdate_NotFound(t *testing.T) {
	svc := NewJobService(newFakeJobStore())

	title := "x"
	_, err := svc.Update(context.Background(), uuid.New(), &types.UpdateJobRequest{Title: &title})
	var notFound *ErrNotFound
	assert.ErrorAs(t, err, &notFound)
}

func TestJobDelete(t *testing.T) {
	store := newFakeJobStore()
	svc := NewJobService(store)
	id := seedJob(t, store, db.JobPublished)

	require.NoError(t, svc.Delete(context.Background(), id))

	err := svc.Delete(context.Background(), id)
	var notFound *ErrNotFound
	assert.ErrorAs(t, err, &notFound)
}
