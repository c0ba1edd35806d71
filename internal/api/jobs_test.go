package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/joblane/joblane/internal/db"
	"github.com/joblane/joblane/internal/models"
)

type memJobStore struct {
	mu    sync.Mutex
	jobs  map[string]models.Job
	order []string
}

func newMemJobStore() *memJobStore {
	return &memJobStore{jobs: make(map[string]models.Job)}
}

func (s *memJobStore) Insert(ctx context.Context, job *models.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	job.ID = primitive.NewObjectID()
	job.CreatedAt = now
	job.UpdatedAt = now

	s.jobs[job.ID.Hex()] = *job
	s.order = append(s.order, job.ID.Hex())
	return nil
}

func (s *memJobStore) List(ctx context.Context) ([]models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Job, 0, len(s.order))
	for i := len(s.order) - 1; i >= 0; i-- {
		out = append(out, s.jobs[s.order[i]])
	}
	return out, nil
}

func (s *memJobStore) FindByID(ctx context.Context, id string) (*models.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	job, ok := s.jobs[id]
	if !ok {
		return nil, db.ErrJobNotFound
	}
	return &job, nil
}

func (s *memJobStore) Update(ctx context.Context, id string, job *models.Job) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.jobs[id]
	if !ok {
		return db.ErrJobNotFound
	}

	existing.Title = job.Title
	existing.Type = job.Type
	existing.Description = job.Description
	existing.Company = job.Company
	existing.Location = job.Location
	existing.Salary = job.Salary
	existing.UpdatedAt = time.Now().UTC()

	s.jobs[id] = existing
	return nil
}

func (s *memJobStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.jobs[id]; !ok {
		return db.ErrJobNotFound
	}
	delete(s.jobs, id)
	for i, existing := range s.order {
		if existing == id {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

func jobPayload() map[string]any {
	return map[string]any{
		"title":       "Backend Engineer",
		"type":        "Full-Time",
		"description": "Build the services behind the board.",
		"company": map[string]any{
			"name":         "Northwind Labs",
			"contactEmail": "talent@northwindlabs.example",
			"contactPhone": "555-0101",
		},
		"location": "Remote",
		"salary":   120000,
	}
}

func signupAndToken(t *testing.T, router http.Handler) string {
	t.Helper()

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, newJSONRequest(t, http.MethodPost, "/api/users/signup", signupPayload()))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp map[string]any
	decodeBody(t, rec.Body.Bytes(), &resp)
	token, _ := resp["token"].(string)
	require.NotEmpty(t, token)
	return token
}

func TestJobCRUD(t *testing.T) {
	router, _, _ := setupTestRouter(t, "")
	token := signupAndToken(t, router)

	// create
	req := newJSONRequest(t, http.MethodPost, "/api/jobs", jobPayload())
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created models.Job
	decodeBody(t, rec.Body.Bytes(), &created)
	require.False(t, created.ID.IsZero())
	assert.Equal(t, "Backend Engineer", created.Title)
	assert.False(t, created.PostedBy.IsZero(), "created job should record its poster")

	// list is public
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/jobs", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var listed []models.Job
	decodeBody(t, rec.Body.Bytes(), &listed)
	require.Len(t, listed, 1)

	// get is public
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/jobs/"+created.ID.Hex(), nil))
	require.Equal(t, http.StatusOK, rec.Code)

	// update
	updated := jobPayload()
	updated["title"] = "Staff Engineer"
	req = newJSONRequest(t, http.MethodPut, "/api/jobs/"+created.ID.Hex(), updated)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var afterUpdate models.Job
	decodeBody(t, rec.Body.Bytes(), &afterUpdate)
	assert.Equal(t, "Staff Engineer", afterUpdate.Title)

	// delete
	req = httptest.NewRequest(http.MethodDelete, "/api/jobs/"+created.ID.Hex(), nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/jobs/"+created.ID.Hex(), nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestJobMutationsRequireAuth(t *testing.T) {
	router, _, _ := setupTestRouter(t, "")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, newJSONRequest(t, http.MethodPost, "/api/jobs", jobPayload()))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/jobs/"+primitive.NewObjectID().Hex(), nil)
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestJobNotFound(t *testing.T) {
	router, _, _ := setupTestRouter(t, "")
	token := signupAndToken(t, router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/jobs/"+primitive.NewObjectID().Hex(), nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	req := newJSONRequest(t, http.MethodPut, "/api/jobs/"+primitive.NewObjectID().Hex(), jobPayload())
	req.Header.Set("Authorization", "Bearer "+token)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestJobValidation(t *testing.T) {
	router, _, _ := setupTestRouter(t, "")
	token := signupAndToken(t, router)

	missingTitle := jobPayload()
	delete(missingTitle, "title")

	req := newJSONRequest(t, http.MethodPost, "/api/jobs", missingTitle)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
