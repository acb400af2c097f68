package api

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	calUsecase "studyplan-backend/internal/calendar/usecase"
	prefsRepo "studyplan-backend/internal/preferences/repository"
	prefsUsecase "studyplan-backend/internal/preferences/usecase"
	subjectRepo "studyplan-backend/internal/subject/repository"
	subjectUsecase "studyplan-backend/internal/subject/usecase"
	taskRepo "studyplan-backend/internal/task/repository"
	taskUsecase "studyplan-backend/internal/task/usecase"
	"studyplan-backend/pkg/gcal"

	"github.com/gin-gonic/gin"
)

func newTestEngine() *gin.Engine {
	gin.SetMode(gin.TestMode)

	tasks := taskRepo.NewMemoryTaskRepository()
	subjects := subjectRepo.NewMemorySubjectRepository()
	prefs := prefsRepo.NewMemoryPreferencesRepository()

	gcalService := gcal.NewService("test-client", "test-secret", "http://localhost/callback")

	h := NewHandler(
		taskUsecase.NewTaskUsecase(tasks),
		subjectUsecase.NewSubjectUsecase(subjects),
		prefsUsecase.NewPreferencesUsecase(prefs),
		calUsecase.NewCalendarUsecase(gcalService, tasks, prefs),
	)
	return h.Engine()
}

func do(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHealthEndpoint(t *testing.T) {
	r := newTestEngine()

	w := do(t, r, http.MethodGet, "/api/health", nil)
	if w.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", w.Code)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	r := newTestEngine()

	// Generate at least one counted request first.
	do(t, r, http.MethodGet, "/api/health", nil)

	w := do(t, r, http.MethodGet, "/metrics", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if !bytes.Contains(w.Body.Bytes(), []byte("studyplan_http_requests_total")) {
		t.Error("metrics output missing request counter")
	}
}

func TestSubjectTaskWorkflow(t *testing.T) {
	r := newTestEngine()

	// Create a subject.
	w := do(t, r, http.MethodPost, "/api/subjects", gin.H{"name": "Math", "color": "#ef4444"})
	if w.Code != http.StatusCreated {
		t.Fatalf("create subject: status = %d (body %s)", w.Code, w.Body.String())
	}
	var subject struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &subject); err != nil {
		t.Fatalf("decode subject: %v", err)
	}

	// Two tasks under it, different priorities and due dates.
	w = do(t, r, http.MethodPost, "/api/tasks", gin.H{
		"title": "HW1", "subjectId": subject.ID, "priority": 3, "dueDate": "2025-04-01T10:00:00Z",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create HW1: status = %d", w.Code)
	}
	w = do(t, r, http.MethodPost, "/api/tasks", gin.H{
		"title": "HW2", "subjectId": subject.ID, "priority": 1, "dueDate": "2025-04-05T10:00:00Z",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("create HW2: status = %d", w.Code)
	}

	// Deleting the subject leaves the tasks orphaned but intact.
	if w = do(t, r, http.MethodDelete, "/api/subjects/"+subject.ID, nil); w.Code != http.StatusNoContent {
		t.Fatalf("delete subject: status = %d", w.Code)
	}

	w = do(t, r, http.MethodGet, "/api/tasks?subjectId="+subject.ID, nil)
	if w.Code != http.StatusOK {
		t.Fatalf("list tasks: status = %d", w.Code)
	}
	var tasks []struct {
		Title string `json:"title"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &tasks); err != nil {
		t.Fatalf("decode tasks: %v", err)
	}
	if len(tasks) != 2 || tasks[0].Title != "HW1" || tasks[1].Title != "HW2" {
		t.Fatalf("got %+v, want [HW1, HW2]", tasks)
	}
}

func TestPreferencesWorkflow(t *testing.T) {
	r := newTestEngine()

	w := do(t, r, http.MethodGet, "/api/preferences", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("get preferences: status = %d", w.Code)
	}

	var prefs map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &prefs); err != nil {
		t.Fatalf("decode preferences: %v", err)
	}
	if prefs["googleCalendarConnected"] != false {
		t.Error("fresh preferences must not be connected")
	}

	w = do(t, r, http.MethodPost, "/api/calendar/connect", gin.H{"accessToken": "a", "refreshToken": "r"})
	if w.Code != http.StatusOK {
		t.Fatalf("connect: status = %d", w.Code)
	}
	if err := json.Unmarshal(w.Body.Bytes(), &prefs); err != nil {
		t.Fatalf("decode preferences: %v", err)
	}
	if prefs["googleCalendarConnected"] != true {
		t.Error("connect must flip the connected flag")
	}
}
