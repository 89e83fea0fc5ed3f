package handlers_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/JanHolesovsky/AI-Academy-Dashboard-JH/internal/github"
	"github.com/JanHolesovsky/AI-Academy-Dashboard-JH/internal/handlers"
	"github.com/JanHolesovsky/AI-Academy-Dashboard-JH/internal/models"
	"github.com/JanHolesovsky/AI-Academy-Dashboard-JH/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "webhook-secret"

type fakeSubmissionStore struct {
	participants map[string]*models.Participant
	assignments  map[string]*models.Assignment
	lookups      int
	upserts      []services.PushSubmission
	upsertErr    error
}

func (f *fakeSubmissionStore) ParticipantByGitHubUsername(username string) (*models.Participant, error) {
	f.lookups++
	p, ok := f.participants[username]
	if !ok {
		return nil, errors.New("record not found")
	}
	return p, nil
}

func (f *fakeSubmissionStore) AssignmentByFolder(folder string) (*models.Assignment, error) {
	a, ok := f.assignments[folder]
	if !ok {
		return nil, errors.New("record not found")
	}
	return a, nil
}

func (f *fakeSubmissionStore) UpsertFromPush(in services.PushSubmission) (*models.Submission, error) {
	if f.upsertErr != nil {
		return nil, f.upsertErr
	}
	f.upserts = append(f.upserts, in)
	return &models.Submission{
		ID:            uint(len(f.upserts)),
		ParticipantID: in.ParticipantID,
		AssignmentID:  in.AssignmentID,
		SelfRating:    in.SelfRating,
		PointsEarned:  15,
	}, nil
}

type fakeEvaluator struct {
	calls []uint
}

func (f *fakeEvaluator) EvaluateOnSubmission(participantID uint) {
	f.calls = append(f.calls, participantID)
}

type fakeActivity struct {
	actions []string
}

func (f *fakeActivity) Record(participantID uint, action string, details map[string]interface{}) error {
	f.actions = append(f.actions, action)
	return nil
}

type fakeReadme struct {
	content string
	err     error
	calls   int
}

func (f *fakeReadme) FetchReadme(username, branch, folder string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	return f.content, nil
}

type webhookFixture struct {
	router    *gin.Engine
	store     *fakeSubmissionStore
	evaluator *fakeEvaluator
	activity  *fakeActivity
	readme    *fakeReadme
}

func newWebhookFixture() *webhookFixture {
	gin.SetMode(gin.TestMode)

	store := &fakeSubmissionStore{
		participants: map[string]*models.Participant{
			"octocat": {ID: 7, GitHubUsername: "octocat", Name: "Octo Cat"},
		},
		assignments: map[string]*models.Assignment{
			"day-01-agent-foundations": {ID: 1, FolderName: "day-01-agent-foundations", Day: 1, Type: models.AssignmentTypeInClass},
			"day-02-rag-basics":        {ID: 2, FolderName: "day-02-rag-basics", Day: 2, Type: models.AssignmentTypeInClass},
			"homework/day-02":          {ID: 6, FolderName: "homework/day-02", Day: 2, Type: models.AssignmentTypeHomework},
		},
	}
	evaluator := &fakeEvaluator{}
	activity := &fakeActivity{}
	readme := &fakeReadme{content: "# Day\n\n**Celkové hodnotenie:** 4/5\n"}

	handler := handlers.NewWebhookHandler(testSecret, store, evaluator, activity, readme)

	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.POST("/webhook/github", handler.Handle)

	return &webhookFixture{router: router, store: store, evaluator: evaluator, activity: activity, readme: readme}
}

func pushPayload(t *testing.T, modified, added []string) []byte {
	t.Helper()
	payload, err := json.Marshal(map[string]interface{}{
		"ref": "refs/heads/main",
		"repository": map[string]interface{}{
			"name":  "ai-academy-2026",
			"owner": map[string]interface{}{"login": "octocat"},
		},
		"head_commit": map[string]interface{}{
			"id":       "abc123",
			"message":  "day 2 done",
			"url":      "https://github.com/octocat/ai-academy-2026/commit/abc123",
			"modified": modified,
			"added":    added,
		},
	})
	require.NoError(t, err)
	return payload
}

func postWebhook(fx *webhookFixture, payload []byte, event, signature string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/webhook/github", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-GitHub-Event", event)
	if signature != "" {
		req.Header.Set(github.SignatureHeader, signature)
	}

	w := httptest.NewRecorder()
	fx.router.ServeHTTP(w, req)
	return w
}

func TestWebhookRejectsInvalidSignature(t *testing.T) {
	fx := newWebhookFixture()
	payload := pushPayload(t, []string{"day-02-rag-basics/README.md"}, nil)

	w := postWebhook(fx, payload, "push", "sha256=deadbeef")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Zero(t, fx.store.lookups)
	assert.Empty(t, fx.store.upserts)
}

func TestWebhookRejectsMissingSignature(t *testing.T) {
	fx := newWebhookFixture()
	payload := pushPayload(t, []string{"day-02-rag-basics/README.md"}, nil)

	w := postWebhook(fx, payload, "push", "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Empty(t, fx.store.upserts)
}

func TestWebhookRejectsWhenSecretUnset(t *testing.T) {
	fx := newWebhookFixture()
	handler := handlers.NewWebhookHandler("", fx.store, fx.evaluator, fx.activity, fx.readme)
	router := gin.New()
	router.POST("/webhook/github", handler.Handle)

	payload := pushPayload(t, []string{"day-02-rag-basics/README.md"}, nil)
	// An empty-key signature must not get through either.
	req := httptest.NewRequest(http.MethodPost, "/webhook/github", bytes.NewReader(payload))
	req.Header.Set("X-GitHub-Event", "push")
	req.Header.Set(github.SignatureHeader, github.Sign(payload, ""))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Zero(t, fx.store.lookups)
	assert.Empty(t, fx.store.upserts)
}

func TestWebhookRejectsWrongMethod(t *testing.T) {
	fx := newWebhookFixture()

	req := httptest.NewRequest(http.MethodGet, "/webhook/github", nil)
	w := httptest.NewRecorder()
	fx.router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusMethodNotAllowed, w.Code)
}

func TestWebhookIgnoresNonPushEvents(t *testing.T) {
	fx := newWebhookFixture()
	payload := pushPayload(t, []string{"day-02-rag-basics/README.md"}, nil)

	w := postWebhook(fx, payload, "ping", github.Sign(payload, testSecret))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ignored event")
	assert.Zero(t, fx.store.lookups)
	assert.Empty(t, fx.store.upserts)
}

func TestWebhookRejectsMissingData(t *testing.T) {
	fx := newWebhookFixture()

	payload := []byte(`{"ref":"refs/heads/main","repository":{"owner":{"login":""}}}`)
	w := postWebhook(fx, payload, "push", github.Sign(payload, testSecret))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	payload = []byte(`{"ref":"refs/heads/main","repository":{"owner":{"login":"octocat"}}}`)
	w = postWebhook(fx, payload, "push", github.Sign(payload, testSecret))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	assert.Empty(t, fx.store.upserts)
}

func TestWebhookUnknownParticipant(t *testing.T) {
	fx := newWebhookFixture()
	delete(fx.store.participants, "octocat")
	payload := pushPayload(t, []string{"day-02-rag-basics/README.md"}, nil)

	w := postWebhook(fx, payload, "push", github.Sign(payload, testSecret))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "unknown participant")
	assert.Empty(t, fx.store.upserts)
	assert.Empty(t, fx.evaluator.calls)
}

func TestWebhookNoSubmissionFolder(t *testing.T) {
	fx := newWebhookFixture()
	payload := pushPayload(t, []string{"docs/notes.md"}, nil)

	w := postWebhook(fx, payload, "push", github.Sign(payload, testSecret))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "no submission folder detected")
	assert.Empty(t, fx.store.upserts)
}

func TestWebhookUnknownAssignment(t *testing.T) {
	fx := newWebhookFixture()
	delete(fx.store.assignments, "day-02-rag-basics")
	payload := pushPayload(t, []string{"day-02-rag-basics/README.md"}, nil)

	w := postWebhook(fx, payload, "push", github.Sign(payload, testSecret))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "unknown assignment")
	assert.Empty(t, fx.store.upserts)
}

func TestWebhookHappyPath(t *testing.T) {
	fx := newWebhookFixture()
	payload := pushPayload(t, []string{"day-02-rag-basics/README.md"}, nil)

	w := postWebhook(fx, payload, "push", github.Sign(payload, testSecret))

	require.Equal(t, http.StatusOK, w.Code)

	var resp handlers.WebhookResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, 15, resp.PointsEarned)

	require.Len(t, fx.store.upserts, 1)
	upsert := fx.store.upserts[0]
	assert.Equal(t, uint(7), upsert.ParticipantID)
	assert.Equal(t, uint(2), upsert.AssignmentID)
	assert.Equal(t, "abc123", upsert.CommitSHA)
	require.NotNil(t, upsert.SelfRating)
	assert.Equal(t, 4, *upsert.SelfRating)

	assert.Equal(t, []uint{7}, fx.evaluator.calls)
	assert.Equal(t, []string{models.ActivityActionSubmission}, fx.activity.actions)
}

func TestWebhookReadmeFailureStillSubmits(t *testing.T) {
	fx := newWebhookFixture()
	fx.readme.err = errors.New("connection refused")
	payload := pushPayload(t, []string{"day-02-rag-basics/README.md"}, nil)

	w := postWebhook(fx, payload, "push", github.Sign(payload, testSecret))

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, fx.store.upserts, 1)
	assert.Nil(t, fx.store.upserts[0].SelfRating)
	assert.Empty(t, fx.store.upserts[0].ReadmeContent)
}

func TestWebhookDetectionIndependentOfFileOrder(t *testing.T) {
	files := [][]string{
		{"homework/day-02/README.md", "day-01-agent-foundations/README.md"},
		{"day-01-agent-foundations/README.md", "homework/day-02/README.md"},
	}

	for _, modified := range files {
		fx := newWebhookFixture()
		payload := pushPayload(t, modified, nil)

		w := postWebhook(fx, payload, "push", github.Sign(payload, testSecret))

		require.Equal(t, http.StatusOK, w.Code)
		require.Len(t, fx.store.upserts, 1)
		assert.Equal(t, uint(1), fx.store.upserts[0].AssignmentID)
	}
}

func TestWebhookAddedFilesCount(t *testing.T) {
	fx := newWebhookFixture()
	payload := pushPayload(t, nil, []string{"day-02-rag-basics/solution.py"})

	w := postWebhook(fx, payload, "push", github.Sign(payload, testSecret))

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, fx.store.upserts, 1)
	assert.Equal(t, uint(2), fx.store.upserts[0].AssignmentID)
}

func TestWebhookStorageFailure(t *testing.T) {
	fx := newWebhookFixture()
	fx.store.upsertErr = errors.New("connection reset")
	payload := pushPayload(t, []string{"day-02-rag-basics/README.md"}, nil)

	w := postWebhook(fx, payload, "push", github.Sign(payload, testSecret))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "database error")
	assert.Empty(t, fx.evaluator.calls)
}
