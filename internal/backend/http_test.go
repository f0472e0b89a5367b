package backend

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSession(t *testing.T) {
	var gotPath string
	var gotBody map[string]int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]string{"session_id": "sess-42"})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL)
	id, err := c.CreateSession(context.Background(), 7, 2001)

	require.NoError(t, err)
	assert.Equal(t, "sess-42", id)
	assert.Equal(t, "/api/v1/practice-sessions", gotPath)
	assert.Equal(t, map[string]int{"user_id": 7, "skill_id": 2001}, gotBody)
}

func TestCreateSessionEmptyID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]string{})
	}))
	defer srv.Close()

	_, err := NewHTTPClient(srv.URL).CreateSession(context.Background(), 7, 2001)
	assert.Error(t, err)
}

func TestRecordAttemptWireFormat(t *testing.T) {
	var got map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	entry := AttemptLogEntry{
		LearnerID:        7,
		SessionID:        "sess-42",
		SkillID:          2001,
		DifficultyLevel:  "Mixed",
		QuestionText:     "What is 1 + 1?",
		CorrectAnswer:    "2",
		StudentAnswer:    "3",
		IsCorrect:        false,
		SolutionText:     "1 + 1 = 2",
		TimeSpentSeconds: 12,
	}
	require.NoError(t, NewHTTPClient(srv.URL).RecordAttempt(context.Background(), entry))

	assert.Equal(t, float64(7), got["user_id"])
	assert.Equal(t, "sess-42", got["session_id"])
	assert.Equal(t, "3", got["student_answer"])
	assert.Equal(t, false, got["is_correct"])
	assert.Equal(t, float64(12), got["time_spent_seconds"])
	// Unset optional fields stay off the wire.
	_, hasTemplate := got["template_id"]
	assert.False(t, hasTemplate)
}

func TestFinishSessionEscapesID(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
	}))
	defer srv.Close()

	require.NoError(t, NewHTTPClient(srv.URL).FinishSession(context.Background(), "a/b"))
	assert.Equal(t, "/api/v1/practice-sessions/a%2Fb/finish", gotPath)
}

func TestCreateReport(t *testing.T) {
	var got Report
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
	}))
	defer srv.Close()

	report := Report{
		Title: "Pattern Identification",
		Type:  "practice",
		Score: 80,
		Parameters: ReportParameters{
			SkillID:          2001,
			SkillName:        "Pattern Identification",
			TotalQuestions:   10,
			CorrectAnswers:   8,
			TimeTakenSeconds: 300,
		},
		LearnerID: 7,
	}
	require.NoError(t, NewHTTPClient(srv.URL).CreateReport(context.Background(), report))
	assert.Equal(t, report, got)
}

func TestNonSuccessStatusIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer srv.Close()

	err := NewHTTPClient(srv.URL).RecordAttempt(context.Background(), AttemptLogEntry{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}
