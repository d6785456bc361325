package events

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJobChannel(t *testing.T) {
	assert.Equal(t, "job:abc-123", JobChannel("abc-123"))
}

func TestTruncateIfNeededPassesSmallPayloads(t *testing.T) {
	payload := `{"type":"job.status","job_id":"j1","status":"running"}`
	out, err := truncateIfNeeded(payload)
	require.NoError(t, err)
	assert.Equal(t, payload, out)
}

func TestTruncateIfNeededBuildsEnvelope(t *testing.T) {
	big := map[string]any{
		"type":   EventTypeJobStatus,
		"job_id": "j1",
		"status": "running",
		"noise":  strings.Repeat("x", 9000),
	}
	payloadJSON, err := json.Marshal(big)
	require.NoError(t, err)

	out, err := truncateIfNeeded(string(payloadJSON))
	require.NoError(t, err)
	assert.LessOrEqual(t, len(out), 7900)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &envelope))
	assert.Equal(t, EventTypeJobStatus, envelope["type"])
	assert.Equal(t, "j1", envelope["job_id"])
	assert.Equal(t, true, envelope["truncated"])
	assert.NotContains(t, envelope, "noise")
}

func TestInjectDBEventID(t *testing.T) {
	payload := []byte(`{"type":"job.status","job_id":"j1","status":"completed"}`)
	out, err := injectDBEventIDAndTruncate(payload, 42)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.EqualValues(t, 42, m["db_event_id"])
	assert.Equal(t, "completed", m["status"])
}

func TestInjectDBEventIDSurvivesTruncation(t *testing.T) {
	big := map[string]any{
		"type":   EventTypeJobStatus,
		"job_id": "j1",
		"noise":  strings.Repeat("y", 9000),
	}
	payloadJSON, err := json.Marshal(big)
	require.NoError(t, err)

	out, err := injectDBEventIDAndTruncate(payloadJSON, 7)
	require.NoError(t, err)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &envelope))
	assert.EqualValues(t, 7, envelope["db_event_id"])
	assert.Equal(t, true, envelope["truncated"])
}
