package slack

import (
	"context"
	"strings"
	"testing"

	goslack "github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildStartedMessage(t *testing.T) {
	blocks := BuildStartedMessage(JobStartedInput{
		JobID:       "job-1",
		Description: "Summarize the quarterly reports",
	}, "https://praxis.example.com")

	require.Len(t, blocks, 1)
	section, ok := blocks[0].(*goslack.SectionBlock)
	require.True(t, ok)
	assert.Contains(t, section.Text.Text, "Job started")
	assert.Contains(t, section.Text.Text, "quarterly reports")
	assert.Contains(t, section.Text.Text, "https://praxis.example.com/jobs/job-1")
}

func TestBuildStartedMessageWithoutDashboard(t *testing.T) {
	blocks := BuildStartedMessage(JobStartedInput{JobID: "job-1", Description: "d"}, "")
	require.Len(t, blocks, 1)
	section := blocks[0].(*goslack.SectionBlock)
	assert.NotContains(t, section.Text.Text, "Dashboard")
}

func TestBuildFinishedMessageCompleted(t *testing.T) {
	blocks := BuildFinishedMessage(JobFinishedInput{
		JobID:   "job-1",
		Status:  "completed",
		Summary: "Wrote the haiku to output/haiku.txt",
	}, "https://praxis.example.com")

	require.GreaterOrEqual(t, len(blocks), 3)
	header := blocks[0].(*goslack.SectionBlock)
	assert.Contains(t, header.Text.Text, "Job Complete")
	assert.Contains(t, header.Text.Text, ":white_check_mark:")

	summary := blocks[1].(*goslack.SectionBlock)
	assert.Contains(t, summary.Text.Text, "haiku")

	_, ok := blocks[len(blocks)-1].(*goslack.ActionBlock)
	assert.True(t, ok)
}

func TestBuildFinishedMessageFailedCarriesError(t *testing.T) {
	blocks := BuildFinishedMessage(JobFinishedInput{
		JobID:        "job-1",
		Status:       "failed",
		ErrorMessage: "iteration ceiling reached",
	}, "")

	require.Len(t, blocks, 2)
	errBlock := blocks[1].(*goslack.SectionBlock)
	assert.Contains(t, errBlock.Text.Text, "iteration ceiling reached")
}

func TestBuildFinishedMessagePendingReviewButton(t *testing.T) {
	blocks := BuildFinishedMessage(JobFinishedInput{
		JobID:  "job-1",
		Status: "pending_review",
	}, "https://praxis.example.com")

	action := blocks[len(blocks)-1].(*goslack.ActionBlock)
	btn := action.Elements.ElementSet[0].(*goslack.ButtonBlockElement)
	assert.Equal(t, "Review Job", btn.Text.Text)
}

func TestTruncateForSlack(t *testing.T) {
	long := strings.Repeat("a", maxBlockTextLength+100)
	out := truncateForSlack(long)
	assert.Contains(t, out, "truncated")
	assert.Less(t, len(out), len(long))

	short := "short"
	assert.Equal(t, short, truncateForSlack(short))
}

func TestNilServiceIsNoOp(t *testing.T) {
	var s *Service
	// Must not panic.
	s.NotifyJobStarted(context.Background(), JobStartedInput{JobID: "x"})
	s.NotifyJobFinished(context.Background(), JobFinishedInput{JobID: "x", Status: "failed"})
}

func TestNewServiceRequiresTokenAndChannel(t *testing.T) {
	assert.Nil(t, NewService(ServiceConfig{Token: "", Channel: "c"}))
	assert.Nil(t, NewService(ServiceConfig{Token: "t", Channel: ""}))
	assert.NotNil(t, NewService(ServiceConfig{Token: "t", Channel: "c"}))
}
