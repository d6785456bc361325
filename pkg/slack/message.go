package slack

import (
	"fmt"

	goslack "github.com/slack-go/slack"
)

const maxBlockTextLength = 2900

var statusEmoji = map[string]string{
	"completed":      ":white_check_mark:",
	"failed":         ":x:",
	"cancelled":      ":no_entry_sign:",
	"pending_review": ":eyes:",
}

var statusLabel = map[string]string{
	"completed":      "Job Complete",
	"failed":         "Job Failed",
	"cancelled":      "Job Cancelled",
	"pending_review": "Job Awaiting Review",
}

func jobURL(jobID, dashboardURL string) string {
	return fmt.Sprintf("%s/jobs/%s", dashboardURL, jobID)
}

// BuildStartedMessage creates Block Kit blocks for a job start notification.
func BuildStartedMessage(input JobStartedInput, dashboardURL string) []goslack.Block {
	text := fmt.Sprintf(":arrows_counterclockwise: *Job started*\n%s", truncateForSlack(input.Description))
	if dashboardURL != "" {
		text += fmt.Sprintf("\n<%s|View in Dashboard>", jobURL(input.JobID, dashboardURL))
	}
	return []goslack.Block{
		goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, text, false, false),
			nil, nil,
		),
	}
}

// BuildFinishedMessage creates Block Kit blocks for a terminal or review
// notification.
func BuildFinishedMessage(input JobFinishedInput, dashboardURL string) []goslack.Block {
	emoji := statusEmoji[input.Status]
	if emoji == "" {
		emoji = ":question:"
	}
	label := statusLabel[input.Status]
	if label == "" {
		label = "Job " + input.Status
	}

	headerText := fmt.Sprintf("%s *%s*", emoji, label)
	var blocks []goslack.Block
	blocks = append(blocks, goslack.NewSectionBlock(
		goslack.NewTextBlockObject(goslack.MarkdownType, headerText, false, false),
		nil, nil,
	))

	if input.Summary != "" {
		blocks = append(blocks, goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, truncateForSlack(input.Summary), false, false),
			nil, nil,
		))
	}
	if input.ErrorMessage != "" {
		errText := fmt.Sprintf("*Error:*\n%s", truncateForSlack(input.ErrorMessage))
		blocks = append(blocks, goslack.NewSectionBlock(
			goslack.NewTextBlockObject(goslack.MarkdownType, errText, false, false),
			nil, nil,
		))
	}

	if dashboardURL != "" {
		buttonText := "View Job"
		if input.Status == "pending_review" {
			buttonText = "Review Job"
		}
		btn := goslack.NewButtonBlockElement("", "", goslack.NewTextBlockObject(goslack.PlainTextType, buttonText, false, false))
		btn.URL = jobURL(input.JobID, dashboardURL)
		blocks = append(blocks, goslack.NewActionBlock("", btn))
	}

	return blocks
}

func truncateForSlack(text string) string {
	if len(text) <= maxBlockTextLength {
		return text
	}
	return text[:maxBlockTextLength] + "\n\n_... (truncated)_"
}
