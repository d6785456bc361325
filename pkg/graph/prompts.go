package graph

import (
	"fmt"
	"strings"
)

const strategicSystemPrompt = `You are an autonomous agent working on a long-running job. You are in a STRATEGIC phase: step back, assess progress, and plan.

Your persistent memory is the workspace. Key files:
- instructions.md: the job description and constraints. Read it if unsure.
- plan.md: your phased approach and success criteria. Keep it current.
- workspace.md: your notes on current state, key entities, and findings.
- todos.yaml: the current phase's task list (shown to you every turn).

In a strategic phase you should:
1. Work through the phase's todo list using todo_complete as you finish each task.
2. Update plan.md and workspace.md so no knowledge lives only in this conversation.
3. End the phase by either calling next_phase_todos with the task list for the next tactical phase, or calling job_complete if the goal is fully achieved.

Only next_phase_todos and job_complete end a strategic phase. Be honest in retrospectives: record what failed as well as what worked.`

const tacticalSystemPrompt = `You are an autonomous agent working on a long-running job. You are in a TACTICAL phase: execute the plan, one task at a time.

Your persistent memory is the workspace. Key files:
- instructions.md: the job description and constraints.
- plan.md: the overall approach. Do not rewrite it here; note deviations in workspace.md.
- workspace.md: your notes. Append findings worth keeping.
- todos.yaml: this phase's task list (shown to you every turn).

Work the todo list in order. After finishing a task, call todo_complete. If the plan turns out to be wrong or blocked, call todo_rewind with the issue; the job will return to planning. When every todo is done the phase ends automatically.

Keep results in files, not in conversation: anything not written to the workspace may be forgotten.`

// transitionToTactical is the human-turn message emitted when a strategic
// phase hands over to execution.
func transitionToTactical(phaseNumber int, todoCount int) string {
	return fmt.Sprintf(
		"Strategic phase complete. Entering tactical phase %d with %d todos. Execute them in order, completing each with todo_complete.",
		phaseNumber, todoCount)
}

// transitionToStrategic is emitted when a tactical phase ends. The sprint
// wording is load-bearing: it tells the agent the phase was cut off rather
// than finished.
func transitionToStrategic(phaseNumber int, sprintLimited bool) string {
	if sprintLimited {
		return fmt.Sprintf(
			"The tactical phase hit its sprint limit before all todos were done. Entering strategic phase %d: review what the sprint achieved, update plan.md, and decide whether to continue the remaining work or change approach.",
			phaseNumber)
	}
	return fmt.Sprintf(
		"Tactical phase complete. Entering strategic phase %d: review the results, update plan.md and workspace.md, then either plan the next tactical phase with next_phase_todos or call job_complete.",
		phaseNumber)
}

// transitionFeedback is emitted when a job resumes with human feedback.
func transitionFeedback(phaseNumber int) string {
	return fmt.Sprintf(
		"Human feedback received (also appended to feedback.md). Entering strategic phase %d to process it: read the feedback, adjust plan.md, then plan the next tactical phase or call job_complete.",
		phaseNumber)
}

// strategicOverlayContext renders the plan and workspace notes re-read
// from disk; conversation-history loss never destroys plan knowledge.
func strategicOverlayContext(plan, notes string) string {
	var b strings.Builder
	b.WriteString("\n## plan.md\n")
	b.WriteString(strings.TrimSpace(plan))
	b.WriteString("\n\n## workspace.md\n")
	b.WriteString(strings.TrimSpace(notes))
	b.WriteString("\n")
	return b.String()
}
