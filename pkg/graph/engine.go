package graph

import (
	"context"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/praxis-works/praxis/pkg/config"
	"github.com/praxis-works/praxis/pkg/history"
	"github.com/praxis-works/praxis/pkg/llm"
	"github.com/praxis-works/praxis/pkg/models"
	"github.com/praxis-works/praxis/pkg/todo"
	"github.com/praxis-works/praxis/pkg/tools"
	"github.com/praxis-works/praxis/pkg/workspace"
)

// Deps wires the engine's collaborators. Registry must already hold the
// workspace, git, research, and datasource tools; NewEngine adds the core
// tools bound to the running state.
type Deps struct {
	Config      *config.Config
	Workspace   *workspace.Manager
	Todos       *todo.Manager
	Registry    *tools.Registry
	Client      llm.Client
	History     *history.Manager
	Checkpoints CheckpointStore
	Autonomy    models.AutonomyLevel
	Retry       llm.RetryPolicy
	Report      func(*State)
}

// Result is the outcome of one Run. Status is one of completed,
// pending_review, failed, cancelled.
type Result struct {
	Status       models.JobStatus
	Summary      string
	Deliverables []string
	FreezeReason string
	ErrorMessage string
	Tokens       models.TokenUsage
}

// Engine executes the phase graph for a single job. One engine drives one
// job; workers hold a single-job lease.
type Engine struct {
	cfg        *config.Config
	ws         *workspace.Manager
	todos      *todo.Manager
	registry   *tools.Registry
	dispatcher *tools.Dispatcher
	client     llm.Client
	history    *history.Manager
	store      CheckpointStore
	autonomy   models.AutonomyLevel
	retry      llm.RetryPolicy
	report     func(*State)

	state     *State
	cancelled atomic.Bool
}

// NewEngine builds an engine and registers the core tools into the
// registry.
func NewEngine(deps Deps) (*Engine, error) {
	e := &Engine{
		cfg:      deps.Config,
		ws:       deps.Workspace,
		todos:    deps.Todos,
		registry: deps.Registry,
		client:   deps.Client,
		history:  deps.History,
		store:    deps.Checkpoints,
		autonomy: deps.Autonomy,
		retry:    deps.Retry,
		report:   deps.Report,
	}
	if e.retry.MaxAttempts == 0 {
		e.retry = llm.DefaultRetryPolicy()
	}
	if err := e.registry.Register(tools.CoreTools(e.coreHooks())...); err != nil {
		return nil, err
	}
	e.dispatcher = tools.NewDispatcher(e.registry)
	return e, nil
}

// Cancel requests cooperative cancellation; the graph exits at the next
// node boundary.
func (e *Engine) Cancel() { e.cancelled.Store(true) }

// ApplyResume folds a resume request into a frozen state before Run.
// It returns true when the resume is terminal (approval of a completed
// job) and the graph should finish without another LLM turn.
func (e *Engine) ApplyResume(state *State, approved bool, feedback string) (bool, error) {
	state.FreezeReason = ""
	state.ReviewGranted = true

	if feedback != "" {
		if err := e.ws.Append("feedback.md", fmt.Sprintf("\n## Feedback before phase %d\n\n%s\n", state.PhaseNumber+1, feedback)); err != nil {
			return false, err
		}
		state.Messages = append(state.Messages, llm.Message{Role: llm.RoleUser, Content: "Human feedback:\n" + feedback})
		state.PendingFeedback = feedback
		// Feedback on a completion claim reopens the job.
		state.JobCompleteCalled = false
		return false, nil
	}

	if approved && state.JobCompleteCalled {
		state.GoalAchieved = true
		state.Node = NodeEnd
		return true, nil
	}
	return false, nil
}

// Run drives the graph from the given state until it terminates, freezes,
// fails, or is cancelled. A checkpoint is written after every node; on any
// error the last written checkpoint remains authoritative.
func (e *Engine) Run(ctx context.Context, state *State) (*Result, error) {
	e.state = state

	for {
		if ctx.Err() != nil || e.cancelled.Load() {
			state.Step++
			if err := e.checkpoint(ctx, state, "cancel"); err != nil {
				slog.Warn("Failed to write cancellation checkpoint", "job_id", state.JobID, "error", err)
			}
			return e.result(state, models.JobStatusCancelled, ""), nil
		}

		node := state.Node
		var next string
		var err error
		switch node {
		case NodeInit:
			next, err = e.runInit(state)
		case NodeProcess:
			next, err = e.runProcess(ctx, state)
		case NodeUpdateTodos:
			next, err = e.runUpdateTodos(state)
		case NodeCheckTodos:
			next, err = e.runCheckTodos(state)
		case NodeArchivePhase:
			next, err = e.runArchivePhase(state)
		case NodeTransition:
			next, err = e.runTransition(state)
		case NodeCreateNextTodos:
			next, err = e.runCreateNextTodos(state)
		case NodeEnd:
			return e.result(state, models.JobStatusCompleted, ""), nil
		default:
			return nil, fmt.Errorf("unknown graph node %q", node)
		}
		if err != nil {
			slog.Error("Graph node failed", "job_id", state.JobID, "node", node, "error", err)
			return e.result(state, models.JobStatusFailed, err.Error()), nil
		}

		state.Node = next
		state.Step++
		if err := e.checkpoint(ctx, state, node); err != nil {
			// The prior checkpoint stays authoritative.
			slog.Error("Checkpoint write failed", "job_id", state.JobID, "node", node, "step", state.Step, "error", err)
			return e.result(state, models.JobStatusFailed, fmt.Sprintf("checkpoint write failed: %v", err)), nil
		}
		if e.report != nil {
			e.report(state)
		}

		if state.FreezeReason != "" {
			slog.Info("Job frozen for review",
				"job_id", state.JobID, "phase_number", state.PhaseNumber, "reason", state.FreezeReason)
			return e.result(state, models.JobStatusPendingReview, ""), nil
		}
	}
}

func (e *Engine) result(state *State, status models.JobStatus, errMsg string) *Result {
	return &Result{
		Status:       status,
		Summary:      state.Summary,
		Deliverables: state.Deliverables,
		FreezeReason: state.FreezeReason,
		ErrorMessage: errMsg,
		Tokens:       state.Tokens,
	}
}

func (e *Engine) checkpoint(ctx context.Context, state *State, node string) error {
	data, err := state.Marshal()
	if err != nil {
		return err
	}
	return e.store.Save(ctx, Checkpoint{
		JobID:       state.JobID,
		Step:        state.Step,
		Node:        node,
		PhaseNumber: state.PhaseNumber,
		State:       data,
	})
}

func (e *Engine) runInit(state *State) (string, error) {
	bootstrap := todo.Bootstrap()
	if err := e.todos.Save(bootstrap, state.PhaseNumber, string(state.PhaseType)); err != nil {
		return "", err
	}
	state.Todos = bootstrap

	if e.ws.GitEnabled() {
		if err := e.ws.StartPhaseBranch(state.PhaseNumber, string(state.PhaseType)); err != nil {
			slog.Warn("Failed to start phase branch", "job_id", state.JobID, "error", err)
		}
	}

	state.Messages = append(state.Messages, llm.Message{
		Role:    llm.RoleUser,
		Content: "Job description:\n" + state.Description + "\n\nBegin with the bootstrap todos. The full description is also in instructions.md.",
	})
	return NodeProcess, nil
}

func (e *Engine) runProcess(ctx context.Context, state *State) (string, error) {
	state.IterationCount++

	overlay := e.todos.FormatForDisplay(state.Todos, string(state.PhaseType), state.PhaseNumber)
	systemPrompt := tacticalSystemPrompt
	if state.PhaseType == models.PhaseStrategic {
		systemPrompt = strategicSystemPrompt
		overlay += strategicOverlayContext(e.readOrEmpty("plan.md"), e.readOrEmpty("workspace.md"))
	}

	state.Messages = e.history.Prepare(ctx, state.Messages)
	prompt := e.history.BuildPrompt(systemPrompt, overlay, state.Messages)

	surface := e.registry.Filter(e.cfg.Tools, state.PhaseType)
	completion := llm.Complete(ctx, e.client, &llm.GenerateInput{
		JobID:          state.JobID,
		Model:          e.cfg.LLM.Model,
		Temperature:    e.cfg.LLM.Temperature,
		MaxTokens:      e.cfg.LLM.MaxTokens,
		ReasoningLevel: e.cfg.LLM.ReasoningLevel,
		Messages:       prompt,
		Tools:          tools.Definitions(surface),
	}, e.retry)
	if completion.Err != nil {
		return "", fmt.Errorf("LLM request failed: %s", completion.Err.Message)
	}
	state.Tokens.Add(models.TokenUsage{
		InputTokens:  completion.Usage.InputTokens,
		OutputTokens: completion.Usage.OutputTokens,
		TotalTokens:  completion.Usage.TotalTokens,
	})

	state.Messages = append(state.Messages, llm.Message{
		Role:      llm.RoleAssistant,
		Content:   completion.Text,
		ToolCalls: completion.ToolCalls,
	})

	allowed := make(map[string]bool, len(surface))
	for _, t := range surface {
		allowed[t.Name()] = true
	}
	for _, call := range completion.ToolCalls {
		var observation string
		if !allowed[call.Name] {
			observation = fmt.Sprintf("Error: tool %q is not available in the %s phase", call.Name, state.PhaseType)
		} else {
			observation = e.dispatcher.Dispatch(ctx, call)
		}
		state.Messages = append(state.Messages, llm.Message{
			Role:       llm.RoleTool,
			Content:    observation,
			ToolCallID: call.ID,
			ToolName:   call.Name,
		})
	}
	return NodeUpdateTodos, nil
}

func (e *Engine) runUpdateTodos(state *State) (string, error) {
	todos, err := e.todos.Load()
	if err != nil {
		return "", err
	}
	state.Todos = todos
	return NodeCheckTodos, nil
}

func (e *Engine) runCheckTodos(state *State) (string, error) {
	if state.PhaseType == models.PhaseTactical {
		limit := e.cfg.Phases.SprintLimit
		if limit > 0 && state.PhaseStartIteration >= 0 &&
			state.IterationCount-state.PhaseStartIteration >= limit {
			state.PhaseComplete = true
			state.SprintLimitReached = true
		}
		// The total-iteration ceiling forces the same cut-off path as the
		// sprint limit: control returns to a strategic retrospective. The
		// orchestrator's wall-clock budget is the terminal backstop.
		if ceiling := e.cfg.Phases.MaxIterations; ceiling > 0 && state.IterationCount >= ceiling {
			state.PhaseComplete = true
			state.SprintLimitReached = true
		}
	}
	if todo.AllDone(state.Todos) {
		state.PhaseComplete = true
	}
	if state.PhaseComplete {
		return NodeArchivePhase, nil
	}
	return NodeProcess, nil
}

func (e *Engine) runArchivePhase(state *State) (string, error) {
	retro := fmt.Sprintf("Phase %d (%s) ended after %d total iterations.",
		state.PhaseNumber, state.PhaseType, state.IterationCount)
	if state.SprintLimitReached {
		retro += " Sprint limit reached before all todos were done."
	}
	if err := e.todos.Archive(state.PhaseNumber, string(state.PhaseType), retro); err != nil {
		return "", err
	}

	if e.ws.GitEnabled() {
		autoMerge := e.autonomy == models.AutonomyFull || e.autonomy == models.AutonomyReview
		msg := fmt.Sprintf("phase %d (%s): %s", state.PhaseNumber, state.PhaseType, retro)
		if err := e.ws.CommitPhase(msg, autoMerge); err != nil {
			slog.Warn("Failed to commit phase", "job_id", state.JobID, "error", err)
		}
	}
	return NodeTransition, nil
}

func (e *Engine) runTransition(state *State) (string, error) {
	endedPhase := state.PhaseType

	if state.JobCompleteCalled {
		if ShouldFreeze(e.autonomy, endedPhase, state.PhaseNumber, true) && !state.ReviewGranted {
			state.FreezeReason = "job_complete"
			return NodeTransition, nil
		}
		state.ReviewGranted = false
		state.GoalAchieved = true
		return NodeEnd, nil
	}

	if ShouldFreeze(e.autonomy, endedPhase, state.PhaseNumber, false) && !state.ReviewGranted {
		state.FreezeReason = fmt.Sprintf("%s phase %d complete", endedPhase, state.PhaseNumber)
		return NodeTransition, nil
	}
	state.ReviewGranted = false

	nextType := endedPhase.Other()
	if state.PendingFeedback != "" {
		nextType = models.PhaseStrategic
	}
	state.PhaseNumber++
	state.PhaseType = nextType
	state.PhaseComplete = false

	if e.ws.GitEnabled() {
		if err := e.ws.StartPhaseBranch(state.PhaseNumber, string(nextType)); err != nil {
			slog.Warn("Failed to start phase branch", "job_id", state.JobID, "error", err)
		}
	}

	if nextType == models.PhaseTactical {
		staged := state.StagedTodos
		state.StagedTodos = nil
		list := todo.NewList(staged)
		if err := e.todos.Save(list, state.PhaseNumber, string(state.PhaseType)); err != nil {
			return "", err
		}
		state.Todos = list
		state.PhaseStartIteration = state.IterationCount
		state.Messages = append(state.Messages, llm.Message{
			Role:    llm.RoleUser,
			Content: transitionToTactical(state.PhaseNumber, len(list)),
		})
		return NodeProcess, nil
	}

	state.PhaseStartIteration = -1
	content := transitionToStrategic(state.PhaseNumber, state.SprintLimitReached)
	if state.PendingFeedback != "" {
		content = transitionFeedback(state.PhaseNumber)
	}
	state.SprintLimitReached = false
	state.Messages = append(state.Messages, llm.Message{Role: llm.RoleUser, Content: content})
	return NodeCreateNextTodos, nil
}

func (e *Engine) runCreateNextTodos(state *State) (string, error) {
	var list []todo.Todo
	if state.PendingFeedback != "" {
		state.PendingFeedback = ""
		list = todo.NewList([]string{
			"Read feedback.md and restate what the feedback asks for.",
			"Review plan.md and workspace.md against the feedback.",
			"Update plan.md to address the feedback.",
			"Call next_phase_todos(...) with the revised tactical todos, or job_complete if nothing remains.",
		})
	} else {
		list = todo.Reflection()
	}
	if err := e.todos.Save(list, state.PhaseNumber, string(state.PhaseType)); err != nil {
		return "", err
	}
	state.Todos = list
	return NodeProcess, nil
}

func (e *Engine) readOrEmpty(path string) string {
	content, err := e.ws.Read(path)
	if err != nil {
		return ""
	}
	return content
}

func (e *Engine) coreHooks() tools.CoreHooks {
	return tools.CoreHooks{
		ListTodos: func(context.Context) (string, error) {
			todos, err := e.todos.Load()
			if err != nil {
				return "", err
			}
			return e.todos.FormatForDisplay(todos, string(e.state.PhaseType), e.state.PhaseNumber), nil
		},
		TodoComplete: func(_ context.Context, notes string) (string, error) {
			s := e.state
			if notes != "" {
				todos, err := e.todos.Load()
				if err != nil {
					return "", err
				}
				if idx := todo.FirstOpen(todos); idx >= 0 {
					if err := e.todos.SetStatus(todos[idx].ID, todo.StatusDone, notes, s.PhaseNumber, string(s.PhaseType)); err != nil {
						return "", err
					}
					remaining := todo.Remaining(todos) - 1
					return completeMessage(remaining), nil
				}
				return "All todos are already done.", nil
			}
			remaining, isLast, err := e.todos.Complete(s.PhaseNumber, string(s.PhaseType))
			if err != nil {
				return "", err
			}
			if isLast && remaining == 0 {
				return "Marked the last todo done. The phase will end after this turn.", nil
			}
			return completeMessage(remaining), nil
		},
		TodoRewind: func(_ context.Context, issue string) (string, error) {
			s := e.state
			if err := e.todos.Rewind(s.PhaseNumber, string(s.PhaseType), issue); err != nil {
				return "", err
			}
			s.Todos = nil
			s.PhaseComplete = true
			return "Todo list archived with the issue noted. The job returns to strategic planning; revise plan.md before creating new todos.", nil
		},
		NextPhaseTodos: func(_ context.Context, items []string) (string, error) {
			s := e.state
			min, max := e.cfg.Phases.MinTodos, e.cfg.Phases.MaxTodos
			if len(items) < min || len(items) > max {
				return "", fmt.Errorf("next_phase_todos needs between %d and %d todos, got %d; split or merge tasks and call it again", min, max, len(items))
			}
			s.StagedTodos = items
			s.PhaseComplete = true
			return fmt.Sprintf("Staged %d todos for the next tactical phase. The phase transition happens after this turn.", len(items)), nil
		},
		JobComplete: func(_ context.Context, req tools.JobCompleteRequest) (string, error) {
			s := e.state
			s.JobCompleteCalled = true
			s.PhaseComplete = true
			s.Summary = req.Summary
			s.Deliverables = req.Deliverables
			s.Confidence = req.Confidence
			s.Notes = req.Notes
			return "Job completion recorded.", nil
		},
	}
}

func completeMessage(remaining int) string {
	if remaining == 0 {
		return "Marked the last todo done. The phase will end after this turn."
	}
	return fmt.Sprintf("Marked todo done. %d remaining.", remaining)
}
