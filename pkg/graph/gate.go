package graph

import "github.com/praxis-works/praxis/pkg/models"

// ShouldFreeze evaluates the autonomy gate at a phase boundary: whether
// the job must pause for human review after the phase that just ended.
// jobComplete marks a boundary reached via the job_complete tool.
func ShouldFreeze(autonomy models.AutonomyLevel, endedPhase models.PhaseType, phaseNumber int, jobComplete bool) bool {
	if jobComplete {
		return autonomy != models.AutonomyFull
	}
	switch autonomy {
	case models.AutonomyFull, models.AutonomyReview:
		return false
	case models.AutonomyPartial:
		return endedPhase == models.PhaseStrategic && phaseNumber == 1
	case models.AutonomyGuided:
		return endedPhase == models.PhaseStrategic
	case models.AutonomyDependent:
		return true
	default:
		return false
	}
}
