package graph

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/praxis-works/praxis/pkg/models"
)

func TestShouldFreezeTable(t *testing.T) {
	cases := []struct {
		autonomy    models.AutonomyLevel
		phase       models.PhaseType
		phaseNumber int
		jobComplete bool
		want        bool
	}{
		{models.AutonomyFull, models.PhaseStrategic, 1, false, false},
		{models.AutonomyFull, models.PhaseTactical, 2, false, false},
		{models.AutonomyFull, models.PhaseStrategic, 3, true, false},

		{models.AutonomyReview, models.PhaseStrategic, 1, false, false},
		{models.AutonomyReview, models.PhaseTactical, 2, false, false},
		{models.AutonomyReview, models.PhaseStrategic, 3, true, true},

		{models.AutonomyPartial, models.PhaseStrategic, 1, false, true},
		{models.AutonomyPartial, models.PhaseStrategic, 3, false, false},
		{models.AutonomyPartial, models.PhaseTactical, 2, false, false},
		{models.AutonomyPartial, models.PhaseStrategic, 3, true, true},

		{models.AutonomyGuided, models.PhaseStrategic, 1, false, true},
		{models.AutonomyGuided, models.PhaseStrategic, 3, false, true},
		{models.AutonomyGuided, models.PhaseTactical, 2, false, false},
		{models.AutonomyGuided, models.PhaseStrategic, 5, true, true},

		{models.AutonomyDependent, models.PhaseStrategic, 1, false, true},
		{models.AutonomyDependent, models.PhaseTactical, 2, false, true},
		{models.AutonomyDependent, models.PhaseStrategic, 3, true, true},
	}

	for _, tc := range cases {
		name := fmt.Sprintf("%s_%s_%d_complete=%t", tc.autonomy, tc.phase, tc.phaseNumber, tc.jobComplete)
		t.Run(name, func(t *testing.T) {
			got := ShouldFreeze(tc.autonomy, tc.phase, tc.phaseNumber, tc.jobComplete)
			assert.Equal(t, tc.want, got)
		})
	}
}
