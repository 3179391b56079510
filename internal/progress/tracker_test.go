package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/ksa/internal/assessment"
	"github.com/abhisek/ksa/internal/phase"
)

func scored(score int) *assessment.Scorecard {
	return &assessment.Scorecard{
		AssessmentID: "a1",
		Score:        score,
		Passed:       assessment.Passed(score),
		Total:        assessment.QuizSize,
		Correct:      score / 10,
	}
}

func TestApply_PassAdvancesOnePhase(t *testing.T) {
	user := Demo()

	next := Apply(user, Outcome{Sector: "Cloud Computing", Scorecard: scored(70)})

	assert.Equal(t, phase.Basic, next.CurrentPhases["Cloud Computing"])
	assert.Equal(t, 1450, next.Points)
	assert.Equal(t, []string{"Beginner Python", "Basic SQL", "Beginner Cloud Computing Badge"}, next.Badges)

	// Other sectors untouched.
	assert.Equal(t, phase.Intermediate, next.CurrentPhases["Project Management"])
	assert.Equal(t, phase.Basic, next.CurrentPhases["Soft Skills"])
}

func TestApply_FailLeavesProgressUnchanged(t *testing.T) {
	user := Demo()

	next := Apply(user, Outcome{Sector: "Cloud Computing", Scorecard: scored(60)})

	assert.Equal(t, user, next)
}

func TestApply_NilScorecardIsNoop(t *testing.T) {
	user := Demo()
	assert.Equal(t, user, Apply(user, Outcome{Sector: "Cloud Computing"}))
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	user := Demo()
	before := user.Clone()

	_ = Apply(user, Outcome{Sector: "Soft Skills", Scorecard: scored(100)})
	_ = Apply(user, Outcome{Sector: "Data Analytics", Scorecard: scored(90)})

	assert.Equal(t, before, user)
}

func TestApply_UnknownSectorStartsAtBeginner(t *testing.T) {
	user := New("u2", "Sam", RoleEndUser)

	next := Apply(user, Outcome{Sector: "Cybersecurity", Scorecard: scored(80)})

	assert.Equal(t, phase.Basic, next.CurrentPhases["Cybersecurity"])
	assert.Equal(t, PointsPerPass, next.Points)
	assert.Equal(t, []string{"Beginner Cybersecurity Badge"}, next.Badges)
}

func TestApply_ClimbsWholeLadderThenStaysAtChamp(t *testing.T) {
	const sector = "Cloud Computing"
	user := New("u3", "Kim", RoleEndUser, sector)

	var visited []phase.Phase
	for range phase.Len + 3 {
		visited = append(visited, user.PhaseFor(sector))
		user = Apply(user, Outcome{Sector: sector, Scorecard: scored(100)})
	}

	require.Len(t, visited, phase.Len+3)
	assert.Equal(t, phase.All(), visited[:phase.Len], "each phase visited once, in order")
	for _, p := range visited[phase.Len:] {
		assert.Equal(t, phase.Champ, p)
	}
	assert.Equal(t, phase.Champ, user.PhaseFor(sector))
	assert.Equal(t, (phase.Len+3)*PointsPerPass, user.Points)

	// One badge per rung; passing Champ again does not duplicate its badge.
	assert.Len(t, user.Badges, phase.Len)
	assert.Equal(t, "Champ Cloud Computing Badge", user.Badges[phase.Len-1])
}

func TestApply_ChampPassStillAwardsPoints(t *testing.T) {
	user := New("u4", "Lee", RoleEndUser)
	user.CurrentPhases["Soft Skills"] = phase.Champ
	user.Badges = []string{"Champ Soft Skills Badge"}

	next := Apply(user, Outcome{Sector: "Soft Skills", Scorecard: scored(70)})

	assert.Equal(t, phase.Champ, next.CurrentPhases["Soft Skills"])
	assert.Equal(t, PointsPerPass, next.Points)
	assert.Equal(t, []string{"Champ Soft Skills Badge"}, next.Badges)
}

func TestApply_BadgeIsASet(t *testing.T) {
	user := New("u5", "Ana", RoleEndUser)
	user.Badges = []string{"Beginner Cloud Computing Badge"}

	next := Apply(user, Outcome{Sector: "Cloud Computing", Scorecard: scored(100)})

	assert.Equal(t, []string{"Beginner Cloud Computing Badge"}, next.Badges)
	assert.Equal(t, phase.Basic, next.CurrentPhases["Cloud Computing"])
}

func TestApply_PassedFlagFollowsThreshold(t *testing.T) {
	for score := 0; score <= 100; score += 10 {
		sc := scored(score)
		assert.Equal(t, score >= assessment.PassThreshold, sc.Passed, "score %d", score)

		next := Apply(New("u", "n", RoleEndUser), Outcome{Sector: "s", Scorecard: sc})
		if sc.Passed {
			assert.Equal(t, PointsPerPass, next.Points)
		} else {
			assert.Zero(t, next.Points)
		}
	}
}
