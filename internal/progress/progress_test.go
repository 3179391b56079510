package progress

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/ksa/internal/phase"
)

func TestParseRole(t *testing.T) {
	tests := []struct {
		in   string
		want Role
	}{
		{"", RoleEndUser},
		{"end_user", RoleEndUser},
		{"HR", RoleHR},
		{" admin ", RoleAdmin},
	}
	for _, tt := range tests {
		got, err := ParseRole(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseRole("root")
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	u := New("id", "Jo", RoleHR, "Cloud Computing", " ", "Soft Skills")

	assert.Equal(t, []string{"Cloud Computing", "Soft Skills"}, u.Sectors())
	assert.Equal(t, phase.Beginner, u.CurrentPhases["Soft Skills"])
	assert.NotNil(t, u.Badges)
	assert.Zero(t, u.Points)
}

func TestPhaseFor(t *testing.T) {
	u := Demo()
	assert.Equal(t, phase.Intermediate, u.PhaseFor("Project Management"))
	assert.Equal(t, phase.Beginner, u.PhaseFor("Marketing"))

	u.CurrentPhases["Broken"] = phase.Phase("Wizard")
	assert.Equal(t, phase.Beginner, u.PhaseFor("Broken"))
}

func TestClone_IsDeep(t *testing.T) {
	u := Demo()
	c := u.Clone()
	c.Badges[0] = "changed"
	c.CurrentPhases["Cloud Computing"] = phase.Champ

	assert.Equal(t, "Beginner Python", u.Badges[0])
	assert.Equal(t, phase.Beginner, u.CurrentPhases["Cloud Computing"])
}
