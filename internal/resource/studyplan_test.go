package resource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStudyPlan(t *testing.T) {
	plan, err := NewStudyPlan("Test Plan", "A test study plan", 16, 4.0)
	require.NoError(t, err)

	assert.Equal(t, "Test Plan", plan.Name())
	assert.Equal(t, "A test study plan", plan.Description())
	assert.Equal(t, 16, plan.DurationWeeks())
	assert.InDelta(t, 4.0, plan.HoursPerDay(), 1e-9)
	assert.NotNil(t, plan.Resources())
	assert.Empty(t, plan.Resources(), "resources default to empty")
	assert.InDelta(t, 448.0, plan.TotalHours(), 1e-9)
}

func TestNewStudyPlan_WithResources(t *testing.T) {
	r := newSample(t)
	plan, err := NewStudyPlan("Test Plan", "A test study plan", 16, 4.0, r)
	require.NoError(t, err)

	require.Len(t, plan.Resources(), 1)
	assert.Equal(t, "Test Resource", plan.Resources()[0].Title())
}

func TestNewStudyPlan_ResourcesAreCopied(t *testing.T) {
	rs := []Resource{newSample(t)}
	plan, err := NewStudyPlan("P", "D", 1, 1, rs...)
	require.NoError(t, err)

	rs[0] = Resource{}
	assert.Equal(t, "Test Resource", plan.Resources()[0].Title())

	got := plan.Resources()
	got[0] = Resource{}
	assert.Equal(t, "Test Resource", plan.Resources()[0].Title())
}

func TestNewStudyPlan_Duration(t *testing.T) {
	for _, weeks := range []int{0, -1, -16} {
		_, err := NewStudyPlan("P", "D", weeks, 4.0)
		requireValidationError(t, err, "duration_weeks")
	}

	_, err := NewStudyPlan("P", "D", 1, 4.0)
	assert.NoError(t, err)
}

func TestNewStudyPlan_HoursPerDay(t *testing.T) {
	tests := []struct {
		hours   float64
		wantErr bool
	}{
		{25.0, true},
		{24.0001, true},
		{0, true},
		{-2, true},
		{24.0, false},
		{0.5, false},
	}

	for _, tt := range tests {
		_, err := NewStudyPlan("P", "D", 16, tt.hours)
		if tt.wantErr {
			requireValidationError(t, err, "hours_per_day")
		} else {
			assert.NoError(t, err, "hours=%v", tt.hours)
		}
	}
}
