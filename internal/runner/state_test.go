package runner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTransitionLifecycle(t *testing.T) {
	state := RunState{1: DayPending}

	require.NoError(t, Transition(state, 1, DayPending, DayRunning))
	require.NoError(t, Transition(state, 1, DayRunning, DayCompleted))
	assert.Equal(t, DayCompleted, state[1])
}

func TestTransitionFailurePath(t *testing.T) {
	state := RunState{1: DayPending}

	require.NoError(t, Transition(state, 1, DayPending, DayRunning))
	require.NoError(t, Transition(state, 1, DayRunning, DayFailed))
}

func TestTransitionRejectsUnknownDay(t *testing.T) {
	err := Transition(RunState{}, 7, DayPending, DayRunning)
	assert.ErrorContains(t, err, "unknown day")
}

func TestTransitionRejectsStaleFrom(t *testing.T) {
	state := RunState{1: DayRunning}
	err := Transition(state, 1, DayPending, DayRunning)
	assert.ErrorContains(t, err, "expected")
	assert.Equal(t, DayRunning, state[1], "state must be untouched on failure")
}

func TestTransitionRejectsIllegalEdges(t *testing.T) {
	cases := []struct{ from, to DayState }{
		{DayPending, DayCompleted},
		{DayPending, DayFailed},
		{DayCompleted, DayRunning},
		{DayFailed, DayPending},
		{DayRunning, DayPending},
	}
	for _, tc := range cases {
		state := RunState{1: tc.from}
		err := Transition(state, 1, tc.from, tc.to)
		assert.Error(t, err, "%s -> %s", tc.from, tc.to)
	}
}

func TestIsTerminal(t *testing.T) {
	assert.True(t, IsTerminal(DayCompleted))
	assert.True(t, IsTerminal(DayFailed))
	assert.False(t, IsTerminal(DayPending))
	assert.False(t, IsTerminal(DayRunning))
}
