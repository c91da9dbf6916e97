package lifecycle

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTransitionHappyPath(t *testing.T) {
	next, err := Transition(StateCreated, EventStart)
	require.NoError(t, err)
	require.Equal(t, StateStarted, next)

	next, err = Transition(next, EventStop)
	require.NoError(t, err)
	require.Equal(t, StateStopped, next)
}

func TestTransitionMatrixInvalidTransitions(t *testing.T) {
	tests := []struct {
		name    string
		state   State
		event   Event
		want    State
		wantErr bool
	}{
		{name: "created stop valid", state: StateCreated, event: EventStop, want: StateStopped},
		{name: "started start invalid", state: StateStarted, event: EventStart, want: StateStarted, wantErr: true},
		{name: "stopped start invalid", state: StateStopped, event: EventStart, want: StateStopped, wantErr: true},
		{name: "stopped stop invalid", state: StateStopped, event: EventStop, want: StateStopped, wantErr: true},
		{name: "created unknown event", state: StateCreated, event: Event("reload"), want: StateCreated, wantErr: true},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			next, err := Transition(tc.state, tc.event)
			require.Equal(t, tc.want, next)
			if tc.wantErr {
				require.Error(t, err)
				require.Contains(t, err.Error(), "invalid transition")
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestTransitionUnknownState(t *testing.T) {
	next, err := Transition(State("mystery"), EventStart)
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown state")
	require.Equal(t, State("mystery"), next)
}
