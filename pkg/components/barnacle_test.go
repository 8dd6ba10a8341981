package components

import "testing"

func TestBarnacleStatusString(t *testing.T) {
	tests := []struct {
		status BarnacleStatus
		want   string
	}{
		{BarnacleAttaching, "Attaching"},
		{BarnacleAttached, "Attached"},
		{BarnacleGone, "Gone"},
		{BarnacleStatus(42), "Unknown"},
	}

	for _, tt := range tests {
		if got := tt.status.String(); got != tt.want {
			t.Errorf("BarnacleStatus(%d).String() = %q, want %q", int(tt.status), got, tt.want)
		}
	}
}

func TestInteractionKindString(t *testing.T) {
	if InteractionClicked.String() != "Clicked" {
		t.Errorf("Unexpected name %q", InteractionClicked.String())
	}
	if InteractionKind(9).String() != "Unknown" {
		t.Errorf("Unknown kind should render as Unknown")
	}
}
