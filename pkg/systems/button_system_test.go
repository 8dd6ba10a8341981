package systems

import (
	"testing"

	"github.com/decker502/barnacles/pkg/components"
	"github.com/decker502/barnacles/pkg/ecs"
	"github.com/decker502/barnacles/pkg/entities"
)

func TestButtonSystem_States(t *testing.T) {
	em := ecs.NewEntityManager()
	clicks := 0
	id := entities.NewMenuButton(em, 100, 100, 200, 50, "New Game", components.MenuActionPlay, func() { clicks++ })
	system := NewButtonSystem(em)
	button, _ := ecs.GetComponent[*components.ButtonComponent](em, id)

	tests := []struct {
		name      string
		x, y      float64
		pressed   bool
		released  bool
		wantState components.UIState
		wantClick int
	}{
		{"outside", 10, 10, false, false, components.UINormal, 0},
		{"hover", 150, 120, false, false, components.UIHovered, 0},
		{"press", 150, 120, true, false, components.UIClicked, 0},
		{"release", 150, 120, false, true, components.UIHovered, 1},
		{"release outside", 10, 10, false, true, components.UINormal, 1},
	}

	for _, tt := range tests {
		system.HandlePointer(tt.x, tt.y, tt.pressed, tt.released)
		if button.State != tt.wantState {
			t.Errorf("%s: state = %v, want %v", tt.name, button.State, tt.wantState)
		}
		if clicks != tt.wantClick {
			t.Errorf("%s: clicks = %d, want %d", tt.name, clicks, tt.wantClick)
		}
	}

	ui, _ := ecs.GetComponent[*components.UIComponent](em, id)
	if ui.State != button.State {
		t.Errorf("UIComponent state %v not synced with button %v", ui.State, button.State)
	}
}

func TestButtonSystem_DisabledIgnoresClicks(t *testing.T) {
	em := ecs.NewEntityManager()
	clicked := false
	id := entities.NewMenuButton(em, 0, 0, 100, 40, "Quit", components.MenuActionQuit, func() { clicked = true })
	button, _ := ecs.GetComponent[*components.ButtonComponent](em, id)
	button.Enabled = false

	NewButtonSystem(em).HandlePointer(50, 20, false, true)

	if clicked {
		t.Error("Disabled button must not fire OnClick")
	}
	if button.State != components.UIDisabled {
		t.Errorf("state = %v, want UIDisabled", button.State)
	}
}

func TestButtonBackgroundColor(t *testing.T) {
	states := []components.UIState{components.UINormal, components.UIHovered, components.UIClicked, components.UIDisabled}
	seen := make(map[[4]uint8]components.UIState)
	for _, state := range states {
		c := ButtonBackgroundColor(state)
		key := [4]uint8{c.R, c.G, c.B, c.A}
		if prev, dup := seen[key]; dup {
			t.Errorf("states %v and %v share the same colour", prev, state)
		}
		seen[key] = state
	}
}
