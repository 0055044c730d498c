// Package input turns polled key state into per-tick command snapshots.
package input

import (
	"fmt"
	"strings"
)

// Command is a semantic input, independent of the physical key bound to it.
type Command uint8

const (
	RotateXPos Command = iota
	RotateXNeg
	RotateYPos
	RotateYNeg
	RotateZPos
	RotateZNeg
	TranslateXPos
	TranslateXNeg
	TranslateYPos
	TranslateYNeg
	TranslateZPos
	TranslateZNeg
	Reset
	ModeLocal
	ModeGlobal
	ModeCoordSystem
	ModeCycle
	ToggleAxes
	Quit

	NumCommands
)

var commandNames = [NumCommands]string{
	RotateXPos:      "rotate_x_pos",
	RotateXNeg:      "rotate_x_neg",
	RotateYPos:      "rotate_y_pos",
	RotateYNeg:      "rotate_y_neg",
	RotateZPos:      "rotate_z_pos",
	RotateZNeg:      "rotate_z_neg",
	TranslateXPos:   "translate_x_pos",
	TranslateXNeg:   "translate_x_neg",
	TranslateYPos:   "translate_y_pos",
	TranslateYNeg:   "translate_y_neg",
	TranslateZPos:   "translate_z_pos",
	TranslateZNeg:   "translate_z_neg",
	Reset:           "reset",
	ModeLocal:       "mode_local",
	ModeGlobal:      "mode_global",
	ModeCoordSystem: "mode_coord_system",
	ModeCycle:       "mode_cycle",
	ToggleAxes:      "toggle_axes",
	Quit:            "quit",
}

func (c Command) String() string {
	if c < NumCommands {
		return commandNames[c]
	}
	return fmt.Sprintf("Command(%d)", uint8(c))
}

// ParseCommand looks a command up by its configuration name.
func ParseCommand(name string) (Command, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c, n := range commandNames {
		if n == name {
			return Command(c), nil
		}
	}
	return 0, fmt.Errorf("unknown command %q", name)
}

// Commands returns every command in declaration order.
func Commands() []Command {
	out := make([]Command, NumCommands)
	for i := range out {
		out[i] = Command(i)
	}
	return out
}
