package glsurface

import "github.com/go-gl/glfw/v3.3/glfw"

// Keys maps portable key names to GLFW keys.
var Keys = map[string]glfw.Key{
	"A": glfw.KeyA, "B": glfw.KeyB, "C": glfw.KeyC, "D": glfw.KeyD,
	"E": glfw.KeyE, "F": glfw.KeyF, "G": glfw.KeyG, "H": glfw.KeyH,
	"I": glfw.KeyI, "J": glfw.KeyJ, "K": glfw.KeyK, "L": glfw.KeyL,
	"M": glfw.KeyM, "N": glfw.KeyN, "O": glfw.KeyO, "P": glfw.KeyP,
	"Q": glfw.KeyQ, "R": glfw.KeyR, "S": glfw.KeyS, "T": glfw.KeyT,
	"U": glfw.KeyU, "V": glfw.KeyV, "W": glfw.KeyW, "X": glfw.KeyX,
	"Y": glfw.KeyY, "Z": glfw.KeyZ,

	"0": glfw.Key0, "1": glfw.Key1, "2": glfw.Key2, "3": glfw.Key3, "4": glfw.Key4,
	"5": glfw.Key5, "6": glfw.Key6, "7": glfw.Key7, "8": glfw.Key8, "9": glfw.Key9,

	"F1": glfw.KeyF1, "F2": glfw.KeyF2, "F3": glfw.KeyF3, "F4": glfw.KeyF4,
	"F5": glfw.KeyF5, "F6": glfw.KeyF6, "F7": glfw.KeyF7, "F8": glfw.KeyF8,
	"F9": glfw.KeyF9, "F10": glfw.KeyF10, "F11": glfw.KeyF11, "F12": glfw.KeyF12,

	"Up": glfw.KeyUp, "Down": glfw.KeyDown, "Left": glfw.KeyLeft, "Right": glfw.KeyRight,
	"PageUp": glfw.KeyPageUp, "PageDown": glfw.KeyPageDown,
	"Home": glfw.KeyHome, "End": glfw.KeyEnd,
	"Escape": glfw.KeyEscape, "Tab": glfw.KeyTab, "Space": glfw.KeySpace,
	"Enter": glfw.KeyEnter, "Backspace": glfw.KeyBackspace,
}
