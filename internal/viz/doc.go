// Package viz renders the solar system in the terminal.
//
// A Braille-cell [Canvas] gives a 2x4 sub-pixel grid per character, a
// [Camera] projects the orbital plane at a tilt, and [Model] is a
// Bubble Tea program wiring the animation clock's keyboard commands
// (run/pause, single-step, time-step scaling) to a live top-down view.
package viz
