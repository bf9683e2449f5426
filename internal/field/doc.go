// Package field implements the numeric value field behind the unit input
// widget: the unit range rules, text sanitization, clamping, and the state
// transitions triggered by typing, focus loss, unit switches and stepping.
//
// Every transition is a pure method on State. Store wraps a State for the
// rendering layer and notifies subscribers after each committed change.
package field
