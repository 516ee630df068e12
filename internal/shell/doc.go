// Package shell implements the interactive command loop: prompt rendering,
// line reading, tokenizing, dispatch to the session, explorer and manager,
// and conversion of failures into one-line error messages.
//
// A failing command never ends the loop. The loop ends on "exit", "quit",
// end of input, or after repeated consecutive read failures.
package shell
