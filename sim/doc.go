// Package sim provides a headless, in-memory implementation of the card
// hardware for tests and offline rendering.
//
// A Card latches one input snapshot per tick, feeds audio from a
// go-audio IntBuffer, keeps the committed output pair behind a mutex so it
// can be observed from another goroutine, and models pulse outputs and LEDs
// as plain state.
package sim
