// Package card implements the real-time core of a Eurorack delay card: a
// variable delay line that spans flanger, chorus and delay regimes, with
// feedback, wet/dry mixing, CV modulation, tap tempo, buffer freeze, a
// delay-synchronised clock output and tick overrun detection.
//
// All per-sample work is fixed-point integer arithmetic over memory that is
// allocated once by [New] or [NewState]. The tick path never allocates,
// blocks, logs or returns errors; numeric hazards are handled by saturation
// and index wraparound.
//
// The state of the card is one explicit aggregate, [State]. [Tick] advances
// it by one sample for a given [Inputs] snapshot and returns the new state
// together with the [Frame] to emit. [Engine] binds that function to a
// [Hardware] implementation, commits the output pair atomically, drives the
// pulse outputs and LEDs, and measures each tick against its time budget.
//
// Delay bands, by preset delay length in samples at 48 kHz:
//   - Flanger: up to 768 (16 ms). CV depth ±75%, second tap at 1/2.
//   - Chorus: up to 7200 (150 ms). CV depth ±1.25%, second tap at 3/4.
//   - Delay: up to 96000 (2 s). CV depth ±2.5%, second tap at 3/4.
package card
