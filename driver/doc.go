// Package driver runs a card on its host: it calls the card's startup hook
// once, shows the card's startup pattern on the LEDs, watches for the
// bootloader hold gesture, and then invokes one card tick per sample period
// until the context ends.
package driver
