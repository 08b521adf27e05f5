//go:build !cgo

package cmd

import (
	"errors"

	"gitlab.com/gomidi/midi/v2"
)

// ListenMIDI needs cgo for the rtmidi driver; without it there is no MIDI
// input.
func ListenMIDI(prefix string, handle func(msg midi.Message, timestampms int32)) (stop func(), err error) {
	return nil, errors.New("MIDI input is not available in builds without cgo")
}
