//go:build cgo

package cmd

import (
	"fmt"
	"strings"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	"gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
)

// ListenMIDI opens the first input whose name starts with prefix and passes
// its messages to handle until stop is called. handle runs on the driver's
// goroutine.
func ListenMIDI(prefix string, handle func(msg midi.Message, timestampms int32)) (stop func(), err error) {
	driver, err := rtmididrv.New()
	if err != nil {
		return nil, fmt.Errorf("opening MIDI driver failed: %w", err)
	}
	ins, err := driver.Ins()
	if err != nil {
		driver.Close()
		return nil, fmt.Errorf("listing MIDI inputs failed: %w", err)
	}
	var in drivers.In
	for _, i := range ins {
		if strings.HasPrefix(i.String(), prefix) {
			in = i
			break
		}
	}
	if in == nil {
		driver.Close()
		return nil, fmt.Errorf("no MIDI input device found with prefix '%s'", prefix)
	}
	if err := in.Open(); err != nil {
		driver.Close()
		return nil, fmt.Errorf("opening MIDI input failed: %w", err)
	}
	stopListening, err := midi.ListenTo(in, handle)
	if err != nil {
		in.Close()
		driver.Close()
		return nil, fmt.Errorf("listening to MIDI input failed: %w", err)
	}
	return func() {
		stopListening()
		in.Close()
		driver.Close()
	}, nil
}
