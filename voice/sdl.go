// This file is part of Luneburg.
//
// Luneburg is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Luneburg is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Luneburg.  If not, see <https://www.gnu.org/licenses/>.

package voice

import (
	"time"

	"github.com/veandco/go-sdl2/sdl"

	"github.com/luneburg/chessboard/logger"
)

// the number of sample frames in the audio device buffer
const bufferLength = 2048

// how often to check whether the queued audio has finished
const drainPoll = 20 * time.Millisecond

// SDL outputs clips using the SDL audio subsystem. The device is reopened
// whenever a clip with a different format to the previous clip is played.
type SDL struct {
	id   sdl.AudioDeviceID
	spec sdl.AudioSpec
	open bool
}

// NewSDL is the preferred method of initialisation for the SDL type.
func NewSDL() (*SDL, error) {
	err := sdl.InitSubSystem(sdl.INIT_AUDIO)
	if err != nil {
		return nil, err
	}
	return &SDL{}, nil
}

func (aud *SDL) openDevice(c Clip) error {
	if aud.open {
		if int(aud.spec.Freq) == c.SampleRate && int(aud.spec.Channels) == c.Channels {
			return nil
		}
		sdl.CloseAudioDevice(aud.id)
		aud.open = false
	}

	spec := &sdl.AudioSpec{
		Freq:     int32(c.SampleRate),
		Format:   sdl.AUDIO_S16LSB,
		Channels: uint8(c.Channels),
		Samples:  uint16(bufferLength),
	}

	var err error
	var actualSpec sdl.AudioSpec

	aud.id, err = sdl.OpenAudioDevice("", false, spec, &actualSpec, 0)
	if err != nil {
		return err
	}

	aud.spec = actualSpec
	aud.open = true
	sdl.PauseAudioDevice(aud.id, false)

	logger.Logf(logger.Allow, "voice", "audio device: %dHz %d channels", aud.spec.Freq, aud.spec.Channels)

	return nil
}

// Play implements the Output interface.
func (aud *SDL) Play(c Clip) error {
	err := aud.openDevice(c)
	if err != nil {
		return err
	}

	sdl.ClearQueuedAudio(aud.id)
	err = sdl.QueueAudio(aud.id, c.Data)
	if err != nil {
		return err
	}

	for sdl.GetQueuedAudioSize(aud.id) > 0 {
		time.Sleep(drainPoll)
	}

	return nil
}

// Close the audio device and the SDL audio subsystem.
func (aud *SDL) Close() {
	if aud.open {
		sdl.CloseAudioDevice(aud.id)
		aud.open = false
	}
	sdl.QuitSubSystem(sdl.INIT_AUDIO)
}
