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
	"crypto/md5"
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"

	"github.com/luneburg/chessboard/curated"
	"github.com/luneburg/chessboard/logger"
)

// Sentinal error patterns.
const (
	NoClip      = "voice: no clip for %q"
	DecodeError = "voice: %s: %v"
	OutputError = "voice: output: %v"
	UnknownClip = "voice: unsupported clip type (%s)"
)

const (
	cueClip      = "ready"
	clipLogTag   = "voice"
	bytesPerWord = 2
)

// the order in which file extensions are tried when looking for a clip
var clipExtensions = []string{".mp3", ".wav"}

// Clip is decoded audio data. Data is signed 16 bit little endian PCM with
// the channels interleaved.
type Clip struct {
	SampleRate int
	Channels   int
	Data       []byte
}

// Duration of the clip in seconds.
func (c Clip) Duration() float64 {
	if c.SampleRate == 0 || c.Channels == 0 {
		return 0
	}
	return float64(len(c.Data)) / float64(c.SampleRate*c.Channels*bytesPerWord)
}

// Output is a device that can play a Clip. Play() should not return until
// the clip has finished.
type Output interface {
	Play(c Clip) error
}

// Clips finds and plays the clip for a spoken phrase.
type Clips struct {
	dir string
	out Output
}

// NewClips is the preferred method of initialisation for the Clips type.
func NewClips(dir string, out Output) *Clips {
	return &Clips{
		dir: dir,
		out: out,
	}
}

// ClipName returns the filename (without extension) of the clip for the
// text.
func ClipName(text string) string {
	return fmt.Sprintf("%x", md5.Sum([]byte(text)))
}

// Say plays the clip for the text. Returns false if there is no clip or if
// the clip could not be played.
func (cl *Clips) Say(text string) bool {
	return cl.play(ClipName(text))
}

// Cue plays the ready cue. Returns false if there is no cue clip or if it
// could not be played.
func (cl *Clips) Cue() bool {
	return cl.play(cueClip)
}

func (cl *Clips) play(name string) bool {
	c, err := cl.Load(name)
	if err != nil {
		if !curated.Is(err, NoClip) {
			logger.Log(logger.Allow, clipLogTag, err)
		}
		return false
	}

	err = cl.out.Play(c)
	if err != nil {
		logger.Log(logger.Allow, clipLogTag, curated.Errorf(OutputError, err))
		return false
	}

	return true
}

// Load the named clip from the cache directory.
func (cl *Clips) Load(name string) (Clip, error) {
	for _, ext := range clipExtensions {
		pth := filepath.Join(cl.dir, name+ext)
		f, err := os.Open(pth)
		if err != nil {
			continue
		}
		defer f.Close()
		return Decode(f, ext)
	}
	return Clip{}, curated.Errorf(NoClip, name)
}

// Decode audio data. The ext argument is the file extension that indicates
// the format of the data.
func Decode(r io.ReadSeeker, ext string) (Clip, error) {
	switch strings.ToLower(ext) {
	case ".wav":
		return decodeWAV(r)
	case ".mp3":
		return decodeMP3(r)
	}
	return Clip{}, curated.Errorf(UnknownClip, ext)
}

func decodeWAV(r io.ReadSeeker) (Clip, error) {
	dec := wav.NewDecoder(r)
	if dec == nil || !dec.IsValidFile() {
		return Clip{}, curated.Errorf(DecodeError, "wav", "not a valid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return Clip{}, curated.Errorf(DecodeError, "wav", err)
	}

	// rescale samples to 16 bits
	shift := int(dec.BitDepth) - 16

	c := Clip{
		SampleRate: int(dec.SampleRate),
		Channels:   int(dec.NumChans),
		Data:       make([]byte, len(buf.Data)*bytesPerWord),
	}

	for i, s := range buf.Data {
		if shift > 0 {
			s >>= shift
		} else if shift < 0 {
			s <<= -shift
		}

		// 8 bit wav data is unsigned
		if dec.BitDepth == 8 {
			s -= 0x8000
		}

		binary.LittleEndian.PutUint16(c.Data[i*bytesPerWord:], uint16(int16(s)))
	}

	logger.Logf(logger.Allow, clipLogTag, "wav: %dHz %d channels %.02fs", c.SampleRate, c.Channels, c.Duration())

	return c, nil
}

func decodeMP3(r io.Reader) (Clip, error) {
	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return Clip{}, curated.Errorf(DecodeError, "mp3", err)
	}

	data, err := io.ReadAll(dec)
	if err != nil {
		return Clip{}, curated.Errorf(DecodeError, "mp3", err)
	}

	// the decoded stream is always 16bit (little endian) 2 channels even if
	// the source is single channel
	c := Clip{
		SampleRate: dec.SampleRate(),
		Channels:   2,
		Data:       data,
	}

	logger.Logf(logger.Allow, clipLogTag, "mp3: %dHz %d channels %.02fs", c.SampleRate, c.Channels, c.Duration())

	return c, nil
}
