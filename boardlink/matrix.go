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

package boardlink

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/luneburg/chessboard/coords"
	"github.com/luneburg/chessboard/curated"
)

// Matrix is the contents of the board as reported by the firmware. It is
// indexed by physical file and then physical rank. Pieces are identified by
// their firmware letter and empty squares by a space.
type Matrix [8][8]byte

// parseMatrix fills the matrix from the firmware's reply to the X command.
// The log tag and line terminators are removed but spaces are significant
// because they indicate empty squares.
func parseMatrix(line string) (Matrix, error) {
	var m Matrix

	s := strings.ReplaceAll(line, logTag+" ", "")
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "\n", "")

	if len(s) == 0 {
		return m, curated.Errorf(NoMatrix)
	}

	x := 0
	y := 7
	for i := 0; i < len(s); i++ {
		if x >= len(m) {
			return Matrix{}, curated.Errorf(CorruptMatrix, len(s))
		}
		m[x][y] = s[i]
		y--
		if y < 0 {
			y = 7
			x++
		}
	}

	if x != 8 || y != 7 {
		return Matrix{}, curated.Errorf(CorruptMatrix, len(s))
	}

	return m, nil
}

// EngineLetters returns a copy of the matrix with the firmware letters
// replaced by engine letters. Empty squares are replaced by a dot.
func (m Matrix) EngineLetters() Matrix {
	var e Matrix
	for x := range m {
		for y := range m[x] {
			e[x][y] = coords.FirmwareToEngineLetter(m[x][y])
		}
	}
	return e
}

// String returns the matrix with rank 7 at the top. Each square is followed
// by a space.
func (m Matrix) String() string {
	s := strings.Builder{}
	for y := 7; y >= 0; y-- {
		for x := 0; x < 8; x++ {
			s.WriteByte(m[x][y])
			s.WriteByte(' ')
		}
		s.WriteByte('\n')
	}
	return s.String()
}

var (
	whitePiece = color.New(color.FgHiWhite, color.Bold)
	blackPiece = color.New(color.FgHiRed, color.Bold)
	emptySq    = color.New(color.Faint)
)

// Fprint writes the matrix to the io.Writer in the same layout as String()
// but with white and black pieces in different colours.
func (m Matrix) Fprint(w io.Writer) {
	for y := 7; y >= 0; y-- {
		fmt.Fprintf(w, "%d  ", y)
		for x := 0; x < 8; x++ {
			c := m[x][y]
			switch {
			case c == ' ':
				emptySq.Fprint(w, ". ")
			case c >= 'a' && c <= 'z':
				blackPiece.Fprintf(w, "%c ", c)
			default:
				whitePiece.Fprintf(w, "%c ", c)
			}
		}
		fmt.Fprintln(w)
	}
	fmt.Fprintln(w, "\n   0 1 2 3 4 5 6 7")
}
