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

package position

import (
	"fmt"
	"strings"

	"github.com/luneburg/chessboard/coords"
)

// FEN returns the position in Forsyth-Edwards Notation. The position must be
// from the point of view of the white player (white pieces uppercase) and
// side is the side to move. The half-move clock and full-move number are not
// tracked and are always "0 1".
func (p Position) FEN(side coords.Side) string {
	s := strings.Builder{}

	for row := 2; row <= 9; row++ {
		empty := 0
		for col := 1; col <= 8; col++ {
			c := p.board[row*10+col]
			if c == Empty {
				empty++
				continue
			}
			if empty > 0 {
				s.WriteString(fmt.Sprintf("%d", empty))
				empty = 0
			}
			s.WriteByte(c)
		}
		if empty > 0 {
			s.WriteString(fmt.Sprintf("%d", empty))
		}
		if row < 9 {
			s.WriteByte('/')
		}
	}

	if side == coords.White {
		s.WriteString(" w ")
	} else {
		s.WriteString(" b ")
	}

	castling := ""
	if p.wc[1] {
		castling += "K"
	}
	if p.wc[0] {
		castling += "Q"
	}
	if p.bc[0] {
		castling += "k"
	}
	if p.bc[1] {
		castling += "q"
	}
	if castling == "" {
		castling = "-"
	}
	s.WriteString(castling)

	if p.ep != 0 {
		s.WriteString(" ")
		s.WriteString(coords.SquareName(p.ep))
	} else {
		s.WriteString(" -")
	}

	s.WriteString(" 0 1")

	return s.String()
}
