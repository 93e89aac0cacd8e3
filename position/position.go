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

// significant squares in the mailbox numbering.
const (
	A1 = 91
	H1 = 98
	A8 = 21
	H8 = 28
)

// directions of travel for the side to move.
const (
	north = -10
	south = 10
)

// Empty is the value of an empty square on the board.
const Empty = '.'

// the padding value of squares outside the playing area.
const offBoard = ' '

// Position is the state of the game. The board is seen from the side of
// whoever moves next in the frame the position was produced in: Move() returns
// the position from the opponent's point of view and Rotate() flips it back.
// Play() applies a move for either side and always returns a white-oriented
// position, which is how the game stores it between turns.
type Position struct {
	board [120]byte

	// castling rights of the side to move and the opponent. the first value in
	// each pair is the right to castle with the rook that starts on the A1
	// square as seen from that side's point of view
	wc [2]bool
	bc [2]bool

	// en-passant square and king passant square. zero if there is no such
	// square
	ep int
	kp int
}

const initialLayout = "" +
	"          " +
	"          " +
	" rnbqkbnr " +
	" pppppppp " +
	" ........ " +
	" ........ " +
	" ........ " +
	" ........ " +
	" PPPPPPPP " +
	" RNBQKBNR " +
	"          " +
	"          "

// Initial returns the standard starting position from the point of view of
// the white player.
func Initial() Position {
	var p Position
	copy(p.board[:], initialLayout)
	p.wc = [2]bool{true, true}
	p.bc = [2]bool{true, true}
	return p
}

// Square returns the value of the square at the engine index. Pieces are
// identified by their engine letter and empty squares by the Empty value.
// Indices outside the playing area return a space.
func (p Position) Square(index int) byte {
	if !coords.ValidSquare(index) {
		return offBoard
	}
	return p.board[index]
}

// EnPassant returns the en-passant square. Zero if there is no such square.
func (p Position) EnPassant() int {
	return p.ep
}

// KingPassant returns the square the king passed over during castling on the
// previous move. Zero if there is no such square.
func (p Position) KingPassant() int {
	return p.kp
}

// Castling returns the castling rights of the side to move and the opponent.
func (p Position) Castling() (own [2]bool, opponent [2]bool) {
	return p.wc, p.bc
}

func swapCase(c byte) byte {
	switch {
	case c >= 'a' && c <= 'z':
		return c - 'a' + 'A'
	case c >= 'A' && c <= 'Z':
		return c - 'A' + 'a'
	}
	return c
}

func rotateIndex(i int) int {
	if i == 0 {
		return 0
	}
	return 119 - i
}

// Rotate returns the position as seen from the other side of the board.
// Rotating twice returns the original position.
func (p Position) Rotate() Position {
	var r Position
	for i := range p.board {
		r.board[119-i] = swapCase(p.board[i])
	}
	r.wc = p.bc
	r.bc = p.wc
	r.ep = rotateIndex(p.ep)
	r.kp = rotateIndex(p.kp)
	return r
}

// Move applies the move for the side to move and returns the resulting
// position from the point of view of the opponent.
func (p Position) Move(m coords.EngineMove) Position {
	i, j := m.From, m.To
	n := p

	piece := p.board[i]
	n.board[j] = piece
	n.board[i] = Empty
	n.ep = 0
	n.kp = 0

	// moving or capturing a rook loses the related castling right
	if i == A1 {
		n.wc[0] = false
	}
	if i == H1 {
		n.wc[1] = false
	}
	if j == A8 {
		n.bc[1] = false
	}
	if j == H8 {
		n.bc[0] = false
	}

	switch piece {
	case 'K':
		n.wc = [2]bool{false, false}

		// castling. the rook jumps to the square the king passed over
		if j-i == 2 || i-j == 2 {
			n.kp = (i + j) / 2
			if j < i {
				n.board[A1] = Empty
			} else {
				n.board[H1] = Empty
			}
			n.board[n.kp] = 'R'
		}

	case 'P':
		// promotion is always to a queen
		if j >= A8 && j <= H8 {
			n.board[j] = 'Q'
		}

		if j-i == 2*north {
			n.ep = i + north
		}

		// en-passant capture
		if p.ep != 0 && j == p.ep {
			n.board[j+south] = Empty
		}
	}

	return n.Rotate()
}

// Play applies a move made by the side. Both the position and the move must
// be from the point of view of the white player and the returned position is
// also from the point of view of the white player.
func (p Position) Play(side coords.Side, m coords.EngineMove) Position {
	if side == coords.White {
		return p.Move(m).Rotate()
	}
	return p.Rotate().Move(m.Rotate())
}

// String returns the board from the point of view of the side to move, one
// rank per line.
func (p Position) String() string {
	s := strings.Builder{}
	for row := 2; row <= 9; row++ {
		s.WriteString(fmt.Sprintf("%d ", 10-row))
		for col := 1; col <= 8; col++ {
			s.WriteByte(p.board[row*10+col])
		}
		s.WriteString("\n")
	}
	s.WriteString("  abcdefgh")
	return s.String()
}
