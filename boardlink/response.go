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
	"strconv"
	"strings"

	"github.com/luneburg/chessboard/coords"
)

// the tag that prefixes all protocol lines sent by the firmware.
const logTag = "[LOG]"

type responseKind int

const (
	// an untagged line, an unrecognised tag or a malformed record
	respIrrelevant responseKind = iota

	respReady
	respMovePerformed
	respWrongMove
	respDestinationOccupied
	respLocationEmpty
	respQueueEmpty
)

func (k responseKind) String() string {
	switch k {
	case respReady:
		return "READY"
	case respMovePerformed:
		return "MP"
	case respWrongMove:
		return "ERR_WRONG_MOVE"
	case respDestinationOccupied:
		return "ERR_DESTINATION_OCCUPIED"
	case respLocationEmpty:
		return "ERR_LOCATION_EMPTY"
	case respQueueEmpty:
		return "QE"
	}
	return "irrelevant"
}

type response struct {
	kind responseKind

	// only valid for respMovePerformed
	move coords.RawMove
}

// decode a single line from the firmware. the line should not include the
// line terminator.
func decode(line string) response {
	idx := strings.Index(line, logTag)
	if idx < 0 {
		return response{}
	}

	tokens := strings.Fields(line[idx+len(logTag):])
	if len(tokens) == 0 {
		return response{}
	}

	switch tokens[0] {
	case "READY":
		return response{kind: respReady}
	case "ERR_WRONG_MOVE":
		return response{kind: respWrongMove}
	case "ERR_DESTINATION_OCCUPIED":
		return response{kind: respDestinationOccupied}
	case "ERR_LOCATION_EMPTY":
		return response{kind: respLocationEmpty}
	case "QE":
		return response{kind: respQueueEmpty}
	case "MP":
		if len(tokens) != 5 {
			return response{}
		}

		var c [4]int
		for i := range c {
			v, err := strconv.Atoi(tokens[i+1])
			if err != nil {
				return response{}
			}
			c[i] = v
		}

		return response{
			kind: respMovePerformed,
			move: coords.RawMove{SrcFile: c[0], SrcRank: c[1], DstFile: c[2], DstRank: c[3]},
		}
	}

	return response{}
}
