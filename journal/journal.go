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

package journal

import (
	"database/sql"
	"errors"
	"time"

	petname "github.com/dustinkirkland/golang-petname"
	msqlite "modernc.org/sqlite"
	sqlite3lib "modernc.org/sqlite/lib"

	"github.com/luneburg/chessboard/coords"
	"github.com/luneburg/chessboard/curated"
	"github.com/luneburg/chessboard/logger"
	"github.com/luneburg/chessboard/paths"
)

// DefaultJournalFile is the filename of the journal in the resource
// directory.
const DefaultJournalFile = "journal.db"

// Sentinal error patterns.
const (
	StorageError = "journal: %v"
	DuplicatePly = "journal: ply %d of %s already recorded"
	UnknownGame  = "journal: no such game (%s)"
)

// the number of words in a game name
const gameNameWords = 2

const schema = `CREATE TABLE IF NOT EXISTS plies (
	game      TEXT NOT NULL,
	ply       INTEGER NOT NULL,
	side      TEXT NOT NULL,
	requested TEXT NOT NULL,
	played    TEXT NOT NULL,
	fen       TEXT NOT NULL,
	recorded  INTEGER NOT NULL,
	PRIMARY KEY (game, ply)
)`

// Ply is a single recorded half-move.
type Ply struct {
	Game      string
	Ply       int
	Side      string
	Requested string
	Played    string
	FEN       string
	Recorded  time.Time
}

// Journal is a record of games.
type Journal struct {
	db   *sql.DB
	game string
}

// Open the journal at the path. The file is created if it does not exist. A
// new game name is generated.
func Open(pth string) (*Journal, error) {
	err := paths.EnsureDir(pth)
	if err != nil {
		return nil, curated.Errorf(StorageError, err)
	}

	db, err := sql.Open("sqlite", pth+"?_busy_timeout=5000")
	if err != nil {
		return nil, curated.Errorf(StorageError, err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, curated.Errorf(StorageError, err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, curated.Errorf(StorageError, err)
	}

	j := &Journal{db: db}
	j.NewGame()

	return j, nil
}

// Close the journal.
func (j *Journal) Close() error {
	if err := j.db.Close(); err != nil {
		return curated.Errorf(StorageError, err)
	}
	return nil
}

// NewGame generates a name for a new game. Subsequent calls to Record() will
// be recorded under that name.
func (j *Journal) NewGame() string {
	j.game = petname.Generate(gameNameWords, "-")
	logger.Logf(logger.Allow, "journal", "recording game %s", j.game)
	return j.game
}

// Game returns the name of the game being recorded.
func (j *Journal) Game() string {
	return j.game
}

func isDuplicate(err error) bool {
	var sqliteErr *msqlite.Error
	if errors.As(err, &sqliteErr) {
		switch sqliteErr.Code() {
		case sqlite3lib.SQLITE_CONSTRAINT_PRIMARYKEY, sqlite3lib.SQLITE_CONSTRAINT_UNIQUE:
			return true
		}
	}
	return false
}

// Record implements the game.Recorder interface.
func (j *Journal) Record(ply int, side coords.Side, requested coords.Move, played coords.EngineMove, fen string) error {
	_, err := j.db.Exec(`INSERT INTO plies (game, ply, side, requested, played, fen, recorded)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		j.game, ply, side.String(), requested.String(), played.String(), fen, time.Now().UTC().UnixMilli())
	if err != nil {
		if isDuplicate(err) {
			return curated.Errorf(DuplicatePly, ply, j.game)
		}
		return curated.Errorf(StorageError, err)
	}
	return nil
}

// Games returns the names of every game in the journal, oldest first.
func (j *Journal) Games() ([]string, error) {
	rows, err := j.db.Query(`SELECT game FROM plies GROUP BY game ORDER BY MIN(recorded), game`)
	if err != nil {
		return nil, curated.Errorf(StorageError, err)
	}
	defer rows.Close()

	var games []string
	for rows.Next() {
		var g string
		if err := rows.Scan(&g); err != nil {
			return nil, curated.Errorf(StorageError, err)
		}
		games = append(games, g)
	}
	if err := rows.Err(); err != nil {
		return nil, curated.Errorf(StorageError, err)
	}

	return games, nil
}

// Plies returns every recorded half-move of the named game in order.
func (j *Journal) Plies(game string) ([]Ply, error) {
	rows, err := j.db.Query(`SELECT game, ply, side, requested, played, fen, recorded
		FROM plies WHERE game = ? ORDER BY ply`, game)
	if err != nil {
		return nil, curated.Errorf(StorageError, err)
	}
	defer rows.Close()

	var plies []Ply
	for rows.Next() {
		var p Ply
		var recorded int64
		if err := rows.Scan(&p.Game, &p.Ply, &p.Side, &p.Requested, &p.Played, &p.FEN, &recorded); err != nil {
			return nil, curated.Errorf(StorageError, err)
		}
		p.Recorded = time.UnixMilli(recorded).UTC()
		plies = append(plies, p)
	}
	if err := rows.Err(); err != nil {
		return nil, curated.Errorf(StorageError, err)
	}

	if len(plies) == 0 {
		return nil, curated.Errorf(UnknownGame, game)
	}

	return plies, nil
}
