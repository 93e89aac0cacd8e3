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

package database

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/luneburg/chessboard/curated"
	"github.com/luneburg/chessboard/paths"
)

// Activity is used to specify the general activity of what will be occurring
// during the database session.
type Activity int

// Valid activities: the "higher level" activities inherit the activity
// abilities of the activity levels lower down the scale.
const (
	ActivityReading Activity = iota

	// Modifying implies Reading.
	ActivityModifying

	// Creating implies Modifying (which in turn implies Reading).
	ActivityCreating
)

// Session keeps track of a database session.
type Session struct {
	path     string
	activity Activity

	entries    map[int]Entry
	entryTypes map[string]Deserialiser
}

// StartSession starts/initialises a new DB session. Argument is the function
// to call when database has been successfully opened. This function should be
// used to add information about the different entries that are to be used in
// the database (see RegisterEntryType() function).
func StartSession(path string, activity Activity, init func(*Session) error) (*Session, error) {
	db := &Session{
		path:       path,
		activity:   activity,
		entries:    make(map[int]Entry),
		entryTypes: make(map[string]Deserialiser),
	}

	if init != nil {
		if err := init(db); err != nil {
			return nil, curated.Errorf("database: %v", err)
		}
	}

	f, err := os.Open(path)
	if err != nil {
		if !os.IsNotExist(err) || activity != ActivityCreating {
			return nil, curated.Errorf("database: %v", err)
		}

		// a missing database file is the same as an empty database when
		// creating
		return db, nil
	}
	defer f.Close()

	if err := db.readDBFile(f); err != nil {
		return nil, err
	}

	return db, nil
}

// EndSession closes the database. The database file is only written if
// commitChanges is true and the activity of the session allows it.
func (db *Session) EndSession(commitChanges bool) error {
	if !commitChanges || db.activity == ActivityReading {
		return nil
	}

	if err := paths.EnsureDir(db.path); err != nil {
		return curated.Errorf("database: %v", err)
	}

	f, err := os.Create(db.path)
	if err != nil {
		return curated.Errorf("database: %v", err)
	}

	w := bufio.NewWriter(f)

	for _, key := range db.SortedKeyList() {
		ent := db.entries[key]

		fields, err := ent.Serialise()
		if err != nil {
			_ = f.Close()
			return curated.Errorf("database: %v", err)
		}

		w.WriteString(recordHeader(key, ent.EntryType()))
		for _, fld := range fields {
			w.WriteString(fieldSep)
			w.WriteString(fld)
		}
		w.WriteString(entrySep)
	}

	if err := w.Flush(); err != nil {
		_ = f.Close()
		return curated.Errorf("database: %v", err)
	}

	if err := f.Close(); err != nil {
		return curated.Errorf("database: %v", err)
	}

	return nil
}

func (db *Session) readDBFile(f *os.File) error {
	scanner := bufio.NewScanner(f)

	line := 0
	for scanner.Scan() {
		line++

		rec := scanner.Text()
		if strings.TrimSpace(rec) == "" {
			continue
		}

		fields := strings.Split(rec, fieldSep)
		if len(fields) < numLeaderFields {
			return curated.Errorf("database: line %d: too few fields", line)
		}

		key, err := strconv.Atoi(fields[leaderFieldKey])
		if err != nil {
			return curated.Errorf("database: line %d: invalid key (%s)", line, fields[leaderFieldKey])
		}

		if _, ok := db.entries[key]; ok {
			return curated.Errorf("database: line %d: duplicate key (%d)", line, key)
		}

		des, ok := db.entryTypes[fields[leaderFieldID]]
		if !ok {
			return curated.Errorf("database: line %d: unrecognised entry type (%s)", line, fields[leaderFieldID])
		}

		ent, err := des(fields[numLeaderFields:])
		if err != nil {
			return curated.Errorf("database: line %d: %v", line, err)
		}

		db.entries[key] = ent
	}

	if err := scanner.Err(); err != nil {
		return curated.Errorf("database: %v", err)
	}

	return nil
}
