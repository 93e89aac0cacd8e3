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

package movesource

import (
	"fmt"
	"io"
	"strings"

	"github.com/luneburg/chessboard/curated"
	"github.com/luneburg/chessboard/database"
	"github.com/luneburg/chessboard/logger"
)

// DefaultReplacementsFile is the name of the file in the resource directory
// that holds the replacement rules.
const DefaultReplacementsFile = "replacements"

const replacementEntryType = "replacement"

// Rule is a single replacement rule. The Phrase is replaced by the
// Correction.
type Rule struct {
	Phrase     string
	Correction string
}

// rule is the database entry for a Rule.
type rule struct {
	Rule
}

func (r rule) EntryType() string {
	return replacementEntryType
}

func (r rule) String() string {
	return fmt.Sprintf("%q -> %q", r.Phrase, r.Correction)
}

func (r rule) Serialise() (database.SerialisedEntry, error) {
	return database.SerialisedEntry{r.Phrase, r.Correction}, nil
}

func (r rule) CleanUp() error {
	return nil
}

func deserialiseRule(fields database.SerialisedEntry) (database.Entry, error) {
	if len(fields) != 2 {
		return nil, curated.Errorf("replacement: wrong number of fields (%d)", len(fields))
	}
	return rule{Rule: Rule{Phrase: fields[0], Correction: fields[1]}}, nil
}

func initReplacements(db *database.Session) error {
	return db.RegisterEntryType(replacementEntryType, deserialiseRule)
}

// Replacements is the ordered table of replacement rules. The table is kept
// in memory and written to disk in full every time a rule is added or
// removed.
type Replacements struct {
	path  string
	rules []Rule
}

// LoadReplacements reads the replacement rules from the file at the path. A
// missing file is the same as an empty table and the file will be created.
func LoadReplacements(pth string) (*Replacements, error) {
	r := &Replacements{path: pth}
	if err := r.reload(); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Replacements) reload() error {
	db, err := database.StartSession(r.path, database.ActivityCreating, initReplacements)
	if err != nil {
		return curated.Errorf("replacements: %v", err)
	}

	r.rules = r.rules[:0]
	_, err = db.SelectAll(func(e database.Entry) error {
		r.rules = append(r.rules, e.(rule).Rule)
		return nil
	})
	if err != nil {
		return curated.Errorf("replacements: %v", err)
	}

	if err := db.EndSession(true); err != nil {
		return curated.Errorf("replacements: %v", err)
	}

	return nil
}

// Rules returns a copy of the replacement rules in table order.
func (r *Replacements) Rules() []Rule {
	c := make([]Rule, len(r.rules))
	copy(c, r.rules)
	return c
}

// Apply the replacement rules to the text. The text is first converted to
// lowercase. Each rule is considered in table order and if the phrase is
// found then the first occurrence is replaced by the correction. Rules see the
// result of earlier rules.
func (r *Replacements) Apply(text string) string {
	result := strings.ToLower(text)
	for _, rl := range r.rules {
		p := strings.ToLower(rl.Phrase)
		if p == "" {
			continue // for loop
		}
		if strings.Contains(result, p) {
			logger.Logf(logger.Allow, "human", "replacing %q with %q", rl.Phrase, rl.Correction)
			result = strings.Replace(result, p, rl.Correction, 1)
		}
	}
	return result
}

// Add a rule to the end of the table and write the table to disk.
func (r *Replacements) Add(phrase string, correction string) error {
	if phrase == "" {
		return curated.Errorf("replacements: empty phrase")
	}

	db, err := database.StartSession(r.path, database.ActivityCreating, initReplacements)
	if err != nil {
		return curated.Errorf("replacements: %v", err)
	}

	nr := Rule{Phrase: phrase, Correction: correction}
	if err := db.Add(rule{Rule: nr}); err != nil {
		_ = db.EndSession(false)
		return curated.Errorf("replacements: %v", err)
	}

	if err := db.EndSession(true); err != nil {
		return curated.Errorf("replacements: %v", err)
	}

	r.rules = append(r.rules, nr)

	return nil
}

// Remove the rule with the key shown by List().
func (r *Replacements) Remove(key int) error {
	db, err := database.StartSession(r.path, database.ActivityModifying, initReplacements)
	if err != nil {
		return curated.Errorf("replacements: %v", err)
	}

	if err := db.Delete(key); err != nil {
		_ = db.EndSession(false)
		return curated.Errorf("replacements: %v", err)
	}

	// move the later rules down so that the table stays in order when the
	// next rule is added in the lowest free key
	var later []database.Entry
	for _, k := range db.SortedKeyList() {
		if k < key {
			continue // for loop
		}
		e, err := db.SelectKeys(nil, k)
		if err != nil {
			_ = db.EndSession(false)
			return curated.Errorf("replacements: %v", err)
		}
		later = append(later, e)
		if err := db.Delete(k); err != nil {
			_ = db.EndSession(false)
			return curated.Errorf("replacements: %v", err)
		}
	}
	for _, e := range later {
		if err := db.Add(e); err != nil {
			_ = db.EndSession(false)
			return curated.Errorf("replacements: %v", err)
		}
	}

	if err := db.EndSession(true); err != nil {
		return curated.Errorf("replacements: %v", err)
	}

	return r.reload()
}

// List the rules with their keys.
func (r *Replacements) List(output io.Writer) error {
	db, err := database.StartSession(r.path, database.ActivityReading, initReplacements)
	if err != nil {
		return curated.Errorf("replacements: %v", err)
	}
	defer db.EndSession(false)

	return db.List(output)
}
