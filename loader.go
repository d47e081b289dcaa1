package morphodrill

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// loadVerbs reads dataDir/verbs.txt into d.verbs.
// Format: one "id|pp1, …, pp6[|hq]" per line; "!" starts a comment line.
func (d *Drill) loadVerbs(dataDir string) error {
	f, err := os.Open(filepath.Join(dataDir, "verbs.txt"))
	if err != nil {
		return fmt.Errorf("open verbs.txt: %w", err)
	}
	defer f.Close()

	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "!") {
			continue
		}
		v, err := ParseVerb(line)
		if err != nil {
			return fmt.Errorf("verbs.txt:%d: %w", lineNo, err)
		}
		d.verbs[v.ID] = v
	}
	return sc.Err()
}

// loadParadigms reads dataDir/paradigms.txt into d.paradigms.
// A block starts with "verb:<id>" and is followed by rows
// "tense:mood:voice:f1;f2;f3;f4;f5;f6" (see Paradigm.addRow). A missing
// file is not an error: the lexicon then has no spelled forms.
func (d *Drill) loadParadigms(dataDir string) error {
	f, err := os.Open(filepath.Join(dataDir, "paradigms.txt"))
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("open paradigms.txt: %w", err)
	}
	defer f.Close()

	var cur *Paradigm
	sc := bufio.NewScanner(f)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "!") {
			continue
		}

		if rest, ok := strings.CutPrefix(line, "verb:"); ok {
			id, err := strconv.Atoi(strings.TrimSpace(rest))
			if err != nil {
				return fmt.Errorf("paradigms.txt:%d: verb id %q: %w", lineNo, rest, err)
			}
			v := d.verbs[id]
			if v == nil {
				return fmt.Errorf("paradigms.txt:%d: %w: %d", lineNo, ErrUnknownVerb, id)
			}
			if cur = d.paradigms[id]; cur == nil {
				cur = newParadigm(v)
				d.paradigms[id] = cur
			}
			continue
		}

		if cur == nil {
			return fmt.Errorf("paradigms.txt:%d: row before any verb: header", lineNo)
		}
		if err := cur.addRow(line); err != nil {
			return fmt.Errorf("paradigms.txt:%d: %w", lineNo, err)
		}
	}
	return sc.Err()
}
