// Package seenstore persists, per drill session, the set of encoded forms a
// learner has already been shown. It is backed by LevelDB.
package seenstore

import (
	"encoding/binary"
	"fmt"
	"log/slog"
	"strings"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"

	"github.com/cours-de-latin/morphodrill"
)

// LevelDB key scheme, "|" separated so session ids may contain ":":
//
//	s|<session>|<code as 4-byte big endian> → nil
const prefixSeen = "s|"

// Store is a LevelDB-backed seen-set store. LevelDB is single-writer per
// directory; a Store is safe for concurrent use by one process.
type Store struct {
	db *leveldb.DB
}

// Open opens (or creates) the database directory at path.
func Open(path string) (*Store, error) {
	db, err := leveldb.OpenFile(path, nil)
	if err != nil {
		return nil, fmt.Errorf("open seen store %s: %w", path, err)
	}
	return &Store{db: db}, nil
}

// Close releases the database.
func (s *Store) Close() error {
	return s.db.Close()
}

func sessionPrefix(session string) string {
	return prefixSeen + session + "|"
}

func seenKey(session string, code morphodrill.EncodedForm) []byte {
	p := sessionPrefix(session)
	k := make([]byte, len(p)+4)
	copy(k, p)
	binary.BigEndian.PutUint32(k[len(p):], uint32(code))
	return k
}

// Load returns the seen set of session. An unknown session yields an empty,
// non-nil set.
func (s *Store) Load(session string) (morphodrill.SeenSet, error) {
	prefix := sessionPrefix(session)
	iter := s.db.NewIterator(util.BytesPrefix([]byte(prefix)), nil)
	defer iter.Release()

	seen := make(morphodrill.SeenSet)
	for iter.Next() {
		k := iter.Key()
		if len(k) != len(prefix)+4 {
			slog.Warn("[SEEN] skipping malformed key", "key", string(k))
			continue
		}
		seen.Add(morphodrill.EncodedForm(binary.BigEndian.Uint32(k[len(prefix):])))
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("load session %q: %w", session, err)
	}
	return seen, nil
}

// Add records code as seen in session.
func (s *Store) Add(session string, code morphodrill.EncodedForm) error {
	if strings.Contains(session, "|") {
		return fmt.Errorf("session %q: must not contain '|'", session)
	}
	if err := s.db.Put(seenKey(session, code), nil, nil); err != nil {
		return fmt.Errorf("add %d to session %q: %w", code, session, err)
	}
	return nil
}

// Reset forgets every code of session and returns how many were removed.
func (s *Store) Reset(session string) (int, error) {
	iter := s.db.NewIterator(util.BytesPrefix([]byte(sessionPrefix(session))), nil)
	batch := new(leveldb.Batch)
	for iter.Next() {
		batch.Delete(append([]byte(nil), iter.Key()...))
	}
	iter.Release()
	if err := iter.Error(); err != nil {
		return 0, fmt.Errorf("reset session %q: %w", session, err)
	}
	if err := s.db.Write(batch, nil); err != nil {
		return 0, fmt.Errorf("reset session %q: %w", session, err)
	}
	slog.Debug("[SEEN] session reset", "session", session, "removed", batch.Len())
	return batch.Len(), nil
}
