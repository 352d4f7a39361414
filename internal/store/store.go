package store

import (
	"encoding/json"
	"fmt"

	"github.com/dgraph-io/badger/v4"
)

// maxEntriesPerSize caps how many results Record keeps per board size
// before trimming the oldest, keeping the log small and the directory
// listing in Recent cheap to build.
const maxEntriesPerSize = 200

// Entry is one logged `go` result: the board size and position it was
// computed for, the fixed depth searched, and the move/score found.
type Entry struct {
	Size     int    `json:"size"`
	SFEN     string `json:"sfen"`
	Depth    int    `json:"depth"`
	BestMove string `json:"best_move"`
	Score    int32  `json:"score"`
	Sequence uint64 `json:"sequence"`
}

// Log wraps a badger database as an append-only session log, one
// sequence counter per board size.
type Log struct {
	db   *badger.DB
	seqs map[int]*badger.Sequence
}

// Open opens (creating if absent) the session log at DatabaseDir.
func Open() (*Log, error) {
	dir, err := DatabaseDir()
	if err != nil {
		return nil, err
	}
	return OpenAt(dir)
}

// OpenAt opens (creating if absent) a session log at an explicit
// directory, bypassing the platform data-dir convention — tests use
// this against a temp directory, since DatabaseDir always resolves to
// the real per-user data directory.
func OpenAt(dir string) (*Log, error) {
	opts := badger.DefaultOptions(dir)
	opts.Logger = nil

	db, err := badger.Open(opts)
	if err != nil {
		return nil, err
	}
	return &Log{db: db, seqs: make(map[int]*badger.Sequence)}, nil
}

// Close releases the sequence leases and closes the database.
func (l *Log) Close() error {
	for _, seq := range l.seqs {
		seq.Release()
	}
	if l.db != nil {
		return l.db.Close()
	}
	return nil
}

func (l *Log) sequenceFor(size int) (*badger.Sequence, error) {
	if seq, ok := l.seqs[size]; ok {
		return seq, nil
	}
	key := []byte(fmt.Sprintf("seq:%d", size))
	seq, err := l.db.GetSequence(key, 100)
	if err != nil {
		return nil, err
	}
	l.seqs[size] = seq
	return seq, nil
}

func entryKey(size int, seq uint64) []byte {
	return []byte(fmt.Sprintf("log:%02d:%020d", size, seq))
}

// Record appends one search result to the log and trims anything
// beyond maxEntriesPerSize for that board size.
func (l *Log) Record(e Entry) error {
	seq, err := l.sequenceFor(e.Size)
	if err != nil {
		return err
	}
	n, err := seq.Next()
	if err != nil {
		return err
	}
	e.Sequence = n

	data, err := json.Marshal(e)
	if err != nil {
		return err
	}

	if err := l.db.Update(func(txn *badger.Txn) error {
		return txn.Set(entryKey(e.Size, n), data)
	}); err != nil {
		return err
	}
	return l.trim(e.Size)
}

// trim deletes the oldest entries for size beyond maxEntriesPerSize.
func (l *Log) trim(size int) error {
	prefix := []byte(fmt.Sprintf("log:%02d:", size))
	var keys [][]byte

	err := l.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			key := it.Item().KeyCopy(nil)
			keys = append(keys, key)
		}
		return nil
	})
	if err != nil {
		return err
	}
	if len(keys) <= maxEntriesPerSize {
		return nil
	}

	excess := keys[:len(keys)-maxEntriesPerSize]
	return l.db.Update(func(txn *badger.Txn) error {
		for _, k := range excess {
			if err := txn.Delete(k); err != nil {
				return err
			}
		}
		return nil
	})
}

// Recent returns up to n of the most recently recorded entries for
// size, oldest first.
func (l *Log) Recent(size, n int) ([]Entry, error) {
	prefix := []byte(fmt.Sprintf("log:%02d:", size))
	var entries []Entry

	err := l.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var e Entry
			if err := it.Item().Value(func(val []byte) error {
				return json.Unmarshal(val, &e)
			}); err != nil {
				return err
			}
			entries = append(entries, e)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(entries) > n {
		entries = entries[len(entries)-n:]
	}
	return entries, nil
}
