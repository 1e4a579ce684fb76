/*
Package journal persists the attempted transfers into a bolt database.
*/
package journal

import (
	"encoding/binary"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	bolt "go.etcd.io/bbolt"

	"github.com/xtransfer-org/xtransfer-go/cbor"
	"github.com/xtransfer-org/xtransfer-go/xtransfer"
)

var bucketAttempts = []byte("attempts")

// ErrStoreClosed is returned by List of a closed store.
var ErrStoreClosed = errors.New("journal store is closed")

var _ xtransfer.EventSink = (*Store)(nil)

// Record is an attempted transfer together with its sequence number in the journal.
type Record struct {
	Seq uint64
	xtransfer.Attempted
}

/*
Store appends every deposited event under the next sequence number of the
attempts bucket, the value is CBOR encoded xtransfer.Attempted.
*/
type Store struct {
	db  *bolt.DB
	log logrus.FieldLogger
}

func Open(filePath string, log logrus.FieldLogger) (*Store, error) {
	db, err := bolt.Open(filePath, 0600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("opening journal database %q: %w", filePath, err)
	}
	if err := db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(bucketAttempts)
		return err
	}); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating journal bucket: %w", err)
	}
	return &Store{db: db, log: log}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

/*
Deposit appends the event to the journal. The EventSink has no way to report
errors so failures are logged.
*/
func (s *Store) Deposit(event xtransfer.Attempted) {
	seq, err := s.Append(event)
	if err != nil {
		s.log.WithError(err).WithField("message", event.MessageID.String()).Error("failed to record transfer attempt")
		return
	}
	s.log.WithField("seq", seq).Debug("transfer attempt recorded")
}

// Append stores the event and returns its sequence number, the first event gets 1.
func (s *Store) Append(event xtransfer.Attempted) (seq uint64, _ error) {
	data, err := cbor.Marshal(event)
	if err != nil {
		return 0, fmt.Errorf("encoding transfer attempt: %w", err)
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(bucketAttempts)
		if seq, err = b.NextSequence(); err != nil {
			return err
		}
		return b.Put(seqKey(seq), data)
	})
	if err != nil {
		return 0, fmt.Errorf("storing transfer attempt: %w", err)
	}
	return seq, nil
}

// List returns up to limit records starting from sequence number from, limit 0 means no limit.
func (s *Store) List(from uint64, limit int) ([]Record, error) {
	var records []Record
	err := s.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket(bucketAttempts).Cursor()
		for k, v := c.Seek(seqKey(from)); k != nil; k, v = c.Next() {
			if limit > 0 && len(records) == limit {
				return nil
			}
			r := Record{Seq: binary.BigEndian.Uint64(k)}
			if err := cbor.Unmarshal(v, &r.Attempted); err != nil {
				return fmt.Errorf("decoding transfer attempt %d: %w", r.Seq, err)
			}
			records = append(records, r)
		}
		return nil
	})
	if errors.Is(err, bolt.ErrDatabaseNotOpen) {
		return nil, ErrStoreClosed
	}
	return records, err
}

func seqKey(seq uint64) []byte {
	key := make([]byte, 8)
	binary.BigEndian.PutUint64(key, seq)
	return key
}
