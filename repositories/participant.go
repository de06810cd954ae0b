//go:generate go run go.uber.org/mock/mockgen -source=participant.go -destination=../mocks/mock_participant_repository.go -package=mocks
package repositories

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"

	"bate-papo/domain"
	chaterr "bate-papo/errors"
)

const participantPrefix = "participant:"

type IParticipantRepository interface {
	CreateParticipant(name string, at time.Time) (domain.Participant, error)
	GetParticipant(name string) (domain.Participant, error)
	ListParticipants() ([]domain.Participant, error)
	Touch(name string, at time.Time) error
	DeleteParticipant(name string) error
}

type ParticipantRepository struct {
	db *badger.DB
}

func NewParticipantRepository(db *badger.DB) *ParticipantRepository {
	return &ParticipantRepository{db: db}
}

// diskParticipant is the stored representation of a participant.
type diskParticipant struct {
	ID       string `msgpack:"id"`
	Name     string `msgpack:"name"`
	LastSeen int64  `msgpack:"last_seen"`
}

// CreateParticipant persists a new participant keyed by name.
// The existence check and the insert run inside one transaction, so two
// concurrent registrations with the same name cannot both succeed.
func (r *ParticipantRepository) CreateParticipant(name string, at time.Time) (domain.Participant, error) {
	participant := domain.Participant{
		ID:       uuid.New(),
		Name:     name,
		LastSeen: at,
	}
	data, err := msgpack.Marshal(fromParticipant(participant))
	if err != nil {
		return domain.Participant{}, fmt.Errorf("marshal failed: %w", err)
	}

	err = r.db.Update(func(txn *badger.Txn) error {
		key := []byte(participantPrefix + name)
		if _, err := txn.Get(key); err == nil {
			return chaterr.ErrDuplicateName
		} else if !errors.Is(err, badger.ErrKeyNotFound) {
			return err
		}
		return txn.Set(key, data)
	})
	if err != nil {
		return domain.Participant{}, storeErr(err)
	}
	return participant, nil
}

func (r *ParticipantRepository) GetParticipant(name string) (domain.Participant, error) {
	var disk diskParticipant
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(participantPrefix + name))
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			return msgpack.Unmarshal(val, &disk)
		})
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return domain.Participant{}, chaterr.ErrParticipantNotFound
	}
	if err != nil {
		return domain.Participant{}, storeErr(err)
	}
	return toParticipant(disk)
}

// ListParticipants returns every registered participant in store order
// (a prefix scan, so lexicographic by name).
func (r *ParticipantRepository) ListParticipants() ([]domain.Participant, error) {
	var disks []diskParticipant
	err := r.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(participantPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var disk diskParticipant
			err := it.Item().Value(func(val []byte) error {
				return msgpack.Unmarshal(val, &disk)
			})
			if err != nil {
				return err
			}
			disks = append(disks, disk)
		}
		return nil
	})
	if err != nil {
		return nil, storeErr(err)
	}

	participants := make([]domain.Participant, 0, len(disks))
	for _, disk := range disks {
		participant, err := toParticipant(disk)
		if err != nil {
			return nil, err
		}
		participants = append(participants, participant)
	}
	return participants, nil
}

// Touch refreshes the participant's liveness timestamp. Idempotent: a
// second call simply overwrites LastSeen with the later instant.
func (r *ParticipantRepository) Touch(name string, at time.Time) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		key := []byte(participantPrefix + name)
		item, err := txn.Get(key)
		if err != nil {
			return err
		}
		var disk diskParticipant
		if err = item.Value(func(val []byte) error {
			return msgpack.Unmarshal(val, &disk)
		}); err != nil {
			return err
		}
		disk.LastSeen = at.UnixNano()
		data, err := msgpack.Marshal(disk)
		if err != nil {
			return err
		}
		return txn.Set(key, data)
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return chaterr.ErrParticipantNotFound
	}
	if err != nil {
		return storeErr(err)
	}
	return nil
}

func (r *ParticipantRepository) DeleteParticipant(name string) error {
	err := r.db.Update(func(txn *badger.Txn) error {
		key := []byte(participantPrefix + name)
		if _, err := txn.Get(key); err != nil {
			return err
		}
		return txn.Delete(key)
	})
	if errors.Is(err, badger.ErrKeyNotFound) {
		return chaterr.ErrParticipantNotFound
	}
	if err != nil {
		return storeErr(err)
	}
	return nil
}

func fromParticipant(p domain.Participant) diskParticipant {
	return diskParticipant{
		ID:       p.ID.String(),
		Name:     p.Name,
		LastSeen: p.LastSeen.UnixNano(),
	}
}

func toParticipant(disk diskParticipant) (domain.Participant, error) {
	parsedID, err := uuid.Parse(disk.ID)
	if err != nil {
		return domain.Participant{}, fmt.Errorf("corrupt participant record: %w", err)
	}
	return domain.Participant{
		ID:       parsedID,
		Name:     disk.Name,
		LastSeen: time.Unix(0, disk.LastSeen).UTC(),
	}, nil
}

// storeErr tags unexpected store failures so the HTTP boundary can tell
// them apart from domain errors. Sentinels pass through untouched.
func storeErr(err error) error {
	if errors.Is(err, chaterr.ErrDuplicateName) ||
		errors.Is(err, chaterr.ErrParticipantNotFound) {
		return err
	}
	return fmt.Errorf("%w: %v", chaterr.ErrStore, err)
}
