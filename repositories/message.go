//go:generate go run go.uber.org/mock/mockgen -source=message.go -destination=../mocks/mock_message_repository.go -package=mocks
package repositories

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/vmihailenco/msgpack/v5"

	"bate-papo/domain"
)

type IMessageRepository interface {
	StoreMessage(message domain.Message) error
	GetMessages() ([]domain.Message, error)
}

type MessageRepository struct {
	db  *badger.DB
	log *slog.Logger
}

func NewMessageRepository(db *badger.DB, log *slog.Logger) *MessageRepository {
	return &MessageRepository{db: db, log: log}
}

// diskMessage is the stored representation of a message.
type diskMessage struct {
	ID   string `msgpack:"id"`
	From string `msgpack:"from"`
	To   string `msgpack:"to"`
	Text string `msgpack:"text"`
	Kind string `msgpack:"kind"`
	Time string `msgpack:"time"`
	At   int64  `msgpack:"at"`
}

// StoreMessage persists a message in BadgerDB.
// The key is formatted as "msg:{timestamp_padded}:{uuid}" to:
//  1. Ensure chronological sorting using 19-digit zero padding
//     (lexicographical order).
//  2. Prevent data loss by using UUID as a collision disconnector if two
//     messages arrive at the same nanosecond.
func (m *MessageRepository) StoreMessage(message domain.Message) error {
	key := fmt.Sprintf("msg:%019d:%s", message.At.UnixNano(), message.ID)
	data, err := msgpack.Marshal(fromMessage(message))
	if err != nil {
		return fmt.Errorf("marshal failed: %w", err)
	}
	err = m.db.Update(func(txn *badger.Txn) error {
		return txn.Set([]byte(key), data)
	})
	if err != nil {
		return storeErr(err)
	}
	m.log.Debug("Message stored", "from", message.From, "kind", message.Kind)
	return nil
}

// GetMessages returns the full message log in insertion order. Thanks to
// the padded timestamp in the key, a plain forward scan is enough.
// Visibility filtering happens above this layer on the fetched list.
func (m *MessageRepository) GetMessages() ([]domain.Message, error) {
	var disks []diskMessage
	err := m.db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte("msg:")
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			var disk diskMessage
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

	messages := make([]domain.Message, 0, len(disks))
	for _, disk := range disks {
		message, err := toMessage(disk)
		if err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}
	return messages, nil
}

func fromMessage(message domain.Message) diskMessage {
	return diskMessage{
		ID:   message.ID.String(),
		From: message.From,
		To:   message.To,
		Text: message.Text,
		Kind: string(message.Kind),
		Time: message.Time,
		At:   message.At.UnixNano(),
	}
}

func toMessage(disk diskMessage) (domain.Message, error) {
	parsedID, err := uuid.Parse(disk.ID)
	if err != nil {
		return domain.Message{}, fmt.Errorf("corrupt message record: %w", err)
	}
	return domain.Message{
		ID:   parsedID,
		From: disk.From,
		To:   disk.To,
		Text: disk.Text,
		Kind: domain.Kind(disk.Kind),
		Time: disk.Time,
		At:   time.Unix(0, disk.At).UTC(),
	}, nil
}
