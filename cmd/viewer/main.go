// Command viewer dumps the participant and message collections of a
// running (or stopped) instance in read-only mode, for debugging.
package main

import (
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/Netflix/go-env"
	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/joho/godotenv"
	"github.com/olekukonko/tablewriter"

	"bate-papo/repositories"
)

type Config struct {
	BadgerFilepath string `env:"BADGER_FILEPATH,required=true"`
}

func main() {
	// 1. Load config
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		log.Fatalf("Config error: %v", err)
	}

	// 2. Open Badger in Read-Only mode
	// BypassLockGuard allows opening while the server holds the lock
	opts := badger.DefaultOptions(config.BadgerFilepath).
		WithReadOnly(true).
		WithBypassLockGuard(true).
		WithLoggingLevel(badger.ERROR)

	db, err := badger.Open(opts)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	// 3. Dump both collections
	participantRepository := repositories.NewParticipantRepository(db)
	messageRepository := repositories.NewMessageRepository(db, slog.Default())

	participants, err := participantRepository.ListParticipants()
	if err != nil {
		log.Fatalf("Failed to list participants: %v", err)
	}
	color.Bold.Printf("Participants (%d)\n", len(participants))
	participantTable := newTable([]string{"ID", "Name", "Last Seen"})
	for _, p := range participants {
		participantTable.Append([]string{
			p.ID.String(), p.Name, p.LastSeen.Format(time.RFC3339),
		})
	}
	participantTable.Render()

	messages, err := messageRepository.GetMessages()
	if err != nil {
		log.Fatalf("Failed to list messages: %v", err)
	}
	color.Bold.Printf("\nMessages (%d)\n", len(messages))
	messageTable := newTable([]string{"Time", "Kind", "From", "To", "Text"})
	for _, m := range messages {
		messageTable.Append([]string{
			m.Time, string(m.Kind), m.From, m.To, m.Text,
		})
	}
	messageTable.Render()
}

func newTable(header []string) *tablewriter.Table {
	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	return table
}
