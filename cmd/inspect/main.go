package main

import (
	"chat-relay/internal"
	"fmt"
	"os"

	"github.com/dgraph-io/badger/v4"
	"github.com/gookit/color"
	"github.com/kelseyhightower/envconfig"
	"github.com/olekukonko/tablewriter"
)

type Config struct {
	Path   string `envconfig:"INSPECT_BADGER_FILEPATH" required:"true"`
	Prefix string `envconfig:"INSPECT_PREFIX" default:""`
	// INSPECT_INDEXES also lists the empty-valued index keys
	Indexes bool `envconfig:"INSPECT_INDEXES" default:"false"`
	Colours bool `envconfig:"INSPECT_COLOURS" default:"true"`
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Inspect failed: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return err
	}
	color.Enable = cfg.Colours

	db, err := badger.Open(badger.DefaultOptions(cfg.Path).
		WithReadOnly(true).
		WithLogger(nil).
		WithBypassLockGuard(true))
	if err != nil {
		return fmt.Errorf("error while opening Badger: %w", err)
	}
	defer func() { _ = db.Close() }()

	table := tablewriter.NewWriter(os.Stdout)
	table.SetHeader([]string{"Key", "Type", "Detail"})
	table.SetAutoWrapText(false)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")

	count := 0
	err = db.View(func(txn *badger.Txn) error {
		it := txn.NewIterator(badger.DefaultIteratorOptions)
		defer it.Close()

		prefix := []byte(cfg.Prefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			err := item.Value(func(val []byte) error {
				row := internal.Describe(string(item.Key()), val)
				if row.Type == "INDEX" && !cfg.Indexes {
					return nil
				}
				table.Append([]string{row.Key, paint(row.Type), row.Detail})
				count++
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return err
	}

	table.Render()
	color.Info.Printf("%d entries under %q\n", count, cfg.Prefix)
	return nil
}

func paint(kind string) string {
	switch kind {
	case "USER":
		return color.FgGreen.Render(kind)
	case "ROOM":
		return color.FgCyan.Render(kind)
	case "MSG":
		return color.FgYellow.Render(kind)
	case "CALL":
		return color.FgMagenta.Render(kind)
	default:
		return color.FgGray.Render(kind)
	}
}
