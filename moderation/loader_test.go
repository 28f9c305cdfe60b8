package moderation

import (
	"chat-relay/errors"
	"log/slog"
	"testing"
	"testing/fstest"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func TestCensoredLoader_LoadAllEmbedded(t *testing.T) {
	req := require.New(t)

	data, err := NewCensoredLoader(censoredFolder).LoadAll(censoredPath)
	req.NoError(err)
	req.ElementsMatch([]string{"en", "fr"}, data.Languages)
	req.Contains(data.Words, "bastard")
	req.Contains(data.Words, "connard")
}

func TestCensoredLoader_DeduplicatesAcrossFiles(t *testing.T) {
	req := require.New(t)

	// Given two dictionaries sharing a word and using different line endings
	fsys := fstest.MapFS{
		"words/en.txt":    {Data: []byte("badger\r\nsnake\n\n")},
		"words/fr.txt":    {Data: []byte("blaireau\nbadger\n")},
		"words/README.md": {Data: []byte("not a dictionary")},
	}

	data, err := NewCensoredLoader(fsys).LoadAll("words")
	req.NoError(err)
	req.Equal([]string{"badger", "blaireau", "snake"}, data.Words)
	req.Equal([]string{"en", "fr"}, data.Languages)
}

func TestCensoredLoader_EmptyDictionary(t *testing.T) {
	req := require.New(t)
	fsys := fstest.MapFS{"words/en.txt": {Data: []byte("\n  \n")}}

	_, err := NewCensoredLoader(fsys).LoadAll("words")
	req.ErrorIs(err, errors.ErrEmptyWords)
}

func TestLoadModerator(t *testing.T) {
	req := require.New(t)
	mod, err := LoadModerator('#', logs.GetLoggerFromLevel(slog.LevelDebug))
	req.NoError(err)

	content, words := mod.Censor("you b4stard")
	req.Equal("you #######", content)
	req.Equal([]string{"bastard"}, words)
}
