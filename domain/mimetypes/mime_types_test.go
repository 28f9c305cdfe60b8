package mimetypes

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatches(t *testing.T) {
	tests := []struct {
		name     string
		detected string
		expected MIME
		want     bool
	}{
		{"Plain text with charset", "text/plain; charset=utf-8", TextPlain, true},
		{"Upper case", "Application/PDF", ApplicationPDF, true},
		{"Docx", Docx.String(), Docx, true},
		{"Mismatch", "text/plain; charset=utf-8", ApplicationPDF, false},
		{"Invalid MIME", "not a mime", TextPlain, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := Matches(tt.detected, tt.expected)
			require.Equal(t, tt.want, ok)
		})
	}
}

func TestParse(t *testing.T) {
	req := require.New(t)
	mt, ok := Parse(" image/png ")
	req.True(ok)
	req.Equal(MIME("image/png"), mt)
	req.Equal("image", mt.Family())

	mt, ok = Parse("")
	req.False(ok)
	req.Equal(Unknown, mt)

	mt, ok = ByExtension(".pdf")
	req.True(ok)
	req.Equal(ApplicationPDF, mt)
	_, ok = ByExtension(".nothing-registered")
	req.False(ok)
}
