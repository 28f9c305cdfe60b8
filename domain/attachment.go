package domain

import (
	"chat-relay/domain/mimetypes"
	"path/filepath"

	"github.com/gabriel-vasile/mimetype"
	"github.com/samber/lo"
)

type FileKind string

const (
	FileImage    FileKind = "image"
	FileVideo    FileKind = "video"
	FileAudio    FileKind = "audio"
	FileDocument FileKind = "document"
	FileOther    FileKind = "other"
)

// ClassifyFile normalizes the declared mime type of an attachment and derives
// its kind. The file name extension is used when nothing usable was declared.
func ClassifyFile(f File) File {
	declared, ok := mimetypes.Parse(f.MimeType)
	if !ok || declared == mimetypes.Unknown {
		if byExt, found := mimetypes.ByExtension(filepath.Ext(f.Name)); found {
			declared = byExt
		}
	}
	if m := mimetype.Lookup(declared.String()); m != nil {
		// canonical name, aliases like audio/x-wav fold into audio/wav
		if canonical, ok := mimetypes.Parse(m.String()); ok {
			declared = canonical
		}
	}
	f.MimeType = declared.String()
	f.Kind = kindOf(declared)
	return f
}

func kindOf(mt mimetypes.MIME) FileKind {
	switch mt.Family() {
	case "image":
		return FileImage
	case "video":
		return FileVideo
	case "audio":
		return FileAudio
	}
	m := mimetype.Lookup(mt.String())
	if lo.SomeBy(mimetypes.Documents, func(doc mimetypes.MIME) bool {
		return mt == doc || (m != nil && m.Is(doc.String()))
	}) {
		return FileDocument
	}
	return FileOther
}
