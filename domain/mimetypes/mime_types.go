package mimetypes

import (
	"mime"
	"strings"
)

type MIME string

const (
	Unknown        MIME = "application/octet-stream"
	TextPlain      MIME = "text/plain"
	ApplicationPDF MIME = "application/pdf"

	MSWord       MIME = "application/msword"
	Docx         MIME = "application/vnd.openxmlformats-officedocument.wordprocessingml.document"
	MSExcel      MIME = "application/vnd.ms-excel"
	Xlsx         MIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	MSPowerPoint MIME = "application/vnd.ms-powerpoint"
	Pptx         MIME = "application/vnd.openxmlformats-officedocument.presentationml.presentation"
)

// Documents are the attachment types shown as documents.
var Documents = []MIME{TextPlain, ApplicationPDF, MSWord, Docx, MSExcel, Xlsx, MSPowerPoint, Pptx}

// Parse strips parameters and case from a declared type. Anything that is
// not a media type yields Unknown.
func Parse(declared string) (MIME, bool) {
	mt, _, err := mime.ParseMediaType(strings.TrimSpace(declared))
	if err != nil {
		return Unknown, false
	}
	return MIME(mt), true
}

// ByExtension guesses the type from a file extension such as ".png".
func ByExtension(ext string) (MIME, bool) {
	byExt := mime.TypeByExtension(ext)
	if byExt == "" {
		return Unknown, false
	}
	return Parse(byExt)
}

func Matches(detected string, expected MIME) (MIME, bool) {
	mt, ok := Parse(detected)
	if !ok {
		return Unknown, false
	}
	return expected, mt == expected
}

// Family is the part before the slash, "image" for "image/png".
func (m MIME) Family() string {
	family, _, _ := strings.Cut(string(m), "/")
	return family
}

func (m MIME) String() string {
	return string(m)
}
