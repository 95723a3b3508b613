package http

import (
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/warriorcenter/cms-api/internal/core/domain"
)

// Declared MIME types accepted for sermon audio uploads.
var allowedMIMETypes = map[string]struct{}{
	"audio/mpeg":     {},
	"audio/mpeg3":    {},
	"audio/x-mpeg-3": {},
	"audio/mp3":      {},
}

// Characters stripped from uploaded filenames.
const strippedChars = "!@#$%^&*()-=_+|;':\",.<>?`"

var errMissingFile = errors.New("missing mp3 file")

// extractMP3 pulls the uploaded file out of the multipart form, validates
// its declared MIME type against the allow-list, and derives the sanitized
// name it will be stored under. The caller owns closing the returned file.
func extractMP3(r *http.Request) (string, multipart.File, error) {
	file, header, err := r.FormFile("mp3")
	if err != nil {
		return "", nil, errMissingFile
	}

	if _, ok := allowedMIMETypes[header.Header.Get("Content-Type")]; !ok {
		file.Close()
		return "", nil, domain.ErrUnsupportedMedia
	}

	return sanitizeFileName(header.Filename), file, nil
}

// sanitizeFileName lowercases the original name, strips punctuation,
// replaces spaces with hyphens, and appends the fixed mp3 extension.
// Colliding derived names overwrite each other.
func sanitizeFileName(original string) string {
	name := strings.ToLower(original)
	name = strings.Map(func(r rune) rune {
		if strings.ContainsRune(strippedChars, r) {
			return -1
		}
		return r
	}, name)
	name = strings.ReplaceAll(name, " ", "-")

	return name + ".mp3"
}
