package http

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http/httptest"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/warriorcenter/cms-api/internal/core/domain"
)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		original string
		want     string
	}{
		{"My Sermon.mp3", "my-sermonmp3.mp3"},
		{"GRACE & TRUTH!.MP3", "grace--truthmp3.mp3"},
		{"plain", "plain.mp3"},
		{"with_under-score.mp3", "withunderscoremp3.mp3"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, sanitizeFileName(tt.original), "original: %s", tt.original)
	}
}

func TestParseLimit(t *testing.T) {
	assert.Equal(t, 5, parseLimit("5"))
	assert.Equal(t, 3, parseLimit("test"))
	assert.Equal(t, 3, parseLimit(""))
	assert.Equal(t, 3, parseLimit("-2"))
	assert.Equal(t, 3, parseLimit("0"))
}

func multipartUpload(t *testing.T, fileName, mimeType string) (*bytes.Buffer, string) {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)

	h := textproto.MIMEHeader{}
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name="mp3"; filename=%q`, fileName))
	h.Set("Content-Type", mimeType)
	part, err := mw.CreatePart(h)
	require.NoError(t, err)
	_, err = part.Write([]byte("audio-bytes"))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	return &buf, mw.FormDataContentType()
}

func TestExtractMP3(t *testing.T) {
	body, contentType := multipartUpload(t, "My Sermon.mp3", "audio/mpeg")
	req := httptest.NewRequest("POST", "/sermons", body)
	req.Header.Set("Content-Type", contentType)

	name, file, err := extractMP3(req)
	require.NoError(t, err)
	defer file.Close()

	assert.Equal(t, "my-sermonmp3.mp3", name)
}

func TestExtractMP3RejectsUnsupportedMIMEType(t *testing.T) {
	body, contentType := multipartUpload(t, "notes.txt", "text/plain")
	req := httptest.NewRequest("POST", "/sermons", body)
	req.Header.Set("Content-Type", contentType)

	_, _, err := extractMP3(req)
	require.ErrorIs(t, err, domain.ErrUnsupportedMedia)
}

func TestExtractMP3MissingFile(t *testing.T) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	require.NoError(t, mw.WriteField("title", "no file"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/sermons", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())

	_, _, err := extractMP3(req)
	require.ErrorIs(t, err, errMissingFile)
}
