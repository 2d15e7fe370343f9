package importer

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"printbulk/internal/logger"
)

// fakeRegistrar fails a configurable number of times before succeeding,
// recording every URL it was called with.
type fakeRegistrar struct {
	failures int
	fileID   int64
	calls    []string
}

func (f *fakeRegistrar) RegisterFile(sourceURL string) (int64, error) {
	f.calls = append(f.calls, sourceURL)
	if f.failures > 0 {
		f.failures--
		return 0, errors.New("upstream unavailable")
	}
	return f.fileID, nil
}

func TestUploadSucceedsFirstAttempt(t *testing.T) {
	reg := &fakeRegistrar{fileID: 42}
	u := NewUploader(reg, 3, 0, logger.New("error"))

	id, err := u.Upload("https://cdn.example.com/front.png")

	assert.NoError(t, err)
	assert.Equal(t, int64(42), id)
	assert.Len(t, reg.calls, 1)
}

func TestUploadRetriesThenSucceeds(t *testing.T) {
	reg := &fakeRegistrar{failures: 2, fileID: 7}
	u := NewUploader(reg, 3, 0, logger.New("error"))

	id, err := u.Upload("https://cdn.example.com/back.png")

	assert.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.Len(t, reg.calls, 3)
}

func TestUploadExhaustsRetries(t *testing.T) {
	reg := &fakeRegistrar{failures: 100}
	u := NewUploader(reg, 3, 0, logger.New("error"))

	_, err := u.Upload("https://cdn.example.com/front.png")

	assert.Error(t, err)
	assert.Len(t, reg.calls, 3)
	// The error names the original reference.
	assert.Contains(t, err.Error(), "https://cdn.example.com/front.png")
}

func TestUploadLogsRetryOnlyWhileAttemptsRemain(t *testing.T) {
	var out bytes.Buffer
	reg := &fakeRegistrar{failures: 100}
	u := NewUploader(reg, 3, 0, logger.NewWithOutput("info", &out))

	_, err := u.Upload("https://cdn.example.com/front.png")

	assert.Error(t, err)
	// Three attempts, but the final failure announces no further retry.
	assert.Equal(t, 2, strings.Count(out.String(), "Retrying in"))
	assert.Equal(t, 3, strings.Count(out.String(), "Upload failed on attempt"))
}

func TestUploadNormalizesDriveURL(t *testing.T) {
	reg := &fakeRegistrar{fileID: 9}
	u := NewUploader(reg, 3, 0, logger.New("error"))

	_, err := u.Upload("https://drive.google.com/file/d/abc123/view?usp=sharing")

	assert.NoError(t, err)
	assert.Equal(t, []string{"https://drive.google.com/uc?export=download&id=abc123"}, reg.calls)
}

func TestUploadErrorNamesOriginalReference(t *testing.T) {
	reg := &fakeRegistrar{failures: 100}
	u := NewUploader(reg, 2, 0, logger.New("error"))

	_, err := u.Upload("https://drive.google.com/file/d/abc123/view")

	assert.Error(t, err)
	// The wrapped error carries the reference as given, not the
	// normalized form.
	assert.Contains(t, err.Error(), "https://drive.google.com/file/d/abc123/view")
	assert.Contains(t, err.Error(), "upstream unavailable")
}
