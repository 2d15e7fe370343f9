package importer

import (
	"fmt"
	"time"

	"github.com/avast/retry-go/v4"

	"printbulk/internal/drive"
	"printbulk/internal/logger"
)

// FileRegistrar is the single remote call the uploader needs.
type FileRegistrar interface {
	RegisterFile(sourceURL string) (int64, error)
}

// Uploader registers images with the remote service, retrying transient
// failures a bounded number of times with a constant delay between
// attempts.
type Uploader struct {
	registrar FileRegistrar
	retries   int
	delay     time.Duration
	logger    *logger.Logger
}

func NewUploader(registrar FileRegistrar, retries int, delay time.Duration, logger *logger.Logger) *Uploader {
	return &Uploader{
		registrar: registrar,
		retries:   retries,
		delay:     delay,
		logger:    logger,
	}
}

// Upload normalizes the image reference and registers it, returning the
// remote file id. The first success wins; after the configured number of
// attempts the last failure is returned, wrapped with the original
// reference.
func (u *Uploader) Upload(imageURL string) (int64, error) {
	directURL := drive.DirectDownloadURL(imageURL)

	attempt := 0
	var fileID int64
	err := retry.Do(
		func() error {
			attempt++
			u.logger.Info("Uploading image from %s (attempt %d)", directURL, attempt)
			id, err := u.registrar.RegisterFile(directURL)
			if err != nil {
				return err
			}
			fileID = id
			return nil
		},
		retry.Attempts(uint(u.retries)),
		retry.Delay(u.delay),
		retry.DelayType(retry.FixedDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			u.logger.Error("Upload failed on attempt %d: %v", n+1, err)
			// The callback also fires after the final attempt, when no
			// retry follows.
			if n+1 < uint(u.retries) {
				u.logger.Info("Retrying in %s...", u.delay)
			}
		}),
	)
	if err != nil {
		return 0, fmt.Errorf("upload of %s failed after %d attempt(s): %w", imageURL, u.retries, err)
	}

	u.logger.Info("Uploaded image ID: %d", fileID)
	return fileID, nil
}
