package drive

import "strings"

// DirectDownloadURL rewrites a Google Drive sharing link into its direct
// download form. Anything that does not look like a Drive sharing link is
// returned unchanged; this is a best-effort transform, not a validator.
func DirectDownloadURL(rawURL string) string {
	if !strings.Contains(rawURL, "drive.google.com") {
		return rawURL
	}

	const marker = "/file/d/"
	i := strings.Index(rawURL, marker)
	if i < 0 {
		return rawURL
	}

	fileID := rawURL[i+len(marker):]
	if j := strings.Index(fileID, "/"); j >= 0 {
		fileID = fileID[:j]
	}
	if fileID == "" {
		return rawURL
	}

	return "https://drive.google.com/uc?export=download&id=" + fileID
}
