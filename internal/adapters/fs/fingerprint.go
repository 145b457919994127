// Package fs provides filesystem hashing for the manifest fast path.
package fs

import (
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/relock/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Fingerprinter = (*Fingerprinter)(nil)

// Fingerprinter computes XXHash content fingerprints.
type Fingerprinter struct{}

// NewFingerprinter creates a new Fingerprinter.
func NewFingerprinter() *Fingerprinter {
	return &Fingerprinter{}
}

// FingerprintFile computes the fingerprint of a file's content. The format
// is "xxh64:<hex>" so lock snapshots stay self-describing if the algorithm
// ever changes.
func (f *Fingerprinter) FingerprintFile(path string) (string, error) {
	file, err := os.Open(path) //nolint:gosec // Path is controlled by caller
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to open file"), "path", path)
	}
	defer file.Close() //nolint:errcheck // Best effort close in defer

	hasher := xxhash.New()
	if _, err := io.Copy(hasher, file); err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to hash file content"), "path", path)
	}
	return fmt.Sprintf("xxh64:%016x", hasher.Sum64()), nil
}
