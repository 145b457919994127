package ports

// Fingerprinter computes content fingerprints for the manifest fast path:
// when the lock snapshot records the fingerprint of the manifest it was
// resolved from, a matching current fingerprint skips detection entirely.
//
//go:generate go run go.uber.org/mock/mockgen -source=fingerprint.go -destination=mocks/mock_fingerprint.go -package=mocks
type Fingerprinter interface {
	// FingerprintFile computes the fingerprint of the file's content.
	FingerprintFile(path string) (string, error)
}
