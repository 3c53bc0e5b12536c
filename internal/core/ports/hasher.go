package ports

// Hasher defines the interface for computing artifact digests.
type Hasher interface {
	// ComputeFileHash returns the hex digest of the file content at path.
	ComputeFileHash(path string) (string, error)
}
