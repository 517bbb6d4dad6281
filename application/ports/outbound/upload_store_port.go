package outbound

import "io"

// UploadStorePort saves a client upload under a sanitized, collision-resistant
// name and returns the absolute path written.
type UploadStorePort interface {
	Save(filename string, src io.Reader) (string, error)
}
