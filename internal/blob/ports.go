// Package blob defines the outbound port for the binary proof-file store.
package blob

import "context"

// Uploader stores a proof file under the suggested name and returns a
// publicly readable URL for it.
type Uploader interface {
	Upload(ctx context.Context, name, mimeType string, data []byte) (publicURL string, err error)
}
