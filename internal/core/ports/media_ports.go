package ports

import "io"

// MediaStore persists uploaded audio files. Uploads are staged first and
// only become visible once committed, so a failed record insert never
// leaves a published file behind.
type MediaStore interface {
	Stage(name string, r io.Reader) error
	Commit(name string) error
	Discard(name string) error
	Remove(name string) error
}
