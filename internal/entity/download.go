package entity

import (
	"io"
	"time"
)

// Download is an opened data file ready to be streamed to a client.
// The receiver must close Content.
type Download struct {
	Name    string
	Size    int64
	ModTime time.Time
	Content io.ReadSeekCloser
}
