package state

import (
	"bytes"
	"io"
	"time"

	"github.com/google/uuid"
)

// Snapshot is an encoded image of the whole surface at one instant.
// The encoded bytes are private so a Snapshot cannot change after creation.
type Snapshot struct {
	id            string
	data          []byte
	width, height int
	createdAt     time.Time
}

// NewSnapshot copies data into a new Snapshot with a fresh ID.
func NewSnapshot(data []byte, width, height int) Snapshot {
	buf := make([]byte, len(data))
	copy(buf, data)
	return Snapshot{
		id:        uuid.NewString(),
		data:      buf,
		width:     width,
		height:    height,
		createdAt: time.Now(),
	}
}

func (s Snapshot) ID() string           { return s.id }
func (s Snapshot) Size() int            { return len(s.data) }
func (s Snapshot) Width() int           { return s.width }
func (s Snapshot) Height() int          { return s.height }
func (s Snapshot) CreatedAt() time.Time { return s.createdAt }

// IsZero reports whether s was never filled in.
func (s Snapshot) IsZero() bool { return s.id == "" }

// Reader returns a reader over the encoded bytes.
func (s Snapshot) Reader() io.Reader { return bytes.NewReader(s.data) }

// Bytes returns a copy of the encoded bytes.
func (s Snapshot) Bytes() []byte {
	out := make([]byte, len(s.data))
	copy(out, s.data)
	return out
}
