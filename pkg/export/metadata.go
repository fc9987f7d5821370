package export

import (
	"fmt"

	"sharenotes-be/internal/entity"
)

// Metadata is the transport envelope for a rendered note download.
type Metadata struct {
	ContentType string
	Filename    string
	Length      int
}

// BuildDownloadMetadata renders the note in the requested format and returns
// the matching transport metadata. Length is taken from the actual rendered
// bytes, never precomputed.
func BuildDownloadMetadata(note *entity.Note, f Format) (*Metadata, error) {
	payload, err := Render(note, f)
	if err != nil {
		return nil, err
	}
	return metadataFor(note, f, len(payload)), nil
}

func metadataFor(note *entity.Note, f Format, length int) *Metadata {
	return &Metadata{
		ContentType: f.ContentType(),
		Filename:    Filename(note, f),
		Length:      length,
	}
}

// Filename builds the attachment name, note_{title}_{date}.{ext}.
func Filename(note *entity.Note, f Format) string {
	return fmt.Sprintf("note_%s_%s.%s", note.Title, note.Date.Format(DateLayout), f.Ext())
}
