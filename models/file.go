package models

// File is a binary payload handed to the object store. URI is where the
// caller read it from and is informational only.
type File struct {
	URI      string
	Name     string
	MimeType string
	Content  []byte
}

// Size returns the payload length in bytes.
func (f File) Size() int {
	return len(f.Content)
}

// StoredFile describes an object after it was written to the object store.
type StoredFile struct {
	ID       string `json:"id"`
	Bucket   string `json:"bucket"`
	Name     string `json:"name"`
	MimeType string `json:"mimeType"`
	Size     int64  `json:"size"`
}
