package utils

import (
	"strings"

	"github.com/oklog/ulid/v2"
)

// FileIDPrefix marks object keys of uploaded profile pictures.
const FileIDPrefix = "img_"

// FileIDGenerator issues object-store keys of the form "img_<ulid>".
// The lower-cased ULID keeps keys valid for every supported object store
// (Appwrite file ids are limited to 36 characters of [a-z0-9._-]).
type FileIDGenerator struct {
}

func NewFileIDGenerator() *FileIDGenerator {
	return &FileIDGenerator{}
}

func (g *FileIDGenerator) Generate() string {
	return FileIDPrefix + strings.ToLower(ulid.Make().String())
}

// IsFileID reports whether id looks like a key issued by [FileIDGenerator].
func IsFileID(id string) bool {
	rest, ok := strings.CutPrefix(id, FileIDPrefix)
	if !ok {
		return false
	}
	_, err := ulid.ParseStrict(strings.ToUpper(rest))
	return err == nil
}
