package xpense

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// DefaultDatastore is the datastore file used when none is configured.
const DefaultDatastore = "datastore.json"

// emptyDatastore is the literal representation of an empty record set.
const emptyDatastore = "[]"

// Init ensures a datastore exists at path, creating one holding the
// empty record set if absent. It reports whether the file was created.
// The contents of an existing file are not inspected at this stage.
func Init(path string) (created bool, err error) {
	_, err = os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return false, fmt.Errorf("could not stat datastore %q: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(emptyDatastore), 0644); err != nil {
		return false, fmt.Errorf("could not create datastore %q: %w", path, err)
	}
	return true, nil
}

// LoadBook opens and decodes the whole datastore file.
func LoadBook(path string) (*Book, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open datastore %q: %w", path, err)
	}
	defer f.Close()

	book, err := DecodeBook(f)
	if err != nil {
		return nil, fmt.Errorf("could not load datastore %q: %w", path, err)
	}
	return book, nil
}

// SaveBook overwrites the whole datastore file with the book's
// contents. The write is a plain truncate-and-write: overlapping
// invocations race on read-modify-write and may lose updates.
func SaveBook(path string, b *Book) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("could not open datastore %q for writing: %w", path, err)
	}
	defer f.Close()

	if err := EncodeBook(f, b); err != nil {
		return fmt.Errorf("could not save datastore %q: %w", path, err)
	}
	return nil
}
