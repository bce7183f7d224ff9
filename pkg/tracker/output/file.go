package output

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ukaji3/dsatracker-go/pkg/tracker/models"
	"github.com/ukaji3/dsatracker-go/pkg/tracker/schema"
)

// WriteDocument serializes doc, checks it against the document schema and
// writes it to path. On any failure path is left untouched.
func WriteDocument(path string, doc *models.Document) error {
	data, err := ToJSON(doc, true)
	if err != nil {
		return fmt.Errorf("serialize document: %w", err)
	}
	if err := schema.Validate(data); err != nil {
		return err
	}
	return WriteFile(path, data)
}

// WriteFile writes data to path atomically: it writes a temporary file in
// the same directory and renames it over path.
func WriteFile(path string, data []byte) (err error) {
	dir, base := filepath.Split(path)
	if dir == "" {
		dir = "."
	}

	tmp, err := os.CreateTemp(dir, "."+base+".tmp-*")
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			tmp.Close()
			os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return err
	}
	if err = tmp.Sync(); err != nil {
		return err
	}
	if err = tmp.Chmod(0644); err != nil {
		return err
	}
	if err = tmp.Close(); err != nil {
		return err
	}
	return os.Rename(tmp.Name(), path)
}
