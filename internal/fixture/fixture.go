// Package fixture loads the bootstrap post collection.
package fixture

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"io"
	"os"

	"github.com/mdobak/go-xerrors"

	"github.com/siahsang/blogfront/models"
)

//go:embed db.json
var embedded []byte

type document struct {
	Posts []models.Post `json:"posts"`
}

// Load reads the fixture at path, or the embedded one when path is empty.
func Load(path string) ([]models.Post, error) {
	if path == "" {
		return Decode(bytes.NewReader(embedded))
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, xerrors.New(err)
	}
	defer f.Close()

	return Decode(f)
}

func Decode(r io.Reader) ([]models.Post, error) {
	var doc document
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, xerrors.Newf("decoding fixture: %w", err)
	}
	return doc.Posts, nil
}
