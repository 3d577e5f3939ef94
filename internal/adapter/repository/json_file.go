package repository

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// jsonFile persists one entity collection as an indented JSON array,
// mirroring the flat-file layout the frontend tooling expects.
type jsonFile struct {
	path string
}

func newJSONFile(dataDir, name string) jsonFile {
	return jsonFile{path: filepath.Join(dataDir, name)}
}

// load reads the collection into v. A missing file is treated as an empty
// collection.
func (f jsonFile) load(v interface{}) error {
	data, err := os.ReadFile(f.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return json.Unmarshal(data, v)
}

// save rewrites the whole collection. The write goes through a temp file
// and rename so a crash mid-write cannot truncate the collection.
func (f jsonFile) save(v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(f.path), 0o755); err != nil {
		return err
	}

	tmp := f.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return err
	}
	return os.Rename(tmp, f.path)
}
