package core

import (
	"bytes"
	"compress/gzip"
	"os"
	"path/filepath"
)

// CachedAssetPath is where an asset named name lives in the static cache.
func CachedAssetPath(cacheDir, name string) string {
	return filepath.Join(cacheDir, "static", name)
}

func GetCachedAsset(cacheDir, name string) ([]byte, bool) {
	if cacheDir == "" {
		return nil, false
	}
	content, err := os.ReadFile(CachedAssetPath(cacheDir, name))
	if err != nil {
		return nil, false
	}
	return content, true
}

// SaveCachedAsset writes data and a gzip copy into the static cache. Each file
// is replaced by rename, so the static handler never reads a partial write.
func SaveCachedAsset(cacheDir, name string, data []byte) error {
	path := CachedAssetPath(cacheDir, name)
	if err := os.MkdirAll(filepath.Dir(path), os.ModePerm); err != nil {
		return err
	}

	if err := writeFileAtomic(path, data); err != nil {
		return err
	}

	var gz bytes.Buffer
	w := gzip.NewWriter(&gz)
	if _, err := w.Write(data); err != nil {
		w.Close()
		return err
	}
	if err := w.Close(); err != nil {
		return err
	}

	return writeFileAtomic(path+".gz", gz.Bytes())
}

func writeFileAtomic(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), path)
}
