package dictionary

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// FileCache stores downloaded dictionary files on disk so they are fetched
// only once.
type FileCache struct {
	rootDir string
}

func NewFileCache(cacheDirectory string) *FileCache {
	return &FileCache{
		rootDir: cacheDirectory,
	}
}

func (f *FileCache) filePath(name string) string {
	return filepath.Join(f.rootDir, name+".txt")
}

func (cache *FileCache) cache(name string, f func() ([]byte, error)) ([]byte, error) {
	localFilePath := cache.filePath(name)
	if _, err := os.Stat(localFilePath); err == nil {
		contents, err := cache.read(name)
		if err != nil {
			return nil, fmt.Errorf("cache.read > %w", err)
		}
		return contents, nil
	}

	contents, err := f()
	if err != nil {
		return nil, fmt.Errorf("fetch %s > %w", name, err)
	}

	if err := os.MkdirAll(cache.rootDir, 0755); err != nil {
		return contents, fmt.Errorf("os.MkdirAll > %w", err)
	}
	file, err := os.Create(localFilePath)
	if err != nil {
		return contents, fmt.Errorf("os.Create > %w", err)
	}
	defer func() {
		_ = file.Close()
	}()
	if _, err := file.Write(contents); err != nil {
		return contents, fmt.Errorf("file.Write > %w", err)
	}
	return contents, nil
}

func (cache *FileCache) read(name string) ([]byte, error) {
	file, err := os.Open(cache.filePath(name))
	if err != nil {
		return nil, fmt.Errorf("os.Open > %w", err)
	}
	defer func() {
		_ = file.Close()
	}()

	contents, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("io.ReadAll > %w", err)
	}
	return contents, nil
}
