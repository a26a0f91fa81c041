// Package gassets serves the files the GUI ships with. A file of the same
// relative path in the working directory wins over the embedded copy.
package gassets

import (
	"embed"
	"io"
	"os"
)

//go:embed assets/**
var embeddedAssets embed.FS

func ReadAsset(path string) ([]byte, error) {
	if _, err := os.Stat(path); err == nil {
		return os.ReadFile(path)
	}
	return embeddedAssets.ReadFile(path)
}

func OpenAsset(path string) (io.ReadCloser, error) {
	if r, err := os.Open(path); err == nil {
		return r, nil
	}
	return embeddedAssets.Open(path)
}
