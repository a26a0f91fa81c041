package gdialog

import (
	"errors"
	"os"

	"github.com/sqweek/dialog"
)

// ErrCancelled is returned when the user closes the dialog.
var ErrCancelled = dialog.ErrCancelled

// PickExecutable asks for the engine binary and checks it is a regular file.
func PickExecutable(title string) (string, error) {
	path, err := dialog.File().Title(title).Load()
	if err != nil {
		return "", err
	}
	fi, err := os.Stat(path)
	if err != nil {
		return "", err
	}
	if !fi.Mode().IsRegular() {
		return "", errors.New("not a regular file: " + path)
	}
	return path, nil
}
