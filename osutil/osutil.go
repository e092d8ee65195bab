// Package osutil holds process environment lookups with classified errors.
package osutil

import (
	"os"

	"commons/unchecked"
)

// WorkingDir returns the current working directory, with any failure
// classified by unchecked.Classify.
func WorkingDir() (string, error) {
	return unchecked.Get(os.Getwd)
}
