// SPDX-License-Identifier: GPL-2.0-or-later

package model

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"

	"github.com/liusijiaaa/test-render/filesystem"
)

var (
	loaders = make(map[string]LoadFunc)
)

func init() {
	Register(".obj", loadOBJ)
}

// LoadFunc parses a model from r. name is used for error messages.
type LoadFunc func(name string, r io.Reader) (*Model, error)

// Register installs f for files with extension ext (including the dot).
func Register(ext string, f LoadFunc) {
	loaders[strings.ToLower(ext)] = f
}

// Load reads the named model through the mounted filesystem, or the OS if
// nothing is mounted. The loader is chosen by extension.
func Load(name string) (*Model, error) {
	f, ok := loaders[strings.ToLower(filesystem.Ext(name))]
	if !ok {
		return nil, errors.Errorf("model %s has an unknown file format", name)
	}
	file, err := open(name)
	if err != nil {
		return nil, errors.Wrap(err, "load model")
	}
	defer file.Close()
	return f(name, file)
}

func open(name string) (io.ReadCloser, error) {
	if filesystem.Mounted() {
		return filesystem.Open(name)
	}
	return os.Open(name)
}
