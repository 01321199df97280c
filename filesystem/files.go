// SPDX-License-Identifier: GPL-2.0-or-later

// Package filesystem resolves asset names against a mounted directory and
// the pak archives inside it.
package filesystem

import (
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/liusijiaaa/test-render/filesystem/vfs"
	"github.com/liusijiaaa/test-render/pack"
)

var (
	root    string
	ns      *vfs.NameSpace
	mounted []*pack.Pack
	mutex   sync.RWMutex
)

type File interface {
	io.ReadSeekCloser
}

type packFileSystem struct {
	p *pack.Pack
}

type closer struct {
	*io.SectionReader
}

func (*closer) Close() error {
	return nil
}

type fileInfo struct {
	name string
	size int64
}

func (f *fileInfo) Name() string       { return f.name }
func (f *fileInfo) Size() int64        { return f.size }
func (f *fileInfo) Mode() fs.FileMode  { return 0o444 }
func (f *fileInfo) ModTime() time.Time { return time.Time{} }
func (f *fileInfo) IsDir() bool        { return false }
func (f *fileInfo) Sys() any           { return nil }

func (p packFileSystem) Open(path string) (io.ReadSeekCloser, error) {
	// inside a pack file there is no 'root'. all files are relative to '.'
	f, err := p.p.Open(strings.TrimPrefix(path, "/"))
	if err != nil {
		return nil, err
	}
	return &closer{f}, nil
}

func (p packFileSystem) Stat(path string) (os.FileInfo, error) {
	path = strings.TrimPrefix(path, "/")
	f, err := p.p.Open(path)
	if err != nil {
		return nil, err
	}
	return &fileInfo{
		name: filepath.Base(path),
		size: f.Size(),
	}, nil
}

func (p packFileSystem) String() string {
	return p.p.String()
}

// Mount makes dir the asset root. pak0.pak, pak1.pak, ... inside dir are
// searched before the directory itself, higher numbers first.
func Mount(dir string) error {
	fi, err := os.Stat(dir)
	if err != nil {
		return errors.Wrap(err, "mount")
	}
	if !fi.IsDir() {
		return errors.Errorf("mount: %s is not a directory", dir)
	}
	mutex.Lock()
	defer mutex.Unlock()
	unmount()
	root = dir
	ns = &vfs.NameSpace{}
	ns.Bind(vfs.OS(dir), vfs.BindReplace)
	for i := 0; ; i++ {
		p, err := pack.NewPackReader(filepath.Join(dir, fmt.Sprintf("pak%d.pak", i)))
		if err != nil {
			break
		}
		mounted = append(mounted, p)
		ns.Bind(packFileSystem{p}, vfs.BindBefore)
	}
	return nil
}

// Unmount closes all pak files and forgets the asset root.
func Unmount() {
	mutex.Lock()
	defer mutex.Unlock()
	unmount()
}

func unmount() {
	for _, p := range mounted {
		p.Close()
	}
	mounted = nil
	ns = nil
	root = ""
}

// Mounted reports whether an asset root is set.
func Mounted() bool {
	mutex.RLock()
	defer mutex.RUnlock()
	return ns != nil
}

func Root() string {
	mutex.RLock()
	defer mutex.RUnlock()
	return root
}

// Search returns the lookup order, pak files first.
func Search() []string {
	mutex.RLock()
	defer mutex.RUnlock()
	if ns == nil {
		return nil
	}
	return ns.Layers()
}

func Stat(path string) (os.FileInfo, error) {
	mutex.RLock()
	defer mutex.RUnlock()
	if ns == nil {
		return nil, &fs.PathError{Op: "stat", Path: path, Err: fs.ErrNotExist}
	}
	return ns.Stat(path)
}

func Open(name string) (File, error) {
	mutex.RLock()
	defer mutex.RUnlock()
	if ns == nil {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return ns.Open(name)
}

func ReadFile(name string) ([]byte, error) {
	file, err := Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return io.ReadAll(file)
}

func isSep(c uint8) bool {
	return c == '/' || c == '\\'
}

func Ext(path string) string {
	for i := len(path) - 1; i >= 0 && !isSep(path[i]); i-- {
		if path[i] == '.' {
			return path[i:]
		}
	}
	return ""
}

func StripExt(path string) string {
	for i := len(path) - 1; i >= 0 && !isSep(path[i]); i-- {
		if path[i] == '.' {
			return path[:i]
		}
	}
	return path
}
