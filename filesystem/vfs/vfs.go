// SPDX-License-Identifier: GPL-2.0-or-later

// Package vfs unions several file systems into a single read-only view.
package vfs

import (
	"io"
	"io/fs"
	"os"
	pathpkg "path"
	"path/filepath"
)

// FileSystem is a read-only file tree rooted at "/".
type FileSystem interface {
	Open(name string) (io.ReadSeekCloser, error)
	Stat(name string) (fs.FileInfo, error)
	String() string
}

type BindMode int

const (
	BindReplace BindMode = iota
	BindBefore
	BindAfter
)

// NameSpace is an ordered list of file systems. Earlier entries shadow
// later ones.
type NameSpace struct {
	layers []FileSystem
}

// Bind adds newfs to the name space. BindReplace drops all earlier bindings,
// BindBefore gives newfs priority over them and BindAfter consults newfs only
// if none of them has the file.
func (ns *NameSpace) Bind(newfs FileSystem, mode BindMode) {
	switch mode {
	case BindReplace:
		ns.layers = []FileSystem{newfs}
	case BindBefore:
		ns.layers = append([]FileSystem{newfs}, ns.layers...)
	case BindAfter:
		ns.layers = append(ns.layers, newfs)
	}
}

// Layers returns the names of the bound file systems in lookup order.
func (ns *NameSpace) Layers() []string {
	names := make([]string, 0, len(ns.layers))
	for _, l := range ns.layers {
		names = append(names, l.String())
	}
	return names
}

func clean(name string) string {
	return pathpkg.Clean("/" + filepath.ToSlash(name))
}

func (ns *NameSpace) Open(name string) (io.ReadSeekCloser, error) {
	name = clean(name)
	var err error
	for _, l := range ns.layers {
		r, err1 := l.Open(name)
		if err1 == nil {
			return r, nil
		}
		// A missing file in an upper layer must not hide a real error below.
		if err == nil || os.IsNotExist(err) {
			err = err1
		}
	}
	if err == nil {
		err = &fs.PathError{Op: "open", Path: name, Err: fs.ErrNotExist}
	}
	return nil, err
}

func (ns *NameSpace) Stat(name string) (fs.FileInfo, error) {
	name = clean(name)
	var err error
	for _, l := range ns.layers {
		fi, err1 := l.Stat(name)
		if err1 == nil {
			return fi, nil
		}
		if err == nil {
			err = err1
		}
	}
	if err == nil {
		err = &fs.PathError{Op: "stat", Path: name, Err: fs.ErrNotExist}
	}
	return nil, err
}

func (ns *NameSpace) String() string {
	return "ns"
}

// OS returns the directory root of the host file system as a FileSystem.
func OS(root string) FileSystem {
	return osFS(root)
}

type osFS string

func (root osFS) resolve(name string) string {
	return filepath.Join(string(root), filepath.FromSlash(clean(name)))
}

func (root osFS) Open(name string) (io.ReadSeekCloser, error) {
	f, err := os.Open(root.resolve(name))
	if err != nil {
		return nil, err
	}
	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, err
	}
	if fi.IsDir() {
		f.Close()
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	return f, nil
}

func (root osFS) Stat(name string) (fs.FileInfo, error) {
	return os.Stat(root.resolve(name))
}

func (root osFS) String() string {
	return string(root)
}
