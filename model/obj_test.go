// SPDX-License-Identifier: GPL-2.0-or-later

package model

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/liusijiaaa/test-render/filesystem"
	"github.com/liusijiaaa/test-render/math/vec"
)

const triangle = `# a single triangle
v -1 -1 0
v 1 -1 0
v 0 1 0.5
vt 0 0
vt 1 0
vt 0.5 1
vn 0 0 1

f 1/1/1 2/2/1 3/3/1
s off
`

func TestLoadOBJ(t *testing.T) {
	m, err := loadOBJ("tri.obj", strings.NewReader(triangle))
	require.NoError(t, err)
	assert.Equal(t, 1, m.NumFaces())
	assert.Equal(t, vec.Vec3{1, -1, 0}, m.Vertex(0, 1))
	assert.Equal(t, vec.Vec2{0.5, 1}, m.UV(0, 2))
	assert.Equal(t, vec.Vec3{0, 0, 1}, m.Normal(0, 0))
	assert.Equal(t, vec.Vec3{-1, -1, 0}, m.Mins())
	assert.Equal(t, vec.Vec3{1, 1, 0.5}, m.Maxs())
	assert.Panics(t, func() { m.Vertex(1, 0) })
	assert.Panics(t, func() { m.Vertex(0, 3) })
}

func TestLoadOBJForwardReference(t *testing.T) {
	src := "vt 0 0\nvn 0 0 1\nf 1/1/1 2/1/1 3/1/1\nv 0 0 0\nv 1 0 0\nv 0 1 0\n"
	m, err := loadOBJ("fwd.obj", strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, vec.Vec3{0, 1, 0}, m.Vertex(0, 2))
}

func TestLoadOBJErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		msg  string
	}{
		{"no faces", "v 0 0 0\n", "no faces"},
		{"short vertex", "v 0 0\n", "bad.obj:1"},
		{"bad number", "v 0 x 0\n", "bad number"},
		{"quad", "v 0 0 0\nf 1/1/1 1/1/1 1/1/1 1/1/1\n", "only triangles"},
		{"no slashes", "f 1 2 3\n", "not v/vt/vn"},
		{"vertex range", "vt 0 0\nvn 0 0 1\nv 0 0 0\nf 1/1/1 1/1/1 4/1/1\n", "bad.obj:4: vertex index 4 out of range"},
		{"uv range", "v 0 0 0\nvn 0 0 1\nf 1/1/1 1/1/1 1/1/1\n", "uv index 1 out of range"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loadOBJ("bad.obj", strings.NewReader(tt.src))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tri.obj"), []byte(triangle), 0o644))

	filesystem.Unmount()
	m, err := Load(filepath.Join(dir, "tri.obj"))
	require.NoError(t, err)
	assert.Equal(t, 1, m.NumFaces())

	require.NoError(t, filesystem.Mount(dir))
	defer filesystem.Unmount()
	m, err = Load("tri.obj")
	require.NoError(t, err)
	assert.Equal(t, "tri.obj", m.Name())

	_, err = Load("tri.3ds")
	assert.Error(t, err)
	_, err = Load("missing.obj")
	assert.Error(t, err)
}
