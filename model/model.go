// SPDX-License-Identifier: GPL-2.0-or-later

// Package model holds triangle meshes loaded from disk.
package model

import (
	"fmt"

	"github.com/liusijiaaa/test-render/math/vec"
)

// Model is a triangle list. Vertex attributes are stored per face corner,
// three corners per face.
type Model struct {
	name     string
	vertices []vec.Vec3
	uvs      []vec.Vec2
	normals  []vec.Vec3
	mins     vec.Vec3
	maxs     vec.Vec3
}

func (m *Model) Name() string {
	return m.name
}

func (m *Model) NumFaces() int {
	return len(m.vertices) / 3
}

// Mins and Maxs are the bounds of all vertices.
func (m *Model) Mins() vec.Vec3 {
	return m.mins
}

func (m *Model) Maxs() vec.Vec3 {
	return m.maxs
}

func (m *Model) index(face, n int) int {
	if face < 0 || face >= m.NumFaces() || n < 0 || n >= 3 {
		panic(fmt.Sprintf("model %s: corner %d of face %d out of range", m.name, n, face))
	}
	return face*3 + n
}

// Vertex returns the position of corner n (0..2) of face.
func (m *Model) Vertex(face, n int) vec.Vec3 {
	return m.vertices[m.index(face, n)]
}

func (m *Model) UV(face, n int) vec.Vec2 {
	return m.uvs[m.index(face, n)]
}

func (m *Model) Normal(face, n int) vec.Vec3 {
	return m.normals[m.index(face, n)]
}

func (m *Model) setBounds() {
	if len(m.vertices) == 0 {
		return
	}
	m.mins, m.maxs = m.vertices[0], m.vertices[0]
	for _, v := range m.vertices[1:] {
		m.mins, _ = vec.MinMax(m.mins, v)
		_, m.maxs = vec.MinMax(m.maxs, v)
	}
}
