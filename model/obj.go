// SPDX-License-Identifier: GPL-2.0-or-later

package model

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/liusijiaaa/test-render/math/vec"
)

type corner struct {
	v, vt, vn int
	line      int
}

type objParser struct {
	name      string
	line      int
	positions []vec.Vec3
	uvs       []vec.Vec2
	normals   []vec.Vec3
	corners   []corner
}

// loadOBJ reads triangulated wavefront files whose faces carry v/vt/vn
// triples on every corner.
func loadOBJ(name string, r io.Reader) (*Model, error) {
	p := &objParser{name: name}
	s := bufio.NewScanner(r)
	for s.Scan() {
		p.line++
		if err := p.parseLine(s.Text()); err != nil {
			return nil, err
		}
	}
	if err := s.Err(); err != nil {
		return nil, errors.Wrapf(err, "%s", name)
	}
	return p.build()
}

func (p *objParser) errorf(format string, args ...interface{}) error {
	return errors.Wrapf(errors.Errorf(format, args...), "%s:%d", p.name, p.line)
}

func (p *objParser) floats(fields []string, n int) ([]float32, error) {
	if len(fields) < n {
		return nil, p.errorf("want %d numbers, got %d", n, len(fields))
	}
	r := make([]float32, n)
	for i := 0; i < n; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return nil, p.errorf("bad number %q", fields[i])
		}
		r[i] = float32(f)
	}
	return r, nil
}

func (p *objParser) parseLine(l string) error {
	fields := strings.Fields(l)
	if len(fields) == 0 {
		return nil
	}
	switch fields[0] {
	case "v":
		f, err := p.floats(fields[1:], 3)
		if err != nil {
			return err
		}
		p.positions = append(p.positions, vec.Vec3{f[0], f[1], f[2]})
	case "vt":
		f, err := p.floats(fields[1:], 2)
		if err != nil {
			return err
		}
		p.uvs = append(p.uvs, vec.Vec2{f[0], f[1]})
	case "vn":
		f, err := p.floats(fields[1:], 3)
		if err != nil {
			return err
		}
		p.normals = append(p.normals, vec.Vec3{f[0], f[1], f[2]})
	case "f":
		if len(fields) != 4 {
			return p.errorf("face has %d corners, only triangles are supported", len(fields)-1)
		}
		for _, c := range fields[1:] {
			cr, err := p.corner(c)
			if err != nil {
				return err
			}
			p.corners = append(p.corners, cr)
		}
	}
	return nil
}

// corner parses "v/vt/vn" and converts the 1-based indices.
func (p *objParser) corner(s string) (corner, error) {
	parts := strings.Split(s, "/")
	if len(parts) != 3 {
		return corner{}, p.errorf("face corner %q is not v/vt/vn", s)
	}
	var idx [3]int
	for i, part := range parts {
		n, err := strconv.Atoi(part)
		if err != nil {
			return corner{}, p.errorf("face corner %q is not v/vt/vn", s)
		}
		idx[i] = n - 1
	}
	return corner{idx[0], idx[1], idx[2], p.line}, nil
}

func (p *objParser) build() (*Model, error) {
	if len(p.corners) == 0 {
		return nil, errors.Errorf("%s: model has no faces", p.name)
	}
	m := &Model{
		name:     p.name,
		vertices: make([]vec.Vec3, len(p.corners)),
		uvs:      make([]vec.Vec2, len(p.corners)),
		normals:  make([]vec.Vec3, len(p.corners)),
	}
	for i, c := range p.corners {
		// indices may point forward, so they are checked once all lines are read
		p.line = c.line
		switch {
		case c.v < 0 || c.v >= len(p.positions):
			return nil, p.errorf("vertex index %d out of range", c.v+1)
		case c.vt < 0 || c.vt >= len(p.uvs):
			return nil, p.errorf("uv index %d out of range", c.vt+1)
		case c.vn < 0 || c.vn >= len(p.normals):
			return nil, p.errorf("normal index %d out of range", c.vn+1)
		}
		m.vertices[i] = p.positions[c.v]
		m.uvs[i] = p.uvs[c.vt]
		m.normals[i] = p.normals[c.vn]
	}
	m.setBounds()
	return m, nil
}
