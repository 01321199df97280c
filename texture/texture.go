// SPDX-License-Identifier: GPL-2.0-or-later
package texture

import (
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/liusijiaaa/test-render/glh"
	"github.com/liusijiaaa/test-render/image"
)

// Texture pairs a decoded image with its GL texture. The GL side is created
// and filled on the first Bind after the image changed, so a Texture can be
// built off the GL thread.
type Texture struct {
	ID    uuid.UUID
	Name  string
	Image *image.Image

	glID  *glh.Texture2D
	dirty bool
}

func New(name string, img *image.Image) *Texture {
	return &Texture{
		ID:    uuid.Must(uuid.NewV7()),
		Name:  name,
		Image: img,
		dirty: true,
	}
}

// Set replaces the image, the next Bind uploads it.
func (t *Texture) Set(img *image.Image) {
	t.Image = img
	t.dirty = true
}

// Bind must run on the GL thread.
func (t *Texture) Bind() error {
	if t.glID == nil {
		t.glID = glh.NewTexture2D()
	}
	if !t.dirty {
		t.glID.Bind()
		return nil
	}
	img := t.Image
	if err := t.glID.Upload(img.Width, img.Height, img.Channels, img.Buffer); err != nil {
		return err
	}
	t.dirty = false
	return nil
}

// Manager caches textures by name.
type Manager struct {
	mu       sync.Mutex
	textures map[string]*Texture
	load     func(string) (*image.Image, error)
}

func NewManager() *Manager {
	return &Manager{
		textures: make(map[string]*Texture),
		load:     image.Load,
	}
}

// Get returns the cached texture or decodes the named image.
func (m *Manager) Get(name string) (*Texture, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t, ok := m.textures[name]; ok {
		return t, nil
	}
	img, err := m.load(name)
	if err != nil {
		return nil, err
	}
	t := New(name, img)
	m.textures[name] = t
	return t, nil
}

// Put stores img under name, replacing the image of an existing texture.
func (m *Manager) Put(name string, img *image.Image) *Texture {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t, ok := m.textures[name]; ok {
		t.Set(img)
		return t
	}
	t := New(name, img)
	m.textures[name] = t
	return t
}

// Remove forgets a texture and releases its pixels. The GL texture is freed
// once it is no longer referenced.
func (m *Manager) Remove(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t, ok := m.textures[name]; ok {
		image.Release(t.Image)
		delete(m.textures, name)
	}
}

func (m *Manager) Names() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	names := make([]string, 0, len(m.textures))
	for n := range m.textures {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
