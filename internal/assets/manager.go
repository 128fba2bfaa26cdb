package assets

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png" // Register PNG format
	"io/fs"
	"log"
	"os"
	"path"

	"github.com/hajimehoshi/ebiten/v2"
)

// Manager loads sprites by asset name ("cat_orange-idle_1" -> "cat_orange-idle_1.png")
// and caches them. Missing or broken files are logged once and treated as absent.
type Manager struct {
	fsys    fs.FS
	images  map[string]*ebiten.Image
	missing map[string]bool
}

// NewManager serves sprites from dir. An empty dir means no sprites at all.
func NewManager(dir string) *Manager {
	var fsys fs.FS
	if dir != "" {
		fsys = os.DirFS(dir)
	}
	return NewManagerFS(fsys)
}

func NewManagerFS(fsys fs.FS) *Manager {
	return &Manager{
		fsys:    fsys,
		images:  map[string]*ebiten.Image{},
		missing: map[string]bool{},
	}
}

// Decode reads and decodes the named sprite without touching the GPU.
func (m *Manager) Decode(name string) (image.Image, error) {
	if m.fsys == nil {
		return nil, fmt.Errorf("sprite %q: %w", name, fs.ErrNotExist)
	}
	fileData, err := fs.ReadFile(m.fsys, fileName(name))
	if err != nil {
		return nil, fmt.Errorf("read sprite %q: %w", name, err)
	}
	img, _, err := image.Decode(bytes.NewReader(fileData))
	if err != nil {
		return nil, fmt.Errorf("decode sprite %q: %w", name, err)
	}
	return img, nil
}

// Get returns the sprite or nil.
func (m *Manager) Get(name string) *ebiten.Image {
	if img, ok := m.images[name]; ok {
		return img
	}
	if m.missing[name] {
		return nil
	}
	src, err := m.Decode(name)
	if err != nil {
		if m.fsys != nil {
			log.Printf("assets: %v", err)
		}
		m.missing[name] = true
		return nil
	}
	img := ebiten.NewImageFromImage(src)
	m.images[name] = img
	return img
}

// Has reports whether the sprite file exists, without decoding it.
func (m *Manager) Has(name string) bool {
	if m.fsys == nil {
		return false
	}
	_, err := fs.Stat(m.fsys, fileName(name))
	return err == nil
}

func fileName(name string) string {
	if path.Ext(name) == "" {
		return name + ".png"
	}
	return name
}
