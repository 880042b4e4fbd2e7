package assets

import (
	"os"
	"path/filepath"
)

// DirName is the directory FindRoot looks for.
const DirName = "assets"

// FindRoot walks upward from start until it finds a directory that contains
// an "assets" directory. It returns start itself when none is found.
func FindRoot(start string) string {
	abs, err := filepath.Abs(start)
	if err != nil {
		return start
	}
	cur := abs
	for {
		if fi, err := os.Stat(filepath.Join(cur, DirName)); err == nil && fi.IsDir() {
			return cur
		}
		parent := filepath.Dir(cur)
		if parent == cur {
			return abs
		}
		cur = parent
	}
}

// FindRootFrom tries each candidate in order and returns the first root
// that actually contains an assets directory, falling back to the first
// candidate.
func FindRootFrom(candidates ...string) string {
	for _, c := range candidates {
		if c == "" {
			continue
		}
		root := FindRoot(c)
		if _, err := os.Stat(filepath.Join(root, DirName)); err == nil {
			return root
		}
	}
	if len(candidates) > 0 {
		return candidates[0]
	}
	return "."
}

// Resolver maps asset-relative names to filesystem paths.
type Resolver struct {
	Root       string // directory containing assets/
	TextureDir string // relative to assets/
	ShaderDir  string // relative to assets/
}

// NewResolver returns a resolver rooted at root with the default layout.
func NewResolver(root string) Resolver {
	return Resolver{Root: root, TextureDir: "textures", ShaderDir: "shaders"}
}

// Path resolves rel against the assets directory. Absolute paths are
// returned unchanged.
func (r Resolver) Path(rel string) string {
	if filepath.IsAbs(rel) {
		return rel
	}
	return filepath.Join(r.Root, DirName, filepath.FromSlash(rel))
}

// Texture resolves a texture file name.
func (r Resolver) Texture(name string) string {
	if name == "" {
		return ""
	}
	if filepath.IsAbs(name) {
		return name
	}
	return r.Path(filepath.Join(r.TextureDir, name))
}

// Shader resolves a shader file name, e.g. Shader("scene", "scene.vert").
func (r Resolver) Shader(elem ...string) string {
	return r.Path(filepath.Join(append([]string{r.ShaderDir}, elem...)...))
}
