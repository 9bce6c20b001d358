package asset

import (
	"log"
	"os"
	"path/filepath"

	"github.com/lixenwraith/console-caster/render"
)

// imageExts are tried in order when resolving a name in the assets directory
var imageExts = []string{".png", ".bmp"}

// MapFile is the optional map override inside the assets directory
const MapFile = "map.txt"

// Library resolves named sprites: assets directory first, then built-in art, then the placeholder
// Resolved sprites are cached and shared by every caller
type Library struct {
	dir   string
	cache map[string]*render.Sprite
}

// NewLibrary creates a library over dir; an empty dir uses built-ins only
func NewLibrary(dir string) *Library {
	return &Library{
		dir:   dir,
		cache: make(map[string]*render.Sprite),
	}
}

// Sprite returns the sprite registered under name
func (l *Library) Sprite(name string) *render.Sprite {
	if s, ok := l.cache[name]; ok {
		return s
	}
	s := l.resolve(name)
	l.cache[name] = s
	return s
}

// Score returns the scoreboard sprite for n remaining targets
func (l *Library) Score(n int) *render.Sprite {
	return l.Sprite(ScoreName(min(max(n, 0), MaxScore)))
}

func (l *Library) resolve(name string) *render.Sprite {
	if path, ok := l.find(name); ok {
		return LoadOrPlaceholder(path)
	}
	if s, ok := Builtin(name); ok {
		return s
	}
	log.Printf("asset: %q not found, using placeholder", name)
	return Placeholder()
}

func (l *Library) find(name string) (string, bool) {
	if l.dir == "" {
		return "", false
	}
	for _, ext := range imageExts {
		path := filepath.Join(l.dir, name+ext)
		if _, err := os.Stat(path); err == nil {
			return path, true
		}
	}
	return "", false
}

// MapText returns the map override from the assets directory, or the built-in map
func (l *Library) MapText() string {
	if l.dir != "" {
		data, err := os.ReadFile(filepath.Join(l.dir, MapFile))
		if err == nil {
			return string(data)
		}
		if !os.IsNotExist(err) {
			log.Printf("asset: %v, using built-in map", err)
		}
	}
	return DefaultMap
}
