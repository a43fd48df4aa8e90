package art

import (
	"embed"
	"errors"
	"fmt"
	"sort"
	"strings"
)

//go:embed assets/*
var assets embed.FS

// DefaultName is the asset used when no OS-specific art exists.
const DefaultName = "default"

// ErrUnknownArt is returned by Select for an override that names no asset.
var ErrUnknownArt = errors.New("unknown art")

// osArt maps a lowercased OS name (as reported by os-release NAME) to an asset.
var osArt = map[string]string{
	"arch linux":       "arch",
	"arch":             "arch",
	"artix linux":      "arch",
	"debian gnu/linux": "debian",
	"debian":           "debian",
	"ubuntu":           "debian",
}

// Names returns the embedded asset names, sorted.
func Names() []string {
	entries, err := assets.ReadDir("assets")
	if err != nil {
		return nil
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	sort.Strings(names)
	return names
}

// Load parses the embedded asset called name.
func Load(name string) (Asset, error) {
	raw, err := assets.ReadFile("assets/" + name)
	if err != nil {
		return Asset{}, fmt.Errorf("%w: %q", ErrUnknownArt, name)
	}
	return Parse(name, raw)
}

// Select picks the asset for osName. A non-empty override other than "auto"
// names the asset directly.
func Select(osName, override string) (Asset, error) {
	if override != "" && override != "auto" {
		return Load(override)
	}
	return Load(ForOS(osName))
}

// ForOS returns the asset name for osName, falling back to DefaultName.
func ForOS(osName string) string {
	if name, ok := osArt[strings.ToLower(strings.TrimSpace(osName))]; ok {
		return name
	}
	return DefaultName
}
