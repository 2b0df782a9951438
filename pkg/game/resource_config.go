package game

import (
	"fmt"
	"path"
)

// DefaultResourceConfigPath 资源清单的默认路径
const DefaultResourceConfigPath = "assets/config/resources.yaml"

// ResourceConfig represents the top-level resource manifest loaded from YAML.
// It defines the structure of assets/config/resources.yaml.
//
// Structure:
//
//	version: "1.0"
//	base_path: assets
//	categories:
//	  category_name:
//	    images: [...]
//	sounds: [...]
type ResourceConfig struct {
	Version    string                   `yaml:"version"`    // Manifest version
	BasePath   string                   `yaml:"base_path"`  // Base path for all resources (e.g., "assets")
	Categories map[string]ImageCategory `yaml:"categories"` // Image categories keyed by name (scenery, rabbit, birds, ...)
	Sounds     []SoundResource          `yaml:"sounds"`     // Sound effects
}

// ImageCategory groups the images of one kind of game object.
// Each image is a variant addressed by its ID; a random variant is picked
// when the caller does not name one.
//
// Example from resources.yaml:
//
//	rabbit:
//	  images:
//	    - id: run
//	      path: images/Rabbit_Run
type ImageCategory struct {
	Images []ImageResource `yaml:"images"`
}

// ImageResource represents a single image definition.
//
// Fields:
//   - ID: Variant name inside the category (e.g., "run", "deer", "cardinal")
//   - Path: Relative path from base_path (".png" is appended when there is no extension)
type ImageResource struct {
	ID   string `yaml:"id"`
	Path string `yaml:"path"`
}

// SoundResource represents a single sound effect definition.
//
// Example:
//   - id: SOUND_HOP
//     path: sounds/hop.wav
type SoundResource struct {
	ID   string `yaml:"id"`
	Path string `yaml:"path"`
}

// buildFullPath joins the base path and a resource path and applies the default extension.
func buildFullPath(basePath, resourcePath, defaultExt string) string {
	full := resourcePath
	if basePath != "" {
		full = path.Join(basePath, resourcePath)
	}
	if path.Ext(full) == "" {
		full += defaultExt
	}
	return full
}

// ImagePath returns the file path of an image entry relative to the manifest file system.
func (c *ResourceConfig) ImagePath(img ImageResource) string {
	return buildFullPath(c.BasePath, img.Path, ".png")
}

// SoundPath returns the file path of a sound entry relative to the manifest file system.
func (c *ResourceConfig) SoundPath(sound SoundResource) string {
	return buildFullPath(c.BasePath, sound.Path, ".wav")
}

// Validate checks that every category and sound entry is well-formed.
//
// Returns:
//   - An error describing the first empty or duplicated entry found
func (c *ResourceConfig) Validate() error {
	if len(c.Categories) == 0 {
		return fmt.Errorf("resource config declares no image categories")
	}
	for name, category := range c.Categories {
		if len(category.Images) == 0 {
			return fmt.Errorf("image category %q is empty", name)
		}
		seen := make(map[string]bool, len(category.Images))
		for _, img := range category.Images {
			if img.ID == "" || img.Path == "" {
				return fmt.Errorf("image category %q has an entry without id or path", name)
			}
			if seen[img.ID] {
				return fmt.Errorf("image category %q has duplicate id %q", name, img.ID)
			}
			seen[img.ID] = true
		}
	}
	for _, sound := range c.Sounds {
		if sound.ID == "" || sound.Path == "" {
			return fmt.Errorf("sound entry without id or path")
		}
	}
	return nil
}
