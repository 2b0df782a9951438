package game

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/png" // Register PNG decoder
	"io/fs"
	"log"
	"math/rand"
	"sort"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/hajimehoshi/ebiten/v2/audio/wav"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// ErrConfigNotLoaded 在加载资源清单之前调用 LoadAll 时返回
var ErrConfigNotLoaded = errors.New("resource config not loaded - call LoadResourceConfig first")

// ResourceManager is the image registry of the game.
// It loads every sprite sheet declared in the resource manifest once,
// indexes it by category and variant, and hands out the decoded images.
//
// Loading is a barrier: LoadAll either decodes every declared image or
// fails with an error naming the first file that could not be loaded.
// Nothing in the game may be constructed before LoadAll returns nil.
//
// Thread Safety Note:
// Only LoadAll decodes in parallel; the caches are filled on the calling
// goroutine after all decoders finish. Get and AddImage must be called from
// the game loop goroutine.
//
// Usage:
//
//	rm := NewResourceManager(embedded.FS(), audioContext, rng)
//	if err := rm.LoadResourceConfig(DefaultResourceConfigPath); err != nil {
//	    log.Fatal(err)
//	}
//	if err := rm.LoadAll(); err != nil {
//	    log.Fatal(err)
//	}
//	bunny, _ := rm.Get("rabbit", "run")
type ResourceManager struct {
	fsys         fs.FS          // Source of manifest, images and sounds
	audioContext *audio.Context // Audio context for decoding sounds, nil disables sounds
	rng          *rand.Rand     // Random source for variant selection

	config *ResourceConfig           // Parsed manifest
	images map[string]*imageCategory // category -> variants
	sounds map[string]*audio.Player  // sound ID -> player
}

// imageCategory keeps variants in manifest order so random picks are reproducible with a seeded rng.
type imageCategory struct {
	order  []string
	images map[string]*ebiten.Image
}

// NewResourceManager creates a registry reading from fsys.
//
// Parameters:
//   - fsys: File system holding the manifest and assets (embedded.FS() in the game, fstest.MapFS in tests)
//   - audioContext: Audio context for sound effects; nil runs without sound
//   - rng: Random source for Get with an empty variant; nil uses a time-seeded source
func NewResourceManager(fsys fs.FS, audioContext *audio.Context, rng *rand.Rand) *ResourceManager {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &ResourceManager{
		fsys:         fsys,
		audioContext: audioContext,
		rng:          rng,
		images:       make(map[string]*imageCategory),
		sounds:       make(map[string]*audio.Player),
	}
}

// LoadResourceConfig reads and validates the YAML manifest.
//
// Returns:
//   - An error if the file cannot be read, parsed or fails validation
func (rm *ResourceManager) LoadResourceConfig(configPath string) error {
	data, err := fs.ReadFile(rm.fsys, configPath)
	if err != nil {
		return fmt.Errorf("failed to read resource config %s: %w", configPath, err)
	}

	config, err := ParseResourceConfig(data)
	if err != nil {
		return fmt.Errorf("invalid resource config %s: %w", configPath, err)
	}

	rm.config = config
	return nil
}

// ParseResourceConfig parses and validates manifest YAML.
func ParseResourceConfig(data []byte) (*ResourceConfig, error) {
	var config ResourceConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse resource config: %w", err)
	}
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &config, nil
}

// Config returns the loaded manifest, or nil before LoadResourceConfig.
func (rm *ResourceManager) Config() *ResourceConfig {
	return rm.config
}

// imageJob is one image to decode during LoadAll.
type imageJob struct {
	category string
	id       string
	path     string
}

// LoadAll decodes every image declared in the manifest and registers it.
// Images are decoded in parallel; the first failure cancels the barrier and
// is returned as "could not load image: <path>".
//
// Sounds are loaded afterwards. A sound that fails to decode is logged and
// skipped, the game runs without it.
func (rm *ResourceManager) LoadAll() error {
	if rm.config == nil {
		return ErrConfigNotLoaded
	}

	jobs := rm.imageJobs()
	decoded := make([]image.Image, len(jobs))

	var g errgroup.Group
	for i, job := range jobs {
		g.Go(func() error {
			img, err := decodeImage(rm.fsys, job.path)
			if err != nil {
				return fmt.Errorf("could not load image: %s: %w", job.path, err)
			}
			decoded[i] = img
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, job := range jobs {
		rm.AddImage(job.category, job.id, ebiten.NewImageFromImage(decoded[i]))
	}
	log.Printf("[ResourceManager] Loaded %d images in %d categories", len(jobs), len(rm.images))

	rm.loadSounds()
	return nil
}

// imageJobs flattens the manifest in a stable order (categories sorted by name, variants in file order).
func (rm *ResourceManager) imageJobs() []imageJob {
	names := make([]string, 0, len(rm.config.Categories))
	for name := range rm.config.Categories {
		names = append(names, name)
	}
	sort.Strings(names)

	var jobs []imageJob
	for _, name := range names {
		for _, img := range rm.config.Categories[name].Images {
			jobs = append(jobs, imageJob{
				category: name,
				id:       img.ID,
				path:     rm.config.ImagePath(img),
			})
		}
	}
	return jobs
}

func decodeImage(fsys fs.FS, path string) (image.Image, error) {
	file, err := fsys.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, err
	}
	if b := img.Bounds(); b.Dx() == 0 || b.Dy() == 0 {
		return nil, fmt.Errorf("image has zero size")
	}
	return img, nil
}

func (rm *ResourceManager) loadSounds() {
	if rm.audioContext == nil {
		log.Printf("[ResourceManager] No audio context, skipping %d sounds", len(rm.config.Sounds))
		return
	}

	for _, sound := range rm.config.Sounds {
		path := rm.config.SoundPath(sound)
		player, err := rm.loadSoundEffect(path)
		if err != nil {
			log.Printf("[ResourceManager] Warning: %v", err)
			continue
		}
		rm.sounds[sound.ID] = player
	}
}

// loadSoundEffect decodes a WAV file into a non-looping player.
func (rm *ResourceManager) loadSoundEffect(path string) (*audio.Player, error) {
	data, err := fs.ReadFile(rm.fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sound effect %s: %w", path, err)
	}

	stream, err := wav.DecodeWithoutResampling(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode WAV sound effect %s: %w", path, err)
	}

	player, err := rm.audioContext.NewPlayer(stream)
	if err != nil {
		return nil, fmt.Errorf("failed to create audio player for %s: %w", path, err)
	}
	return player, nil
}

// AddImage registers an image under category/variant.
// LoadAll uses it for decoded files; tests use it to register generated images.
func (rm *ResourceManager) AddImage(category, variant string, img *ebiten.Image) {
	c, ok := rm.images[category]
	if !ok {
		c = &imageCategory{images: make(map[string]*ebiten.Image)}
		rm.images[category] = c
	}
	if _, exists := c.images[variant]; !exists {
		c.order = append(c.order, variant)
	}
	c.images[variant] = img
}

// Get returns the image registered under category/variant.
// An empty variant picks one of the category's variants at random.
//
// Returns:
//   - An error if the category or the named variant is unknown
func (rm *ResourceManager) Get(category, variant string) (*ebiten.Image, error) {
	c, ok := rm.images[category]
	if !ok || len(c.order) == 0 {
		return nil, fmt.Errorf("image category not found: %s", category)
	}

	if variant == "" {
		variant = c.order[rm.rng.Intn(len(c.order))]
	}

	img, ok := c.images[variant]
	if !ok {
		return nil, fmt.Errorf("image variant not found: %s/%s", category, variant)
	}
	return img, nil
}

// Variants returns the variant names of a category in registration order.
func (rm *ResourceManager) Variants(category string) []string {
	c, ok := rm.images[category]
	if !ok {
		return nil
	}
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// GetSound returns the player for a sound ID, or nil when it was not loaded.
func (rm *ResourceManager) GetSound(soundID string) *audio.Player {
	return rm.sounds[soundID]
}
