package game

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"math/rand"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/hajimehoshi/ebiten/v2"
)

// pngBytes 生成指定尺寸的纯色 PNG
func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 120, B: 40, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode: %v", err)
	}
	return buf.Bytes()
}

const testManifest = `
version: "1.0"
base_path: assets
categories:
  rabbit:
    images:
      - id: run
        path: images/Rabbit_Run
      - id: hop
        path: images/Rabbit_Hop.png
  birds:
    images:
      - id: cardinal
        path: images/bird_2_cardinal
      - id: robin
        path: images/bird_3_robin
      - id: sparrow
        path: images/bird_3_sparrow
sounds:
  - id: SOUND_HOP
    path: sounds/hop.wav
`

func testAssets(t *testing.T) fstest.MapFS {
	return fstest.MapFS{
		"assets/config/resources.yaml":      {Data: []byte(testManifest)},
		"assets/images/Rabbit_Run.png":      {Data: pngBytes(t, 60, 10)},
		"assets/images/Rabbit_Hop.png":      {Data: pngBytes(t, 50, 10)},
		"assets/images/bird_2_cardinal.png": {Data: pngBytes(t, 30, 8)},
		"assets/images/bird_3_robin.png":    {Data: pngBytes(t, 30, 8)},
		"assets/images/bird_3_sparrow.png":  {Data: pngBytes(t, 30, 8)},
	}
}

func TestLoadAll(t *testing.T) {
	rm := NewResourceManager(testAssets(t), nil, rand.New(rand.NewSource(1)))
	if err := rm.LoadResourceConfig(DefaultResourceConfigPath); err != nil {
		t.Fatalf("LoadResourceConfig failed: %v", err)
	}
	if err := rm.LoadAll(); err != nil {
		t.Fatalf("LoadAll failed: %v", err)
	}

	run, err := rm.Get("rabbit", "run")
	if err != nil {
		t.Fatalf("Get(rabbit, run) error: %v", err)
	}
	if w := run.Bounds().Dx(); w != 60 {
		t.Errorf("run sheet width = %d, want 60", w)
	}

	if got := rm.Variants("birds"); strings.Join(got, ",") != "cardinal,robin,sparrow" {
		t.Errorf("bird variants = %v, want manifest order", got)
	}

	// 没有音频上下文时不加载音效
	if rm.GetSound("SOUND_HOP") != nil {
		t.Error("sounds must not be loaded without an audio context")
	}
}

func TestLoadAllNamesFailingImage(t *testing.T) {
	assets := testAssets(t)
	assets["assets/images/bird_3_robin.png"] = &fstest.MapFile{Data: []byte("not a png")}

	rm := NewResourceManager(assets, nil, nil)
	if err := rm.LoadResourceConfig(DefaultResourceConfigPath); err != nil {
		t.Fatalf("LoadResourceConfig failed: %v", err)
	}

	err := rm.LoadAll()
	if err == nil {
		t.Fatal("expected LoadAll to fail for a corrupted image")
	}
	if !strings.Contains(err.Error(), "could not load image: assets/images/bird_3_robin.png") {
		t.Errorf("error should name the failing file, got %q", err.Error())
	}

	// 屏障失败时不注册任何图像
	if _, err := rm.Get("rabbit", "run"); err == nil {
		t.Error("no image should be registered after a failed LoadAll")
	}
}

func TestLoadAllMissingImage(t *testing.T) {
	assets := testAssets(t)
	delete(assets, "assets/images/Rabbit_Hop.png")

	rm := NewResourceManager(assets, nil, nil)
	if err := rm.LoadResourceConfig(DefaultResourceConfigPath); err != nil {
		t.Fatalf("LoadResourceConfig failed: %v", err)
	}
	err := rm.LoadAll()
	if err == nil || !strings.Contains(err.Error(), "Rabbit_Hop.png") {
		t.Errorf("expected error naming Rabbit_Hop.png, got %v", err)
	}
}

func TestLoadAllWithoutConfig(t *testing.T) {
	rm := NewResourceManager(fstest.MapFS{}, nil, nil)
	if err := rm.LoadAll(); !errors.Is(err, ErrConfigNotLoaded) {
		t.Errorf("LoadAll without config = %v, want ErrConfigNotLoaded", err)
	}
}

func TestGetRandomVariant(t *testing.T) {
	rm := NewResourceManager(fstest.MapFS{}, nil, rand.New(rand.NewSource(42)))
	byImage := make(map[*ebiten.Image]string)
	for _, id := range []string{"a", "b", "c"} {
		img := ebiten.NewImage(1, 1)
		rm.AddImage("birds", id, img)
		byImage[img] = id
	}

	seen := make(map[string]int)
	for i := 0; i < 300; i++ {
		img, err := rm.Get("birds", "")
		if err != nil {
			t.Fatalf("Get random variant error: %v", err)
		}
		seen[byImage[img]]++
	}
	if len(seen) != 3 {
		t.Errorf("expected all 3 variants to be picked, saw %v", seen)
	}

	// 指定变体时总是返回该变体
	img, err := rm.Get("birds", "b")
	if err != nil || byImage[img] != "b" {
		t.Errorf("Get(birds, b) = %v, %v", byImage[img], err)
	}
}

func TestGetUnknown(t *testing.T) {
	rm := NewResourceManager(fstest.MapFS{}, nil, nil)
	rm.AddImage("rabbit", "run", nil)

	if _, err := rm.Get("deer", ""); err == nil {
		t.Error("expected error for unknown category")
	}
	if _, err := rm.Get("rabbit", "swim"); err == nil {
		t.Error("expected error for unknown variant")
	}
}

func TestParseResourceConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		errContains string
	}{
		{"valid", testManifest, ""},
		{"invalid yaml", "categories: [", "failed to parse"},
		{"no categories", "version: \"1.0\"", "no image categories"},
		{"empty category", "categories:\n  carrot:\n    images: []\n", "is empty"},
		{"duplicate id", "categories:\n  carrot:\n    images:\n      - {id: a, path: x}\n      - {id: a, path: y}\n", "duplicate id"},
		{"missing path", "categories:\n  carrot:\n    images:\n      - {id: a}\n", "without id or path"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseResourceConfig([]byte(tt.yamlContent))
			if tt.errContains == "" {
				if err != nil {
					t.Fatalf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.errContains) {
				t.Errorf("expected error containing %q, got %v", tt.errContains, err)
			}
		})
	}
}

func TestBuildFullPath(t *testing.T) {
	tests := []struct {
		base, path, ext, want string
	}{
		{"assets", "images/carrot", ".png", "assets/images/carrot.png"},
		{"assets", "images/carrot.png", ".png", "assets/images/carrot.png"},
		{"", "sounds/hop", ".wav", "sounds/hop.wav"},
	}
	for _, tt := range tests {
		if got := buildFullPath(tt.base, tt.path, tt.ext); got != tt.want {
			t.Errorf("buildFullPath(%q, %q) = %q, want %q", tt.base, tt.path, got, tt.want)
		}
	}
}
