package renderer

import (
	"image/color"
	"log/slog"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/tileclicker/systems"
)

// machineColors are used when a machine has no sprite on disk.
var machineColors = map[systems.MachineKind]color.RGBA{
	systems.DirtExcavator:  {R: 200, G: 140, B: 40, A: 255},
	systems.House:          {R: 190, G: 60, B: 50, A: 255},
	systems.GrassHarvester: {R: 210, G: 210, B: 60, A: 255},
	systems.WaterPump:      {R: 60, G: 170, B: 220, A: 255},
	systems.Market:         {R: 230, G: 190, B: 30, A: 255},
	systems.QuantumPC:      {R: 230, G: 80, B: 230, A: 255},
}

// Raylib is a window surface. The board is painted into a render texture
// that keeps its contents across frames, so staggered redraws only touch
// due tiles.
type Raylib struct {
	sprites  map[systems.MachineKind]string
	textures map[systems.MachineKind]rl.Texture2D

	board         rl.RenderTexture2D
	width, height int32
	initialized   bool
}

// NewRaylib creates a surface for a board of the given pixel size.
// sprites maps machine kinds to image paths; missing files fall back to
// plain shapes.
func NewRaylib(width, height int, sprites map[systems.MachineKind]string) *Raylib {
	return &Raylib{
		sprites:  sprites,
		textures: make(map[systems.MachineKind]rl.Texture2D),
		width:    int32(width),
		height:   int32(height),
	}
}

// Init loads GPU resources (must be called after raylib window is created).
func (r *Raylib) Init() {
	if r.initialized {
		return
	}

	r.board = rl.LoadRenderTexture(r.width, r.height)

	for kind, path := range r.sprites {
		if path == "" || !rl.FileExists(path) {
			continue
		}
		tex := rl.LoadTexture(path)
		if tex.ID == 0 {
			slog.Warn("sprite load failed", "machine", kind.String(), "path", path)
			continue
		}
		r.textures[kind] = tex
	}

	r.initialized = true
}

// BeginBoard redirects drawing into the board texture.
func (r *Raylib) BeginBoard() {
	if !r.initialized {
		r.Init()
	}
	rl.BeginTextureMode(r.board)
}

// EndBoard restores drawing to the window.
func (r *Raylib) EndBoard() {
	rl.EndTextureMode()
}

// DrawBoard blits the board texture to the window origin.
func (r *Raylib) DrawBoard() {
	// Render textures are stored upside down
	src := rl.NewRectangle(0, 0, float32(r.width), -float32(r.height))
	rl.DrawTextureRec(r.board.Texture, src, rl.NewVector2(0, 0), rl.White)
}

// FillRect draws a filled rectangle.
func (r *Raylib) FillRect(x, y, w, h int, c color.RGBA) {
	rl.DrawRectangle(int32(x), int32(y), int32(w), int32(h), c)
}

// DrawText draws text with the default font.
func (r *Raylib) DrawText(text string, x, y, size int, c color.RGBA) {
	rl.DrawText(text, int32(x), int32(y), int32(size), c)
}

// DrawMachine draws a machine sprite or its fallback shape.
func (r *Raylib) DrawMachine(kind systems.MachineKind, x, y, w, h, phase int) {
	centre := rl.NewVector2(float32(x)+float32(w)/2, float32(y)+float32(h)/2)
	dst := rl.NewRectangle(centre.X, centre.Y, float32(w), float32(h))
	origin := rl.NewVector2(float32(w)/2, float32(h)/2)

	if tex, ok := r.textures[kind]; ok {
		src := rl.NewRectangle(0, 0, float32(tex.Width), float32(tex.Height))
		rl.DrawTexturePro(tex, src, dst, origin, float32(phase), rl.White)
		return
	}

	// Fallback: a rotated square half the cell size
	dst.Width /= 2
	dst.Height /= 2
	origin.X /= 2
	origin.Y /= 2
	rl.DrawRectanglePro(dst, origin, float32(phase), machineColors[kind])
}

// Unload frees resources.
func (r *Raylib) Unload() {
	if !r.initialized {
		return
	}
	for _, tex := range r.textures {
		rl.UnloadTexture(tex)
	}
	rl.UnloadRenderTexture(r.board)
	r.initialized = false
}
