package main

import (
	"errors"
	"flag"
	"fmt"
	"image/color"
	"log/slog"
	"os"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/sqweek/dialog"
	"golang.org/x/image/font/basicfont"

	"github.com/shapesapp/shapes/internal/config"
	"github.com/shapesapp/shapes/internal/document"
	"github.com/shapesapp/shapes/internal/editor"
	"github.com/shapesapp/shapes/internal/geom"
	"github.com/shapesapp/shapes/internal/shape"
)

const statusHeight = 22

// fillPalette is cycled by the fill-color shortcut.
var fillPalette = []shape.Color{
	shape.ARGB(255, 255, 99, 71),
	shape.ARGB(255, 255, 215, 0),
	shape.ARGB(255, 60, 179, 113),
	shape.ARGB(255, 65, 105, 225),
	shape.ARGB(255, 186, 85, 211),
	shape.LightGray,
}

var shortcutKeys = map[ebiten.Key]string{
	ebiten.KeyDelete: "delete",
	ebiten.KeyZ:      "z",
	ebiten.KeyY:      "y",
	ebiten.KeyC:      "c",
	ebiten.KeyV:      "v",
	ebiten.KeyF:      "f",
	ebiten.KeyR:      "r",
	ebiten.KeyL:      "l",
	ebiten.KeyE:      "e",
	ebiten.KeyT:      "t",
	ebiten.KeyS:      "s",
	ebiten.KeyO:      "o",
	ebiten.KeyH:      "h",
}

var cursorShapes = map[editor.Cursor]ebiten.CursorShapeType{
	editor.CursorDefault:    ebiten.CursorShapeDefault,
	editor.CursorMove:       ebiten.CursorShapeMove,
	editor.CursorRotate:     ebiten.CursorShapePointer,
	editor.CursorResizeNWSE: ebiten.CursorShapeNWSEResize,
	editor.CursorResizeNESW: ebiten.CursorShapeNESWResize,
	editor.CursorResizeWE:   ebiten.CursorShapeEWResize,
	editor.CursorResizeNS:   ebiten.CursorShapeNSResize,
	editor.CursorResizeAll:  ebiten.CursorShapeMove,
}

type Game struct {
	editor  *editor.Editor
	width   int
	height  int
	path    string
	status  string
	palette int

	lastMouse geom.Vec2

	// results of dialogs running off the game goroutine
	pending chan func()
}

func NewGame(ed *editor.Editor, width, height int) *Game {
	return &Game{
		editor:  ed,
		width:   width,
		height:  height,
		status:  "Ctrl+H for shortcuts",
		pending: make(chan func(), 4),
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height + statusHeight
}

func (g *Game) Update() error {
	select {
	case fn := <-g.pending:
		fn()
	default:
	}

	mx, my := ebiten.CursorPosition()
	p := geom.V(float64(mx), float64(my))

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft):
		g.editor.PointerDown(p)
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft):
		g.editor.PointerUp(p)
	case p != g.lastMouse:
		g.editor.PointerMove(p)
	}
	g.lastMouse = p

	ctrl := ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta)
	shift := ebiten.IsKeyPressed(ebiten.KeyShift)
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		name, ok := shortcutKeys[k]
		if !ok {
			continue
		}
		action, _ := g.editor.HandleKey(editor.KeyEvent{Key: name, Ctrl: ctrl, Shift: shift})
		g.fulfill(action)
	}

	ebiten.SetCursorShape(cursorShapes[g.editor.Cursor()])
	return nil
}

// fulfill completes the requests the editor cannot handle itself.
func (g *Game) fulfill(action editor.Action) {
	switch action {
	case editor.ActionPickFill:
		g.palette = (g.palette + 1) % len(fillPalette)
		g.editor.SetFillColor(fillPalette[g.palette])
	case editor.ActionSave:
		go g.saveDialog()
	case editor.ActionOpen:
		go g.openDialog()
	case editor.ActionHelp:
		go dialog.Message("%s", editor.Help()).Title("Shortcuts").Info()
	}
}

func (g *Game) saveDialog() {
	path, err := dialog.File().Filter("Scene files", "json").Title("Save scene").Save()
	if errors.Is(err, dialog.ErrCancelled) {
		return
	}
	if err != nil {
		g.post(func() { g.fail("save", err) })
		return
	}
	if !strings.HasSuffix(strings.ToLower(path), ".json") {
		path += ".json"
	}
	g.post(func() { g.save(path) })
}

func (g *Game) openDialog() {
	path, err := dialog.File().Filter("Scene files", "json").Title("Open scene").Load()
	if errors.Is(err, dialog.ErrCancelled) {
		return
	}
	if err != nil {
		g.post(func() { g.fail("open", err) })
		return
	}
	g.post(func() { g.open(path) })
}

func (g *Game) post(fn func()) {
	g.pending <- fn
}

func (g *Game) save(path string) {
	if err := document.SaveFile(path, g.editor.Scene()); err != nil {
		g.fail("save", err)
		return
	}
	g.path = path
	g.status = "saved " + path
	slog.Info("scene saved", "path", path, "shapes", g.editor.Scene().Len())
}

func (g *Game) open(path string) {
	sc, err := document.LoadFile(path)
	if err != nil {
		g.fail("open", err)
		return
	}
	g.editor.LoadScene(sc)
	g.path = path
	g.status = "opened " + path
	slog.Info("scene opened", "path", path, "shapes", sc.Len())
}

func (g *Game) fail(op string, err error) {
	slog.Error(op+" failed", "error", err)
	g.status = op + " failed: " + err.Error()
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(color.White)
	g.editor.Draw(screenCanvas{dst: screen})

	h := g.editor.History()
	status := fmt.Sprintf("%d shapes  undo %d  redo %d  %s",
		g.editor.Scene().Len(), h.UndoLen(), h.RedoLen(), g.status)
	text.Draw(screen, status, basicfont.Face7x13, 6, g.height+15, color.Black)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	width := flag.Int("width", cfg.CanvasWidth, "canvas width")
	height := flag.Int("height", cfg.CanvasHeight, "canvas height")
	sample := flag.Bool("sample", false, "start with the sample scene")
	open := flag.String("open", "", "scene file to open at start")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: cfg.SlogLevel()}))
	slog.SetDefault(logger)

	ed := editor.New(logger)
	game := NewGame(ed, *width, *height)
	switch {
	case *open != "":
		game.open(*open)
	case *sample:
		ed.LoadScene(document.NewSampleScene())
	}

	ebiten.SetWindowSize(*width, *height+statusHeight)
	ebiten.SetWindowTitle("Shapes")
	if err := ebiten.RunGame(game); err != nil {
		slog.Error("run", "error", err)
		os.Exit(1)
	}
}
