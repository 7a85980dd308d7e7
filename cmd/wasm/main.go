//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/shapesapp/shapes/internal/document"
	"github.com/shapesapp/shapes/internal/editor"
	"github.com/shapesapp/shapes/internal/geom"
	"github.com/shapesapp/shapes/internal/render"
	"github.com/shapesapp/shapes/internal/shape"
)

var (
	ed  *editor.Editor
	buf = render.NewBuffer()
)

func main() {
	ed = editor.New(nil)

	api := js.Global().Get("Object").New()

	// --- Input (frontend → editor) ---
	api.Set("pointerDown", js.FuncOf(pointer(ed.PointerDown)))
	api.Set("pointerMove", js.FuncOf(pointer(ed.PointerMove)))
	api.Set("pointerUp", js.FuncOf(pointer(ed.PointerUp)))
	api.Set("keyDown", js.FuncOf(keyDown))
	api.Set("addShape", js.FuncOf(addShape))
	api.Set("setFillColor", js.FuncOf(setFillColor))
	api.Set("undo", js.FuncOf(func(js.Value, []js.Value) interface{} { return ed.Undo() }))
	api.Set("redo", js.FuncOf(func(js.Value, []js.Value) interface{} { return ed.Redo() }))
	api.Set("loadScene", js.FuncOf(loadScene))
	api.Set("loadSampleScene", js.FuncOf(loadSampleScene))

	// --- Queries (frontend ← editor) ---
	api.Set("render", js.FuncOf(renderFrame))
	api.Set("cursor", js.FuncOf(func(js.Value, []js.Value) interface{} { return ed.Cursor().String() }))
	api.Set("selectedFill", js.FuncOf(selectedFill))
	api.Set("saveScene", js.FuncOf(saveScene))
	api.Set("help", js.FuncOf(func(js.Value, []js.Value) interface{} { return editor.Help() }))

	js.Global().Set("shapesEditor", api)
	js.Global().Set("shapesWasmReady", js.ValueOf(true))

	// Keep Go runtime alive
	select {}
}

func errorResult(msg string) interface{} {
	return js.ValueOf(map[string]interface{}{"error": msg})
}

// pointer adapts a pointer handler to a (x, y) → changed JS function.
func pointer(fn func(geom.Vec2) bool) func(js.Value, []js.Value) interface{} {
	return func(this js.Value, args []js.Value) interface{} {
		if len(args) < 2 {
			return errorResult("expected x, y")
		}
		return fn(geom.V(args[0].Float(), args[1].Float()))
	}
}

func keyDown(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorResult("missing key")
	}
	ev := editor.KeyEvent{Key: args[0].String()}
	if len(args) > 1 {
		ev.Ctrl = args[1].Truthy()
	}
	if len(args) > 2 {
		ev.Shift = args[2].Truthy()
	}

	action, changed := ed.HandleKey(ev)
	return js.ValueOf(map[string]interface{}{
		"changed": changed,
		"action":  action.String(),
	})
}

func addShape(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorResult("missing shape kind")
	}
	kind := shape.Kind(args[0].String())
	if !kind.Valid() {
		return errorResult("unknown shape kind: " + string(kind))
	}
	return ed.AddShape(kind)
}

func setFillColor(this js.Value, args []js.Value) interface{} {
	if len(args) < 4 {
		return errorResult("expected a, r, g, b")
	}
	c := shape.ARGB(uint8(args[0].Int()), uint8(args[1].Int()), uint8(args[2].Int()), uint8(args[3].Int()))
	return ed.SetFillColor(c)
}

func selectedFill(this js.Value, args []js.Value) interface{} {
	c, ok := ed.SelectedFill()
	if !ok {
		return js.Null()
	}
	return js.ValueOf(map[string]interface{}{"a": int(c.A), "r": int(c.R), "g": int(c.G), "b": int(c.B)})
}

func loadScene(this js.Value, args []js.Value) interface{} {
	if len(args) < 1 {
		return errorResult("missing scene JSON")
	}
	sc, err := document.Unmarshal([]byte(args[0].String()))
	if err != nil {
		return errorResult(err.Error())
	}
	ed.LoadScene(sc)
	return js.ValueOf(map[string]interface{}{"ok": true})
}

func loadSampleScene(this js.Value, args []js.Value) interface{} {
	ed.LoadScene(document.NewSampleScene())
	return js.ValueOf(map[string]interface{}{"ok": true})
}

func saveScene(this js.Value, args []js.Value) interface{} {
	data, err := document.Marshal(ed.Scene())
	if err != nil {
		return errorResult(err.Error())
	}
	return string(data)
}

// renderFrame returns the draw commands for the current frame as JSON.
func renderFrame(this js.Value, args []js.Value) interface{} {
	buf.Reset()
	ed.Draw(buf)
	out, err := buf.JSON()
	if err != nil {
		return errorResult(err.Error())
	}
	return out
}
