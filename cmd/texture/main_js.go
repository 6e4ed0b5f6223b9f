//go:build js && wasm

package main

import (
	"syscall/js"

	"github.com/unrust/uni-gl/pkg/config"
	"github.com/unrust/uni-gl/pkg/gl"
	"github.com/unrust/uni-gl/pkg/logger"
)

const vertexSrc = `
attribute vec2 aPosition;
attribute vec2 aTexCoord;
varying vec2 vTexCoord;
void main() {
	vTexCoord = aTexCoord;
	gl_Position = vec4(aPosition, 0.0, 1.0);
}`

const fragmentSrc = `
precision mediump float;
uniform sampler2D uTexture;
varying vec2 vTexCoord;
void main() {
	gl_FragColor = texture2D(uTexture, vTexCoord);
}`

func main() {
	var conf config.Config
	_ = config.LoadConfigEnv(&conf)
	if conf.App.Width == 0 {
		conf.App = config.App{Title: "texture", Width: 640, Height: 480}
	}
	log := logger.NewConsole(conf.Debug, "texture")

	doc := js.Global().Get("document")
	canvas := doc.Call("getElementById", "canvas")
	if canvas.IsNull() {
		canvas = doc.Call("createElement", "canvas")
		doc.Get("body").Call("appendChild", canvas)
	}
	canvas.Set("width", conf.App.Width)
	canvas.Set("height", conf.App.Height)
	doc.Set("title", conf.App.Title)

	ctx, err := gl.New(gl.Surface{Canvas: canvas}, conf.GL, log)
	if err != nil {
		log.Fatal().Err(err).Msg("context creation failed")
	}
	defer ctx.Close()

	s := newScene(ctx, log, vertexSrc, fragmentSrc, conf.App.Width, conf.App.Height)

	var raf js.Func
	raf = js.FuncOf(func(js.Value, []js.Value) any {
		s.frame()
		js.Global().Call("requestAnimationFrame", raf)
		return nil
	})
	js.Global().Call("requestAnimationFrame", raf)

	select {}
}
