//go:build !js

package main

import (
	goflag "flag"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	flag "github.com/spf13/pflag"

	"github.com/unrust/uni-gl/pkg/config"
	"github.com/unrust/uni-gl/pkg/gl"
	"github.com/unrust/uni-gl/pkg/logger"
	"github.com/unrust/uni-gl/pkg/thread"
)

const vertexSrc = `#version 330 core
in vec2 aPosition;
void main() {
	gl_Position = vec4(aPosition, 0.0, 1.0);
}`

const fragmentSrc = `#version 330 core
uniform vec4 uColor;
out vec4 outColor;
void main() {
	outColor = uColor;
}`

func main() { thread.MainWrap(run) }

func run() {
	runtime.LockOSThread()

	confPath := flag.StringP("conf", "c", "", "config directory")
	flag.CommandLine.AddGoFlagSet(goflag.CommandLine)
	flag.Parse()

	var conf config.Config
	if err := config.LoadConfig(&conf, *confPath); err != nil {
		conf.App = config.App{Title: "basic", Width: 640, Height: 480}
	}
	log := logger.NewConsole(conf.Debug, "basic")

	var w *glfw.Window
	thread.Main(func() {
		if err := glfw.Init(); err != nil {
			log.Fatal().Err(err).Msg("glfw initialization failed")
		}
		glfw.WindowHint(glfw.Resizable, glfw.False)
		glfw.WindowHint(glfw.ContextVersionMajor, 4)
		glfw.WindowHint(glfw.ContextVersionMinor, 1)
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
		glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

		var err error
		w, err = glfw.CreateWindow(conf.App.Width, conf.App.Height, conf.App.Title, nil, nil)
		if err != nil {
			log.Fatal().Err(err).Msg("window creation failed")
		}
	})
	defer thread.Main(glfw.Terminate)

	w.MakeContextCurrent()

	ctx, err := gl.New(gl.Surface{GetProcAddress: glfw.GetProcAddress}, conf.GL, log)
	if err != nil {
		log.Fatal().Err(err).Msg("context creation failed")
	}
	defer ctx.Close()

	s := newScene(ctx, log, vertexSrc, fragmentSrc, conf.App.Width, conf.App.Height)
	for !w.ShouldClose() {
		s.frame()
		w.SwapBuffers()
		thread.Main(glfw.PollEvents)
	}
}
