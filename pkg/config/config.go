package config

import (
	"github.com/unrust/uni-gl/pkg/gl"
)

// Config is the root configuration for applications built on the
// rendering layer. The zero value is usable.
type Config struct {
	Debug bool      `fig:"debug"`
	GL    gl.Config `fig:"gl"`
	App   App       `fig:"app"`
}

// App describes the window (native) or canvas (web) surface the demos
// render into.
type App struct {
	Title  string `fig:"title" default:"uni-gl"`
	Width  int    `fig:"width" default:"640"`
	Height int    `fig:"height" default:"480"`
}
