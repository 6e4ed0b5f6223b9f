package config

import (
	"os"
	"testing"
)

func TestLoadConfigEnv(t *testing.T) {
	_ = os.Setenv("UNI_GL_DEBUG", "true")
	_ = os.Setenv("UNI_GL_GL_PREFER_WEBGL1", "true")
	_ = os.Setenv("UNI_GL_APP_WIDTH", "800")
	defer func() {
		_ = os.Unsetenv("UNI_GL_DEBUG")
		_ = os.Unsetenv("UNI_GL_GL_PREFER_WEBGL1")
		_ = os.Unsetenv("UNI_GL_APP_WIDTH")
	}()

	var out Config
	if err := LoadConfigEnv(&out); err != nil {
		t.Fatal(err)
	}

	if !out.Debug {
		t.Error("debug flag not read from env")
	}
	if !out.GL.PreferWebGL1 {
		t.Error("gl.prefer_webgl1 not read from env")
	}
	if out.App.Width != 800 {
		t.Errorf("app.width = %d, want 800", out.App.Width)
	}
	if out.App.Height != 480 {
		t.Errorf("app.height = %d, want default 480", out.App.Height)
	}
	if out.App.Title != "uni-gl" {
		t.Errorf("app.title = %q, want default", out.App.Title)
	}
}

func TestLoadConfigFile(t *testing.T) {
	dir := t.TempDir()
	conf := []byte("app:\n  title: demo\n  width: 320\n  height: 200\ngl:\n  trace: true\n")
	if err := os.WriteFile(dir+"/config.yaml", conf, 0644); err != nil {
		t.Fatal(err)
	}

	var out Config
	if err := LoadConfig(&out, dir); err != nil {
		t.Fatal(err)
	}

	if out.App.Title != "demo" || out.App.Width != 320 || out.App.Height != 200 {
		t.Errorf("app = %+v", out.App)
	}
	if !out.GL.Trace {
		t.Error("gl.trace not read from file")
	}
}
