package gl

import (
	"errors"
	"strings"
	"testing"

	"github.com/unrust/uni-gl/pkg/logger"
)

// fakeBackend is an in-memory Backend used to exercise Context without a
// GPU. It hands out sequential names, tracks which are alive, simulates
// the clear values of a tiny framebuffer and rejects shader sources that
// lack a main function.
type fakeBackend struct {
	caps Capabilities

	seq     uint32
	alive   map[uint32]bool
	deletes int

	sources  map[uint32]string
	uniforms map[string]uint32

	clearColor   [4]float32
	clearDepth   float32
	clearStencil int32
	color        [4]float32
	depth        float32
	stencil      int32

	closed bool
}

func newFakeBackend() *fakeBackend {
	return &fakeBackend{
		caps: Capabilities{
			Backend:               KindNative,
			Version:               "fake 1.0",
			GLSLVersion:           "fake glsl 1.0",
			Vendor:                "testing",
			VertexArray:           true,
			Instancing:            true,
			MultipleRenderTargets: true,
			MaxTextureSize:        2048,
		},
		alive:    make(map[uint32]bool),
		sources:  make(map[uint32]string),
		uniforms: map[string]uint32{"uColor": 7},
	}
}

func testContext(t *testing.T, b Backend) *Context {
	t.Helper()
	return newContext(b, Config{}, logger.Default())
}

func (f *fakeBackend) create() uint32 {
	f.seq++
	f.alive[f.seq] = true
	return f.seq
}

func (f *fakeBackend) delete(ref uint32) {
	delete(f.alive, ref)
	f.deletes++
}

func (f *fakeBackend) Caps() Capabilities { return f.caps }

func (f *fakeBackend) CreateBuffer() uint32                                { return f.create() }
func (f *fakeBackend) DeleteBuffer(ref uint32)                             { f.delete(ref) }
func (f *fakeBackend) BindBuffer(kind BufferKind, ref uint32)              {}
func (f *fakeBackend) BufferData(kind BufferKind, data []byte, u DrawMode) {}
func (f *fakeBackend) BufferSubData(kind BufferKind, off int, data []byte) {}

func (f *fakeBackend) CreateShader(kind ShaderKind) uint32 { return f.create() }
func (f *fakeBackend) DeleteShader(ref uint32)             { f.delete(ref) }
func (f *fakeBackend) ShaderSource(ref uint32, source string) {
	f.sources[ref] = source
}
func (f *fakeBackend) CompileShader(ref uint32) error {
	if !strings.Contains(f.sources[ref], "main") {
		return &ShaderError{Op: "compile", Log: "0:1: error: no main function"}
	}
	return nil
}
func (f *fakeBackend) CreateProgram() uint32                                     { return f.create() }
func (f *fakeBackend) DeleteProgram(ref uint32)                                  { f.delete(ref) }
func (f *fakeBackend) AttachShader(program, shader uint32)                       {}
func (f *fakeBackend) LinkProgram(ref uint32) error                              { return nil }
func (f *fakeBackend) UseProgram(ref uint32)                                     {}
func (f *fakeBackend) GetProgramParameter(ref uint32, pname ShaderParameter) int { return 1 }

func (f *fakeBackend) BindAttribLocation(program uint32, location uint32, name string) {}
func (f *fakeBackend) GetAttribLocation(program uint32, name string) (uint32, bool)    { return 0, true }
func (f *fakeBackend) GetUniformLocation(program uint32, name string) (uint32, bool) {
	ref, ok := f.uniforms[name]
	return ref, ok
}
func (f *fakeBackend) VertexAttribPointer(l uint32, size int, k DataType, n bool, stride, off int) {}
func (f *fakeBackend) EnableVertexAttribArray(location uint32)                                     {}
func (f *fakeBackend) DisableVertexAttribArray(location uint32)                                    {}
func (f *fakeBackend) Uniform1i(location uint32, v int32)                                          {}
func (f *fakeBackend) Uniform1f(location uint32, v float32)                                        {}
func (f *fakeBackend) Uniform2f(location uint32, x, y float32)                                     {}
func (f *fakeBackend) Uniform3f(location uint32, x, y, z float32)                                  {}
func (f *fakeBackend) Uniform4f(location uint32, x, y, z, w float32)                               {}
func (f *fakeBackend) UniformMatrix2fv(location uint32, m [4]float32)                              {}
func (f *fakeBackend) UniformMatrix3fv(location uint32, m [9]float32)                              {}
func (f *fakeBackend) UniformMatrix4fv(location uint32, m [16]float32)                             {}

func (f *fakeBackend) CreateTexture() uint32                                      { return f.create() }
func (f *fakeBackend) DeleteTexture(ref uint32)                                   { f.delete(ref) }
func (f *fakeBackend) ActiveTexture(unit uint32)                                  {}
func (f *fakeBackend) BindTexture(kind TextureKind, ref uint32)                   {}
func (f *fakeBackend) GenerateMipmap(kind TextureKind)                            {}
func (f *fakeBackend) TexParameteri(k TextureKind, p TextureParameter, v int32)   {}
func (f *fakeBackend) TexParameterf(k TextureKind, p TextureParameter, v float32) {}
func (f *fakeBackend) TexImage2D(t TextureBindPoint, level, w, h int, fm PixelFormat, k PixelType, px []byte) {
}
func (f *fakeBackend) TexSubImage2D(t TextureBindPoint, level, x, y, w, h int, fm PixelFormat, k PixelType, px []byte) {
}
func (f *fakeBackend) CompressedTexImage2D(t TextureBindPoint, level int, c TextureCompression, w, h int, data []byte) {
}
func (f *fakeBackend) PixelStorei(storage PixelStorage, value int32) {}

func (f *fakeBackend) CreateFramebuffer() uint32                            { return f.create() }
func (f *fakeBackend) DeleteFramebuffer(ref uint32)                         { f.delete(ref) }
func (f *fakeBackend) BindFramebuffer(target FramebufferTarget, ref uint32) {}
func (f *fakeBackend) FramebufferTexture2D(t FramebufferTarget, a Attachment, tt TextureBindPoint, tex uint32, level int) {
}
func (f *fakeBackend) DrawBuffers(buffers []ColorBuffer)                                  {}
func (f *fakeBackend) ReadPixels(x, y, w, h int, fm PixelFormat, k PixelType, dst []byte) {}

func (f *fakeBackend) CreateVertexArray() uint32    { return f.create() }
func (f *fakeBackend) DeleteVertexArray(ref uint32) { f.delete(ref) }
func (f *fakeBackend) BindVertexArray(ref uint32)   {}

func (f *fakeBackend) ClearColor(r, g, b, a float32) { f.clearColor = [4]float32{r, g, b, a} }
func (f *fakeBackend) ClearDepth(value float32)      { f.clearDepth = value }
func (f *fakeBackend) ClearStencil(value int32)      { f.clearStencil = value }
func (f *fakeBackend) Clear(mask BufferBit) {
	if mask.Has(ColorBufferBit) {
		f.color = f.clearColor
	}
	if mask.Has(DepthBufferBit) {
		f.depth = f.clearDepth
	}
	if mask.Has(StencilBufferBit) {
		f.stencil = f.clearStencil
	}
}
func (f *fakeBackend) Viewport(x, y, width, height int)                   {}
func (f *fakeBackend) Scissor(x, y, width, height int)                    {}
func (f *fakeBackend) Enable(flag Flag)                                   {}
func (f *fakeBackend) Disable(flag Flag)                                  {}
func (f *fakeBackend) CullFace(mode Culling)                              {}
func (f *fakeBackend) DepthMask(write bool)                               {}
func (f *fakeBackend) DepthFunc(fn CompareFunc)                           {}
func (f *fakeBackend) StencilFunc(fn CompareFunc, ref int32, mask uint32) {}
func (f *fakeBackend) StencilMask(mask uint32)                            {}
func (f *fakeBackend) StencilOp(fail, zfail, zpass StencilAction)         {}
func (f *fakeBackend) BlendFunc(src, dst BlendFactor)                     {}
func (f *fakeBackend) BlendEquation(eq BlendEquation)                     {}
func (f *fakeBackend) BlendColor(r, g, b, a float32)                      {}

func (f *fakeBackend) DrawArrays(mode Primitive, first, count int)                        {}
func (f *fakeBackend) DrawElements(mode Primitive, count int, k DataType, offset int)     {}
func (f *fakeBackend) DrawArraysInstanced(mode Primitive, first, count, instances int)    {}
func (f *fakeBackend) DrawElementsInstanced(m Primitive, count int, k DataType, o, n int) {}

func (f *fakeBackend) Flush()  {}
func (f *fakeBackend) Finish() {}
func (f *fakeBackend) Close()  { f.closed = true }

func TestHandleScopedToContext(t *testing.T) {
	c1 := testContext(t, newFakeBackend())
	c2 := testContext(t, newFakeBackend())

	b1, err := c1.CreateBuffer()
	if err != nil {
		t.Fatal(err)
	}
	b2, err := c2.CreateBuffer()
	if err != nil {
		t.Fatal(err)
	}
	if b1 == b2 {
		t.Fatal("handles from different contexts compare equal")
	}
	if err := c2.BindBuffer(ArrayBuffer, b1); !errors.Is(err, ErrInvalidHandle) {
		t.Errorf("foreign handle: got %v, want ErrInvalidHandle", err)
	}
	if err := c1.BindBuffer(ArrayBuffer, b1); err != nil {
		t.Errorf("own handle: %v", err)
	}
}

func TestZeroHandleRejected(t *testing.T) {
	c := testContext(t, newFakeBackend())
	var b Buffer
	if b.Valid() {
		t.Error("zero Buffer reports Valid")
	}
	if err := c.BindBuffer(ArrayBuffer, b); !errors.Is(err, ErrInvalidHandle) {
		t.Errorf("zero handle: got %v, want ErrInvalidHandle", err)
	}
}

func TestDeleteInvalidatesHandle(t *testing.T) {
	f := newFakeBackend()
	c := testContext(t, f)

	b, err := c.CreateBuffer()
	if err != nil {
		t.Fatal(err)
	}
	if err := c.DeleteBuffer(b); err != nil {
		t.Fatal(err)
	}
	if err := c.BindBuffer(ArrayBuffer, b); !errors.Is(err, ErrInvalidHandle) {
		t.Errorf("use after delete: got %v, want ErrInvalidHandle", err)
	}
	if err := c.DeleteBuffer(b); !errors.Is(err, ErrInvalidHandle) {
		t.Errorf("double delete: got %v, want ErrInvalidHandle", err)
	}
	if f.deletes != 1 {
		t.Errorf("backend saw %d deletes, want 1", f.deletes)
	}
}

func TestHandleKindChecked(t *testing.T) {
	c := testContext(t, newFakeBackend())
	tex, err := c.CreateTexture()
	if err != nil {
		t.Fatal(err)
	}
	// A texture handle smuggled into a buffer operation must be refused
	// even though the underlying names come from the same sequence.
	if err := c.BindBuffer(ArrayBuffer, Buffer{h: tex.h}); !errors.Is(err, ErrInvalidHandle) {
		t.Errorf("kind mismatch: got %v, want ErrInvalidHandle", err)
	}
}

func TestClearAffectsSelectedBuffersOnly(t *testing.T) {
	f := newFakeBackend()
	c := testContext(t, f)

	c.ClearColor(0.1, 0.2, 0.3, 1)
	c.ClearDepth(1)
	c.ClearStencil(0xA)

	c.Clear(ColorBufferBit)
	if f.color != [4]float32{0.1, 0.2, 0.3, 1} {
		t.Errorf("color buffer = %v after color clear", f.color)
	}
	if f.depth != 0 || f.stencil != 0 {
		t.Errorf("color clear touched depth=%v stencil=%v", f.depth, f.stencil)
	}

	c.Clear(DepthBufferBit | StencilBufferBit)
	if f.depth != 1 || f.stencil != 0xA {
		t.Errorf("depth|stencil clear: depth=%v stencil=%v", f.depth, f.stencil)
	}
}

func TestNoImplicitClear(t *testing.T) {
	f := newFakeBackend()
	c := testContext(t, f)

	c.ClearColor(1, 0, 0, 1)
	c.Clear(ColorBufferBit)

	// End-of-frame synchronization must leave buffer contents alone.
	c.DrawArrays(Triangles, 0, 3)
	c.Flush()
	c.Finish()
	if f.color != [4]float32{1, 0, 0, 1} {
		t.Errorf("frame contents did not persist: %v", f.color)
	}
}

func TestCapabilityGating(t *testing.T) {
	f := newFakeBackend()
	f.caps.VertexArray = false
	f.caps.Instancing = false
	f.caps.MultipleRenderTargets = false
	c := testContext(t, f)

	if _, err := c.CreateVertexArray(); !errors.Is(err, ErrUnsupported) {
		t.Errorf("CreateVertexArray: got %v, want ErrUnsupported", err)
	}
	if err := c.UnbindVertexArray(); !errors.Is(err, ErrUnsupported) {
		t.Errorf("UnbindVertexArray: got %v, want ErrUnsupported", err)
	}
	if err := c.DrawArraysInstanced(Triangles, 0, 3, 2); !errors.Is(err, ErrUnsupported) {
		t.Errorf("DrawArraysInstanced: got %v, want ErrUnsupported", err)
	}
	if err := c.DrawBuffers([]ColorBuffer{DrawBuffer0}); !errors.Is(err, ErrUnsupported) {
		t.Errorf("DrawBuffers: got %v, want ErrUnsupported", err)
	}
}

func TestVertexArrayLifecycle(t *testing.T) {
	c := testContext(t, newFakeBackend())
	v, err := c.CreateVertexArray()
	if err != nil {
		t.Fatal(err)
	}
	if err := c.BindVertexArray(v); err != nil {
		t.Fatal(err)
	}
	if err := c.DeleteVertexArray(v); err != nil {
		t.Fatal(err)
	}
	if err := c.BindVertexArray(v); !errors.Is(err, ErrInvalidHandle) {
		t.Errorf("bind after delete: got %v, want ErrInvalidHandle", err)
	}
}

func TestFramebufferLifecycle(t *testing.T) {
	c := testContext(t, newFakeBackend())

	f, err := c.CreateFramebuffer()
	if err != nil {
		t.Fatal(err)
	}
	if err := c.BindFramebuffer(TargetFramebuffer, f); err != nil {
		t.Fatal(err)
	}
	tex, err := c.CreateTexture()
	if err != nil {
		t.Fatal(err)
	}
	if err := c.FramebufferTexture2D(TargetFramebuffer, ColorAttachment0, TextureBindPoint2D, tex, 0); err != nil {
		t.Fatal(err)
	}
	c.UnbindFramebuffer(TargetFramebuffer)
	if err := c.DeleteFramebuffer(f); err != nil {
		t.Fatal(err)
	}
	if err := c.BindFramebuffer(TargetFramebuffer, f); !errors.Is(err, ErrInvalidHandle) {
		t.Errorf("bind after delete: got %v, want ErrInvalidHandle", err)
	}
}

func TestCompileShaderError(t *testing.T) {
	c := testContext(t, newFakeBackend())
	s, err := c.CreateShader(VertexShader)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.ShaderSource(s, "not a shader"); err != nil {
		t.Fatal(err)
	}
	err = c.CompileShader(s)
	var serr *ShaderError
	if !errors.As(err, &serr) {
		t.Fatalf("got %v, want *ShaderError", err)
	}
	if serr.Op != "compile" || serr.Log == "" {
		t.Errorf("ShaderError = %+v, want compile op with a log", serr)
	}

	ok, err := c.CreateShader(VertexShader)
	if err != nil {
		t.Fatal(err)
	}
	if err := c.ShaderSource(ok, "void main() {}"); err != nil {
		t.Fatal(err)
	}
	if err := c.CompileShader(ok); err != nil {
		t.Errorf("valid source: %v", err)
	}
}

func TestUniformLocation(t *testing.T) {
	c := testContext(t, newFakeBackend())
	p, err := c.CreateProgram()
	if err != nil {
		t.Fatal(err)
	}

	u, err := c.GetUniformLocation(p, "uColor")
	if err != nil {
		t.Fatal(err)
	}
	if !u.Valid() || u.Name() != "uColor" {
		t.Fatalf("active uniform: valid=%v name=%q", u.Valid(), u.Name())
	}
	if err := c.Uniform4f(u, 1, 1, 1, 1); err != nil {
		t.Errorf("Uniform4f: %v", err)
	}

	missing, err := c.GetUniformLocation(p, "uMissing")
	if err != nil {
		t.Fatal(err)
	}
	if missing.Valid() {
		t.Error("inactive uniform reports Valid")
	}
	if err := c.Uniform1f(missing, 0); !errors.Is(err, ErrInvalidHandle) {
		t.Errorf("inactive uniform set: got %v, want ErrInvalidHandle", err)
	}
}

func TestCloseReleasesResources(t *testing.T) {
	f := newFakeBackend()
	c := testContext(t, f)

	if _, err := c.CreateBuffer(); err != nil {
		t.Fatal(err)
	}
	tex, err := c.CreateTexture()
	if err != nil {
		t.Fatal(err)
	}
	if _, err := c.CreateVertexArray(); err != nil {
		t.Fatal(err)
	}

	c.Close()
	if !f.closed {
		t.Error("backend not closed")
	}
	if len(f.alive) != 0 {
		t.Errorf("%d resources leaked past Close", len(f.alive))
	}
	if _, err := c.CreateBuffer(); !errors.Is(err, ErrContextClosed) {
		t.Errorf("create on closed context: got %v, want ErrContextClosed", err)
	}
	if err := c.BindTexture(tex); !errors.Is(err, ErrContextClosed) {
		t.Errorf("use on closed context: got %v, want ErrContextClosed", err)
	}
	c.Close() // idempotent
}
