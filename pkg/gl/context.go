package gl

import (
	"fmt"
	"sync/atomic"

	"github.com/unrust/uni-gl/pkg/logger"
)

// Config carries context-construction options. The zero value is a
// sensible default. It is loadable through pkg/config.
type Config struct {
	// PreferWebGL1 skips WebGL 2 negotiation on the web backend and asks
	// for a version 1 context directly. Ignored by the native backend.
	PreferWebGL1 bool `fig:"prefer_webgl1"`
	// CheckErrors makes the native backend poll glGetError after every
	// call and panic on failure. Expensive; for debugging only.
	CheckErrors bool `fig:"check_errors"`
	// Trace logs resource lifecycle events at debug level.
	Trace bool `fig:"trace"`
}

type resourceKind uint8

const (
	resBuffer resourceKind = iota
	resShader
	resProgram
	resTexture
	resFramebuffer
	resVertexArray
	resUniform
)

func (k resourceKind) String() string {
	switch k {
	case resBuffer:
		return "buffer"
	case resShader:
		return "shader"
	case resProgram:
		return "program"
	case resTexture:
		return "texture"
	case resFramebuffer:
		return "framebuffer"
	case resVertexArray:
		return "vertex array"
	case resUniform:
		return "uniform location"
	}
	return "resource"
}

type resEntry struct {
	kind resourceKind
	ref  uint32
}

// contextSeq numbers contexts process-wide so handles can tell their
// issuing context apart from any other.
var contextSeq uint32

// Context is the unified rendering context. It owns exactly one backend,
// selected at construction and fixed for its lifetime, and forwards every
// operation to it after validating handles and capability flags.
//
// A Context and its handles are single-owner: concurrent use from several
// goroutines must be serialized by the caller. Calls execute in issue
// order; the layer never batches or reorders.
type Context struct {
	backend Backend
	caps    Capabilities
	log     *logger.Logger

	id     uint32
	seq    uint32
	res    map[uint32]resEntry
	trace  bool
	closed bool
}

// New establishes a rendering context on the given surface. Exactly one
// backend is initialized for the build target: the GL driver binding on
// native builds, WebGL on js/wasm builds. It fails with ErrNoContext when
// no compatible context can be created.
//
// The context requests a non-alpha draw buffer that is preserved between
// frames on every backend, so frame contents persist until the caller
// clears them explicitly.
func New(surface Surface, conf Config, log *logger.Logger) (*Context, error) {
	if log == nil {
		log = logger.Default()
	}
	attrs := contextAttributes{alpha: false, preserveDrawingBuffer: true}
	b, err := newBackend(surface, conf, attrs, log)
	if err != nil {
		return nil, err
	}
	return newContext(b, conf, log), nil
}

func newContext(b Backend, conf Config, log *logger.Logger) *Context {
	caps := b.Caps()
	log.Info().
		Str("backend", caps.Backend.String()).
		Str("version", caps.Version).
		Str("glsl", caps.GLSLVersion).
		Str("vendor", caps.Vendor).
		Msg("context ready")
	return &Context{
		backend: b,
		caps:    caps,
		log:     log,
		id:      atomic.AddUint32(&contextSeq, 1),
		res:     make(map[uint32]resEntry),
		trace:   conf.Trace,
	}
}

// Caps returns the capability descriptor recorded at construction.
func (c *Context) Caps() Capabilities { return c.caps }

// Close deletes every live resource, invalidates all issued handles and
// releases the backend. Further calls on the context or its handles fail
// with ErrContextClosed. Close is idempotent.
func (c *Context) Close() {
	if c.closed {
		return
	}
	for _, e := range c.res {
		switch e.kind {
		case resBuffer:
			c.backend.DeleteBuffer(e.ref)
		case resShader:
			c.backend.DeleteShader(e.ref)
		case resProgram:
			c.backend.DeleteProgram(e.ref)
		case resTexture:
			c.backend.DeleteTexture(e.ref)
		case resFramebuffer:
			c.backend.DeleteFramebuffer(e.ref)
		case resVertexArray:
			if c.caps.VertexArray {
				c.backend.DeleteVertexArray(e.ref)
			}
		}
	}
	c.res = nil
	c.closed = true
	c.backend.Close()
}

// issue registers a backend name and wraps it into a fresh handle.
func (c *Context) issue(kind resourceKind, ref uint32) (handle, error) {
	if c.closed {
		return handle{}, ErrContextClosed
	}
	if ref == 0 {
		return handle{}, fmt.Errorf("gl: create %s failed", kind)
	}
	c.seq++
	h := handle{ctx: c.id, id: c.seq}
	c.res[h.id] = resEntry{kind: kind, ref: ref}
	if c.trace {
		c.log.Debug().Uint32("id", h.id).Str("kind", kind.String()).Msg("resource created")
	}
	return h, nil
}

// resolve maps a handle back to its backend name, rejecting deleted,
// foreign and zero handles before any backend dispatch.
func (c *Context) resolve(kind resourceKind, h handle) (uint32, error) {
	if c.closed {
		return 0, ErrContextClosed
	}
	if !h.valid() || h.ctx != c.id {
		return 0, fmt.Errorf("%s not issued by this context: %w", kind, ErrInvalidHandle)
	}
	e, ok := c.res[h.id]
	if !ok || e.kind != kind {
		return 0, fmt.Errorf("%s was deleted: %w", kind, ErrInvalidHandle)
	}
	return e.ref, nil
}

// drop resolves a handle and removes it from the registry.
func (c *Context) drop(kind resourceKind, h handle) (uint32, error) {
	ref, err := c.resolve(kind, h)
	if err != nil {
		return 0, err
	}
	delete(c.res, h.id)
	if c.trace {
		c.log.Debug().Uint32("id", h.id).Str("kind", kind.String()).Msg("resource deleted")
	}
	return ref, nil
}

// open guards state operations that carry no handle and return no error.
// Using a closed context is a programming error; it is reported loudly
// instead of corrupting driver state.
func (c *Context) open() bool {
	if c.closed {
		c.log.Error().Msg("gl: call on closed context")
		return false
	}
	return true
}

// Buffers.

// CreateBuffer creates a new GL buffer.
func (c *Context) CreateBuffer() (Buffer, error) {
	if c.closed {
		return Buffer{}, ErrContextClosed
	}
	h, err := c.issue(resBuffer, c.backend.CreateBuffer())
	return Buffer{h: h}, err
}

// BindBuffer binds a buffer to the given target slot.
func (c *Context) BindBuffer(kind BufferKind, b Buffer) error {
	ref, err := c.resolve(resBuffer, b.h)
	if err != nil {
		return err
	}
	c.backend.BindBuffer(kind, ref)
	return nil
}

// UnbindBuffer clears the binding of the given target slot.
func (c *Context) UnbindBuffer(kind BufferKind) {
	if !c.open() {
		return
	}
	c.backend.BindBuffer(kind, 0)
}

// BufferData uploads data into the buffer bound to the target. The data
// is copied into driver storage; the slice is not retained.
func (c *Context) BufferData(kind BufferKind, data []byte, usage DrawMode) {
	if !c.open() {
		return
	}
	c.backend.BufferData(kind, data, usage)
}

// BufferSubData replaces a range of the bound buffer starting at offset.
func (c *Context) BufferSubData(kind BufferKind, offset int, data []byte) {
	if !c.open() {
		return
	}
	c.backend.BufferSubData(kind, offset, data)
}

// DeleteBuffer destroys the buffer. The handle is invalid afterwards.
func (c *Context) DeleteBuffer(b Buffer) error {
	ref, err := c.drop(resBuffer, b.h)
	if err != nil {
		return err
	}
	c.backend.DeleteBuffer(ref)
	return nil
}

// Shaders and programs.

// CreateShader creates a shader object for the given stage.
func (c *Context) CreateShader(kind ShaderKind) (Shader, error) {
	if c.closed {
		return Shader{}, ErrContextClosed
	}
	h, err := c.issue(resShader, c.backend.CreateShader(kind))
	return Shader{h: h}, err
}

// ShaderSource replaces the source code of the shader.
func (c *Context) ShaderSource(s Shader, source string) error {
	ref, err := c.resolve(resShader, s.h)
	if err != nil {
		return err
	}
	c.backend.ShaderSource(ref, source)
	return nil
}

// CompileShader compiles the shader. On rejection it returns a
// *ShaderError carrying the driver's info log.
func (c *Context) CompileShader(s Shader) error {
	ref, err := c.resolve(resShader, s.h)
	if err != nil {
		return err
	}
	return c.backend.CompileShader(ref)
}

// DeleteShader destroys the shader object.
func (c *Context) DeleteShader(s Shader) error {
	ref, err := c.drop(resShader, s.h)
	if err != nil {
		return err
	}
	c.backend.DeleteShader(ref)
	return nil
}

// CreateProgram creates an empty program object.
func (c *Context) CreateProgram() (Program, error) {
	if c.closed {
		return Program{}, ErrContextClosed
	}
	h, err := c.issue(resProgram, c.backend.CreateProgram())
	return Program{h: h}, err
}

// AttachShader attaches a compiled shader to the program.
func (c *Context) AttachShader(p Program, s Shader) error {
	pref, err := c.resolve(resProgram, p.h)
	if err != nil {
		return err
	}
	sref, err := c.resolve(resShader, s.h)
	if err != nil {
		return err
	}
	c.backend.AttachShader(pref, sref)
	return nil
}

// LinkProgram links the program. On failure it returns a *ShaderError
// carrying the driver's info log.
func (c *Context) LinkProgram(p Program) error {
	ref, err := c.resolve(resProgram, p.h)
	if err != nil {
		return err
	}
	return c.backend.LinkProgram(ref)
}

// UseProgram installs the program into the current rendering state.
func (c *Context) UseProgram(p Program) error {
	ref, err := c.resolve(resProgram, p.h)
	if err != nil {
		return err
	}
	c.backend.UseProgram(ref)
	return nil
}

// GetProgramParameter returns a program introspection value.
func (c *Context) GetProgramParameter(p Program, pname ShaderParameter) (int, error) {
	ref, err := c.resolve(resProgram, p.h)
	if err != nil {
		return 0, err
	}
	return c.backend.GetProgramParameter(ref, pname), nil
}

// DeleteProgram destroys the program object.
func (c *Context) DeleteProgram(p Program) error {
	ref, err := c.drop(resProgram, p.h)
	if err != nil {
		return err
	}
	c.backend.DeleteProgram(ref)
	return nil
}

// BindAttribLocation associates a generic vertex attribute index with a
// named attribute, effective after the next link.
func (c *Context) BindAttribLocation(p Program, location uint32, name string) error {
	ref, err := c.resolve(resProgram, p.h)
	if err != nil {
		return err
	}
	c.backend.BindAttribLocation(ref, location, name)
	return nil
}

// GetAttribLocation returns the location of an attribute variable.
// ok is false when the attribute is not active in the linked program.
func (c *Context) GetAttribLocation(p Program, name string) (location uint32, ok bool, err error) {
	ref, err := c.resolve(resProgram, p.h)
	if err != nil {
		return 0, false, err
	}
	location, ok = c.backend.GetAttribLocation(ref, name)
	return location, ok, nil
}

// GetUniformLocation returns the location of a uniform variable. The zero
// UniformLocation (Valid() == false) is returned when the uniform is not
// active in the linked program.
func (c *Context) GetUniformLocation(p Program, name string) (UniformLocation, error) {
	ref, err := c.resolve(resProgram, p.h)
	if err != nil {
		return UniformLocation{}, err
	}
	uref, ok := c.backend.GetUniformLocation(ref, name)
	if !ok {
		return UniformLocation{}, nil
	}
	h, err := c.issue(resUniform, uref)
	if err != nil {
		return UniformLocation{}, err
	}
	return UniformLocation{h: h, name: name}, nil
}

// Vertex attributes.

// VertexAttribPointer defines the layout of the attribute array at the
// given location, sourced from the bound array buffer.
func (c *Context) VertexAttribPointer(location uint32, size int, kind DataType, normalized bool, stride, offset int) {
	if !c.open() {
		return
	}
	c.backend.VertexAttribPointer(location, size, kind, normalized, stride, offset)
}

// EnableVertexAttribArray enables the attribute array at the location.
func (c *Context) EnableVertexAttribArray(location uint32) {
	if !c.open() {
		return
	}
	c.backend.EnableVertexAttribArray(location)
}

// DisableVertexAttribArray disables the attribute array at the location.
func (c *Context) DisableVertexAttribArray(location uint32) {
	if !c.open() {
		return
	}
	c.backend.DisableVertexAttribArray(location)
}

// Uniforms. All setters affect the currently used program.

func (c *Context) Uniform1i(u UniformLocation, v int32) error {
	ref, err := c.resolve(resUniform, u.h)
	if err != nil {
		return err
	}
	c.backend.Uniform1i(ref, v)
	return nil
}

func (c *Context) Uniform1f(u UniformLocation, v float32) error {
	ref, err := c.resolve(resUniform, u.h)
	if err != nil {
		return err
	}
	c.backend.Uniform1f(ref, v)
	return nil
}

func (c *Context) Uniform2f(u UniformLocation, x, y float32) error {
	ref, err := c.resolve(resUniform, u.h)
	if err != nil {
		return err
	}
	c.backend.Uniform2f(ref, x, y)
	return nil
}

func (c *Context) Uniform3f(u UniformLocation, x, y, z float32) error {
	ref, err := c.resolve(resUniform, u.h)
	if err != nil {
		return err
	}
	c.backend.Uniform3f(ref, x, y, z)
	return nil
}

func (c *Context) Uniform4f(u UniformLocation, x, y, z, w float32) error {
	ref, err := c.resolve(resUniform, u.h)
	if err != nil {
		return err
	}
	c.backend.Uniform4f(ref, x, y, z, w)
	return nil
}

// UniformMatrix2fv sets a mat2 uniform from a column-major array.
func (c *Context) UniformMatrix2fv(u UniformLocation, m [4]float32) error {
	ref, err := c.resolve(resUniform, u.h)
	if err != nil {
		return err
	}
	c.backend.UniformMatrix2fv(ref, m)
	return nil
}

// UniformMatrix3fv sets a mat3 uniform from a column-major array.
func (c *Context) UniformMatrix3fv(u UniformLocation, m [9]float32) error {
	ref, err := c.resolve(resUniform, u.h)
	if err != nil {
		return err
	}
	c.backend.UniformMatrix3fv(ref, m)
	return nil
}

// UniformMatrix4fv sets a mat4 uniform from a column-major array.
func (c *Context) UniformMatrix4fv(u UniformLocation, m [16]float32) error {
	ref, err := c.resolve(resUniform, u.h)
	if err != nil {
		return err
	}
	c.backend.UniformMatrix4fv(ref, m)
	return nil
}

// Textures.

// CreateTexture creates a new texture object.
func (c *Context) CreateTexture() (Texture, error) {
	if c.closed {
		return Texture{}, ErrContextClosed
	}
	h, err := c.issue(resTexture, c.backend.CreateTexture())
	return Texture{h: h}, err
}

// ActiveTexture selects the active texture unit, counted from zero.
func (c *Context) ActiveTexture(unit uint32) {
	if !c.open() {
		return
	}
	c.backend.ActiveTexture(unit)
}

// BindTexture binds the texture to the 2D target of the active unit.
func (c *Context) BindTexture(t Texture) error {
	ref, err := c.resolve(resTexture, t.h)
	if err != nil {
		return err
	}
	c.backend.BindTexture(Texture2D, ref)
	return nil
}

// UnbindTexture clears the 2D binding of the active unit.
func (c *Context) UnbindTexture() {
	if !c.open() {
		return
	}
	c.backend.BindTexture(Texture2D, 0)
}

// BindTextureCube binds the texture to the cube map target of the active
// unit.
func (c *Context) BindTextureCube(t Texture) error {
	ref, err := c.resolve(resTexture, t.h)
	if err != nil {
		return err
	}
	c.backend.BindTexture(TextureCubeMap, ref)
	return nil
}

// UnbindTextureCube clears the cube map binding of the active unit.
func (c *Context) UnbindTextureCube() {
	if !c.open() {
		return
	}
	c.backend.BindTexture(TextureCubeMap, 0)
}

// GenerateMipmap generates mipmaps for the bound 2D texture.
func (c *Context) GenerateMipmap() {
	if !c.open() {
		return
	}
	c.backend.GenerateMipmap(Texture2D)
}

// GenerateMipmapCube generates mipmaps for the bound cube map texture.
func (c *Context) GenerateMipmapCube() {
	if !c.open() {
		return
	}
	c.backend.GenerateMipmap(TextureCubeMap)
}

// TexParameteri sets an integer sampling parameter of the bound texture.
func (c *Context) TexParameteri(kind TextureKind, pname TextureParameter, param int32) {
	if !c.open() {
		return
	}
	c.backend.TexParameteri(kind, pname, param)
}

// TexParameterf sets a float sampling parameter of the bound texture.
func (c *Context) TexParameterf(kind TextureKind, pname TextureParameter, param float32) {
	if !c.open() {
		return
	}
	c.backend.TexParameterf(kind, pname, param)
}

// TexImage2D uploads a two-dimensional image into the bound texture. A
// nil or empty pixels slice allocates uninitialized storage. Pixels are
// copied; the slice is not retained.
func (c *Context) TexImage2D(target TextureBindPoint, level int, width, height int, format PixelFormat, kind PixelType, pixels []byte) {
	if !c.open() {
		return
	}
	c.backend.TexImage2D(target, level, width, height, format, kind, pixels)
}

// TexSubImage2D replaces a rectangle of the bound texture image.
func (c *Context) TexSubImage2D(target TextureBindPoint, level int, xoffset, yoffset, width, height int, format PixelFormat, kind PixelType, pixels []byte) {
	if !c.open() {
		return
	}
	c.backend.TexSubImage2D(target, level, xoffset, yoffset, width, height, format, kind, pixels)
}

// CompressedTexImage2D uploads a pre-compressed image into the bound
// texture.
func (c *Context) CompressedTexImage2D(target TextureBindPoint, level int, compression TextureCompression, width, height int, data []byte) {
	if !c.open() {
		return
	}
	c.backend.CompressedTexImage2D(target, level, compression, width, height, data)
}

// PixelStorei sets a pixel transfer mode.
func (c *Context) PixelStorei(storage PixelStorage, value int32) {
	if !c.open() {
		return
	}
	c.backend.PixelStorei(storage, value)
}

// DeleteTexture destroys the texture object.
func (c *Context) DeleteTexture(t Texture) error {
	ref, err := c.drop(resTexture, t.h)
	if err != nil {
		return err
	}
	c.backend.DeleteTexture(ref)
	return nil
}

// Framebuffers.

// CreateFramebuffer creates a new framebuffer object.
func (c *Context) CreateFramebuffer() (Framebuffer, error) {
	if c.closed {
		return Framebuffer{}, ErrContextClosed
	}
	h, err := c.issue(resFramebuffer, c.backend.CreateFramebuffer())
	return Framebuffer{h: h}, err
}

// BindFramebuffer binds the framebuffer to the given target.
func (c *Context) BindFramebuffer(target FramebufferTarget, f Framebuffer) error {
	ref, err := c.resolve(resFramebuffer, f.h)
	if err != nil {
		return err
	}
	c.backend.BindFramebuffer(target, ref)
	return nil
}

// UnbindFramebuffer restores the default draw surface for the target.
func (c *Context) UnbindFramebuffer(target FramebufferTarget) {
	if !c.open() {
		return
	}
	c.backend.BindFramebuffer(target, 0)
}

// FramebufferTexture2D attaches a texture image to the bound framebuffer.
func (c *Context) FramebufferTexture2D(target FramebufferTarget, attachment Attachment, texTarget TextureBindPoint, t Texture, level int) error {
	ref, err := c.resolve(resTexture, t.h)
	if err != nil {
		return err
	}
	c.backend.FramebufferTexture2D(target, attachment, texTarget, ref, level)
	return nil
}

// DrawBuffers selects the color buffers to be drawn into. It fails with
// ErrUnsupported when the backend lacks multiple render targets.
func (c *Context) DrawBuffers(buffers []ColorBuffer) error {
	if c.closed {
		return ErrContextClosed
	}
	if !c.caps.MultipleRenderTargets {
		return fmt.Errorf("multiple render targets: %w", ErrUnsupported)
	}
	c.backend.DrawBuffers(buffers)
	return nil
}

// ReadPixels reads a block of pixels from the bound framebuffer into dst.
func (c *Context) ReadPixels(x, y, width, height int, format PixelFormat, kind PixelType, dst []byte) {
	if !c.open() {
		return
	}
	c.backend.ReadPixels(x, y, width, height, format, kind, dst)
}

// DeleteFramebuffer destroys the framebuffer object.
func (c *Context) DeleteFramebuffer(f Framebuffer) error {
	ref, err := c.drop(resFramebuffer, f.h)
	if err != nil {
		return err
	}
	c.backend.DeleteFramebuffer(ref)
	return nil
}

// Vertex arrays. All operations fail with ErrUnsupported when
// Capabilities.VertexArray is false (WebGL 1 without the extension);
// callers should feature-detect first.

// CreateVertexArray creates a vertex array object.
func (c *Context) CreateVertexArray() (VertexArray, error) {
	if c.closed {
		return VertexArray{}, ErrContextClosed
	}
	if !c.caps.VertexArray {
		return VertexArray{}, fmt.Errorf("vertex array objects: %w", ErrUnsupported)
	}
	h, err := c.issue(resVertexArray, c.backend.CreateVertexArray())
	return VertexArray{h: h}, err
}

// BindVertexArray binds the vertex array object.
func (c *Context) BindVertexArray(v VertexArray) error {
	if !c.caps.VertexArray {
		return fmt.Errorf("vertex array objects: %w", ErrUnsupported)
	}
	ref, err := c.resolve(resVertexArray, v.h)
	if err != nil {
		return err
	}
	c.backend.BindVertexArray(ref)
	return nil
}

// UnbindVertexArray clears the vertex array binding.
func (c *Context) UnbindVertexArray() error {
	if c.closed {
		return ErrContextClosed
	}
	if !c.caps.VertexArray {
		return fmt.Errorf("vertex array objects: %w", ErrUnsupported)
	}
	c.backend.BindVertexArray(0)
	return nil
}

// DeleteVertexArray destroys the vertex array object.
func (c *Context) DeleteVertexArray(v VertexArray) error {
	if !c.caps.VertexArray {
		return fmt.Errorf("vertex array objects: %w", ErrUnsupported)
	}
	ref, err := c.drop(resVertexArray, v.h)
	if err != nil {
		return err
	}
	c.backend.DeleteVertexArray(ref)
	return nil
}

// State setters.

// ClearColor sets the color buffers' clear value.
func (c *Context) ClearColor(r, g, b, a float32) {
	if !c.open() {
		return
	}
	c.backend.ClearColor(r, g, b, a)
}

// ClearDepth sets the depth buffer's clear value.
func (c *Context) ClearDepth(value float32) {
	if !c.open() {
		return
	}
	c.backend.ClearDepth(value)
}

// ClearStencil sets the stencil buffer's clear value.
func (c *Context) ClearStencil(value int32) {
	if !c.open() {
		return
	}
	c.backend.ClearStencil(value)
}

// Clear clears exactly the buffers selected by mask. The context never
// clears on its own: contents persist across frames on both backends
// until this is called.
func (c *Context) Clear(mask BufferBit) {
	if !c.open() {
		return
	}
	c.backend.Clear(mask)
}

// Viewport sets the viewport rectangle.
func (c *Context) Viewport(x, y, width, height int) {
	if !c.open() {
		return
	}
	c.backend.Viewport(x, y, width, height)
}

// Scissor sets the scissor rectangle.
func (c *Context) Scissor(x, y, width, height int) {
	if !c.open() {
		return
	}
	c.backend.Scissor(x, y, width, height)
}

// Enable turns a GL capability on.
func (c *Context) Enable(flag Flag) {
	if !c.open() {
		return
	}
	c.backend.Enable(flag)
}

// Disable turns a GL capability off.
func (c *Context) Disable(flag Flag) {
	if !c.open() {
		return
	}
	c.backend.Disable(flag)
}

// CullFace selects which polygon faces culling discards.
func (c *Context) CullFace(mode Culling) {
	if !c.open() {
		return
	}
	c.backend.CullFace(mode)
}

// DepthMask enables or disables writes to the depth buffer.
func (c *Context) DepthMask(write bool) {
	if !c.open() {
		return
	}
	c.backend.DepthMask(write)
}

// DepthFunc sets the depth comparison.
func (c *Context) DepthFunc(fn CompareFunc) {
	if !c.open() {
		return
	}
	c.backend.DepthFunc(fn)
}

// StencilFunc sets the stencil comparison, reference value and mask.
func (c *Context) StencilFunc(fn CompareFunc, ref int32, mask uint32) {
	if !c.open() {
		return
	}
	c.backend.StencilFunc(fn, ref, mask)
}

// StencilMask controls writes to the stencil buffer.
func (c *Context) StencilMask(mask uint32) {
	if !c.open() {
		return
	}
	c.backend.StencilMask(mask)
}

// StencilOp sets the actions taken on the stencil buffer for the three
// test outcomes.
func (c *Context) StencilOp(fail, zfail, zpass StencilAction) {
	if !c.open() {
		return
	}
	c.backend.StencilOp(fail, zfail, zpass)
}

// BlendFunc sets the source and destination blend factors.
func (c *Context) BlendFunc(src, dst BlendFactor) {
	if !c.open() {
		return
	}
	c.backend.BlendFunc(src, dst)
}

// BlendEquation sets how source and destination colors are combined.
func (c *Context) BlendEquation(eq BlendEquation) {
	if !c.open() {
		return
	}
	c.backend.BlendEquation(eq)
}

// BlendColor sets the constant blend color.
func (c *Context) BlendColor(r, g, b, a float32) {
	if !c.open() {
		return
	}
	c.backend.BlendColor(r, g, b, a)
}

// Draw submission.

// DrawArrays renders primitives from array data.
func (c *Context) DrawArrays(mode Primitive, first, count int) {
	if !c.open() {
		return
	}
	c.backend.DrawArrays(mode, first, count)
}

// DrawElements renders primitives from the bound element array buffer.
func (c *Context) DrawElements(mode Primitive, count int, kind DataType, offset int) {
	if !c.open() {
		return
	}
	c.backend.DrawElements(mode, count, kind, offset)
}

// DrawArraysInstanced renders count vertices instances times. It fails
// with ErrUnsupported when the backend lacks instancing.
func (c *Context) DrawArraysInstanced(mode Primitive, first, count, instances int) error {
	if c.closed {
		return ErrContextClosed
	}
	if !c.caps.Instancing {
		return fmt.Errorf("instanced rendering: %w", ErrUnsupported)
	}
	c.backend.DrawArraysInstanced(mode, first, count, instances)
	return nil
}

// DrawElementsInstanced renders indexed primitives instances times. It
// fails with ErrUnsupported when the backend lacks instancing.
func (c *Context) DrawElementsInstanced(mode Primitive, count int, kind DataType, offset, instances int) error {
	if c.closed {
		return ErrContextClosed
	}
	if !c.caps.Instancing {
		return fmt.Errorf("instanced rendering: %w", ErrUnsupported)
	}
	c.backend.DrawElementsInstanced(mode, count, kind, offset, instances)
	return nil
}

// Synchronization.

// Flush empties internal driver command queues.
func (c *Context) Flush() {
	if !c.open() {
		return
	}
	c.backend.Flush()
}

// Finish blocks until all previously issued commands complete.
func (c *Context) Finish() {
	if !c.open() {
		return
	}
	c.backend.Finish()
}
