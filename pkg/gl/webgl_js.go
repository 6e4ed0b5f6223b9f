//go:build js && wasm

package gl

import (
	"encoding/binary"
	"fmt"
	"math"
	"syscall/js"

	"github.com/unrust/uni-gl/pkg/logger"
)

// Driver parameter names used during capability detection. Values are
// the shared GL enum space, same as the neutral vocabulary.
const (
	glVendor                 = 0x1F00
	glVersion                = 0x1F02
	glShadingLanguageVersion = 0x8B8C
	glMaxTextureSize         = 0x0D33
	glCompileStatus          = 0x8B81
	glLinkStatus             = 0x8B82
	glTexture0               = 0x84C0
	glDepthComponent16       = 0x81A5
)

// webBackend maps the Backend contract onto a browser WebGL context. The
// browser hands out managed objects, not names; they are kept in a
// dictionary keyed by the refs this backend issues, holding a strong
// reference until the explicit delete. Refs start at one so zero stays
// the invalid ref.
type webBackend struct {
	ctx  js.Value
	caps Capabilities
	log  *logger.Logger

	objs map[uint32]js.Value
	seq  uint32

	// Scratch Uint8Array for byte uploads, grown on demand. WebGL copies
	// synchronously, so one buffer serves every call.
	buf js.Value

	s3tc bool
}

func newBackend(s Surface, conf Config, attrs contextAttributes, log *logger.Logger) (Backend, error) {
	canvas := s.Canvas
	if canvas.IsUndefined() || canvas.IsNull() {
		return nil, fmt.Errorf("surface has no canvas: %w", ErrNoContext)
	}
	opts := js.ValueOf(map[string]any{
		"alpha":                 attrs.alpha,
		"preserveDrawingBuffer": attrs.preserveDrawingBuffer,
	})
	webgl2 := false
	ctx := js.Null()
	if !conf.PreferWebGL1 {
		ctx = canvas.Call("getContext", "webgl2", opts)
		webgl2 = ctx.Truthy()
	}
	if !webgl2 {
		ctx = canvas.Call("getContext", "webgl", opts)
		if !ctx.Truthy() {
			return nil, fmt.Errorf("browser offers neither webgl2 nor webgl: %w", ErrNoContext)
		}
	}
	b := &webBackend{
		ctx:  ctx,
		log:  log,
		objs: make(map[uint32]js.Value),
	}
	var maxTex int
	if v := ctx.Call("getParameter", glMaxTextureSize); v.Type() == js.TypeNumber {
		maxTex = v.Int()
	}
	b.caps = Capabilities{
		Backend:               KindWeb,
		Version:               b.parameterString(glVersion),
		GLSLVersion:           b.parameterString(glShadingLanguageVersion),
		Vendor:                b.parameterString(glVendor),
		ES:                    true,
		WebGL2:                webgl2,
		VertexArray:           webgl2,
		Instancing:            webgl2,
		MultipleRenderTargets: webgl2,
		MaxTextureSize:        maxTex,
	}
	return b, nil
}

func (b *webBackend) parameterString(pname int) string {
	return b.ctx.Call("getParameter", pname).String()
}

// add stores a managed object and returns its ref, zero for null objects
// (a lost context makes create calls return null).
func (b *webBackend) add(v js.Value) uint32 {
	if !v.Truthy() {
		return 0
	}
	b.seq++
	b.objs[b.seq] = v
	return b.seq
}

func (b *webBackend) obj(ref uint32) js.Value {
	if v, ok := b.objs[ref]; ok {
		return v
	}
	return js.Null()
}

func (b *webBackend) remove(ref uint32) { delete(b.objs, ref) }

// byteArray copies data into the scratch Uint8Array and returns the
// matching subarray view.
func (b *webBackend) byteArray(data []byte) js.Value {
	if b.buf.IsUndefined() || b.buf.Get("byteLength").Int() < len(data) {
		b.buf = js.Global().Get("Uint8Array").New(len(data))
	}
	view := b.buf.Call("subarray", 0, len(data))
	js.CopyBytesToJS(view, data)
	return view
}

// floatArray returns a Float32Array view over the scratch buffer holding
// vals. Valid until the next transfer; WebGL consumes it synchronously.
func (b *webBackend) floatArray(vals []float32) js.Value {
	bytes := make([]byte, len(vals)*4)
	for i, v := range vals {
		binary.LittleEndian.PutUint32(bytes[i*4:], math.Float32bits(v))
	}
	view := b.byteArray(bytes)
	return js.Global().Get("Float32Array").New(
		view.Get("buffer"), view.Get("byteOffset"), len(vals))
}

func (b *webBackend) Caps() Capabilities { return b.caps }

func (b *webBackend) CreateBuffer() uint32 { return b.add(b.ctx.Call("createBuffer")) }

func (b *webBackend) DeleteBuffer(ref uint32) {
	b.ctx.Call("deleteBuffer", b.obj(ref))
	b.remove(ref)
}

func (b *webBackend) BindBuffer(kind BufferKind, ref uint32) {
	b.ctx.Call("bindBuffer", int(kind), b.obj(ref))
}

func (b *webBackend) BufferData(kind BufferKind, data []byte, usage DrawMode) {
	b.ctx.Call("bufferData", int(kind), b.byteArray(data), int(usage))
}

func (b *webBackend) BufferSubData(kind BufferKind, offset int, data []byte) {
	b.ctx.Call("bufferSubData", int(kind), offset, b.byteArray(data))
}

func (b *webBackend) CreateShader(kind ShaderKind) uint32 {
	return b.add(b.ctx.Call("createShader", int(kind)))
}

func (b *webBackend) DeleteShader(ref uint32) {
	b.ctx.Call("deleteShader", b.obj(ref))
	b.remove(ref)
}

func (b *webBackend) ShaderSource(ref uint32, source string) {
	b.ctx.Call("shaderSource", b.obj(ref), source)
}

func (b *webBackend) CompileShader(ref uint32) error {
	shader := b.obj(ref)
	b.ctx.Call("compileShader", shader)
	if !b.ctx.Call("getShaderParameter", shader, glCompileStatus).Bool() {
		return &ShaderError{Op: "compile", Log: b.ctx.Call("getShaderInfoLog", shader).String()}
	}
	return nil
}

func (b *webBackend) CreateProgram() uint32 { return b.add(b.ctx.Call("createProgram")) }

func (b *webBackend) DeleteProgram(ref uint32) {
	b.ctx.Call("deleteProgram", b.obj(ref))
	b.remove(ref)
}

func (b *webBackend) AttachShader(program, shader uint32) {
	b.ctx.Call("attachShader", b.obj(program), b.obj(shader))
}

func (b *webBackend) LinkProgram(ref uint32) error {
	program := b.obj(ref)
	b.ctx.Call("linkProgram", program)
	if !b.ctx.Call("getProgramParameter", program, glLinkStatus).Bool() {
		return &ShaderError{Op: "link", Log: b.ctx.Call("getProgramInfoLog", program).String()}
	}
	return nil
}

func (b *webBackend) UseProgram(ref uint32) {
	b.ctx.Call("useProgram", b.obj(ref))
}

func (b *webBackend) GetProgramParameter(ref uint32, pname ShaderParameter) int {
	return paramInt(b.ctx.Call("getProgramParameter", b.obj(ref), int(pname)))
}

func (b *webBackend) BindAttribLocation(program uint32, location uint32, name string) {
	b.ctx.Call("bindAttribLocation", b.obj(program), location, name)
}

func (b *webBackend) GetAttribLocation(program uint32, name string) (uint32, bool) {
	loc := b.ctx.Call("getAttribLocation", b.obj(program), name).Int()
	if loc < 0 {
		return 0, false
	}
	return uint32(loc), true
}

func (b *webBackend) GetUniformLocation(program uint32, name string) (uint32, bool) {
	v := b.ctx.Call("getUniformLocation", b.obj(program), name)
	if !v.Truthy() {
		return 0, false
	}
	return b.add(v), true
}

func (b *webBackend) VertexAttribPointer(location uint32, size int, kind DataType, normalized bool, stride, offset int) {
	b.ctx.Call("vertexAttribPointer", location, size, int(kind), normalized, stride, offset)
}

func (b *webBackend) EnableVertexAttribArray(location uint32) {
	b.ctx.Call("enableVertexAttribArray", location)
}

func (b *webBackend) DisableVertexAttribArray(location uint32) {
	b.ctx.Call("disableVertexAttribArray", location)
}

func (b *webBackend) Uniform1i(location uint32, v int32) {
	b.ctx.Call("uniform1i", b.obj(location), v)
}

func (b *webBackend) Uniform1f(location uint32, v float32) {
	b.ctx.Call("uniform1f", b.obj(location), v)
}

func (b *webBackend) Uniform2f(location uint32, x, y float32) {
	b.ctx.Call("uniform2f", b.obj(location), x, y)
}

func (b *webBackend) Uniform3f(location uint32, x, y, z float32) {
	b.ctx.Call("uniform3f", b.obj(location), x, y, z)
}

func (b *webBackend) Uniform4f(location uint32, x, y, z, w float32) {
	b.ctx.Call("uniform4f", b.obj(location), x, y, z, w)
}

func (b *webBackend) UniformMatrix2fv(location uint32, m [4]float32) {
	b.ctx.Call("uniformMatrix2fv", b.obj(location), false, b.floatArray(m[:]))
}

func (b *webBackend) UniformMatrix3fv(location uint32, m [9]float32) {
	b.ctx.Call("uniformMatrix3fv", b.obj(location), false, b.floatArray(m[:]))
}

func (b *webBackend) UniformMatrix4fv(location uint32, m [16]float32) {
	b.ctx.Call("uniformMatrix4fv", b.obj(location), false, b.floatArray(m[:]))
}

func (b *webBackend) CreateTexture() uint32 { return b.add(b.ctx.Call("createTexture")) }

func (b *webBackend) DeleteTexture(ref uint32) {
	b.ctx.Call("deleteTexture", b.obj(ref))
	b.remove(ref)
}

func (b *webBackend) ActiveTexture(unit uint32) {
	b.ctx.Call("activeTexture", glTexture0+int(unit))
}

func (b *webBackend) BindTexture(kind TextureKind, ref uint32) {
	b.ctx.Call("bindTexture", int(kind), b.obj(ref))
}

func (b *webBackend) GenerateMipmap(kind TextureKind) {
	b.ctx.Call("generateMipmap", int(kind))
}

func (b *webBackend) TexParameteri(kind TextureKind, pname TextureParameter, param int32) {
	// WebGL 1 has no R wrap axis.
	if !b.caps.WebGL2 && pname == TextureWrapR {
		return
	}
	b.ctx.Call("texParameteri", int(kind), int(pname), param)
}

func (b *webBackend) TexParameterf(kind TextureKind, pname TextureParameter, param float32) {
	if !b.caps.WebGL2 && pname == TextureWrapR {
		return
	}
	b.ctx.Call("texParameterf", int(kind), int(pname), param)
}

func (b *webBackend) TexImage2D(target TextureBindPoint, level int, width, height int, format PixelFormat, kind PixelType, pixels []byte) {
	if len(pixels) > 0 {
		b.ctx.Call("texImage2D", int(target), level, int(format), width, height, 0,
			int(format), int(kind), b.byteArray(pixels))
		return
	}
	// Allocation-only upload. The browser rejects a bare DEPTH_COMPONENT
	// internal format; it has to be the sized DEPTH_COMPONENT16.
	internal := int(format)
	if format == DepthComponent {
		internal = glDepthComponent16
	}
	b.ctx.Call("texImage2D", int(target), level, internal, width, height, 0,
		int(format), int(kind), js.Null())
}

func (b *webBackend) TexSubImage2D(target TextureBindPoint, level int, xoffset, yoffset, width, height int, format PixelFormat, kind PixelType, pixels []byte) {
	b.ctx.Call("texSubImage2D", int(target), level, xoffset, yoffset, width, height,
		int(format), int(kind), b.byteArray(pixels))
}

func (b *webBackend) CompressedTexImage2D(target TextureBindPoint, level int, compression TextureCompression, width, height int, data []byte) {
	// The s3tc extension must be queried at least once before compressed
	// uploads are accepted.
	if !b.s3tc {
		for _, name := range []string{
			"WEBGL_compressed_texture_s3tc",
			"MOZ_WEBGL_compressed_texture_s3tc",
			"WEBKIT_WEBGL_compressed_texture_s3tc",
		} {
			if b.ctx.Call("getExtension", name).Truthy() {
				break
			}
		}
		b.s3tc = true
	}
	b.ctx.Call("compressedTexImage2D", int(target), level, int(compression), width, height, 0,
		b.byteArray(data))
}

func (b *webBackend) PixelStorei(storage PixelStorage, value int32) {
	b.ctx.Call("pixelStorei", int(storage), value)
}

func (b *webBackend) CreateFramebuffer() uint32 { return b.add(b.ctx.Call("createFramebuffer")) }

func (b *webBackend) DeleteFramebuffer(ref uint32) {
	b.ctx.Call("deleteFramebuffer", b.obj(ref))
	b.remove(ref)
}

func (b *webBackend) BindFramebuffer(target FramebufferTarget, ref uint32) {
	b.ctx.Call("bindFramebuffer", int(target), b.obj(ref))
}

func (b *webBackend) FramebufferTexture2D(target FramebufferTarget, attachment Attachment, texTarget TextureBindPoint, texture uint32, level int) {
	b.ctx.Call("framebufferTexture2D", int(target), int(attachment), int(texTarget), b.obj(texture), level)
}

func (b *webBackend) DrawBuffers(buffers []ColorBuffer) {
	if len(buffers) == 0 {
		return
	}
	arr := js.Global().Get("Array").New(len(buffers))
	for i, buf := range buffers {
		arr.SetIndex(i, int(buf))
	}
	b.ctx.Call("drawBuffers", arr)
}

func (b *webBackend) ReadPixels(x, y, width, height int, format PixelFormat, kind PixelType, dst []byte) {
	out := js.Global().Get("Uint8Array").New(len(dst))
	b.ctx.Call("readPixels", x, y, width, height, int(format), int(kind), out)
	js.CopyBytesToGo(dst, out)
}

func (b *webBackend) CreateVertexArray() uint32 {
	return b.add(b.ctx.Call("createVertexArray"))
}

func (b *webBackend) DeleteVertexArray(ref uint32) {
	b.ctx.Call("deleteVertexArray", b.obj(ref))
	b.remove(ref)
}

func (b *webBackend) BindVertexArray(ref uint32) {
	b.ctx.Call("bindVertexArray", b.obj(ref))
}

func (b *webBackend) ClearColor(r, g, bl, a float32) { b.ctx.Call("clearColor", r, g, bl, a) }
func (b *webBackend) ClearDepth(value float32)       { b.ctx.Call("clearDepth", value) }
func (b *webBackend) ClearStencil(value int32)       { b.ctx.Call("clearStencil", value) }
func (b *webBackend) Clear(mask BufferBit)           { b.ctx.Call("clear", int(mask)) }

func (b *webBackend) Viewport(x, y, width, height int) {
	b.ctx.Call("viewport", x, y, width, height)
}

func (b *webBackend) Scissor(x, y, width, height int) {
	b.ctx.Call("scissor", x, y, width, height)
}

func (b *webBackend) Enable(flag Flag)         { b.ctx.Call("enable", int(flag)) }
func (b *webBackend) Disable(flag Flag)        { b.ctx.Call("disable", int(flag)) }
func (b *webBackend) CullFace(mode Culling)    { b.ctx.Call("cullFace", int(mode)) }
func (b *webBackend) DepthMask(write bool)     { b.ctx.Call("depthMask", write) }
func (b *webBackend) DepthFunc(fn CompareFunc) { b.ctx.Call("depthFunc", int(fn)) }

func (b *webBackend) StencilFunc(fn CompareFunc, ref int32, mask uint32) {
	b.ctx.Call("stencilFunc", int(fn), ref, mask)
}

func (b *webBackend) StencilMask(mask uint32) { b.ctx.Call("stencilMask", mask) }

func (b *webBackend) StencilOp(fail, zfail, zpass StencilAction) {
	b.ctx.Call("stencilOp", int(fail), int(zfail), int(zpass))
}

func (b *webBackend) BlendFunc(src, dst BlendFactor) {
	b.ctx.Call("blendFunc", int(src), int(dst))
}

func (b *webBackend) BlendEquation(eq BlendEquation) {
	b.ctx.Call("blendEquation", int(eq))
}

func (b *webBackend) BlendColor(r, g, bl, a float32) {
	b.ctx.Call("blendColor", r, g, bl, a)
}

func (b *webBackend) DrawArrays(mode Primitive, first, count int) {
	b.ctx.Call("drawArrays", int(mode), first, count)
}

func (b *webBackend) DrawElements(mode Primitive, count int, kind DataType, offset int) {
	b.ctx.Call("drawElements", int(mode), count, int(kind), offset)
}

func (b *webBackend) DrawArraysInstanced(mode Primitive, first, count, instances int) {
	b.ctx.Call("drawArraysInstanced", int(mode), first, count, instances)
}

func (b *webBackend) DrawElementsInstanced(mode Primitive, count int, kind DataType, offset, instances int) {
	b.ctx.Call("drawElementsInstanced", int(mode), count, int(kind), offset, instances)
}

func (b *webBackend) Flush()  { b.ctx.Call("flush") }
func (b *webBackend) Finish() { b.ctx.Call("finish") }

// Close drops every held object reference so the browser can collect
// them.
func (b *webBackend) Close() {
	b.objs = nil
	b.ctx = js.Null()
}

func paramInt(v js.Value) int {
	switch v.Type() {
	case js.TypeBoolean:
		if v.Bool() {
			return 1
		}
		return 0
	case js.TypeNumber:
		return v.Int()
	}
	return 0
}
