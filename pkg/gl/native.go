//go:build !js

package gl

import (
	"fmt"
	"strings"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/unrust/uni-gl/pkg/logger"
)

// nativeBackend maps the Backend contract onto the desktop GL driver.
// Driver names pass through unchanged as refs, except uniform locations
// which are stored as location plus one so zero stays the invalid ref.
type nativeBackend struct {
	caps  Capabilities
	check bool
	log   *logger.Logger
}

func newBackend(s Surface, conf Config, attrs contextAttributes, log *logger.Logger) (Backend, error) {
	if s.GetProcAddress == nil {
		return nil, fmt.Errorf("surface has no proc address resolver: %w", ErrNoContext)
	}
	if err := gl.InitWithProcAddrFunc(s.GetProcAddress); err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrNoContext)
	}
	// The native swap chain never clears the draw buffer on present, so
	// the preserve attribute requested by the Context holds by default.
	_ = attrs
	b := &nativeBackend{check: conf.CheckErrors, log: log}
	b.caps = detectCaps()
	return b, nil
}

func detectCaps() Capabilities {
	version := getString(gl.VERSION)
	var maxTex int32
	gl.GetIntegerv(gl.MAX_TEXTURE_SIZE, &maxTex)
	return Capabilities{
		Backend:               KindNative,
		Version:               version,
		GLSLVersion:           getString(gl.SHADING_LANGUAGE_VERSION),
		Vendor:                getString(gl.VENDOR),
		ES:                    strings.HasPrefix(version, "OpenGL ES"),
		VertexArray:           true,
		Instancing:            true,
		MultipleRenderTargets: true,
		MaxTextureSize:        int(maxTex),
	}
}

func getString(pname uint32) string { return gl.GoStr(gl.GetString(pname)) }

// ptr returns the GL-compatible address of a byte slice, nil for empty
// slices (GL treats a null pointer as "allocate only").
func ptr(data []byte) unsafe.Pointer {
	if len(data) == 0 {
		return nil
	}
	return gl.Ptr(data)
}

// checkErr polls the driver error queue when Config.CheckErrors is set
// and panics on the first error so the offending call site is unmissable
// during debugging.
func (b *nativeBackend) checkErr(op string) {
	if !b.check {
		return
	}
	if e := gl.GetError(); e != gl.NO_ERROR {
		panic(fmt.Sprintf("gl: %s: %s (0x%x)", op, errName(e), e))
	}
}

func errName(e uint32) string {
	switch e {
	case gl.INVALID_ENUM:
		return "invalid enum"
	case gl.INVALID_OPERATION:
		return "invalid operation"
	case gl.INVALID_VALUE:
		return "invalid value"
	case gl.INVALID_FRAMEBUFFER_OPERATION:
		return "invalid framebuffer operation"
	case gl.OUT_OF_MEMORY:
		return "out of memory"
	case gl.STACK_OVERFLOW:
		return "stack overflow"
	case gl.STACK_UNDERFLOW:
		return "stack underflow"
	}
	return "unknown error"
}

func (b *nativeBackend) Caps() Capabilities { return b.caps }

func (b *nativeBackend) CreateBuffer() uint32 {
	var ref uint32
	gl.GenBuffers(1, &ref)
	b.checkErr("create buffer")
	return ref
}

func (b *nativeBackend) DeleteBuffer(ref uint32) {
	gl.DeleteBuffers(1, &ref)
	b.checkErr("delete buffer")
}

func (b *nativeBackend) BindBuffer(kind BufferKind, ref uint32) {
	gl.BindBuffer(uint32(kind), ref)
	b.checkErr("bind buffer")
}

func (b *nativeBackend) BufferData(kind BufferKind, data []byte, usage DrawMode) {
	gl.BufferData(uint32(kind), len(data), ptr(data), uint32(usage))
	b.checkErr("buffer data")
}

func (b *nativeBackend) BufferSubData(kind BufferKind, offset int, data []byte) {
	gl.BufferSubData(uint32(kind), offset, len(data), ptr(data))
	b.checkErr("buffer sub data")
}

func (b *nativeBackend) CreateShader(kind ShaderKind) uint32 {
	ref := gl.CreateShader(uint32(kind))
	b.checkErr("create shader")
	return ref
}

func (b *nativeBackend) DeleteShader(ref uint32) {
	gl.DeleteShader(ref)
	b.checkErr("delete shader")
}

func (b *nativeBackend) ShaderSource(ref uint32, source string) {
	csources, free := gl.Strs(source + "\x00")
	gl.ShaderSource(ref, 1, csources, nil)
	free()
	b.checkErr("shader source")
}

func (b *nativeBackend) CompileShader(ref uint32) error {
	gl.CompileShader(ref)
	var status int32
	gl.GetShaderiv(ref, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetShaderiv(ref, gl.INFO_LOG_LENGTH, &n)
		infoLog := strings.Repeat("\x00", int(n)+1)
		gl.GetShaderInfoLog(ref, n, nil, gl.Str(infoLog))
		return &ShaderError{Op: "compile", Log: strings.TrimRight(infoLog, "\x00")}
	}
	b.checkErr("compile shader")
	return nil
}

func (b *nativeBackend) CreateProgram() uint32 {
	ref := gl.CreateProgram()
	b.checkErr("create program")
	return ref
}

func (b *nativeBackend) DeleteProgram(ref uint32) {
	gl.DeleteProgram(ref)
	b.checkErr("delete program")
}

func (b *nativeBackend) AttachShader(program, shader uint32) {
	gl.AttachShader(program, shader)
	b.checkErr("attach shader")
}

func (b *nativeBackend) LinkProgram(ref uint32) error {
	gl.LinkProgram(ref)
	var status int32
	gl.GetProgramiv(ref, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var n int32
		gl.GetProgramiv(ref, gl.INFO_LOG_LENGTH, &n)
		infoLog := strings.Repeat("\x00", int(n)+1)
		gl.GetProgramInfoLog(ref, n, nil, gl.Str(infoLog))
		return &ShaderError{Op: "link", Log: strings.TrimRight(infoLog, "\x00")}
	}
	b.checkErr("link program")
	return nil
}

func (b *nativeBackend) UseProgram(ref uint32) {
	gl.UseProgram(ref)
	b.checkErr("use program")
}

func (b *nativeBackend) GetProgramParameter(ref uint32, pname ShaderParameter) int {
	var v int32
	gl.GetProgramiv(ref, uint32(pname), &v)
	b.checkErr("get program parameter")
	return int(v)
}

func (b *nativeBackend) BindAttribLocation(program uint32, location uint32, name string) {
	gl.BindAttribLocation(program, location, gl.Str(name+"\x00"))
	b.checkErr("bind attrib location")
}

func (b *nativeBackend) GetAttribLocation(program uint32, name string) (uint32, bool) {
	loc := gl.GetAttribLocation(program, gl.Str(name+"\x00"))
	b.checkErr("get attrib location")
	if loc < 0 {
		return 0, false
	}
	return uint32(loc), true
}

func (b *nativeBackend) GetUniformLocation(program uint32, name string) (uint32, bool) {
	loc := gl.GetUniformLocation(program, gl.Str(name+"\x00"))
	b.checkErr("get uniform location")
	if loc < 0 {
		return 0, false
	}
	return uint32(loc) + 1, true
}

func uloc(ref uint32) int32 { return int32(ref) - 1 }

func (b *nativeBackend) VertexAttribPointer(location uint32, size int, kind DataType, normalized bool, stride, offset int) {
	gl.VertexAttribPointer(location, int32(size), uint32(kind), normalized, int32(stride), gl.PtrOffset(offset))
	b.checkErr("vertex attrib pointer")
}

func (b *nativeBackend) EnableVertexAttribArray(location uint32) {
	gl.EnableVertexAttribArray(location)
	b.checkErr("enable vertex attrib array")
}

func (b *nativeBackend) DisableVertexAttribArray(location uint32) {
	gl.DisableVertexAttribArray(location)
	b.checkErr("disable vertex attrib array")
}

func (b *nativeBackend) Uniform1i(location uint32, v int32) {
	gl.Uniform1i(uloc(location), v)
	b.checkErr("uniform1i")
}

func (b *nativeBackend) Uniform1f(location uint32, v float32) {
	gl.Uniform1f(uloc(location), v)
	b.checkErr("uniform1f")
}

func (b *nativeBackend) Uniform2f(location uint32, x, y float32) {
	gl.Uniform2f(uloc(location), x, y)
	b.checkErr("uniform2f")
}

func (b *nativeBackend) Uniform3f(location uint32, x, y, z float32) {
	gl.Uniform3f(uloc(location), x, y, z)
	b.checkErr("uniform3f")
}

func (b *nativeBackend) Uniform4f(location uint32, x, y, z, w float32) {
	gl.Uniform4f(uloc(location), x, y, z, w)
	b.checkErr("uniform4f")
}

func (b *nativeBackend) UniformMatrix2fv(location uint32, m [4]float32) {
	gl.UniformMatrix2fv(uloc(location), 1, false, &m[0])
	b.checkErr("uniform matrix2fv")
}

func (b *nativeBackend) UniformMatrix3fv(location uint32, m [9]float32) {
	gl.UniformMatrix3fv(uloc(location), 1, false, &m[0])
	b.checkErr("uniform matrix3fv")
}

func (b *nativeBackend) UniformMatrix4fv(location uint32, m [16]float32) {
	gl.UniformMatrix4fv(uloc(location), 1, false, &m[0])
	b.checkErr("uniform matrix4fv")
}

func (b *nativeBackend) CreateTexture() uint32 {
	var ref uint32
	gl.GenTextures(1, &ref)
	b.checkErr("create texture")
	return ref
}

func (b *nativeBackend) DeleteTexture(ref uint32) {
	gl.DeleteTextures(1, &ref)
	b.checkErr("delete texture")
}

func (b *nativeBackend) ActiveTexture(unit uint32) {
	gl.ActiveTexture(gl.TEXTURE0 + unit)
	b.checkErr("active texture")
}

func (b *nativeBackend) BindTexture(kind TextureKind, ref uint32) {
	gl.BindTexture(uint32(kind), ref)
	b.checkErr("bind texture")
}

func (b *nativeBackend) GenerateMipmap(kind TextureKind) {
	gl.GenerateMipmap(uint32(kind))
	b.checkErr("generate mipmap")
}

func (b *nativeBackend) TexParameteri(kind TextureKind, pname TextureParameter, param int32) {
	gl.TexParameteri(uint32(kind), uint32(pname), param)
	b.checkErr("tex parameteri")
}

func (b *nativeBackend) TexParameterf(kind TextureKind, pname TextureParameter, param float32) {
	gl.TexParameterf(uint32(kind), uint32(pname), param)
	b.checkErr("tex parameterf")
}

func (b *nativeBackend) TexImage2D(target TextureBindPoint, level int, width, height int, format PixelFormat, kind PixelType, pixels []byte) {
	gl.TexImage2D(uint32(target), int32(level), int32(format), int32(width), int32(height), 0, uint32(format), uint32(kind), ptr(pixels))
	b.checkErr("tex image2d")
}

func (b *nativeBackend) TexSubImage2D(target TextureBindPoint, level int, xoffset, yoffset, width, height int, format PixelFormat, kind PixelType, pixels []byte) {
	gl.TexSubImage2D(uint32(target), int32(level), int32(xoffset), int32(yoffset), int32(width), int32(height), uint32(format), uint32(kind), ptr(pixels))
	b.checkErr("tex sub image2d")
}

func (b *nativeBackend) CompressedTexImage2D(target TextureBindPoint, level int, compression TextureCompression, width, height int, data []byte) {
	gl.CompressedTexImage2D(uint32(target), int32(level), uint32(compression), int32(width), int32(height), 0, int32(len(data)), ptr(data))
	b.checkErr("compressed tex image2d")
}

func (b *nativeBackend) PixelStorei(storage PixelStorage, value int32) {
	switch storage {
	case UnpackFlipYWebGL, UnpackPremultiplyAlphaWebGL:
		// WebGL-only transfer modes, no driver equivalent.
		return
	}
	gl.PixelStorei(uint32(storage), value)
	b.checkErr("pixel storei")
}

func (b *nativeBackend) CreateFramebuffer() uint32 {
	var ref uint32
	gl.GenFramebuffers(1, &ref)
	b.checkErr("create framebuffer")
	return ref
}

func (b *nativeBackend) DeleteFramebuffer(ref uint32) {
	gl.DeleteFramebuffers(1, &ref)
	b.checkErr("delete framebuffer")
}

func (b *nativeBackend) BindFramebuffer(target FramebufferTarget, ref uint32) {
	gl.BindFramebuffer(uint32(target), ref)
	b.checkErr("bind framebuffer")
}

func (b *nativeBackend) FramebufferTexture2D(target FramebufferTarget, attachment Attachment, texTarget TextureBindPoint, texture uint32, level int) {
	gl.FramebufferTexture2D(uint32(target), uint32(attachment), uint32(texTarget), texture, int32(level))
	b.checkErr("framebuffer texture2d")
}

func (b *nativeBackend) DrawBuffers(buffers []ColorBuffer) {
	if len(buffers) == 0 {
		return
	}
	bufs := make([]uint32, len(buffers))
	for i, buf := range buffers {
		bufs[i] = uint32(buf)
	}
	gl.DrawBuffers(int32(len(bufs)), &bufs[0])
	b.checkErr("draw buffers")
}

func (b *nativeBackend) ReadPixels(x, y, width, height int, format PixelFormat, kind PixelType, dst []byte) {
	gl.ReadPixels(int32(x), int32(y), int32(width), int32(height), uint32(format), uint32(kind), ptr(dst))
	b.checkErr("read pixels")
}

func (b *nativeBackend) CreateVertexArray() uint32 {
	var ref uint32
	gl.GenVertexArrays(1, &ref)
	b.checkErr("create vertex array")
	return ref
}

func (b *nativeBackend) DeleteVertexArray(ref uint32) {
	gl.DeleteVertexArrays(1, &ref)
	b.checkErr("delete vertex array")
}

func (b *nativeBackend) BindVertexArray(ref uint32) {
	gl.BindVertexArray(ref)
	b.checkErr("bind vertex array")
}

func (b *nativeBackend) ClearColor(r, g, bl, a float32) { gl.ClearColor(r, g, bl, a) }
func (b *nativeBackend) ClearDepth(value float32)       { gl.ClearDepth(float64(value)) }
func (b *nativeBackend) ClearStencil(value int32)       { gl.ClearStencil(value) }

func (b *nativeBackend) Clear(mask BufferBit) {
	gl.Clear(uint32(mask))
	b.checkErr("clear")
}

func (b *nativeBackend) Viewport(x, y, width, height int) {
	gl.Viewport(int32(x), int32(y), int32(width), int32(height))
}

func (b *nativeBackend) Scissor(x, y, width, height int) {
	gl.Scissor(int32(x), int32(y), int32(width), int32(height))
}

func (b *nativeBackend) Enable(flag Flag)         { gl.Enable(uint32(flag)) }
func (b *nativeBackend) Disable(flag Flag)        { gl.Disable(uint32(flag)) }
func (b *nativeBackend) CullFace(mode Culling)    { gl.CullFace(uint32(mode)) }
func (b *nativeBackend) DepthMask(write bool)     { gl.DepthMask(write) }
func (b *nativeBackend) DepthFunc(fn CompareFunc) { gl.DepthFunc(uint32(fn)) }

func (b *nativeBackend) StencilFunc(fn CompareFunc, ref int32, mask uint32) {
	gl.StencilFunc(uint32(fn), ref, mask)
}

func (b *nativeBackend) StencilMask(mask uint32) { gl.StencilMask(mask) }

func (b *nativeBackend) StencilOp(fail, zfail, zpass StencilAction) {
	gl.StencilOp(uint32(fail), uint32(zfail), uint32(zpass))
}

func (b *nativeBackend) BlendFunc(src, dst BlendFactor) {
	gl.BlendFunc(uint32(src), uint32(dst))
}

func (b *nativeBackend) BlendEquation(eq BlendEquation) { gl.BlendEquation(uint32(eq)) }

func (b *nativeBackend) BlendColor(r, g, bl, a float32) { gl.BlendColor(r, g, bl, a) }

func (b *nativeBackend) DrawArrays(mode Primitive, first, count int) {
	gl.DrawArrays(uint32(mode), int32(first), int32(count))
	b.checkErr("draw arrays")
}

func (b *nativeBackend) DrawElements(mode Primitive, count int, kind DataType, offset int) {
	gl.DrawElements(uint32(mode), int32(count), uint32(kind), gl.PtrOffset(offset))
	b.checkErr("draw elements")
}

func (b *nativeBackend) DrawArraysInstanced(mode Primitive, first, count, instances int) {
	gl.DrawArraysInstanced(uint32(mode), int32(first), int32(count), int32(instances))
	b.checkErr("draw arrays instanced")
}

func (b *nativeBackend) DrawElementsInstanced(mode Primitive, count int, kind DataType, offset, instances int) {
	gl.DrawElementsInstanced(uint32(mode), int32(count), uint32(kind), gl.PtrOffset(offset), int32(instances))
	b.checkErr("draw elements instanced")
}

func (b *nativeBackend) Flush()  { gl.Flush() }
func (b *nativeBackend) Finish() { gl.Finish() }

// Close has nothing to release: the driver context belongs to the
// windowing layer that supplied the surface.
func (b *nativeBackend) Close() {}
