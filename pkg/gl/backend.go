package gl

// Kind identifies the backend family a context is bound to.
type Kind uint8

const (
	// KindNative is the desktop/mobile GL driver backend.
	KindNative Kind = iota
	// KindWeb is the browser WebGL backend.
	KindWeb
)

func (k Kind) String() string {
	if k == KindWeb {
		return "web"
	}
	return "native"
}

// Capabilities describes what the active backend and its negotiated
// version support. Derived once at context construction, read-only after.
type Capabilities struct {
	Backend Kind

	// Driver identification strings, verbatim from the driver/browser.
	Version     string
	GLSLVersion string
	Vendor      string

	// ES reports an OpenGL ES (or WebGL, which is ES-derived) profile.
	ES bool
	// WebGL2 reports that the web backend negotiated a version 2 context.
	// Always false on the native backend.
	WebGL2 bool

	// Feature flags callers should branch on before using the
	// corresponding operations.
	VertexArray           bool
	Instancing            bool
	MultipleRenderTargets bool

	MaxTextureSize int
}

// contextAttributes are fixed by the unified Context at construction so
// both backends present frames identically: the draw buffer is never
// implicitly cleared between frames and carries no alpha.
type contextAttributes struct {
	alpha                 bool
	preserveDrawingBuffer bool
}

// Backend is the contract a concrete driver binding satisfies. Resources
// are raw uint32 names: the native backend passes driver names through,
// the web backend issues ids into its managed-object dictionary. Zero is
// never a live name.
//
// Backends do not gate capabilities and do not validate names; both
// happen in Context before dispatch. A backend must not perform binds or
// unbinds beyond what the called operation requires.
type Backend interface {
	Caps() Capabilities

	// Buffers.
	CreateBuffer() uint32
	DeleteBuffer(ref uint32)
	BindBuffer(kind BufferKind, ref uint32)
	BufferData(kind BufferKind, data []byte, usage DrawMode)
	BufferSubData(kind BufferKind, offset int, data []byte)

	// Shaders and programs.
	CreateShader(kind ShaderKind) uint32
	DeleteShader(ref uint32)
	ShaderSource(ref uint32, source string)
	CompileShader(ref uint32) error
	CreateProgram() uint32
	DeleteProgram(ref uint32)
	AttachShader(program, shader uint32)
	LinkProgram(ref uint32) error
	UseProgram(ref uint32)
	GetProgramParameter(ref uint32, pname ShaderParameter) int

	// Attribute and uniform plumbing.
	BindAttribLocation(program uint32, location uint32, name string)
	// GetAttribLocation and GetUniformLocation report ok=false when the
	// variable is not active in the linked program. Uniform refs follow
	// the same name scheme as resources (zero never live).
	GetAttribLocation(program uint32, name string) (uint32, bool)
	GetUniformLocation(program uint32, name string) (uint32, bool)
	VertexAttribPointer(location uint32, size int, kind DataType, normalized bool, stride, offset int)
	EnableVertexAttribArray(location uint32)
	DisableVertexAttribArray(location uint32)
	Uniform1i(location uint32, v int32)
	Uniform1f(location uint32, v float32)
	Uniform2f(location uint32, x, y float32)
	Uniform3f(location uint32, x, y, z float32)
	Uniform4f(location uint32, x, y, z, w float32)
	UniformMatrix2fv(location uint32, m [4]float32)
	UniformMatrix3fv(location uint32, m [9]float32)
	UniformMatrix4fv(location uint32, m [16]float32)

	// Textures.
	CreateTexture() uint32
	DeleteTexture(ref uint32)
	ActiveTexture(unit uint32)
	BindTexture(kind TextureKind, ref uint32)
	GenerateMipmap(kind TextureKind)
	TexParameteri(kind TextureKind, pname TextureParameter, param int32)
	TexParameterf(kind TextureKind, pname TextureParameter, param float32)
	TexImage2D(target TextureBindPoint, level int, width, height int, format PixelFormat, kind PixelType, pixels []byte)
	TexSubImage2D(target TextureBindPoint, level int, xoffset, yoffset, width, height int, format PixelFormat, kind PixelType, pixels []byte)
	CompressedTexImage2D(target TextureBindPoint, level int, compression TextureCompression, width, height int, data []byte)
	PixelStorei(storage PixelStorage, value int32)

	// Framebuffers.
	CreateFramebuffer() uint32
	DeleteFramebuffer(ref uint32)
	BindFramebuffer(target FramebufferTarget, ref uint32)
	FramebufferTexture2D(target FramebufferTarget, attachment Attachment, texTarget TextureBindPoint, texture uint32, level int)
	DrawBuffers(buffers []ColorBuffer)
	ReadPixels(x, y, width, height int, format PixelFormat, kind PixelType, dst []byte)

	// Vertex arrays.
	CreateVertexArray() uint32
	DeleteVertexArray(ref uint32)
	BindVertexArray(ref uint32)

	// Context state.
	ClearColor(r, g, b, a float32)
	ClearDepth(value float32)
	ClearStencil(value int32)
	Clear(mask BufferBit)
	Viewport(x, y, width, height int)
	Scissor(x, y, width, height int)
	Enable(flag Flag)
	Disable(flag Flag)
	CullFace(mode Culling)
	DepthMask(write bool)
	DepthFunc(fn CompareFunc)
	StencilFunc(fn CompareFunc, ref int32, mask uint32)
	StencilMask(mask uint32)
	StencilOp(fail, zfail, zpass StencilAction)
	BlendFunc(src, dst BlendFactor)
	BlendEquation(eq BlendEquation)
	BlendColor(r, g, b, a float32)

	// Draw submission.
	DrawArrays(mode Primitive, first, count int)
	DrawElements(mode Primitive, count int, kind DataType, offset int)
	DrawArraysInstanced(mode Primitive, first, count, instances int)
	DrawElementsInstanced(mode Primitive, count int, kind DataType, offset, instances int)

	// Synchronization.
	Flush()
	Finish()

	// Close releases backend-held references. Resources still alive are
	// deleted by Context before it calls Close.
	Close()
}
