package gl

// handle identifies one driver-side resource. ctx is the identity of the
// Context that issued it, id the per-context sequence number; the pair is
// what makes handles comparable and scopes them to their context. The
// backend-side name is kept in the context registry, never in the handle,
// so a recycled driver name can not revive a deleted handle.
type handle struct {
	ctx uint32
	id  uint32
}

func (h handle) valid() bool { return h != handle{} }

// Buffer is a GL buffer created with Context.CreateBuffer.
//
// Buffers store vertex attributes (position, normal, uv coordinates) and
// indexes for indexed rendering.
type Buffer struct{ h handle }

// Shader is one shader stage created with Context.CreateShader.
type Shader struct{ h handle }

// Program is a linked shader program created with Context.CreateProgram.
// It is built from a vertex shader and a fragment shader.
type Program struct{ h handle }

// Texture is a texture object created with Context.CreateTexture.
type Texture struct{ h handle }

// Framebuffer is an off-screen render target created with
// Context.CreateFramebuffer.
type Framebuffer struct{ h handle }

// VertexArray is a vertex array object created with
// Context.CreateVertexArray. Vertex array objects store all the state
// needed to supply vertex data.
type VertexArray struct{ h handle }

// UniformLocation references a uniform variable inside a linked program,
// obtained with Context.GetUniformLocation.
type UniformLocation struct {
	h    handle
	name string
}

// Valid reports whether the handle was issued by a Context. It does not
// track deletion; using a deleted handle yields ErrInvalidHandle.
func (b Buffer) Valid() bool      { return b.h.valid() }
func (s Shader) Valid() bool      { return s.h.valid() }
func (p Program) Valid() bool     { return p.h.valid() }
func (t Texture) Valid() bool     { return t.h.valid() }
func (f Framebuffer) Valid() bool { return f.h.valid() }
func (v VertexArray) Valid() bool { return v.h.valid() }

func (u UniformLocation) Valid() bool { return u.h.valid() }

// Name returns the uniform variable name the location was resolved from.
func (u UniformLocation) Name() string { return u.name }
