package gl

// Backend-neutral GL vocabulary.
//
// OpenGL and WebGL share their enum values, so each neutral constant below
// carries the native bit pattern for both backends and the mapping is the
// identity. Callers never pass raw numbers; every operation takes one of
// these types.

// BufferBit selects which buffers a Clear call affects. Bits compose with
// bitwise OR and decompose without loss, see Split.
type BufferBit uint32

const (
	DepthBufferBit   BufferBit = 0x00000100
	StencilBufferBit BufferBit = 0x00000400
	ColorBufferBit   BufferBit = 0x00004000
)

// Has reports whether all bits of b2 are set in b.
func (b BufferBit) Has(b2 BufferBit) bool { return b&b2 == b2 }

// Split decomposes a composed mask into its individual bits, in a fixed
// color, depth, stencil order.
func (b BufferBit) Split() []BufferBit {
	var bits []BufferBit
	for _, bit := range []BufferBit{ColorBufferBit, DepthBufferBit, StencilBufferBit} {
		if b.Has(bit) {
			bits = append(bits, bit)
		}
	}
	return bits
}

func (b BufferBit) String() string {
	switch b {
	case ColorBufferBit:
		return "color"
	case DepthBufferBit:
		return "depth"
	case StencilBufferBit:
		return "stencil"
	}
	s := ""
	for _, bit := range b.Split() {
		if s != "" {
			s += "|"
		}
		s += bit.String()
	}
	if s == "" {
		return "none"
	}
	return s
}

// BufferKind is a buffer binding target.
type BufferKind uint32

const (
	ArrayBuffer        BufferKind = 0x8892
	ElementArrayBuffer BufferKind = 0x8893
)

// DrawMode hints how often buffer contents will change.
type DrawMode uint32

const (
	StreamDraw  DrawMode = 0x88E0
	StaticDraw  DrawMode = 0x88E4
	DynamicDraw DrawMode = 0x88E8
)

// Primitive is a draw-call primitive type.
type Primitive uint32

const (
	Points        Primitive = 0x0000
	Lines         Primitive = 0x0001
	LineLoop      Primitive = 0x0002
	LineStrip     Primitive = 0x0003
	Triangles     Primitive = 0x0004
	TriangleStrip Primitive = 0x0005
	TriangleFan   Primitive = 0x0006
)

// DataType describes vertex attribute and index element encodings.
type DataType uint32

const (
	Byte          DataType = 0x1400
	UnsignedByte  DataType = 0x1401
	Short         DataType = 0x1402
	UnsignedShort DataType = 0x1403
	Int           DataType = 0x1404
	UnsignedInt   DataType = 0x1405
	Float         DataType = 0x1406
)

// ShaderKind is a shader stage.
type ShaderKind uint32

const (
	FragmentShader ShaderKind = 0x8B30
	VertexShader   ShaderKind = 0x8B31
)

func (k ShaderKind) String() string {
	if k == VertexShader {
		return "vertex"
	}
	return "fragment"
}

// ShaderParameter selects a program introspection value for
// GetProgramParameter.
type ShaderParameter uint32

const (
	DeleteStatus             ShaderParameter = 0x8B80
	CompileStatus            ShaderParameter = 0x8B81
	LinkStatus               ShaderParameter = 0x8B82
	ValidateStatus           ShaderParameter = 0x8B83
	AttachedShaders          ShaderParameter = 0x8B85
	ActiveAttributes         ShaderParameter = 0x8B89
	ActiveUniforms           ShaderParameter = 0x8B86
	ActiveAttributeMaxLength ShaderParameter = 0x8B8A
	ActiveUniformMaxLength   ShaderParameter = 0x8B87
)

// Flag is a GL capability toggled with Enable and Disable.
type Flag uint32

const (
	CullFaceTest      Flag = 0x0B44
	DepthTest         Flag = 0x0B71
	StencilTest       Flag = 0x0B90
	Dither            Flag = 0x0BD0
	Blend             Flag = 0x0BE2
	ScissorTest       Flag = 0x0C11
	PolygonOffsetFill Flag = 0x8037
	SampleCoverage    Flag = 0x80A0
)

// Culling selects which polygon faces are discarded by face culling.
type Culling uint32

const (
	Front        Culling = 0x0404
	Back         Culling = 0x0405
	FrontAndBack Culling = 0x0408
)

// CompareFunc is a comparison used by both the depth test and the stencil
// test.
type CompareFunc uint32

const (
	Never        CompareFunc = 0x0200
	Less         CompareFunc = 0x0201
	Equal        CompareFunc = 0x0202
	LessEqual    CompareFunc = 0x0203
	Greater      CompareFunc = 0x0204
	NotEqual     CompareFunc = 0x0205
	GreaterEqual CompareFunc = 0x0206
	Always       CompareFunc = 0x0207
)

// StencilAction is applied to the stencil buffer depending on the test
// outcome, see StencilOp.
type StencilAction uint32

const (
	ZeroAction    StencilAction = 0x0000
	Keep          StencilAction = 0x1E00
	Replace       StencilAction = 0x1E01
	Increment     StencilAction = 0x1E02
	Decrement     StencilAction = 0x1E03
	Invert        StencilAction = 0x150A
	IncrementWrap StencilAction = 0x8507
	DecrementWrap StencilAction = 0x8508
)

// BlendFactor scales source or destination colors during blending.
type BlendFactor uint32

const (
	Zero                  BlendFactor = 0x0000
	One                   BlendFactor = 0x0001
	SrcColor              BlendFactor = 0x0300
	OneMinusSrcColor      BlendFactor = 0x0301
	SrcAlpha              BlendFactor = 0x0302
	OneMinusSrcAlpha      BlendFactor = 0x0303
	DstAlpha              BlendFactor = 0x0304
	OneMinusDstAlpha      BlendFactor = 0x0305
	DstColor              BlendFactor = 0x0306
	OneMinusDstColor      BlendFactor = 0x0307
	SrcAlphaSaturate      BlendFactor = 0x0308
	ConstantColor         BlendFactor = 0x8001
	OneMinusConstantColor BlendFactor = 0x8002
	ConstantAlpha         BlendFactor = 0x8003
	OneMinusConstantAlpha BlendFactor = 0x8004
)

// BlendEquation combines scaled source and destination colors.
type BlendEquation uint32

const (
	FuncAdd             BlendEquation = 0x8006
	FuncSubtract        BlendEquation = 0x800A
	FuncReverseSubtract BlendEquation = 0x800B
)

// TextureKind is a texture binding target.
type TextureKind uint32

const (
	Texture2D      TextureKind = 0x0DE1
	TextureCubeMap TextureKind = 0x8513
)

// TextureBindPoint is an upload target for two-dimensional image data,
// either the 2D texture or one cube map face.
type TextureBindPoint uint32

const (
	TextureBindPoint2D      TextureBindPoint = 0x0DE1
	TextureCubeMapPositiveX TextureBindPoint = 0x8515
	TextureCubeMapNegativeX TextureBindPoint = 0x8516
	TextureCubeMapPositiveY TextureBindPoint = 0x8517
	TextureCubeMapNegativeY TextureBindPoint = 0x8518
	TextureCubeMapPositiveZ TextureBindPoint = 0x8519
	TextureCubeMapNegativeZ TextureBindPoint = 0x851A
)

// TextureParameter is a per-texture sampling parameter.
type TextureParameter uint32

const (
	TextureMagFilter TextureParameter = 0x2800
	TextureMinFilter TextureParameter = 0x2801
	TextureWrapS     TextureParameter = 0x2802
	TextureWrapT     TextureParameter = 0x2803
	TextureWrapR     TextureParameter = 0x8072
)

// Texture filter and wrap values for TexParameteri.
const (
	Nearest              = 0x2600
	Linear               = 0x2601
	NearestMipmapNearest = 0x2700
	LinearMipmapNearest  = 0x2701
	NearestMipmapLinear  = 0x2702
	LinearMipmapLinear   = 0x2703
	Repeat               = 0x2901
	ClampToEdge          = 0x812F
	MirroredRepeat       = 0x8370
)

// TextureCompression is a compressed texture internal format
// (S3TC/DXT family).
type TextureCompression uint32

const (
	RgbDxt1  TextureCompression = 0x83F0
	RgbaDxt1 TextureCompression = 0x83F1
	RgbaDxt3 TextureCompression = 0x83F2
	RgbaDxt5 TextureCompression = 0x83F3
)

// PixelFormat describes the component layout of pixel data.
type PixelFormat uint32

const (
	DepthComponent PixelFormat = 0x1902
	Alpha          PixelFormat = 0x1906
	RGB            PixelFormat = 0x1907
	RGBA           PixelFormat = 0x1908
	Luminance      PixelFormat = 0x1909
	LuminanceAlpha PixelFormat = 0x190A
)

// PixelType describes the per-component encoding of pixel data.
type PixelType uint32

const (
	PixelUnsignedByte      PixelType = 0x1401
	PixelUnsignedShort565  PixelType = 0x8363
	PixelUnsignedShort4444 PixelType = 0x8033
	PixelUnsignedShort5551 PixelType = 0x8034
	PixelFloat             PixelType = 0x1406
)

// PixelStorage selects a pixel transfer alignment or conversion mode.
type PixelStorage uint32

const (
	PackAlignment   PixelStorage = 0x0D05
	UnpackAlignment PixelStorage = 0x0CF5
	// Web backend only; the native driver has no equivalent modes.
	UnpackFlipYWebGL            PixelStorage = 0x9240
	UnpackPremultiplyAlphaWebGL PixelStorage = 0x9241
)

// FramebufferTarget is a framebuffer binding target.
type FramebufferTarget uint32

const (
	TargetFramebuffer     FramebufferTarget = 0x8D40
	TargetReadFramebuffer FramebufferTarget = 0x8CA8
	TargetDrawFramebuffer FramebufferTarget = 0x8CA9
)

// Attachment is a framebuffer attachment point.
type Attachment uint32

const (
	ColorAttachment0       Attachment = 0x8CE0
	ColorAttachment1       Attachment = 0x8CE1
	ColorAttachment2       Attachment = 0x8CE2
	ColorAttachment3       Attachment = 0x8CE3
	DepthAttachment        Attachment = 0x8D00
	StencilAttachment      Attachment = 0x8D20
	DepthStencilAttachment Attachment = 0x821A
)

// ColorBuffer names a draw buffer for DrawBuffers.
type ColorBuffer uint32

const (
	ColorBufferNone ColorBuffer = 0x0000
	BackBuffer      ColorBuffer = 0x0405
	DrawBuffer0     ColorBuffer = 0x8CE0
	DrawBuffer1     ColorBuffer = 0x8CE1
	DrawBuffer2     ColorBuffer = 0x8CE2
	DrawBuffer3     ColorBuffer = 0x8CE3
)
