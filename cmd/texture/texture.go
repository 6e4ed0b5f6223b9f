package main

import (
	"image"
	"image/color"
	stddraw "image/draw"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/unrust/uni-gl/pkg/gl"
	"github.com/unrust/uni-gl/pkg/logger"
)

const texSize = 256

// makeTexture builds the demo texture: an 8x8 checkerboard scaled up
// with nearest-neighbour interpolation, with a label stamped on top.
func makeTexture() *image.RGBA {
	board := image.NewRGBA(image.Rect(0, 0, 8, 8))
	light := color.RGBA{R: 230, G: 230, B: 230, A: 255}
	dark := color.RGBA{R: 60, G: 60, B: 90, A: 255}
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			c := light
			if (x+y)%2 == 0 {
				c = dark
			}
			board.SetRGBA(x, y, c)
		}
	}

	out := image.NewRGBA(image.Rect(0, 0, texSize, texSize))
	draw.NearestNeighbor.Scale(out, out.Bounds(), board, board.Bounds(), draw.Src, nil)
	addLabel(out, 8, 8, "uni-gl")
	return out
}

func addLabel(img *image.RGBA, x, y int, label string) {
	stddraw.Draw(img, image.Rect(x, y, x+len(label)*7+3, y+12),
		&image.Uniform{C: color.RGBA{A: 255}}, image.Point{}, stddraw.Src)
	(&font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(color.RGBA{R: 255, G: 165, B: 0, A: 255}),
		Face: basicfont.Face7x13,
		Dot:  fixed.Point26_6{X: fixed.Int26_6((x + 2) * 64), Y: fixed.Int26_6((y + 10) * 64)},
	}).DrawString(label)
}

// scene draws one textured quad covering most of the viewport.
type scene struct {
	ctx     *gl.Context
	program gl.Program
	sampler gl.UniformLocation
	tex     gl.Texture
}

func newScene(ctx *gl.Context, log *logger.Logger, vertexSrc, fragmentSrc string, width, height int) *scene {
	s := &scene{ctx: ctx}

	vs := compile(ctx, log, gl.VertexShader, vertexSrc)
	fs := compile(ctx, log, gl.FragmentShader, fragmentSrc)

	program, err := ctx.CreateProgram()
	if err != nil {
		log.Fatal().Err(err).Msg("program creation failed")
	}
	_ = ctx.AttachShader(program, vs)
	_ = ctx.AttachShader(program, fs)
	if err := ctx.LinkProgram(program); err != nil {
		log.Fatal().Err(err).Msg("program link failed")
	}
	_ = ctx.DeleteShader(vs)
	_ = ctx.DeleteShader(fs)
	_ = ctx.UseProgram(program)
	s.program = program

	s.sampler, err = ctx.GetUniformLocation(program, "uTexture")
	if err != nil || !s.sampler.Valid() {
		log.Fatal().Err(err).Msg("uTexture uniform not found")
	}

	if ctx.Caps().VertexArray {
		vao, err := ctx.CreateVertexArray()
		if err != nil {
			log.Fatal().Err(err).Msg("vertex array creation failed")
		}
		_ = ctx.BindVertexArray(vao)
	}

	// Interleaved x, y, u, v.
	vbo, err := ctx.CreateBuffer()
	if err != nil {
		log.Fatal().Err(err).Msg("buffer creation failed")
	}
	_ = ctx.BindBuffer(gl.ArrayBuffer, vbo)
	ctx.BufferData(gl.ArrayBuffer, gl.Float32Bytes(
		-0.8, 0.8, 0, 0,
		-0.8, -0.8, 0, 1,
		0.8, -0.8, 1, 1,
		0.8, 0.8, 1, 0,
	), gl.StaticDraw)

	ibo, err := ctx.CreateBuffer()
	if err != nil {
		log.Fatal().Err(err).Msg("buffer creation failed")
	}
	_ = ctx.BindBuffer(gl.ElementArrayBuffer, ibo)
	ctx.BufferData(gl.ElementArrayBuffer, gl.Uint16Bytes(0, 1, 2, 0, 2, 3), gl.StaticDraw)

	pos, ok, err := ctx.GetAttribLocation(program, "aPosition")
	if err != nil || !ok {
		log.Fatal().Err(err).Msg("aPosition attribute not found")
	}
	uv, ok, err := ctx.GetAttribLocation(program, "aTexCoord")
	if err != nil || !ok {
		log.Fatal().Err(err).Msg("aTexCoord attribute not found")
	}
	ctx.EnableVertexAttribArray(pos)
	ctx.VertexAttribPointer(pos, 2, gl.Float, false, 16, 0)
	ctx.EnableVertexAttribArray(uv)
	ctx.VertexAttribPointer(uv, 2, gl.Float, false, 16, 8)

	img := makeTexture()
	s.tex, err = ctx.CreateTexture()
	if err != nil {
		log.Fatal().Err(err).Msg("texture creation failed")
	}
	ctx.ActiveTexture(0)
	_ = ctx.BindTexture(s.tex)
	ctx.PixelStorei(gl.UnpackAlignment, 1)
	ctx.TexImage2D(gl.TextureBindPoint2D, 0, texSize, texSize, gl.RGBA, gl.PixelUnsignedByte, img.Pix)
	ctx.TexParameteri(gl.Texture2D, gl.TextureMinFilter, gl.LinearMipmapLinear)
	ctx.TexParameteri(gl.Texture2D, gl.TextureMagFilter, gl.Linear)
	ctx.TexParameteri(gl.Texture2D, gl.TextureWrapS, gl.ClampToEdge)
	ctx.TexParameteri(gl.Texture2D, gl.TextureWrapT, gl.ClampToEdge)
	ctx.GenerateMipmap()

	ctx.Viewport(0, 0, width, height)
	ctx.ClearColor(0.1, 0.1, 0.15, 1)
	return s
}

func (s *scene) frame() {
	s.ctx.Clear(gl.ColorBufferBit)
	_ = s.ctx.Uniform1i(s.sampler, 0)
	s.ctx.DrawElements(gl.Triangles, 6, gl.UnsignedShort, 0)
}

func compile(ctx *gl.Context, log *logger.Logger, kind gl.ShaderKind, source string) gl.Shader {
	sh, err := ctx.CreateShader(kind)
	if err != nil {
		log.Fatal().Err(err).Msg("shader creation failed")
	}
	_ = ctx.ShaderSource(sh, source)
	if err := ctx.CompileShader(sh); err != nil {
		log.Fatal().Err(err).Str("kind", kind.String()).Msg("shader compile failed")
	}
	return sh
}
