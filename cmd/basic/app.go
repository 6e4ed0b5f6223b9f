package main

import (
	"github.com/unrust/uni-gl/pkg/gl"
	"github.com/unrust/uni-gl/pkg/logger"
)

// scene holds the GL objects of the demo: one program drawing a single
// orange triangle on a dark background. The shader sources differ per
// build target, the plumbing does not.
type scene struct {
	ctx     *gl.Context
	program gl.Program
	color   gl.UniformLocation
	vbo     gl.Buffer
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

	s.color, err = ctx.GetUniformLocation(program, "uColor")
	if err != nil || !s.color.Valid() {
		log.Fatal().Err(err).Msg("uColor uniform not found")
	}

	if ctx.Caps().VertexArray {
		vao, err := ctx.CreateVertexArray()
		if err != nil {
			log.Fatal().Err(err).Msg("vertex array creation failed")
		}
		_ = ctx.BindVertexArray(vao)
	}

	s.vbo, err = ctx.CreateBuffer()
	if err != nil {
		log.Fatal().Err(err).Msg("buffer creation failed")
	}
	_ = ctx.BindBuffer(gl.ArrayBuffer, s.vbo)
	ctx.BufferData(gl.ArrayBuffer, gl.Float32Bytes(
		0, 0.5,
		-0.5, -0.5,
		0.5, -0.5,
	), gl.StaticDraw)

	loc, ok, err := ctx.GetAttribLocation(program, "aPosition")
	if err != nil || !ok {
		log.Fatal().Err(err).Msg("aPosition attribute not found")
	}
	ctx.EnableVertexAttribArray(loc)
	ctx.VertexAttribPointer(loc, 2, gl.Float, false, 0, 0)

	ctx.Viewport(0, 0, width, height)
	ctx.ClearColor(0.2, 0.2, 0.3, 1)
	return s
}

func (s *scene) frame() {
	s.ctx.Clear(gl.ColorBufferBit)
	_ = s.ctx.Uniform4f(s.color, 1, 0.5, 0, 1)
	s.ctx.DrawArrays(gl.Triangles, 0, 3)
}

func compile(ctx *gl.Context, log *logger.Logger, kind gl.ShaderKind, source string) gl.Shader {
	s, err := ctx.CreateShader(kind)
	if err != nil {
		log.Fatal().Err(err).Msg("shader creation failed")
	}
	_ = ctx.ShaderSource(s, source)
	if err := ctx.CompileShader(s); err != nil {
		log.Fatal().Err(err).Str("kind", kind.String()).Msg("shader compile failed")
	}
	return s
}
