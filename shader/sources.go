package shader

// Triangle shaders: position at location 0, color at location 1, rotated by
// the projection uniform.
const TriangleVertexSource = `#version 400

layout (location = 0) in vec3 data;
layout (location = 1) in vec3 col;

uniform mat4 projection;

out vec4 fg_col;

void main() {
    gl_Position = projection * vec4(data, 1.0f);
    fg_col = vec4(col, 1.0);
}
`

const TriangleFragmentSource = `#version 400
in vec4 fg_col;
out vec4 colour;

void main() {
    colour = fg_col;
}
`

// QuadVertexSource passes the full-screen quad through and hands the fragment
// stage a 0..1 uv.
const QuadVertexSource = `#version 410 core
layout (location = 0) in vec2 in_vert;
out vec2 frag_uv;
void main() {
    frag_uv = in_vert * 0.5 + 0.5;
    gl_Position = vec4(in_vert, 0.0, 1.0);
}
`

// QuadFragmentSource is used when no fragment file is configured.
const QuadFragmentSource = `#version 410 core
in vec2 frag_uv;
out vec4 fragColor;

uniform float iTime;
uniform vec2  iResolution;

void main() {
    vec3 col = 0.5 + 0.5 * cos(iTime + frag_uv.xyx + vec3(0.0, 2.0, 4.0));
    fragColor = vec4(col, 1.0);
}
`

// Uniform names shared by the demos.
const (
	UniformProjection = "projection"
	UniformTime       = "iTime"
	UniformResolution = "iResolution"
)
