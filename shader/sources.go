package shader

// GLSL 120 sources for the built-in vertex-colored pipeline, the newest
// dialect a 2.1 context is guaranteed to accept.

const vertexShaderSource = `#version 120
attribute vec2 in_pos;
attribute vec3 in_color;
varying vec3 v_color;
void main() {
    v_color = in_color;
    gl_Position = vec4(in_pos, 0.0, 1.0);
}
`

const fragmentShaderSource = `#version 120
varying vec3 v_color;
void main() {
    gl_FragColor = vec4(v_color, 1.0);
}
`

// DefaultVertexShader returns the built-in vertex stage source.
func DefaultVertexShader() string {
	return vertexShaderSource
}

// DefaultFragmentShader returns the built-in fragment stage source.
func DefaultFragmentShader() string {
	return fragmentShaderSource
}
