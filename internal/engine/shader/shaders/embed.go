// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// SceneVertexShader is the vertex shader for textured scene geometry.
//
//go:embed scene.vert
var SceneVertexShader string

// SceneFragmentShader is the fragment shader for textured scene geometry.
//
//go:embed scene.frag
var SceneFragmentShader string

// CubeVertexShader is the vertex shader for the vertex-coloured cube.
//
//go:embed cube.vert
var CubeVertexShader string

// CubeFragmentShader is the fragment shader for the vertex-coloured cube.
//
//go:embed cube.frag
var CubeFragmentShader string
