package engine

import (
	"strings"
	"testing"
)

func TestLightUniform(t *testing.T) {
	if got := LightUniform(2); got != "lightSources[2]" {
		t.Errorf("LightUniform(2) = %q", got)
	}
}

func TestSceneUniformsCoverShaderInterface(t *testing.T) {
	names := map[string]bool{}
	for _, n := range SceneUniforms() {
		if names[n] {
			t.Errorf("duplicate uniform %q", n)
		}
		names[n] = true
	}

	for _, n := range []string{
		"model", "view", "projection", "UVscale",
		"bUseTexture", "bUseLighting", "objectColor", "objectTexture",
		"viewPosition", "material.shininess",
		"lightSources[0].position", "lightSources[3].specularIntensity",
	} {
		if !names[n] {
			t.Errorf("SceneUniforms missing %q", n)
		}
	}
}

func TestShaderSourcesDeclareUniforms(t *testing.T) {
	// every uniform the program resolves must appear in one of the sources
	sources := VertexShader + FragmentShader
	for _, n := range []string{"model", "view", "projection", "UVscale",
		"bUseTexture", "bUseLighting", "objectColor", "objectTexture",
		"viewPosition", "lightSources", "material"} {
		if !strings.Contains(sources, n) {
			t.Errorf("shader sources missing %q", n)
		}
	}
}
