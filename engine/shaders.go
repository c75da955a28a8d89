package engine

import "fmt"

// Shader sources for the still-life pipeline. One program renders every
// object; per-draw state is pushed through the uniforms below.

const (
	TotalLights = 4

	VertexShader = `
		#version 330 core

		layout(location = 0) in vec3 vertexPosition;
		layout(location = 1) in vec3 vertexNormal;
		layout(location = 2) in vec2 vertexUV;

		uniform mat4 model;
		uniform mat4 view;
		uniform mat4 projection;
		uniform vec2 UVscale;

		out vec3 fragmentPosition;
		out vec3 fragmentNormal;
		out vec2 fragmentUV;

		void main() {
			gl_Position = projection * view * model * vec4(vertexPosition, 1.0);

			// worldspace position and normal for lighting
			fragmentPosition = vec3(model * vec4(vertexPosition, 1.0));
			fragmentNormal = mat3(transpose(inverse(model))) * vertexNormal;

			fragmentUV = vertexUV * UVscale;
		}`

	FragmentShader = `
		#version 330 core

		in vec3 fragmentPosition;
		in vec3 fragmentNormal;
		in vec2 fragmentUV;

		struct Material {
			vec3 ambientColor;
			float ambientStrength;
			vec3 diffuseColor;
			vec3 specularColor;
			float shininess;
		};

		struct LightSource {
			vec3 position;
			vec3 ambientColor;
			vec3 diffuseColor;
			vec3 specularColor;
			float focalStrength;
			float specularIntensity;
		};

		#define TOTAL_LIGHTS 4

		uniform bool bUseTexture;
		uniform bool bUseLighting;
		uniform vec4 objectColor;
		uniform sampler2D objectTexture;
		uniform vec3 viewPosition;
		uniform Material material;
		uniform LightSource lightSources[TOTAL_LIGHTS];

		out vec4 outFragmentColor;

		vec3 shadeLight(LightSource light, vec3 normal, vec3 viewDir) {
			vec3 lightDir = normalize(light.position - fragmentPosition);
			vec3 reflectDir = reflect(-lightDir, normal);

			float diff = max(dot(normal, lightDir), 0.0);
			float spec = pow(max(dot(viewDir, reflectDir), 0.0), light.focalStrength);

			vec3 ambient = light.ambientColor * material.ambientStrength * material.ambientColor;
			vec3 diffuse = light.diffuseColor * diff * material.diffuseColor;
			vec3 specular = light.specularColor * light.specularIntensity * spec * material.shininess * material.specularColor;

			return ambient + diffuse + specular;
		}

		void main() {
			vec4 base;
			if (bUseTexture) {
				base = texture(objectTexture, fragmentUV);
			} else {
				base = objectColor;
			}

			if (!bUseLighting) {
				outFragmentColor = base;
				return;
			}

			vec3 normal = normalize(fragmentNormal);
			vec3 viewDir = normalize(viewPosition - fragmentPosition);

			vec3 lit = vec3(0.0);
			for (int i = 0; i < TOTAL_LIGHTS; i++) {
				lit += shadeLight(lightSources[i], normal, viewDir);
			}

			outFragmentColor = vec4(lit, 1.0) * base;
		}`
)

// SceneUniforms lists every uniform the scene and the render-loop driver
// write, so the program can resolve their locations once at link time.
func SceneUniforms() []string {
	names := []string{
		"model",
		"view",
		"projection",
		"UVscale",
		"bUseTexture",
		"bUseLighting",
		"objectColor",
		"objectTexture",
		"viewPosition",
		"material.ambientColor",
		"material.ambientStrength",
		"material.diffuseColor",
		"material.specularColor",
		"material.shininess",
	}
	for i := 0; i < TotalLights; i++ {
		prefix := LightUniform(i)
		names = append(names,
			prefix+".position",
			prefix+".ambientColor",
			prefix+".diffuseColor",
			prefix+".specularColor",
			prefix+".focalStrength",
			prefix+".specularIntensity",
		)
	}
	return names
}

// LightUniform returns the GLSL name of the i'th light source struct.
func LightUniform(i int) string {
	return fmt.Sprintf("lightSources[%d]", i)
}
