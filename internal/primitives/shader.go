package primitives

// uniformNames are looked up once when the lit shader is compiled.
var uniformNames = []string{
	"viewPos", "ambient", "lightDir", "lightColor",
	"pointPos", "pointColor", "pointRange",
	"fogColor", "fogNear", "fogFar",
	"specularPower", "specularStrength",
}

const (
	litVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 matProjection;
uniform mat4 matView;
uniform mat4 matModel;
out vec3 fragPosition;
out vec3 fragNormal;
void main() {
  vec4 worldPos = matModel * vec4(vertexPosition, 1.0);
  fragPosition = worldPos.xyz;
  fragNormal = mat3(matModel) * vertexNormal;
  gl_Position = matProjection * matView * worldPos;
}
`
	// litFS: ambient + directional + point light with linear falloff, blinn-phong highlight, linear fog.
	litFS = `#version 330
in vec3 fragPosition;
in vec3 fragNormal;
uniform vec4 colDiffuse;
uniform vec3 viewPos;
uniform vec3 ambient;
uniform vec3 lightDir;
uniform vec3 lightColor;
uniform vec3 pointPos;
uniform vec3 pointColor;
uniform float pointRange;
uniform vec3 fogColor;
uniform float fogNear;
uniform float fogFar;
uniform float specularPower;
uniform float specularStrength;
out vec4 finalColor;

vec3 shade(vec3 N, vec3 V, vec3 L, vec3 color, vec3 albedo) {
  float NdotL = max(dot(N, L), 0.0);
  vec3 H = normalize(L + V);
  float spec = pow(max(dot(N, H), 0.0), specularPower) * specularStrength;
  return color * (albedo * NdotL + spec * (NdotL > 0.0 ? 1.0 : 0.0));
}

void main() {
  vec3 albedo = colDiffuse.rgb;
  vec3 N = normalize(fragNormal);
  vec3 V = normalize(viewPos - fragPosition);

  vec3 c = ambient * albedo;
  c += shade(N, V, normalize(lightDir), lightColor, albedo);

  vec3 toPoint = pointPos - fragPosition;
  float falloff = pointRange > 0.0 ? clamp(1.0 - length(toPoint) / pointRange, 0.0, 1.0) : 1.0;
  c += shade(N, V, normalize(toPoint), pointColor * falloff, albedo);

  float depth = length(viewPos - fragPosition);
  float fog = clamp((depth - fogNear) / max(fogFar - fogNear, 0.0001), 0.0, 1.0);
  finalColor = vec4(mix(c, fogColor, fog), colDiffuse.a);
}
`
)
