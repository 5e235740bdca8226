package primitives

import (
	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"
	"github.com/google/uuid"

	"shapes-demo/internal/scene"
)

// cached holds the mesh and material for one shape. Created lazily on first Draw.
// base is the material's own default shader, restored before unloading so the shared lit
// shader is freed once.
type cached struct {
	mesh rl.Mesh
	mtl  rl.Material
	base rl.Shader
}

// Registry owns the GPU resources for scene shapes and the shared lit shader.
// Meshes are created on first use so that GPU resources are allocated after the window/OpenGL
// context exists.
type Registry struct {
	cache  map[uuid.UUID]cached
	shader rl.Shader
	locs   map[string]int32
}

// NewRegistry returns an empty registry. The shader is compiled on the first SetLights call.
func NewRegistry() *Registry {
	return &Registry{
		cache: make(map[uuid.UUID]cached),
		locs:  make(map[string]int32),
	}
}

func (r *Registry) ensureShader() {
	if rl.IsShaderValid(r.shader) {
		return
	}
	r.shader = rl.LoadShaderFromMemory(litVS, litFS)
	for _, name := range uniformNames {
		r.locs[name] = rl.GetShaderLocation(r.shader, name)
	}
}

// genMesh builds the mesh for a shape from its kind and size.
func genMesh(s *scene.Shape) rl.Mesh {
	size := s.Size
	switch s.Kind {
	case scene.KindCube:
		return rl.GenMeshCube(float32(size[0]), float32(size[1]), float32(size[2]))
	case scene.KindSphere:
		return rl.GenMeshSphere(float32(size[0]), sphereRings, sphereSlices)
	case scene.KindTorus:
		// raylib scales a unit-ring torus by size/2, so size is the ring diameter.
		ring, tube := float32(size[0]), float32(size[1])
		return rl.GenMeshTorus(tube/ring, 2*ring, torusRadSeg, torusSides)
	default:
		return rl.GenMeshPlane(float32(size[0]), float32(size[2]), planeResX, planeResZ)
	}
}

func (r *Registry) ensure(s *scene.Shape) cached {
	if c, ok := r.cache[s.ID]; ok {
		return c
	}
	mtl := rl.LoadMaterialDefault()
	base := mtl.Shader
	if rl.IsShaderValid(r.shader) {
		mtl.Shader = r.shader
	}
	c := cached{mesh: genMesh(s), mtl: mtl, base: base}
	r.cache[s.ID] = c
	return c
}

// SetLights uploads the camera position, lights and fog for this frame. Call once per frame
// before Draw.
func (r *Registry) SetLights(viewPos rl.Vector3, l scene.Lights, fog scene.Fog) {
	r.ensureShader()
	if !rl.IsShaderValid(r.shader) {
		return
	}
	d := l.Directional.Position
	dir := [3]float32{float32(d[0]), float32(d[1]), float32(d[2])}
	if n := math32.Sqrt(dir[0]*dir[0] + dir[1]*dir[1] + dir[2]*dir[2]); n > 0 {
		dir[0], dir[1], dir[2] = dir[0]/n, dir[1]/n, dir[2]/n
	}
	p := l.Point.Position

	r.setVec3("viewPos", [3]float32{viewPos.X, viewPos.Y, viewPos.Z})
	r.setVec3("ambient", scaled(l.Ambient.Color, l.Ambient.Intensity))
	r.setVec3("lightDir", dir)
	r.setVec3("lightColor", scaled(l.Directional.Color, l.Directional.Intensity))
	r.setVec3("pointPos", [3]float32{float32(p[0]), float32(p[1]), float32(p[2])})
	r.setVec3("pointColor", scaled(l.Point.Color, l.Point.Intensity))
	r.setFloat("pointRange", float32(l.Point.Distance))
	r.setVec3("fogColor", scaled(fog.Color, 1))
	r.setFloat("fogNear", float32(fog.Near))
	r.setFloat("fogFar", float32(fog.Far))
}

// Draw draws s with its material color, opacity and rotation.
// Must be called between BeginMode3D and EndMode3D.
func (r *Registry) Draw(s *scene.Shape) {
	c := r.ensure(s)
	m := s.Material

	if albedo := c.mtl.GetMap(rl.MapAlbedo); albedo != nil {
		col := m.Color
		col.A = uint8(math32.Round(float32(m.Opacity) * 255))
		albedo.Color = col
	}
	specular := lambertSpecular
	if m.Shading == scene.ShadingPhong {
		specular = phongSpecular
	}
	r.setFloat("specularStrength", specular)
	r.setFloat("specularPower", math32.Max(float32(m.Shininess), 1))

	rot := rl.MatrixRotateXYZ(rl.NewVector3(float32(s.Rotation[0]), float32(s.Rotation[1]), float32(s.Rotation[2])))
	trans := rl.MatrixTranslate(float32(s.Position[0]), float32(s.Position[1]), float32(s.Position[2]))
	rl.DrawMesh(c.mesh, c.mtl, rl.MatrixMultiply(rot, trans))
}

// Unload frees every mesh, material and the shader. Call before closing the window.
func (r *Registry) Unload() {
	for id, c := range r.cache {
		rl.UnloadMesh(&c.mesh)
		c.mtl.Shader = c.base
		rl.UnloadMaterial(c.mtl)
		delete(r.cache, id)
	}
	if rl.IsShaderValid(r.shader) {
		rl.UnloadShader(r.shader)
	}
}

// scaled converts c to linear RGB in [0,1] multiplied by intensity (cgo-safe: returns an array).
func scaled(c interface{ RGBA() (r, g, b, a uint32) }, intensity float64) [3]float32 {
	cr, cg, cb, _ := c.RGBA()
	k := float32(intensity) / 0xffff
	return [3]float32{float32(cr) * k, float32(cg) * k, float32(cb) * k}
}

func (r *Registry) setVec3(name string, v [3]float32) {
	if loc, ok := r.locs[name]; ok && loc >= 0 {
		rl.SetShaderValueV(r.shader, loc, v[:], rl.ShaderUniformVec3, 1)
	}
}

func (r *Registry) setFloat(name string, v float32) {
	if loc, ok := r.locs[name]; ok && loc >= 0 {
		rl.SetShaderValue(r.shader, loc, []float32{v}, rl.ShaderUniformFloat)
	}
}
