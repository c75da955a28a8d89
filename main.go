package main

import (
	"log"
	"runtime"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Reese-Thurman/CS-330/engine"
	"github.com/Reese-Thurman/CS-330/scene"
)

func init() {
	// GLFW event handling must run on the main OS thread.
	runtime.LockOSThread()
}

func main() {
	settings, err := LoadSettings("stilllife.yaml")
	if err != nil {
		log.Fatalf("settings: %v", err)
	}

	window, err := engine.NewWindow(settings.Title, settings.Width, settings.Height)
	if err != nil {
		log.Fatalf("window: %v", err)
	}
	defer window.Dispose()

	program, err := engine.NewProgram(engine.VertexShader, engine.FragmentShader, engine.SceneUniforms())
	if err != nil {
		log.Fatalf("shaders: %v", err)
	}
	defer program.Dispose()
	program.Use()

	textures := engine.NewTextureRegistry(engine.GLUploader{})
	defer textures.ReleaseAll()

	meshes := engine.NewMeshLibrary()
	defer meshes.Dispose()

	manager := scene.NewManager(program, meshes, textures)
	manager.PrepareScene(settings.AssetDir)

	camera := engine.NewCamera(mgl32.Vec3{0, 5, 20}, settings.CameraSpeed)
	window.GLFW().SetInputMode(glfw.CursorMode, glfw.CursorDisabled)
	window.GLFW().SetCursorPosCallback(func(_ *glfw.Window, x, y float64) {
		camera.OnMouseMove(x, y)
	})
	window.GLFW().SetScrollCallback(func(_ *glfw.Window, _, yoff float64) {
		camera.OnScroll(yoff)
	})

	lastFrame := glfw.GetTime()
	for window.Running() {
		now := glfw.GetTime()
		dt := float32(now - lastFrame)
		lastFrame = now

		if window.GLFW().GetKey(glfw.KeyEscape) == glfw.Press {
			window.Close()
		}
		camera.ProcessKeys(window.GLFW(), dt)

		window.Clear()
		program.SetMat4("view", camera.View())
		program.SetMat4("projection", camera.Projection(window.Aspect()))
		program.SetVec3("viewPosition", camera.Position)
		manager.RenderScene()
		window.Update()
	}
}
