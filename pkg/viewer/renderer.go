package viewer

import (
	"image"
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/geomkit/geomkit/pkg/geometry"
	"github.com/geomkit/geomkit/pkg/model"
)

// SceneRenderer renders a measurement scene: an optional model mesh as
// wireframe or shaded solid, plus line overlays, segments and markers
type SceneRenderer struct {
	widget.BaseWidget
	scene          *Scene
	camera         *Camera
	solid          bool
	shaded         *canvas.Image
	wireframe      []*canvas.Line
	overlays       []*canvas.Line
	pointMarkers   []*canvas.Circle
	selectedPoints []geometry.Vector3
	dragStart      *fyne.Position
	isDragging     bool
	width          float64
	height         float64
	onPointSelect  func(point geometry.Vector3)
}

// NewSceneRenderer creates a new scene renderer
func NewSceneRenderer(scene *Scene) *SceneRenderer {
	r := &SceneRenderer{
		scene:          scene,
		camera:         NewCamera(scene.Bounds()),
		wireframe:      make([]*canvas.Line, 0),
		overlays:       make([]*canvas.Line, 0),
		pointMarkers:   make([]*canvas.Circle, 0),
		selectedPoints: make([]geometry.Vector3, 0),
	}
	r.ExtendBaseWidget(r)
	return r
}

// SetOnPointSelect sets the callback for when a point is selected
func (r *SceneRenderer) SetOnPointSelect(callback func(point geometry.Vector3)) {
	r.onPointSelect = callback
}

// SetModel swaps the rendered model and refits the camera
func (r *SceneRenderer) SetModel(m *model.Model) {
	r.scene.Model = m
	r.camera = NewCamera(r.scene.Bounds())
	r.Render(r.width, r.height)
}

// SetSolid switches between wireframe and shaded rendering
func (r *SceneRenderer) SetSolid(solid bool) {
	r.solid = solid
	r.Render(r.width, r.height)
}

// CreateRenderer creates the renderer for the widget
func (r *SceneRenderer) CreateRenderer() fyne.WidgetRenderer {
	return &sceneWidgetRenderer{
		renderer: r,
		objects:  []fyne.CanvasObject{},
	}
}

// Render updates the 3D view
func (r *SceneRenderer) Render(width, height float64) {
	if width <= 0 || height <= 0 {
		return
	}
	r.width = width
	r.height = height

	r.wireframe = make([]*canvas.Line, 0)
	r.shaded = nil

	if r.scene.Model != nil {
		if r.solid {
			r.renderSolid(width, height)
		} else {
			r.renderWireframe(width, height)
		}
	}

	r.renderOverlays(width, height)
	r.updatePointMarkers()

	r.Refresh()
}

// renderWireframe draws all triangle edges with depth-based shading
func (r *SceneRenderer) renderWireframe(width, height float64) {
	for _, triangle := range r.scene.Model.Triangles {
		vertices := []geometry.Vector3{triangle.V1, triangle.V2, triangle.V3}

		for i := 0; i < 3; i++ {
			v1 := vertices[i]
			v2 := vertices[(i+1)%3]

			x1, y1, z1 := r.camera.Project(v1, width, height)
			x2, y2, z2 := r.camera.Project(v2, width, height)

			// Simple depth-based color
			avgZ := (z1 + z2) / 2
			brightness := uint8(math.Max(50, math.Min(255, 100+avgZ*5)))

			line := canvas.NewLine(color.RGBA{brightness, brightness, brightness, 255})
			line.StrokeWidth = 1
			line.Position1 = fyne.NewPos(float32(x1), float32(y1))
			line.Position2 = fyne.NewPos(float32(x2), float32(y2))

			r.wireframe = append(r.wireframe, line)
		}
	}
}

// renderSolid rasterizes the model into an image with depth testing and
// normal-based shading
func (r *SceneRenderer) renderSolid(width, height float64) {
	w, h := int(width), int(height)
	if w <= 0 || h <= 0 {
		return
	}

	img := image.NewRGBA(image.Rect(0, 0, w, h))
	zbuffer := make([]float64, w*h)
	for i := range zbuffer {
		zbuffer[i] = math.MaxFloat64
	}

	view := unitOrZero(r.camera.Target.Sub(r.camera.Position))

	for _, triangle := range r.scene.Model.Triangles {
		x1, y1, z1 := r.camera.Project(triangle.V1, width, height)
		x2, y2, z2 := r.camera.Project(triangle.V2, width, height)
		x3, y3, z3 := r.camera.Project(triangle.V3, width, height)

		normal := unitOrZero(triangle.Normal)
		if normal.LengthSquared() == 0 {
			if n, err := triangle.CalculateNormal(); err == nil {
				normal = n
			}
		}

		intensity := math.Abs(normal.Dot(view))
		gray := uint8(70 + intensity*160)

		fillTriangleWithDepth(img, zbuffer,
			x1, y1, z1, x2, y2, z2, x3, y3, z3,
			color.RGBA{gray, gray, gray, 255})
	}

	r.shaded = canvas.NewImageFromImage(img)
	r.shaded.FillMode = canvas.ImageFillStretch
	r.shaded.Resize(fyne.NewSize(float32(width), float32(height)))
}

// renderOverlays draws the scene's infinite lines clipped to the scene
// extent, plus any straight segments
func (r *SceneRenderer) renderOverlays(width, height float64) {
	r.overlays = make([]*canvas.Line, 0)
	clip := r.scene.clipBounds()

	lineColors := []color.RGBA{
		{80, 140, 255, 255}, // Blue for the first line
		{80, 210, 120, 255}, // Green for the second line
	}

	for i, l := range r.scene.Lines {
		entry, exit, ok := clip.IntersectLine(l)
		if !ok {
			continue
		}
		r.overlays = append(r.overlays, r.projectedLine(entry, exit,
			lineColors[i%len(lineColors)], 2, width, height))
	}

	for _, seg := range r.scene.Segments {
		r.overlays = append(r.overlays, r.projectedLine(seg[0], seg[1],
			color.RGBA{255, 170, 40, 255}, 2, width, height))
	}
}

// projectedLine builds a canvas line between the projections of two
// world-space points
func (r *SceneRenderer) projectedLine(from, to geometry.Vector3, col color.RGBA, strokeWidth float32, width, height float64) *canvas.Line {
	x1, y1, _ := r.camera.Project(from, width, height)
	x2, y2, _ := r.camera.Project(to, width, height)

	line := canvas.NewLine(col)
	line.StrokeWidth = strokeWidth
	line.Position1 = fyne.NewPos(float32(x1), float32(y1))
	line.Position2 = fyne.NewPos(float32(x2), float32(y2))
	return line
}

// updatePointMarkers updates the visual markers for scene and selected
// points
func (r *SceneRenderer) updatePointMarkers() {
	r.pointMarkers = make([]*canvas.Circle, 0)

	for _, point := range r.scene.Points {
		r.pointMarkers = append(r.pointMarkers,
			r.marker(point, color.RGBA{90, 200, 240, 255}, 8))
	}

	colors := []color.Color{
		color.RGBA{255, 0, 0, 255}, // Red for first point
		color.RGBA{0, 255, 0, 255}, // Green for second point
	}

	for i, point := range r.selectedPoints {
		r.pointMarkers = append(r.pointMarkers,
			r.marker(point, colors[i%len(colors)], 10))
	}
}

// marker builds a circle marker at the projection of a world-space point
func (r *SceneRenderer) marker(point geometry.Vector3, col color.Color, size float32) *canvas.Circle {
	x, y, _ := r.camera.Project(point, r.width, r.height)

	marker := canvas.NewCircle(col)
	marker.StrokeColor = color.White
	marker.StrokeWidth = 2
	marker.Resize(fyne.NewSize(size, size))
	marker.Move(fyne.NewPos(float32(x)-size/2, float32(y)-size/2))
	return marker
}

// Dragged handles mouse drag events for rotation
func (r *SceneRenderer) Dragged(event *fyne.DragEvent) {
	if r.dragStart != nil {
		deltaX := event.Position.X - r.dragStart.X
		deltaY := event.Position.Y - r.dragStart.Y

		r.camera.Rotate(float64(-deltaY)*0.01, float64(deltaX)*0.01)
		r.Render(r.width, r.height)
	}
	r.dragStart = &event.Position
	r.isDragging = true
}

// DragEnd handles the end of a drag event
func (r *SceneRenderer) DragEnd() {
	r.dragStart = nil
	r.isDragging = false
}

// Tapped selects the nearest model vertex under the cursor, or failing
// that, the nearest point on an overlay line
func (r *SceneRenderer) Tapped(event *fyne.PointEvent) {
	if r.isDragging {
		return
	}

	screenX := float64(event.Position.X)
	screenY := float64(event.Position.Y)

	if r.scene.Model != nil {
		nearestVertex, minDist := r.findNearestVertex(screenX, screenY)
		// Only select if reasonably close (within 20 pixels)
		if minDist < 20 {
			r.addSelectedPoint(nearestVertex)
			return
		}
	}

	if point, ok := r.pickLinePoint(screenX, screenY); ok {
		r.addSelectedPoint(point)
	}
}

// findNearestVertex finds the vertex closest to screen coordinates
func (r *SceneRenderer) findNearestVertex(screenX, screenY float64) (geometry.Vector3, float64) {
	var nearestVertex geometry.Vector3
	minDist := math.MaxFloat64

	// Check all vertices
	vertexMap := make(map[geometry.Vector3]bool)
	for _, triangle := range r.scene.Model.Triangles {
		vertices := []geometry.Vector3{triangle.V1, triangle.V2, triangle.V3}
		for _, vertex := range vertices {
			if vertexMap[vertex] {
				continue
			}
			vertexMap[vertex] = true

			x, y, z := r.camera.Project(vertex, r.width, r.height)
			if z > 0 { // Only consider vertices in front of camera
				dist := math.Hypot(x-screenX, y-screenY)
				if dist < minDist {
					minDist = dist
					nearestVertex = vertex
				}
			}
		}
	}

	return nearestVertex, minDist
}

// pickLinePoint finds the point on an overlay line nearest to the pick
// ray under the cursor
func (r *SceneRenderer) pickLinePoint(screenX, screenY float64) (geometry.Vector3, bool) {
	origin, dir := r.camera.Unproject(screenX, screenY, r.width, r.height)
	ray, err := geometry.NewLine(origin, dir)
	if err != nil {
		return geometry.Vector3{}, false
	}

	var best geometry.Vector3
	bestDist := math.MaxFloat64

	for _, l := range r.scene.Lines {
		onLine, _ := l.NearestPoints(ray)

		x, y, z := r.camera.Project(onLine, r.width, r.height)
		if z <= 0.01 {
			continue
		}
		dist := math.Hypot(x-screenX, y-screenY)
		if dist < bestDist {
			bestDist = dist
			best = onLine
		}
	}

	if bestDist < 20 {
		return best, true
	}
	return geometry.Vector3{}, false
}

// addSelectedPoint adds a point to the selection
func (r *SceneRenderer) addSelectedPoint(point geometry.Vector3) {
	r.selectedPoints = append(r.selectedPoints, point)

	// Keep only last 2 points
	if len(r.selectedPoints) > 2 {
		r.selectedPoints = r.selectedPoints[len(r.selectedPoints)-2:]
	}

	r.updatePointMarkers()
	r.Refresh()

	if r.onPointSelect != nil {
		r.onPointSelect(point)
	}
}

// GetSelectedPoints returns the currently selected points
func (r *SceneRenderer) GetSelectedPoints() []geometry.Vector3 {
	return r.selectedPoints
}

// ClearSelection clears all selected points
func (r *SceneRenderer) ClearSelection() {
	r.selectedPoints = make([]geometry.Vector3, 0)
	r.updatePointMarkers()
	r.Refresh()
}

// Scrolled handles scroll events for zooming
func (r *SceneRenderer) Scrolled(event *fyne.ScrollEvent) {
	delta := -float64(event.Scrolled.DY) * 0.001
	r.camera.Zoom(delta)
	r.Render(r.width, r.height)
}

// sceneWidgetRenderer implements fyne.WidgetRenderer
type sceneWidgetRenderer struct {
	renderer *SceneRenderer
	objects  []fyne.CanvasObject
}

func (s *sceneWidgetRenderer) Layout(size fyne.Size) {
	s.renderer.Render(float64(size.Width), float64(size.Height))
}

func (s *sceneWidgetRenderer) MinSize() fyne.Size {
	return fyne.NewSize(400, 400)
}

func (s *sceneWidgetRenderer) Refresh() {
	s.objects = make([]fyne.CanvasObject, 0)

	if s.renderer.shaded != nil {
		s.objects = append(s.objects, s.renderer.shaded)
	}
	for _, line := range s.renderer.wireframe {
		s.objects = append(s.objects, line)
	}
	for _, line := range s.renderer.overlays {
		s.objects = append(s.objects, line)
	}
	for _, marker := range s.renderer.pointMarkers {
		s.objects = append(s.objects, marker)
	}

	canvas.Refresh(s.renderer)
}

func (s *sceneWidgetRenderer) Objects() []fyne.CanvasObject {
	return s.objects
}

func (s *sceneWidgetRenderer) Destroy() {}
