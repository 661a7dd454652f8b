package main

import (
	"fmt"
	"math"
	"os"
	"strings"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
	"github.com/geomkit/geomkit/internal/flags"
	"github.com/geomkit/geomkit/pkg/analysis"
	"github.com/geomkit/geomkit/pkg/geometry"
	"github.com/geomkit/geomkit/pkg/model"
	"github.com/geomkit/geomkit/pkg/viewer"
	"github.com/geomkit/geomkit/pkg/watcher"
	"github.com/spf13/cobra"
)

var (
	guiLine1 string
	guiLine2 string
	guiPoint string
	guiWatch bool
)

var rootCmd = &cobra.Command{
	Use:   "geomkit-gui [file]",
	Short: "Interactive 3D geometry and model inspector",
	Long: `Inspect a 3D model together with measurement geometry: overlay lines,
a probe point, its projection and the nearest points between skew lines.
Runs with a model file, with geometry flags alone, or both.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runGUI,
}

func init() {
	rootCmd.Flags().StringVar(&guiLine1, "line1", "", "First overlay line as px,py,pz:dx,dy,dz")
	rootCmd.Flags().StringVar(&guiLine2, "line2", "", "Second overlay line as px,py,pz:dx,dy,dz")
	rootCmd.Flags().StringVar(&guiPoint, "point", "", "Probe point as x,y,z")
	rootCmd.Flags().BoolVar(&guiWatch, "watch", false, "Reload the model when the file changes")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type App struct {
	window          fyne.Window
	scene           *viewer.Scene
	renderer        *viewer.SceneRenderer
	watcher         *watcher.ModelWatcher
	modelPath       string
	lines           []geometry.Line
	probe           *geometry.Vector3
	measurementInfo *MeasurementInfo
}

type MeasurementInfo struct {
	point1Label    *widget.Label
	point2Label    *widget.Label
	distanceXLabel *widget.Label
	distanceYLabel *widget.Label
	distanceZLabel *widget.Label
	totalDistLabel *widget.Label
	geometryLabel  *widget.Label
	modelInfoLabel *widget.Label
}

func runGUI(cmd *cobra.Command, args []string) {
	appInstance := &App{
		scene: viewer.NewScene(),
	}
	appInstance.buildGeometry()

	a := app.New()
	appInstance.window = a.NewWindow("geomkit - 3D Geometry Inspector")

	if guiWatch {
		w, err := watcher.New(500 * time.Millisecond)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error starting watcher: %v\n", err)
			os.Exit(1)
		}
		defer w.Close()
		w.Start()
		appInstance.watcher = w
	}

	if len(args) == 1 {
		appInstance.loadFile(args[0])
	} else if len(appInstance.scene.Lines) > 0 || len(appInstance.scene.Points) > 0 {
		appInstance.setupMainUI()
	} else {
		appInstance.showWelcomeScreen()
	}

	appInstance.window.Resize(fyne.NewSize(1200, 800))
	appInstance.window.ShowAndRun()
}

// buildGeometry parses the geometry flags into the scene: overlay lines,
// the probe point, its projection and the nearest-points connector
func (a *App) buildGeometry() {
	for _, input := range []struct{ name, value string }{
		{"line1", guiLine1},
		{"line2", guiLine2},
	} {
		if input.value == "" {
			continue
		}
		line, err := flags.ParseLine(input.value)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing --%s: %v\n", input.name, err)
			os.Exit(1)
		}
		a.lines = append(a.lines, line)
		a.scene.AddLine(line)
	}

	if guiPoint != "" {
		point, err := flags.ParseVector(guiPoint)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error parsing --point: %v\n", err)
			os.Exit(1)
		}
		a.probe = &point
		a.scene.AddPoint(point)
	}

	if len(a.lines) == 2 {
		p1, p2 := a.lines[0].NearestPoints(a.lines[1])
		a.scene.AddPoint(p1)
		a.scene.AddPoint(p2)
		a.scene.AddSegment(p1, p2)
	}

	if a.probe != nil && len(a.lines) > 0 {
		projected := a.lines[0].ProjectedPoint(*a.probe)
		a.scene.AddPoint(projected)
		a.scene.AddSegment(*a.probe, projected)
	}
}

func (a *App) showWelcomeScreen() {
	welcomeLabel := widget.NewLabel("Welcome to geomkit")
	welcomeLabel.TextStyle = fyne.TextStyle{Bold: true}

	instructionLabel := widget.NewLabel("Click 'Open Model File' to load a 3D model")

	openButton := widget.NewButton("Open Model File", func() {
		a.showFileDialog()
	})

	content := container.NewVBox(
		layout.NewSpacer(),
		container.NewCenter(welcomeLabel),
		container.NewCenter(instructionLabel),
		layout.NewSpacer(),
		container.NewCenter(openButton),
		layout.NewSpacer(),
	)

	a.window.SetContent(content)
}

func (a *App) showFileDialog() {
	dialog.ShowFileOpen(func(reader fyne.URIReadCloser, err error) {
		if err != nil {
			dialog.ShowError(err, a.window)
			return
		}
		if reader == nil {
			return
		}
		defer reader.Close()

		a.loadFile(reader.URI().Path())
	}, a.window)
}

func (a *App) loadFile(filename string) {
	m, err := model.Load(filename)
	if err != nil {
		dialog.ShowError(fmt.Errorf("failed to load model: %w", err), a.window)
		return
	}

	a.modelPath = filename
	a.scene.Model = m

	if a.watcher != nil {
		a.watcher.RemoveAll()
		err := a.watcher.Watch(filename, func(path string) {
			fyne.Do(func() { a.reload(path) })
		})
		if err != nil {
			dialog.ShowError(fmt.Errorf("failed to watch model: %w", err), a.window)
		}
	}

	if a.renderer != nil {
		a.renderer.SetModel(m)
		a.updateModelInfo()
		return
	}
	a.setupMainUI()
}

// reload re-reads the model after the watcher reports a change
func (a *App) reload(path string) {
	m, err := model.Load(path)
	if err != nil {
		dialog.ShowError(fmt.Errorf("failed to reload model: %w", err), a.window)
		return
	}

	a.scene.Model = m
	if a.renderer != nil {
		a.renderer.SetModel(m)
		a.updateModelInfo()
	}
}

func (a *App) setupMainUI() {
	// Create measurement info labels
	a.measurementInfo = &MeasurementInfo{
		point1Label:    widget.NewLabel("Point 1: Not selected"),
		point2Label:    widget.NewLabel("Point 2: Not selected"),
		distanceXLabel: widget.NewLabel("Distance X: -"),
		distanceYLabel: widget.NewLabel("Distance Y: -"),
		distanceZLabel: widget.NewLabel("Distance Z: -"),
		totalDistLabel: widget.NewLabel("Total Distance: -"),
		geometryLabel:  widget.NewLabel(""),
		modelInfoLabel: widget.NewLabel(""),
	}

	// Style the total distance label
	a.measurementInfo.totalDistLabel.TextStyle = fyne.TextStyle{Bold: true}

	// Create 3D renderer
	a.renderer = viewer.NewSceneRenderer(a.scene)
	a.renderer.SetOnPointSelect(func(point geometry.Vector3) {
		a.updateMeasurements()
	})

	// Create control buttons
	openButton := widget.NewButton("Open File", func() {
		a.showFileDialog()
	})

	clearButton := widget.NewButton("Clear Selection", func() {
		a.renderer.ClearSelection()
		a.updateMeasurements()
	})

	// Create solid mode checkbox
	solidModeCheck := widget.NewCheck("Show Solid", func(checked bool) {
		a.renderer.SetSolid(checked)
	})
	solidModeCheck.SetChecked(false)

	a.updateModelInfo()
	a.measurementInfo.geometryLabel.SetText(a.geometrySummary())

	// Instructions
	instructions := widget.NewLabel(
		"Instructions:\n" +
			"• Click on vertices or overlay lines to select points\n" +
			"• Drag to rotate the view\n" +
			"• Scroll to zoom in/out\n" +
			"• Select 2 points to measure distance",
	)
	instructions.Wrapping = fyne.TextWrapWord

	// Create info panel
	infoPanel := container.NewVBox(
		widget.NewLabel("Model Information:"),
		widget.NewSeparator(),
		a.measurementInfo.modelInfoLabel,
		widget.NewSeparator(),
		widget.NewLabel("Geometry:"),
		widget.NewSeparator(),
		a.measurementInfo.geometryLabel,
		widget.NewSeparator(),
		widget.NewLabel("Measurements:"),
		widget.NewSeparator(),
		a.measurementInfo.point1Label,
		a.measurementInfo.point2Label,
		widget.NewSeparator(),
		a.measurementInfo.distanceXLabel,
		a.measurementInfo.distanceYLabel,
		a.measurementInfo.distanceZLabel,
		a.measurementInfo.totalDistLabel,
		widget.NewSeparator(),
		widget.NewLabel("Display Options:"),
		solidModeCheck,
		widget.NewSeparator(),
		instructions,
		widget.NewSeparator(),
		openButton,
		clearButton,
	)

	// Create scroll container for info panel
	infoScroll := container.NewVScroll(infoPanel)
	infoScroll.SetMinSize(fyne.NewSize(300, 0))

	// Create main layout
	content := container.NewBorder(
		nil,        // top
		nil,        // bottom
		nil,        // left
		infoScroll, // right
		a.renderer, // center
	)

	a.window.SetContent(content)

	// Initial render
	a.renderer.Render(800, 600)
}

func (a *App) updateModelInfo() {
	if a.scene.Model == nil {
		a.measurementInfo.modelInfoLabel.SetText("No model loaded")
		return
	}

	result := analysis.AnalyzeModel(a.scene.Model)
	watertight := "no"
	if result.Watertight {
		watertight = "yes"
	}
	a.measurementInfo.modelInfoLabel.SetText(fmt.Sprintf(
		"Model: %s\nTriangles: %d\nVertices: %d\nEdges: %d\nWatertight: %s\nSurface Area: %.2f\n\nDimensions:\n  X: %.2f\n  Y: %.2f\n  Z: %.2f",
		a.scene.Model.Name,
		result.TriangleCount,
		result.VertexCount,
		result.EdgeCount,
		watertight,
		result.SurfaceArea,
		result.Dimensions.X,
		result.Dimensions.Y,
		result.Dimensions.Z,
	))
}

// geometrySummary describes the overlay measurements shown in the panel
func (a *App) geometrySummary() string {
	var sb strings.Builder

	for i, line := range a.lines {
		fmt.Fprintf(&sb, "Line %d: %s\n", i+1, line)
	}

	if len(a.lines) == 2 {
		p1, p2 := a.lines[0].NearestPoints(a.lines[1])
		distance := analysis.LineLineDistance(a.lines[0], a.lines[1])
		angle := analysis.LineLineAngle(a.lines[0], a.lines[1])

		fmt.Fprintf(&sb, "\nNearest point 1: %s\n", analysis.FormatVector(p1))
		fmt.Fprintf(&sb, "Nearest point 2: %s\n", analysis.FormatVector(p2))
		fmt.Fprintf(&sb, "Line distance: %.6f\n", distance)
		fmt.Fprintf(&sb, "Line angle: %.2f degrees\n", angle*180/math.Pi)
	}

	if a.probe != nil {
		fmt.Fprintf(&sb, "\nProbe point: %s\n", analysis.FormatVector(*a.probe))
		if len(a.lines) > 0 {
			projected := a.lines[0].ProjectedPoint(*a.probe)
			fmt.Fprintf(&sb, "Projected onto line 1: %s\n", analysis.FormatVector(projected))
			fmt.Fprintf(&sb, "Projection distance: %.6f\n", analysis.PointLineDistance(*a.probe, a.lines[0]))
		}
	}

	if sb.Len() == 0 {
		return "No geometry flags given"
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (a *App) updateMeasurements() {
	points := a.renderer.GetSelectedPoints()

	if len(points) == 0 {
		a.measurementInfo.point1Label.SetText("Point 1: Not selected")
		a.measurementInfo.point2Label.SetText("Point 2: Not selected")
		a.measurementInfo.distanceXLabel.SetText("Distance X: -")
		a.measurementInfo.distanceYLabel.SetText("Distance Y: -")
		a.measurementInfo.distanceZLabel.SetText("Distance Z: -")
		a.measurementInfo.totalDistLabel.SetText("Total Distance: -")
		return
	}

	// Update point 1
	p1 := points[0]
	a.measurementInfo.point1Label.SetText(fmt.Sprintf("Point 1: (%.3f, %.3f, %.3f)", p1.X, p1.Y, p1.Z))

	if len(points) < 2 {
		a.measurementInfo.point2Label.SetText("Point 2: Click to select")
		a.measurementInfo.distanceXLabel.SetText("Distance X: -")
		a.measurementInfo.distanceYLabel.SetText("Distance Y: -")
		a.measurementInfo.distanceZLabel.SetText("Distance Z: -")
		a.measurementInfo.totalDistLabel.SetText("Total Distance: -")
		return
	}

	// Update point 2 and calculate distances
	p2 := points[1]
	a.measurementInfo.point2Label.SetText(fmt.Sprintf("Point 2: (%.3f, %.3f, %.3f)", p2.X, p2.Y, p2.Z))

	// Calculate distances in each direction
	deltaX := math.Abs(p2.X - p1.X)
	deltaY := math.Abs(p2.Y - p1.Y)
	deltaZ := math.Abs(p2.Z - p1.Z)
	totalDist := p1.Distance(p2)

	a.measurementInfo.distanceXLabel.SetText(fmt.Sprintf("Distance X: %.6f units", deltaX))
	a.measurementInfo.distanceYLabel.SetText(fmt.Sprintf("Distance Y: %.6f units", deltaY))
	a.measurementInfo.distanceZLabel.SetText(fmt.Sprintf("Distance Z: %.6f units", deltaZ))
	a.measurementInfo.totalDistLabel.SetText(fmt.Sprintf("Total Distance: %.6f units", totalDist))
}
