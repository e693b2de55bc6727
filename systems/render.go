package systems

import (
	"image"
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"

	"github.com/automoto/driftline/components"
	cfg "github.com/automoto/driftline/config"
	"github.com/automoto/driftline/shared/spatial"
	"github.com/automoto/driftline/shared/trackdata"
	"github.com/automoto/driftline/tags"
)

var whiteImage = ebiten.NewImage(3, 3)
var whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

func init() {
	whiteImage.Fill(color.White)
}

// viewBasis is the camera frame used to project world points to the screen.
type viewBasis struct {
	pos     spatial.Vec3
	right   spatial.Vec3
	up      spatial.Vec3
	forward spatial.Vec3
	cx, cy  float64
	focal   float64
}

func newViewBasis(cam *components.CameraData, screen *ebiten.Image) (viewBasis, bool) {
	forward := cam.LookAt.Sub(cam.Position)
	if forward.IsZero() {
		return viewBasis{}, false
	}
	forward = forward.Normalized()

	// Degenerate when looking straight up or down; the follow camera's
	// fixed offset never gets there.
	right := forward.Cross(spatial.Vec3{Y: 1})
	if right.IsZero() {
		return viewBasis{}, false
	}
	right = right.Normalized()
	up := right.Cross(forward)

	b := screen.Bounds()
	return viewBasis{
		pos:     cam.Position,
		right:   right,
		up:      up,
		forward: forward,
		cx:      float64(b.Dx()) / 2,
		cy:      float64(b.Dy()) / 2,
		focal:   cfg.Camera.FocalLength,
	}, true
}

// project maps a world point to screen coordinates plus view depth. Points
// at or behind the near plane report ok=false.
func (v viewBasis) project(p spatial.Vec3) (x, y, depth float64, ok bool) {
	d := p.Sub(v.pos)
	z := d.Dot(v.forward)
	if z < cfg.Camera.NearPlane {
		return 0, 0, 0, false
	}
	x = v.cx + d.Dot(v.right)/z*v.focal
	y = v.cy - d.Dot(v.up)/z*v.focal
	return x, y, z, true
}

// face is a projected quad queued for painter's-algorithm drawing.
type face struct {
	pts   [4][2]float64
	depth float64
	col   color.RGBA
}

// appendFace projects the four corners and queues the quad. Quads with any
// corner behind the near plane are dropped whole; geometry is pre-diced
// into small tiles so the popping stays unnoticeable.
func appendFace(faces []face, v viewBasis, corners [4]spatial.Vec3, col color.RGBA) []face {
	var f face
	depth := 0.0
	for i, c := range corners {
		x, y, z, ok := v.project(c)
		if !ok {
			return faces
		}
		f.pts[i] = [2]float64{x, y}
		depth += z
	}
	f.depth = depth / 4
	f.col = col
	return append(faces, f)
}

func drawFaces(screen *ebiten.Image, faces []face) {
	sort.Slice(faces, func(i, j int) bool { return faces[i].depth > faces[j].depth })
	for _, f := range faces {
		fillQuad(screen, f.pts, f.col)
	}
}

func fillQuad(screen *ebiten.Image, pts [4][2]float64, col color.RGBA) {
	ca := float32(col.A) / 255
	cr := float32(col.R) / 255 * ca
	cg := float32(col.G) / 255 * ca
	cb := float32(col.B) / 255 * ca

	vs := make([]ebiten.Vertex, 4)
	for i, p := range pts {
		vs[i] = ebiten.Vertex{
			DstX: float32(p[0]), DstY: float32(p[1]),
			SrcX: 1, SrcY: 1,
			ColorR: cr, ColorG: cg, ColorB: cb, ColorA: ca,
		}
	}
	screen.DrawTriangles(vs, []uint16{0, 1, 2, 0, 2, 3}, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})
}

// Geometry larger than this gets diced before projection so near-plane
// culling only ever drops small tiles.
const renderTileSize = 4.0

const wallHeight = 0.6

// DrawTrack renders the sky, ground plates and walls.
func DrawTrack(e *ecs.ECS, screen *ebiten.Image) {
	screen.Fill(cfg.SkyTop)

	camEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	view, ok := newViewBasis(components.Camera.Get(camEntry), screen)
	if !ok {
		return
	}

	trackEntry, ok := components.Track.First(e.World)
	if !ok {
		return
	}
	track := components.Track.Get(trackEntry).Track
	if track == nil {
		return
	}

	var faces []face
	for _, plate := range track.Grounds {
		faces = appendHorizontalRect(faces, view, plate.X, plate.Z, plate.X+plate.W, plate.Z+plate.D, plate.Top, cfg.Asphalt)
	}
	for _, wall := range track.Walls {
		faces = appendWallBox(faces, view, wall)
	}
	drawFaces(screen, faces)
}

// appendHorizontalRect dices a flat rectangle at height y into tiles and
// queues each tile.
func appendHorizontalRect(faces []face, v viewBasis, x0, z0, x1, z1, y float64, col color.RGBA) []face {
	for tx := x0; tx < x1; tx += renderTileSize {
		nx := math.Min(tx+renderTileSize, x1)
		for tz := z0; tz < z1; tz += renderTileSize {
			nz := math.Min(tz+renderTileSize, z1)
			faces = appendFace(faces, v, [4]spatial.Vec3{
				{X: tx, Y: y, Z: tz},
				{X: nx, Y: y, Z: tz},
				{X: nx, Y: y, Z: nz},
				{X: tx, Y: y, Z: nz},
			}, col)
		}
	}
	return faces
}

// appendWallBox queues a wall as a flat-topped box: top face plus the four
// sides, each side diced along its length.
func appendWallBox(faces []face, v viewBasis, w trackdata.Rect) []face {
	x0, z0, x1, z1 := w.X, w.Z, w.X+w.W, w.Z+w.D
	faces = appendHorizontalRect(faces, v, x0, z0, x1, z1, wallHeight, cfg.AsphaltEdge)
	faces = appendVerticalStrip(faces, v, spatial.Vec3{X: x0, Z: z0}, spatial.Vec3{X: x1, Z: z0})
	faces = appendVerticalStrip(faces, v, spatial.Vec3{X: x1, Z: z0}, spatial.Vec3{X: x1, Z: z1})
	faces = appendVerticalStrip(faces, v, spatial.Vec3{X: x1, Z: z1}, spatial.Vec3{X: x0, Z: z1})
	faces = appendVerticalStrip(faces, v, spatial.Vec3{X: x0, Z: z1}, spatial.Vec3{X: x0, Z: z0})
	return faces
}

func appendVerticalStrip(faces []face, v viewBasis, from, to spatial.Vec3) []face {
	span := to.Sub(from)
	length := span.Length()
	if length == 0 {
		return faces
	}
	steps := int(math.Ceil(length / renderTileSize))
	for i := 0; i < steps; i++ {
		a := from.Add(span.Scale(float64(i) / float64(steps)))
		b := from.Add(span.Scale(float64(i+1) / float64(steps)))
		faces = appendFace(faces, v, [4]spatial.Vec3{
			a,
			b,
			b.Add(spatial.Vec3{Y: wallHeight}),
			a.Add(spatial.Vec3{Y: wallHeight}),
		}, cfg.DarkBlue)
	}
	return faces
}

// Kart body half extents in simulation units. The box is longer than it is
// wide, with the nose toward -Z at zero heading.
const (
	kartHalfWidth  = 0.38
	kartHalfHeight = 0.18
	kartHalfLength = 0.58
	wheelRadius    = 0.13
)

var wheelOffsets = [4]spatial.Vec3{
	{X: -0.42, Y: -0.22, Z: -0.45}, // front left
	{X: 0.42, Y: -0.22, Z: -0.45},  // front right
	{X: -0.42, Y: -0.22, Z: 0.45},  // rear left
	{X: 0.42, Y: -0.22, Z: 0.45},   // rear right
}

// DrawKarts renders the local kart and all presence ghosts.
func DrawKarts(e *ecs.ECS, screen *ebiten.Image) {
	camEntry, ok := components.Camera.First(e.World)
	if !ok {
		return
	}
	view, ok := newViewBasis(components.Camera.Get(camEntry), screen)
	if !ok {
		return
	}

	var faces []face
	type wheelDraw struct {
		center spatial.Vec3
		yaw    spatial.Quat
		pitch  float64
		steer  float64 // extra yaw for the front axle
		front  bool
	}
	var wheels []wheelDraw

	tags.Kart.Each(e.World, func(entry *donburi.Entry) {
		visual := components.Visual.Get(entry)
		if components.Body.Get(entry).Body == nil {
			return
		}

		// Cosmetic drift tilt layered onto the physical heading for
		// display only; the controller's quaternion stays untouched.
		display := visual.Orientation.Mul(spatial.Yaw(visual.DriftVisualAngle * cfg.Vehicle.DriftTiltScale))
		faces = appendKartBox(faces, view, visual.Position, display, cfg.KartBody)

		for _, off := range wheelOffsets {
			front := off.Z < 0
			steer := 0.0
			if front {
				steer = visual.SteeringInputSigned * cfg.Vehicle.WheelYawScale
			}
			wheels = append(wheels, wheelDraw{
				center: visual.Position.Add(display.Rotate(off)),
				yaw:    display,
				pitch:  visual.WheelRotationAngle,
				steer:  steer,
				front:  front,
			})
		}
	})

	tags.Ghost.Each(e.World, func(entry *donburi.Entry) {
		ghost := components.Ghost.Get(entry)
		if !ghost.Initialized {
			return
		}
		display := spatial.Yaw(ghost.Heading + ghost.DriftLean*cfg.Vehicle.DriftTiltScale)
		faces = appendKartBox(faces, view, ghost.Position, display, cfg.GhostBody)
	})

	drawFaces(screen, faces)

	for _, w := range wheels {
		drawWheel(screen, view, w.center, w.yaw, w.pitch, w.steer)
	}

	if cfg.Debug.DrawBodies {
		drawBodyOverlay(e, screen, view)
	}
}

func appendKartBox(faces []face, v viewBasis, pos spatial.Vec3, q spatial.Quat, col color.RGBA) []face {
	corner := func(x, y, z float64) spatial.Vec3 {
		return pos.Add(q.Rotate(spatial.Vec3{X: x * kartHalfWidth, Y: y * kartHalfHeight, Z: z * kartHalfLength}))
	}

	// Top, nose, tail, left, right. The underside never shows.
	faces = appendFace(faces, v, [4]spatial.Vec3{corner(-1, 1, -1), corner(1, 1, -1), corner(1, 1, 1), corner(-1, 1, 1)}, col)
	faces = appendFace(faces, v, [4]spatial.Vec3{corner(-1, -1, -1), corner(1, -1, -1), corner(1, 1, -1), corner(-1, 1, -1)}, col)
	faces = appendFace(faces, v, [4]spatial.Vec3{corner(-1, -1, 1), corner(1, -1, 1), corner(1, 1, 1), corner(-1, 1, 1)}, darken(col))
	faces = appendFace(faces, v, [4]spatial.Vec3{corner(-1, -1, -1), corner(-1, -1, 1), corner(-1, 1, 1), corner(-1, 1, -1)}, darken(col))
	faces = appendFace(faces, v, [4]spatial.Vec3{corner(1, -1, -1), corner(1, -1, 1), corner(1, 1, 1), corner(1, 1, -1)}, darken(col))
	return faces
}

func darken(c color.RGBA) color.RGBA {
	return color.RGBA{R: c.R / 2, G: c.G / 2, B: c.B / 2, A: c.A}
}

// drawWheel renders one wheel as a filled disc plus a spoke line. The spoke
// angle comes from the spin accumulator so the rotation rate reads on
// screen; front wheels also swivel with the raw steering input.
func drawWheel(screen *ebiten.Image, view viewBasis, center spatial.Vec3, q spatial.Quat, pitch, steer float64) {
	x, y, z, ok := view.project(center)
	if !ok {
		return
	}
	r := view.focal / z * wheelRadius
	vector.DrawFilledCircle(screen, float32(x), float32(y), float32(r), cfg.WheelColor, true)

	// Wheel forward axis in world space, including front axle swivel.
	dir := q.Rotate(spatial.Yaw(steer).Rotate(spatial.Vec3{Z: -1}))
	up := spatial.Vec3{Y: 1}
	spoke := dir.Scale(math.Cos(pitch)).Add(up.Scale(math.Sin(pitch))).Scale(wheelRadius)

	x0, y0, _, ok0 := view.project(center.Sub(spoke))
	x1, y1, _, ok1 := view.project(center.Add(spoke))
	if ok0 && ok1 {
		vector.StrokeLine(screen, float32(x0), float32(y0), float32(x1), float32(y1), 1.5, cfg.AsphaltEdge, true)
	}
}

func drawBodyOverlay(e *ecs.ECS, screen *ebiten.Image, view viewBasis) {
	tags.Kart.Each(e.World, func(entry *donburi.Entry) {
		body := components.Body.Get(entry).Body
		if body == nil {
			return
		}
		pos := body.Translation()
		x, y, z, ok := view.project(pos)
		if !ok {
			return
		}
		r := view.focal / z * body.Radius()
		vector.StrokeCircle(screen, float32(x), float32(y), float32(r), 1, cfg.BrightGreen, true)
	})
}
