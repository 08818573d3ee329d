package parkour

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/parkour-run/internal/config"
	"github.com/vovakirdan/parkour-run/internal/core"
	"github.com/vovakirdan/parkour-run/internal/course"
	"github.com/vovakirdan/parkour-run/internal/movement"
)

// Map glyphs
const (
	SurfaceChar    = '▓'
	FarSurfaceChar = '░'
	WallChar       = '█'
	FinishChar     = '▒'
	BackdropChar   = '·'
	PillarChar     = 'o'
	PostChar       = '|'
	BeamChar       = '='
	SignChar       = '#'
	EyeChar        = '+'
	CameraChar     = '◦'
)

// Rendering scale
const (
	metresPerCol  = 1.5  // Third person zoom at the baseline FOV
	firstPersonZ  = 0.6  // First person zooms in
	lookAhead     = 0.25 // Fraction of the map shown ahead of the player
	farBelow      = 6.0  // Surfaces this far under the player are dimmed
	wallHeight    = 4.0  // Taller platforms draw as walls
	probeHeadroom = 200.0
)

var headingArrows = [8]rune{'→', '↘', '↓', '↙', '←', '↖', '↑', '↗'}

var decorGlyphs = map[course.DecorKind]rune{
	course.DecorTree:       '♣',
	course.DecorCar:        '■',
	course.DecorMotorcycle: '¤',
	course.DecorBench:      '≡',
	course.DecorStreetLamp: '¡',
	course.DecorPlantBox:   '•',
}

// Render draws a top-down map of the course around the player.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.course == nil || dst.Height() < 3 {
		return
	}

	player := g.ctrl.State()
	view := g.viewport(dst, player)

	g.drawBackdrop(dst, view)
	g.drawSurfaces(dst, view, player)
	g.drawStructures(dst, view)
	g.drawDecorations(dst, view)
	g.drawPlayer(dst, view, player)

	g.drawHUD(dst)
	g.drawStatus(dst, player)

	switch {
	case g.gameOver:
		g.drawCenteredMessage(dst, "TIME TRIAL COMPLETE",
			fmt.Sprintf("Time: %.2fs  Score: %d  |  Press R to run again", g.finishTime, g.stats.Score))
	case g.stageComplete:
		g.drawCenteredMessage(dst, fmt.Sprintf("STAGE %d CLEARED", g.stage),
			fmt.Sprintf("Time: %.2fs  |  N for next stage, R to retry", g.finishTime))
	case g.paused:
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// viewport frames the map between the HUD row and the status row. The view
// leads the player along the look direction, and a wider FOV zooms out.
func (g *Game) viewport(dst *core.Screen, player movement.State) core.Viewport {
	scale := metresPerCol
	if base := g.settings.FOV; base > 0 && player.Camera.FOV > 0 {
		scale *= player.Camera.FOV / base
	}
	if g.settings.POV == config.POVFirstPerson {
		scale *= firstPersonZ
	}
	view := core.NewViewport(dst.Width(), dst.Height()-2, scale)

	ahead := movement.Facing(player.Yaw)
	view.CenterX = player.Position.X() + ahead.X()*float64(view.Cols)*view.CellW*lookAhead
	view.CenterZ = player.Position.Z() + ahead.Z()*float64(view.Rows)*view.CellH*lookAhead
	return view
}

// mapCell converts a world point to a screen cell below the HUD row.
func mapCell(view core.Viewport, p mgl64.Vec3) (int, int, bool) {
	col, row := view.Project(p.X(), p.Z())
	if col < 0 || col >= view.Cols || row < 0 || row >= view.Rows {
		return 0, 0, false
	}
	return col, row + 1, true
}

func (g *Game) drawBackdrop(dst *core.Screen, view core.Viewport) {
	for _, col := range g.course.Backdrop {
		if x, y, ok := mapCell(view, col.Position); ok {
			dst.SetColor(x, y, BackdropChar, g.course.Palette.Backdrop)
		}
	}
}

// surfaceCell is the topmost probed surface under one map cell.
type surfaceCell struct {
	hit    course.Hit
	height float64
}

// drawSurfaces probes straight down through every map cell and shades the
// first surface found.
func (g *Game) drawSurfaces(dst *core.Screen, view core.Viewport, player movement.State) {
	top := g.course.Bounds().Max().Y() + probeHeadroom
	grid := make([][]surfaceCell, view.Rows)
	for row := range grid {
		grid[row] = make([]surfaceCell, view.Cols)
		for col := range grid[row] {
			x, z := view.Unproject(col, row)
			hit := g.course.ProbeDown(mgl64.Vec3{x, top, z}, math.Inf(1))
			grid[row][col] = surfaceCell{hit: hit, height: top - hit.Distance}
		}
	}

	sameSurface := func(row, col int, h course.Hit) bool {
		if row < 0 || row >= view.Rows || col < 0 || col >= view.Cols {
			return false
		}
		o := grid[row][col].hit
		return o.Surface == h.Surface && o.ID == h.ID
	}

	pal := g.course.Palette
	for row, cells := range grid {
		for col, cell := range cells {
			if !cell.hit.Found() {
				continue
			}
			edge := !sameSurface(row-1, col, cell.hit) || !sameSurface(row+1, col, cell.hit) ||
				!sameSurface(row, col-1, cell.hit) || !sameSurface(row, col+1, cell.hit)
			far := cell.height < player.Position.Y()-farBelow

			var r rune
			var c core.Color
			switch cell.hit.Surface {
			case course.SurfaceBridge:
				br := g.course.Bridges[cell.hit.ID]
				r, c = bridgeGlyph(br), pal.Platform
				if edge && br.Accent {
					c = pal.Accent
				}
			default:
				p := g.platform(cell.hit.ID)
				r, c = SurfaceChar, pal.Platform
				switch {
				case p.Finish:
					r, c = FinishChar, pal.Accent
				case p.Box.Size().Y() > wallHeight:
					r, c = WallChar, pal.Support
				case edge && p.Accent:
					c = pal.Accent
				}
			}
			if far && r != WallChar {
				r = FarSurfaceChar
			}
			dst.SetColor(col, row+1, r, c)
		}
	}
}

func (g *Game) platform(id int) course.Platform {
	if id < 0 || id >= len(g.course.Platforms) {
		return course.Platform{}
	}
	return g.course.Platforms[id]
}

// bridgeGlyph picks a rail glyph along the bridge's dominant screen axis.
// Rows cover twice the distance of columns, which the ratio accounts for.
func bridgeGlyph(b course.Bridge) rune {
	d := b.Direction()
	if math.Abs(d.X()) > 2*math.Abs(d.Z()) {
		return '═'
	}
	return '║'
}

func (g *Game) drawStructures(dst *core.Screen, view core.Viewport) {
	pal := g.course.Palette
	for _, s := range g.course.Structures {
		x, y, ok := mapCell(view, s.Box.Center)
		if !ok {
			continue
		}
		switch s.Kind {
		case course.StructurePillar:
			if dst.Get(x, y) == ' ' || dst.Get(x, y) == BackdropChar {
				dst.SetColor(x, y, PillarChar, pal.Support)
			}
		case course.StructurePost:
			dst.SetColor(x, y, PostChar, pal.Support)
		case course.StructureBeam:
			half := int(s.Box.Half.X() / view.CellW)
			dst.DrawHLine(x-half, y, 2*half+1, BeamChar, pal.Accent)
		case course.StructureSign:
			dst.SetColor(x, y, SignChar, pal.Accent)
		}
	}
}

func (g *Game) drawDecorations(dst *core.Screen, view core.Viewport) {
	pal := g.course.Palette
	for _, p := range g.course.Platforms {
		for i, d := range p.Decorations {
			x, y, ok := mapCell(view, p.Box.Center.Add(d.Position))
			if !ok {
				continue
			}
			c := pal.Prop
			if i%2 == 1 {
				c = pal.PropAlt
			}
			dst.SetColor(x, y, decorGlyphs[d.Kind], c)
		}
	}
}

func (g *Game) drawPlayer(dst *core.Screen, view core.Viewport, player movement.State) {
	if g.settings.POV == config.POVThirdPerson {
		if x, y, ok := mapCell(view, player.Camera.Position); ok {
			dst.SetColor(x, y, CameraChar, core.ColorGray)
		}
	}

	x, y, ok := mapCell(view, player.Position)
	if !ok {
		return
	}
	if g.settings.POV == config.POVFirstPerson {
		dst.SetColor(x, y, EyeChar, core.ColorBrightWhite)
		return
	}
	c := core.ColorBrightYellow
	if g.settings.Character == config.CharacterSilhouette {
		c = core.ColorBrightMagenta
	}
	dst.SetColor(x, y, HeadingArrow(player.Heading), c)
}

// HeadingArrow returns the arrow closest to a body yaw as seen from above.
func HeadingArrow(yaw float64) rune {
	f := movement.Facing(yaw)
	angle := math.Atan2(f.Z(), f.X())
	idx := int(math.Round(angle/(math.Pi/4))) % 8
	if idx < 0 {
		idx += 8
	}
	return headingArrows[idx]
}

func (g *Game) drawHUD(dst *core.Screen) {
	s := g.stats
	super := "READY"
	if !s.SuperJumpReady {
		super = fmt.Sprintf("%.1fs", s.SuperJumpCooldown)
	}
	hud := fmt.Sprintf(" Stage %d  Time %.1fs  Spd %.1f  Combo x%d  Jumps %d  Super %s  Score %d ",
		s.Stage, s.Time, s.Speed, s.Combo, s.JumpsRemaining, super, s.Score)
	dst.DrawTextColor(0, 0, hud, core.ColorBrightWhite)
}

func (g *Game) drawStatus(dst *core.Screen, player movement.State) {
	mode := "airborne"
	switch {
	case player.Sliding:
		mode = "sliding"
	case player.Grounded:
		mode = "grounded"
	}
	status := fmt.Sprintf(" %s / %s / %s  alt %.1fm  %s  |  WASD move  ←→ turn  Space jump  E super  C slide  V view ",
		g.settings.Theme, g.settings.Difficulty, g.settings.POV, player.Position.Y(), mode)
	dst.DrawTextColor(0, dst.Height()-1, status, core.ColorGray)
}

// drawCenteredMessage displays a boxed message at screen center.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := core.Max(len([]rune(title)), len([]rune(subtitle))) + 4
	h := 4
	box := core.NewRect((dst.Width()-w)/2, (dst.Height()-h)/2, w, h)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+1, title, core.ColorBrightYellow)
	dst.DrawTextCentered(box.Y+2, subtitle, core.ColorWhite)
}
