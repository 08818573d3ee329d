package course

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/vovakirdan/parkour-run/internal/config"
)

// Params are the inputs of Build.
type Params struct {
	Theme         config.Theme
	Preset        config.DifficultyPreset
	Difficulty    config.DifficultyParams
	Stage         int
	StageSpacing  float64
	SpawnHeight   float64
	BackdropSeed  uint64
	BackdropCount int
	BackdropRange float64
}

// NewParams resolves the build inputs from tuning, settings and stage.
func NewParams(cfg config.ParkourConfig, s config.Settings, stage int) Params {
	if stage < 1 {
		stage = 1
	}
	return Params{
		Theme:         s.Theme,
		Preset:        s.Difficulty,
		Difficulty:    cfg.Difficulty.Params(s.Difficulty),
		Stage:         stage,
		StageSpacing:  cfg.Course.StageSpacing,
		SpawnHeight:   cfg.Movement.SpawnHeight,
		BackdropSeed:  cfg.Course.BackdropSeed,
		BackdropCount: cfg.Course.BackdropCount,
		BackdropRange: cfg.Course.BackdropRange,
	}
}

// Key returns the identity of the course these params build.
func (p Params) Key() Key {
	return Key{Stage: p.Stage, Theme: p.Theme, Difficulty: p.Preset}
}

// StageOrigin returns where a stage's template starts. Stages advance
// along -Z, one StageSpacing apart.
func StageOrigin(stage int, spacing float64) mgl64.Vec3 {
	if stage < 1 {
		stage = 1
	}
	return mgl64.Vec3{0, 0, -float64(stage-1) * spacing}
}

// Template depths along -Z before the gap multiplier is applied.
const (
	depthAscentEnd   = 180.0
	depthCluster     = 260.0
	depthSprintStart = 320.0
	depthSprintEnd   = 600.0
	depthHub         = 700.0
	depthFinalStart  = 780.0
	depthFinalEnd    = 1050.0
	depthFinish      = 1300.0

	ascentStart = 60.0 // Fixed so the first bridge always leaves from the plaza
)

// builder accumulates geometry relative to the stage origin.
type builder struct {
	c      *Course
	origin mgl64.Vec3
	salt   string
}

func (b *builder) platform(name string, center, size mgl64.Vec3, opts platformOpts) int {
	world := b.origin.Add(center)
	p := Platform{
		ID:       len(b.c.Platforms),
		Name:     name,
		Box:      BoxFromSize(world, size),
		Supports: opts.supports,
		Accent:   opts.accent,
		Finish:   opts.finish,
	}
	if opts.props > 0 {
		p.Decorations = Decorate(world, size, opts.props, b.salt)
	}
	if opts.supports {
		b.pillars(p.Box)
	}
	b.c.Platforms = append(b.c.Platforms, p)
	return p.ID
}

type platformOpts struct {
	supports bool
	accent   bool
	finish   bool
	props    int
}

func (b *builder) bridge(start, end mgl64.Vec3, width float64, accent bool) {
	b.c.Bridges = append(b.c.Bridges, NewBridge(b.origin.Add(start), b.origin.Add(end), width, accent))
}

// pillars adds four support columns reaching down from a platform.
func (b *builder) pillars(box Box) {
	size := box.Size()
	y := box.Center.Y() - box.Half.Y() - 75
	for _, sx := range []float64{1, -1} {
		for _, sz := range []float64{1, -1} {
			c := mgl64.Vec3{box.Center.X() + sx*size.X()/2.4, y, box.Center.Z() + sz*size.Z()/2.4}
			b.structure(StructurePillar, c, mgl64.Vec3{16, 150, 16})
		}
	}
}

func (b *builder) structure(kind StructureKind, worldCenter, size mgl64.Vec3) {
	b.c.Structures = append(b.c.Structures, Structure{Kind: kind, Box: BoxFromSize(worldCenter, size)})
}

func (b *builder) anchor(name string, depth float64) {
	b.c.Anchors = append(b.c.Anchors, Anchor{Name: name, Depth: depth})
}

// Build lays out the course template for the given params. The shape is
// fixed: start plaza, ascending bridge, vertical cluster, sprint bridge,
// obstacle hub, final bridge and finish plaza. Difficulty stretches the
// gaps along -Z and shrinks the widths; the stage translates everything.
func Build(p Params) *Course {
	gM := p.Difficulty.GapMultiplier
	sM := p.Difficulty.SizeMultiplier
	if gM <= 0 {
		gM = 1
	}
	if sM <= 0 {
		sM = 1
	}
	if p.Stage < 1 {
		p.Stage = 1
	}

	origin := StageOrigin(p.Stage, p.StageSpacing)
	c := &Course{
		Key:     p.Key(),
		Origin:  origin,
		Spawn:   origin.Add(mgl64.Vec3{0, p.SpawnHeight, 0}),
		Palette: PaletteFor(p.Theme),
		Params:  p,
	}
	b := &builder{c: c, origin: origin, salt: string(p.Theme)}

	z := func(depth float64) float64 { return -depth * gM }

	// Start plaza, top face at y=0.
	b.platform("start", mgl64.Vec3{0, -2, 0}, mgl64.Vec3{120 * sM, 4, 120 * sM},
		platformOpts{supports: true, props: 20})

	// Ascending first leg.
	b.anchor("ascent_end", depthAscentEnd*gM)
	b.bridge(mgl64.Vec3{0, 0, -ascentStart}, mgl64.Vec3{0, 20, z(depthAscentEnd)}, 14*sM, true)

	// Vertical cluster.
	b.anchor("cluster", depthCluster*gM)
	cluster := mgl64.Vec3{0, 20, z(depthCluster)}
	right := cluster.Add(mgl64.Vec3{50 * gM, 35, 20})
	left := cluster.Add(mgl64.Vec3{-50 * gM, 55, 40})
	b.platform("cluster_base", cluster, mgl64.Vec3{70 * sM, 3, 70 * sM},
		platformOpts{supports: true, accent: true, props: 10})
	b.platform("cluster_right", right, mgl64.Vec3{35 * sM, 2, 35 * sM},
		platformOpts{accent: true, props: 6})
	b.platform("cluster_left", left, mgl64.Vec3{35 * sM, 2, 35 * sM},
		platformOpts{accent: true, props: 6})
	b.bridge(right, left, 6*sM, false)

	// Sprint zone.
	b.anchor("sprint_start", depthSprintStart*gM)
	b.anchor("sprint_end", depthSprintEnd*gM)
	b.bridge(mgl64.Vec3{0, 55, z(depthSprintStart)}, mgl64.Vec3{0, 75, z(depthSprintEnd)}, 20*sM, true)

	// Obstacle hub with wall-run walls and a floating block.
	b.anchor("hub", depthHub*gM)
	hub := mgl64.Vec3{0, 75, z(depthHub)}
	b.platform("hub_deck", hub, mgl64.Vec3{120 * sM, 5, 150 * sM},
		platformOpts{supports: true, props: 30})
	b.platform("hub_wall_left", hub.Add(mgl64.Vec3{-60 * sM, 35, 0}), mgl64.Vec3{3, 70, 150 * sM},
		platformOpts{accent: true})
	b.platform("hub_wall_right", hub.Add(mgl64.Vec3{60 * sM, 35, 0}), mgl64.Vec3{3, 70, 150 * sM},
		platformOpts{accent: true})
	b.platform("hub_obstacle", hub.Add(mgl64.Vec3{0, 30, 0}), mgl64.Vec3{20, 2, 20},
		platformOpts{accent: true})

	// Final bridge up to the finish.
	b.anchor("final_start", depthFinalStart*gM)
	b.anchor("final_end", depthFinalEnd*gM)
	b.bridge(mgl64.Vec3{0, 75, z(depthFinalStart)}, mgl64.Vec3{0, 120, z(depthFinalEnd)}, 30*sM, true)

	// Finish plaza and banner.
	b.anchor("finish", depthFinish*gM)
	finish := mgl64.Vec3{0, 120, z(depthFinish)}
	c.finish = b.platform("finish", finish, mgl64.Vec3{400, 20, 400},
		platformOpts{supports: true, accent: true, finish: true, props: 80})
	banner := origin.Add(finish).Add(mgl64.Vec3{0, 30, 160})
	b.structure(StructurePost, banner.Add(mgl64.Vec3{-100, 0, 0}), mgl64.Vec3{6, 120, 6})
	b.structure(StructurePost, banner.Add(mgl64.Vec3{100, 0, 0}), mgl64.Vec3{6, 120, 6})
	b.structure(StructureBeam, banner.Add(mgl64.Vec3{0, 50, 0}), mgl64.Vec3{220, 15, 8})
	for _, x := range []float64{-60, 0, 60} {
		b.structure(StructureSign, banner.Add(mgl64.Vec3{x, 50, 5}), mgl64.Vec3{20, 10, 2})
	}

	// Backdrop centred under the middle of the stage.
	mid := origin.Add(mgl64.Vec3{0, 0, z(depthFinish / 2)})
	c.Backdrop = Scatter(p.BackdropSeed, p.BackdropCount, p.BackdropRange, mid)

	return c
}
