package course

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Summary is a serialisable description of a course.
type Summary struct {
	Stage       int                `yaml:"stage"`
	Theme       string             `yaml:"theme"`
	Difficulty  string             `yaml:"difficulty"`
	Generation  uint64             `yaml:"generation"`
	Spawn       [3]float64         `yaml:"spawn,flow"`
	Bounds      BoxSummary         `yaml:"bounds"`
	Anchors     map[string]float64 `yaml:"anchors"`
	Platforms   []PlatformSummary  `yaml:"platforms"`
	Bridges     []BridgeSummary    `yaml:"bridges"`
	Decorations map[string]int     `yaml:"decorations"`
	Structures  int                `yaml:"structures"`
	Backdrop    int                `yaml:"backdrop_columns"`
}

// BoxSummary is a box as min and max corners.
type BoxSummary struct {
	Min [3]float64 `yaml:"min,flow"`
	Max [3]float64 `yaml:"max,flow"`
}

// PlatformSummary describes one platform.
type PlatformSummary struct {
	Name        string     `yaml:"name"`
	Center      [3]float64 `yaml:"center,flow"`
	Size        [3]float64 `yaml:"size,flow"`
	Finish      bool       `yaml:"finish,omitempty"`
	Decorations int        `yaml:"decorations,omitempty"`
}

// BridgeSummary describes one bridge.
type BridgeSummary struct {
	Start  [3]float64 `yaml:"start,flow"`
	End    [3]float64 `yaml:"end,flow"`
	Width  float64    `yaml:"width"`
	Length float64    `yaml:"length"`
}

func vec(v mgl64.Vec3) [3]float64 {
	return [3]float64{round2(v.X()), round2(v.Y()), round2(v.Z())}
}

func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// Summarize describes c for dumping.
func Summarize(c *Course) Summary {
	b := c.Bounds()
	s := Summary{
		Stage:       c.Key.Stage,
		Theme:       string(c.Key.Theme),
		Difficulty:  string(c.Key.Difficulty),
		Generation:  c.Generation,
		Spawn:       vec(c.Spawn),
		Bounds:      BoxSummary{Min: vec(b.Min()), Max: vec(b.Max())},
		Anchors:     make(map[string]float64, len(c.Anchors)),
		Decorations: make(map[string]int),
		Structures:  len(c.Structures),
		Backdrop:    len(c.Backdrop),
	}
	for _, a := range c.Anchors {
		s.Anchors[a.Name] = round2(a.Depth)
	}
	for _, p := range c.Platforms {
		s.Platforms = append(s.Platforms, PlatformSummary{
			Name:        p.Name,
			Center:      vec(p.Box.Center),
			Size:        vec(p.Box.Size()),
			Finish:      p.Finish,
			Decorations: len(p.Decorations),
		})
		for _, d := range p.Decorations {
			s.Decorations[d.Kind.String()]++
		}
	}
	for _, br := range c.Bridges {
		s.Bridges = append(s.Bridges, BridgeSummary{
			Start:  vec(br.Start),
			End:    vec(br.End),
			Width:  round2(br.Width),
			Length: round2(br.Length),
		})
	}
	return s
}
