package render

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/mazey/internal/maze"
)

// Options controls SVG output.
type Options struct {
	CellSize   float64 // side of a square cell, ring height for polar grids
	WallWidth  float64
	Padding    float64
	WallColor  string
	PathColor  string
	Background string
}

// DefaultOptions returns the standard SVG look.
func DefaultOptions() Options {
	return Options{
		CellSize:   16,
		WallWidth:  4,
		Padding:    8,
		WallColor:  "#8099b3",
		PathColor:  "#c82828",
		Background: "#1a1a1a",
	}
}

// SVG renders t as a standalone SVG document.
func SVG(t maze.Topology, ov Overlay, opts Options) (string, error) {
	switch g := t.(type) {
	case *maze.Grid:
		return RectSVG(g, ov, opts), nil
	case *maze.PolarGrid:
		return PolarSVG(g, ov, opts), nil
	default:
		return "", fmt.Errorf("render: unsupported topology %T", t)
	}
}

type svgDoc struct {
	sb   strings.Builder
	opts Options
}

func newSVGDoc(w, h float64, opts Options) *svgDoc {
	d := &svgDoc{opts: opts}
	fmt.Fprintf(&d.sb, `<?xml version="1.0" encoding="UTF-8"?>
<svg width="%g" height="%g" viewBox="0 0 %g %g" xmlns="http://www.w3.org/2000/svg">
`, w, h, w, h)
	fmt.Fprintf(&d.sb, `<rect x="0" y="0" width="%g" height="%g" fill="%s"/>
`, w, h, opts.Background)
	return d
}

func (d *svgDoc) line(x1, y1, x2, y2 float64) {
	fmt.Fprintf(&d.sb, `<line x1="%.2f" y1="%.2f" x2="%.2f" y2="%.2f"/>
`, x1, y1, x2, y2)
}

func (d *svgDoc) beginWalls() {
	fmt.Fprintf(&d.sb, `<g stroke="%s" stroke-width="%g" stroke-linecap="round" fill="none">
`, d.opts.WallColor, d.opts.WallWidth)
}

func (d *svgDoc) endGroup() {
	d.sb.WriteString("</g>\n")
}

// polyline draws the solution through the given points.
func (d *svgDoc) polyline(points [][2]float64) {
	if len(points) < 2 {
		return
	}
	var pts strings.Builder
	for i, p := range points {
		if i > 0 {
			pts.WriteByte(' ')
		}
		fmt.Fprintf(&pts, "%.2f,%.2f", p[0], p[1])
	}
	fmt.Fprintf(&d.sb, `<polyline points="%s" stroke="%s" stroke-width="%g" stroke-linecap="round" stroke-linejoin="round" fill="none"/>
`, pts.String(), d.opts.PathColor, d.opts.WallWidth)
}

func (d *svgDoc) String() string {
	d.sb.WriteString("</svg>\n")
	return d.sb.String()
}

// RectSVG renders a rectangular maze: an optional heat fill, the border,
// the North and East wall of every cell, then the solution.
func RectSVG(g *maze.Grid, ov Overlay, opts Options) string {
	cs, pad := opts.CellSize, opts.Padding
	w := cs * float64(g.Width())
	h := cs * float64(g.Height())
	d := newSVGDoc(w+2*pad, h+2*pad, opts)

	if ov.Dist != nil {
		for _, c := range maze.AllCoords(g) {
			fmt.Fprintf(&d.sb, `<rect x="%.2f" y="%.2f" width="%g" height="%g" fill="%s"/>
`, pad+float64(c.X)*cs, pad+float64(c.Y)*cs, cs, cs, HeatColor(ov.Dist.At(c), ov.MaxDist).Hex())
		}
	}

	d.beginWalls()
	fmt.Fprintf(&d.sb, `<rect x="%g" y="%g" width="%g" height="%g"/>
`, pad, pad, w, h)
	for _, c := range maze.AllCoords(g) {
		x0, y0 := pad+float64(c.X)*cs, pad+float64(c.Y)*cs
		if c.Y > 0 && !g.IsOpen(c, maze.North) {
			d.line(x0, y0, x0+cs, y0)
		}
		if c.X < g.Width()-1 && !g.IsOpen(c, maze.East) {
			d.line(x0+cs, y0, x0+cs, y0+cs)
		}
	}
	d.endGroup()

	points := make([][2]float64, len(ov.Path))
	for i, c := range ov.Path {
		points[i] = [2]float64{pad + (float64(c.X)+0.5)*cs, pad + (float64(c.Y)+0.5)*cs}
	}
	d.polyline(points)

	return d.String()
}

// polarGeom converts polar cells to drawing coordinates. Ring y spans
// radii [y, y+1) * ring; the hub is a disc of radius ring.
type polarGeom struct {
	cx, cy float64
	ring   float64
	sizes  []int
}

func (pg polarGeom) point(r, theta float64) (float64, float64) {
	return pg.cx + r*math.Cos(theta), pg.cy + r*math.Sin(theta)
}

func (pg polarGeom) angles(c maze.Coord) (float64, float64) {
	n := float64(pg.sizes[c.Y])
	return 2 * math.Pi * float64(c.X) / n, 2 * math.Pi * float64(c.X+1) / n
}

func (pg polarGeom) center(c maze.Coord) (float64, float64) {
	if c.Y == 0 {
		return pg.cx, pg.cy
	}
	t1, t2 := pg.angles(c)
	return pg.point((float64(c.Y)+0.5)*pg.ring, (t1+t2)/2)
}

// sector returns the path of the annular sector covered by c.
func (pg polarGeom) sector(c maze.Coord) string {
	rIn, rOut := float64(c.Y)*pg.ring, float64(c.Y+1)*pg.ring
	t1, t2 := pg.angles(c)
	ax, ay := pg.point(rIn, t1)
	bx, by := pg.point(rOut, t1)
	ex, ey := pg.point(rOut, t2)
	fx, fy := pg.point(rIn, t2)
	return fmt.Sprintf("M %.2f %.2f L %.2f %.2f A %.2f %.2f 0 0 1 %.2f %.2f L %.2f %.2f A %.2f %.2f 0 0 0 %.2f %.2f Z",
		ax, ay, bx, by, rOut, rOut, ex, ey, fx, fy, rIn, rIn, ax, ay)
}

// PolarSVG renders a polar maze: an optional heat fill, the outer rim, the
// inner arc and West radial wall of every ring cell, then the solution
// through cell centres.
func PolarSVG(p *maze.PolarGrid, ov Overlay, opts Options) string {
	ring, pad := opts.CellSize, opts.Padding
	outer := ring * float64(p.Rows())
	size := 2 * (outer + pad)
	pg := polarGeom{cx: size / 2, cy: size / 2, ring: ring, sizes: p.RingSizes()}
	d := newSVGDoc(size, size, opts)

	if ov.Dist != nil {
		for _, c := range maze.AllCoords(p) {
			fill := HeatColor(ov.Dist.At(c), ov.MaxDist).Hex()
			if c.Y == 0 {
				fmt.Fprintf(&d.sb, `<circle cx="%.2f" cy="%.2f" r="%g" fill="%s"/>
`, pg.cx, pg.cy, ring, fill)
				continue
			}
			fmt.Fprintf(&d.sb, `<path d="%s" fill="%s"/>
`, pg.sector(c), fill)
		}
	}

	d.beginWalls()
	fmt.Fprintf(&d.sb, `<circle cx="%.2f" cy="%.2f" r="%g"/>
`, pg.cx, pg.cy, outer)
	for y := 1; y < p.Rows(); y++ {
		rIn, rOut := float64(y)*ring, float64(y+1)*ring
		for x := 0; x < p.RowLen(y); x++ {
			c := maze.C(x, y)
			t1, t2 := pg.angles(c)
			if !p.IsOpen(c, maze.South) {
				ax, ay := pg.point(rIn, t1)
				bx, by := pg.point(rIn, t2)
				fmt.Fprintf(&d.sb, `<path d="M %.2f %.2f A %.2f %.2f 0 0 1 %.2f %.2f"/>
`, ax, ay, rIn, rIn, bx, by)
			}
			if !p.IsOpen(c, maze.West) {
				ax, ay := pg.point(rIn, t1)
				bx, by := pg.point(rOut, t1)
				d.line(ax, ay, bx, by)
			}
		}
	}
	d.endGroup()

	points := make([][2]float64, len(ov.Path))
	for i, c := range ov.Path {
		x, y := pg.center(c)
		points[i] = [2]float64{x, y}
	}
	d.polyline(points)

	return d.String()
}
