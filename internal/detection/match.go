package detection

import (
	"errors"
	"fmt"
	"image"
	"math"

	"github.com/anthonynsimon/bild/clone"
	"gonum.org/v1/gonum/floats"
)

var (
	// ErrEmptyTemplate is returned when a template has no pixels.
	ErrEmptyTemplate = errors.New("template is empty")

	// ErrTemplateTooLarge is returned when a template does not fit inside the source.
	ErrTemplateTooLarge = errors.New("template larger than source image")
)

// Match is the best-scoring placement of a template inside a source image.
//
// X and Y are in the source image's coordinate space. Width and Height are
// always the template's own size.
type Match struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`

	// Confidence is the normalized correlation score at (X, Y), 0.0 to 1.0.
	// A cleanly rendered copy of the template scores 1.0.
	Confidence float64 `json:"confidence"`
}

// Rect returns the matched area as an image.Rectangle.
func (m Match) Rect() image.Rectangle {
	return image.Rect(m.X, m.Y, m.X+m.Width, m.Y+m.Height)
}

// Matcher finds the single best placement of a template within a source image.
//
// Implementations must be deterministic: identical inputs yield identical
// matches. No threshold is applied here; callers decide whether the returned
// confidence is good enough.
type Matcher interface {
	Locate(src, tpl image.Image) (Match, error)
}

// CrossCorrelation is a pure-Go Matcher scoring every placement with
// normalized cross-correlation over the red, green and blue channels:
//
//	R(x,y) = Σ T·I / sqrt(Σ T² · Σ I²)
//
// where the sums run over the template area anchored at (x,y). The score is
// the cosine similarity between the template and the window, so it reaches
// 1.0 only where the window is a (scaled) copy of the template.
//
// # Tie-Breaking
//
// Placements are scanned row by row, top to bottom and left to right, and a
// later placement only wins with a strictly higher score. Among equal scores
// the topmost, then leftmost, placement is returned. A window with no energy
// (all black) scores 0.
//
// # Performance
//
// Window energies come from a summed-area table, so only the numerator costs
// O(template area) per placement. For full-HD screenshots each corner takes a
// few seconds; build with -tags gocv for the OpenCV backend when speed matters.
type CrossCorrelation struct{}

// Locate implements Matcher.
func (CrossCorrelation) Locate(src, tpl image.Image) (Match, error) {
	sb, tb := src.Bounds(), tpl.Bounds()
	tw, th := tb.Dx(), tb.Dy()

	if tw <= 0 || th <= 0 {
		return Match{}, ErrEmptyTemplate
	}
	if tw > sb.Dx() || th > sb.Dy() {
		return Match{}, fmt.Errorf("%w: template %dx%d, source %dx%d",
			ErrTemplateTooLarge, tw, th, sb.Dx(), sb.Dy())
	}

	s := newPlane(src)
	t := newPlane(tpl)
	energy := s.squaredIntegral()

	var tplEnergy float64
	for _, v := range t.pix {
		tplEnergy += v * v
	}

	span := tw * channels
	bestX, bestY, bestScore := 0, 0, math.Inf(-1)

	for y := 0; y <= s.h-th; y++ {
		for x := 0; x <= s.w-tw; x++ {
			var num float64
			for j := 0; j < th; j++ {
				row := s.row(y + j)
				num += floats.Dot(row[x*channels:x*channels+span], t.row(j))
			}

			score := 0.0
			if denom := math.Sqrt(tplEnergy * energy.sum(x, y, tw, th)); denom > 0 {
				score = num / denom
			}
			if score > bestScore {
				bestX, bestY, bestScore = x, y, score
			}
		}
	}

	return Match{
		X:          sb.Min.X + bestX,
		Y:          sb.Min.Y + bestY,
		Width:      tw,
		Height:     th,
		Confidence: min(max(bestScore, 0), 1),
	}, nil
}

// channels is the number of colour channels compared per pixel (R, G, B).
const channels = 3

// plane is an image flattened to row-major float64 RGB samples in 0-255.
type plane struct {
	w, h int
	pix  []float64
}

func newPlane(img image.Image) *plane {
	rgba := clone.AsRGBA(img)
	b := rgba.Bounds()
	p := &plane{w: b.Dx(), h: b.Dy(), pix: make([]float64, b.Dx()*b.Dy()*channels)}

	i := 0
	for y := 0; y < p.h; y++ {
		off := rgba.PixOffset(b.Min.X, b.Min.Y+y)
		for x := 0; x < p.w; x++ {
			px := rgba.Pix[off+x*4 : off+x*4+3]
			p.pix[i] = float64(px[0])
			p.pix[i+1] = float64(px[1])
			p.pix[i+2] = float64(px[2])
			i += channels
		}
	}
	return p
}

func (p *plane) row(y int) []float64 {
	return p.pix[y*p.w*channels : (y+1)*p.w*channels]
}

// squaredIntegral builds a summed-area table of per-pixel squared intensity.
func (p *plane) squaredIntegral() *integral {
	stride := p.w + 1
	sat := &integral{stride: stride, sums: make([]float64, stride*(p.h+1))}

	for y := 0; y < p.h; y++ {
		row := p.row(y)
		var acc float64
		for x := 0; x < p.w; x++ {
			r, g, b := row[x*channels], row[x*channels+1], row[x*channels+2]
			acc += r*r + g*g + b*b
			sat.sums[(y+1)*stride+x+1] = sat.sums[y*stride+x+1] + acc
		}
	}
	return sat
}

// integral is a summed-area table with one row and column of zero padding.
type integral struct {
	stride int
	sums   []float64
}

// sum returns the total over the w×h window anchored at (x, y).
func (s *integral) sum(x, y, w, h int) float64 {
	a := s.sums[y*s.stride+x]
	b := s.sums[y*s.stride+x+w]
	c := s.sums[(y+h)*s.stride+x]
	d := s.sums[(y+h)*s.stride+x+w]
	return d - b - c + a
}
