//go:build gocv

// Building with -tags gocv swaps the default matcher for OpenCV's
// matchTemplate. OpenCV 4 and its headers must be installed.

package detection

import (
	"fmt"
	"image"

	"gocv.io/x/gocv"
)

// Backend names the matcher NewMatcher returns in this build.
const Backend = "opencv (gocv)"

// NewMatcher returns the default Matcher for this build.
func NewMatcher() Matcher {
	return OpenCV{}
}

// OpenCV is a Matcher backed by cv::matchTemplate in TM_CCORR_NORMED mode.
// Scores and tie-breaking follow OpenCV's minMaxLoc.
type OpenCV struct{}

// Locate implements Matcher.
func (OpenCV) Locate(src, tpl image.Image) (Match, error) {
	sb, tb := src.Bounds(), tpl.Bounds()
	tw, th := tb.Dx(), tb.Dy()

	if tw <= 0 || th <= 0 {
		return Match{}, ErrEmptyTemplate
	}
	if tw > sb.Dx() || th > sb.Dy() {
		return Match{}, fmt.Errorf("%w: template %dx%d, source %dx%d",
			ErrTemplateTooLarge, tw, th, sb.Dx(), sb.Dy())
	}

	srcMat, err := gocv.ImageToMatRGB(src)
	if err != nil {
		return Match{}, fmt.Errorf("failed to convert source: %w", err)
	}
	defer srcMat.Close()

	tplMat, err := gocv.ImageToMatRGB(tpl)
	if err != nil {
		return Match{}, fmt.Errorf("failed to convert template: %w", err)
	}
	defer tplMat.Close()

	result := gocv.NewMat()
	defer result.Close()
	mask := gocv.NewMat()
	defer mask.Close()

	gocv.MatchTemplate(srcMat, tplMat, &result, gocv.TmCcorrNormed, mask)
	_, maxVal, _, maxLoc := gocv.MinMaxLoc(result)

	return Match{
		X:          sb.Min.X + maxLoc.X,
		Y:          sb.Min.Y + maxLoc.Y,
		Width:      tw,
		Height:     th,
		Confidence: min(max(float64(maxVal), 0), 1),
	}, nil
}
