// Package detection locates corner marker glyphs inside screenshots.
//
// Every screenshot fed to the collage builder is framed by four small marker
// images, one per corner (tl, tr, bl, br). This package finds the best
// placement of each marker by template matching and reports where it landed.
//
// # Matching
//
// A Matcher returns the single highest-scoring placement of a template. The
// pure-Go CrossCorrelation matcher computes normalized cross-correlation at
// every placement; building with -tags gocv replaces it with OpenCV's
// matchTemplate through NewMatcher. Both report a confidence in 0.0 to 1.0:
//   - 1.0 = the window is an exact copy of the template
//   - lower values mean the window only partially resembles it
//
// # Confidence Threshold
//
// A Matcher never rejects its best placement. CornerSet.Locate applies the
// caller's minimum confidence and fails with ErrLowConfidence when a marker
// is missing, instead of silently cropping to an arbitrary region.
//
// # Coordinate System
//
// All coordinates use the standard image convention:
//   - Origin (0, 0) at top-left corner
//   - X increases rightward
//   - Y increases downward
//   - Match.Rect() is inclusive at Min and exclusive at Max
//
// # Limitations
//
// Matching is translation-only: markers must appear at the template's scale
// and orientation. Overlapping or partially hidden markers get a best-effort
// placement with a reduced confidence.
package detection
