//go:build !gocv

package detection

// Backend names the matcher NewMatcher returns in this build.
const Backend = "cross-correlation (pure Go)"

// NewMatcher returns the default Matcher for this build.
//
// Without the gocv build tag this is CrossCorrelation.
func NewMatcher() Matcher {
	return CrossCorrelation{}
}
