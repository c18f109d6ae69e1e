package splitq

// maxWidth is the largest backtick delimiter width.
const maxWidth = 3

// resolveRun classifies a run of n consecutive unescaped backticks
// seen while a code group of width open (0 when none) is in effect.
// It returns the number of code groups the run closes (counting the
// currently open one, if any, and complete open+close pairs), the
// width of the group the run leaves open (0 for none), and the count
// of backticks that become literal content instead of delimiters.
//
// A run shorter than the open width cannot complete the match, so it
// is all literal. Otherwise the open group is closed first and the
// remainder forms width-3 pairs; a trailing odd unit of 3 opens a new
// width-3 group, a sub-3 remainder opens a group of that width, and
// 1-2 backticks beyond an odd unit are literal content of the group
// the unit opened.
func resolveRun(n, open int) (closed, opened, literal int) {
	if open > 0 {
		if n < open {
			return 0, open, n
		}
		closed = 1
		n -= open
	}
	closed += n / (2 * maxWidth)
	n %= 2 * maxWidth
	switch {
	case n == 0:
		return closed, 0, 0
	case n <= maxWidth:
		return closed, n, 0
	default:
		return closed, maxWidth, n - maxWidth
	}
}
