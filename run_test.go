package splitq

import "testing"

func TestResolveRun(t *testing.T) {
	var rts = []struct {
		n, open                 int
		closed, opened, literal int
	}{
		// no group open
		{n: 1, closed: 0, opened: 1, literal: 0},
		{n: 2, closed: 0, opened: 2, literal: 0},
		{n: 3, closed: 0, opened: 3, literal: 0},
		{n: 4, closed: 0, opened: 3, literal: 1},
		{n: 5, closed: 0, opened: 3, literal: 2},
		{n: 6, closed: 1, opened: 0, literal: 0},
		{n: 7, closed: 1, opened: 1, literal: 0},
		{n: 8, closed: 1, opened: 2, literal: 0},
		{n: 9, closed: 1, opened: 3, literal: 0},
		{n: 10, closed: 1, opened: 3, literal: 1},
		{n: 12, closed: 2, opened: 0, literal: 0},
		{n: 15, closed: 2, opened: 3, literal: 0},
		// group of width open in effect
		{n: 1, open: 2, closed: 0, opened: 2, literal: 1},
		{n: 2, open: 3, closed: 0, opened: 3, literal: 2},
		{n: 1, open: 1, closed: 1, opened: 0, literal: 0},
		{n: 2, open: 2, closed: 1, opened: 0, literal: 0},
		{n: 3, open: 3, closed: 1, opened: 0, literal: 0},
		{n: 5, open: 1, closed: 1, opened: 3, literal: 1},
		{n: 8, open: 3, closed: 1, opened: 3, literal: 2},
		{n: 8, open: 2, closed: 2, opened: 0, literal: 0},
		{n: 11, open: 2, closed: 2, opened: 3, literal: 0},
	}
	for _, rt := range rts {
		closed, opened, literal := resolveRun(rt.n, rt.open)
		if closed != rt.closed || opened != rt.opened || literal != rt.literal {
			t.Errorf("resolveRun(%d, %d) = (%d, %d, %d), want (%d, %d, %d)",
				rt.n, rt.open, closed, opened, literal, rt.closed, rt.opened, rt.literal)
		}
	}
}
