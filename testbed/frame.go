package main

const (
	minFrameHeight = 8
	minEventHeight = 5
	maxEventHeight = 12
	frameGap       = 1
)

// frame is the harness geometry. width and height exclude the border.
type frame struct {
	width       int
	height      int
	innerWidth  int
	innerHeight int
	eventHeight int
}

func layoutFrame(opts options, termWidth, termHeight int) frame {
	eventHeight := eventHeightFor(termHeight)
	space := max(minFrameHeight, termHeight-eventHeight-frameGap-2)

	width := clamp(opts.width, 20, termWidth-4)
	height := clamp(opts.height, minFrameHeight, space)
	if opts.full {
		width = max(20, termWidth-2)
		height = space
	}
	return frame{
		width:       width,
		height:      height,
		innerWidth:  width,
		innerHeight: height,
		eventHeight: eventHeight,
	}
}

func eventHeightFor(termHeight int) int {
	available := termHeight - minFrameHeight - frameGap - 2
	if available < minEventHeight {
		return 0
	}
	return min(clamp(termHeight/4, minEventHeight, maxEventHeight), available)
}

func clamp(value, lo, hi int) int {
	if hi < lo {
		return lo
	}
	if value < lo {
		return lo
	}
	if value > hi {
		return hi
	}
	return value
}
