package main

// Limits is a (min, max) pair of real numbers. It is used both for
// fractional X windows in [0,1] and for Y value windows.
type Limits struct {
	Min float64
	Max float64
}

func (l Limits) span() float64 {
	return l.Max - l.Min
}

// rect is a cell-coordinate rectangle on the terminal canvas.
type rect struct {
	X, Y, W, H int
}

func (r rect) right() int {
	return r.X + r.W
}

func (r rect) bottom() int {
	return r.Y + r.H
}

func (r rect) contains(x, y int) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}
