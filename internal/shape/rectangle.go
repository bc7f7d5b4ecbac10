package shape

// Rectangle is an axis-aligned rectangle. Dimensions are not validated.
type Rectangle struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// NewRectangle returns a rectangle with the given dimensions.
func NewRectangle(width, height float64) Rectangle {
	return Rectangle{Width: width, Height: height}
}

// Area returns Width * Height.
func (r Rectangle) Area() float64 {
	return r.Width * r.Height
}
