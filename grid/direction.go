package grid

// Direction is one of the four compass headings.
type Direction uint8

// Compass headings, clockwise from North.
const (
	North Direction = iota
	East
	South
	West
)

// Directions returns all four headings clockwise from North.
func Directions() [4]Direction {
	return [4]Direction{North, East, South, West}
}

// RotateLeft turns 90° counter-clockwise.
func (d Direction) RotateLeft() Direction { return (d + 3) % 4 }

// RotateRight turns 90° clockwise.
func (d Direction) RotateRight() Direction { return (d + 1) % 4 }

// Reverse turns 180°.
func (d Direction) Reverse() Direction { return (d + 2) % 4 }

// Delta returns the unit step for d.
func (d Direction) Delta() Delta {
	return PlusAdjacent[d%4]
}

// Times returns the step for d scaled by k.
func (d Direction) Times(k int) Delta {
	return d.Delta().Scale(k)
}

// String returns the heading name.
func (d Direction) String() string {
	switch d {
	case North:
		return "North"
	case East:
		return "East"
	case South:
		return "South"
	case West:
		return "West"
	}

	return "Direction(?)"
}
