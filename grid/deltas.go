package grid

// Unit offsets. Rows grow southward.
var (
	Zero      = Delta{}
	Up        = Delta{Row: -1}
	Right     = Delta{Col: 1}
	Down      = Delta{Row: 1}
	Left      = Delta{Col: -1}
	UpRight   = Delta{Row: -1, Col: 1}
	DownRight = Delta{Row: 1, Col: 1}
	DownLeft  = Delta{Row: 1, Col: -1}
	UpLeft    = Delta{Row: -1, Col: -1}
)

// PlusAdjacent lists the orthogonal neighbours in Direction order
// (North, East, South, West).
var PlusAdjacent = []Delta{Up, Right, Down, Left}

// DiagAdjacent lists the diagonal neighbours clockwise from north-east.
var DiagAdjacent = []Delta{UpRight, DownRight, DownLeft, UpLeft}

// Adjacent lists all eight neighbours clockwise from north.
var Adjacent = []Delta{Up, UpRight, Right, DownRight, Down, DownLeft, Left, UpLeft}
