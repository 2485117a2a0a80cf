package event

// ResizePayload carries a play-area measurement in pixels
type ResizePayload struct {
	Width  float64
	Height float64
}

// PaddleDragPayload carries a horizontal paddle delta in pixels
type PaddleDragPayload struct {
	Delta float64
}

// BrickPayload identifies a destroyed brick
type BrickPayload struct {
	Index  int
	Row    int
	Column int
}

// OutcomePayload summarizes a finished match
type OutcomePayload struct {
	Score     int
	Remaining int
	Ticks     uint64
}
