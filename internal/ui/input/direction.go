package input

// Direction defines the ways the cursor can move through a list.
type Direction int

const (
	Up Direction = iota //nolint:varnamelen
	Down
	Top
	Bottom
)
