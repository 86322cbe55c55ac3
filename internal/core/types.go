package core

// Size describes the dimensions of a map grid.
type Size struct {
	W int
	H int
}
