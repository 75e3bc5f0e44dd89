// Package paper models a sheet of paper folded flat along straight creases.
//
// The sheet is a list of polygonal facets. Every vertex carries two
// coordinates: its material position on the unfolded unit square and its
// displayed position after the folds applied so far. A fold cuts every facet
// along a line and reflects the pieces on one side of it; the pieces keep
// their material coordinates, so the crease pattern can always be recovered.
//
// All values in this package are treated as immutable. Operations build new
// slices instead of modifying their inputs, which lets a [Session] keep old
// states on its undo stack without copying them.
package paper
