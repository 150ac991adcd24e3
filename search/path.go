package search

// Path is the ordered sequence of states from start to a chosen goal.
type Path []*State

// Reconstruct walks goal's parent chain back to the start (whose Parent
// is nil) and returns the path in forward order: start first, goal last.
func Reconstruct(goal *State) Path {
	var reversed Path
	for s := goal; s != nil; s = s.Parent {
		reversed = append(reversed, s)
	}

	path := make(Path, len(reversed))
	for i, s := range reversed {
		path[len(reversed)-1-i] = s
	}
	return path
}
