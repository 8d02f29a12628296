package gamemap

// Visibility answers whether a cell is currently in the player's field of view.
type Visibility interface {
	IsVisible(x, y int) bool
}

// VisibilityFunc adapts a plain function to Visibility.
type VisibilityFunc func(x, y int) bool

func (f VisibilityFunc) IsVisible(x, y int) bool { return f(x, y) }
