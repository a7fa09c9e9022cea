package ewansgame

// Options are options for creating a new game
type Options struct {
	// ShowRunningScores prints both scores after every hand
	ShowRunningScores bool
}

// DefaultOptions returns the default options
func DefaultOptions() Options {
	return Options{
		ShowRunningScores: false,
	}
}
