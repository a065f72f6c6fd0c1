package euchre

// Options configures a game of euchre
type Options struct {
	// WinThreshold is the score a team must reach to win the game
	WinThreshold int

	// Seed seeds the deck shuffles for reproducible deals.
	// Leave at 0 for a time-based seed. Tests only.
	Seed int64
}

// DefaultOptions returns the default game options
func DefaultOptions() Options {
	return Options{
		WinThreshold: 10,
	}
}
