package game

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation, used for reproducible level
	// dressing. A seed of 0 means a time-derived seed.
	Seed int64
	// Width and Height are the map dimensions.
	Width  int
	Height int
	// FovRadius is the base view radius before stance adjustment.
	FovRadius int
	// Obstacles is how many obstacle stamps to scatter on the map.
	Obstacles int
}

// DefaultConfig returns the configuration used when nothing overrides it.
func DefaultConfig() Config {
	return Config{
		Width:     80,
		Height:    24,
		FovRadius: 8,
		Obstacles: 30,
	}
}
