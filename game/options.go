package game

// Options configures a game instance.
type Options struct {
	Seed           int64
	LogStats       bool    // log window stats and bookmarks through slog
	StatsWindowSec float64 // 0 uses the config value
	OutputDir      string  // CSV output directory, empty disables it
	Headless       bool
	StepsPerUpdate int  // frames stepped per Update call
	Autoplay       bool // let the bot click and buy
	StartPaused    bool // hold the board behind the instructions menu
}
