package telemetry

import (
	"fmt"
	"log/slog"

	"gonum.org/v1/gonum/stat"
)

// BookmarkType identifies the type of bookmark.
type BookmarkType string

const (
	BookmarkIncomeBreakthrough BookmarkType = "income_breakthrough"
	BookmarkGrassBloom         BookmarkType = "grass_bloom"
	BookmarkDrought            BookmarkType = "drought"
	BookmarkBalanceCrash       BookmarkType = "balance_crash"
	BookmarkSteadyIncome       BookmarkType = "steady_income"
)

// Bookmark represents an automatically triggered bookmark.
type Bookmark struct {
	Type        BookmarkType `csv:"type"`
	Tick        int32        `csv:"tick"`
	Description string       `csv:"description"`
}

// LogBookmark logs the bookmark using slog.
func (b Bookmark) LogBookmark() {
	slog.Info("bookmark",
		"type", string(b.Type),
		"tick", b.Tick,
		"description", b.Description,
	)
}

// BookmarkDetector detects interesting moments in a run.
type BookmarkDetector struct {
	// Rolling history (circular buffer)
	history     []WindowStats
	historySize int
	historyIdx  int
	historyFull bool

	// State tracking
	recentWaterPeak    int     // most water tiles seen since the last drought
	recentBalancePeak  float64 // highest balance since the last crash
	steadyWindowsCount int     // consecutive windows with steady income
}

// NewBookmarkDetector creates a detector with the given history size.
func NewBookmarkDetector(historySize int) *BookmarkDetector {
	if historySize < 5 {
		historySize = 5 // minimum for steady income detection
	}
	return &BookmarkDetector{
		history:     make([]WindowStats, historySize),
		historySize: historySize,
	}
}

// Check analyzes the latest stats and returns any triggered bookmarks.
func (bd *BookmarkDetector) Check(stats WindowStats) []Bookmark {
	var bookmarks []Bookmark

	if bd.historyFull || bd.historyIdx > 0 {
		checks := []func(WindowStats) *Bookmark{
			bd.checkIncomeBreakthrough,
			bd.checkGrassBloom,
			bd.checkDrought,
			bd.checkBalanceCrash,
			bd.checkSteadyIncome,
		}
		for _, check := range checks {
			if b := check(stats); b != nil {
				bookmarks = append(bookmarks, *b)
			}
		}
	}

	bd.addToHistory(stats)

	if stats.Water > bd.recentWaterPeak {
		bd.recentWaterPeak = stats.Water
	}
	if stats.Balance > bd.recentBalancePeak {
		bd.recentBalancePeak = stats.Balance
	}

	return bookmarks
}

func (bd *BookmarkDetector) addToHistory(stats WindowStats) {
	bd.history[bd.historyIdx] = stats
	bd.historyIdx = (bd.historyIdx + 1) % bd.historySize
	if bd.historyIdx == 0 {
		bd.historyFull = true
	}
}

func (bd *BookmarkDetector) getHistory() []WindowStats {
	if bd.historyFull {
		return bd.history
	}
	return bd.history[:bd.historyIdx]
}

func (bd *BookmarkDetector) checkIncomeBreakthrough(stats WindowStats) *Bookmark {
	history := bd.getHistory()
	if len(history) < 3 {
		return nil
	}

	var total float64
	for _, h := range history {
		total += h.Earned
	}
	avg := total / float64(len(history))
	if avg <= 0 {
		return nil
	}

	if stats.Earned > avg*2.0 && stats.Earned >= 100 {
		return &Bookmark{
			Type:        BookmarkIncomeBreakthrough,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("Earned %.0f is %.1fx average (%.0f)", stats.Earned, stats.Earned/avg, avg),
		}
	}

	return nil
}

func (bd *BookmarkDetector) checkGrassBloom(stats WindowStats) *Bookmark {
	history := bd.getHistory()
	if len(history) < 3 {
		return nil
	}

	var total int
	for _, h := range history {
		total += h.Grass
	}
	avg := float64(total) / float64(len(history))
	if avg == 0 {
		return nil
	}

	if float64(stats.Grass) > avg*2.0 && stats.Grass >= 10 {
		return &Bookmark{
			Type:        BookmarkGrassBloom,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("Grass covers %d tiles, %.1fx average (%.0f)", stats.Grass, float64(stats.Grass)/avg, avg),
		}
	}

	return nil
}

func (bd *BookmarkDetector) checkDrought(stats WindowStats) *Bookmark {
	if bd.recentWaterPeak < 3 || stats.Water > 0 {
		return nil
	}

	oldPeak := bd.recentWaterPeak
	bd.recentWaterPeak = 0

	return &Bookmark{
		Type:        BookmarkDrought,
		Tick:        stats.WindowEndTick,
		Description: fmt.Sprintf("All water evaporated (peak %d tiles)", oldPeak),
	}
}

func (bd *BookmarkDetector) checkBalanceCrash(stats WindowStats) *Bookmark {
	if bd.recentBalancePeak <= 0 {
		return nil
	}

	drop := 1.0 - stats.Balance/bd.recentBalancePeak
	if drop > 0.30 && stats.Balance < bd.recentBalancePeak-100 {
		oldPeak := bd.recentBalancePeak
		bd.recentBalancePeak = stats.Balance

		return &Bookmark{
			Type:        BookmarkBalanceCrash,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("Balance fell %.0f%% from peak %.0f to %.0f", drop*100, oldPeak, stats.Balance),
		}
	}

	return nil
}

func (bd *BookmarkDetector) checkSteadyIncome(stats WindowStats) *Bookmark {
	if stats.Earned <= 0 {
		bd.steadyWindowsCount = 0
		return nil
	}

	history := bd.getHistory()
	if len(history) < 4 {
		return nil
	}

	recent := make([]float64, 4)
	for i, h := range history[len(history)-4:] {
		recent[i] = h.Earned
	}
	mean, variance := stat.PopMeanVariance(recent, nil)

	// CV^2 < 0.04 means CV < 0.2
	if mean > 0 && variance/(mean*mean) < 0.04 {
		bd.steadyWindowsCount++
	} else {
		bd.steadyWindowsCount = 0
	}

	if bd.steadyWindowsCount == 5 { // trigger exactly once at 5 windows
		return &Bookmark{
			Type:        BookmarkSteadyIncome,
			Tick:        stats.WindowEndTick,
			Description: fmt.Sprintf("Steady income near %.0f per window over 5+ windows", mean),
		}
	}

	return nil
}
