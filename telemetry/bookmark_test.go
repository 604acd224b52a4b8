package telemetry

import "testing"

func hasBookmark(bms []Bookmark, typ BookmarkType) bool {
	for _, bm := range bms {
		if bm.Type == typ {
			return true
		}
	}
	return false
}

func TestBookmarkDetector_IncomeBreakthrough(t *testing.T) {
	bd := NewBookmarkDetector(10)

	for i := 0; i < 5; i++ {
		bd.Check(WindowStats{WindowEndTick: int32(i * 300), Earned: 100})
	}

	bookmarks := bd.Check(WindowStats{WindowEndTick: 1500, Earned: 450})
	if !hasBookmark(bookmarks, BookmarkIncomeBreakthrough) {
		t.Error("expected income_breakthrough bookmark")
	}
}

func TestBookmarkDetector_GrassBloom(t *testing.T) {
	bd := NewBookmarkDetector(10)

	for i := 0; i < 4; i++ {
		bd.Check(WindowStats{WindowEndTick: int32(i * 300), Grass: 8})
	}

	bookmarks := bd.Check(WindowStats{WindowEndTick: 1200, Grass: 30})
	if !hasBookmark(bookmarks, BookmarkGrassBloom) {
		t.Error("expected grass_bloom bookmark")
	}
}

func TestBookmarkDetector_Drought(t *testing.T) {
	bd := NewBookmarkDetector(10)

	bd.Check(WindowStats{WindowEndTick: 0, Water: 4})
	bd.Check(WindowStats{WindowEndTick: 300, Water: 2})

	bookmarks := bd.Check(WindowStats{WindowEndTick: 600, Water: 0})
	if !hasBookmark(bookmarks, BookmarkDrought) {
		t.Fatal("expected drought bookmark")
	}

	// Fires once until water returns
	bookmarks = bd.Check(WindowStats{WindowEndTick: 900, Water: 0})
	if hasBookmark(bookmarks, BookmarkDrought) {
		t.Error("drought bookmark repeated")
	}
}

func TestBookmarkDetector_BalanceCrash(t *testing.T) {
	bd := NewBookmarkDetector(10)

	for i := 0; i < 3; i++ {
		bd.Check(WindowStats{WindowEndTick: int32(i * 300), Balance: 1000})
	}

	bookmarks := bd.Check(WindowStats{WindowEndTick: 900, Balance: 400})
	if !hasBookmark(bookmarks, BookmarkBalanceCrash) {
		t.Error("expected balance_crash bookmark")
	}
}

func TestBookmarkDetector_SteadyIncome(t *testing.T) {
	bd := NewBookmarkDetector(10)

	fired := 0
	for i := 0; i < 12; i++ {
		bms := bd.Check(WindowStats{WindowEndTick: int32(i * 300), Earned: 200})
		if hasBookmark(bms, BookmarkSteadyIncome) {
			fired++
		}
	}
	if fired != 1 {
		t.Errorf("steady_income fired %d times, want 1", fired)
	}
}
