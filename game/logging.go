package game

import (
	"log/slog"

	"github.com/pthm-cable/tileclicker/economy"
	"github.com/pthm-cable/tileclicker/systems"
)

// logTransaction records shop activity. Harvest clicks are too frequent to
// log individually and only reach the window stats.
func logTransaction(tick int32, res economy.Result, b *economy.Button, c systems.Coord, balance float64) {
	if res.Failed() {
		slog.Debug("refused",
			"tick", tick,
			"status", res.Status.String(),
			"button", buttonLabel(b),
		)
		return
	}

	var event string
	switch res.Action {
	case economy.ActionBuyTerrain, economy.ActionBuyMachine:
		event = "purchase"
	case economy.ActionSell:
		event = "sale"
	case economy.ActionUpgrade:
		event = "upgrade"
	case economy.ActionHarvest, economy.ActionNone:
		return
	}

	slog.Info(event,
		"tick", tick,
		"button", buttonLabel(b),
		"x", c.X,
		"y", c.Y,
		"delta", res.Delta,
		"balance", balance,
	)

	if res.Status == economy.StatusWon {
		slog.Info("win", "tick", tick, "balance", balance)
	}
}

func logRenderRate(tick int32, fps float64, from, to int) {
	slog.Info("render_rate",
		"tick", tick,
		"fps", fps,
		"from", from,
		"to", to,
	)
}

func buttonLabel(b *economy.Button) string {
	if b == nil {
		return ""
	}
	return b.Label
}
