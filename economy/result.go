package economy

// Status is the outcome of a player action.
type Status uint8

const (
	StatusOK Status = iota
	StatusCantAfford
	StatusOccupied
	StatusMaxed
	StatusWon
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "OK"
	case StatusCantAfford:
		return "Can't Afford!"
	case StatusOccupied:
		return "Occupied!"
	case StatusMaxed:
		return "Maxed!"
	case StatusWon:
		return "You Win!"
	}
	return "?"
}

// Action names which rule resolved a click.
type Action uint8

const (
	ActionNone Action = iota
	ActionHarvest
	ActionSell
	ActionBuyTerrain
	ActionBuyMachine
	ActionUpgrade
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionHarvest:
		return "harvest"
	case ActionSell:
		return "sell"
	case ActionBuyTerrain:
		return "buy_terrain"
	case ActionBuyMachine:
		return "buy_machine"
	case ActionUpgrade:
		return "upgrade"
	}
	return "unknown"
}

// Result is a balance delta or a status message, never both.
type Result struct {
	Delta  float64
	Status Status
	Action Action
}

// Failed reports whether the action was refused.
func (r Result) Failed() bool {
	return r.Status == StatusCantAfford || r.Status == StatusOccupied || r.Status == StatusMaxed
}
