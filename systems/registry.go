package systems

// Frame phases outside the grid step.
const (
	PhaseInput    = "input"
	PhaseDrain    = "drain"
	PhaseFloaters = "floaters"
)

// PhaseInfo describes a frame phase for perf display.
type PhaseInfo struct {
	ID          string // Internal identifier (used for perf tracking)
	Name        string // Display name
	Description string
	Category    string // "core" phases belong to the grid step
}

// PhaseRegistry holds metadata about all frame phases.
// This keeps the HUD and the perf CSV columns in sync.
type PhaseRegistry struct {
	phases []PhaseInfo
	byID   map[string]PhaseInfo
}

// NewPhaseRegistry creates a registry with all known phases.
func NewPhaseRegistry() *PhaseRegistry {
	reg := &PhaseRegistry{
		byID: make(map[string]PhaseInfo),
	}
	reg.Register(PhaseInfo{ID: PhaseInput, Name: "Input", Description: "Resolves clicks against the shop", Category: "frame"})
	reg.Register(PhaseInfo{ID: PhaseTiles, Name: "Tiles", Description: "Ecology, machines and redraw stagger", Category: "core"})
	reg.Register(PhaseInfo{ID: PhaseWaterSpread, Name: "Water Spread", Description: "Grass sprouting next to water", Category: "core"})
	reg.Register(PhaseInfo{ID: PhaseGrassSpread, Name: "Grass Spread", Description: "Grass sprouting next to grass", Category: "core"})
	reg.Register(PhaseInfo{ID: PhasePayouts, Name: "Payouts", Description: "Moves tile earnings to the queue", Category: "core"})
	reg.Register(PhaseInfo{ID: PhaseDrain, Name: "Drain", Description: "Credits queued payouts", Category: "frame"})
	reg.Register(PhaseInfo{ID: PhaseFloaters, Name: "Floaters", Description: "Ages floating payout numbers", Category: "frame"})
	return reg
}

// Register adds a phase to the registry.
func (r *PhaseRegistry) Register(info PhaseInfo) {
	r.phases = append(r.phases, info)
	r.byID[info.ID] = info
}

// GetName returns the display name for a phase ID.
// Falls back to the ID itself if not found.
func (r *PhaseRegistry) GetName(id string) string {
	if info, ok := r.byID[id]; ok {
		return info.Name
	}
	return id
}

// All returns all registered phases.
func (r *PhaseRegistry) All() []PhaseInfo {
	return r.phases
}

// IDs returns all phase IDs in registration order.
func (r *PhaseRegistry) IDs() []string {
	ids := make([]string, len(r.phases))
	for i, info := range r.phases {
		ids[i] = info.ID
	}
	return ids
}
