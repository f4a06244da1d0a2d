package services

// PatternDescriptor is one entry in the built-in rota pattern catalog. Labels
// is the explicit set of shift variants the cycle uses; it is structured
// metadata, never derived from the label or description text.
type PatternDescriptor struct {
	ID          string       `json:"id"`
	ShiftLength string       `json:"shift_length"`
	Label       string       `json:"label"`
	Description string       `json:"description"`
	Cycle       []ShiftLabel `json:"cycle"`
	Labels      []ShiftLabel `json:"labels"`
	Kind        PatternKind  `json:"kind"`
}

// DefaultCycle backs every unknown-pattern fallback so calendar rendering
// never fails on a missing catalog entry.
var DefaultCycle = []ShiftLabel{ShiftDay, ShiftNight, ShiftOff}

var catalog = buildCatalog()

func buildCatalog() []PatternDescriptor {
	entries := []PatternDescriptor{
		{
			ID: "8h-5on-2off-days", ShiftLength: "8h",
			Label:       "5 on / 2 off · Mon–Fri days",
			Description: "Standard Mon–Fri day shifts with weekends off.",
			Cycle:       []ShiftLabel{ShiftMorning, ShiftMorning, ShiftMorning, ShiftAfternoon, ShiftAfternoon, ShiftOff, ShiftOff},
		},
		{
			ID: "8h-2e-2l-4off", ShiftLength: "8h",
			Label:       "2 early / 2 late / 4 off",
			Description: "Good for teams mixing early and late shifts with long recovery.",
			Cycle:       []ShiftLabel{ShiftMorning, ShiftMorning, ShiftAfternoon, ShiftAfternoon, ShiftOff, ShiftOff, ShiftOff, ShiftOff},
		},
		{
			ID: "8h-2e-2l-2n-4off", ShiftLength: "8h",
			Label:       "2 early / 2 late / 2 nights / 4 off",
			Description: "Balanced rotation across early, late and nights.",
			Cycle:       []ShiftLabel{ShiftMorning, ShiftMorning, ShiftAfternoon, ShiftAfternoon, ShiftNight, ShiftNight, ShiftOff, ShiftOff},
		},
		{
			ID: "8h-4on-2off", ShiftLength: "8h",
			Label:       "4 on / 2 off · rotating",
			Description: "Classic 4 on / 2 off for 24/7 cover.",
			Cycle:       []ShiftLabel{ShiftMorning, ShiftMorning, ShiftAfternoon, ShiftAfternoon, ShiftOff, ShiftOff},
		},
		{
			ID: "8h-6on-3off", ShiftLength: "8h",
			Label:       "6 on / 3 off · rotating",
			Description: "High-intensity pattern with regular 3-day breaks.",
			Cycle:       []ShiftLabel{ShiftMorning, ShiftMorning, ShiftMorning, ShiftAfternoon, ShiftAfternoon, ShiftAfternoon, ShiftOff, ShiftOff, ShiftOff},
		},
		{
			ID: "8h-2d-2n-4off", ShiftLength: "8h",
			Label:       "2 days / 2 nights / 4 off · 8h",
			Description: "Alternating days and nights with equal recovery time.",
			Cycle:       []ShiftLabel{ShiftMorning, ShiftMorning, ShiftNight, ShiftNight, ShiftOff, ShiftOff, ShiftOff, ShiftOff},
		},
		{
			ID: "12h-4on-4off", ShiftLength: "12h",
			Label:       "4 on / 4 off · 12h",
			Description: "Very common 12h rota for emergency, plant and security teams.",
			Cycle:       []ShiftLabel{ShiftDay, ShiftDay, ShiftDay, ShiftDay, ShiftOff, ShiftOff, ShiftOff, ShiftOff},
		},
		{
			ID: "12h-2d-2n-4off", ShiftLength: "12h",
			Label:       "2 days / 2 nights / 4 off · 12h",
			Description: "Two day shifts, two nights, then four days off.",
			Cycle:       []ShiftLabel{ShiftDay, ShiftDay, ShiftNight, ShiftNight, ShiftOff, ShiftOff, ShiftOff, ShiftOff},
		},
		{
			ID: "12h-3on-3off", ShiftLength: "12h",
			Label:       "3 on / 3 off · 12h",
			Description: "Simple 3 on / 3 off rhythm for 24/7 cover.",
			Cycle:       []ShiftLabel{ShiftDay, ShiftDay, ShiftDay, ShiftOff, ShiftOff, ShiftOff},
		},
		{
			ID: "12h-7on-7off", ShiftLength: "12h",
			Label:       "7 on / 7 off · 12h",
			Description: "Intense block of seven long shifts followed by a full week off.",
			Cycle:       []ShiftLabel{ShiftDay, ShiftDay, ShiftDay, ShiftDay, ShiftDay, ShiftDay, ShiftDay, ShiftOff, ShiftOff, ShiftOff, ShiftOff, ShiftOff, ShiftOff, ShiftOff},
		},
		{
			ID: "12h-panama-223", ShiftLength: "12h",
			Label:       "Panama 2–2–3 · 12h",
			Description: "Popular 2–2–3 pattern with every other weekend off.",
			Cycle:       []ShiftLabel{ShiftDay, ShiftDay, ShiftOff, ShiftOff, ShiftDay, ShiftDay, ShiftDay},
		},
		{
			ID: "12h-du-pont", ShiftLength: "12h",
			Label:       "DuPont · 12h rotating",
			Description: "Continuous 24/7 DuPont rotation with regular long breaks.",
			Cycle:       []ShiftLabel{ShiftDay, ShiftDay, ShiftDay, ShiftOff, ShiftOff, ShiftNight, ShiftNight, ShiftNight, ShiftOff, ShiftOff},
		},
		{
			ID: "12h-continental", ShiftLength: "12h",
			Label:       "Continental 2–2–3 · 12h",
			Description: "Continental style rotation with a repeating 2–2–3 structure.",
			Cycle:       []ShiftLabel{ShiftDay, ShiftDay, ShiftOff, ShiftDay, ShiftDay, ShiftOff, ShiftNight, ShiftNight, ShiftOff},
		},
		{
			ID: "12h-2d-3off-2n-3off", ShiftLength: "12h",
			Label:       "2 days / 3 off / 2 nights / 3 off",
			Description: "Separates day and night blocks with three-day recovery windows.",
			Cycle:       []ShiftLabel{ShiftDay, ShiftDay, ShiftOff, ShiftOff, ShiftOff, ShiftNight, ShiftNight, ShiftOff, ShiftOff, ShiftOff},
		},
		{
			ID: "12h-3d-3n-6off", ShiftLength: "12h",
			Label:       "3 days / 3 nights / 6 off",
			Description: "Three days, three nights, then six full days off.",
			Cycle:       []ShiftLabel{ShiftDay, ShiftDay, ShiftDay, ShiftNight, ShiftNight, ShiftNight, ShiftOff, ShiftOff, ShiftOff, ShiftOff, ShiftOff, ShiftOff},
		},
		{
			ID: "16h-2on-2off", ShiftLength: "16h",
			Label:       "2 on / 2 off · 16h",
			Description: "Long 16h shifts with equal time off for recovery.",
			Cycle:       []ShiftLabel{ShiftDay, ShiftDay, ShiftOff, ShiftOff},
		},
		{
			ID: "16h-3on-3off", ShiftLength: "16h",
			Label:       "3 on / 3 off · 16h",
			Description: "Three long shifts followed by three full days off.",
			Cycle:       []ShiftLabel{ShiftDay, ShiftDay, ShiftDay, ShiftOff, ShiftOff, ShiftOff},
		},
		{
			ID: "16h-2d-2off-2n-3off", ShiftLength: "16h",
			Label:       "2 long days / 2 off / 2 long nights / 3 off",
			Description: "Split between long days and long nights with recovery between.",
			Cycle:       []ShiftLabel{ShiftDay, ShiftDay, ShiftOff, ShiftOff, ShiftNight, ShiftNight, ShiftOff, ShiftOff, ShiftOff},
		},
		{
			ID: "16h-1on-2off", ShiftLength: "16h",
			Label:       "1 on / 2 off · 16h (very heavy shifts)",
			Description: "Occasional very long shifts with plenty of time off.",
			Cycle:       []ShiftLabel{ShiftDay, ShiftOff, ShiftOff},
		},
	}

	for index := range entries {
		entries[index].Labels = distinctLabels(entries[index].Cycle)
		entries[index].Kind = InferPatternKind(entries[index].Cycle)
	}
	return entries
}

func distinctLabels(cycle []ShiftLabel) []ShiftLabel {
	seen := make(map[ShiftLabel]bool, len(cycle))
	labels := make([]ShiftLabel, 0, len(cycle))
	for _, label := range cycle {
		if seen[label] {
			continue
		}
		seen[label] = true
		labels = append(labels, label)
	}
	return labels
}

// ListPatterns returns catalog entries, optionally filtered by shift length
// ("8h", "12h", "16h"). An empty filter returns everything.
func ListPatterns(shiftLength string) []PatternDescriptor {
	if shiftLength == "" {
		result := make([]PatternDescriptor, len(catalog))
		copy(result, catalog)
		return result
	}

	result := make([]PatternDescriptor, 0, len(catalog))
	for _, entry := range catalog {
		if entry.ShiftLength == shiftLength {
			result = append(result, entry)
		}
	}
	return result
}

// PatternByID looks up a catalog entry. The second return reports whether it
// exists; callers fall back to DefaultCycle rather than erroring, since a
// stale pattern id must never break calendar rendering.
func PatternByID(patternID string) (PatternDescriptor, bool) {
	for _, entry := range catalog {
		if entry.ID == patternID {
			return entry, true
		}
	}
	return PatternDescriptor{}, false
}

// CycleFor resolves a pattern id to its cycle, defaulting on unknown ids.
func CycleFor(patternID string) []ShiftLabel {
	if entry, found := PatternByID(patternID); found && len(entry.Cycle) > 0 {
		cycle := make([]ShiftLabel, len(entry.Cycle))
		copy(cycle, entry.Cycle)
		return cycle
	}
	cycle := make([]ShiftLabel, len(DefaultCycle))
	copy(cycle, DefaultCycle)
	return cycle
}
