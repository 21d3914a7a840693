// Package achievements tracks per-player badges earned during play.
// The package is stateless: callers own a PlayerStats value and pass it
// in explicitly, so there is no process-wide session state.
package achievements

// ID identifies one achievement.
type ID string

const (
	FirstCorrect    ID = "first_correct"
	SpeedDemon      ID = "speed_demon"
	Perfectionist   ID = "perfectionist"
	AsymptoteMaster ID = "asymptote_master"
	InterceptHunter ID = "intercept_hunter"
	HoleFinder      ID = "hole_finder"
	LevelUp         ID = "level_up"
)

// Achievement describes one badge: display data plus its point bonus.
type Achievement struct {
	ID          ID
	Name        string
	Description string
	Icon        string
	Points      int
}

// catalog is the static achievement table. Not mutated at runtime.
var catalog = map[ID]Achievement{
	FirstCorrect: {
		ID:          FirstCorrect,
		Name:        "First Success!",
		Description: "Got your first answer correct",
		Icon:        "🎯",
		Points:      50,
	},
	SpeedDemon: {
		ID:          SpeedDemon,
		Name:        "Speed Demon",
		Description: "Answered 5 questions in under 5 seconds each",
		Icon:        "⚡",
		Points:      200,
	},
	Perfectionist: {
		ID:          Perfectionist,
		Name:        "Perfectionist",
		Description: "Got 10 questions correct in a row",
		Icon:        "💯",
		Points:      500,
	},
	AsymptoteMaster: {
		ID:          AsymptoteMaster,
		Name:        "Asymptote Master",
		Description: "Correctly identified 20 asymptotes",
		Icon:        "📈",
		Points:      300,
	},
	InterceptHunter: {
		ID:          InterceptHunter,
		Name:        "Intercept Hunter",
		Description: "Found 15 intercepts correctly",
		Icon:        "🎯",
		Points:      250,
	},
	HoleFinder: {
		ID:          HoleFinder,
		Name:        "Hole Finder",
		Description: "Identified 10 holes correctly",
		Icon:        "🕳️",
		Points:      200,
	},
	LevelUp: {
		ID:          LevelUp,
		Name:        "Level Up!",
		Description: "Reached a new difficulty level",
		Icon:        "📈",
		Points:      100,
	},
}

// Get returns the achievement for id, or nil if unknown.
func Get(id ID) *Achievement {
	if a, ok := catalog[id]; ok {
		return &a
	}
	return nil
}

// All returns the full catalog in display order.
func All() []Achievement {
	order := []ID{FirstCorrect, SpeedDemon, Perfectionist, AsymptoteMaster, InterceptHunter, HoleFinder, LevelUp}
	out := make([]Achievement, 0, len(order))
	for _, id := range order {
		out = append(out, catalog[id])
	}
	return out
}
