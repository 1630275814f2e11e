// Package stage defines the five-step creative workflow and the handoff
// convention between steps: each stage hands its accumulated prompt text and
// a snapshot of its drawing surface to the next one.
package stage

// ID names a workflow stage.
type ID string

const (
	StageDraw      ID = "draw"
	StageDescribe  ID = "describe"
	StageSituate   ID = "situate"
	StageStylize   ID = "stylize"
	StageVerbalize ID = "verbalize"
)

// ClearMode is what "clear" means on a given stage.
type ClearMode int

const (
	// ClearBlank resets the surface to the background color.
	ClearBlank ClearMode = iota
	// ClearSeed erases the user's edits but restores the drawing the stage
	// inherited from its predecessor.
	ClearSeed
)

// Config describes one stage. The sequence is static, like the mission
// catalog: the workflow is the product, not user data.
type Config struct {
	ID          ID
	Title       string
	Instruction string
	Clear       ClearMode
	RewardXP    int
}

// Sequence returns the workflow stages in order. The first stage starts from
// a blank surface, so its clear is a full reset; every later stage inherits
// a drawing and clears back to it.
func Sequence() []Config {
	return []Config{
		{ID: StageDraw, Title: "Draw", Instruction: "Sketch your subject.", Clear: ClearBlank, RewardXP: 100},
		{ID: StageDescribe, Title: "Describe", Instruction: "Name what you drew and what it looks like.", Clear: ClearSeed, RewardXP: 100},
		{ID: StageSituate, Title: "Situate", Instruction: "Put your subject somewhere: place, time, weather.", Clear: ClearSeed, RewardXP: 150},
		{ID: StageStylize, Title: "Stylize", Instruction: "Pick a visual style for the final image.", Clear: ClearSeed, RewardXP: 150},
		{ID: StageVerbalize, Title: "Verbalize", Instruction: "Write the full prompt in your own words.", Clear: ClearSeed, RewardXP: 250},
	}
}
