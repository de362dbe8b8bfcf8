package catalog

import "github.com/akyairhashvil/breathe/internal/models"

// Built-in technique IDs.
const (
	Relaxation = "relaxation"
	Box        = "box"
	Calm       = "calm"
)

var builtinEntries = []Entry{
	{
		Technique:   models.Technique{ID: Relaxation, Name: "Relaxation", Inhale: 4, Hold: 0, Exhale: 6},
		Description: "A simple technique to help you relax and reduce stress",
		Pattern:     "4 seconds in, 6 seconds out",
		Benefits:    []string{"Reduces anxiety", "Promotes relaxation", "Easy to learn"},
		Color:       "#4FC3F7",
	},
	{
		Technique:   models.Technique{ID: Box, Name: "Box Breathing", Inhale: 4, Hold: 4, Exhale: 4},
		Description: "Used by Navy SEALs for focus and calm under pressure",
		Pattern:     "4-4-4-4 pattern (in-hold-out-hold)",
		Benefits:    []string{"Improves focus", "Reduces stress", "Enhances performance"},
		Color:       "#9C27B0",
	},
	{
		Technique:   models.Technique{ID: Calm, Name: "4-7-8 Technique", Inhale: 4, Hold: 7, Exhale: 8},
		Description: "Dr. Andrew Weil's technique for deep relaxation and sleep",
		Pattern:     "4 seconds in, 7 seconds hold, 8 seconds out",
		Benefits:    []string{"Promotes sleep", "Reduces anxiety", "Calms nervous system"},
		Color:       "#66BB6A",
	},
}

// Tips are general practice notes shown under the technique cards.
var Tips = []string{
	"Find a quiet, comfortable space",
	"Sit or lie down with good posture",
	"Focus on your breath, not distractions",
	"Start with shorter sessions and build up",
	"Practice regularly for best results",
}

var builtin = mustBuiltin()

func mustBuiltin() *Catalog {
	c, err := New(builtinEntries...)
	if err != nil {
		panic(err)
	}
	return c
}

// Default returns the shared built-in catalog.
func Default() *Catalog { return builtin }
