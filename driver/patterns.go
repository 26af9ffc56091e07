package driver

// Note is one LED frame. LED layout: 0,1 top row; 2,3 middle; 4,5 bottom.
// Frames mimic Kodály hand signs.
type Note [6]bool

var (
	Do     = Note{false, false, false, false, true, true}
	Re     = Note{false, false, true, true, true, true}
	Mi     = Note{false, false, true, true, false, false}
	Fa     = Note{true, false, true, true, false, false}
	Sol    = Note{true, true, true, true, false, false}
	La     = Note{true, true, false, false, false, false}
	Ti     = Note{true, false, true, false, false, false}
	DoHigh = Note{true, true, true, true, true, true}
	Rest   = Note{}
)

// PatternSteps is the length of a startup pattern in half-beats.
const PatternSteps = 12

// Pattern is a startup identification sequence, one note per half-beat.
type Pattern struct {
	Name        string
	Description string
	Notes       [PatternSteps]Note
}

// Startup patterns by card family.
var (
	BlankCard = Pattern{"Do-Do-Do", "Blank/Foundation card - Simple, stable, foundational",
		[PatternSteps]Note{Do, Do, Rest, Do, Do, Rest, Do, Do, Rest, Rest, Rest, Rest}}
	MidiCard = Pattern{"Do-Mi-Sol", "MIDI card - Major triad, complete and stable",
		[PatternSteps]Note{Do, Do, Rest, Mi, Mi, Rest, Sol, Sol, Rest, Rest, Rest, Rest}}
	SequencerCard = Pattern{"Do-Re-Mi", "Sequencer card - Ascending, progressive",
		[PatternSteps]Note{Do, Do, Rest, Re, Re, Rest, Mi, Mi, Rest, Rest, Rest, Rest}}
	EffectCard = Pattern{"Sol-Fa-Mi", "Effect card - Descending, transformative",
		[PatternSteps]Note{Sol, Sol, Rest, Fa, Fa, Rest, Mi, Mi, Rest, Rest, Rest, Rest}}
	UtilityCard = Pattern{"Mi-Sol-Do'", "Utility card - Upward resolution",
		[PatternSteps]Note{Mi, Mi, Rest, Sol, Sol, Rest, DoHigh, DoHigh, Rest, Rest, Rest, Rest}}
	SamplerCard = Pattern{"Do-Sol-Do", "Sampler card - Stable foundation with emphasis",
		[PatternSteps]Note{Do, Do, Rest, Sol, Sol, Rest, Do, Do, Rest, Rest, Rest, Rest}}
	RhythmCard = Pattern{"Ti-Do-Do", "Rhythm card - Syncopated timing",
		[PatternSteps]Note{Ti, Do, Do, Do, Do, Rest, Ti, Rest, Rest, Rest, Rest, Rest}}
	ExperimentalCard = Pattern{"Fa-Ti-Re", "Experimental card - Unusual intervals, exploration",
		[PatternSteps]Note{Fa, Fa, Rest, Ti, Ti, Rest, Re, Re, Rest, Rest, Rest, Rest}}
	PerformanceCard = Pattern{"Do-Sol-Mi-Do'", "Performance card - Triumphant progression",
		[PatternSteps]Note{Do, Sol, Mi, DoHigh, DoHigh, DoHigh, Rest, Rest, DoHigh, DoHigh, Rest, Rest}}
	DeveloperCard = Pattern{"Scale Run", "Developer card - Complete scale for testing",
		[PatternSteps]Note{Do, Re, Mi, Fa, Sol, La, Ti, DoHigh, Rest, Rest, Rest, Rest}}
)
