package editor

// ConversionEngine names a phrase-segmentation strategy a caller can
// record in Options.Engine.
type ConversionEngine int

const (
	EngineSimple ConversionEngine = iota
	EngineChewing
	EngineFuzzyChewing
)

// Mode is the editor's top-level input mode.
type Mode int

const (
	ModeChinese Mode = iota
	ModeSymbol
)

// Shape selects half-width or full-width rendering for digits, Latin
// letters, and punctuation typed while the composition is idle.
type Shape int

const (
	ShapeHalf Shape = iota
	ShapeFull
)

// Options holds the editor's tunable booleans and integers. There is no
// config-file format of its own; Options is a plain struct a caller (CLI
// flags, daemon startup, capi setters) fills in directly.
type Options struct {
	// AddPhraseForward selects whether AddPhrase marks its range growing
	// forward from the anchor (true) or backward (false).
	AddPhraseForward bool
	// SpaceAsSelection makes Space in Entering open the candidate window
	// instead of committing tone 1 (layout-dependent otherwise).
	SpaceAsSelection bool
	// EscCleanAllBuf makes Esc in Entering discard the whole composition
	// instead of just the in-progress syllable.
	EscCleanAllBuf bool
	// AutoShiftCursor is stored and settable through capi; the editor does
	// not read it. The cursor always moves past a newly inserted symbol.
	AutoShiftCursor bool
	// EasySymbolInput is stored and settable through capi; the editor does
	// not read it, so it enables no symbol shortcuts.
	EasySymbolInput bool
	// PhraseChoiceRearward anchors the candidate window at the symbol
	// before the cursor instead of the one at/after it.
	PhraseChoiceRearward bool
	// SelectionKeys is the ordered key set used to pick a candidate by
	// position within a page; default "1234567890".
	SelectionKeys string
	// CandidatesPerPage bounds how many candidates one page shows.
	CandidatesPerPage int
	// MaxPreeditLength forces a commit once the composition reaches this
	// many symbols.
	MaxPreeditLength int
	// Engine records the chosen ConversionEngine and is settable through
	// capi; the editor does not read it and always runs the one conversion
	// in internal/conversion.
	Engine ConversionEngine
	// AutoLearn enables writing user-phrase frequency updates on commit.
	AutoLearn bool
	// KeyboardLayoutIndex records a keyboard layout number for callers; the
	// editor does not read it and uses the internal/keyboard.SyllableEditor
	// passed to New.
	KeyboardLayoutIndex int
	// FullShape is the initial Shape (ShapeFull if true).
	FullShape bool
}

// DefaultOptions returns the option set a fresh context starts with,
// matching the reference engine's shipped defaults.
func DefaultOptions() Options {
	return Options{
		AddPhraseForward:     false,
		SpaceAsSelection:     false,
		EscCleanAllBuf:       false,
		AutoShiftCursor:      false,
		EasySymbolInput:      false,
		PhraseChoiceRearward: false,
		SelectionKeys:        "1234567890",
		CandidatesPerPage:    10,
		MaxPreeditLength:     39,
		Engine:               EngineChewing,
		AutoLearn:            true,
		KeyboardLayoutIndex:  0,
		FullShape:            false,
	}
}
