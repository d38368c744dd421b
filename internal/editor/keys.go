package editor

// Key identifies one physical key contract the editor's state machine
// dispatches on, matching the host C ABI's handle_<KEY> entry points.
// A KeyEvent carries the extra payload a few of these need.
type Key int

const (
	KeyDefault Key = iota // a printable rune, carried in KeyEvent.Rune
	KeyBackspace
	KeyDelete
	KeyEnter
	KeyEsc
	KeySpace
	KeyTab
	KeyDblTab
	KeyHome
	KeyEnd
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyCapsLock
	KeyShiftLeft
	KeyShiftRight
	KeyShiftSpace
	KeyCtrlNum // a digit 0-9 held with Ctrl, carried in KeyEvent.Num
	KeyNumLock
)

// KeyEvent is one keystroke fed to Editor.Process.
type KeyEvent struct {
	Key  Key
	Rune rune // valid when Key == KeyDefault
	Num  int  // valid when Key == KeyCtrlNum
}

// Outcome is a bitset describing how Process disposed of a KeyEvent,
// matching the C ABI's {Ignore, Commit, Bell, Absorb} return codes.
type Outcome int

const (
	Ignored   Outcome = 1 << iota // key not recognized in the current state
	Committed                     // commit buffer has new text to read
	Bell                          // invalid operation in context; host should beep
	Absorbed                      // key was consumed into editor state
)

func (o Outcome) Has(bit Outcome) bool { return o&bit != 0 }
