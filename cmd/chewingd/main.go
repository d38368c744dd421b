// Command chewingd is the D-Bus host daemon that exposes the editor to a
// desktop input-method framework over github.com/godbus/dbus/v5, backed
// by internal/capi.Context.
package main

import (
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/godbus/dbus/v5"

	"github.com/chewing/gochewing/internal/capi"
	"github.com/chewing/gochewing/internal/dictionary"
	"github.com/chewing/gochewing/internal/editor"
	"github.com/chewing/gochewing/internal/keyboard"
	"github.com/chewing/gochewing/internal/xenv"
	"github.com/chewing/gochewing/internal/zhlog"
)

const (
	serviceName = "org.chewing.Engine"
	objectPath  = "/org/chewing/Engine"
)

// InputEngine is the D-Bus object that receives key events from an IBus/
// Fcitx5-style frontend and forwards them to a capi.Context.
type InputEngine struct {
	ctx *capi.Context
}

// ProcessKey handles one printable keystroke. keysym carries the rune the
// frontend's key translator produced; callers needing non-printable keys
// (Backspace, arrows, Enter, ...) use the dedicated methods below, which
// mirrors how the reference daemon splits handle_Default from the other
// handle_<KEY> entry points.
func (e *InputEngine) ProcessKey(keysym uint32) (bool, string, string, *dbus.Error) {
	out := e.ctx.HandleDefault(rune(keysym))
	return e.reply(out)
}

func (e *InputEngine) Backspace() (bool, string, string, *dbus.Error) { return e.reply(e.ctx.HandleBackspace()) }
func (e *InputEngine) Delete() (bool, string, string, *dbus.Error)    { return e.reply(e.ctx.HandleDel()) }
func (e *InputEngine) Enter() (bool, string, string, *dbus.Error)     { return e.reply(e.ctx.HandleEnter()) }
func (e *InputEngine) Esc() (bool, string, string, *dbus.Error)       { return e.reply(e.ctx.HandleEsc()) }
func (e *InputEngine) Space() (bool, string, string, *dbus.Error)     { return e.reply(e.ctx.HandleSpace()) }
func (e *InputEngine) Left() (bool, string, string, *dbus.Error)      { return e.reply(e.ctx.HandleLeft()) }
func (e *InputEngine) Right() (bool, string, string, *dbus.Error)     { return e.reply(e.ctx.HandleRight()) }
func (e *InputEngine) Up() (bool, string, string, *dbus.Error)        { return e.reply(e.ctx.HandleUp()) }
func (e *InputEngine) Down() (bool, string, string, *dbus.Error)      { return e.reply(e.ctx.HandleDown()) }

func (e *InputEngine) reply(out capi.Outcome) (bool, string, string, *dbus.Error) {
	return out.Has(capi.Absorb) || out.Has(capi.Committed), e.ctx.BufferString(), e.ctx.AuxString(), nil
}

// GetPreedit returns the current pre-edit display string.
func (e *InputEngine) GetPreedit() (string, *dbus.Error) {
	return e.ctx.AuxString(), nil
}

// GetCandidates returns the open candidate window, if any.
func (e *InputEngine) GetCandidates() ([]string, *dbus.Error) {
	return e.ctx.CandString(), nil
}

func main() {
	dict, userDict, closeFn := loadDictionaries()
	defer closeFn()

	ctx := capi.NewContext(dict, userDict, keyboard.NewStandard(), editor.DefaultOptions())
	inputEngine := &InputEngine{ctx: ctx}

	conn, err := dbus.SessionBus()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to connect to session bus:", err)
		os.Exit(1)
	}
	defer conn.Close()

	reply, err := conn.RequestName(serviceName, dbus.NameFlagDoNotQueue)
	if err != nil {
		fmt.Fprintln(os.Stderr, "Failed to request name:", err)
		os.Exit(1)
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		fmt.Fprintln(os.Stderr, "Name already taken - another instance may be running")
		os.Exit(1)
	}

	if err := conn.Export(inputEngine, dbus.ObjectPath(objectPath), serviceName); err != nil {
		fmt.Fprintln(os.Stderr, "Failed to export object:", err)
		os.Exit(1)
	}

	zhlog.Logger().Info().Str("service", serviceName).Str("path", objectPath).Msg("chewingd ready")
	fmt.Println("chewingd: listening on", serviceName, objectPath)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	fmt.Println("chewingd: shutting down")
}

// loadDictionaries assembles the layered dictionary from every
// CHEWING_PATH system file that resolves, plus the chewing.sqlite3 user
// store in CHEWING_USER_PATH (created if absent; a chewing.dat trie there
// is not used), and an empty exclusion layer.
// The returned close func releases whatever backends were opened.
func loadDictionaries() (dictionary.Dictionary, dictionary.MutableDictionary, func()) {
	var closers []func() error
	closeAll := func() {
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](); err != nil {
				zhlog.Logger().Warn().Err(err).Msg("chewingd: error closing dictionary")
			}
		}
	}

	var system []dictionary.Dictionary
	for _, name := range []string{"tsi.dat", "word.dat"} {
		path, ok := xenv.FindSystemFile(name)
		if !ok {
			continue
		}
		d, err := dictionary.OpenMmap(path)
		if err != nil {
			zhlog.Logger().Warn().Err(err).Str("path", path).Msg("chewingd: skipping unreadable system dictionary")
			continue
		}
		system = append(system, d)
		closers = append(closers, d.Close)
	}

	var userDict dictionary.MutableDictionary
	if dir, ok := xenv.UserPath(); ok {
		sqlitePath := filepath.Join(dir, "chewing.sqlite3")
		sq, err := dictionary.OpenSqlite(sqlitePath)
		if err != nil {
			zhlog.Logger().Warn().Err(err).Str("path", sqlitePath).Msg("chewingd: failed to open user dictionary")
		} else {
			userDict = sq
			closers = append(closers, sq.Close)
		}
	}

	layered := dictionary.NewLayeredDictionary(system, userDict, dictionary.NewExclusion())
	return layered, userDict, closeAll
}
