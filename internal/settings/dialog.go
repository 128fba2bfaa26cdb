// Package settings asks the user for preferences through native dialogs.
package settings

import (
	"errors"
	"log"

	"github.com/ncruces/zenity"
)

// AskFunc blocks until the user answers. ok is false when the dialog was
// dismissed without a choice.
type AskFunc func(current bool) (dark bool, ok bool, err error)

type answer struct {
	dark bool
	ok   bool
	err  error
}

// Dialog runs one settings prompt at a time off the game goroutine.
type Dialog struct {
	ask     AskFunc
	results chan answer
	open    bool
}

func NewDialog(ask AskFunc) *Dialog {
	if ask == nil {
		ask = askDarkMode
	}
	return &Dialog{ask: ask, results: make(chan answer, 1)}
}

// Open starts the prompt unless one is already showing.
func (d *Dialog) Open(currentDark bool) bool {
	if d.open {
		return false
	}
	d.open = true
	go func() {
		dark, ok, err := d.ask(currentDark)
		d.results <- answer{dark: dark, ok: ok, err: err}
	}()
	return true
}

func (d *Dialog) IsOpen() bool { return d.open }

// Poll returns the answer once the prompt closes. Call it every tick.
func (d *Dialog) Poll() (dark bool, changed bool) {
	select {
	case a := <-d.results:
		d.open = false
		if a.err != nil {
			log.Printf("settings: %v", a.err)
			return false, false
		}
		return a.dark, a.ok
	default:
		return false, false
	}
}

func askDarkMode(current bool) (bool, bool, error) {
	msg := "Enable dark mode?"
	if current {
		msg = "Dark mode is on. Keep it on?"
	}
	err := zenity.Question(msg,
		zenity.Title("Cute Critters Settings"),
		zenity.OKLabel("Dark"),
		zenity.CancelLabel("Light"),
		zenity.ExtraButton("Cancel"),
	)
	switch {
	case err == nil:
		return true, true, nil
	case errors.Is(err, zenity.ErrCanceled):
		return false, true, nil
	case errors.Is(err, zenity.ErrExtraButton):
		return current, false, nil
	default:
		return current, false, err
	}
}
