// Package editor launches the user's text editor on a note.
package editor

import (
	"errors"
	"os"
	"os/exec"
	"strings"
)

// ErrNoEditor is returned when neither $VISUAL nor $EDITOR is set and no
// fallback editor is installed
var ErrNoEditor = errors.New("no editor found: set $VISUAL or $EDITOR")

// fallbacks are tried in order when no editor is configured
var fallbacks = []string{"nvim", "vim", "vi", "nano"}

// Opener runs an external editor attached to the current terminal
type Opener struct {
	getenv   func(string) string
	lookPath func(string) (string, error)
}

// NewOpener creates an Opener that reads the process environment
func NewOpener() *Opener {
	return &Opener{getenv: os.Getenv, lookPath: exec.LookPath}
}

// OpenFile blocks until the editor exits
func (o *Opener) OpenFile(path string) error {
	cmd, err := o.Command(path)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// Command returns the editor invocation for path. Editor settings may carry
// arguments, e.g. EDITOR="code --wait".
func (o *Opener) Command(path string) (*exec.Cmd, error) {
	argv := o.editorArgv()
	if len(argv) == 0 {
		return nil, ErrNoEditor
	}

	cmd := exec.Command(argv[0], append(argv[1:], path)...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd, nil
}

func (o *Opener) editorArgv() []string {
	for _, key := range []string{"VISUAL", "EDITOR"} {
		if fields := strings.Fields(o.getenv(key)); len(fields) > 0 {
			return fields
		}
	}

	for _, name := range fallbacks {
		if path, err := o.lookPath(name); err == nil {
			return []string{path}
		}
	}
	return nil
}
