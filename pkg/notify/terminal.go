package notify

import (
	"io"
	"os"

	"github.com/fatih/color"
)

// terminal is the last resort: a colored line on stderr.
type terminal struct {
	out       io.Writer
	errColor  *color.Color
	infoColor *color.Color
}

func newTerminal() *terminal {
	return &terminal{
		out:       os.Stderr,
		errColor:  color.New(color.FgRed, color.Bold),
		infoColor: color.New(color.FgGreen),
	}
}

func (t *terminal) print(message string, nType NotificationType) error {
	c := t.infoColor
	prefix := title + " - Info"
	if nType == Error {
		c = t.errColor
		prefix = title + " - Error"
	}
	_, err := c.Fprintf(t.out, "%s: %s\n", prefix, message)
	return err
}
