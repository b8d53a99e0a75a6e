package report

import (
	"fmt"
	"io"
	"text/tabwriter"

	"codeberg.org/mutker/fpvsetup/internal/errors"
)

const missing = "-"

// textWriter remembers the first write error so sections can be written
// without checking each line.
type textWriter struct {
	tw  *tabwriter.Writer
	err error
}

func (t *textWriter) heading(title string) {
	t.printf("%s\n", title)
}

func (t *textWriter) field(label, value string) {
	if value == "" {
		value = missing
	}
	t.printf("  %s:\t%s\n", label, value)
}

func (t *textWriter) quantity(label string, q *Quantity) {
	if q == nil {
		t.field(label, "")
		return
	}
	t.field(label, q.Value+" "+q.Unit)
}

func (t *textWriter) printf(format string, args ...any) {
	if t.err != nil {
		return
	}
	_, t.err = fmt.Fprintf(t.tw, format, args...)
}

func writeText(w io.Writer, doc Document) error {
	t := &textWriter{tw: tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)}

	t.heading("Monitor properties")
	t.quantity("Width", doc.Monitor.Width)
	t.quantity("Height", doc.Monitor.Height)
	t.quantity("Diagonal", doc.Monitor.Diagonal)
	t.field("Aspect", doc.Monitor.Aspect)
	t.quantity("Distance", doc.Monitor.Distance)

	t.heading("\nUnit setup")
	t.quantity("Scale", doc.UnitSetup.AppPerReal)
	t.quantity("Inverse scale", doc.UnitSetup.RealPerApp)

	t.heading("\nPortal-like")
	t.field("Horizontal FOV", doc.PortalLike.FOV)
	t.field("Vertical FOV", doc.PortalLike.VerticalFOV)
	t.quantity("Move camera back", doc.PortalLike.MoveBack)
	t.quantity("Move camera back (app)", doc.PortalLike.MoveBackApp)

	t.heading("\nFocused")
	t.quantity("Accurate distance", doc.Focused.AccurateDistance)
	t.field("Horizontal FOV", doc.Focused.FOV)

	if t.err == nil {
		t.err = t.tw.Flush()
	}
	if t.err != nil {
		return errors.New().Wrap(ErrRender, t.err)
	}

	return nil
}
