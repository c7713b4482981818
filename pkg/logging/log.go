package logging

import (
	"fmt"
	"io"
	"log"
	"os"
	"time"
)

const timeLayout = "2006-01-02 15:04:05"

// Writer prefixes every write with the current time in Loc. Use it as the
// output of the standard logger with the standard flags cleared.
type Writer struct {
	Loc *time.Location
	Out io.Writer

	now func() time.Time
}

func New(loc *time.Location, out io.Writer) *Writer {
	return &Writer{
		Loc: loc,
		Out: out,
	}
}

func (writer *Writer) Write(b []byte) (n int, err error) {
	now := time.Now
	if writer.now != nil {
		now = writer.now
	}
	loc := writer.Loc
	if loc == nil {
		loc = time.UTC
	}
	out := writer.Out
	if out == nil {
		out = os.Stdout
	}
	return fmt.Fprintf(out, "%s %s", now().In(loc).Format(timeLayout), b)
}

// Install routes the standard logger through writer.
func Install(writer *Writer) {
	log.SetFlags(0)
	log.SetOutput(writer)
}
