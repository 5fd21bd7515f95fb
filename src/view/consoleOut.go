package view

import (
	"context"
	"fmt"
	"io"
	"sort"
	"time"

	"paintlife/src/universe"
)

//ConsoleOut is the headless viewer: it advances the universe as fast as possible
//and prints the progress, the game stops after maxSteps generations or when the board dies out
type ConsoleOut struct {
	u         universe.Universe
	out       io.Writer
	maxSteps  int
	startTime time.Time
}

func NewConsoleOut(out io.Writer, maxSteps int) *ConsoleOut {
	return &ConsoleOut{out: out, maxSteps: maxSteps}
}

func (c *ConsoleOut) Register(u universe.Universe) {
	c.u = u
	o := c.u.Options()
	_, _ = fmt.Fprintln(c.out, "Running configuration:")
	_, _ = fmt.Fprintf(c.out, "  Dimension: %v x %v\n", o.Cols, o.Rows)
	_, _ = fmt.Fprintf(c.out, "  Max generations: %v\n", c.maxSteps)
	c.printHashData(o.Advanced)
}

func (c *ConsoleOut) Start(ctx context.Context) error {
	c.startTime = time.Now()
	_, _ = fmt.Fprintln(c.out, "\nSimulation started...")
	reason := "max generations reached"
	for c.u.Status().Generation < c.maxSteps {
		if err := ctx.Err(); err != nil {
			reason = "interrupted"
			break
		}
		if !c.u.Advance() {
			reason = "no live cells"
			break
		}
		if st := c.u.Status(); st.Generation%10 == 0 {
			_, _ = fmt.Fprintf(c.out, "  Generations done: %v\n", st.Generation)
		}
	}
	c.finish(reason)
	return nil
}

func (c *ConsoleOut) finish(reason string) {
	st := c.u.Status()
	resultData := map[string]interface{}{
		"Last generation": st.Generation,
		"Total time":      time.Since(c.startTime).Round(time.Millisecond),
		"Live cells":      st.LiveCells,
		"Stopped":         reason,
	}
	_, _ = fmt.Fprintln(c.out, "\nFinished:")
	c.printHashData(resultData)
}

func (c *ConsoleOut) printHashData(d map[string]interface{}) {
	propNames := make([]string, 0, len(d))
	for k := range d {
		propNames = append(propNames, k)
	}
	sort.Strings(propNames)
	for _, propName := range propNames {
		_, _ = fmt.Fprintf(c.out, "  %s: %v\n", propName, d[propName])
	}
}
