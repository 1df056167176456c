// Package proc runs external commands while streaming their combined output
// to the operator and capturing it for failure reports.
package proc

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/dsalwasser/kmpexp/internal/xterm"
)

// Cmd describes an external command.
type Cmd struct {
	Prog string
	Args []string
}

// Command builds a Cmd from a program and its arguments.
func Command(prog string, args ...string) Cmd {
	return Cmd{Prog: prog, Args: args}
}

func (c Cmd) String() string {
	if len(c.Args) == 0 {
		return c.Prog
	}
	return c.Prog + " " + strings.Join(c.Args, " ")
}

// Runner executes commands one at a time, echoing each command and its
// output to Out. A nil Color falls back to the command color.
type Runner struct {
	Out   io.Writer
	Color xterm.Color
}

// Run executes cmd and streams its combined stdout and stderr to the
// runner's writer, line by line and indented. The full output is returned
// alongside the error so callers can attach it to failure reports.
func (r *Runner) Run(ctx context.Context, cmd Cmd) (string, error) {
	fmt.Fprintf(r.Out, "  $ %s\n", r.color().S(cmd.String()))

	c := exec.CommandContext(ctx, cmd.Prog, cmd.Args...)
	pr, pw := io.Pipe()
	c.Stdout = pw
	c.Stderr = pw

	var captured strings.Builder
	done := make(chan struct{})
	go func() {
		defer close(done)
		br := bufio.NewReader(pr)
		for {
			line, err := br.ReadString('\n')
			if line != "" {
				captured.WriteString(line)
				if !strings.HasSuffix(line, "\n") {
					line += "\n"
				}
				fmt.Fprintf(r.Out, "  | %s", line)
			}
			if err != nil {
				return
			}
		}
	}()

	err := c.Start()
	if err == nil {
		err = c.Wait()
	}
	pw.Close()
	<-done

	if err != nil {
		fmt.Fprintf(r.Out, "  %s\n", xterm.Fail.S(fmt.Sprintf("-- command failed: %v", err)))
	}
	return captured.String(), err
}

func (r *Runner) color() xterm.Color {
	if r.Color != nil {
		return r.Color
	}
	return xterm.Cmd
}
