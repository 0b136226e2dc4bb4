package notifier

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"regexp"
	"strings"
)

var markup = regexp.MustCompile(`</?[bi]>`)

// Console is a line-oriented front end over any reader and writer.
type Console struct {
	In  io.Reader
	Out io.Writer
}

func NewConsole(in io.Reader, out io.Writer) *Console {
	return &Console{In: in, Out: out}
}

// Run reads one command per line until EOF or ctx is cancelled.
func (c *Console) Run(ctx context.Context, handler CommandHandler) {
	scanner := bufio.NewScanner(c.In)
	fmt.Fprint(c.Out, "> ")
	for scanner.Scan() {
		if ctx.Err() != nil {
			return
		}
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			if reply := handler(line); reply != "" {
				fmt.Fprintln(c.Out, markup.ReplaceAllString(reply, ""))
			}
		}
		fmt.Fprint(c.Out, "> ")
	}
}
