package confirm

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"sync"

	"github/chapool/mvx-signer/internal/wallet/disclosure"
)

// Terminal is an Approver prompting on an interactive terminal.
// One prompt is open at a time; a canceled prompt gives its turn to the next one.
type Terminal struct {
	in    io.Reader
	out   io.Writer
	turn  chan struct{}
	lines chan string
	once  sync.Once
}

func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{
		in:    in,
		out:   out,
		turn:  make(chan struct{}, 1),
		lines: make(chan string),
	}
}

func (t *Terminal) RequestApproval(ctx context.Context, prompt *disclosure.Disclosure) (<-chan Decision, error) {
	// stdin is only read once the first prompt is shown, so password prompts run before are untouched
	t.once.Do(func() { go t.readLines() })

	select {
	case t.turn <- struct{}{}:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	if _, err := fmt.Fprintf(t.out, "\n%sApprove? [y/N]: ", prompt.String()); err != nil {
		<-t.turn
		return nil, err
	}

	decision := make(chan Decision, 1)

	go func() {
		defer func() { <-t.turn }()

		select {
		case <-ctx.Done():
			decision <- DecisionRejected
		case answer, ok := <-t.lines:
			if !ok {
				decision <- DecisionRejected
				return
			}

			decision <- parseAnswer(answer)
		}
	}()

	return decision, nil
}

func (t *Terminal) readLines() {
	defer close(t.lines)

	in := bufio.NewReader(t.in)
	for {
		line, err := in.ReadString('\n')
		if line != "" {
			t.lines <- line
		}

		if err != nil {
			return
		}
	}
}

func parseAnswer(answer string) Decision {
	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return DecisionApproved
	default:
		return DecisionRejected
	}
}
