package mocks

import (
	"context"
	"sync"

	"github/chapool/mvx-signer/internal/wallet/confirm"
	"github/chapool/mvx-signer/internal/wallet/disclosure"
)

// Approver answers prompts from a script. Once the script is exhausted, Default is used;
// an empty Default closes the channel, which the sequencer treats as a rejection.
type Approver struct {
	mu        sync.Mutex
	decisions []confirm.Decision
	prompts   []*disclosure.Disclosure

	Default confirm.Decision
}

var _ confirm.Approver = (*Approver)(nil)

func NewApprover(decisions ...confirm.Decision) *Approver {
	return &Approver{decisions: decisions}
}

// ApproveAll approves every prompt.
func ApproveAll() *Approver {
	return &Approver{Default: confirm.DecisionApproved}
}

func (a *Approver) RequestApproval(_ context.Context, prompt *disclosure.Disclosure) (<-chan confirm.Decision, error) {
	a.mu.Lock()
	defer a.mu.Unlock()

	ch := make(chan confirm.Decision, 1)

	idx := len(a.prompts)
	a.prompts = append(a.prompts, prompt)

	switch {
	case idx < len(a.decisions):
		ch <- a.decisions[idx]
	case a.Default != "":
		ch <- a.Default
	default:
		close(ch)
	}

	return ch, nil
}

// Prompts returns every prompt presented so far.
func (a *Approver) Prompts() []*disclosure.Disclosure {
	a.mu.Lock()
	defer a.mu.Unlock()

	return append([]*disclosure.Disclosure(nil), a.prompts...)
}
