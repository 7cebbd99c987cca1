package confirm

import (
	"context"

	"github/chapool/mvx-signer/internal/wallet/disclosure"
)

// Decision is the user's answer to a prompt.
type Decision string

const (
	DecisionApproved Decision = "approved"
	DecisionRejected Decision = "rejected"
)

// State of a task in the sequencer.
type State string

const (
	StatePending   State = "pending"
	StateDisclosed State = "disclosed"
	StateApproved  State = "approved"
	StateRejected  State = "rejected"
)

// Approver presents a prompt to the user. The returned channel delivers exactly one decision;
// it may take arbitrarily long.
type Approver interface {
	RequestApproval(ctx context.Context, prompt *disclosure.Disclosure) (<-chan Decision, error)
}

// Task is one item awaiting approval. OnApprove runs only after the user approved it.
type Task struct {
	Prompt    *disclosure.Disclosure
	OnApprove func(ctx context.Context) error
}
