package confirm

import (
	"context"

	"github/chapool/mvx-signer/internal/metrics"
	"github/chapool/mvx-signer/internal/util"
	"github/chapool/mvx-signer/internal/wallet/disclosure"
	"github/chapool/mvx-signer/internal/wallet/errs"
)

// Sequencer presents tasks to the Approver strictly one at a time, in order. A rejection aborts
// the whole run: later tasks are never presented.
type Sequencer struct {
	approver Approver
	metrics  *metrics.Service
}

func NewSequencer(approver Approver, m *metrics.Service) *Sequencer {
	return &Sequencer{approver: approver, metrics: m}
}

// Run processes tasks through a single-consumer queue. Only ctx cancellation interrupts a
// pending decision; there is no timeout.
func (s *Sequencer) Run(ctx context.Context, tasks []Task) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	queue := make(chan Task)
	go func() {
		defer close(queue)

		for _, task := range tasks {
			select {
			case queue <- task:
			case <-ctx.Done():
				return
			}
		}
	}()

	for task := range queue {
		if err := s.process(ctx, task); err != nil {
			return err
		}
	}

	return ctx.Err()
}

func (s *Sequencer) process(ctx context.Context, task Task) error {
	log := util.LogFromContext(ctx).With().
		Str("kind", string(task.Prompt.Kind)).
		Int("index", task.Prompt.Index).
		Int("total", task.Prompt.Total).
		Logger()

	log.Debug().Str("state", string(StatePending)).Msg("Presenting confirmation")

	decisions, err := s.approver.RequestApproval(ctx, task.Prompt)
	if err != nil {
		log.Error().Err(err).Msg("Failed to present confirmation")
		return err
	}

	log.Debug().Str("state", string(StateDisclosed)).Msg("Waiting for decision")

	var decision Decision
	select {
	case d, ok := <-decisions:
		if ok {
			decision = d
		}
	case <-ctx.Done():
		log.Debug().Err(ctx.Err()).Msg("Confirmation canceled")
		return ctx.Err()
	}

	if decision != DecisionApproved {
		s.metrics.ObserveDecision(string(task.Prompt.Kind), false)
		log.Info().Str("state", string(StateRejected)).Msg("Confirmation rejected")

		return errs.New(errs.ErrUserRejected, rejectionMessage(task))
	}

	s.metrics.ObserveDecision(string(task.Prompt.Kind), true)
	log.Debug().Str("state", string(StateApproved)).Msg("Confirmation approved")

	if task.OnApprove == nil {
		return nil
	}

	return task.OnApprove(ctx)
}

func rejectionMessage(task Task) string {
	switch task.Prompt.Kind {
	case disclosure.KindTransaction:
		return "All transactions must be approved by the user"
	case disclosure.KindMessage:
		return "Message must be signed by the user"
	case disclosure.KindAuthToken:
		return "Authentication token must be approved by the user"
	}

	return errs.ErrUserRejected.Message
}
