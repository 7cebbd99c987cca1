package confirm

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/dropbox/godropbox/time2"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github/chapool/mvx-signer/internal/metrics"
	"github/chapool/mvx-signer/internal/wallet/disclosure"
)

var ErrConfirmationNotFound = errors.New("confirmation not found")

// Pending is a prompt waiting for a decision through the HTTP API.
type Pending struct {
	ID        string                 `json:"id"`
	CreatedAt time.Time              `json:"createdAt"`
	Prompt    *disclosure.Disclosure `json:"prompt"`
}

type pendingRequest struct {
	Pending

	decision chan Decision
}

// Broker is an Approver whose decisions are delivered out of band (HTTP). Requests are
// removed once resolved or when the requesting context ends.
type Broker struct {
	clock   time2.Clock
	metrics *metrics.Service

	mu      sync.Mutex
	pending map[string]*pendingRequest
}

func NewBroker(clock time2.Clock, m *metrics.Service) *Broker {
	return &Broker{
		clock:   clock,
		metrics: m,
		pending: make(map[string]*pendingRequest),
	}
}

func (b *Broker) RequestApproval(ctx context.Context, prompt *disclosure.Disclosure) (<-chan Decision, error) {
	req := &pendingRequest{
		Pending: Pending{
			ID:        uuid.NewString(),
			CreatedAt: b.clock.Now(),
			Prompt:    prompt,
		},
		decision: make(chan Decision, 1),
	}

	b.mu.Lock()
	b.pending[req.ID] = req
	b.metrics.SetPending(len(b.pending))
	b.mu.Unlock()

	go func() {
		<-ctx.Done()
		b.remove(req.ID)
	}()

	return req.decision, nil
}

// List returns the pending confirmations, oldest first.
func (b *Broker) List() []Pending {
	b.mu.Lock()
	defer b.mu.Unlock()

	result := make([]Pending, 0, len(b.pending))
	for _, req := range b.pending {
		result = append(result, req.Pending)
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].ID < result[j].ID
		}
		return result[i].CreatedAt.Before(result[j].CreatedAt)
	})

	return result
}

// Get returns a pending confirmation by id.
func (b *Broker) Get(id string) (*Pending, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	req, ok := b.pending[id]
	if !ok {
		return nil, ErrConfirmationNotFound
	}

	p := req.Pending

	return &p, nil
}

// Resolve delivers the decision for id. Each confirmation can be resolved once.
func (b *Broker) Resolve(id string, decision Decision) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	req, ok := b.pending[id]
	if !ok {
		return ErrConfirmationNotFound
	}

	delete(b.pending, id)
	b.metrics.SetPending(len(b.pending))

	req.decision <- decision

	return nil
}

func (b *Broker) remove(id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if _, ok := b.pending[id]; ok {
		delete(b.pending, id)
		b.metrics.SetPending(len(b.pending))
	}
}
