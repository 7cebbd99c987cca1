package disclosure

import (
	"fmt"
	"math/big"
	"strings"

	"github/chapool/mvx-signer/internal/wallet/calldata"
	"github/chapool/mvx-signer/internal/wallet/chain"
	"github/chapool/mvx-signer/internal/wallet/token"
	"github/chapool/mvx-signer/internal/wallet/transaction"
)

// Kind of the operation a disclosure asks approval for.
type Kind string

const (
	KindTransaction Kind = "transaction"
	KindMessage     Kind = "message"
	KindAuthToken   Kind = "auth_token"
)

const (
	LabelTo      = "To"
	LabelSend    = "Send"
	LabelCall    = "Call"
	LabelData    = "Data"
	LabelFee     = "Fee"
	LabelMessage = "Message"
	LabelOrigin  = "Origin"
	LabelToken   = "Token"
	LabelWarning = "Warning"
)

// Line is one item shown to the user.
type Line struct {
	Label string `json:"label"`
	Value string `json:"value"`
	Icon  string `json:"icon,omitempty"`
}

// Disclosure is the renderer agnostic description of what the user is asked to sign.
// It is never modified after Build returns it.
type Disclosure struct {
	Kind    Kind   `json:"kind"`
	Title   string `json:"title"`
	ChainID string `json:"chainId,omitempty"`
	Index   int    `json:"index"` // 1 based position in the batch
	Total   int    `json:"total"`
	Lines   []Line `json:"lines"`
}

// Input is everything needed to describe one transaction of a batch.
type Input struct {
	Index     int
	Total     int
	Intent    *transaction.Intent
	Operation *calldata.Operation
	// Metadata holds one entry per Operation.Transfers, in the same order.
	Metadata []*token.Metadata
	Fee      *big.Int
	Network  *chain.Network
}

// String renders the disclosure as plain text for terminals and logs.
func (d *Disclosure) String() string {
	var b strings.Builder

	b.WriteString(d.Title)
	b.WriteByte('\n')

	for _, line := range d.Lines {
		fmt.Fprintf(&b, "  %-8s %s\n", line.Label+":", line.Value)
	}

	return b.String()
}
