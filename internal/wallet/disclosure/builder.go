package disclosure

import (
	"fmt"

	"github.com/pkg/errors"
	"github/chapool/mvx-signer/internal/wallet/amount"
	"github/chapool/mvx-signer/internal/wallet/calldata"
)

const displayDigits = 4

// Build composes the disclosure of one transaction. Lines are, in order: the recipient, one
// Send line per transfer in payload order, the contract call, the raw data and the fee.
func Build(in Input) (*Disclosure, error) {
	if in.Intent == nil || in.Operation == nil || in.Network == nil || in.Fee == nil {
		return nil, errors.New("incomplete disclosure input")
	}

	if len(in.Metadata) != len(in.Operation.Transfers) {
		return nil, errors.Errorf("got metadata for %d of %d transfers", len(in.Metadata), len(in.Operation.Transfers))
	}

	d := &Disclosure{
		Kind:    KindTransaction,
		Title:   fmt.Sprintf("Transaction %d of %d on %s", in.Index, in.Total, in.Network.Name),
		ChainID: in.Intent.ChainID,
		Index:   in.Index,
		Total:   in.Total,
	}

	d.Lines = append(d.Lines, Line{Label: LabelTo, Value: in.Operation.Recipient(in.Intent.Receiver)})

	for i := range in.Operation.Transfers {
		line, err := sendLine(&in.Operation.Transfers[i], in.Metadata[i].Decimals, in.Metadata[i].Identifier, in.Metadata[i].Icon)
		if err != nil {
			return nil, err
		}

		d.Lines = append(d.Lines, line)
	}

	if in.Operation.IsContractCall() {
		d.Lines = append(d.Lines, Line{Label: LabelCall, Value: in.Operation.Function})
	}

	if in.Operation.Data != "" {
		d.Lines = append(d.Lines, Line{Label: LabelData, Value: in.Operation.Data})
	}

	fee, err := amount.Format(in.Fee.String(), amount.Options{
		Decimals:                in.Network.Decimals,
		Digits:                  displayDigits,
		GroupThousands:          true,
		KeepTrailingSignificant: true,
	})
	if err != nil {
		return nil, err
	}

	d.Lines = append(d.Lines, Line{Label: LabelFee, Value: fee + " " + in.Network.Label, Icon: in.Network.Icon})

	return d, nil
}

func sendLine(transfer *calldata.Transfer, decimals int, identifier string, icon string) (Line, error) {
	formatted, err := amount.Format(transfer.Amount.String(), amount.Options{
		Decimals:       decimals,
		Digits:         displayDigits,
		GroupThousands: true,
	})
	if err != nil {
		return Line{}, err
	}

	return Line{Label: LabelSend, Value: formatted + " " + identifier, Icon: icon}, nil
}

// ForMessage describes a free-form message signature.
func ForMessage(message string) *Disclosure {
	return &Disclosure{
		Kind:  KindMessage,
		Title: "Sign message",
		Index: 1,
		Total: 1,
		Lines: []Line{{Label: LabelMessage, Value: message}},
	}
}

// ForAuthToken describes an authentication token signature requested by origin.
func ForAuthToken(origin string, token string) *Disclosure {
	return &Disclosure{
		Kind:  KindAuthToken,
		Title: "Log in to " + origin,
		Index: 1,
		Total: 1,
		Lines: []Line{
			{Label: LabelOrigin, Value: origin},
			{Label: LabelWarning, Value: fmt.Sprintf("Only approve if you are trying to log in to %s. Approving a request from a site you do not trust gives it access to your account.", origin)},
			{Label: LabelToken, Value: token},
		},
	}
}
