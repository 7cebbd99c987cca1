package types

import (
	"strconv"

	"github.com/go-openapi/strfmt"
	"github.com/go-openapi/validate"
	"github/chapool/mvx-signer/internal/wallet/disclosure"
)

// Confirmation is a prompt waiting for the user's decision.
type Confirmation struct {
	// Required: true
	ID *string `json:"id"`

	// Required: true
	CreatedAt *strfmt.DateTime `json:"createdAt"`

	// Required: true
	Prompt *disclosure.Disclosure `json:"prompt"`

	// Text is the plain text rendering of Prompt
	Text string `json:"text"`
}

func (m *Confirmation) Validate(_ strfmt.Registry) error {
	if err := validate.Required("id", "body", m.ID); err != nil {
		return err
	}

	if err := validate.Required("createdAt", "body", m.CreatedAt); err != nil {
		return err
	}

	if err := validate.Required("prompt", "body", m.Prompt); err != nil {
		return err
	}

	return nil
}

type GetConfirmationsResponse struct {
	// Required: true
	Confirmations []*Confirmation `json:"confirmations"`
}

func (m *GetConfirmationsResponse) Validate(formats strfmt.Registry) error {
	if err := validate.Required("confirmations", "body", m.Confirmations); err != nil {
		return err
	}

	for _, c := range m.Confirmations {
		if err := c.Validate(formats); err != nil {
			return err
		}
	}

	return nil
}

// ChainItem is a supported network.
type ChainItem struct {
	ChainID    string `json:"chainId"`
	Name       string `json:"name"`
	Label      string `json:"label"`
	Decimals   int64  `json:"decimals"`
	APIAddress string `json:"apiAddress"`
}

type GetChainsResponse struct {
	// Required: true
	Chains []*ChainItem `json:"chains"`
}

func (m *GetChainsResponse) Validate(_ strfmt.Registry) error {
	if err := validate.Required("chains", "body", m.Chains); err != nil {
		return err
	}

	return nil
}

func indexPath(name string, i int) string {
	return name + "." + strconv.Itoa(i)
}
