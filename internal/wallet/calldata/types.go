package calldata

import (
	"fmt"
	"math/big"
)

// Kind is the closed set of value movements a transaction can carry.
type Kind string

const (
	KindNative       Kind = "native"
	KindFungible     Kind = "fungible"
	KindSemiFungible Kind = "semi_fungible"
	KindNonFungible  Kind = "non_fungible"
	KindMetaESDT     Kind = "meta_esdt"
	KindOpaqueCall   Kind = "opaque_call"
)

// IsToken reports whether the kind moves an ESDT rather than the native coin.
func (k Kind) IsToken() bool {
	switch k {
	case KindFungible, KindSemiFungible, KindNonFungible, KindMetaESDT:
		return true
	case KindNative, KindOpaqueCall:
		return false
	}

	return false
}

// Transfer is one unit of value movement decoded from a transaction.
type Transfer struct {
	Kind Kind

	// Identifier is the token identifier. For NFT, SFT and Meta ESDT it is the collection.
	Identifier string
	Nonce      uint64
	Amount     *big.Int

	// Receiver is the intent's literal receiver field.
	Receiver string
	// ReceiverOverride is the destination carried by the payload, when it differs from Receiver.
	ReceiverOverride string
}

// Recipient returns the account that ends up receiving the transfer.
func (t *Transfer) Recipient() string {
	if t.ReceiverOverride != "" {
		return t.ReceiverOverride
	}

	return t.Receiver
}

// DisplayIdentifier returns the identifier shown to the user: COLLECTION-nonceHex for
// tokens with a nonce, the plain identifier otherwise.
func (t *Transfer) DisplayIdentifier() string {
	if t.Nonce == 0 {
		return t.Identifier
	}

	nonceHex := fmt.Sprintf("%x", t.Nonce)
	if len(nonceHex)%2 != 0 {
		nonceHex = "0" + nonceHex
	}

	return t.Identifier + "-" + nonceHex
}

// Operation is the decoded form of a transaction payload.
type Operation struct {
	// Transfers are listed in payload order; the native value comes first when present.
	Transfers []Transfer

	// Function is the smart contract function invoked, if any.
	Function string
	// Arguments are the raw hex arguments passed to Function.
	Arguments []string

	// Data is the payload as text, empty when the transaction carries no data.
	Data string
}

// IsContractCall reports whether the operation invokes a smart contract function.
func (o *Operation) IsContractCall() bool {
	return o.Function != ""
}

// Recipient returns the destination shown to the user: the payload's destination when
// every transfer agrees on one, the intent's receiver otherwise.
func (o *Operation) Recipient(receiver string) string {
	for i := range o.Transfers {
		if o.Transfers[i].ReceiverOverride != "" {
			return o.Transfers[i].ReceiverOverride
		}
	}

	return receiver
}
