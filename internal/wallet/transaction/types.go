package transaction

const (
	// OptionHashSign asks for the signature to be computed over the keccak256 of the serialized transaction.
	OptionHashSign uint32 = 1 << 0
	// OptionGuarded marks a transaction co-signed by a guardian.
	OptionGuarded uint32 = 1 << 1

	// minVersionWithOptions is the first transaction version honoring the options field.
	minVersionWithOptions uint32 = 2
)

// Intent is a transaction received from the caller, in the chain's plain-object JSON shape.
// The field order is the canonical serialization order and must not change.
type Intent struct {
	Nonce            uint64 `json:"nonce"`
	Value            string `json:"value"`
	Receiver         string `json:"receiver"`
	Sender           string `json:"sender"`
	SenderUsername   []byte `json:"senderUsername,omitempty"`
	ReceiverUsername []byte `json:"receiverUsername,omitempty"`
	GasPrice         uint64 `json:"gasPrice"`
	GasLimit         uint64 `json:"gasLimit"`
	Data             []byte `json:"data,omitempty"` // base64 on the wire
	ChainID          string `json:"chainID"`
	Version          uint32 `json:"version"`
	Options          uint32 `json:"options,omitempty"`
	Guardian         string `json:"guardian,omitempty"`
	Relayer          string `json:"relayer,omitempty"`
}

// Signed is an Intent with its hex encoded ed25519 signature attached.
type Signed struct {
	Intent

	Signature string `json:"signature"`
}

// IsHashSigned reports whether the signature covers keccak256 of the serialized intent.
func (i *Intent) IsHashSigned() bool {
	return i.Version >= minVersionWithOptions && i.Options&OptionHashSign != 0
}

// IsGuarded reports whether the intent carries a guardian co-signer.
func (i *Intent) IsGuarded() bool {
	return i.Version >= minVersionWithOptions && i.Options&OptionGuarded != 0 && i.Guardian != ""
}
