package keystore

import "context"

const (
	Version = 3

	cipherAES128CTR = "aes-128-ctr"
	kdfScrypt       = "scrypt"
)

// Service stores the mnemonic encrypted on disk.
type Service interface {
	// Create encrypts the mnemonic and writes the keystore file. It fails if the file exists.
	Create(ctx context.Context, mnemonic string, password string, addr string) (*Keystore, error)

	// Load reads the keystore file
	Load(ctx context.Context) (*Keystore, error)

	// DecryptMnemonic decrypts the mnemonic, failing with ErrInvalidPassword on MAC mismatch
	DecryptMnemonic(ctx context.Context, keystore *Keystore, password string) (string, error)

	// Exists checks if the keystore file exists
	Exists(ctx context.Context) (bool, error)

	// Path of the keystore file
	Path() string
}

// Keystore is the v3 keystore JSON document. Address is the account derived from the
// encrypted mnemonic and is used to verify the password after decryption.
type Keystore struct {
	Version int    `json:"version"`
	ID      string `json:"id"`
	Address string `json:"address"`
	Crypto  struct {
		Ciphertext   string `json:"ciphertext"`
		CipherParams struct {
			IV string `json:"iv"`
		} `json:"cipherparams"`
		Cipher    string `json:"cipher"`
		KDF       string `json:"kdf"`
		KDFParams struct {
			DKLen int    `json:"dklen"`
			Salt  string `json:"salt"`
			N     int    `json:"n"`
			R     int    `json:"r"`
			P     int    `json:"p"`
		} `json:"kdfparams"`
		MAC string `json:"mac"`
	} `json:"crypto"`
}

// ScryptParams defines scrypt KDF parameters
type ScryptParams struct {
	DKLen int // Derived key length (32 bytes)
	N     int // CPU/memory cost parameter
	R     int // Block size parameter
	P     int // Parallelization parameter
}

// DefaultScryptParams returns the standard v3 keystore scrypt parameters
func DefaultScryptParams() ScryptParams {
	const (
		scryptDKLen = 32
		scryptN     = 262144 // 2^18
		scryptR     = 8
		scryptP     = 1
	)

	return ScryptParams{
		DKLen: scryptDKLen,
		N:     scryptN,
		R:     scryptR,
		P:     scryptP,
	}
}
