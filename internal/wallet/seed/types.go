package seed

// Manager holds the BIP39 seed of the single account in memory.
type Manager interface {
	// Initialize validates the mnemonic and derives the seed (called at startup)
	Initialize(mnemonic string, passphrase string) error

	// GetSeed returns a copy of the seed, or nil when not initialized.
	// WARNING: Caller must clear the copy after use
	GetSeed() []byte

	// IsInitialized checks if seed is initialized
	IsInitialized() bool

	// Clear clears the seed from memory
	Clear()
}
