package encrypter

// AES key lengths in bytes.
const (
	AESKeyLen128 = 16
	AESKeyLen192 = 24
	AESKeyLen256 = 32
)
