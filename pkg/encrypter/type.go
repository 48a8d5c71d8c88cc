package encrypter

// implEncrypter implements Encrypter with AES-GCM for encryption and
// bcrypt for password hashing. The key must be 16, 24, or 32 bytes.
type implEncrypter struct {
	key string
}
