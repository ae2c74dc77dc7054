// Package secrets stores small sensitive values (API keys) encrypted
// at rest. Values are sealed with AES-256-GCM under a key derived from
// a per-installation device secret, so the file is useless when copied
// to another machine without its companion device id.
package secrets

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/crypto/pbkdf2"
)

const (
	saltV1     = "cv-builder-salt-v1"
	iterations = 100000
	keyLen     = 32
	nonceLen   = 12

	deviceIDFile = "device_id"
	valuesFile   = "secrets.json"
)

// Error wraps a secret-store failure.
type Error struct {
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("secrets error: %s: %v", e.Message, e.Cause)
	}
	return fmt.Sprintf("secrets error: %s", e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// Store keeps encrypted values in a JSON file keyed by name.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir.
func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// DefaultDir returns the per-user secrets directory.
func DefaultDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", &Error{Message: "resolve config dir", Cause: err}
	}
	return filepath.Join(base, "cv-builder", "secrets"), nil
}

// Set encrypts and persists a value under key.
func (s *Store) Set(key, value string) error {
	aead, err := s.sealer()
	if err != nil {
		return err
	}
	nonce := make([]byte, nonceLen)
	if _, err := rand.Read(nonce); err != nil {
		return &Error{Message: "generate nonce", Cause: err}
	}
	sealed := aead.Seal(nil, nonce, []byte(value), nil)
	// Nonce is prepended to the ciphertext, matching the stored layout
	// of earlier versions of this tool.
	combined := append(nonce, sealed...)

	values, err := s.readValues()
	if err != nil {
		return err
	}
	values[key] = base64.StdEncoding.EncodeToString(combined)
	return s.writeValues(values)
}

// Get decrypts the value stored under key. A missing key returns
// ("", false, nil).
func (s *Store) Get(key string) (string, bool, error) {
	values, err := s.readValues()
	if err != nil {
		return "", false, err
	}
	encoded, ok := values[key]
	if !ok {
		return "", false, nil
	}
	combined, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", false, &Error{Message: "decode stored value", Cause: err}
	}
	if len(combined) < nonceLen {
		return "", false, &Error{Message: "stored value too short"}
	}
	aead, err := s.sealer()
	if err != nil {
		return "", false, err
	}
	plain, err := aead.Open(nil, combined[:nonceLen], combined[nonceLen:], nil)
	if err != nil {
		return "", false, &Error{Message: "decrypt stored value", Cause: err}
	}
	return string(plain), true, nil
}

// Remove deletes the value stored under key. Removing an absent key is
// not an error.
func (s *Store) Remove(key string) error {
	values, err := s.readValues()
	if err != nil {
		return err
	}
	if _, ok := values[key]; !ok {
		return nil
	}
	delete(values, key)
	return s.writeValues(values)
}

// Has reports whether a value exists under key.
func (s *Store) Has(key string) (bool, error) {
	values, err := s.readValues()
	if err != nil {
		return false, err
	}
	_, ok := values[key]
	return ok, nil
}

func (s *Store) sealer() (cipher.AEAD, error) {
	password, err := s.devicePassword()
	if err != nil {
		return nil, err
	}
	derived := pbkdf2.Key([]byte(password), []byte(saltV1), iterations, keyLen, sha256.New)
	block, err := aes.NewCipher(derived)
	if err != nil {
		return nil, &Error{Message: "build cipher", Cause: err}
	}
	aead, err := cipher.NewGCM(block)
	if err != nil {
		return nil, &Error{Message: "build gcm", Cause: err}
	}
	return aead, nil
}

// devicePassword returns the stable per-installation secret, creating
// one on first use.
func (s *Store) devicePassword() (string, error) {
	path := filepath.Join(s.dir, deviceIDFile)
	data, err := os.ReadFile(path)
	if err == nil {
		return string(data), nil
	}
	if !errors.Is(err, os.ErrNotExist) {
		return "", &Error{Message: "read device id", Cause: err}
	}

	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return "", &Error{Message: "generate device id", Cause: err}
	}
	id := hex.EncodeToString(raw)
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return "", &Error{Message: "create secrets dir", Cause: err}
	}
	if err := os.WriteFile(path, []byte(id), 0o600); err != nil {
		return "", &Error{Message: "write device id", Cause: err}
	}
	return id, nil
}

func (s *Store) readValues() (map[string]string, error) {
	data, err := os.ReadFile(filepath.Join(s.dir, valuesFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return map[string]string{}, nil
		}
		return nil, &Error{Message: "read secrets file", Cause: err}
	}
	values := map[string]string{}
	if err := json.Unmarshal(data, &values); err != nil {
		return nil, &Error{Message: "decode secrets file", Cause: err}
	}
	return values, nil
}

func (s *Store) writeValues(values map[string]string) error {
	data, err := json.MarshalIndent(values, "", "  ")
	if err != nil {
		return &Error{Message: "encode secrets file", Cause: err}
	}
	if err := os.MkdirAll(s.dir, 0o700); err != nil {
		return &Error{Message: "create secrets dir", Cause: err}
	}
	if err := os.WriteFile(filepath.Join(s.dir, valuesFile), data, 0o600); err != nil {
		return &Error{Message: "write secrets file", Cause: err}
	}
	return nil
}
