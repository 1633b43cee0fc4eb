package obfuscate

import (
	"bytes"

	"github.com/pkg/errors"
	"github.com/xitonix/xgrid/bitstring"
	"github.com/xitonix/xgrid/hash"
	"github.com/xitonix/xgrid/text"
	"gopkg.in/yaml.v3"
)

// EnvelopeExtension the file extension of the encrypted envelopes
const EnvelopeExtension = ".xg"

// Envelope is the persisted form of a Ciphertext.
// Checksum is the hex encoded SHA256 hash of the plaintext bytes.
type Envelope struct {
	Name     string `yaml:"name,omitempty"`
	Binary   string `yaml:"binary"`
	Key      int    `yaml:"key"`
	Columns  int    `yaml:"columns"`
	Checksum string `yaml:"checksum"`
}

// Seal encrypts the plaintext into a new envelope
func Seal(name string, plain text.Text) (*Envelope, error) {
	c, err := EncryptText(plain)
	if err != nil {
		return nil, err
	}
	return &Envelope{
		Name:     name,
		Binary:   string(c.Binary),
		Key:      c.Key,
		Columns:  c.Columns,
		Checksum: hash.Checksum(plain.Bytes()),
	}, nil
}

// Open decrypts the envelope and verifies the result against the checksum
func (e *Envelope) Open() (text.Text, error) {
	plain, err := DecryptText(bitstring.String(e.Binary), e.Key, e.Columns)
	if err != nil {
		return nil, err
	}
	if !hash.Verify(plain.Bytes(), e.Checksum) {
		return nil, errors.Wrapf(ErrChecksumMismatch, "envelope %q", e.Name)
	}
	return plain, nil
}

// Marshal serialises the envelope into YAML
func (e *Envelope) Marshal() ([]byte, error) {
	return yaml.Marshal(e)
}

// UnmarshalEnvelope parses a YAML envelope
func UnmarshalEnvelope(data []byte) (*Envelope, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, errors.Wrap(ErrInvalidEnvelope, "empty input")
	}
	var e Envelope
	if err := yaml.Unmarshal(data, &e); err != nil {
		return nil, errors.Wrapf(ErrInvalidEnvelope, "%v", err)
	}
	if e.Checksum == "" {
		return nil, errors.Wrap(ErrInvalidEnvelope, "missing checksum")
	}
	return &e, nil
}
