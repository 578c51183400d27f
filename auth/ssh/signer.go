package ssh

import (
	"errors"

	gossh "golang.org/x/crypto/ssh"
)

// Signer parses the discovered private key.
// Encrypted keys fail with an error wrapping ErrPassphraseRequired.
func (k *DiscoveredKey) Signer() (gossh.Signer, error) {
	signer, err := gossh.ParsePrivateKey([]byte(k.PrivateKey))
	if err != nil {
		return nil, wrapParseError(k.Path, err)
	}
	return signer, nil
}

// PublicKey returns the public half of the discovered key.
func (k *DiscoveredKey) PublicKey() (gossh.PublicKey, error) {
	signer, err := k.Signer()
	if err != nil {
		return nil, err
	}
	return signer.PublicKey(), nil
}

// Fingerprint returns the SHA256 fingerprint of the discovered key.
//
// When the private key is passphrase protected the companion .pub file is
// used instead, if present.
func (k *DiscoveredKey) Fingerprint() (string, error) {
	pub, err := k.PublicKey()
	if err == nil {
		return ComputeFingerprint(pub.Marshal()), nil
	}
	if !errors.Is(err, ErrPassphraseRequired) {
		return "", err
	}

	info, pubErr := ReadPublicKey(k.PublicKeyPath())
	if pubErr != nil {
		return "", err
	}
	return info.Fingerprint, nil
}

// PublicKeyPath returns the conventional location of the matching public key.
func (k *DiscoveredKey) PublicKeyPath() string {
	return k.Path + ".pub"
}

// AuthMethod returns an ssh.AuthMethod that authenticates with the key.
func (k *DiscoveredKey) AuthMethod() (gossh.AuthMethod, error) {
	signer, err := k.Signer()
	if err != nil {
		return nil, err
	}
	return gossh.PublicKeys(signer), nil
}

func wrapParseError(path string, err error) error {
	var missing *gossh.PassphraseMissingError
	if errors.As(err, &missing) {
		return &KeyError{Path: path, Err: ErrPassphraseRequired}
	}
	return &KeyError{Path: path, Err: err}
}
