package ssh

import (
	"encoding/base64"
	"errors"
	"testing"

	gossh "golang.org/x/crypto/ssh"

	"github.com/randalmurphal/keyfind/testutil"
)

func discover(t *testing.T, files map[string]string) *DiscoveredKey {
	t.Helper()

	key, err := FindSystemKeyWithConfig(quietConfig(testutil.SetupHome(t, files)))
	if err != nil {
		t.Fatalf("FindSystemKeyWithConfig() error = %v", err)
	}
	return key
}

func TestDiscoveredKey_Signer(t *testing.T) {
	tests := []struct {
		name     string
		file     string
		kp       testutil.KeyPair
		wantAlgo string
	}{
		{name: "ed25519", file: "id_ed25519", kp: testutil.GenerateED25519(t), wantAlgo: gossh.KeyAlgoED25519},
		{name: "rsa", file: "id_rsa", kp: testutil.GenerateRSA(t), wantAlgo: gossh.KeyAlgoRSA},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key := discover(t, map[string]string{tt.file: tt.kp.PrivatePEM})

			signer, err := key.Signer()
			if err != nil {
				t.Fatalf("Signer() error = %v", err)
			}
			if got := signer.PublicKey().Type(); got != tt.wantAlgo {
				t.Errorf("public key type = %q, want %q", got, tt.wantAlgo)
			}

			fp, err := key.Fingerprint()
			if err != nil {
				t.Fatalf("Fingerprint() error = %v", err)
			}
			if want := gossh.FingerprintSHA256(tt.kp.PublicKey); fp != want {
				t.Errorf("Fingerprint() = %q, want %q", fp, want)
			}

			if _, err := key.AuthMethod(); err != nil {
				t.Errorf("AuthMethod() error = %v", err)
			}
		})
	}
}

func TestDiscoveredKey_PassphraseProtected(t *testing.T) {
	kp := testutil.GenerateEncryptedED25519(t, "hunter2")

	t.Run("without public key file", func(t *testing.T) {
		key := discover(t, map[string]string{"id_ed25519": kp.PrivatePEM})

		if _, err := key.Signer(); !errors.Is(err, ErrPassphraseRequired) {
			t.Errorf("Signer() error = %v, want ErrPassphraseRequired", err)
		}
		if _, err := key.Fingerprint(); !errors.Is(err, ErrPassphraseRequired) {
			t.Errorf("Fingerprint() error = %v, want ErrPassphraseRequired", err)
		}
	})

	t.Run("falls back to public key file", func(t *testing.T) {
		key := discover(t, map[string]string{
			"id_ed25519":     kp.PrivatePEM,
			"id_ed25519.pub": kp.PublicLine,
		})

		fp, err := key.Fingerprint()
		if err != nil {
			t.Fatalf("Fingerprint() error = %v", err)
		}
		if want := gossh.FingerprintSHA256(kp.PublicKey); fp != want {
			t.Errorf("Fingerprint() = %q, want %q", fp, want)
		}
	})
}

func TestDiscoveredKey_Unparseable(t *testing.T) {
	key := discover(t, map[string]string{"id_ed25519": samplePrivateKey})

	_, err := key.Signer()
	if err == nil {
		t.Fatal("expected parse error for placeholder key")
	}
	if errors.Is(err, ErrPassphraseRequired) {
		t.Error("placeholder key should not report ErrPassphraseRequired")
	}
	if _, err := key.Fingerprint(); err == nil {
		t.Error("Fingerprint() expected error")
	}
}

func TestDiscoveredKey_PublicKeyPath(t *testing.T) {
	key := &DiscoveredKey{Path: "/home/alice/.ssh/id_rsa"}
	if got := key.PublicKeyPath(); got != "/home/alice/.ssh/id_rsa.pub" {
		t.Errorf("PublicKeyPath() = %q", got)
	}
}

func TestSignWithKey(t *testing.T) {
	kp := testutil.GenerateED25519(t)
	key := discover(t, map[string]string{"id_ed25519": kp.PrivatePEM})
	data := []byte("challenge-data")

	encoded, err := SignWithKey(key, data)
	if err != nil {
		t.Fatalf("SignWithKey() error = %v", err)
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		t.Fatalf("decode signature: %v", err)
	}
	var sig gossh.Signature
	if err := gossh.Unmarshal(raw, &sig); err != nil {
		t.Fatalf("unmarshal signature: %v", err)
	}
	if err := kp.PublicKey.Verify(data, &sig); err != nil {
		t.Errorf("signature does not verify: %v", err)
	}
}

func TestSignChallengeWithKey(t *testing.T) {
	kp := testutil.GenerateED25519(t)
	key := discover(t, map[string]string{"id_ed25519": kp.PrivatePEM})

	t.Run("valid challenge", func(t *testing.T) {
		challenge := base64.RawStdEncoding.EncodeToString([]byte("nonce"))
		if _, err := SignChallengeWithKey(key, challenge); err != nil {
			t.Errorf("SignChallengeWithKey() error = %v", err)
		}
	})

	t.Run("invalid base64", func(t *testing.T) {
		if _, err := SignChallengeWithKey(key, "!!!"); err == nil {
			t.Error("expected error for invalid challenge")
		}
	})

	t.Run("encrypted key", func(t *testing.T) {
		enc := testutil.GenerateEncryptedED25519(t, "pw")
		encKey := discover(t, map[string]string{"id_ed25519": enc.PrivatePEM})
		challenge := base64.RawStdEncoding.EncodeToString([]byte("nonce"))
		if _, err := SignChallengeWithKey(encKey, challenge); !errors.Is(err, ErrPassphraseRequired) {
			t.Errorf("error = %v, want ErrPassphraseRequired", err)
		}
	})
}
