package ssh

import (
	"encoding/base64"
	"errors"
	"testing"

	gossh "golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/agent"

	"github.com/randalmurphal/keyfind/testutil"
)

func TestGetAgent_NoSocket(t *testing.T) {
	t.Setenv("SSH_AUTH_SOCK", "")

	_, err := GetAgent()
	if !errors.Is(err, ErrNoSSHAgent) {
		t.Errorf("GetAgent() error = %v, want ErrNoSSHAgent", err)
	}
}

func TestGetAgent_InvalidSocket(t *testing.T) {
	t.Setenv("SSH_AUTH_SOCK", "/nonexistent/socket/path")

	_, err := GetAgent()
	if err == nil {
		t.Fatal("GetAgent() expected error for invalid socket")
	}
	if errors.Is(err, ErrNoSSHAgent) {
		t.Error("GetAgent() should not return ErrNoSSHAgent for dial failure")
	}
}

type mockCloser struct {
	closed bool
}

func (m *mockCloser) Close() error {
	m.closed = true
	return nil
}

func TestAgentConnection_Close(t *testing.T) {
	t.Run("close with nil conn", func(t *testing.T) {
		ac := &AgentConnection{}
		if err := ac.Close(); err != nil {
			t.Errorf("Close() error = %v, want nil", err)
		}
	})

	t.Run("close with mock conn", func(t *testing.T) {
		mc := &mockCloser{}
		ac := &AgentConnection{conn: mc}
		if err := ac.Close(); err != nil {
			t.Errorf("Close() error = %v, want nil", err)
		}
		if !mc.closed {
			t.Error("Close() did not close underlying connection")
		}
	})
}

func TestAddToAgent(t *testing.T) {
	kp := testutil.GenerateED25519(t)
	key := discover(t, map[string]string{"id_ed25519": kp.PrivatePEM})
	keyring := agent.NewKeyring()

	if ok, err := HasKeyInAgent(keyring, key); err != nil || ok {
		t.Fatalf("HasKeyInAgent() before add = %v, %v", ok, err)
	}

	if err := AddToAgent(keyring, key, ""); err != nil {
		t.Fatalf("AddToAgent() error = %v", err)
	}

	keys, err := ListAgentKeys(keyring)
	if err != nil {
		t.Fatalf("ListAgentKeys() error = %v", err)
	}
	if len(keys) != 1 {
		t.Fatalf("ListAgentKeys() returned %d keys, want 1", len(keys))
	}
	if keys[0].Comment != key.Path {
		t.Errorf("Comment = %q, want %q", keys[0].Comment, key.Path)
	}

	found, err := FindAgentKeyByFingerprint(keyring, gossh.FingerprintSHA256(kp.PublicKey))
	if err != nil {
		t.Fatalf("FindAgentKeyByFingerprint() error = %v", err)
	}
	if found.Format != gossh.KeyAlgoED25519 {
		t.Errorf("Format = %q, want %q", found.Format, gossh.KeyAlgoED25519)
	}

	if ok, err := HasKeyInAgent(keyring, key); err != nil || !ok {
		t.Errorf("HasKeyInAgent() after add = %v, %v", ok, err)
	}
}

func TestAddToAgent_Errors(t *testing.T) {
	t.Run("encrypted key", func(t *testing.T) {
		kp := testutil.GenerateEncryptedED25519(t, "pw")
		key := discover(t, map[string]string{"id_ed25519": kp.PrivatePEM})

		err := AddToAgent(agent.NewKeyring(), key, "comment")
		if !errors.Is(err, ErrPassphraseRequired) {
			t.Errorf("AddToAgent() error = %v, want ErrPassphraseRequired", err)
		}
	})

	t.Run("locked keyring", func(t *testing.T) {
		kp := testutil.GenerateED25519(t)
		key := discover(t, map[string]string{"id_ed25519": kp.PrivatePEM})
		keyring := agent.NewKeyring()
		if err := keyring.Lock([]byte("pw")); err != nil {
			t.Fatalf("Lock() error = %v", err)
		}

		if err := AddToAgent(keyring, key, "comment"); err == nil {
			t.Error("AddToAgent() expected error for locked agent")
		}
	})
}

func TestFindAgentKeyByFingerprint_NotFound(t *testing.T) {
	_, err := FindAgentKeyByFingerprint(agent.NewKeyring(), "SHA256:missing")
	if !errors.Is(err, ErrKeyNotFound) {
		t.Errorf("error = %v, want ErrKeyNotFound", err)
	}
}

func verifyAgentSignature(t *testing.T, pub gossh.PublicKey, data []byte, encoded string) {
	t.Helper()

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		t.Fatalf("signature is not base64: %v", err)
	}
	var sig gossh.Signature
	if err := gossh.Unmarshal(raw, &sig); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if err := pub.Verify(data, &sig); err != nil {
		t.Errorf("Verify() error = %v", err)
	}
}

func TestSignWithAgent(t *testing.T) {
	kp := testutil.GenerateED25519(t)
	key := discover(t, map[string]string{"id_ed25519": kp.PrivatePEM})
	keyring := agent.NewKeyring()
	if err := AddToAgent(keyring, key, ""); err != nil {
		t.Fatalf("AddToAgent() error = %v", err)
	}

	data := []byte("hello agent")
	sig, err := SignWithAgent(keyring, key, data)
	if err != nil {
		t.Fatalf("SignWithAgent() error = %v", err)
	}
	verifyAgentSignature(t, kp.PublicKey, data, sig)

	challenge := base64.RawStdEncoding.EncodeToString(data)
	sig, err = SignChallengeWithAgent(keyring, key, challenge)
	if err != nil {
		t.Fatalf("SignChallengeWithAgent() error = %v", err)
	}
	verifyAgentSignature(t, kp.PublicKey, data, sig)
}

func TestSignWithAgent_EncryptedKeyViaPublicKeyFile(t *testing.T) {
	kp := testutil.GenerateEncryptedED25519(t, "pw")
	key := discover(t, map[string]string{
		"id_ed25519":     kp.PrivatePEM,
		"id_ed25519.pub": kp.PublicLine,
	})

	raw, err := gossh.ParseRawPrivateKeyWithPassphrase([]byte(kp.PrivatePEM), []byte("pw"))
	if err != nil {
		t.Fatalf("ParseRawPrivateKeyWithPassphrase() error = %v", err)
	}
	keyring := agent.NewKeyring()
	if err := keyring.Add(agent.AddedKey{PrivateKey: raw}); err != nil {
		t.Fatalf("keyring.Add() error = %v", err)
	}

	data := []byte("encrypted on disk")
	sig, err := SignWithAgent(keyring, key, data)
	if err != nil {
		t.Fatalf("SignWithAgent() error = %v", err)
	}
	verifyAgentSignature(t, kp.PublicKey, data, sig)
}

func TestSignWithAgent_Errors(t *testing.T) {
	kp := testutil.GenerateED25519(t)
	key := discover(t, map[string]string{"id_ed25519": kp.PrivatePEM})

	t.Run("key not loaded", func(t *testing.T) {
		_, err := SignWithAgent(agent.NewKeyring(), key, []byte("x"))
		if !errors.Is(err, ErrKeyNotFound) {
			t.Errorf("SignWithAgent() error = %v, want ErrKeyNotFound", err)
		}
	})

	t.Run("encrypted key without pub file", func(t *testing.T) {
		enc := testutil.GenerateEncryptedED25519(t, "pw")
		encKey := discover(t, map[string]string{"id_ed25519": enc.PrivatePEM})
		_, err := SignWithAgent(agent.NewKeyring(), encKey, []byte("x"))
		if !errors.Is(err, ErrPassphraseRequired) {
			t.Errorf("SignWithAgent() error = %v, want ErrPassphraseRequired", err)
		}
	})

	t.Run("bad challenge", func(t *testing.T) {
		_, err := SignChallengeWithAgent(agent.NewKeyring(), key, "!!!")
		if err == nil {
			t.Error("SignChallengeWithAgent() expected decode error")
		}
	})
}
