package ssh

import (
	"encoding/base64"
	"fmt"

	gossh "golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/agent"
)

// SignWithKey signs data using a discovered private key.
// Returns the signature in SSH wire format, base64 encoded.
// Note: Only unencrypted keys are supported. For encrypted keys, use SignWithAgent.
func SignWithKey(key *DiscoveredKey, data []byte) (string, error) {
	signer, err := key.Signer()
	if err != nil {
		return "", fmt.Errorf("%w (encrypted keys require ssh-agent)", err)
	}

	sig, err := signer.Sign(nil, data)
	if err != nil {
		return "", fmt.Errorf("sign data: %w", err)
	}

	return base64.StdEncoding.EncodeToString(gossh.Marshal(sig)), nil
}

// SignChallengeWithKey signs a base64-encoded challenge using a discovered key.
// This is a convenience wrapper for challenge-response authentication.
func SignChallengeWithKey(key *DiscoveredKey, challenge string) (string, error) {
	challengeBytes, err := base64.RawStdEncoding.DecodeString(challenge)
	if err != nil {
		return "", fmt.Errorf("decode challenge: %w", err)
	}

	return SignWithKey(key, challengeBytes)
}

// SignWithAgent signs data with the agent's copy of a discovered key.
// The key is matched by fingerprint, so passphrase protected keys work as
// long as their .pub file exists and the key was loaded with ssh-add.
// Returns ErrKeyNotFound if the agent does not hold the key.
func SignWithAgent(ag agent.Agent, key *DiscoveredKey, data []byte) (string, error) {
	fp, err := key.Fingerprint()
	if err != nil {
		return "", err
	}

	agentKey, err := FindAgentKeyByFingerprint(ag, fp)
	if err != nil {
		return "", err
	}

	sig, err := ag.Sign(agentKey, data)
	if err != nil {
		return "", fmt.Errorf("sign data: %w", err)
	}

	return base64.StdEncoding.EncodeToString(gossh.Marshal(sig)), nil
}

// SignChallengeWithAgent signs a base64-encoded challenge using the SSH agent.
func SignChallengeWithAgent(ag agent.Agent, key *DiscoveredKey, challenge string) (string, error) {
	challengeBytes, err := base64.RawStdEncoding.DecodeString(challenge)
	if err != nil {
		return "", fmt.Errorf("decode challenge: %w", err)
	}

	return SignWithAgent(ag, key, challengeBytes)
}
