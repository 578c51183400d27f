package ssh

import (
	"errors"
	"fmt"
	"io"
	"net"
	"os"

	gossh "golang.org/x/crypto/ssh"
	"golang.org/x/crypto/ssh/agent"
)

// AgentConnection wraps an SSH agent with its underlying connection
// for proper resource cleanup.
type AgentConnection struct {
	agent.ExtendedAgent
	conn io.Closer
}

// Close closes the underlying connection to the SSH agent.
func (a *AgentConnection) Close() error {
	if a.conn != nil {
		return a.conn.Close()
	}
	return nil
}

// GetAgent connects to the SSH agent via SSH_AUTH_SOCK.
// The returned AgentConnection should be closed when done to avoid resource leaks.
func GetAgent() (*AgentConnection, error) {
	socket := os.Getenv("SSH_AUTH_SOCK")
	if socket == "" {
		return nil, ErrNoSSHAgent
	}

	conn, err := net.Dial("unix", socket)
	if err != nil {
		return nil, fmt.Errorf("connect to ssh-agent: %w", err)
	}

	return &AgentConnection{
		ExtendedAgent: agent.NewClient(conn),
		conn:          conn,
	}, nil
}

// AddToAgent loads a discovered private key into the agent.
// If comment is empty the key path is used.
func AddToAgent(ag agent.Agent, key *DiscoveredKey, comment string) error {
	raw, err := gossh.ParseRawPrivateKey([]byte(key.PrivateKey))
	if err != nil {
		return wrapParseError(key.Path, err)
	}
	if comment == "" {
		comment = key.Path
	}

	if err := ag.Add(agent.AddedKey{PrivateKey: raw, Comment: comment}); err != nil {
		return fmt.Errorf("add key to ssh-agent: %w", err)
	}
	return nil
}

// ListAgentKeys lists all keys currently in the SSH agent.
func ListAgentKeys(ag agent.Agent) ([]*agent.Key, error) {
	keys, err := ag.List()
	if err != nil {
		return nil, fmt.Errorf("list agent keys: %w", err)
	}
	return keys, nil
}

// FindAgentKeyByFingerprint finds a key in the agent by its fingerprint.
func FindAgentKeyByFingerprint(ag agent.Agent, fingerprint string) (*agent.Key, error) {
	keys, err := ListAgentKeys(ag)
	if err != nil {
		return nil, err
	}

	for _, key := range keys {
		if ComputeFingerprint(key.Blob) == fingerprint {
			return key, nil
		}
	}

	return nil, ErrKeyNotFound
}

// HasKeyInAgent reports whether the agent already holds the discovered key.
func HasKeyInAgent(ag agent.Agent, key *DiscoveredKey) (bool, error) {
	fp, err := key.Fingerprint()
	if err != nil {
		return false, err
	}
	_, err = FindAgentKeyByFingerprint(ag, fp)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrKeyNotFound):
		return false, nil
	default:
		return false, err
	}
}
