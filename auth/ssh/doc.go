// Package ssh discovers the current user's SSH private key and provides
// helpers for using it.
//
// This package includes:
//   - Private key discovery in ~/.ssh (id_ed25519, then id_rsa)
//   - Listing which candidate key files exist
//   - Signer, auth method, and fingerprint derivation for a found key
//   - SSH agent connection and loading keys into it
//   - Public key parsing and fingerprint computation
//
// # Finding the System Key
//
// Candidates are probed in a fixed order and the first readable file that
// contains a private key wins:
//
//	key, err := ssh.FindSystemKey()
//	if err != nil {
//	    var nf *ssh.KeyNotFoundError
//	    if errors.As(err, &nf) {
//	        fmt.Println(nf) // includes ssh-keygen suggestions
//	    }
//	    return err
//	}
//	fmt.Println(key.KeyType, key.Path)
//
// Discovery only checks that the file looks like a private key. It does not
// parse it, so a passphrase protected key is still returned.
//
// # Listing Candidates
//
//	entries, err := ssh.ListAvailableKeys()
//	for _, e := range entries {
//	    fmt.Printf("%s %s exists=%v\n", e.KeyType, e.Path, e.Exists)
//	}
//
// # Custom Configuration
//
// Pass the home directory explicitly instead of reading it from the
// environment:
//
//	cfg := ssh.Config{
//	    HomeDir: "/home/builder",
//	    Logger:  slog.New(slog.NewTextHandler(os.Stderr, nil)),
//	}
//
//	ok := ssh.HasSystemKeysWithConfig(cfg)
//
// # Using a Key
//
//	auth, err := key.AuthMethod()
//	client, err := gossh.Dial("tcp", addr, &gossh.ClientConfig{
//	    User: "git",
//	    Auth: []gossh.AuthMethod{auth},
//	    ...
//	})
package ssh
