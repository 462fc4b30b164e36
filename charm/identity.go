// ABOUTME: Charm-backed caller identity used to gate mutating operations
// ABOUTME: SSH key auth via charm cloud, with an env override for offline use
package charm

import (
	"fmt"
	"os"
	"sync"

	"github.com/charmbracelet/charm/client"
)

// UserEnvVar short-circuits the charm lookup when set. Useful offline
// and in scripted environments.
const UserEnvVar = "COLDCALL_USER"

// Identity resolves the caller's account through the charm server.
// Satisfies the identity contract the call package gates on.
type Identity struct {
	mu     sync.Mutex
	cached string
}

// NewIdentity returns an identity bound to the configured charm host.
func NewIdentity() (*Identity, error) {
	cfg, err := LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Charm reads its host from the environment when opening a client.
	_ = os.Setenv("CHARM_HOST", cfg.Host)

	return &Identity{}, nil
}

// UserID returns the active account ID, resolving it once and caching
// the result for the life of the process.
func (i *Identity) UserID() (string, error) {
	if user := os.Getenv(UserEnvVar); user != "" {
		return user, nil
	}

	i.mu.Lock()
	defer i.mu.Unlock()
	if i.cached != "" {
		return i.cached, nil
	}

	cc, err := client.NewClientWithDefaults()
	if err != nil {
		return "", fmt.Errorf("failed to create charm client: %w", err)
	}
	id, err := cc.ID()
	if err != nil {
		return "", fmt.Errorf("failed to resolve account: %w", err)
	}

	i.cached = id
	return id, nil
}

// IsConnected checks whether an account can be resolved right now.
func (i *Identity) IsConnected() bool {
	_, err := i.UserID()
	return err == nil
}
