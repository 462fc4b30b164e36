// ABOUTME: CLI commands for the Charm account backing the identity gate
// ABOUTME: SSH key auth - no login/logout flow needed
package charm

import (
	"flag"
	"fmt"
)

// AccountStatusCommand shows the configured server and whether an
// account can be resolved.
func AccountStatusCommand(args []string) error {
	fs := flag.NewFlagSet("account status", flag.ExitOnError)
	_ = fs.Parse(args)

	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	fmt.Println("Account Status")
	fmt.Println("──────────────")
	fmt.Printf("Server: %s\n", cfg.Host)

	identity, err := NewIdentity()
	if err != nil {
		return err
	}

	id, err := identity.UserID()
	if err != nil {
		fmt.Println("\nStatus: Not connected")
		fmt.Println("\nCharm uses SSH keys for authentication - no login required!")
		return nil //nolint:nilerr // Intentionally returning nil - not connected is a valid state, not an error
	}

	fmt.Println("\nStatus: Connected")
	fmt.Printf("ID:     %s\n", id)
	return nil
}

// AccountHostCommand points the identity backend at a different charm
// server.
func AccountHostCommand(args []string) error {
	fs := flag.NewFlagSet("account host", flag.ExitOnError)
	_ = fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Println("Usage: coldcall account host <hostname>")
		return nil
	}

	cfg, err := LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.SetHost(fs.Arg(0)); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	fmt.Printf("✓ Charm host set to %s\n", cfg.Host)
	return nil
}
