// ABOUTME: Platform dial intent implementations
// ABOUTME: tel: URL handoff to the OS opener, fire and forget
package call

import (
	"log"
	"net/url"
	"os/exec"
	"runtime"
)

// TelDialer hands a tel: URL to the OS opener. Errors are logged, never
// returned - the caller completes the call on their own device either way.
type TelDialer struct{}

func (TelDialer) Dial(phone string) {
	if phone == "" {
		return
	}

	target := "tel:" + url.PathEscape(phone)

	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", target)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", target)
	default:
		cmd = exec.Command("xdg-open", target)
	}

	if err := cmd.Start(); err != nil {
		log.Printf("Warning: could not open dialer for %s: %v", phone, err)
	}
}

// NopDialer does nothing. Used where the host has no dial handoff, such
// as the MCP server.
type NopDialer struct{}

func (NopDialer) Dial(string) {}
