// Package open hands URLs and files to the system's default handler.
package open

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/tubex-cli/tubex/constant"
)

// Start opens input without waiting. A non-empty app overrides the default handler.
func Start(input, app string) error {
	cmd, err := Command(runtime.GOOS, input, app)
	if err != nil {
		return err
	}
	return cmd.Start()
}

// Run opens input and waits for the handler to exit.
func Run(input, app string) error {
	cmd, err := Command(runtime.GOOS, input, app)
	if err != nil {
		return err
	}
	return cmd.Run()
}

// Command builds the opener command for goos.
func Command(goos, input, app string) (*exec.Cmd, error) {
	if app == "" {
		switch goos {
		case constant.Windows:
			rundll := filepath.Join(os.Getenv("SYSTEMROOT"), "System32", "rundll32.exe")
			return exec.Command(rundll, "url.dll,FileProtocolHandler", input), nil
		case constant.Darwin:
			return exec.Command("open", input), nil
		case constant.Linux:
			return exec.Command("xdg-open", input), nil
		case constant.Android:
			return exec.Command("termux-open", input), nil
		}
	} else {
		switch goos {
		case constant.Windows:
			// start treats & as a command separator
			return exec.Command("cmd", "/C", "start", "", app, strings.ReplaceAll(input, "&", "^&")), nil
		case constant.Darwin:
			return exec.Command("open", "-a", app, input), nil
		case constant.Linux:
			return exec.Command(app, input), nil
		case constant.Android:
			return exec.Command("termux-open", "--choose", input), nil
		}
	}

	return nil, fmt.Errorf("unsupported OS: %s", goos)
}
