// Package player hands a resolved stream to an external media player.
package player

import (
	"fmt"
	"net/url"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/tubex-cli/tubex/key"
	"github.com/tubex-cli/tubex/log"
)

const defaultBinary = "mpv"

// Player runs one playback at a time.
type Player struct {
	binary string
	cmd    *exec.Cmd
	exited chan struct{}
}

// New creates a player for binary. An empty name uses player.default.
func New(binary string) *Player {
	if binary == "" {
		binary = viper.GetString(key.Player)
	}
	if binary == "" {
		binary = defaultBinary
	}

	return &Player{binary: binary}
}

// Binary is the executable name.
func (p *Player) Binary() string {
	return p.binary
}

// Available reports whether the binary is on PATH.
func (p *Player) Available() bool {
	_, err := exec.LookPath(p.binary)
	return err == nil
}

// Args builds the command line for playing target.
func (p *Player) Args(target, title, userAgent string) ([]string, error) {
	target, err := sanitizeMediaTarget(target)
	if err != nil {
		return nil, fmt.Errorf("invalid media target: %w", err)
	}

	title = sanitizeTitle(title)

	var args []string
	switch strings.TrimSuffix(filepath.Base(p.binary), ".exe") {
	case "mpv":
		args = append(args, "--no-terminal", "--force-window=yes")
		if title != "" {
			args = append(args, "--force-media-title="+title)
		}
		if userAgent != "" {
			args = append(args, "--user-agent="+userAgent)
		}
	case "vlc":
		args = append(args, "--play-and-exit")
		if title != "" {
			args = append(args, "--meta-title="+title)
		}
		if userAgent != "" {
			args = append(args, "--http-user-agent="+userAgent)
		}
	}

	return append(args, target), nil
}

// Play starts the player detached from the terminal's process group.
func (p *Player) Play(target, title, userAgent string) error {
	args, err := p.Args(target, title, userAgent)
	if err != nil {
		return err
	}

	p.cmd = exec.Command(p.binary, args...)
	p.cmd.SysProcAttr = sysProcAttr()

	log.Infof("starting %s", p.binary)
	if err := p.cmd.Start(); err != nil {
		return fmt.Errorf("start %s: %w", p.binary, err)
	}

	p.exited = make(chan struct{})
	go func() {
		_ = p.cmd.Wait()
		close(p.exited)
	}()

	return nil
}

// Wait is closed when the player exits.
func (p *Player) Wait() <-chan struct{} {
	return p.exited
}

// Close kills a running player.
func (p *Player) Close() error {
	if p.cmd == nil {
		return nil
	}

	select {
	case <-p.exited:
		return nil
	default:
		return killProcess(p.cmd)
	}
}

func sanitizeMediaTarget(link string) (string, error) {
	l := strings.TrimSpace(link)
	if l == "" {
		return "", fmt.Errorf("empty URL")
	}

	if strings.ContainsAny(l, "\x00\n\r") {
		return "", fmt.Errorf("invalid control characters in URL")
	}

	// a leading dash would be read as a flag
	if strings.HasPrefix(l, "-") {
		return "", fmt.Errorf("url must not start with '-'")
	}

	if !strings.Contains(l, "://") {
		return filepath.Clean(l), nil
	}

	u, err := url.Parse(l)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}

	switch strings.ToLower(u.Scheme) {
	case "http", "https":
		return l, nil
	default:
		return "", fmt.Errorf("unsupported URL scheme: %s", u.Scheme)
	}
}

func sanitizeTitle(title string) string {
	title = strings.NewReplacer("\n", " ", "\r", " ", "\t", " ", "\x00", "").Replace(title)
	return strings.TrimSpace(title)
}
