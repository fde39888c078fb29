// Package integration provides embedded shell integration snippets.
package integration

import (
	"bytes"
	_ "embed"
	"errors"
	"os/exec"
	"path/filepath"
	"text/template"
)

// ZshFzf contains the zsh shell integration script with fzf support.
//
//go:embed zsh-fzf.sh
var ZshFzf string

// ErrNoBinary is returned when no binary name is given to Render.
var ErrNoBinary = errors.New("binary name is empty")

// Render renders the integration script for the binary named binary, which the
// script invokes to produce the directory listing piped to fzf.
// The script's interpreter is the zsh found on PATH.
func Render(binary string) (string, error) {
	zsh, err := exec.LookPath("zsh")
	if err != nil {
		return "", err
	}

	return render(filepath.ToSlash(zsh), binary)
}

func render(zsh, binary string) (string, error) {
	if binary == "" {
		return "", ErrNoBinary
	}

	tmpl, err := template.New("zsh-fzf").Option("missingkey=error").Parse(ZshFzf)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, map[string]any{
		"ZSH":    zsh,
		"Binary": filepath.Base(binary),
	}); err != nil {
		return "", err
	}

	return buf.String(), nil
}
