package llm

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rotisserie/eris"
)

// DefaultSystemPrompt returns the built-in narrative instructions.
func DefaultSystemPrompt() string {
	return systemPrompt
}

// LoadPrompt reads a system prompt override from path.
// An empty path yields the built-in prompt.
func LoadPrompt(path string) (string, error) {
	if path == "" {
		return systemPrompt, nil
	}

	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return "", eris.Wrap(err, "read prompt file")
	}
	prompt := strings.TrimSpace(string(data))
	if prompt == "" {
		return "", eris.Errorf("prompt file %s is empty", path)
	}
	return prompt, nil
}

// SavePrompt writes prompt to path, creating parent directories.
// Used to export the built-in prompt as a starting point for overrides.
func SavePrompt(path, prompt string) error {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return eris.Wrap(err, "create prompt directory")
		}
	}
	return eris.Wrap(os.WriteFile(path, []byte(prompt), 0o600), "write prompt file")
}
