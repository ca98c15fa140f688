package main

import (
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/codexplus/ext/extension"
)

func openSurface() (*extension.Surface, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("codexplusctl: %w", err)
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}
	return extension.New(afero.NewOsFs(), cwd, home)
}
