//go:build !windows

package main

import (
	"errors"

	"github.com/rs/zerolog"

	"wuikit/internal/config"
)

func runDemo(config.Config, zerolog.Logger) error {
	return errors.New("wuidemo: the demo window needs Windows, try the config command")
}
