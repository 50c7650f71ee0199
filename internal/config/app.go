package config

import (
	"os"
	"strings"
)

var envKeys = map[string]string{
	"preset": "MINES_PRESET",
	"rows":   "MINES_ROWS",
	"cols":   "MINES_COLS",
	"mines":  "MINES_MINES",
	"seed":   "MINES_SEED",
	"theme":  "MINES_THEME",
}

func Development() bool {
	development, ok := os.LookupEnv("DEVELOPMENT")
	if !ok {
		return false
	}
	return development != "0"
}

func LogFile() string {
	return os.Getenv("MINES_LOG_FILE")
}

// GameFromEnv reads the MINES_* variables that are set. Unset variables leave
// the corresponding fields empty.
func GameFromEnv() (Game, error) {
	src := make(map[string][]string)
	for key, env := range envKeys {
		if v, ok := os.LookupEnv(env); ok && strings.TrimSpace(v) != "" {
			src[key] = []string{strings.TrimSpace(v)}
		}
	}
	return DecodeGame(src)
}
