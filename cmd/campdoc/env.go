package main

import (
	"io"
	"os"
	"time"
)

// Environment variables read by the CLI. Flags take precedence.
const (
	envConfigPath = "CAMPDOC_CONFIG"     // config file path
	envAssetPath  = "CAMPDOC_ASSET_PATH" // custom asset directory
)

// Environment holds injectable dependencies for testability.
type Environment struct {
	Now    func() time.Time
	Stdout io.Writer
	Stderr io.Writer
	Getenv func(string) string
	Getwd  func() (string, error)
}

// DefaultEnv returns the production environment.
func DefaultEnv() *Environment {
	return &Environment{
		Now:    time.Now,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Getenv: os.Getenv,
		Getwd:  os.Getwd,
	}
}

// lookup returns the first non-empty value: the flag, then the env var.
func (e *Environment) lookup(flagValue, envKey string) string {
	if flagValue != "" {
		return flagValue
	}
	if e.Getenv == nil {
		return ""
	}
	return e.Getenv(envKey)
}
