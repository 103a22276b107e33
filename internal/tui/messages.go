package tui

import "github.com/alexisbeaulieu97/articleparams/internal/config"

// ConfigReloadedMsg carries a configuration re-read from disk.
type ConfigReloadedMsg struct {
	Config *config.Config
}

// ConfigErrorMsg reports a configuration file that failed to load.
type ConfigErrorMsg struct {
	Err error
}
