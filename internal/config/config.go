// Package config holds the command line and configuration file layout.
package config

import "github.com/Alia5/plugui/internal/cmd"

type CLI struct {
	ConfigFile string `name:"config" help:"Path to a JSON, YAML or TOML configuration file" type:"path" env:"PLUGUI_CONFIG"`
	Log        Log    `embed:"" prefix:"log."`

	Inspect cmd.Inspect       `cmd:"" help:"Replay scripts and report how every event narrows"`
	Watch   cmd.Watch         `cmd:"" help:"Re-run inspect whenever a script changes"`
	Config  cmd.ConfigCommand `cmd:"" help:"Configuration helpers"`
}

type Log struct {
	Level      string `help:"Log level" default:"info" enum:"trace,debug,info,warn,error" env:"PLUGUI_LOG_LEVEL"`
	File       string `help:"Also write logs to this file" env:"PLUGUI_LOG_FILE"`
	EventsFile string `help:"Write one line per produced event to this file" env:"PLUGUI_LOG_EVENTS_FILE"`
}
