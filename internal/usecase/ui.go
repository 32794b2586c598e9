// Package usecase contains application business logic: the launch pipeline,
// the configuration check, and the interactive configurator.
package usecase

import "github.com/fatih/color"

// Terminal styles shared by the pipelines.
var (
	successStyle = color.New(color.FgGreen)
	headerStyle  = color.New(color.FgCyan)
	warnStyle    = color.New(color.FgYellow)
	accentStyle  = color.New(color.FgCyan, color.Bold)
	boldYellow   = color.New(color.FgYellow, color.Bold)
)

const separator = "─────────────────────────────────"
