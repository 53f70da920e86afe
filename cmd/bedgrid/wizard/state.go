// Package wizard provides an interactive TUI for admitting the patients of
// a ward, as an alternative to the console prompts.
package wizard

import "github.com/mrsinham/bedgrid/cmd/bedgrid/wizard/types"

// Aliases keep the wizard API free of the types import.
type (
	WizardState = types.WizardState
	WardConfig  = types.WardConfig
	BedConfig   = types.BedConfig
)
