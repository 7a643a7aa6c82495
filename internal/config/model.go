package config

// DefaultFilename is used when the user saves without naming a file.
const DefaultFilename = "ascii_output.txt"

// Settings is the unified, format-agnostic representation of the shell's
// tunable behavior.
type Settings struct {
	// DefaultFilename is offered when the filename prompt is left blank.
	DefaultFilename string
	// DefaultColor is the palette key used when the color prompt is left
	// blank or answered with an unknown key.
	DefaultColor string
	// ClearScreen forces screen clearing on or off. Nil means "only when
	// stdout is a terminal".
	ClearScreen *bool
	// PromptSave enables the "Save output" question after every render.
	PromptSave bool
}

// Defaults returns the settings used when no file overrides them.
func Defaults() *Settings {
	return &Settings{
		DefaultFilename: DefaultFilename,
		DefaultColor:    "1",
		PromptSave:      true,
	}
}
