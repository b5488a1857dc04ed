package views

// RenderStatus renders the bottom line: engine state and key help.
func RenderStatus(help string, running bool) string {
	state := "WAITING FOR COMMAND..."
	if running {
		state = "TOOL ACTIVE"
	}
	line := "ENGINE: MOUNTED // " + state
	if help != "" {
		line += "  " + help
	}
	return StatusStyle.Render(line)
}
