package catalog

const readmeContent = `
WELCOME TO CASSETTE OS v2.0
===========================

This is a simulated operating environment running in your terminal.
Navigation is directory-based.

INSTRUCTIONS:
1. Select FOLDERS and press ENTER to navigate.
2. Select FILES and press ENTER to launch tools.
3. Use the BREADCRUMB bar (TAB) to return to previous directories.
4. DO NOT TURN OFF THE POWER while the tape is saving.

DESIGN PHILOSOPHY:
"High Tech, Low Life." - The Cyberpunk Mantra.
`

// Default returns the builtin tree.
func Default() *Tree {
	return MustNew(NewFolder(RootID, "ROOT", "",
		NewFolder("apps", "APPLICATIONS", "Executable modules",
			NewFile("gemini-term", "AI_CONSOLE.EXE", "Gemini Flash Interface", ToolChatConsole, ""),
			NewFile("sys-mon", "VISUALIZER.DAT", "Data Visualization Core", ToolMonitor, ""),
		),
		NewFolder("docs", "DOCUMENTS", "System manuals",
			NewFile("readme", "README.TXT", "Read Me First", ToolDocument, readmeContent),
		),
		NewFolder("system", "SYSTEM", "Core files"),
	))
}
