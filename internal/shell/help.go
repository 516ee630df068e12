package shell

// HelpText lists the shell commands. It is written to the error stream.
const HelpText = `Available commands:
  search <directory>     - Search for files/directories by name
  display <directory>    - Show contents of directory
  cd [directory]         - Change directory (cd alone goes to home)
  pwd                    - Print the current directory
  mkdir <directory>      - Create a new directory
  touch <file>           - Create a new empty file
  rm <path>              - Delete a file or directory
  mv <old> <new>         - Rename or move a file or directory
  help                   - Show this help message
  exit/quit              - Exit the program

Notes:
  - Paths can be absolute or relative to current directory
  - Use quotes for paths containing spaces
  - Use ~ for home directory, .. for parent directory
`

// CommandNames returns every command the shell understands.
func CommandNames() []string {
	return []string{"cd", "display", "exit", "help", "mkdir", "mv", "pwd", "quit", "rm", "search", "touch"}
}

// DirectoryCommands returns the commands whose argument must be a directory.
func DirectoryCommands() []string {
	return []string{"cd"}
}
