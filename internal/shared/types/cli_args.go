package types

// CLIArgs represents the command-line arguments.
type CLIArgs struct {
	ConfigFile string
	Year       *int
	Month      *int
	Dir        string
	ReportType []string
	Engine     string
}
