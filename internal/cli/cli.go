package cli

import (
	"flag"
	"fmt"
	"io"
	"strings"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Options is the validated result of argument parsing.
type Options struct {
	// Exactly one of the three mode arguments is set.
	StudyDirectory string
	DataDirectory  string
	RemoveStudy    string

	SettingsPath   string
	JarPath        string
	PortalHome     string
	PropertiesPath string

	LogFormat string
	LogLevel  string
}

// Parse processes command-line arguments. It returns populated Options, a
// boolean indicating if the program should exit cleanly, or an ExitError.
func Parse(args []string, output io.Writer) (*Options, bool, error) {
	flagSet := flag.NewFlagSet("studyload", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
studyload - imports a study directory into the portal database via the
external importer jar.

Usage:
  studyload [options]

Modes (mutually exclusive, one required):
  -study-directory DIR   Full load of a whole-study directory.
  -data-directory DIR    Incremental (delta) load with overwrite semantics.
  -remove-study ARG      Remove a loaded study; ARG is a study id or a
                         study directory holding meta_study.txt.

Options:
`)
		flagSet.PrintDefaults()
	}

	studyDirFlag := flagSet.String("study-directory", "", "Path to a whole-study directory (full load).")
	dataDirFlag := flagSet.String("data-directory", "", "Path to an incremental data directory (delta load).")
	removeFlag := flagSet.String("remove-study", "", "Study id or study directory to remove.")
	settingsFlag := flagSet.String("settings", "", "Path to an HCL settings file with a portal block.")
	jarFlag := flagSet.String("jar", "", "Explicit importer jar path (skips the portal-home scan).")
	portalHomeFlag := flagSet.String("portal-home", "", "Portal installation root; the jar is located under its lib directory.")
	propertiesFlag := flagSet.String("properties", "", "Explicit server-properties file passed through to the importer.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	modes := 0
	for _, v := range []string{*studyDirFlag, *dataDirFlag, *removeFlag} {
		if v != "" {
			modes++
		}
	}
	if modes == 0 {
		flagSet.Usage()
		return nil, true, nil
	}
	if modes > 1 {
		return nil, false, &ExitError{Code: 2, Message: "-study-directory, -data-directory and -remove-study are mutually exclusive"}
	}

	logFormat := strings.ToLower(*logFormatFlag)
	if logFormat != "text" && logFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	logLevel := strings.ToLower(*logLevelFlag)
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}

	return &Options{
		StudyDirectory: *studyDirFlag,
		DataDirectory:  *dataDirFlag,
		RemoveStudy:    *removeFlag,
		SettingsPath:   *settingsFlag,
		JarPath:        *jarFlag,
		PortalHome:     *portalHomeFlag,
		PropertiesPath: *propertiesFlag,
		LogFormat:      logFormat,
		LogLevel:       logLevel,
	}, false, nil
}
