package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tiliamara/worklog/internal/config"
	"github.com/tiliamara/worklog/internal/store"
)

var fileFlag string

var rootCmd = &cobra.Command{
	Use:   "worklog",
	Short: "worklog – a plain-text activity tracker",
	Long: `worklog tracks what was worked on, from when to when, in a single
human-readable text file. Start an activity with ` + "`worklog start`" + `, stop it
with ` + "`worklog stop`" + `, and derive listings and duration reports from the log.`,
	SilenceUsage: true,
}

// Execute is the entry point called from main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&fileFlag, "file", "f", "",
		"the file in which worklog tracks all activities (default $"+config.EnvFile+")")

	rootCmd.AddCommand(startCmd)
	rootCmd.AddCommand(continueCmd)
	rootCmd.AddCommand(changeCmd)
	rootCmd.AddCommand(stopCmd)
	rootCmd.AddCommand(cancelCmd)
	rootCmd.AddCommand(currentCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(reportCmd)
	rootCmd.AddCommand(lastCmd)
	rootCmd.AddCommand(projectsCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(sanityCmd)
	rootCmd.AddCommand(editCmd)
}

// logFile resolves the activity log path: --file flag, then WORKLOG_FILE,
// then the config file, then ~/.worklog/log.txt.
func logFile() (string, error) {
	if fileFlag != "" {
		return fileFlag, nil
	}
	if env := os.Getenv(config.EnvFile); env != "" {
		return env, nil
	}
	cfg, err := config.Load(config.Path())
	if err != nil {
		return "", err
	}
	if cfg.File != "" {
		return cfg.File, nil
	}
	return config.DefaultLogFile()
}

// loadLog resolves the log path and parses the file. The path is returned
// alongside so mutating commands can save back to it.
func loadLog() (*store.Log, string, error) {
	path, err := logFile()
	if err != nil {
		return nil, "", err
	}
	l, err := store.Load(path)
	if err != nil {
		return nil, "", err
	}
	return l, path, nil
}
