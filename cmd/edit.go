package cmd

import (
	"errors"
	"os"
	"os/exec"

	"github.com/spf13/cobra"

	"github.com/tiliamara/worklog/internal/config"
)

var editEditor string

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the activity log in an editor",
	Args:  cobra.NoArgs,
	RunE:  runEdit,
}

func init() {
	editCmd.Flags().StringVarP(&editEditor, "editor", "e", "", "the command to start your preferred text editor (default $EDITOR)")
}

func runEdit(cmd *cobra.Command, args []string) error {
	path, err := logFile()
	if err != nil {
		return err
	}

	editor := editEditor
	if editor == "" {
		editor = os.Getenv("EDITOR")
	}
	if editor == "" {
		if cfg, err := config.Load(config.Path()); err == nil {
			editor = cfg.Editor
		}
	}
	if editor == "" {
		return errors.New("no editor found (use --editor, set $EDITOR, or set editor in the config file)")
	}

	c := exec.Command(editor, path)
	c.Stdin = os.Stdin
	c.Stdout = os.Stdout
	c.Stderr = os.Stderr
	return c.Run()
}
