// init.go implements the "flashdeck init" command.
package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/flashdeck-dev/flashdeck/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize flashdeck in the current directory",
	Long: `Create the .flashdeck/ directory with a default config.yaml and an
empty deck database, and keep runtime files out of git.`,
	Args: cobra.NoArgs,
	RunE: runInit,
}

var forceFlag bool

func init() {
	initCmd.Flags().BoolVar(&forceFlag, "force", false, "Overwrite an existing config.yaml with defaults")
}

func runInit(cmd *cobra.Command, args []string) error {
	dir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting working directory: %w", err)
	}
	return initProject(cmd, dir, forceFlag)
}

func initProject(cmd *cobra.Command, dir string, force bool) error {
	out := cmd.OutOrStdout()

	configPath := filepath.Join(config.Dir(dir), "config.yaml")
	if _, statErr := os.Stat(configPath); statErr == nil && !force {
		fmt.Fprintln(out, "Warning: .flashdeck/config.yaml already exists; keeping it (use --force to reset).")
	} else {
		if err := config.WriteConfig(dir, config.DefaultConfig()); err != nil {
			return fmt.Errorf("writing config: %w", err)
		}
	}

	if err := ensureGitignore(dir); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "Warning: failed to set up .gitignore: %v\n", err)
	}

	cfg, err := config.ReadConfig(dir)
	if err != nil {
		return err
	}
	env := &environment{root: dir, cfg: cfg}
	s, err := env.openStore(commandContext(cmd))
	if err != nil {
		return err
	}
	if err := s.Close(); err != nil {
		return fmt.Errorf("closing deck database: %w", err)
	}

	fmt.Fprintln(out, "Flashdeck initialized")
	fmt.Fprintf(out, "  Config:   %s\n", configPath)
	fmt.Fprintf(out, "  Database: %s\n", cfg.DatabasePath(dir))
	fmt.Fprintln(out)
	fmt.Fprintln(out, "Next: flashdeck import <file.yaml>")
	return nil
}

// ensureGitignore creates or appends to .gitignore with the runtime files.
// Entries already present are not duplicated.
func ensureGitignore(dir string) error {
	gitignorePath := filepath.Join(dir, ".gitignore")

	// config.yaml IS committed.
	requiredEntries := []string{
		".flashdeck/log.jsonl",
		".flashdeck/*.db",
		".flashdeck/*.db-wal",
		".flashdeck/*.db-shm",
	}

	existing := ""
	if data, err := os.ReadFile(gitignorePath); err == nil {
		existing = string(data)
	}

	var missing []string
	for _, entry := range requiredEntries {
		if !strings.Contains(existing, entry) {
			missing = append(missing, entry)
		}
	}
	if len(missing) == 0 {
		return nil
	}

	var toAppend strings.Builder
	if existing != "" && !strings.HasSuffix(existing, "\n") {
		toAppend.WriteString("\n")
	}
	if existing != "" {
		toAppend.WriteString("\n# Added by flashdeck init\n")
	}
	for _, entry := range missing {
		toAppend.WriteString(entry + "\n")
	}

	f, err := os.OpenFile(gitignorePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("opening .gitignore: %w", err)
	}
	defer f.Close()

	if _, err := f.WriteString(toAppend.String()); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}
	return nil
}
