package cli

import (
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/deploygen/deploygen/pkg/config"
	"github.com/deploygen/deploygen/pkg/errors"
)

// starterConfig is what `deploygen init` writes out
type starterConfig struct {
	Components   []string `toml:"components"`
	MarkerSuffix string   `toml:"marker_suffix"`
}

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a starter deploygen.toml to the current directory",
		Long: `Init writes a deploygen.toml with the default component registry and
marker suffix, ready to edit. It refuses to overwrite an existing file.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cwd, err := os.Getwd()
			if err != nil {
				return errors.Wrap(err, errors.ErrInternal, "failed to determine working directory")
			}
			path, err := writeStarterConfig(cwd)
			if err != nil {
				return err
			}
			pterm.Success.Printfln("Wrote %s", path)
			return nil
		},
	}
}

func writeStarterConfig(dir string) (string, error) {
	path := filepath.Join(dir, "deploygen.toml")
	if _, err := os.Stat(path); err == nil {
		return "", errors.Newf(errors.ErrAlreadyExists, "%s already exists", path)
	}

	defaults := config.Default()
	raw, err := toml.Marshal(starterConfig{
		Components:   defaults.Components,
		MarkerSuffix: defaults.MarkerSuffix,
	})
	if err != nil {
		return "", errors.Wrap(err, errors.ErrInternal, "failed to marshal starter config")
	}

	if err := os.WriteFile(path, raw, 0644); err != nil {
		return "", errors.Wrapf(err, errors.ErrFileWrite, "failed to write %s", path)
	}

	return path, nil
}
