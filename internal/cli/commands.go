// Package cli wires the deploygen command-line interface.
package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/deploygen/deploygen/internal/version"
	"github.com/deploygen/deploygen/pkg/config"
	"github.com/deploygen/deploygen/pkg/deploy"
	"github.com/deploygen/deploygen/pkg/errors"
	"github.com/deploygen/deploygen/pkg/filesystem"
	"github.com/deploygen/deploygen/pkg/input"
	"github.com/deploygen/deploygen/pkg/logging"
	"github.com/deploygen/deploygen/pkg/output"
	"github.com/deploygen/deploygen/pkg/registry"
	"github.com/deploygen/deploygen/pkg/render"
)

// NewRootCmd creates and returns the root command
func NewRootCmd() *cobra.Command {
	var (
		verbosity   int
		fullStack   bool
		templateDir string
		app         string
		inputPath   string
		destination string
	)

	rootCmd := &cobra.Command{
		Use:   "deploygen",
		Short: "Create deployment artifacts from templates",
		Long: `deploygen copies a directory tree of deployment templates and renders the
embedded template files against a JSON input, producing concrete deployment
artifacts for a named application, or for every registered component when
run with --fullStack.`,
		Version: version.Version,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.SetupLogger(verbosity)
			log.Debug().Str("command", cmd.Name()).Msg("Command started")
		},
		Example: `  # Deploy a single application
  deploygen -t templates -a lambda -i input.json -d deployments

  # Deploy every registered component
  deploygen --fullStack -t templates -i input.json -d deployments`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !fullStack && app == "" {
				return errors.New(errors.ErrInvalidInput, "an application name (-a) is required unless --fullStack is set")
			}
			if templateDir == "" {
				return errors.New(errors.ErrInvalidInput, "a template directory (-t) is required")
			}
			if inputPath == "" {
				return errors.New(errors.ErrInvalidInput, "an input file (-i) is required")
			}
			if destination == "" {
				return errors.New(errors.ErrInvalidInput, "a destination directory (-d) is required")
			}

			cwd, err := os.Getwd()
			if err != nil {
				return errors.Wrap(err, errors.ErrInternal, "failed to determine working directory")
			}

			return runDeploy(deployOptions{
				cwd:         cwd,
				verbosity:   verbosity,
				fullStack:   fullStack,
				templateDir: templateDir,
				app:         app,
				inputPath:   inputPath,
				destination: destination,
			})
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		DisableAutoGenTag: true,
	}

	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)")
	rootCmd.Flags().BoolVar(&fullStack, "fullStack", false, "Create deployments for all registered components")
	rootCmd.Flags().StringVarP(&templateDir, "template", "t", "", "The template root directory")
	rootCmd.Flags().StringVarP(&app, "app", "a", "", "The application name of the template")
	rootCmd.Flags().StringVarP(&inputPath, "input", "i", "", "Path to the JSON data-mapping file")
	rootCmd.Flags().StringVarP(&destination, "destination", "d", "", "The destination root directory")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newInitCmd())

	return rootCmd
}

// deployOptions carries a resolved invocation of the root command
type deployOptions struct {
	cwd         string
	verbosity   int
	fullStack   bool
	templateDir string
	app         string
	inputPath   string
	destination string
}

func runDeploy(opts deployOptions) error {
	fs := filesystem.NewOS()

	cfg, err := config.Load(opts.cwd)
	if err != nil {
		return err
	}

	// A configured verbosity applies when no -v flags were given
	if opts.verbosity == 0 && cfg.Logging.Verbosity > 0 {
		logging.SetupLogger(cfg.Logging.Verbosity)
	}

	data, err := input.Load(fs, resolvePath(opts.cwd, opts.inputPath))
	if err != nil {
		return err
	}

	format := output.Resolve(output.FormatAuto, os.Stdout)
	reporter := output.NewReporter(os.Stdout, format)
	renderer := render.New(fs, cfg.MarkerSuffix)
	deployer := deploy.New(fs, renderer, reporter)

	if opts.fullStack {
		reg, err := registry.New(cfg.Components)
		if err != nil {
			return err
		}
		return deployer.DeployAll(reg, opts.cwd, opts.templateDir, opts.destination, data)
	}

	req := deploy.NewRequest(opts.cwd, opts.templateDir, opts.destination, opts.app, data)
	return deployer.Deploy(req)
}

// resolvePath leaves absolute paths alone and anchors relative ones at cwd
func resolvePath(cwd, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(cwd, path)
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including commit hash and build date`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("deploygen version %s\n", version.Version)
			if version.Commit != "" {
				fmt.Printf("Commit: %s\n", version.Commit)
			}
			if version.Date != "" {
				fmt.Printf("Built:  %s\n", version.Date)
			}
		},
	}
}
