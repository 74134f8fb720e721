// Package deploy orchestrates deployment runs: for each requested
// application it materializes the template tree and then renders the
// marker-suffixed files at the destination's top level. Applications are
// processed strictly sequentially and the first failure stops the run.
package deploy

import (
	"os"
	"path/filepath"
	"time"

	"github.com/rs/zerolog"

	"github.com/deploygen/deploygen/pkg/errors"
	"github.com/deploygen/deploygen/pkg/logging"
	"github.com/deploygen/deploygen/pkg/materialize"
	"github.com/deploygen/deploygen/pkg/output"
	"github.com/deploygen/deploygen/pkg/registry"
	"github.com/deploygen/deploygen/pkg/render"
	"github.com/deploygen/deploygen/pkg/types"
)

// Deployer runs copy-then-render deployments
type Deployer struct {
	fs       types.FS
	renderer *render.Renderer
	reporter *output.Reporter
	logger   zerolog.Logger
}

// New creates a Deployer
func New(fs types.FS, renderer *render.Renderer, reporter *output.Reporter) *Deployer {
	return &Deployer{
		fs:       fs,
		renderer: renderer,
		reporter: reporter,
		logger:   logging.GetLogger("deploy"),
	}
}

// NewRequest computes the deployment request for one application:
// <templateRoot>/<app> as source and <destRoot>/<app> as destination,
// both resolved against cwd.
func NewRequest(cwd, templateRoot, destRoot, app string, data map[string]interface{}) types.Request {
	return types.Request{
		App:     app,
		SrcDir:  filepath.Join(cwd, templateRoot, app),
		DestDir: filepath.Join(cwd, destRoot, app),
		Data:    data,
	}
}

// Deploy runs a single deployment request to completion: verify the
// source exists, copy the tree, render the destination's top level.
// A missing source fails before anything is written.
func (d *Deployer) Deploy(req types.Request) error {
	if _, err := d.fs.Stat(req.SrcDir); err != nil {
		if os.IsNotExist(err) {
			return errors.Newf(errors.ErrSourceMissing, "%s does not exist", req.SrcDir).
				WithDetail("app", req.App)
		}
		return errors.Wrapf(err, errors.ErrFileAccess, "failed to stat source directory %s", req.SrcDir)
	}

	defer logging.LogDuration(time.Now(), "deploy "+req.App)

	d.logger.Info().
		Str("app", req.App).
		Str("src", req.SrcDir).
		Str("dest", req.DestDir).
		Msg("deploying application")

	d.reporter.Section(req.App)
	d.reporter.Copying(req.SrcDir, req.DestDir)
	if err := materialize.CopyTree(d.fs, req.SrcDir, req.DestDir); err != nil {
		return err
	}

	if err := d.renderer.RenderDir(req.DestDir, req.Data); err != nil {
		return err
	}

	d.reporter.Completed(req.App)
	return nil
}

// DeployAll deploys every registered component in registration order,
// reusing the same data mapping for each. The first failing component
// aborts the run; earlier components stay deployed.
func (d *Deployer) DeployAll(reg *registry.Registry, cwd, templateRoot, destRoot string, data map[string]interface{}) error {
	for _, component := range reg.Components() {
		req := NewRequest(cwd, templateRoot, destRoot, component, data)
		if err := d.Deploy(req); err != nil {
			return err
		}
	}
	return nil
}
