// Package input loads the data mapping used as the template render
// context. The mapping is loaded once per run and shared unchanged
// across every component being deployed.
package input

import (
	"encoding/json"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/deploygen/deploygen/pkg/errors"
	"github.com/deploygen/deploygen/pkg/types"
)

// Load reads the data-mapping file at path. JSON is the canonical format;
// files named *.yaml or *.yml are parsed as YAML.
func Load(fs types.FS, path string) (map[string]interface{}, error) {
	raw, err := fs.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInputLoad, "failed to read input file %s", path)
	}

	data := make(map[string]interface{})
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(raw, &data); err != nil {
			return nil, errors.Wrapf(err, errors.ErrInputParse, "failed to parse YAML input %s", path)
		}
	default:
		if err := json.Unmarshal(raw, &data); err != nil {
			return nil, errors.Wrapf(err, errors.ErrInputParse, "failed to parse JSON input %s", path)
		}
	}

	return data, nil
}
