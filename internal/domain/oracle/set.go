package oracle

import (
	"context"
	"errors"
	"os"
	"path/filepath"

	"github.com/coachos/pitchpilot/pkg/logger"
)

// Model file names under the models directory.
const (
	passModelFile = "pass_model.json"
	shotModelFile = "shot_model.json"
	winModelFile  = "win_model.json"
)

// Set bundles the three probability oracles. It is constructed once by the
// calling layer and injected wherever predictions are needed; a Set with
// unloaded oracles is fully usable.
type Set struct {
	Pass *Oracle
	Shot *Oracle
	Win  *Oracle
}

// Option applies a configuration option when loading a Set.
type Option func(*loadConfig)

type loadConfig struct {
	log logger.Logger
}

// WithLogger sets the logger used for load warnings and prediction faults.
func WithLogger(log logger.Logger) Option {
	return func(c *loadConfig) {
		if log != nil {
			c.log = log
		}
	}
}

// Load reads the oracle models from dir. A missing or unreadable model file
// leaves that oracle unloaded and logs a warning; Load itself never fails.
func Load(ctx context.Context, dir string, opts ...Option) *Set {
	cfg := &loadConfig{log: logger.Nop()}
	for _, opt := range opts {
		opt(cfg)
	}
	return &Set{
		Pass: loadOne(ctx, cfg.log, "pass", filepath.Join(dir, passModelFile)),
		Shot: loadOne(ctx, cfg.log, "shot", filepath.Join(dir, shotModelFile)),
		Win:  loadOne(ctx, cfg.log, "win", filepath.Join(dir, winModelFile)),
	}
}

// Empty returns a Set with all three oracles unloaded. Scoring over an
// empty Set exercises every heuristic branch, which tests rely on.
func Empty() *Set {
	return &Set{
		Pass: &Oracle{name: "pass", log: logger.Nop()},
		Shot: &Oracle{name: "shot", log: logger.Nop()},
		Win:  &Oracle{name: "win", log: logger.Nop()},
	}
}

// Status reports which oracles are loaded, keyed by oracle name.
func (s *Set) Status() map[string]bool {
	return map[string]bool{
		"pass": s.Pass.Loaded(),
		"shot": s.Shot.Loaded(),
		"win":  s.Win.Loaded(),
	}
}

func loadOne(ctx context.Context, log logger.Logger, name, path string) *Oracle {
	model, err := loadModel(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Warn(ctx, "oracle model not found; heuristic scoring in effect",
				logger.String("oracle", name), logger.String("path", path))
		} else {
			log.Warn(ctx, "oracle model unreadable; heuristic scoring in effect",
				logger.String("oracle", name), logger.Error(err))
		}
		return &Oracle{name: name, log: log}
	}
	log.Info(ctx, "oracle model loaded",
		logger.String("oracle", name), logger.Int("weights", len(model.Weights)))
	return &Oracle{name: name, model: model, log: log}
}
