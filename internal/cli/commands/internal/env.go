package internal

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/samber/lo"
	"github.com/urfave/cli/v3"

	"github.com/mpyw/pake/internal/appdir"
	"github.com/mpyw/pake/internal/bundle"
	"github.com/mpyw/pake/internal/config"
	"github.com/mpyw/pake/internal/inject"
	"github.com/mpyw/pake/internal/logging"
	"github.com/mpyw/pake/internal/window"
)

// Flag names shared by the window commands.
const (
	FlagConfig      = "config"
	FlagProductName = "product-name"
	FlagResources   = "resources"
	FlagDataHome    = "data-home"
	FlagProxy       = "proxy"
	FlagDebug       = "debug"
)

// DefaultProductName names the application when nothing else does.
const DefaultProductName = "pake"

// Flags returns the flags shared by the window commands.
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    FlagConfig,
			Aliases: []string{"c"},
			Usage:   "Path to the window configuration (.json, .yaml or .yml)",
			Value:   "pake.json",
			Sources: cli.EnvVars("PAKE_CONFIG"),
		},
		&cli.StringFlag{
			Name:    FlagProductName,
			Usage:   "Application name used for the data directory and as the fallback title",
			Value:   DefaultProductName,
			Sources: cli.EnvVars("PAKE_PRODUCT_NAME"),
		},
		&cli.StringFlag{
			Name:    FlagResources,
			Usage:   "Directory holding bundled files (default: directory of the configuration)",
			Sources: cli.EnvVars("PAKE_RESOURCES"),
		},
		&cli.StringFlag{
			Name:    FlagDataHome,
			Usage:   "Base directory for application data (default: user config home)",
			Sources: cli.EnvVars("PAKE_DATA_HOME"),
		},
		&cli.StringFlag{
			Name:    FlagProxy,
			Usage:   "Proxy address overriding proxy_url of the configuration",
			Sources: cli.EnvVars("PAKE_PROXY_URL"),
		},
		&cli.BoolFlag{
			Name:    FlagDebug,
			Usage:   "Write debug diagnostics to stderr",
			Sources: cli.EnvVars("PAKE_DEBUG"),
		},
	}
}

// Env is everything a window command needs besides the window creator.
type Env struct {
	Config       *config.PakeConfig
	ConfigPath   string
	ProductName  string
	DisplayName  string
	DataDir      string
	ResourcesDir string
	Resources    fs.FS
	Scripts      inject.Bundle
	Logger       *log.Logger
}

// LoadEnv reads the configuration named by cmd's flags and resolves the
// application directories. Nothing is created on disk.
func LoadEnv(cmd *cli.Command) (*Env, error) {
	logger := logging.New(lo.CoalesceOrEmpty(cmd.Root().ErrWriter, cmd.Root().Writer), cmd.Bool(FlagDebug))

	path := cmd.String(FlagConfig)
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if proxy := cmd.String(FlagProxy); proxy != "" {
		logger.Debug("proxy overridden", "proxy", proxy)
		cfg.ProxyURL = proxy
	}

	resourcesDir := lo.CoalesceOrEmpty(cmd.String(FlagResources), filepath.Dir(path))
	resources := os.DirFS(resourcesDir)

	scripts, err := inject.Default().WithCustom(resources, cfg.Inject)
	if err != nil {
		return nil, err
	}

	product := cmd.String(FlagProductName)

	var dataDir string
	if home := cmd.String(FlagDataHome); home != "" {
		dataDir, err = appdir.LocateIn(home, product)
	} else {
		dataDir, err = appdir.Locate(product)
	}
	if err != nil {
		return nil, err
	}

	env := &Env{
		Config:       cfg,
		ConfigPath:   path,
		ProductName:  product,
		DisplayName:  bundle.DisplayName(product),
		DataDir:      dataDir,
		ResourcesDir: resourcesDir,
		Resources:    resources,
		Scripts:      scripts,
		Logger:       logger,
	}

	logger.Debug("environment loaded",
		"config", env.ConfigPath,
		"resources", env.ResourcesDir,
		"data_dir", env.DataDir,
		"display_name", env.DisplayName,
	)

	return env, nil
}

// Provisioner returns a provisioner for env that creates windows with creator.
func (e *Env) Provisioner(creator window.Creator) *window.Provisioner {
	return &window.Provisioner{
		Scripts: e.Scripts,
		Chrome:  window.PlatformChrome(e.DisplayName, e.DataDir),
		Creator: creator,
		Logger:  e.Logger,
	}
}
