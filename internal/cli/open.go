package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/tenagusami-ms/exp/internal/types"
	"github.com/tenagusami-ms/exp/internal/validation"
	"github.com/tenagusami-ms/exp/internal/wslpath"
)

func runOpen(arg string) error {
	ctx := getContext()
	cfg := ctx.Config
	log := ctx.Logger

	if cfg.Host.OS == "windows" {
		return types.NewPathError("open", "", types.ErrUnsupportedOS,
			"exp is usable only inside WSL2, not on native Windows")
	}
	if !cfg.Host.IsWSL {
		return types.NewPathError("open", "", types.ErrUnsupportedOS,
			"exp requires a WSL2 environment with Windows drives mounted under "+cfg.MountRoot)
	}

	path := arg
	if path == "" {
		path = cfg.Host.WorkingDir
	} else if err := validation.ValidateInputPath(path); err != nil {
		return types.NewPathError("open", path, fmt.Errorf("%w: %v", types.ErrUsage, err), "")
	}

	resolved := resolveAbsolute(path, cfg.Host.WorkingDir)
	if err := validation.ValidateResolvedPath(resolved); err != nil {
		return types.NewPathError("open", resolved, fmt.Errorf("%w: %v", types.ErrUsage, err), "")
	}

	log.Debug("Resolved %q to %q", path, resolved)

	if _, err := os.Stat(resolved); err != nil {
		return types.NewPathError("open", resolved, types.ErrNotInspectable,
			"the specified path does not exist")
	}

	var target string
	switch {
	case wslpath.IsMountPath(resolved):
		windowsPath, err := wslpath.ToWindows(resolved)
		if err != nil {
			return err
		}
		target = windowsPath
	case cfg.UNCFallback && cfg.Host.Distro != "":
		target = wslpath.ToUNC(cfg.Host.Distro, resolved)
		log.Debug("Path is outside %s, using UNC fallback", cfg.MountRoot)
	default:
		return types.NewPathError("open", resolved, types.ErrNotInspectable,
			fmt.Sprintf("only paths under %s/<drive> are visible to Windows Explorer"+
				` (use --unc-fallback to open distro paths through \\wsl$)`, cfg.MountRoot))
	}

	if err := ctx.Launcher.Open(target); err != nil {
		return types.NewPathError("open", resolved, err, "")
	}

	if err := ctx.History.Record(resolved, target); err != nil {
		log.Warn("Failed to record history: %v", err)
	}

	log.Success("Opened %s", target)
	return nil
}

// resolveAbsolute resolves path against the working directory captured at
// startup and follows symlinks when the target allows it.
func resolveAbsolute(path, workingDir string) string {
	if !filepath.IsAbs(path) {
		path = filepath.Join(workingDir, path)
	}
	path = filepath.Clean(path)

	if resolved, err := filepath.EvalSymlinks(path); err == nil {
		return resolved
	}
	return path
}
