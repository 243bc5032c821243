// Package wslpath translates WSL2 mount paths to Windows paths.
//
// WSL2 exposes Windows drives under /mnt/<drive>, where <drive> is a single
// lowercase letter. Only paths under that namespace have a drive-letter
// equivalent on the Windows side; everything else lives in the distro's own
// filesystem and is reachable from Windows only through the \\wsl$ share.
package wslpath

import (
	"regexp"
	"strings"

	"github.com/tenagusami-ms/exp/internal/types"
)

const (
	// MountRoot is where WSL2 mounts Windows drives.
	MountRoot = "/mnt"

	// UNCPrefix is the Windows share exposing WSL distro filesystems.
	UNCPrefix = `\\wsl$`
)

// strictMountPattern is the classifier gate: a drive letter must be a single
// lowercase letter and must be followed by a separator, so the bare mount
// root /mnt/c is rejected.
var strictMountPattern = regexp.MustCompile(`^/mnt/[a-z]/`)

// mountPattern extracts the drive letter and the remainder. Unlike the
// classifier it accepts either case; the drive is folded to uppercase on
// output.
var mountPattern = regexp.MustCompile(`^/mnt/([a-zA-Z])(/.*)?$`)

// IsMountPath reports whether path lies under the /mnt/<drive> namespace.
// This is the strict form: /mnt/c/home matches, /mnt/c and /mnt/C/home do not.
func IsMountPath(path string) bool {
	return strictMountPattern.MatchString(path)
}

// ToWindows translates a /mnt/<drive> path to the equivalent Windows path.
//
// The drive root translates to `<DRIVE>:\` exactly; any remaining components
// are appended with backslash separators. Callers are expected to gate inputs
// with IsMountPath; a path outside the mount namespace returns a usage error.
func ToWindows(path string) (string, error) {
	m := mountPattern.FindStringSubmatch(path)
	if m == nil {
		return "", types.NewPathError("translate", path, types.ErrUsage,
			"expected a path of the form /mnt/<drive>/..., e.g. /mnt/c/Users")
	}

	root := strings.ToUpper(m[1]) + `:\`
	parts := splitComponents(m[2])
	if len(parts) == 0 {
		return root, nil
	}
	return root + strings.Join(parts, `\`), nil
}

// ToUNC rewrites an absolute WSL path to the \\wsl$\<distro> share.
// The input is not required to be under the mount namespace.
func ToUNC(distro, path string) string {
	var b strings.Builder
	b.WriteString(UNCPrefix)
	b.WriteByte('\\')
	b.WriteString(distro)
	for _, part := range splitComponents(path) {
		b.WriteByte('\\')
		b.WriteString(part)
	}
	return b.String()
}

// splitComponents splits a slash-separated path, discarding empty components.
func splitComponents(path string) []string {
	var parts []string
	for _, part := range strings.Split(path, "/") {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}
