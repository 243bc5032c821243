// Package platform captures host environment state at startup.
package platform

import (
	"os"
	"runtime"
	"strings"

	"github.com/moby/sys/mountinfo"
)

const osReleaseFile = "/proc/sys/kernel/osrelease"

// Info holds process-wide state captured once at startup so that path
// translation stays pure and independently testable.
type Info struct {
	OS         string
	WorkingDir string
	IsWSL      bool
	Distro     string
}

// Detect captures the current host environment.
func Detect() Info {
	info := Info{
		OS:     runtime.GOOS,
		Distro: os.Getenv("WSL_DISTRO_NAME"),
	}

	if wd, err := os.Getwd(); err == nil {
		info.WorkingDir = wd
	}

	info.IsWSL = info.OS == "linux" && (info.Distro != "" || kernelIsMicrosoft(osReleaseFile))

	return info
}

// kernelIsMicrosoft reports whether the kernel release names Microsoft,
// which identifies both WSL1 and WSL2 kernels.
func kernelIsMicrosoft(releaseFile string) bool {
	data, err := os.ReadFile(releaseFile)
	if err != nil {
		return false
	}
	return strings.Contains(strings.ToLower(string(data)), "microsoft")
}

// Drive describes a Windows drive mounted into WSL.
type Drive struct {
	Letter     string
	Mountpoint string
	FSType     string
	Source     string
}

// windowsFSFilter keeps only drvfs (WSL1) and 9p (WSL2) mounts, which is how
// Windows drives appear inside a distro.
func windowsFSFilter(i *mountinfo.Info) (skip, stop bool) {
	return i.FSType != "drvfs" && i.FSType != "9p", false
}

// WindowsDrives enumerates Windows drives currently mounted under /mnt.
func WindowsDrives(mountRoot string) ([]Drive, error) {
	mounts, err := mountinfo.GetMounts(windowsFSFilter)
	if err != nil {
		return nil, err
	}

	var drives []Drive
	for _, mnt := range mounts {
		letter, ok := driveLetter(mountRoot, mnt.Mountpoint)
		if !ok {
			continue
		}
		drives = append(drives, Drive{
			Letter:     letter,
			Mountpoint: mnt.Mountpoint,
			FSType:     mnt.FSType,
			Source:     mnt.Source,
		})
	}
	return drives, nil
}

// driveLetter extracts the drive letter from a mountpoint directly under the
// mount root, e.g. /mnt/c -> "c".
func driveLetter(mountRoot, mountpoint string) (string, bool) {
	rest, found := strings.CutPrefix(mountpoint, mountRoot+"/")
	if !found || len(rest) != 1 {
		return "", false
	}
	c := rest[0]
	if c < 'a' || c > 'z' {
		return "", false
	}
	return rest, true
}
