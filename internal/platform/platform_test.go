package platform

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDriveLetter(t *testing.T) {
	tests := []struct {
		name       string
		mountpoint string
		want       string
		wantOK     bool
	}{
		{"c drive", "/mnt/c", "c", true},
		{"z drive", "/mnt/z", "z", true},
		{"nested path", "/mnt/c/Users", "", false},
		{"uppercase", "/mnt/C", "", false},
		{"multi letter", "/mnt/wsl", "", false},
		{"outside mount root", "/home/user", "", false},
		{"mount root itself", "/mnt", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := driveLetter("/mnt", tt.mountpoint)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("driveLetter(/mnt, %q) = (%q, %v), want (%q, %v)",
					tt.mountpoint, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestKernelIsMicrosoft(t *testing.T) {
	tmpDir := t.TempDir()

	write := func(name, contents string) string {
		t.Helper()
		path := filepath.Join(tmpDir, name)
		if err := os.WriteFile(path, []byte(contents), 0644); err != nil {
			t.Fatal(err)
		}
		return path
	}

	tests := []struct {
		name    string
		release string
		want    bool
	}{
		{"wsl2 kernel", "5.15.167.4-microsoft-standard-WSL2\n", true},
		{"wsl1 kernel", "4.4.0-19041-Microsoft\n", true},
		{"plain linux", "6.8.0-45-generic\n", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := write(tt.name, tt.release)
			if got := kernelIsMicrosoft(path); got != tt.want {
				t.Errorf("kernelIsMicrosoft = %v, want %v", got, tt.want)
			}
		})
	}

	t.Run("missing file", func(t *testing.T) {
		if kernelIsMicrosoft(filepath.Join(tmpDir, "missing")) {
			t.Error("kernelIsMicrosoft should be false for a missing file")
		}
	})
}

func TestDetectCapturesWorkingDir(t *testing.T) {
	info := Detect()
	wd, err := os.Getwd()
	if err != nil {
		t.Skip("cannot determine working directory")
	}
	if info.WorkingDir != wd {
		t.Errorf("WorkingDir = %q, want %q", info.WorkingDir, wd)
	}
	if info.OS == "" {
		t.Error("OS should not be empty")
	}
}
