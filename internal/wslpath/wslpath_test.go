package wslpath

import (
	"errors"
	"strings"
	"testing"

	"github.com/tenagusami-ms/exp/internal/types"
)

func TestIsMountPath(t *testing.T) {
	tests := []struct {
		name string
		path string
		want bool
	}{
		{"drive with content", "/mnt/c/home", true},
		{"deep path", "/mnt/d/Users/Name/Documents", true},
		{"z drive", "/mnt/z/lib", true},
		{"drive root without separator", "/mnt/c", false},
		{"uppercase drive", "/mnt/C/home", false},
		{"multi-letter drive", "/mnt/cd/home", false},
		{"wsl filesystem path", "/home/user", false},
		{"empty", "", false},
		{"mount root only", "/mnt/", false},
		{"windows path", `C:\home`, false},
		{"prefix typo", "/mt/c/home", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsMountPath(tt.path); got != tt.want {
				t.Errorf("IsMountPath(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestToWindows(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{"simple path", "/mnt/c/home/ykanya", `C:\home\ykanya`},
		{"z drive", "/mnt/z/lib", `Z:\lib`},
		{"drive root", "/mnt/c", `C:\`},
		{"drive root with trailing slash", "/mnt/c/", `C:\`},
		{"uppercase drive input", "/mnt/D/VMs", `D:\VMs`},
		{"repeated separators", "/mnt/c//Users///Name", `C:\Users\Name`},
		{"with spaces", "/mnt/c/My Files/docs", `C:\My Files\docs`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ToWindows(tt.path)
			if err != nil {
				t.Fatalf("ToWindows(%q) unexpected error: %v", tt.path, err)
			}
			if got != tt.want {
				t.Errorf("ToWindows(%q) = %q, want %q", tt.path, got, tt.want)
			}
		})
	}
}

func TestToWindowsRejectsNonMountPaths(t *testing.T) {
	tests := []struct {
		name string
		path string
	}{
		{"prefix typo", "/mt/c"},
		{"mount root only", "/mnt/"},
		{"mount root no slash", "/mnt"},
		{"wsl filesystem path", "/home/user"},
		{"multi-letter drive", "/mnt/cd/home"},
		{"empty", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ToWindows(tt.path)
			if err == nil {
				t.Fatalf("ToWindows(%q) expected error, got nil", tt.path)
			}
			if !types.IsUsage(err) {
				t.Errorf("ToWindows(%q) error = %v, want ErrUsage", tt.path, err)
			}
			var pathErr *types.PathError
			if !errors.As(err, &pathErr) {
				t.Errorf("ToWindows(%q) error is not a *types.PathError", tt.path)
			} else if pathErr.Path != tt.path {
				t.Errorf("PathError.Path = %q, want %q", pathErr.Path, tt.path)
			}
		})
	}
}

// Translating and re-splitting on the Windows separator must recover the
// original component sequence.
func TestToWindowsRoundTrip(t *testing.T) {
	tests := []struct {
		drive      string
		components []string
	}{
		{"c", []string{"home", "ykanya"}},
		{"d", []string{"Users", "Name", "Documents", "VMs"}},
		{"z", []string{"lib"}},
		{"e", []string{"a", "b", "c", "d", "e", "f"}},
	}

	for _, tt := range tests {
		src := "/mnt/" + tt.drive + "/" + strings.Join(tt.components, "/")
		t.Run(src, func(t *testing.T) {
			got, err := ToWindows(src)
			if err != nil {
				t.Fatalf("ToWindows(%q) unexpected error: %v", src, err)
			}

			segments := strings.Split(got, `\`)
			if segments[0] != strings.ToUpper(tt.drive)+":" {
				t.Errorf("drive segment = %q, want %q", segments[0], strings.ToUpper(tt.drive)+":")
			}
			rest := segments[1:]
			if len(rest) != len(tt.components) {
				t.Fatalf("got %d components, want %d (%v)", len(rest), len(tt.components), rest)
			}
			for i := range rest {
				if rest[i] != tt.components[i] {
					t.Errorf("component %d = %q, want %q", i, rest[i], tt.components[i])
				}
			}
		})
	}
}

func TestToUNC(t *testing.T) {
	tests := []struct {
		name   string
		distro string
		path   string
		want   string
	}{
		{"home path", "Ubuntu", "/home/user", `\\wsl$\Ubuntu\home\user`},
		{"root", "Ubuntu", "/", `\\wsl$\Ubuntu`},
		{"deep path", "Debian", "/var/lib/docker", `\\wsl$\Debian\var\lib\docker`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToUNC(tt.distro, tt.path); got != tt.want {
				t.Errorf("ToUNC(%q, %q) = %q, want %q", tt.distro, tt.path, got, tt.want)
			}
		})
	}
}
