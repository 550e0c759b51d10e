package version

import (
	"regexp"
	"testing"
)

// semverRegex validates semantic versioning format
var semverRegex = regexp.MustCompile(`^\d+\.\d+\.\d+$`)

func TestVersionConstants(t *testing.T) {
	tests := []struct {
		name    string
		version string
	}{
		{"Module", Module},
		{"Error", Error},
		{"Log", Log},
		{"I18n", I18n},
		{"Config", Config},
		{"Timex", Timex},
		{"Validation", Validation},
		{"Safe", Safe},
		{"JSON", JSON},
		{"HTTP", HTTP},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !semverRegex.MatchString(tt.version) {
				t.Errorf("%s version %q does not match semver format (x.y.z)", tt.name, tt.version)
			}
		})
	}
}

func TestPackageVersion(t *testing.T) {
	tests := []struct {
		pkg      string
		expected string
	}{
		{"timex", Timex},
		{"i18n", I18n},
		{"httpx", HTTP},
		{"validationx", Validation},
		{"unknown", Module},
		{"", Module},
	}

	for _, tt := range tests {
		t.Run(tt.pkg, func(t *testing.T) {
			if got := PackageVersion(tt.pkg); got != tt.expected {
				t.Errorf("PackageVersion(%q) = %q, want %q", tt.pkg, got, tt.expected)
			}
		})
	}
}
