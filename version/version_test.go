package version

import "testing"

func TestCheckAppBuild(t *testing.T) {
	tests := []struct {
		build    string
		expected string
	}{
		{"", ""},
		{"dev-1", "dev-1"},
		{"has space", ""},
		{"dot.ted", ""},
	}

	for _, test := range tests {
		result := checkAppBuild(test.build)
		if result != test.expected {
			t.Fatalf("TestCheckAppBuild: %q: Expected %q, found: %q", test.build, test.expected, result)
		}
	}
}

func TestVersion(t *testing.T) {
	expected := "0.1.0"
	if Version() != expected {
		t.Fatalf("TestVersion: Expected %s, found: %s", expected, Version())
	}
}
