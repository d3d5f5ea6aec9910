package detect

import "testing"

func TestParseVersionOutput(t *testing.T) {
	tests := []struct {
		name string
		out  string
		want string
	}{
		{
			name: "firefox banner",
			out:  "Mozilla Firefox 120.0\n",
			want: "120.0",
		},
		{
			name: "chrome banner",
			out:  "Google Chrome 120.0.6099.109\n",
			want: "120.0.6099.109",
		},
		{
			name: "first dotted token wins over later ones",
			out:  "Chromium 120.0.6099.109 built on Debian 12.4\n",
			want: "120.0.6099.109",
		},
		{
			name: "version on a later line",
			out:  "some preamble\nBrowser version 99.1 (build abc)\n",
			want: "99.1",
		},
		{
			name: "trailing punctuation trimmed",
			out:  "Browser 1.2.3,\n",
			want: "1.2.3",
		},
		{
			name: "undotted numbers skipped",
			out:  "Browser build 12345\n",
			want: "",
		},
		{
			name: "no version at all",
			out:  "usage: browser [options]\n",
			want: "",
		},
		{
			name: "empty output",
			out:  "",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := parseVersionOutput(tt.out); got != tt.want {
				t.Errorf("parseVersionOutput(%q) = %q, want %q", tt.out, got, tt.want)
			}
		})
	}
}

func TestQueryVersionMissingBinary(t *testing.T) {
	if got := queryVersion("/nonexistent/browser-binary"); got != "" {
		t.Errorf("queryVersion = %q, want empty for a missing binary", got)
	}
}
