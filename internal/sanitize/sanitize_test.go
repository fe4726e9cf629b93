package sanitize

import "testing"

func TestText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"plain", "order boxes", "order boxes"},
		{"ansi color stripped", "\x1b[31mred\x1b[0m text", "red text"},
		{"cursor movement stripped", "a\x1b[2Jb", "ab"},
		{"newlines collapse", "line one\nline two", "line one line two"},
		{"tabs collapse", "a\tb", "a b"},
		{"crlf collapses", "a\r\nb", "a  b"},
		{"bell dropped", "ding\x07dong", "dingdong"},
		{"unicode kept", "café ✓", "café ✓"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Text(tt.in); got != tt.want {
				t.Errorf("Text(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"script tag", `<script>alert("x")</script>`,
			"&lt;script&gt;alert(&quot;x&quot;)&lt;/script&gt;"},
		{"ampersand", "cats & dogs", "cats &amp; dogs"},
		{"single quote", "it's", "it&#39;s"},
		{"attribute breakout", `" onmouseover="steal()`,
			"&quot; onmouseover=&quot;steal()"},
		{"plain passes through", "ordinary title 42", "ordinary title 42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := HTML(tt.in); got != tt.want {
				t.Errorf("HTML(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
