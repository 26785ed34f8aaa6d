package shortcut

import "testing"

func TestParseNormalises(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"commandorcontrol+shift+l", "CommandOrControl+Shift+L"},
		{"CmdOrCtrl+ENTER", "CommandOrControl+Enter"},
		{"shift+alt+control+a", "Ctrl+Alt+Shift+A"},
		{"option+return", "Alt+Enter"},
		{"CommandOrControl+Backslash", "CommandOrControl+Backslash"},
		{"ctrl+ctrl+q", "Ctrl+Q"},
		{"f5", "F5"},
		{"win+space", "Super+Space"},
	}
	for _, tc := range cases {
		acc, err := Parse(tc.in)
		if err != nil {
			t.Errorf("Parse(%q): %v", tc.in, err)
			continue
		}
		if got := acc.String(); got != tc.want {
			t.Errorf("Parse(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	cases := []string{
		"",
		"   ",
		"Ctrl+Shift",    // no non-modifier key
		"Ctrl+A+B",      // two keys
		"Ctrl+Bogus",    // unknown key
		"Ctrl++A",       // empty token
		"Ctrl+F99",      // function key out of range
	}
	for _, in := range cases {
		if _, err := Parse(in); err == nil {
			t.Errorf("Parse(%q) succeeded, want error", in)
		}
	}
}

func TestComboIgnoresSpelling(t *testing.T) {
	a, err := Parse("Control+Shift+P")
	if err != nil {
		t.Fatal(err)
	}
	b, err := Parse("shift+ctrl+p")
	if err != nil {
		t.Fatal(err)
	}

	ca, err := a.Combo()
	if err != nil {
		t.Fatal(err)
	}
	cb, err := b.Combo()
	if err != nil {
		t.Fatal(err)
	}
	if ca != cb {
		t.Errorf("equivalent spellings resolved to different combos: %v vs %v", ca, cb)
	}
}

func TestComboDistinguishesKeys(t *testing.T) {
	a, _ := Parse("Ctrl+Shift+L")
	b, _ := Parse("Ctrl+Shift+K")

	ca, err := a.Combo()
	if err != nil {
		t.Fatal(err)
	}
	cb, err := b.Combo()
	if err != nil {
		t.Fatal(err)
	}
	if ca == cb {
		t.Error("different keys resolved to the same combo")
	}
}

func TestDefaultBindingsParse(t *testing.T) {
	for _, s := range []string{
		"CommandOrControl+Backslash",
		"CommandOrControl+Enter",
		"CommandOrControl+S",
	} {
		acc, err := Parse(s)
		if err != nil {
			t.Fatalf("default binding %q does not parse: %v", s, err)
		}
		if _, err := acc.Combo(); err != nil {
			t.Errorf("default binding %q does not resolve: %v", s, err)
		}
	}
}
