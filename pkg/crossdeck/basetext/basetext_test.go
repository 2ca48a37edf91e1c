package basetext

import "testing"

func ip(n int64) *int64 { return &n }

func TestRender(t *testing.T) {
	tests := []struct {
		desc string
		n    *int64
		want string
	}{
		{"", ip(812), "Base: Total respondents. 812 complete surveys."},
		{"", nil, "Base: Total respondents."},
		{"Adults 18+ in the US", ip(1204), "Base: Adults 18+ in the US. 1,204 complete surveys."},
		{"Screened panelists", nil, "Base: Screened panelists."},
	}
	for _, tt := range tests {
		if got := Render(tt.desc, tt.n); got != tt.want {
			t.Errorf("Render(%q, %v) = %q, want %q", tt.desc, tt.n, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		wantDesc string
		wantN    *int64
	}{
		{"Base: Total respondents. 812 complete surveys.", "Total respondents", ip(812)},
		{"Base: Adults 18+ in the US. 1,204 complete surveys.", "Adults 18+ in the US", ip(1204)},
		{"Base: Total respondents.", "Total respondents", nil},
		{"Base: All adults 950 complete surveys", "All adults", ip(950)},
		{"Base: Panelists", "Panelists", nil},
		{"A free-text footnote", "", nil},
		{"", "", nil},
	}
	for _, tt := range tests {
		desc, n := Parse(tt.input)
		if desc != tt.wantDesc {
			t.Errorf("Parse(%q) desc = %q, want %q", tt.input, desc, tt.wantDesc)
		}
		switch {
		case tt.wantN == nil && n != nil:
			t.Errorf("Parse(%q) n = %d, want nil", tt.input, *n)
		case tt.wantN != nil && n == nil:
			t.Errorf("Parse(%q) n = nil, want %d", tt.input, *tt.wantN)
		case tt.wantN != nil && n != nil && *n != *tt.wantN:
			t.Errorf("Parse(%q) n = %d, want %d", tt.input, *n, *tt.wantN)
		}
	}
}

func TestRenderParseRoundTrip(t *testing.T) {
	for _, desc := range []string{"", "Total respondents", "Adults in the Northeast"} {
		for _, n := range []*int64{nil, ip(1), ip(400), ip(12345)} {
			rendered := Render(desc, n)
			gotDesc, gotN := Parse(rendered)
			wantDesc := desc
			if wantDesc == "" {
				wantDesc = DefaultDescription
			}
			if gotDesc != wantDesc {
				t.Errorf("round trip desc: %q -> %q", wantDesc, gotDesc)
			}
			if (n == nil) != (gotN == nil) {
				t.Errorf("round trip n presence mismatch for %q", rendered)
			} else if n != nil && *n != *gotN {
				t.Errorf("round trip n: %d -> %d", *n, *gotN)
			}
		}
	}
}
