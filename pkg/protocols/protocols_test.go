package protocols

import "testing"

func TestNameResolvesCommonProtocols(t *testing.T) {
	// This test pins the canonical names for the numbers most flow logs carry.
	cases := map[string]string{
		"1":   "icmp",
		"6":   "tcp",
		"17":  "udp",
		"47":  "gre",
		"50":  "esp",
		"132": "sctp",
	}
	for number, want := range cases {
		if got := Name(number); got != want {
			t.Errorf("Name(%q) = %q, want %q", number, got, want)
		}
	}
}

func TestNameIsTotalOverBadInput(t *testing.T) {
	// This test confirms unknown and non-numeric input resolves to the sentinel.
	for _, number := range []string{"255", "-1", "", "tcp", "6.0", "999999"} {
		if got := Name(number); got != Unknown {
			t.Errorf("Name(%q) = %q, want %q", number, got, Unknown)
		}
	}
}

func TestNameMatchesNumerically(t *testing.T) {
	// This test ensures padded and whitespace-wrapped numbers still resolve.
	if got := Name("06"); got != "tcp" {
		t.Errorf(`Name("06") = %q, want "tcp"`, got)
	}
	if got := Name(" 17 "); got != "udp" {
		t.Errorf(`Name(" 17 ") = %q, want "udp"`, got)
	}
}
