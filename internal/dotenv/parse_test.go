package dotenv

import (
	"DotEnv/internal/envstore"
	"DotEnv/internal/testutils"
	"errors"
	"testing"
)

func TestParseLine(t *testing.T) {
	tests := []struct {
		line  string
		name  string
		value string
	}{
		{"NAME=VALUE", "NAME", "VALUE"},
		{"NAME=", "NAME", ""},
		{"URL=postgres://u:p@host/db?a=b", "URL", "postgres://u:p@host/db?a=b"},
		{" SPACED = value ", " SPACED ", " value "},
		{`QUOTED="value"`, "QUOTED", `"value"`},
		{"PRICE=$5", "PRICE", "$5"},
		{"NUL=abc\x00def", "NUL", "abc"},
	}

	for _, tt := range tests {
		a, err := ParseLine(tt.line)
		if err != nil {
			t.Errorf("ParseLine(%q) error: %v", tt.line, err)
			continue
		}
		if a.Name != tt.name || a.Value != tt.value {
			t.Errorf("ParseLine(%q) = {%q, %q}; want {%q, %q}", tt.line, a.Name, a.Value, tt.name, tt.value)
		}
	}
}

func TestParseLineMalformed(t *testing.T) {
	tests := []struct {
		line string
		want error
	}{
		{"NO_DELIMITER", ErrMissingDelimiter},
		{"export", ErrMissingDelimiter},
		{"NAME\x00=VALUE", ErrMissingDelimiter},
		{"=VALUE", ErrEmptyName},
	}

	for _, tt := range tests {
		_, err := ParseLine(tt.line)
		if !errors.Is(err, tt.want) {
			t.Errorf("ParseLine(%q) error = %v; want %v", tt.line, err, tt.want)
		}
	}
}

func TestSubstitute(t *testing.T) {
	store := envstore.NewMap(map[string]string{
		"FOO":   "bar",
		"HOME":  "/home/user",
		"EMPTY": "",
		"MONEY": "$FOO",
		"1":     "one",
	})

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"Plain", "no references", "no references"},
		{"Bounded", "pre-$FOO-post", "pre-bar-post"},
		{"Greedy", "pre$FOOpost", "pre"},
		{"GreedyUnresolved", "a$BAZb", "a"},
		{"Whole", "$FOO", "bar"},
		{"Path", "$HOME/.config", "/home/user/.config"},
		{"Repeated", "$FOO:$FOO", "bar:bar"},
		{"Adjacent", "$FOO$HOME", "bar/home/user"},
		{"Underscore", "$FOO_BAR", "bar_BAR"},
		{"Digit", "$1st", ""},
		{"DigitOnly", "$1-", "one-"},
		{"Empty", "x$EMPTY", "x"},
		{"LoneDollar", "cost: $", "cost: $"},
		{"DollarPunct", "$-$.$ $", "$-$.$ $"},
		{"DoubleDollar", "$$FOO", "$bar"},
		{"NotRescanned", "$MONEY", "$FOO"},
		{"LongerTokenNotPrefixReplaced", "$FOO $FOObar", "bar "},
	}

	var cases []testutils.TestCase
	for _, tt := range tests {
		cases = append(cases, testutils.Check(tt.name, tt.input, tt.expected, Substitute(tt.input, store)))
	}
	testutils.PrintTestTable(t, cases)
}

func TestParserReadsOnly(t *testing.T) {
	store := envstore.NewMap(map[string]string{"FOO": "bar"})
	p := NewParser(store)

	a, err := p.Parse("X=pre-$FOO-post")
	if err != nil {
		t.Fatal(err)
	}
	if a.Name != "X" || a.Value != "pre-bar-post" {
		t.Errorf("Parse = %+v", a)
	}
	if _, ok := store.Lookup("X"); ok {
		t.Errorf("Parse wrote X into the store")
	}
	if got := len(store.Names()); got != 1 {
		t.Errorf("store has %d names after Parse; want 1", got)
	}
}

func TestParserWithoutSubstitution(t *testing.T) {
	store := envstore.NewMap(map[string]string{"FOO": "bar"})
	l := New(store, WithoutSubstitution())

	a, err := l.parser.Parse("X=$FOO")
	if err != nil {
		t.Fatal(err)
	}
	if a.Value != "$FOO" {
		t.Errorf("Value = %q; want %q", a.Value, "$FOO")
	}
}
