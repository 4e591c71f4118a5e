// README: Suggestion parsing and degradation tests.
package suggestions

import (
	"context"
	"errors"
	"reflect"
	"testing"

	"github.com/rs/zerolog"
)

type fakeGenerator struct {
	reply string
	err   error
}

func (g *fakeGenerator) Generate(_ context.Context, _, _ string) (string, error) {
	return g.reply, g.err
}

func TestParseSuggestions(t *testing.T) {
	cases := []struct {
		name string
		raw  string
		want []string
	}{
		{
			"plain array",
			`["Moderate budget", "Luxury experience"]`,
			[]string{"Moderate budget", "Luxury experience"},
		},
		{
			"fenced array",
			"```json\n[\"🎨 Art galleries\", \"🍷 Wine tasting\"]\n```",
			[]string{"🎨 Art galleries", "🍷 Wine tasting"},
		},
		{
			"prose wrapped",
			`Here are some ideas: ["June 15-20", "Flexible dates"] hope that helps!`,
			[]string{"June 15-20", "Flexible dates"},
		},
		{
			"empties filtered",
			`["", "Beach resort", "   ", "City break"]`,
			[]string{"Beach resort", "City break"},
		},
		{
			"truncated to six",
			`["a", "b", "c", "d", "e", "f", "g", "h"]`,
			[]string{"a", "b", "c", "d", "e", "f"},
		},
		{"not json", `sure, let me think about that`, nil},
		{"malformed array", `["unterminated`, nil},
		{"wrong element type", `[1, 2, 3]`, nil},
		{"empty array", `[]`, nil},
		{"all blank", `[" ", ""]`, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := parseSuggestions(tc.raw)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("parseSuggestions(%q) = %v, want %v", tc.raw, got, tc.want)
			}
		})
	}
}

func TestGenerateDegradesToEmpty(t *testing.T) {
	svc := NewService(&fakeGenerator{reply: "no list here, sorry"}, zerolog.Nop())

	chips, err := svc.Generate(context.Background(), "What's your budget?", 1)
	if err != nil {
		t.Fatal(err)
	}
	if chips != nil {
		t.Fatalf("chips = %v, want nil for unparseable response", chips)
	}
}

func TestGeneratePropagatesGeneratorError(t *testing.T) {
	wantErr := errors.New("generator down")
	svc := NewService(&fakeGenerator{err: wantErr}, zerolog.Nop())

	if _, err := svc.Generate(context.Background(), "hello", 2); !errors.Is(err, wantErr) {
		t.Fatalf("err = %v, want %v", err, wantErr)
	}
}

func TestGenerateReturnsChips(t *testing.T) {
	svc := NewService(&fakeGenerator{reply: `["Option one", "Option two"]`}, zerolog.Nop())

	chips, err := svc.Generate(context.Background(), "Pick one", 2)
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"Option one", "Option two"}
	if !reflect.DeepEqual(chips, want) {
		t.Fatalf("chips = %v, want %v", chips, want)
	}
}
