package color

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParse(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		input string
		want  Color
	}{
		{name: "rgba with commas", input: "rgba(255, 0, 0, 1)", want: Color{255, 0, 0, 1}},
		{name: "rgba without spaces", input: "rgba(255,0,0,1)", want: Color{255, 0, 0, 1}},
		{name: "rgba space separated", input: "rgba(10 20 30 0.5)", want: Color{10, 20, 30, 0.5}},
		{name: "rgb slash alpha", input: "rgb(10 20 30 / 25%)", want: Color{10, 20, 30, 0.25}},
		{name: "rgb default alpha", input: "rgb(1, 2, 3)", want: Color{1, 2, 3, 1}},
		{name: "rgb percent channels", input: "rgb(100%, 0%, 50%)", want: Color{255, 0, 128, 1}},
		{name: "rgb clamps channels", input: "rgb(300, -4, 12)", want: Color{255, 0, 12, 1}},
		{name: "short hex", input: "#f00", want: Color{255, 0, 0, 1}},
		{name: "short hex alpha", input: "#f000", want: Color{255, 0, 0, 0}},
		{name: "long hex", input: "#002B36", want: Color{0, 43, 54, 1}},
		{name: "long hex alpha", input: "#ffffff00", want: Color{255, 255, 255, 0}},
		{name: "keyword", input: "RebeccaPurple", want: Color{102, 51, 153, 1}},
		{name: "keyword with spaces", input: "  white ", want: White},
		{name: "transparent", input: "transparent", want: Color{}},
		{name: "hsl red", input: "hsl(0, 100%, 50%)", want: Color{255, 0, 0, 1}},
		{name: "hsla blue", input: "hsla(240deg 100% 50% / 0.5)", want: Color{0, 0, 255, 0.5}},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := Parse(tc.input)
			require.NoError(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestParseRejectsMalformed(t *testing.T) {
	t.Parallel()

	inputs := []string{
		"", "notacolor", "#12", "#ggg", "rgb(1, 2)", "rgba(1, 2, 3, x)", "cmyk(1, 2, 3)", "hsl(0, 50, 50%)",
		"rgba(1, 2, 3, nan)", "rgb(nan, 0, 0)", "rgb(inf, 0, 0)", "rgba(1, 2, 3, -Inf)", "rgb(NaN%, 0%, 0%)",
		"hsl(nan, 50%, 50%)", "hsl(0, infinity%, 50%)", "rgb(1 2 3 / nan)",
	}
	for _, input := range inputs {
		input := input
		t.Run(input, func(t *testing.T) {
			t.Parallel()
			_, err := Parse(input)
			require.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestStringRoundTrips(t *testing.T) {
	t.Parallel()

	c := Color{12, 34, 56, 0.75}
	require.Equal(t, "rgba(12, 34, 56, 0.75)", c.String())

	parsed, err := Parse(c.String())
	require.NoError(t, err)
	require.Equal(t, c, parsed)

	require.Equal(t, "rgba(255, 0, 0, 1)", Red.String())
	require.Equal(t, "#ff0000", Red.Hex())
	require.Equal(t, "R: 255 | G:   0 | B:   0 | A: 1.000", Red.Describe())
}

func TestColorYAML(t *testing.T) {
	t.Parallel()

	var doc struct {
		Fg Color `yaml:"fg"`
	}
	require.NoError(t, yaml.Unmarshal([]byte("fg: \"#0000ff\"\n"), &doc))
	require.Equal(t, Blue, doc.Fg)

	out, err := yaml.Marshal(doc)
	require.NoError(t, err)
	require.Contains(t, string(out), "rgba(0, 0, 255, 1)")

	err = yaml.Unmarshal([]byte("fg: nope\n"), &doc)
	require.ErrorIs(t, err, ErrMalformed)
}

func TestColorJSON(t *testing.T) {
	t.Parallel()

	out, err := json.Marshal(Black)
	require.NoError(t, err)
	require.Equal(t, `"rgba(0, 0, 0, 1)"`, string(out))

	var c Color
	require.NoError(t, json.Unmarshal([]byte(`"lime"`), &c))
	require.Equal(t, Color{0, 255, 0, 1}, c)
}
