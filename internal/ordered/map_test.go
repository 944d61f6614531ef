package ordered

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestMapKeepsInsertionOrder(t *testing.T) {
	t.Parallel()

	var m Map[int]
	m.Set("zeta", 1)
	m.Set("alpha", 2)
	m.Set("mid", 3)
	m.Set("zeta", 4)

	require.Equal(t, []string{"zeta", "alpha", "mid"}, m.Keys())
	v, ok := m.Get("zeta")
	require.True(t, ok)
	require.Equal(t, 4, v)
	require.Equal(t, 3, m.Len())

	var seen []string
	for k := range m.All() {
		seen = append(seen, k)
	}
	require.Equal(t, m.Keys(), seen)
}

func TestMapYAMLRoundTripPreservesOrder(t *testing.T) {
	t.Parallel()

	src := "b: 2\na: 1\nc: 3\n"

	var m Map[int]
	require.NoError(t, yaml.Unmarshal([]byte(src), &m))
	require.Equal(t, []string{"b", "a", "c"}, m.Keys())

	out, err := yaml.Marshal(m)
	require.NoError(t, err)
	require.Equal(t, src, string(out))
}

func TestMapYAMLRejectsDuplicates(t *testing.T) {
	t.Parallel()

	var m Map[int]
	err := yaml.Unmarshal([]byte("a: 1\na: 2\n"), &m)
	require.Error(t, err)
}

func TestMapYAMLRejectsNonMapping(t *testing.T) {
	t.Parallel()

	var m Map[int]
	err := yaml.Unmarshal([]byte("- 1\n- 2\n"), &m)
	require.Error(t, err)
	require.Contains(t, err.Error(), "expected a mapping")
}

func TestMapJSONPreservesOrder(t *testing.T) {
	t.Parallel()

	var m Map[string]
	m.Set("second", "b")
	m.Set("first", "a")

	out, err := json.Marshal(m)
	require.NoError(t, err)
	require.Equal(t, `{"second":"b","first":"a"}`, string(out))
}

func TestMapCloneIsIndependent(t *testing.T) {
	t.Parallel()

	var m Map[int]
	m.Set("a", 1)
	clone := m.Clone()
	clone.Set("b", 2)

	require.Equal(t, 1, m.Len())
	require.Equal(t, 2, clone.Len())
}

func TestMapYAMLAttributesEntryErrors(t *testing.T) {
	t.Parallel()

	var m Map[int]
	err := yaml.Unmarshal([]byte("ok: 1\nbroken: [1]\n"), &m)
	require.Error(t, err)

	var entryErr *EntryError
	require.ErrorAs(t, err, &entryErr)
	require.Equal(t, "broken", entryErr.Key)
	require.Equal(t, 2, entryErr.Line)
}

type strictEntry struct {
	Color string  `yaml:"color"`
	Width float64 `yaml:"width"`
	Inner struct {
		Depth int `yaml:"depth"`
	} `yaml:"inner"`
	Skipped string `yaml:"-"`
}

func TestMapYAMLRejectsUnknownEntryFields(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		input   string
		wantErr string
	}{
		{name: "known fields", input: "a:\n  color: red\n  width: 2\n  inner:\n    depth: 1\n"},
		{name: "misspelled field", input: "a:\n  color: red\n  widht: 2\n", wantErr: "line 3: field widht not found"},
		{name: "nested struct", input: "a:\n  inner:\n    dpeth: 1\n", wantErr: "line 3: field dpeth not found"},
		{name: "ignored field", input: "a:\n  skipped: x\n", wantErr: "field skipped not found"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var m Map[strictEntry]
			err := yaml.Unmarshal([]byte(tc.input), &m)
			if tc.wantErr == "" {
				require.NoError(t, err)
				entry, ok := m.Get("a")
				require.True(t, ok)
				require.Equal(t, 2.0, entry.Width)
				require.Equal(t, 1, entry.Inner.Depth)
				return
			}

			require.ErrorContains(t, err, tc.wantErr)
			var entryErr *EntryError
			require.ErrorAs(t, err, &entryErr)
			require.Equal(t, "a", entryErr.Key)
		})
	}
}

func TestDecodeNodeLeavesScalarsAlone(t *testing.T) {
	t.Parallel()

	var node yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte("42"), &node))

	var v int
	require.NoError(t, DecodeNode(node.Content[0], &v))
	require.Equal(t, 42, v)
}
