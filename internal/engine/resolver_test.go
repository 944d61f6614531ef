package engine

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/painter/internal/color"
	"github.com/alexisbeaulieu97/painter/internal/logger"
	"github.com/alexisbeaulieu97/painter/internal/style"
	"github.com/alexisbeaulieu97/painter/internal/theme"
	apperrors "github.com/alexisbeaulieu97/painter/pkg/errors"
)

func parse(t *testing.T, src string) *theme.Theme {
	t.Helper()
	doc, err := theme.Parse([]byte(src), "test.yaml")
	require.NoError(t, err)
	return doc
}

func loadFull(t *testing.T) *theme.Theme {
	t.Helper()
	doc, err := theme.ParseFile(filepath.Join("testdata", "full.yaml"))
	require.NoError(t, err)
	return doc
}

func resolve(t *testing.T, doc *theme.Theme, opts Options) *Result {
	t.Helper()
	res, err := NewResolver(nil, opts).Resolve(doc)
	require.NoError(t, err)
	require.NotNil(t, res)
	return res
}

const scenario = `name: scenario
color:
  c1: rgba(255,0,0,1)
border:
  b1:
    color: c1
    radius: 2.0
    width: 1.0
container:
  panel:
    color: c1
    border: b1
button:
  button1:
    active:
      defined:
        background: c1
        text: c1
        border: b1
`

func TestResolveConcreteScenario(t *testing.T) {
	t.Parallel()

	res := resolve(t, parse(t, scenario), Options{})
	require.Empty(t, res.Failures)
	require.NoError(t, res.Err())

	red := color.RGBA(255, 0, 0, 1)
	b1 := style.Border{Color: red, Radius: 2, Width: 1}

	border, ok := res.Theme.Border("b1")
	require.True(t, ok)
	require.Equal(t, b1, border)

	panel, ok := res.Theme.Container("panel")
	require.True(t, ok)
	require.Equal(t, style.Container{Color: red, Border: b1}, panel)

	button, ok := res.Theme.Button("button1")
	require.True(t, ok)
	want := style.ButtonState{Background: red, Text: red, Border: b1}
	for i, state := range button.States {
		require.Equal(t, want, state, "state %d", i)
	}
	require.Equal(t, 1, res.Passes)
}

func TestResolveDefaultFillFromFirstResolvedSlot(t *testing.T) {
	t.Parallel()

	doc := parse(t, `name: fill
color:
  a: red
  b: blue
border:
  thin: {color: a, radius: 0, width: 1}
scrollable:
  s:
    hovered:
      defined: {color: b, border: thin, scroller_color: b, scroller_border: thin}
    dragging:
      defined: {color: a, border: thin, scroller_color: a, scroller_border: thin}
`)

	res := resolve(t, doc, Options{})
	s, ok := res.Theme.Scrollable("s")
	require.True(t, ok)
	require.Equal(t, color.Blue, s.States[style.ScrollableActive].Color)
	require.Equal(t, color.Blue, s.States[style.ScrollableHovered].Color)
	require.Equal(t, color.Red, s.States[style.ScrollableDragging].Color)
}

func TestResolveAllAbsentIsNoDefinedState(t *testing.T) {
	t.Parallel()

	doc := parse(t, `name: empty
color:
  a: red
border:
  thin: {color: a, radius: 0, width: 1}
button:
  blank: {}
  ok:
    active:
      defined: {background: a, text: a, border: thin}
`)

	res := resolve(t, doc, Options{})
	require.Len(t, res.Failures, 1)
	require.ErrorIs(t, res.Failures[0], apperrors.ErrNoDefinedState)
	require.Equal(t, "blank", res.Failures[0].Entry)
	require.Equal(t, apperrors.NoSlot, res.Failures[0].Slot)

	_, ok := res.Theme.Button("blank")
	require.False(t, ok)
	_, ok = res.Theme.Button("ok")
	require.True(t, ok)
	require.ErrorIs(t, res.Err(), apperrors.ErrNoDefinedState)
}

func TestResolveIsOrderIndependent(t *testing.T) {
	t.Parallel()

	const header = `name: order
color:
  a: red
  b: blue
border:
  thin: {color: a, radius: 1, width: 1}
panegrid:
`
	const x = `  x:
    picked:
      inherited: y
`
	const y = `  y:
    picked:
      defined: {color: b, width: 3}
    hovered:
      defined: {color: a, width: 1}
`

	forward := resolve(t, parse(t, header+x+y), Options{})
	backward := resolve(t, parse(t, header+y+x), Options{})

	fx, ok := forward.Theme.PaneGrid("x")
	require.True(t, ok)
	bx, ok := backward.Theme.PaneGrid("x")
	require.True(t, ok)

	require.Equal(t, bx, fx)
	require.Equal(t, style.PaneGridState{Color: color.Blue, Width: 3}, fx.States[style.PaneGridPicked])
	// Hovered is absent on x and takes x's own first resolved slot.
	require.Equal(t, fx.States[style.PaneGridPicked], fx.States[style.PaneGridHovered])

	require.Equal(t, 2, forward.Passes)
	require.Equal(t, 1, backward.Passes)
}

func TestResolveCycleTerminates(t *testing.T) {
	t.Parallel()

	doc := parse(t, `name: cycle
button:
  a:
    active: {inherited: b}
    hovered: {inherited: b}
    pressed: {inherited: b}
    disabled: {inherited: b}
  b:
    active: {inherited: a}
    hovered: {inherited: a}
    pressed: {inherited: a}
    disabled: {inherited: a}
  self:
    active: {inherited: self}
`)

	res := resolve(t, doc, Options{})
	require.Equal(t, 1, res.Passes)
	require.Len(t, res.Failures, 3)
	require.Equal(t, 0, res.Theme.Buttons.Len())

	paths := map[string][]string{}
	for _, f := range res.Failures {
		require.ErrorIs(t, f, apperrors.ErrUnresolvableCycle)
		paths[f.Entry] = f.Path
	}
	require.Equal(t, []string{"a", "b", "a"}, paths["a"])
	require.Equal(t, []string{"b", "a", "b"}, paths["b"])
	require.Equal(t, []string{"self", "self"}, paths["self"])
	require.Contains(t, res.Failures[0].Error(), "(a -> b -> a)")
}

const chain = `name: chain
color:
  a: red
textinput:
  c:
    active: {inherited: b}
    placeholder: a
    value: a
    selection: a
  b:
    active: {inherited: a}
    placeholder: a
    value: a
    selection: a
  a:
    active:
      defined: {background: a, border: thin}
    placeholder: a
    value: a
    selection: a
border:
  thin: {color: a, radius: 0, width: 1}
`

func TestResolveLongChainConverges(t *testing.T) {
	t.Parallel()

	res := resolve(t, parse(t, chain), Options{})
	require.Empty(t, res.Failures)
	require.Equal(t, 3, res.Passes)

	a, _ := res.Theme.TextInput("a")
	c, ok := res.Theme.TextInput("c")
	require.True(t, ok)
	require.Equal(t, a.States, c.States)
}

func TestResolvePassBudget(t *testing.T) {
	t.Parallel()

	res := resolve(t, parse(t, chain), Options{MaxPasses: 2})
	require.Equal(t, 2, res.Passes)
	require.Len(t, res.Failures, 1)

	f := res.Failures[0]
	require.ErrorIs(t, f, apperrors.ErrUnresolvableCycle)
	require.Equal(t, "c", f.Entry)
	require.Equal(t, []string{"c", "b"}, f.Path)
	require.Contains(t, f.Message, "budget exhausted")

	_, ok := res.Theme.TextInput("b")
	require.True(t, ok)
}

func TestResolveInheritFailures(t *testing.T) {
	t.Parallel()

	doc := parse(t, `name: peers
color:
  a: red
border:
  thin: {color: a, radius: 0, width: 1}
button:
  child:
    hovered: {inherited: broken}
  broken:
    active:
      defined: {background: missing, text: a, border: thin}
  orphan:
    pressed: {inherited: ghost}
`)

	res := resolve(t, doc, Options{})
	require.Len(t, res.Failures, 3)

	byEntry := map[string]*apperrors.ThemeError{}
	for _, f := range res.Failures {
		require.ErrorIs(t, f, apperrors.ErrUnknownReference)
		byEntry[f.Entry] = f
	}

	require.Equal(t, "button.broken[active].background", byEntry["broken"].Location())
	require.Equal(t, "missing", byEntry["broken"].Ref)

	require.Equal(t, "button.child[hovered].inherited", byEntry["child"].Location())
	require.Contains(t, byEntry["child"].Message, "inherits from failed entry")

	require.Equal(t, "button.orphan[pressed].inherited", byEntry["orphan"].Location())
	require.Equal(t, "ghost", byEntry["orphan"].Ref)

	// Failures come back in document order.
	require.Equal(t, "child", res.Failures[0].Entry)
	require.Equal(t, "broken", res.Failures[1].Entry)
}

func TestResolveCollectsEveryFieldError(t *testing.T) {
	t.Parallel()

	doc := parse(t, `name: fields
color:
  a: red
border:
  thin: {color: a, radius: 0, width: 1}
button:
  bad:
    active:
      defined: {background: x, text: y, border: thin}
    hovered:
      defined: {background: a, text: a, border: z}
`)

	res := resolve(t, doc, Options{})
	require.Len(t, res.Failures, 3)
	require.Equal(t, "x", res.Failures[0].Ref)
	require.Equal(t, "y", res.Failures[1].Ref)
	require.Equal(t, "z", res.Failures[2].Ref)
	require.Equal(t, 1, res.Failures[2].Slot)
}

func TestResolvePicklistMenu(t *testing.T) {
	t.Parallel()

	res := resolve(t, loadFull(t), Options{})
	require.Empty(t, res.Failures)

	main, ok := res.Theme.Picklist("main")
	require.True(t, ok)
	compact, ok := res.Theme.Picklist("compact")
	require.True(t, ok)
	require.Equal(t, main.Menu, compact.Menu)
	require.Equal(t, main.States[style.PicklistActive], compact.States[style.PicklistActive])

	doc := parse(t, `name: menu
color:
  a: red
border:
  thin: {color: a, radius: 0, width: 1}
picklist:
  nomenu:
    active:
      defined: {background: a, text: a, placeholder: a, border: thin, handle: a}
`)
	res = resolve(t, doc, Options{})
	require.Len(t, res.Failures, 1)
	require.ErrorIs(t, res.Failures[0], apperrors.ErrNoDefinedState)
	require.Equal(t, "picklist.nomenu[menu]", res.Failures[0].Location())
}

func TestResolveFullTheme(t *testing.T) {
	t.Parallel()

	res := resolve(t, loadFull(t), Options{})
	require.Empty(t, res.Failures)
	require.Equal(t, 2, res.Passes)

	th := res.Theme
	require.Equal(t, "Full", th.Name)
	require.NotNil(t, th.Application)
	require.Equal(t, color.MustParse("#1e1e2e"), th.Application.Background)
	require.Equal(t, color.MustParse("#cdd6f4"), th.Application.Text)

	danger, ok := th.Button("danger")
	require.True(t, ok)
	primary, _ := th.Button("primary")
	require.Equal(t, primary.States[style.ButtonHovered], danger.States[style.ButtonHovered])
	require.Equal(t, danger.States[style.ButtonActive], danger.States[style.ButtonPressed])
	require.Equal(t, danger.States[style.ButtonActive], danger.States[style.ButtonDisabled])
	require.Equal(t, primary.States[style.ButtonActive], primary.States[style.ButtonPressed])

	field, ok := th.TextInput("field")
	require.True(t, ok)
	require.Equal(t, field.States[style.TextInputActive], field.States[style.TextInputHovered])
	require.Equal(t, color.MustParse("#89b4fa"), field.Selection)

	require.Equal(t, []string{"danger", "primary"}, th.Buttons.Keys())
}

func TestResolveLeafFailuresAbort(t *testing.T) {
	t.Parallel()

	doc := parse(t, `name: broken
color:
  a: red
border:
  b1: {color: nope, radius: 0, width: 1}
container:
  panel: {color: nope2, border: b1}
application:
  background_color: a
  text_color: gone
`)

	res, err := NewResolver(nil, Options{}).Resolve(doc)
	require.Nil(t, res)
	require.Error(t, err)
	require.ErrorIs(t, err, apperrors.ErrUnknownReference)

	multi, ok := err.(interface{ Unwrap() []error })
	require.True(t, ok)
	require.Len(t, multi.Unwrap(), 3)

	var locations []string
	for _, e := range multi.Unwrap() {
		var te *apperrors.ThemeError
		require.True(t, errors.As(e, &te))
		locations = append(locations, te.Location())
	}
	require.Equal(t, []string{"border.b1.color", "application.text_color", "container.panel.color"}, locations)
}

func TestResolveDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	doc := loadFull(t)
	before, err := theme.Encode(doc)
	require.NoError(t, err)

	first := resolve(t, doc, Options{})
	second := resolve(t, doc, Options{})

	after, err := theme.Encode(doc)
	require.NoError(t, err)
	require.Equal(t, string(before), string(after))
	require.Equal(t, first.Theme, second.Theme)

	// Outputs own their tables.
	first.Theme.Colors.Set("extra", color.Black)
	require.False(t, doc.Colors.Has("extra"))
	require.False(t, second.Theme.Colors.Has("extra"))
}

func TestResolveNil(t *testing.T) {
	t.Parallel()

	_, err := NewResolver(nil, Options{}).Resolve(nil)
	require.Error(t, err)
}

func TestResolverLogsFailures(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	doc := parse(t, `name: logged
button:
  blank: {}
`)
	_, err = NewResolver(log, Options{}).Resolve(doc)
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, `"theme":"logged"`)
	require.Contains(t, out, `"code":"NO_DEFINED_STATE"`)
	require.Contains(t, out, "composite pass complete")
}
