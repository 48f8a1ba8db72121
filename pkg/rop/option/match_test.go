package option

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatch_Function(t *testing.T) {
	t.Parallel()

	double := func(v int) int { return v * 2 }
	fallback := func() int { return -1 }

	assert.Equal(t, 10, Match(Some(5), double, fallback))
	assert.Equal(t, -1, Match(None[int](), double, fallback))
}

func TestMatchWithErr_Function(t *testing.T) {
	t.Parallel()

	got := MatchWithErr(NoneWith[int](errors.New("why")),
		func(v int) string { return strconv.Itoa(v) },
		func(err error) string { return err.Error() })
	assert.Equal(t, "why", got)

	got = MatchWithErr(Some(7),
		func(v int) string { return strconv.Itoa(v) },
		func(err error) string { return "none" })
	assert.Equal(t, "7", got)
}

func TestMatch_ExactlyOneBranch(t *testing.T) {
	t.Parallel()

	var some, none int
	onSome := func(int) { some++ }
	onNone := func() { none++ }

	Some(1).Match(onSome, onNone)
	None[int]().Match(onSome, onNone)
	NoneWith[int](errors.New("x")).Match(onSome, onNone)

	assert.Equal(t, 1, some)
	assert.Equal(t, 2, none)
}

func TestMatchWithErr_Action(t *testing.T) {
	t.Parallel()

	err := errors.New("x")
	var got error
	NoneWith[int](err).MatchWithErr(func(int) { t.Fatalf("onSome should not run") },
		func(e error) { got = e })
	assert.Same(t, err, got)
}

func TestMatchSingleBranch(t *testing.T) {
	t.Parallel()

	var calls []string
	Some(1).MatchSome(func(int) { calls = append(calls, "some") })
	None[int]().MatchSome(func(int) { calls = append(calls, "unexpected") })
	None[int]().MatchNone(func() { calls = append(calls, "none") })
	Some(1).MatchNone(func() { calls = append(calls, "unexpected") })
	NoneWith[int](errors.New("e")).MatchNoneWithErr(func(err error) { calls = append(calls, err.Error()) })

	assert.Equal(t, []string{"some", "none", "e"}, calls)
}

func TestMatch_NilHandlers(t *testing.T) {
	t.Parallel()

	cases := map[string]func(){
		"match onSome":        func() { None[int]().Match(nil, func() {}) },
		"match onNone":        func() { Some(1).Match(func(int) {}, nil) },
		"matchWithErr":        func() { Some(1).MatchWithErr(func(int) {}, nil) },
		"matchSome":           func() { None[int]().MatchSome(nil) },
		"matchNone":           func() { Some(1).MatchNone(nil) },
		"matchNoneWithErr":    func() { Some(1).MatchNoneWithErr(nil) },
		"func match":          func() { Match[int, int](Some(1), nil, func() int { return 0 }) },
		"func match with err": func() { MatchWithErr[int, int](Some(1), func(int) int { return 0 }, nil) },
	}

	for name, f := range cases {
		t.Run(name, func(t *testing.T) {
			requireArgumentError(t, f)
		})
	}
}

func TestMap(t *testing.T) {
	t.Parallel()

	toString := func(v int) string { return strconv.Itoa(v) }

	assert.True(t, Map(Some(4), toString).Equal(Some("4")))
	assert.True(t, Map(None[int](), toString).Equal(None[string]()))

	mapped := Map(NoneWith[int](errors.New("x")), toString)
	assert.True(t, mapped.IsNone())
	assert.False(t, mapped.HasError(), "the error does not survive a type change")
}

func TestMap_Identity(t *testing.T) {
	t.Parallel()

	identity := func(v string) string { return v }
	assert.True(t, Map(Some("x"), identity).Equal(Some("x")))
}

func TestMap_NilGuardRunsFirst(t *testing.T) {
	t.Parallel()

	requireArgumentError(t, func() { Map[int, int](Some(1), nil) })
	requireArgumentError(t, func() { Map[int, int](None[int](), nil) })
}

func TestFlatMap(t *testing.T) {
	t.Parallel()

	half := func(v int) Option[int] {
		if v%2 != 0 {
			return NoneWith[int](errors.New("odd"))
		}
		return Some(v / 2)
	}

	assert.True(t, FlatMap(Some(4), half).Equal(Some(2)))
	assert.True(t, FlatMap(Some(3), half).Equal(NoneWith[int](errors.New("odd"))))
	assert.True(t, FlatMap(None[int](), half).Equal(None[int]()))

	requireArgumentError(t, func() { FlatMap[int, int](Some(1), nil) })
}

func TestFlatMap_SomeIsIdentity(t *testing.T) {
	t.Parallel()

	for _, o := range []Option[int]{Some(1), None[int](), NoneWith[int](errors.New("x"))} {
		assert.True(t, FlatMap(o, Some[int]).Equal(o))
	}
}
