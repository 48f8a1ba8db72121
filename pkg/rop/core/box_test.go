package core

import (
	"errors"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/fallible/pkg/rop"
)

func TestPresent_IndependentOfNilPayload(t *testing.T) {
	t.Parallel()

	b := Present[*int, error](nil)
	assert.True(t, b.HasValue())
	assert.False(t, b.HasError())
	assert.Equal(t, "Some(nil)", b.Render("Some", "None"))
}

func TestAbsentWithError_NilAttachesNothing(t *testing.T) {
	t.Parallel()

	assert.False(t, AbsentWithError[int](nil).HasError())
	assert.True(t, AbsentWithError[int](errors.New("x")).HasError())
}

func TestAbsentWith_TypedZeroIsStillAnError(t *testing.T) {
	t.Parallel()

	b := AbsentWith[string](0)
	assert.True(t, b.HasError())
	assert.Equal(t, 0, b.Err())
}

func TestAll_Restartable(t *testing.T) {
	t.Parallel()

	b := Present[int, error](7)
	seq := b.All()

	assert.Equal(t, []int{7}, slices.Collect(seq))
	assert.Equal(t, []int{7}, slices.Collect(seq))
	assert.Empty(t, slices.Collect(Absent[int, error]().All()))
}

func TestAll_StopsWhenYieldDeclines(t *testing.T) {
	t.Parallel()

	count := 0
	for range Present[int, error](1).All() {
		count++
		break
	}
	assert.Equal(t, 1, count)
}

func TestEqual(t *testing.T) {
	t.Parallel()

	err := errors.New("x")

	assert.True(t, Present[int, error](1).Equal(Present[int, error](1)))
	assert.False(t, Present[int, error](1).Equal(Present[int, error](2)))
	assert.False(t, Present[int, error](0).Equal(Absent[int, error]()))
	assert.True(t, AbsentWith[int](err).Equal(AbsentWith[int](errors.New("x"))))
	assert.False(t, AbsentWith[int](err).Equal(Absent[int, error]()))
	assert.True(t, Absent[int, error]().Equal(Absent[int, error]()))
}

func TestHash_AgreesWithEqual(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Present[string, error]("a").Hash(), Present[string, error]("a").Hash())
	assert.Equal(t, AbsentWith[int](errors.New("x")).Hash(), AbsentWith[int](errors.New("x")).Hash())
	assert.NotEqual(t, Absent[int, error]().Hash(), AbsentWith[int](errors.New("x")).Hash())
	assert.NotEqual(t, Absent[int, error]().Hash(), Present[int, error](0).Hash())

	a, b := 7, 7
	pa, pb := Present[*int, error](&a), Present[*int, error](&b)
	assert.True(t, pa.Equal(pb))
	assert.Equal(t, pa.Hash(), pb.Hash())

	now := time.Now()
	for _, other := range []time.Time{now.Round(0), now.UTC()} {
		x, y := Present[time.Time, error](now), Present[time.Time, error](other)
		assert.True(t, x.Equal(y))
		assert.Equal(t, x.Hash(), y.Hash())
	}
}

func TestCompare_DiscriminantOnly(t *testing.T) {
	t.Parallel()

	assert.Equal(t, -1, Absent[int, error]().Compare(Present[int, error](1)))
	assert.Equal(t, 1, Present[int, error](1).Compare(AbsentWith[int](errors.New("x"))))
	assert.Equal(t, 0, Present[int, error](1).Compare(Present[int, error](2)))
	assert.Equal(t, 0, Absent[int, error]().Compare(AbsentWith[int](errors.New("x"))))
}

func TestFilter(t *testing.T) {
	t.Parallel()

	even := func(v int) bool { return v%2 == 0 }
	err := errors.New("x")

	assert.True(t, Present[int, error](2).Filter(even).HasValue())
	assert.True(t, Present[int, error](3).Filter(even).Equal(Absent[int, error]()))
	assert.True(t, AbsentWith[int](err).Filter(even).HasError())
	assert.True(t, Present[int, error](3).FilterIf(true).HasValue())
	assert.False(t, Present[int, error](3).FilterIf(false).HasValue())
}

func TestFilter_PredicateNotCalledWhenAbsent(t *testing.T) {
	t.Parallel()

	Absent[int, error]().Filter(func(int) bool {
		t.Fatalf("predicate should not be called for an absent box")
		return false
	})
}

func TestNilHandlers_PanicBeforeStateIsRead(t *testing.T) {
	t.Parallel()

	cases := map[string]func(){
		"exists":      func() { Absent[int, error]().Exists(nil) },
		"filter":      func() { Absent[int, error]().Filter(nil) },
		"valueOrElse": func() { Present[int, error](1).ValueOrElse(nil) },
		"errFactory":  func() { Present[int, error](1).ValueOrElseErr(nil) },
		"or":          func() { Present[int, error](1).Or(nil) },
	}

	for name, f := range cases {
		err := rop.Catch(f)
		require.NotNil(t, err, name)
		assert.True(t, errors.Is(err, rop.ErrInvalidArgument), name)
	}
}

func TestRender(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Ok(5)", Present[int, error](5).Render("Ok", "Err"))
	assert.Equal(t, "Err", Absent[int, error]().Render("Ok", "Err"))
	assert.Equal(t, "Err with error", AbsentWith[int](errors.New("x")).Render("Ok", "Err"))
}
