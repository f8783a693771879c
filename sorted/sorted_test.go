package sorted

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/amp-labs/amp-keypath/keypath"
	"github.com/amp-labs/amp-keypath/sortable"
	"github.com/amp-labs/amp-keypath/tests"
)

type food struct {
	Name     string
	Calories float64
}

type cat struct {
	Name         string
	FavoriteFood food
}

var (
	catName = keypath.New("name", func(c cat) string {
		return c.Name
	})

	favoriteFood = keypath.New("favoriteFood", func(c cat) food {
		return c.FavoriteFood
	})

	catCalories = keypath.Append(favoriteFood, keypath.New("calories", func(f food) float64 {
		return f.Calories
	}))
)

func demoCats() []cat {
	return []cat{
		{Name: "Whiskers", FavoriteFood: food{Name: "tuna", Calories: 999}},
		{Name: "Tacco", FavoriteFood: food{Name: "chicken", Calories: 723}},
		{Name: "Nala", FavoriteFood: food{Name: "salmon", Calories: 340}},
	}
}

func names(cats []cat) []string {
	out := make([]string, 0, len(cats))
	for _, c := range cats {
		out = append(out, c.Name)
	}

	return out
}

func TestByCalories(t *testing.T) {
	t.Parallel()

	out := By(demoCats(), catCalories, Ascending[float64]())

	assert.Equal(t, []string{"Nala", "Tacco", "Whiskers"}, names(out))
}

func TestByName(t *testing.T) {
	t.Parallel()

	out := By(demoCats(), catName, Ascending[string]())

	assert.Equal(t, []string{"Nala", "Tacco", "Whiskers"}, names(out))
}

func TestByDoesNotMutateInput(t *testing.T) {
	t.Parallel()

	input := demoCats()
	_ = By(input, catCalories, Ascending[float64]())

	assert.Equal(t, demoCats(), input)
}

func TestByEdgeCases(t *testing.T) {
	t.Parallel()

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, By([]cat{}, catName, Ascending[string]()))
	})

	t.Run("nil input", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, By(nil, catName, Ascending[string]()))
	})

	t.Run("single element", func(t *testing.T) {
		t.Parallel()

		single := demoCats()[:1]
		assert.Equal(t, single, By(single, catName, Ascending[string]()))
	})
}

func TestByStableKeepsTies(t *testing.T) {
	t.Parallel()

	// Equal calories: stable sort must preserve the input order of ties.
	input := []cat{
		{Name: "first", FavoriteFood: food{Calories: 100}},
		{Name: "second", FavoriteFood: food{Calories: 100}},
		{Name: "lighter", FavoriteFood: food{Calories: 50}},
		{Name: "third", FavoriteFood: food{Calories: 100}},
	}

	out := ByStable(input, catCalories, Ascending[float64]())

	assert.Equal(t, []string{"lighter", "first", "second", "third"}, names(out))
}

func TestInPlace(t *testing.T) {
	t.Parallel()

	input := demoCats()
	InPlace(input, catCalories, Descending[float64]())

	assert.Equal(t, []string{"Whiskers", "Tacco", "Nala"}, names(input))
}

func TestByOrdered(t *testing.T) {
	t.Parallel()

	out := ByOrdered(demoCats(), catCalories)

	assert.Equal(t, []string{"Nala", "Tacco", "Whiskers"}, names(out))
}

func TestBySortable(t *testing.T) {
	t.Parallel()

	calories := keypath.New("calories", func(c cat) sortable.Float64 {
		return sortable.Float64(c.FavoriteFood.Calories)
	})

	out := BySortable(demoCats(), calories)

	assert.Equal(t, []string{"Nala", "Tacco", "Whiskers"}, names(out))
}

// randomCats builds a fixture of cats with unique random names and random
// calories, for the property tests below.
func randomCats(n int) []cat {
	out := make([]cat, 0, n)
	for range n {
		out = append(out, cat{
			Name:         tests.RandomID(),
			FavoriteFood: food{Calories: float64(rand.IntN(1000))},
		})
	}

	return out
}

func TestByPreservesMultiset(t *testing.T) {
	t.Parallel()

	input := randomCats(200)
	out := By(input, catCalories, Ascending[float64]())

	require.Len(t, out, len(input))

	counts := make(map[cat]int, len(input))
	for _, c := range input {
		counts[c]++
	}

	for _, c := range out {
		counts[c]--
	}

	for _, count := range counts {
		assert.Zero(t, count, "no elements created, lost, or duplicated")
	}
}

func TestByIsIdempotent(t *testing.T) {
	t.Parallel()

	once := By(randomCats(100), catCalories, Ascending[float64]())
	twice := By(once, catCalories, Ascending[float64]())

	assert.Equal(t, once, twice)
}

func TestByIsMonotone(t *testing.T) {
	t.Parallel()

	lt := Ascending[float64]()
	out := By(randomCats(150), catCalories, lt)

	// No adjacent pair may be out of order under the supplied predicate.
	for i := 1; i < len(out); i++ {
		assert.False(t, lt(catCalories.Get(out[i]), catCalories.Get(out[i-1])),
			"elements %d and %d are out of order", i-1, i)
	}
}
