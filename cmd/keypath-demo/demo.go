package main

import (
	"fmt"
	"log/slog"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/amp-labs/amp-keypath/errors"
	"github.com/amp-labs/amp-keypath/keypath"
	"github.com/amp-labs/amp-keypath/pointer"
	"github.com/amp-labs/amp-keypath/sorted"
)

// Food is a demo entity owned by value.
type Food struct {
	Name     string  `yaml:"name"`
	Calories float64 `yaml:"calories"`
}

// Cat owns one Food value (by value, not by reference).
type Cat struct {
	Name         string `yaml:"name"`
	FavoriteFood Food   `yaml:"favoriteFood"`
}

// Key paths for the demo entities. The getters and setters fix the root and
// value types statically, so a misspelled field cannot compile.
var (
	catName = keypath.New("name", func(c Cat) string {
		return c.Name
	})

	favoriteFood = keypath.NewWritable("favoriteFood",
		func(c Cat) Food {
			return c.FavoriteFood
		},
		func(c Cat, f Food) Cat {
			c.FavoriteFood = f

			return c
		})

	foodName = keypath.New("name", func(f Food) string {
		return f.Name
	})

	foodCalories = keypath.NewWritable("calories",
		func(f Food) float64 {
			return f.Calories
		},
		func(f Food, v float64) Food {
			f.Calories = v

			return f
		})

	// Composed paths spanning both hops (cat -> favoriteFood -> field).
	catFoodName = keypath.Append(favoriteFood.KeyPath, foodName)
	catCalories = keypath.AppendWritable(favoriteFood, foodCalories)
)

// catsFixture is the demo data, declared as an embedded YAML document.
// No files are read; the demo has no inputs.
const catsFixture = `
cats:
  - name: Whiskers
    favoriteFood: {name: tuna, calories: 999}
  - name: Tacco
    favoriteFood: {name: chicken, calories: 723}
  - name: Nala
    favoriteFood: {name: salmon, calories: 340}
displayPaths:
  - $['name']
  - $['favoriteFood']['name']
  - $['favoriteFood']['calories']
`

type fixture struct {
	Cats         []Cat    `yaml:"cats"`
	DisplayPaths []string `yaml:"displayPaths"`
}

func loadFixture() (fixture, error) {
	var f fixture

	if err := yaml.Unmarshal([]byte(catsFixture), &f); err != nil {
		return fixture{}, fmt.Errorf("failed to parse fixture: %w", err)
	}

	var errs errors.Collection
	for _, path := range f.DisplayPaths {
		errs.Add(keypath.Validate[Cat](path))
	}

	if errs.HasError() {
		return fixture{}, errs.GetError()
	}

	return f, nil
}

func run(log *slog.Logger) error {
	f, err := loadFixture()
	if err != nil {
		return err
	}

	cats := f.Cats

	log.Info("loaded cats", "count", len(cats))

	// Keyed sorts: one sort utility, parametrized by key path and ordering.
	for _, cat := range sorted.By(cats, catCalories, sorted.Ascending[float64]()) {
		log.Info("by calories", "name", cat.Name, "calories", catCalories.Get(cat))
	}

	for _, cat := range sorted.ByOrdered(cats, catName) {
		log.Info("by name", "name", cat.Name, "food", catFoodName.Get(cat))
	}

	for _, cat := range sorted.By(cats, catName, sorted.Naturally) {
		log.Info("by name, naturally", "name", cat.Name)
	}

	for _, cat := range sorted.By(cats, catName, sorted.Collated(language.English)) {
		log.Info("by name, collated", "name", cat.Name)
	}

	// In-place mutation through a reference-writable path: feeding Nala
	// updates the nested calories without rebinding the root.
	nala := pointer.To(cats[2])
	byReference := catCalories.ByReference()
	byReference.Set(nala, byReference.Get(*nala)+58)

	log.Info("after feeding", "name", nala.Name, "calories", catCalories.Get(*nala))

	// The same nested location, reached through a parsed path string.
	parsed, err := keypath.Parse[Cat, float64]("$['favoriteFood']['calories']")
	if err != nil {
		return err
	}

	log.Info("parsed path", "path", parsed.Path(), "calories", parsed.Get(cats[1]))

	// Heterogeneous storage: value-erased paths in one slice.
	erased := []keypath.PartialKeyPath[Cat]{
		catName.Erase(),
		catFoodName.Erase(),
		catCalories.Erase(),
	}

	for _, path := range erased {
		log.Info("erased path", "path", path.Path(),
			"type", path.ValueType().String(), "value", path.Get(cats[0]))
	}

	// Narrowing is explicit: recovering the calories path yields Some only
	// for the matching value type.
	keypath.Narrow[Cat, float64](erased[2]).ForEach(func(kp keypath.KeyPath[Cat, float64]) {
		log.Info("narrowed", "path", kp.Path(), "calories", kp.Get(cats[0]))
	})

	// Fully erased paths trade static safety for uniform storage; a wrong
	// root type surfaces as an error instead of a compile failure.
	anyPath := erased[0].EraseRoot()
	if _, err := anyPath.Get("not a cat"); err != nil {
		log.Info("fully erased path rejects wrong root", "error", err.Error())
	}

	return nil
}
