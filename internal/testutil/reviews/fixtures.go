package reviews

// ClassSize is the number of rows generated for one rating.
type ClassSize struct {
	Rating Rating
	Count  int
}

// Fixture is a predefined class distribution.
type Fixture interface {
	Name() string
	Classes() []ClassSize
}

type fixture struct {
	name    string
	classes []ClassSize
}

func (f *fixture) Name() string         { return f.name }
func (f *fixture) Classes() []ClassSize { return f.classes }

// Predefined fixtures for common test scenarios.
var (
	// FixtureBalanced has 20 rows for each of the five ratings.
	FixtureBalanced = &fixture{
		name: "Balanced",
		classes: []ClassSize{
			{Rating1, 20}, {Rating2, 20}, {Rating3, 20}, {Rating4, 20}, {Rating5, 20},
		},
	}

	// FixtureImbalanced skews heavily towards five-star reviews, like real review data.
	FixtureImbalanced = &fixture{
		name: "Imbalanced",
		classes: []ClassSize{
			{Rating1, 12}, {Rating2, 9}, {Rating3, 15}, {Rating4, 30}, {Rating5, 80},
		},
	}

	// FixtureBinary has two uneven classes.
	FixtureBinary = &fixture{
		name: "Binary",
		classes: []ClassSize{
			{Rating1, 30}, {Rating5, 70},
		},
	}
)
