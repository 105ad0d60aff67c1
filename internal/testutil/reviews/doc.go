// Package reviews provides test infrastructure for building review datasets.
// It offers a fluent API over typed ratings and predefined class distributions.
//
// # Basic Usage
//
//	ds := reviews.NewBuilder(t).
//		WithClass(reviews.Rating5, 20).
//		WithClass(reviews.Rating1, 20).
//		Build()
//
// # Using Fixtures
//
// Fixtures describe how many rows each rating gets:
//
//	ds := reviews.NewBuilder(t).WithFixture(reviews.FixtureImbalanced).Build()
//
// Generated texts contain words specific to their rating, so a vectorizer fitted
// on them yields class-dependent features.
package reviews
