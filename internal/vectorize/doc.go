// Package vectorize turns cleaned review text into TF-IDF weighted document-term matrices.
//
// Fitting and applying are separate steps. Fit learns the vocabulary and inverse
// document frequencies from training text and returns a Model; Model.Transform
// only applies that state, so held-out text can never add terms or shift weights:
//
//	model, train, err := vectorize.FitTransform(trainDocs, vectorize.Options{MaxFeatures: 5000})
//	if err != nil {
//		return err
//	}
//	test := model.Transform(testDocs)
//
// Weights follow the usual smoothed scheme: idf(t) = ln((1+n)/(1+df(t))) + 1,
// raw term counts times idf, rows scaled to unit L2 norm.
package vectorize
