// Package textclean normalizes raw review text into lowercase, punctuation-free,
// stopword-free, lemmatized token strings.
//
// All language resources live in an immutable Resources value that is built once
// at startup and injected into NewCleaner:
//
//	res, err := textclean.LoadResources(textclean.ResourceOptions{Lemmatizer: textclean.LemmatizerGolem})
//	if err != nil {
//		return err
//	}
//	cleaner := textclean.NewCleaner(res)
//	cleaner.Clean("This PRODUCT is Amazing!!") // "product amazing"
package textclean
