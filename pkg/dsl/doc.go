/*
Package dsl provides a Go DSL for programmatically constructing stagger scenes.

It allows developers to define staggered animations using a type-safe, fluent builder pattern
instead of relying on external YAML files. This is particularly useful for dynamic scene
generation, unit testing, and leveraging IDE autocompletion/type-checking.

Example usage:

	b := dsl.New()
	b.Add("mainTitle").
		Add("subTitle").After("mainTitle").
		Add("summary").After("subTitle").At(0.55)

	// The resulting loader can be used as a ports.SceneLoader
	loader, err := b.Build()
	// ... pass loader to stagger.New(stagger.WithLoader(loader))
*/
package dsl
