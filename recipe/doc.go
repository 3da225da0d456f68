// Package recipe builds integer pipelines from configuration.
//
// A recipe names a source, either explicit values or a numeric range, and an
// ordered list of steps:
//
//	filter:<predicate>   keep elements matching a registered predicate
//	map:<transform>      replace elements with a registered transform
//	take:<n>             keep at most the first n elements
//
// Build turns the steps into a ranges.Pipeline[int, int]; Run applies it to
// the source inside a traced, logged and measured run.
//
//	recipe:
//	  name: even-squares
//	  range: {start: 0, end: 10}
//	  steps: ["filter:even", "map:square", "take:3"]
package recipe
