// Package dataset reads clustering problem instances from a whitespace
// separated token stream.
//
// The stream starts with five integers:
//
//	<points> <dimensionality> <k> <max-iterations> <has-names>
//
// followed by one row per point: <dimensionality> real numbers and, when
// has-names is 1, a name token. Tokens may be split across lines freely.
package dataset
