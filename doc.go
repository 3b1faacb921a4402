// Package cmdargs parses named arguments out of a single command line.
//
// Arguments are registered up front with a name, whether they are required
// and the type their value must satisfy. Parse then looks up every argument
// in the command text, extracts the value token that follows it and checks
// it against the declared type. Typed getters read the values back once a
// parse succeeded.
package cmdargs
