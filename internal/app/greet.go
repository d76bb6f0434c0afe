// Package app provides core application functionality.
package app

// Greet returns a greeting message for the given name.
//
// Greet is pure and defined for every input, including the empty string,
// which yields "Hello, !".
func Greet(name string) string {
	return "Hello, " + name + "!"
}
