package common

import "strings"

// ArrayFlag is a flag.Value that can be set multiple times, accumulating the
// values. Register it with flag.Var.
type ArrayFlag []string

// String implements flag.Value.
func (f *ArrayFlag) String() string {
	return strings.Join(*f, ", ")
}

// Set implements flag.Value, appending value to the array.
func (f *ArrayFlag) Set(value string) error {
	*f = append(*f, value)
	return nil
}
