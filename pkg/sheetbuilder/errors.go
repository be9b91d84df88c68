package sheetbuilder

import "fmt"

// ValidationError reports a batch call whose parallel inputs disagree in
// length. It is returned before any worksheet is created.
type ValidationError struct {
	Headers int
	Data    int
	Names   int
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("size mismatch: %d headers, %d data sets, %d worksheet names",
		e.Headers, e.Data, e.Names)
}

// ConfigurationError reports a malformed complex-header entry. The offending
// entry is carried so callers can see what was wrong.
type ConfigurationError struct {
	Index int
	Entry ComplexHeader
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("complex header entry %d is malformed: %+v (want either Cell or both From and To)",
		e.Index, e.Entry)
}
