package fingerprint

import "strconv"

// Copyright © 2022 Matthew R Bonnette. Licensed under the Apache-2.0 license.
// Every failure the pipeline can report is one of the three types below. They are returned wrapped
// with a stack (github.com/pkg/errors), so match them with errors.As rather than by equality.

// InvalidInputError reports input the pipeline cannot interpret, such as a padded message that is
// not block-aligned or a malformed state snapshot.
type InvalidInputError struct {
	Reason string
}

func (e *InvalidInputError) Error() string { return "fingerprint: invalid input: " + e.Reason }

// LengthOverflowError reports a message whose length in bits does not fit the 64-bit length field.
type LengthOverflowError struct {
	Bytes uint64
}

func (e *LengthOverflowError) Error() string {
	return "fingerprint: message of " + strconv.FormatUint(e.Bytes, 10) +
		" bytes overflows the 64-bit length field"
}

// ConfigurationError reports a round-constant table of the wrong cardinality.
type ConfigurationError struct {
	Constants int
}

func (e *ConfigurationError) Error() string {
	return "fingerprint: round-constant table has " + strconv.Itoa(e.Constants) +
		" entries, must be " + strconv.Itoa(rounds)
}
