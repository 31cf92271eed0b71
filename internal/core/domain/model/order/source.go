package order

import (
	"fmt"

	"bakehouse/internal/pkg/errs"
)

// Source identifies the channel an order arrived through.
// It is a closed string-backed enumeration; the string form is persisted
// directly and used on the wire.
type Source string

const (
	// SourceManual marks orders typed in by an operator.
	SourceManual Source = "manual"

	// SourceWhatsApp marks orders taken over WhatsApp.
	SourceWhatsApp Source = "whatsapp"

	// SourceCorporate marks bulk orders from corporate clients.
	SourceCorporate Source = "corporate"

	// SourceSite marks orders placed through the public site.
	SourceSite Source = "site"
)

// getValidSources returns the closed set of accepted sources.
func getValidSources() map[Source]struct{} {
	return map[Source]struct{}{
		SourceManual:    {},
		SourceWhatsApp:  {},
		SourceCorporate: {},
		SourceSite:      {},
	}
}

// SourceFromString parses a source from its wire representation.
func SourceFromString(s string) (Source, error) {
	source := Source(s)
	if err := source.Validate(); err != nil {
		return "", err
	}
	return source, nil
}

// Validate checks if the Source is part of the closed enumeration.
func (s Source) Validate() error {
	if _, ok := getValidSources()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("source",
			fmt.Errorf("%q is not a valid order source", string(s)))
	}
	return nil
}

// String returns the wire representation of the source.
func (s Source) String() string {
	return string(s)
}
