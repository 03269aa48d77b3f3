package hooks

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rackcorp/certbot-dns-rackcorp/internal/rackcorp"
)

var (
	ErrDomainNotSet     = errors.New("certbot domain is not set")
	ErrValidationNotSet = errors.New("certbot validation is not set")
)

// challengeRecord builds the candidate TXT record for the DNS-01
// challenge. The certbot domain is split at its first dot: the left
// part becomes the record name and the remainder is the zone name,
// set as the record's domain name.
func challengeRecord(domain, validation string) (record rackcorp.Record, err error) {
	switch {
	case domain == "":
		return record, fmt.Errorf("%w", ErrDomainNotSet)
	case validation == "":
		return record, fmt.Errorf("%w", ErrValidationNotSet)
	}

	recordName, zoneName, _ := strings.Cut(domain, ".")

	const challengeTTL uint32 = 120
	return rackcorp.Record{
		Lookup:     "_acme-challenge." + recordName,
		Type:       rackcorp.TXT,
		Data:       validation,
		TTL:        ptrTo(challengeTTL),
		DomainName: ptrTo(zoneName),
	}, nil
}

func ptrTo[T any](value T) *T { return &value }
