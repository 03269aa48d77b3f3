package hooks

import (
	"context"
	"errors"
	"fmt"

	"github.com/rackcorp/certbot-dns-rackcorp/internal/rackcorp"
)

var ErrZoneNotFound = errors.New("zone not found")

// findZoneID resolves a zone name to its domain id using a case
// sensitive exact match on the zone apex name.
func findZoneID(ctx context.Context, client Client, zoneName string) (domainID string, err error) {
	domains, err := client.DomainList(ctx)
	if err != nil {
		return "", fmt.Errorf("listing domains: %w", err)
	}

	for _, domain := range domains {
		if domain.Name == zoneName {
			return domain.ID, nil
		}
	}

	return "", fmt.Errorf("%w: %s", ErrZoneNotFound, zoneName)
}

// findRecordID scans the domain's records for one matching the
// candidate's lookup and type. A miss is not an error, it drives
// the create versus update and delete versus no-op branching.
func findRecordID(ctx context.Context, client Client, domainID string,
	record rackcorp.Record) (recordID string, found bool, err error) {
	domain, err := client.DomainGet(ctx, domainID)
	if err != nil {
		return "", false, fmt.Errorf("getting domain %s: %w", domainID, err)
	}

	for _, existing := range domain.Records {
		if existing.Lookup != record.Lookup || existing.Type != record.Type {
			continue
		}
		if existing.ID == nil {
			continue
		}
		return *existing.ID, true, nil
	}

	return "", false, nil
}
