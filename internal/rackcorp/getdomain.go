package rackcorp

import (
	"context"
	"encoding/json"
	"fmt"
)

// DomainGet fetches a single DNS domain by id, including its records.
func (c *Client) DomainGet(ctx context.Context, domainID string) (domain Domain, err error) {
	data, err := c.get(ctx, "dns/domain/"+domainID)
	if err != nil {
		return Domain{}, err
	}

	if len(data) == 0 {
		return Domain{}, fmt.Errorf("%w", ErrNoResultReceived)
	}

	var rawDomain map[string]any
	err = json.Unmarshal(data, &rawDomain)
	if err != nil {
		return Domain{}, fmt.Errorf("json decoding domain data: %w", err)
	}

	return decodeDomain(rawDomain), nil
}
