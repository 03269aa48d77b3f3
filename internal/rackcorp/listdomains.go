package rackcorp

import (
	"context"
	"encoding/json"
	"fmt"
)

// DomainList fetches all DNS domains visible to the credential.
// Records are left empty on every domain, use DomainGet to obtain
// a domain's records.
func (c *Client) DomainList(ctx context.Context) (domains []Domain, err error) {
	data, err := c.get(ctx, "dns/domain")
	if err != nil {
		return nil, err
	}

	if len(data) == 0 {
		return nil, nil
	}

	var rawDomains []map[string]any
	err = json.Unmarshal(data, &rawDomains)
	if err != nil {
		return nil, fmt.Errorf("json decoding domains data: %w", err)
	}

	domains = make([]Domain, 0, len(rawDomains))
	for _, rawDomain := range rawDomains {
		domains = append(domains, decodeDomain(rawDomain))
	}
	return domains, nil
}
