package rackcorp

import (
	"context"
	"fmt"
)

// RecordCreate creates a DNS record and returns it with its server
// assigned id. The record must reference its domain by id or by name,
// otherwise ErrDomainReferenceNotSet is returned before any network call.
func (c *Client) RecordCreate(ctx context.Context, record Record) (created Record, err error) {
	if !record.hasDomainReference() {
		return Record{}, fmt.Errorf("%w", ErrDomainReferenceNotSet)
	}

	body := map[string]any{
		"cmd": "dns.record.create",
		// json.php takes a batch shaped payload keyed by position,
		// even for a single record.
		"data": map[string]any{"0": encodeRecord(record)},
	}

	data, err := c.legacyPost(ctx, body)
	if err != nil {
		return Record{}, err
	}

	return decodeFirstRecord(data)
}
