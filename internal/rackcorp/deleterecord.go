package rackcorp

import (
	"context"
)

// RecordDelete deletes a DNS record by id.
func (c *Client) RecordDelete(ctx context.Context, recordID string) (err error) {
	body := map[string]any{
		"cmd": "dns.record.delete",
		"id":  recordID,
	}

	_, err = c.legacyPost(ctx, body)
	return err
}
