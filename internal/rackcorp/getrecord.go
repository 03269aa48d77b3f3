package rackcorp

import (
	"context"
	"encoding/json"
	"fmt"
)

// RecordGet fetches a single DNS record by id.
func (c *Client) RecordGet(ctx context.Context, recordID string) (record Record, err error) {
	data, err := c.get(ctx, "dns/records/"+recordID)
	if err != nil {
		return Record{}, err
	}

	if len(data) == 0 {
		return Record{}, fmt.Errorf("%w", ErrNoResultReceived)
	}

	var rawRecord map[string]any
	err = json.Unmarshal(data, &rawRecord)
	if err != nil {
		return Record{}, fmt.Errorf("json decoding record data: %w", err)
	}

	return decodeRecord(rawRecord), nil
}
