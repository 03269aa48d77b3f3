package rackcorp

import (
	"context"
	"encoding/json"
	"fmt"
)

// RecordUpdate updates an existing DNS record, referenced by the id
// set on the record, and returns the updated record.
func (c *Client) RecordUpdate(ctx context.Context, record Record) (updated Record, err error) {
	if record.ID == nil || *record.ID == "" {
		return Record{}, fmt.Errorf("%w", ErrRecordIDNotSet)
	}

	body := map[string]any{
		"cmd":  "dns.record.update",
		"data": map[string]any{*record.ID: encodeRecord(record)},
	}

	data, err := c.legacyPost(ctx, body)
	if err != nil {
		return Record{}, err
	}

	return decodeFirstRecord(data)
}

func decodeFirstRecord(data json.RawMessage) (record Record, err error) {
	if len(data) == 0 {
		return Record{}, fmt.Errorf("%w", ErrNoResultReceived)
	}

	var rawRecords []map[string]any
	err = json.Unmarshal(data, &rawRecords)
	if err != nil {
		return Record{}, fmt.Errorf("json decoding records data: %w", err)
	}

	if len(rawRecords) == 0 {
		return Record{}, fmt.Errorf("%w", ErrNoResultReceived)
	}

	return decodeRecord(rawRecords[0]), nil
}
