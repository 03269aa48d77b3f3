package hooks

import (
	"context"
	"fmt"
)

// Cleanup deletes the challenge TXT record. An absent record is a
// no-op success so the cleanup hook is idempotent.
func (h *Hooks) Cleanup(ctx context.Context) (err error) {
	record, err := challengeRecord(h.settings.Domain, h.settings.Validation)
	if err != nil {
		return err
	}
	zoneName := *record.DomainName

	domainID, err := findZoneID(ctx, h.client, zoneName)
	if err != nil {
		return err
	}

	recordID, found, err := findRecordID(ctx, h.client, domainID, record)
	if err != nil {
		return err
	}

	fullName := record.Lookup + "." + zoneName
	if !found {
		h.logger.Info("record " + fullName + " not found, nothing to clean up")
		return nil
	}

	h.logger.Info("deleting existing record " + fullName)
	err = h.client.RecordDelete(ctx, recordID)
	if err != nil {
		return fmt.Errorf("deleting record: %w", err)
	}

	return nil
}
