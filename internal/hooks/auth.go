package hooks

import (
	"context"
	"fmt"

	"github.com/rackcorp/certbot-dns-rackcorp/internal/rackcorp"
)

// Auth creates or updates the challenge TXT record, then pauses for
// the propagation delay before returning.
func (h *Hooks) Auth(ctx context.Context) (err error) {
	record, err := challengeRecord(h.settings.Domain, h.settings.Validation)
	if err != nil {
		return err
	}
	zoneName := *record.DomainName

	domainID, err := findZoneID(ctx, h.client, zoneName)
	if err != nil {
		return err
	}
	record.DomainID = &domainID

	recordID, found, err := findRecordID(ctx, h.client, domainID, record)
	if err != nil {
		return err
	}

	fullName := record.Lookup + "." + zoneName
	if found {
		h.logger.Info("updating existing record " + fullName)
		record.ID = &recordID
		_, err = h.client.RecordUpdate(ctx, record)
		if err != nil {
			return fmt.Errorf("updating record: %w", err)
		}
	} else {
		h.logger.Info("creating record " + fullName)
		_, err = h.client.RecordCreate(ctx, record)
		if err != nil {
			return fmt.Errorf("creating record: %w", err)
		}
	}

	h.logger.Info("pausing " + h.settings.PropagationDelay.String() +
		" to allow for DNS propagation")
	h.timeSleep(ctx, h.settings.PropagationDelay)

	h.checkPropagation(ctx, record, fullName)

	return nil
}

// checkPropagation queries the challenge TXT record and logs whether
// the expected value is visible. It is diagnostics only and never
// fails the hook.
func (h *Hooks) checkPropagation(ctx context.Context, record rackcorp.Record,
	fullName string) {
	if h.fetcher == nil {
		return
	}

	values, err := h.fetcher.FetchTXT(ctx, fullName)
	if err != nil {
		h.logger.Warn("propagation check: " + err.Error())
		return
	}

	for _, value := range values {
		if value == record.Data {
			h.logger.Debug("propagation check: challenge value visible at " + fullName)
			return
		}
	}
	h.logger.Warn("propagation check: challenge value not visible yet at " + fullName)
}
