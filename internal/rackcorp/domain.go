package rackcorp

// Domain is a DNS zone. Name is the zone apex fully qualified
// domain name. Records is only populated by DomainGet, never
// by DomainList.
type Domain struct {
	ID           string
	CustomerID   string
	Serial       string
	StdName      string
	Name         string
	Type         string
	LastModified int64
	Records      []Record
}

func decodeDomain(data map[string]any) (domain Domain) {
	domain.ID = stringValue(data["id"])
	if value, ok := firstValue(data, "customerid", "customerId", "customerID"); ok {
		domain.CustomerID = stringValue(value)
	}
	domain.Serial = stringValue(data["serial"])
	domain.StdName = stringValue(data["stdname"])
	domain.Name = stringValue(data["name"])
	domain.Type = stringValue(data["type"])
	domain.LastModified = int64Value(data["lastmodified"])

	rawRecords, ok := data["records"].([]any)
	if !ok {
		return domain
	}
	domain.Records = make([]Record, 0, len(rawRecords))
	for _, rawRecord := range rawRecords {
		recordData, ok := rawRecord.(map[string]any)
		if !ok {
			continue
		}
		domain.Records = append(domain.Records, decodeRecord(recordData))
	}
	return domain
}
