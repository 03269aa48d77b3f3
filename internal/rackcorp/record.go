package rackcorp

// RecordType is the type of a DNS record, for example TXT.
type RecordType string

const (
	A       RecordType = "A"
	AHASHED RecordType = "AHASHED"
	AAAA    RecordType = "AAAA"
	CAA     RecordType = "CAA"
	CNAME   RecordType = "CNAME"
	MX      RecordType = "MX"
	NS      RecordType = "NS"
	PTR     RecordType = "PTR"
	TXT     RecordType = "TXT"
	SRV     RecordType = "SRV"
)

// Record is a single DNS resource record. Lookup, Type and Data are
// required; every pointer field is optional and left out of the wire
// payload when nil. The ID is assigned by the server and is the handle
// for updates and deletions.
type Record struct {
	Lookup     string
	Type       RecordType
	Data       string
	CAATag     *string
	CAAFlag    *uint32
	CustomerID *string
	DomainID   *string
	DomainName *string
	ID         *string
	Port       *uint32
	Priority   *uint32
	RegionID   *string
	TTL        *uint32
	Weight     *uint32
}

func (r Record) hasDomainReference() bool {
	return (r.DomainID != nil && *r.DomainID != "") ||
		(r.DomainName != nil && *r.DomainName != "")
}

// encodeRecord converts a record to its wire form. The API endpoints
// disagree on the casing of the id keys they read, so each id set is
// emitted under all three known spellings. A domain name is only sent
// as `name` when no domain id is set. Do not normalize any of this:
// it mirrors observed server behavior.
func encodeRecord(record Record) map[string]any {
	encoded := map[string]any{
		"type":   string(record.Type),
		"lookup": record.Lookup,
		"data":   record.Data,
	}

	switch {
	case record.DomainID != nil && *record.DomainID != "":
		encoded["domainid"] = *record.DomainID
		encoded["domainId"] = *record.DomainID
		encoded["domainID"] = *record.DomainID
	case record.DomainName != nil && *record.DomainName != "":
		encoded["name"] = *record.DomainName
	}

	if record.ID != nil {
		encoded["id"] = *record.ID
	}
	if record.CAATag != nil {
		encoded["caatag"] = *record.CAATag
	}
	if record.CAAFlag != nil {
		encoded["caaflag"] = *record.CAAFlag
	}
	if record.CustomerID != nil {
		encoded["customerid"] = *record.CustomerID
		encoded["customerId"] = *record.CustomerID
		encoded["customerID"] = *record.CustomerID
	}
	if record.Port != nil {
		encoded["port"] = *record.Port
	}
	if record.Priority != nil {
		encoded["priority"] = *record.Priority
	}
	if record.RegionID != nil {
		encoded["regionid"] = *record.RegionID
		encoded["regionId"] = *record.RegionID
		encoded["regionID"] = *record.RegionID
	}
	if record.TTL != nil {
		encoded["ttl"] = *record.TTL
	}
	if record.Weight != nil {
		encoded["weight"] = *record.Weight
	}

	return encoded
}

// decodeRecord converts a wire record to a Record, probing the id key
// spellings in a fixed priority order and taking the first one present.
func decodeRecord(data map[string]any) (record Record) {
	record.Lookup = stringValue(data["lookup"])
	record.Type = RecordType(stringValue(data["type"]))
	record.Data = stringValue(data["data"])
	record.CAATag = stringPtr(data, "caatag")
	record.CAAFlag = uint32Ptr(data, "caaflag")
	record.CustomerID = firstStringPtr(data, "customerid", "customerId", "customerID")
	record.DomainID = firstStringPtr(data, "domainid", "domainId", "domainID")
	record.DomainName = stringPtr(data, "name")
	record.ID = stringPtr(data, "id")
	record.Port = uint32Ptr(data, "port")
	record.Priority = uint32Ptr(data, "priority")
	record.RegionID = firstStringPtr(data, "regionid", "regionId", "regionID")
	record.TTL = uint32Ptr(data, "ttl")
	record.Weight = uint32Ptr(data, "weight")
	return record
}
