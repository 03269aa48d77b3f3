package rackcorp

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptrTo[T any](value T) *T { return &value }

func Test_encodeRecord(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		record  Record
		encoded map[string]any
	}{
		"required fields only": {
			record: Record{
				Lookup: "www",
				Type:   A,
				Data:   "1.2.3.4",
			},
			encoded: map[string]any{
				"type":   "A",
				"lookup": "www",
				"data":   "1.2.3.4",
			},
		},
		"domain id under all three spellings": {
			record: Record{
				Lookup:   "_acme-challenge.foo",
				Type:     TXT,
				Data:     "token",
				DomainID: ptrTo("42"),
				// name must not be emitted when a domain id is set
				DomainName: ptrTo("example.com"),
			},
			encoded: map[string]any{
				"type":     "TXT",
				"lookup":   "_acme-challenge.foo",
				"data":     "token",
				"domainid": "42",
				"domainId": "42",
				"domainID": "42",
			},
		},
		"domain name fallback": {
			record: Record{
				Lookup:     "_acme-challenge.foo",
				Type:       TXT,
				Data:       "token",
				DomainName: ptrTo("example.com"),
			},
			encoded: map[string]any{
				"type":   "TXT",
				"lookup": "_acme-challenge.foo",
				"data":   "token",
				"name":   "example.com",
			},
		},
		"all optional fields set": {
			record: Record{
				Lookup:     "_sip._tcp",
				Type:       SRV,
				Data:       "sip.example.com",
				CAATag:     ptrTo("issue"),
				CAAFlag:    ptrTo(uint32(1)),
				CustomerID: ptrTo("5"),
				DomainID:   ptrTo("42"),
				ID:         ptrTo("77"),
				Port:       ptrTo(uint32(5060)),
				Priority:   ptrTo(uint32(10)),
				RegionID:   ptrTo("3"),
				TTL:        ptrTo(uint32(120)),
				Weight:     ptrTo(uint32(60)),
			},
			encoded: map[string]any{
				"type":       "SRV",
				"lookup":     "_sip._tcp",
				"data":       "sip.example.com",
				"caatag":     "issue",
				"caaflag":    uint32(1),
				"customerid": "5",
				"customerId": "5",
				"customerID": "5",
				"domainid":   "42",
				"domainId":   "42",
				"domainID":   "42",
				"id":         "77",
				"port":       uint32(5060),
				"priority":   uint32(10),
				"regionid":   "3",
				"regionId":   "3",
				"regionID":   "3",
				"ttl":        uint32(120),
				"weight":     uint32(60),
			},
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			encoded := encodeRecord(testCase.record)

			assert.Equal(t, testCase.encoded, encoded)
		})
	}
}

func Test_encodeRecord_omitsUnsetPort(t *testing.T) {
	t.Parallel()

	record := Record{Lookup: "www", Type: A, Data: "1.2.3.4"}
	encoded := encodeRecord(record)
	_, hasPort := encoded["port"]
	assert.False(t, hasPort)

	record.Port = ptrTo(uint32(5))
	encoded = encodeRecord(record)
	assert.Equal(t, uint32(5), encoded["port"])
}

func Test_decodeRecord(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		data   map[string]any
		record Record
	}{
		"first id spelling wins": {
			data: map[string]any{
				"lookup":   "www",
				"type":     "A",
				"data":     "1.2.3.4",
				"domainid": float64(1),
				"domainId": float64(2),
			},
			record: Record{
				Lookup:   "www",
				Type:     A,
				Data:     "1.2.3.4",
				DomainID: ptrTo("1"),
			},
		},
		"null id spelling skipped": {
			data: map[string]any{
				"lookup":   "www",
				"type":     "A",
				"data":     "1.2.3.4",
				"domainid": nil,
				"domainId": float64(2),
			},
			record: Record{
				Lookup:   "www",
				Type:     A,
				Data:     "1.2.3.4",
				DomainID: ptrTo("2"),
			},
		},
		"numeric and string ids": {
			data: map[string]any{
				"lookup": "www",
				"type":   "A",
				"data":   "1.2.3.4",
				"id":     float64(77),
				"ttl":    "300",
			},
			record: Record{
				Lookup: "www",
				Type:   A,
				Data:   "1.2.3.4",
				ID:     ptrTo("77"),
				TTL:    ptrTo(uint32(300)),
			},
		},
		"absent optional fields decode unset": {
			data: map[string]any{
				"lookup": "www",
				"type":   "A",
				"data":   "1.2.3.4",
			},
			record: Record{
				Lookup: "www",
				Type:   A,
				Data:   "1.2.3.4",
			},
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			record := decodeRecord(testCase.data)

			assert.Equal(t, testCase.record, record)
		})
	}
}

func Test_record_roundTrip(t *testing.T) {
	t.Parallel()

	record := Record{
		Lookup:     "_acme-challenge.foo",
		Type:       TXT,
		Data:       "token",
		CAATag:     ptrTo("issue"),
		CAAFlag:    ptrTo(uint32(0)),
		CustomerID: ptrTo("5"),
		DomainID:   ptrTo("42"),
		ID:         ptrTo("77"),
		Port:       ptrTo(uint32(8080)),
		Priority:   ptrTo(uint32(10)),
		RegionID:   ptrTo("3"),
		TTL:        ptrTo(uint32(120)),
		Weight:     ptrTo(uint32(1)),
	}

	// Through JSON to reproduce the wire types seen when decoding.
	b, err := json.Marshal(encodeRecord(record))
	require.NoError(t, err)
	var data map[string]any
	err = json.Unmarshal(b, &data)
	require.NoError(t, err)

	decoded := decodeRecord(data)

	assert.Equal(t, record, decoded)
}

func Test_decodeDomain(t *testing.T) {
	t.Parallel()

	testCases := map[string]struct {
		data   map[string]any
		domain Domain
	}{
		"without records": {
			data: map[string]any{
				"id":           float64(9),
				"customerId":   float64(5),
				"serial":       "2024010101",
				"stdname":      "example",
				"name":         "example.com",
				"type":         "MASTER",
				"lastmodified": float64(1700000000),
			},
			domain: Domain{
				ID:           "9",
				CustomerID:   "5",
				Serial:       "2024010101",
				StdName:      "example",
				Name:         "example.com",
				Type:         "MASTER",
				LastModified: 1700000000,
			},
		},
		"with records": {
			data: map[string]any{
				"id":   "9",
				"name": "example.com",
				"records": []any{
					map[string]any{
						"id":     "77",
						"lookup": "_acme-challenge.foo",
						"type":   "TXT",
						"data":   "token",
					},
				},
			},
			domain: Domain{
				ID:   "9",
				Name: "example.com",
				Records: []Record{{
					ID:     ptrTo("77"),
					Lookup: "_acme-challenge.foo",
					Type:   TXT,
					Data:   "token",
				}},
			},
		},
	}

	for name, testCase := range testCases {
		testCase := testCase
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			domain := decodeDomain(testCase.data)

			assert.Equal(t, testCase.domain, domain)
		})
	}
}
