package rackcorp

import "errors"

var (
	ErrAPICodeNotOK          = errors.New("API response code is not OK")
	ErrBaseURLNotValid       = errors.New("base URL is not valid")
	ErrCredentialNotSet      = errors.New("API credential is not set")
	ErrDomainReferenceNotSet = errors.New("neither domain id nor domain name is set")
	ErrHTTPStatusNotValid    = errors.New("HTTP status is not valid")
	ErrNoResultReceived      = errors.New("no result received")
	ErrRecordIDNotSet        = errors.New("record id is not set")
)
