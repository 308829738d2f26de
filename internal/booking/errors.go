package booking

import "errors"

var (
	ErrorAirportLegNotEditable = errors.New("airport leg is not editable")
	ErrorUnknownRole           = errors.New("unknown leg role")
	ErrorUnknownServiceType    = errors.New("unknown service type")
	ErrorUnknownTerminal       = errors.New("unknown terminal")
)
