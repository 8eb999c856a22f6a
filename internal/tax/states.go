package tax

import "strings"

// UnknownStateCode is the sentinel code for state names not in the GST table.
// Lookups never fail; an unknown state simply resolves to "00".
const UnknownStateCode = "00"

// stateCodes maps upper-cased state and union territory names to their
// 2-digit GST state codes (37 entries).
var stateCodes = map[string]string{
	"ANDHRA PRADESH":              "37",
	"ARUNACHAL PRADESH":           "12",
	"ASSAM":                       "18",
	"BIHAR":                       "10",
	"CHHATTISGARH":                "22",
	"GOA":                         "30",
	"GUJARAT":                     "24",
	"HARYANA":                     "06",
	"HIMACHAL PRADESH":            "02",
	"JHARKHAND":                   "20",
	"KARNATAKA":                   "29",
	"KERALA":                      "32",
	"MADHYA PRADESH":              "23",
	"MAHARASHTRA":                 "27",
	"MANIPUR":                     "14",
	"MEGHALAYA":                   "17",
	"MIZORAM":                     "15",
	"NAGALAND":                    "13",
	"ODISHA":                      "21",
	"PUNJAB":                      "03",
	"RAJASTHAN":                   "08",
	"SIKKIM":                      "11",
	"TAMIL NADU":                  "33",
	"TELANGANA":                   "36",
	"TRIPURA":                     "16",
	"UTTAR PRADESH":               "09",
	"UTTARAKHAND":                 "05",
	"WEST BENGAL":                 "19",
	"ANDAMAN AND NICOBAR ISLANDS": "35",
	"CHANDIGARH":                  "04",
	"DADRA AND NAGAR HAVELI":      "26",
	"DAMAN AND DIU":               "25",
	"DELHI":                       "07",
	"JAMMU AND KASHMIR":           "01",
	"LADAKH":                      "38",
	"LAKSHADWEEP":                 "31",
	"PUDUCHERRY":                  "34",
}

// validStateCodes holds the reverse set for GSTIN prefix checks.
var validStateCodes = func() map[string]bool {
	codes := make(map[string]bool, len(stateCodes))
	for _, c := range stateCodes {
		codes[c] = true
	}
	return codes
}()

// StateCode resolves a state name to its 2-digit GST code. Matching is
// case-insensitive and ignores surrounding whitespace. Unknown names
// resolve to UnknownStateCode.
func StateCode(stateName string) string {
	if code, ok := stateCodes[strings.ToUpper(strings.TrimSpace(stateName))]; ok {
		return code
	}
	return UnknownStateCode
}

// IsInterstate reports whether a supply from supplierState to placeOfSupply
// crosses state lines. Two unknown states both resolve to "00" and are
// therefore treated as the same jurisdiction; that matches the behavior
// downstream GST math was built against, so it is kept as-is.
func IsInterstate(supplierState, placeOfSupply string) bool {
	return StateCode(supplierState) != StateCode(placeOfSupply)
}

// KnownStateCode reports whether code is a valid 2-digit GST state code.
func KnownStateCode(code string) bool {
	return validStateCodes[code]
}
