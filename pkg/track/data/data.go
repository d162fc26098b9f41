// Package data holds the static lookup tables mapping upstream integer codes
// to display names. The tables are populated at package load time and never
// mutated afterwards, so they are safe to share without synchronization.
package data

import "strings"

// defaultName is returned for any code absent from a table.
const defaultName = "Unknown"

// carrierMap is a snapshot of the upstream carrier list.
var carrierMap = map[int]string{
	100001: "DHL",
	100002: "UPS",
	100003: "FedEx",
	100004: "TNT",
	100005: "GLS",
	100006: "DPD",
	100007: "Aramex",
	100008: "DHL eCommerce",
	100009: "DHL Express",
	100010: "UPS Mail Innovations",
	100011: "FedEx SmartPost",
	100012: "OnTrac",
	100013: "LaserShip",
	100014: "Yodel",
	100015: "Hermes",
	100016: "Purolator",
	100017: "Canpar",
	100018: "Estafeta",
	100019: "Chronopost",
	100020: "Colissimo",
	1151:   "Australia Post",
	1161:   "Austrian Post",
	2011:   "Belgium Post",
	2151:   "Brazil Correios",
	3011:   "China Post",
	3013:   "China EMS",
	3041:   "Canada Post",
	3071:   "Correos de Chile",
	4021:   "Czech Post",
	4031:   "Denmark Post",
	5051:   "Deutsche Post",
	5061:   "DHL Parcel NL",
	6021:   "Finland Posti",
	6051:   "La Poste",
	7041:   "Hong Kong Post",
	7051:   "Hungary Post",
	7071:   "India Post",
	7081:   "Indonesia Post",
	7091:   "Ireland An Post",
	7101:   "Israel Post",
	7111:   "Poste Italiane",
	8011:   "Japan Post",
	9011:   "Korea Post",
	10011:  "Malaysia Pos",
	10021:  "Mexico Post",
	10051:  "PostNL",
	10061:  "New Zealand Post",
	10071:  "Norway Posten",
	11011:  "Pakistan Post",
	11021:  "Philippines PHLPost",
	11025:  "Poczta Polska",
	11031:  "Royal Mail",
	11041:  "CTT Portugal",
	12051:  "Romania Post",
	12091:  "Russian Post",
	13001:  "Singapore Post",
	13011:  "Slovakia Post",
	13021:  "South Africa Post",
	14051:  "Correos Spain",
	15011:  "Sweden PostNord",
	15041:  "Swiss Post",
	16011:  "Taiwan Post",
	16021:  "Thailand Post",
	17011:  "PTT Turkey",
	18011:  "Ukrposhta",
	18021:  "Emirates Post",
	21051:  "USPS",
	22011:  "Vietnam Post",
	190008: "Cainiao",
	190012: "SF Express",
	190094: "Yanwen",
	190112: "YunExpress",
	190271: "4PX",
	190405: "J&T Express",
	190521: "Yun Da Express",
	190551: "ZTO Express",
}

// countryMap is a snapshot of the upstream country list.
var countryMap = map[int]string{
	301:  "China",
	303:  "Hong Kong",
	305:  "Macau",
	307:  "Taiwan",
	401:  "Japan",
	403:  "South Korea",
	405:  "Mongolia",
	407:  "North Korea",
	501:  "Singapore",
	503:  "Malaysia",
	505:  "Indonesia",
	507:  "Thailand",
	509:  "Vietnam",
	511:  "Philippines",
	513:  "Myanmar",
	515:  "Cambodia",
	517:  "Laos",
	519:  "Brunei",
	601:  "India",
	603:  "Pakistan",
	605:  "Bangladesh",
	607:  "Sri Lanka",
	609:  "Nepal",
	701:  "Israel",
	703:  "Saudi Arabia",
	705:  "United Arab Emirates",
	707:  "Qatar",
	709:  "Kuwait",
	711:  "Bahrain",
	713:  "Oman",
	715:  "Jordan",
	717:  "Lebanon",
	719:  "Iraq",
	721:  "Iran",
	801:  "Turkey",
	803:  "Cyprus",
	901:  "Kazakhstan",
	903:  "Uzbekistan",
	905:  "Georgia",
	907:  "Armenia",
	909:  "Azerbaijan",
	1001: "United Kingdom",
	1003: "Ireland",
	1005: "France",
	1007: "Germany",
	1009: "Netherlands",
	1011: "Belgium",
	1013: "Luxembourg",
	1015: "Switzerland",
	1017: "Austria",
	1019: "Spain",
	1021: "Portugal",
	1023: "Italy",
	1025: "Greece",
	1027: "Malta",
	1101: "Denmark",
	1103: "Norway",
	1105: "Sweden",
	1107: "Finland",
	1109: "Iceland",
	1201: "Poland",
	1203: "Czech Republic",
	1205: "Slovakia",
	1207: "Hungary",
	1209: "Romania",
	1211: "Bulgaria",
	1213: "Slovenia",
	1215: "Croatia",
	1217: "Serbia",
	1219: "Bosnia and Herzegovina",
	1221: "North Macedonia",
	1223: "Albania",
	1225: "Estonia",
	1227: "Latvia",
	1229: "Lithuania",
	1301: "Russia",
	1303: "Ukraine",
	1305: "Belarus",
	1307: "Moldova",
	1803: "United States",
	1805: "Canada",
	1807: "Mexico",
	1901: "Guatemala",
	1903: "Honduras",
	1905: "El Salvador",
	1907: "Nicaragua",
	1909: "Costa Rica",
	1911: "Panama",
	1913: "Cuba",
	1915: "Jamaica",
	1917: "Dominican Republic",
	2001: "Brazil",
	2003: "Argentina",
	2005: "Chile",
	2007: "Colombia",
	2009: "Peru",
	2011: "Venezuela",
	2013: "Ecuador",
	2015: "Bolivia",
	2017: "Paraguay",
	2019: "Uruguay",
	2101: "Australia",
	2103: "New Zealand",
	2105: "Fiji",
	2107: "Papua New Guinea",
	2201: "Egypt",
	2203: "South Africa",
	2205: "Nigeria",
	2207: "Kenya",
	2209: "Morocco",
	2211: "Algeria",
	2213: "Tunisia",
	2215: "Ghana",
	2217: "Ethiopia",
	2219: "Tanzania",
	2221: "Uganda",
}

// statusMap maps upstream package states to display names.
var statusMap = map[int]string{
	0:  "Not Found",
	10: "In Transit",
	20: "Expired",
	30: "Ready to be Picked Up",
	35: "Undelivered",
	40: "Delivered",
	50: "Returned",
}

// packageTypeMap maps upstream package types to display names.
var packageTypeMap = map[int]string{
	0: "Unknown",
	1: "Small Registered Package",
	2: "Registered Parcel",
	3: "EMS Package",
}

// Carrier resolves a carrier code to its display name.
func Carrier(code int) string {
	return lookup(carrierMap, code)
}

// Country resolves a country code to its display name.
func Country(code int) string {
	return lookup(countryMap, code)
}

// Status resolves a package state code to its display name.
func Status(code int) string {
	return lookup(statusMap, code)
}

// PackageType resolves a package type code to its display name.
func PackageType(code int) string {
	return lookup(packageTypeMap, code)
}

// StatusNames returns the display names of all known package states.
func StatusNames() []string {
	names := make([]string, 0, len(statusMap))
	for _, name := range statusMap {
		names = append(names, name)
	}
	return names
}

// CarrierKey resolves a carrier display name back to its upstream key using
// case-insensitive exact matching. The second return value reports whether a
// match was found.
func CarrierKey(name string) (int, bool) {
	for key, carrier := range carrierMap {
		if strings.EqualFold(carrier, name) {
			return key, true
		}
	}
	return 0, false
}

func lookup(table map[int]string, code int) string {
	if name, ok := table[code]; ok {
		return name
	}
	return defaultName
}
