package domain

import (
	"regexp"
	"strings"
)

// CarrierInfo describes an ocean carrier identified by its ISO 6346 owner
// prefix. FleetPatterns lists vessel-name prefixes the carrier is known to
// operate, used when probing AIS sources for a representative vessel.
type CarrierInfo struct {
	Name          string
	Code          string
	TrackingURL   string
	FleetPatterns []string
}

// carriers maps ISO 6346 owner prefixes to the operating line.
var carriers = map[string]CarrierInfo{
	"MAEU": {Name: "Maersk Line", Code: "MAEU", TrackingURL: "https://www.maersk.com/tracking/", FleetPatterns: []string{"MAERSK", "MAERSK LINE"}},
	"MSCU": {Name: "Mediterranean Shipping Company (MSC)", Code: "MSCU", TrackingURL: "https://www.msc.com/track-a-shipment", FleetPatterns: []string{"MSC", "MEDITERRANEAN"}},
	"MSBU": {Name: "MSC", Code: "MSBU", TrackingURL: "https://www.msc.com/track-a-shipment", FleetPatterns: []string{"MSC", "MEDITERRANEAN"}},
	"MSNU": {Name: "MSC", Code: "MSNU", TrackingURL: "https://www.msc.com/track-a-shipment", FleetPatterns: []string{"MSC", "MEDITERRANEAN"}},
	"CMAU": {Name: "CMA CGM", Code: "CMAU", TrackingURL: "https://www.cma-cgm.com/ebusiness/tracking/", FleetPatterns: []string{"CMA CGM", "CMA"}},
	"HLCU": {Name: "Hapag-Lloyd", Code: "HLCU", TrackingURL: "https://www.hapag-lloyd.com/en/online-business/track/track-by-container.html?container=", FleetPatterns: []string{"HAPAG", "LLOYD"}},
	"OOLU": {Name: "OOCL", Code: "OOLU", TrackingURL: "https://www.oocl.com/eng/ourservices/eservices/cargotracking/Pages/cargotracking.aspx", FleetPatterns: []string{"OOCL"}},
	"CXCU": {Name: "COSCO Shipping", Code: "CXCU", TrackingURL: "https://elines.coscoshipping.com/ebusiness/cargoTracking", FleetPatterns: []string{"COSCO"}},
	"COSU": {Name: "COSCO Shipping", Code: "COSU", TrackingURL: "https://elines.coscoshipping.com/ebusiness/cargoTracking", FleetPatterns: []string{"COSCO"}},
	"EGLV": {Name: "Evergreen Line", Code: "EGLV", TrackingURL: "https://www.shipmentlink.com/servlet/TDB1_CargoTracking.do", FleetPatterns: []string{"EVERGREEN", "EVER"}},
	"EGHU": {Name: "Evergreen Line", Code: "EGHU", TrackingURL: "https://www.shipmentlink.com/servlet/TDB1_CargoTracking.do", FleetPatterns: []string{"EVERGREEN", "EVER"}},
	"YMLU": {Name: "Yang Ming", Code: "YMLU", TrackingURL: "https://www.yangming.com/e-service/track_trace/track_trace_cargo_tracking.aspx", FleetPatterns: []string{"YANG MING", "YM"}},
	"ONEY": {Name: "Ocean Network Express (ONE)", Code: "ONEY", TrackingURL: "https://ecomm.one-line.com/ecom/CUP_HOM_3301.do"},
	"ZIMU": {Name: "ZIM", Code: "ZIMU", TrackingURL: "https://www.zim.com/tools/track-a-shipment"},
	"HDMU": {Name: "Hyundai Merchant Marine (HMM)", Code: "HDMU", TrackingURL: "https://www.hmm21.com/e-service/track/trackDetail.do"},
	"PCIU": {Name: "Pacific International Lines (PIL)", Code: "PCIU", TrackingURL: "https://www.pilship.com/en--/120.html"},
	"WHLC": {Name: "Wan Hai Lines", Code: "WHLC", TrackingURL: "https://www.wanhai.com/views/cargoTrack/CargoTrack.xhtml"},
	"SEAU": {Name: "SeaLand", Code: "SEAU", TrackingURL: "https://www.sealandmaersk.com/tracking/", FleetPatterns: []string{"MAERSK"}},
	"APLU": {Name: "APL", Code: "APLU", TrackingURL: "https://www.apl.com/ebusiness/tracking"},
	"APZU": {Name: "APL", Code: "APZU", TrackingURL: "https://www.apl.com/ebusiness/tracking"},
	"MOLU": {Name: "Mitsui O.S.K. Lines (MOL)", Code: "MOLU", TrackingURL: "https://www.molpower.com/apps/tracking"},
	"NYKU": {Name: "NYK Line", Code: "NYKU", TrackingURL: "https://www2.nykline.com/eservice/tracking/"},
	"KKLU": {Name: "K Line", Code: "KKLU", TrackingURL: "https://www.kline.com/en/service/cargo-tracking"},
	"TEMU": {Name: "Turkon Line", Code: "TEMU", TrackingURL: "https://www.turkon.com/en/cargo-tracking"},
	"ARKU": {Name: "Arkas Line", Code: "ARKU", TrackingURL: "https://www.arkasline.com.tr/cargo-tracking"},
	"UASC": {Name: "UASC", Code: "UASC", TrackingURL: "https://www.hapag-lloyd.com/en/online-business/track/track-by-container.html?container=", FleetPatterns: []string{"HAPAG", "LLOYD"}},
	"SAFM": {Name: "Safmarine", Code: "SAFM", TrackingURL: "https://www.safmarine.com/tracking/", FleetPatterns: []string{"MAERSK"}},
	"SUDU": {Name: "Hamburg Süd", Code: "SUDU", TrackingURL: "https://www.hamburgsud-line.com/liner/en/liner_services/ecommerce/track_trace/index.html"},
	"ACLU": {Name: "Atlantic Container Line", Code: "ACLU", TrackingURL: "https://www.aclcargo.com/tools/cargo-tracking/"},
	"GESU": {Name: "Gold Star Line", Code: "GESU", TrackingURL: "https://www.goldstarline.com/tracking"},
	"TTNU": {Name: "Triton Container", Code: "TTNU", TrackingURL: "https://www.triton-container.com/"},
	"TRIU": {Name: "Triton Container", Code: "TRIU", TrackingURL: "https://www.triton-container.com/"},
	"TEXU": {Name: "Textainer", Code: "TEXU", TrackingURL: "https://www.textainer.com/"},
	"CAIU": {Name: "CAI International", Code: "CAIU", TrackingURL: "https://www.caplogistics.com/"},
	"FCIU": {Name: "Florens Container", Code: "FCIU", TrackingURL: "https://www.florens.com/"},
	"UNIU": {Name: "Unifeeder", Code: "UNIU", TrackingURL: "https://www.unifeeder.com/tracking"},
	"SMLU": {Name: "Samskip", Code: "SMLU", TrackingURL: "https://www.samskip.com/track-trace/"},
	"CRXU": {Name: "Crowley Maritime", Code: "CRXU", TrackingURL: "https://www.crowley.com/services/shipping-logistics/cargo-tracking/"},
	"MSKU": {Name: "Matson", Code: "MSKU", TrackingURL: "https://www.matson.com/shipment-tracking.html"},
}

// DetectCarrier resolves the operating line from a container number prefix.
// Unknown prefixes yield a generic entry so callers always get a display name.
func DetectCarrier(containerNumber string) CarrierInfo {
	if len(containerNumber) < 4 {
		return CarrierInfo{}
	}
	prefix := strings.ToUpper(containerNumber[:4])
	if c, ok := carriers[prefix]; ok {
		return c
	}
	return CarrierInfo{
		Name:        prefix + " Carrier",
		Code:        prefix,
		TrackingURL: "https://www.searates.com/container/tracking/?container=" + containerNumber,
	}
}

// CarrierTrackingURL returns the deep tracking link for a container number.
// Some carriers accept the container number directly in the URL.
func CarrierTrackingURL(containerNumber string) string {
	c := DetectCarrier(containerNumber)
	switch c.Code {
	case "HLCU", "MAEU", "SEAU", "SAFM", "UASC", "APZU", "APLU":
		return c.TrackingURL + containerNumber
	}
	return c.TrackingURL
}

// AirlineInfo describes an airline identified by its IATA code.
type AirlineInfo struct {
	Name        string
	Code        string
	TrackingURL string
}

var airlines = map[string]AirlineInfo{
	"AA": {Name: "American Airlines", Code: "AA", TrackingURL: "https://www.aa.com/reservation/flightTracking"},
	"DL": {Name: "Delta Air Lines", Code: "DL", TrackingURL: "https://www.delta.com/flight-status"},
	"UA": {Name: "United Airlines", Code: "UA", TrackingURL: "https://www.united.com/en/us/flight-status"},
	"BA": {Name: "British Airways", Code: "BA", TrackingURL: "https://www.britishairways.com/travel/flight-tracker"},
	"AF": {Name: "Air France", Code: "AF", TrackingURL: "https://www.airfrance.com/flight-status"},
	"LH": {Name: "Lufthansa", Code: "LH", TrackingURL: "https://www.lufthansa.com/flight-status"},
	"EK": {Name: "Emirates", Code: "EK", TrackingURL: "https://www.emirates.com/english/manage-booking/flight-status.aspx"},
	"QR": {Name: "Qatar Airways", Code: "QR", TrackingURL: "https://www.qatarairways.com/en/flight-status.html"},
	"EY": {Name: "Etihad Airways", Code: "EY", TrackingURL: "https://www.etihad.com/en/manage/flight-status"},
	"SV": {Name: "Saudia", Code: "SV", TrackingURL: "https://www.saudia.com/flight-status"},
	"MS": {Name: "EgyptAir", Code: "MS", TrackingURL: "https://www.egyptair.com/en/fly/flight-status"},
	"TK": {Name: "Turkish Airlines", Code: "TK", TrackingURL: "https://www.turkishairlines.com/en-int/flights/flight-status/"},
	"SQ": {Name: "Singapore Airlines", Code: "SQ", TrackingURL: "https://www.singaporeair.com/en_UK/plan-and-book/flight-status/"},
	"CX": {Name: "Cathay Pacific", Code: "CX", TrackingURL: "https://www.cathaypacific.com/cx/en_US/travel-information/flying-with-us/flight-status.html"},
	"NH": {Name: "All Nippon Airways (ANA)", Code: "NH", TrackingURL: "https://www.ana.co.jp/en/us/flight-status/"},
	"JL": {Name: "Japan Airlines (JAL)", Code: "JL", TrackingURL: "https://www.jal.co.jp/en/flight-status/"},
	"KE": {Name: "Korean Air", Code: "KE", TrackingURL: "https://www.koreanair.com/global/en/booking/flight-status.html"},
	"CA": {Name: "Air China", Code: "CA", TrackingURL: "https://www.airchina.us/US/GB/info/flight-info/flight-status/"},
	"MU": {Name: "China Eastern", Code: "MU", TrackingURL: "https://us.ceair.com/en/flight-status/"},
	"CZ": {Name: "China Southern", Code: "CZ", TrackingURL: "https://www.csair.com/en/tourguide/flight_service/flight_status/"},
	"QF": {Name: "Qantas", Code: "QF", TrackingURL: "https://www.qantas.com/us/en/flight-status.html"},
	"AC": {Name: "Air Canada", Code: "AC", TrackingURL: "https://www.aircanada.com/ca/en/aco/home/book/flight-status.html"},
	"LX": {Name: "Swiss International Air Lines", Code: "LX", TrackingURL: "https://www.swiss.com/us/en/prepare/flight-information/flight-status"},
	"KL": {Name: "KLM Royal Dutch Airlines", Code: "KL", TrackingURL: "https://www.klm.com/information/flight-information/flight-status"},
	"IB": {Name: "Iberia", Code: "IB", TrackingURL: "https://www.iberia.com/us/flight-status/"},
	"AY": {Name: "Finnair", Code: "AY", TrackingURL: "https://www.finnair.com/en/flight-status"},
	"SK": {Name: "SAS Scandinavian Airlines", Code: "SK", TrackingURL: "https://www.flysas.com/en/flight-status/"},
	"TP": {Name: "TAP Air Portugal", Code: "TP", TrackingURL: "https://www.flytap.com/en-us/flight-status"},
	"RJ": {Name: "Royal Jordanian", Code: "RJ", TrackingURL: "https://www.rj.com/en/info-and-tips/flight-status"},
	"ME": {Name: "Middle East Airlines", Code: "ME", TrackingURL: "https://www.mea.com.lb/english/flight-status"},
	"GF": {Name: "Gulf Air", Code: "GF", TrackingURL: "https://www.gulfair.com/flight-status"},
	"WY": {Name: "Oman Air", Code: "WY", TrackingURL: "https://www.omanair.com/en/flight-status"},
	"KU": {Name: "Kuwait Airways", Code: "KU", TrackingURL: "https://www.kuwaitairways.com/en/flight-status"},
	"FZ": {Name: "flydubai", Code: "FZ", TrackingURL: "https://www.flydubai.com/en/plan/flight-status/"},
	"XY": {Name: "flynas", Code: "XY", TrackingURL: "https://www.flynas.com/en/flight-status"},
	"AT": {Name: "Royal Air Maroc", Code: "AT", TrackingURL: "https://www.royalairmaroc.com/int-en/flight-status"},
}

var airlinePrefix = regexp.MustCompile(`^([A-Z]{2,3})`)

// DetectAirline resolves the airline from a flight number such as "EK123".
func DetectAirline(flightNumber string) AirlineInfo {
	m := airlinePrefix.FindStringSubmatch(strings.ToUpper(flightNumber))
	if m == nil {
		return AirlineInfo{}
	}
	code := m[1]
	if a, ok := airlines[code]; ok {
		return a
	}
	return AirlineInfo{
		Name:        code + " Airlines",
		Code:        code,
		TrackingURL: "https://www.flightstats.com/v2/flight-tracker/" + flightNumber,
	}
}
