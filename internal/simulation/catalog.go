package simulation

import "github.com/tigrisline/tracking-gateway/internal/core/domain"

// Route is one catalog entry: a plausible trade lane with the carrier
// currently serving it, its representative position, and the waypoints a map
// should draw. The catalogs are process-wide constants; selection is always
// Hash(identifier) modulo catalog size.
type Route struct {
	Origin      string
	Destination string
	Location    string
	Carrier     string
	Position    domain.Coordinates
	Waypoints   []domain.Coordinates
}

// SeaRoutes covers the ocean lanes the company serves, Gulf-centric first.
// Reordering or resizing this list changes every synthesized container
// record, so entries are append-only.
var SeaRoutes = []Route{
	{
		Origin:      "Shanghai, China",
		Destination: "Baghdad, Iraq",
		Location:    "Persian Gulf",
		Carrier:     "MAERSK SELETAR",
		Position:    domain.Coordinates{Lat: 29.5, Lng: 48.5},
		Waypoints:   []domain.Coordinates{{Lat: 31.2304, Lng: 121.4737}, {Lat: 1.3521, Lng: 103.8198}, {Lat: 29.5, Lng: 48.5}, {Lat: 30.5085, Lng: 47.7804}},
	},
	{
		Origin:      "Hamburg, Germany",
		Destination: "Basra, Iraq",
		Location:    "Arabian Gulf",
		Carrier:     "HAPAG IRAQ",
		Position:    domain.Coordinates{Lat: 28.5, Lng: 50.0},
		Waypoints:   []domain.Coordinates{{Lat: 53.5511, Lng: 9.9937}, {Lat: 27.8579, Lng: 34.2853}, {Lat: 28.5, Lng: 50.0}, {Lat: 30.5085, Lng: 47.7804}},
	},
	{
		Origin:      "Los Angeles, USA",
		Destination: "Jeddah, Saudi Arabia",
		Location:    "Red Sea",
		Carrier:     "EVER GIVEN",
		Position:    domain.Coordinates{Lat: 21.4858, Lng: 39.1925},
		Waypoints:   []domain.Coordinates{{Lat: 33.7501, Lng: -118.265}, {Lat: 8.9824, Lng: -79.5199}, {Lat: 27.8579, Lng: 34.2853}, {Lat: 21.4858, Lng: 39.1925}},
	},
	{
		Origin:      "Rotterdam, Netherlands",
		Destination: "Dammam, Saudi Arabia",
		Location:    "Suez Canal",
		Carrier:     "HAPAG LLOYD",
		Position:    domain.Coordinates{Lat: 30.0444, Lng: 32.34},
		Waypoints:   []domain.Coordinates{{Lat: 51.9244, Lng: 4.4777}, {Lat: 35.8989, Lng: 14.5146}, {Lat: 30.0444, Lng: 32.34}, {Lat: 26.4207, Lng: 50.0888}},
	},
	{
		Origin:      "Mumbai, India",
		Destination: "Dubai, UAE",
		Location:    "Arabian Sea",
		Carrier:     "MSC GULSUN",
		Position:    domain.Coordinates{Lat: 22.5, Lng: 64.2},
		Waypoints:   []domain.Coordinates{{Lat: 19.076, Lng: 72.8777}, {Lat: 22.5, Lng: 64.2}, {Lat: 25.0657, Lng: 55.1713}},
	},
	{
		Origin:      "Alexandria, Egypt",
		Destination: "Casablanca, Morocco",
		Location:    "Gibraltar Strait",
		Carrier:     "CMA CGM TITAN",
		Position:    domain.Coordinates{Lat: 36.1408, Lng: -5.3536},
		Waypoints:   []domain.Coordinates{{Lat: 31.2001, Lng: 29.9187}, {Lat: 36.1408, Lng: -5.3536}, {Lat: 33.5731, Lng: -7.5898}},
	},
	{
		Origin:      "Tokyo, Japan",
		Destination: "Muscat, Oman",
		Location:    "Indian Ocean",
		Carrier:     "NYK OLYMPUS",
		Position:    domain.Coordinates{Lat: 6.9271, Lng: 79.8612},
		Waypoints:   []domain.Coordinates{{Lat: 35.6762, Lng: 139.6503}, {Lat: 1.3521, Lng: 103.8198}, {Lat: 6.9271, Lng: 79.8612}, {Lat: 23.61, Lng: 58.54}},
	},
	{
		Origin:      "Rotterdam, Netherlands",
		Destination: "Kuwait City, Kuwait",
		Location:    "Mediterranean Sea",
		Carrier:     "COSCO GALAXY",
		Position:    domain.Coordinates{Lat: 35.8989, Lng: 14.5146},
		Waypoints:   []domain.Coordinates{{Lat: 51.9244, Lng: 4.4777}, {Lat: 35.8989, Lng: 14.5146}, {Lat: 27.8579, Lng: 34.2853}, {Lat: 29.3759, Lng: 47.9774}},
	},
	{
		Origin:      "Glasgow, Scotland",
		Destination: "Doha, Qatar",
		Location:    "Gulf of Aden",
		Carrier:     "EVERGREEN HARMONY",
		Position:    domain.Coordinates{Lat: 12.8628, Lng: 45.0355},
		Waypoints:   []domain.Coordinates{{Lat: 55.8642, Lng: -4.2518}, {Lat: 36.1408, Lng: -5.3536}, {Lat: 12.8628, Lng: 45.0355}, {Lat: 25.2854, Lng: 51.531}},
	},
	{
		Origin:      "Shanghai, China",
		Destination: "Aqaba, Jordan",
		Location:    "Red Sea",
		Carrier:     "OOCL BERLIN",
		Position:    domain.Coordinates{Lat: 23.5, Lng: 38.0},
		Waypoints:   []domain.Coordinates{{Lat: 31.2304, Lng: 121.4737}, {Lat: 1.3521, Lng: 103.8198}, {Lat: 23.5, Lng: 38.0}, {Lat: 29.5267, Lng: 35.0078}},
	},
	{
		Origin:      "New York, USA",
		Destination: "Beirut, Lebanon",
		Location:    "Eastern Mediterranean",
		Carrier:     "MSC OSCAR",
		Position:    domain.Coordinates{Lat: 34.5, Lng: 33.0},
		Waypoints:   []domain.Coordinates{{Lat: 40.7128, Lng: -74.006}, {Lat: 36.1408, Lng: -5.3536}, {Lat: 34.5, Lng: 33.0}, {Lat: 33.8938, Lng: 35.5018}},
	},
	{
		Origin:      "Guangzhou, China",
		Destination: "Amman (via Aqaba), Jordan",
		Location:    "Strait of Malacca",
		Carrier:     "YANG MING MARVEL",
		Position:    domain.Coordinates{Lat: 1.3521, Lng: 103.8198},
		Waypoints:   []domain.Coordinates{{Lat: 23.1291, Lng: 113.2644}, {Lat: 1.3521, Lng: 103.8198}, {Lat: 27.8579, Lng: 34.2853}, {Lat: 29.5267, Lng: 35.0078}},
	},
	{
		Origin:      "Barcelona, Spain",
		Destination: "Tunis, Tunisia",
		Location:    "Western Mediterranean",
		Carrier:     "MAERSK KOTKA",
		Position:    domain.Coordinates{Lat: 38.5, Lng: 5.0},
		Waypoints:   []domain.Coordinates{{Lat: 41.3851, Lng: 2.1734}, {Lat: 38.5, Lng: 5.0}, {Lat: 36.8065, Lng: 10.1815}},
	},
	{
		Origin:      "Marseille, France",
		Destination: "Algiers, Algeria",
		Location:    "Mediterranean Sea",
		Carrier:     "CMA CGM LIBERTY",
		Position:    domain.Coordinates{Lat: 38.0, Lng: 4.0},
		Waypoints:   []domain.Coordinates{{Lat: 43.2965, Lng: 5.3698}, {Lat: 38.0, Lng: 4.0}, {Lat: 36.7538, Lng: 3.0588}},
	},
	{
		Origin:      "Genoa, Italy",
		Destination: "Tripoli, Libya",
		Location:    "Tyrrhenian Sea",
		Carrier:     "EVERGREEN ELITE",
		Position:    domain.Coordinates{Lat: 39.5, Lng: 12.0},
		Waypoints:   []domain.Coordinates{{Lat: 44.4056, Lng: 8.9463}, {Lat: 39.5, Lng: 12.0}, {Lat: 32.8872, Lng: 13.1913}},
	},
	{
		Origin:      "Athens, Greece",
		Destination: "Alexandria, Egypt",
		Location:    "Eastern Mediterranean",
		Carrier:     "COSCO HOPE",
		Position:    domain.Coordinates{Lat: 33.0, Lng: 28.0},
		Waypoints:   []domain.Coordinates{{Lat: 37.9838, Lng: 23.7275}, {Lat: 33.0, Lng: 28.0}, {Lat: 31.2001, Lng: 29.9187}},
	},
	{
		Origin:      "Istanbul, Turkey",
		Destination: "Latakia, Syria",
		Location:    "Aegean Sea",
		Carrier:     "MSC MAYA",
		Position:    domain.Coordinates{Lat: 37.0, Lng: 28.0},
		Waypoints:   []domain.Coordinates{{Lat: 41.0082, Lng: 28.9784}, {Lat: 37.0, Lng: 28.0}, {Lat: 35.5317, Lng: 35.7917}},
	},
	{
		Origin:      "Singapore",
		Destination: "Erbil (via Basra), Iraq",
		Location:    "Gulf of Oman",
		Carrier:     "PIL SINGAPORE",
		Position:    domain.Coordinates{Lat: 24.5, Lng: 58.5},
		Waypoints:   []domain.Coordinates{{Lat: 1.3521, Lng: 103.8198}, {Lat: 24.5, Lng: 58.5}, {Lat: 30.5085, Lng: 47.7804}},
	},
	{
		Origin:      "Busan, South Korea",
		Destination: "Abu Dhabi, UAE",
		Location:    "Bay of Bengal",
		Carrier:     "HYUNDAI FAITH",
		Position:    domain.Coordinates{Lat: 10.0, Lng: 85.0},
		Waypoints:   []domain.Coordinates{{Lat: 35.1796, Lng: 129.0756}, {Lat: 1.3521, Lng: 103.8198}, {Lat: 10.0, Lng: 85.0}, {Lat: 24.4539, Lng: 54.3773}},
	},
	{
		Origin:      "Ho Chi Minh City, Vietnam",
		Destination: "Manama, Bahrain",
		Location:    "Arabian Sea",
		Carrier:     "EVERGREEN EVER",
		Position:    domain.Coordinates{Lat: 15.0, Lng: 68.0},
		Waypoints:   []domain.Coordinates{{Lat: 10.8231, Lng: 106.6297}, {Lat: 1.3521, Lng: 103.8198}, {Lat: 15.0, Lng: 68.0}, {Lat: 26.0667, Lng: 50.5577}},
	},
	{
		Origin:      "Manila, Philippines",
		Destination: "Salalah, Oman",
		Location:    "South China Sea",
		Carrier:     "PHILIPPINE STAR",
		Position:    domain.Coordinates{Lat: 8.0, Lng: 115.0},
		Waypoints:   []domain.Coordinates{{Lat: 14.5995, Lng: 120.9842}, {Lat: 8.0, Lng: 115.0}, {Lat: 1.3521, Lng: 103.8198}, {Lat: 17.0151, Lng: 54.0924}},
	},
	{
		Origin:      "New York, USA",
		Destination: "Sana'a (via Aden), Yemen",
		Location:    "Gulf of Aden",
		Carrier:     "ATLANTIC YEMEN",
		Position:    domain.Coordinates{Lat: 12.5, Lng: 44.0},
		Waypoints:   []domain.Coordinates{{Lat: 40.7128, Lng: -74.006}, {Lat: 36.1408, Lng: -5.3536}, {Lat: 27.8579, Lng: 34.2853}, {Lat: 12.5, Lng: 44.0}},
	},
	{
		Origin:      "London, UK",
		Destination: "Khartoum (via Port Sudan), Sudan",
		Location:    "Red Sea",
		Carrier:     "UK SUDAN EXPRESS",
		Position:    domain.Coordinates{Lat: 20.0, Lng: 38.0},
		Waypoints:   []domain.Coordinates{{Lat: 51.5074, Lng: -0.1278}, {Lat: 36.1408, Lng: -5.3536}, {Lat: 27.8579, Lng: 34.2853}, {Lat: 19.6158, Lng: 37.2164}},
	},
	{
		Origin:      "Tokyo, Japan",
		Destination: "Djibouti City, Djibouti",
		Location:    "Indian Ocean",
		Carrier:     "NYK DJIBOUTI",
		Position:    domain.Coordinates{Lat: 5.0, Lng: 55.0},
		Waypoints:   []domain.Coordinates{{Lat: 35.6762, Lng: 139.6503}, {Lat: 1.3521, Lng: 103.8198}, {Lat: 5.0, Lng: 55.0}, {Lat: 11.5886, Lng: 43.1456}},
	},
	{
		Origin:      "Hamburg, Germany",
		Destination: "Nouakchott, Mauritania",
		Location:    "Atlantic Ocean",
		Carrier:     "HAPAG MAURITANIA",
		Position:    domain.Coordinates{Lat: 20.0, Lng: -18.0},
		Waypoints:   []domain.Coordinates{{Lat: 53.5511, Lng: 9.9937}, {Lat: 36.1408, Lng: -5.3536}, {Lat: 20.0, Lng: -18.0}, {Lat: 18.0735, Lng: -15.9582}},
	},
	{
		Origin:      "Los Angeles, USA",
		Destination: "Shanghai, China",
		Location:    "Pacific Ocean",
		Carrier:     "COSCO SHIPPING",
		Position:    domain.Coordinates{Lat: 30.0, Lng: -150.0},
		Waypoints:   []domain.Coordinates{{Lat: 33.7501, Lng: -118.265}, {Lat: 30.0, Lng: -150.0}, {Lat: 31.2304, Lng: 121.4737}},
	},
	{
		Origin:      "Hamburg, Germany",
		Destination: "Ho Chi Minh City, Vietnam",
		Location:    "Indian Ocean",
		Carrier:     "HAPAG EXPRESS",
		Position:    domain.Coordinates{Lat: 5.0, Lng: 80.0},
		Waypoints:   []domain.Coordinates{{Lat: 53.5511, Lng: 9.9937}, {Lat: 27.8579, Lng: 34.2853}, {Lat: 5.0, Lng: 80.0}, {Lat: 10.8231, Lng: 106.6297}},
	},
	{
		Origin:      "New York, USA",
		Destination: "Tokyo, Japan",
		Location:    "North Pacific",
		Carrier:     "MOL TRIUMPH",
		Position:    domain.Coordinates{Lat: 40.0, Lng: -160.0},
		Waypoints:   []domain.Coordinates{{Lat: 40.7128, Lng: -74.006}, {Lat: 8.9824, Lng: -79.5199}, {Lat: 40.0, Lng: -160.0}, {Lat: 35.6762, Lng: 139.6503}},
	},
	{
		Origin:      "Rotterdam, Netherlands",
		Destination: "Singapore",
		Location:    "Strait of Malacca",
		Carrier:     "MAERSK MC-KINNEY",
		Position:    domain.Coordinates{Lat: 2.5, Lng: 100.0},
		Waypoints:   []domain.Coordinates{{Lat: 51.9244, Lng: 4.4777}, {Lat: 27.8579, Lng: 34.2853}, {Lat: 2.5, Lng: 100.0}, {Lat: 1.3521, Lng: 103.8198}},
	},
	{
		Origin:      "Jeddah, Saudi Arabia",
		Destination: "Jakarta, Indonesia",
		Location:    "Bay of Bengal",
		Carrier:     "SAUDI VOYAGER",
		Position:    domain.Coordinates{Lat: 5.0, Lng: 85.0},
		Waypoints:   []domain.Coordinates{{Lat: 21.4858, Lng: 39.1925}, {Lat: 12.8628, Lng: 45.0355}, {Lat: 5.0, Lng: 85.0}, {Lat: -6.2088, Lng: 106.8456}},
	},
	{
		Origin:      "Dubai, UAE",
		Destination: "Bangkok, Thailand",
		Location:    "Andaman Sea",
		Carrier:     "EMIRATES EXPRESS",
		Position:    domain.Coordinates{Lat: 8.0, Lng: 95.0},
		Waypoints:   []domain.Coordinates{{Lat: 25.0657, Lng: 55.1713}, {Lat: 19.076, Lng: 72.8777}, {Lat: 8.0, Lng: 95.0}, {Lat: 13.7563, Lng: 100.5018}},
	},
	{
		Origin:      "Busan, South Korea",
		Destination: "Mumbai, India",
		Location:    "South China Sea",
		Carrier:     "HYUNDAI SMART",
		Position:    domain.Coordinates{Lat: 12.0, Lng: 110.0},
		Waypoints:   []domain.Coordinates{{Lat: 35.1796, Lng: 129.0756}, {Lat: 22.3193, Lng: 114.1694}, {Lat: 12.0, Lng: 110.0}, {Lat: 19.076, Lng: 72.8777}},
	},
	{
		Origin:      "Shenzhen, China",
		Destination: "Colombo, Sri Lanka",
		Location:    "Bay of Bengal",
		Carrier:     "COSCO FAITH",
		Position:    domain.Coordinates{Lat: 8.0, Lng: 85.0},
		Waypoints:   []domain.Coordinates{{Lat: 22.5431, Lng: 114.0579}, {Lat: 1.3521, Lng: 103.8198}, {Lat: 8.0, Lng: 85.0}, {Lat: 6.9271, Lng: 79.8612}},
	},
	{
		Origin:      "Hanoi, Vietnam",
		Destination: "Karachi, Pakistan",
		Location:    "Arabian Sea",
		Carrier:     "VIETNAM GLORY",
		Position:    domain.Coordinates{Lat: 18.0, Lng: 70.0},
		Waypoints:   []domain.Coordinates{{Lat: 21.0278, Lng: 105.8342}, {Lat: 1.3521, Lng: 103.8198}, {Lat: 18.0, Lng: 70.0}, {Lat: 24.8607, Lng: 67.0011}},
	},
	{
		Origin:      "Los Angeles, USA",
		Destination: "Haiphong, Vietnam",
		Location:    "Pacific Ocean",
		Carrier:     "PACIFIC VIETNAM",
		Position:    domain.Coordinates{Lat: 25.0, Lng: 140.0},
		Waypoints:   []domain.Coordinates{{Lat: 33.7501, Lng: -118.265}, {Lat: 25.0, Lng: 140.0}, {Lat: 20.8449, Lng: 106.6881}},
	},
	{
		Origin:      "Rotterdam, Netherlands",
		Destination: "Manila, Philippines",
		Location:    "South China Sea",
		Carrier:     "MAERSK MANILA",
		Position:    domain.Coordinates{Lat: 10.0, Lng: 115.0},
		Waypoints:   []domain.Coordinates{{Lat: 51.9244, Lng: 4.4777}, {Lat: 27.8579, Lng: 34.2853}, {Lat: 1.3521, Lng: 103.8198}, {Lat: 14.5995, Lng: 120.9842}},
	},
	{
		Origin:      "New York, USA",
		Destination: "Kuala Lumpur (Port Klang), Malaysia",
		Location:    "Indian Ocean",
		Carrier:     "NYK MALAYSIA",
		Position:    domain.Coordinates{Lat: 5.0, Lng: 80.0},
		Waypoints:   []domain.Coordinates{{Lat: 40.7128, Lng: -74.006}, {Lat: 27.8579, Lng: 34.2853}, {Lat: 5.0, Lng: 80.0}, {Lat: 3.0738, Lng: 101.5183}},
	},
	{
		Origin:      "Shanghai, China",
		Destination: "Mombasa, Kenya",
		Location:    "Indian Ocean",
		Carrier:     "COSCO AFRICA",
		Position:    domain.Coordinates{Lat: -2.0, Lng: 55.0},
		Waypoints:   []domain.Coordinates{{Lat: 31.2304, Lng: 121.4737}, {Lat: 1.3521, Lng: 103.8198}, {Lat: -2.0, Lng: 55.0}, {Lat: -4.0435, Lng: 39.6682}},
	},
	{
		Origin:      "Rotterdam, Netherlands",
		Destination: "Cape Town, South Africa",
		Location:    "Atlantic Ocean",
		Carrier:     "MAERSK CAPE",
		Position:    domain.Coordinates{Lat: -15.0, Lng: -5.0},
		Waypoints:   []domain.Coordinates{{Lat: 51.9244, Lng: 4.4777}, {Lat: 14.6928, Lng: -17.4467}, {Lat: -15.0, Lng: -5.0}, {Lat: -33.9249, Lng: 18.4241}},
	},
	{
		Origin:      "Dubai, UAE",
		Destination: "Dar es Salaam, Tanzania",
		Location:    "Arabian Sea",
		Carrier:     "EMIRATES STAR",
		Position:    domain.Coordinates{Lat: 5.0, Lng: 50.0},
		Waypoints:   []domain.Coordinates{{Lat: 25.0657, Lng: 55.1713}, {Lat: 12.8628, Lng: 45.0355}, {Lat: 5.0, Lng: 50.0}, {Lat: -6.7924, Lng: 39.2083}},
	},
	{
		Origin:      "Marseille, France",
		Destination: "Lagos, Nigeria",
		Location:    "Gulf of Guinea",
		Carrier:     "CMA CGM LAGOS",
		Position:    domain.Coordinates{Lat: 4.0, Lng: 0.0},
		Waypoints:   []domain.Coordinates{{Lat: 43.2965, Lng: 5.3698}, {Lat: 36.1408, Lng: -5.3536}, {Lat: 4.0, Lng: 0.0}, {Lat: 6.5244, Lng: 3.3792}},
	},
	{
		Origin:      "Singapore",
		Destination: "Durban, South Africa",
		Location:    "Mozambique Channel",
		Carrier:     "PIL DURBAN",
		Position:    domain.Coordinates{Lat: -20.0, Lng: 40.0},
		Waypoints:   []domain.Coordinates{{Lat: 1.3521, Lng: 103.8198}, {Lat: -4.0435, Lng: 39.6682}, {Lat: -20.0, Lng: 40.0}, {Lat: -29.8587, Lng: 31.0218}},
	},
	{
		Origin:      "New York, USA",
		Destination: "Accra, Ghana",
		Location:    "Central Atlantic",
		Carrier:     "ATLANTIC CARGO",
		Position:    domain.Coordinates{Lat: 10.0, Lng: -25.0},
		Waypoints:   []domain.Coordinates{{Lat: 40.7128, Lng: -74.006}, {Lat: 10.0, Lng: -25.0}, {Lat: 5.6037, Lng: -0.187}},
	},
	{
		Origin:      "Hamburg, Germany",
		Destination: "Abidjan, Ivory Coast",
		Location:    "Atlantic Ocean",
		Carrier:     "HAPAG AFRICA",
		Position:    domain.Coordinates{Lat: 10.0, Lng: -10.0},
		Waypoints:   []domain.Coordinates{{Lat: 53.5511, Lng: 9.9937}, {Lat: 36.1408, Lng: -5.3536}, {Lat: 10.0, Lng: -10.0}, {Lat: 5.36, Lng: -4.0083}},
	},
	{
		Origin:      "Shanghai, China",
		Destination: "Maputo, Mozambique",
		Location:    "Indian Ocean",
		Carrier:     "COSCO MOZAMBIQUE",
		Position:    domain.Coordinates{Lat: -15.0, Lng: 50.0},
		Waypoints:   []domain.Coordinates{{Lat: 31.2304, Lng: 121.4737}, {Lat: 1.3521, Lng: 103.8198}, {Lat: -15.0, Lng: 50.0}, {Lat: -25.9692, Lng: 32.5732}},
	},
	{
		Origin:      "Shanghai, China",
		Destination: "Los Angeles, USA",
		Location:    "Mid Pacific",
		Carrier:     "EVERGREEN PACIFIC",
		Position:    domain.Coordinates{Lat: 35.0, Lng: -150.0},
		Waypoints:   []domain.Coordinates{{Lat: 31.2304, Lng: 121.4737}, {Lat: 35.6762, Lng: 139.6503}, {Lat: 35.0, Lng: -150.0}, {Lat: 33.7501, Lng: -118.265}},
	},
	{
		Origin:      "Hamburg, Germany",
		Destination: "New York, USA",
		Location:    "North Atlantic",
		Carrier:     "MSC ATLANTIC",
		Position:    domain.Coordinates{Lat: 45.0, Lng: -40.0},
		Waypoints:   []domain.Coordinates{{Lat: 53.5511, Lng: 9.9937}, {Lat: 51.5074, Lng: -0.1278}, {Lat: 45.0, Lng: -40.0}, {Lat: 40.7128, Lng: -74.006}},
	},
	{
		Origin:      "Dubai, UAE",
		Destination: "Houston, USA",
		Location:    "Caribbean Sea",
		Carrier:     "GULF EXPRESS",
		Position:    domain.Coordinates{Lat: 18.0, Lng: -75.0},
		Waypoints:   []domain.Coordinates{{Lat: 25.0657, Lng: 55.1713}, {Lat: 27.8579, Lng: 34.2853}, {Lat: 36.1408, Lng: -5.3536}, {Lat: 18.0, Lng: -75.0}, {Lat: 29.7604, Lng: -95.3698}},
	},
	{
		Origin:      "Tokyo, Japan",
		Destination: "Vancouver, Canada",
		Location:    "North Pacific",
		Carrier:     "NYK CANADA",
		Position:    domain.Coordinates{Lat: 45.0, Lng: -160.0},
		Waypoints:   []domain.Coordinates{{Lat: 35.6762, Lng: 139.6503}, {Lat: 45.0, Lng: -160.0}, {Lat: 49.2827, Lng: -123.1207}},
	},
	{
		Origin:      "Jeddah, Saudi Arabia",
		Destination: "Miami, USA",
		Location:    "Atlantic Ocean",
		Carrier:     "SAUDI ATLANTIC",
		Position:    domain.Coordinates{Lat: 25.0, Lng: -50.0},
		Waypoints:   []domain.Coordinates{{Lat: 21.4858, Lng: 39.1925}, {Lat: 27.8579, Lng: 34.2853}, {Lat: 36.1408, Lng: -5.3536}, {Lat: 25.0, Lng: -50.0}, {Lat: 25.7617, Lng: -80.1918}},
	},
	{
		Origin:      "Busan, South Korea",
		Destination: "Seattle, USA",
		Location:    "North Pacific",
		Carrier:     "HYUNDAI SEATTLE",
		Position:    domain.Coordinates{Lat: 45.0, Lng: -170.0},
		Waypoints:   []domain.Coordinates{{Lat: 35.1796, Lng: 129.0756}, {Lat: 45.0, Lng: -170.0}, {Lat: 47.6062, Lng: -122.3321}},
	},
	{
		Origin:      "Ho Chi Minh City, Vietnam",
		Destination: "Long Beach, USA",
		Location:    "Pacific Ocean",
		Carrier:     "VIETNAM PACIFIC",
		Position:    domain.Coordinates{Lat: 30.0, Lng: -140.0},
		Waypoints:   []domain.Coordinates{{Lat: 10.8231, Lng: 106.6297}, {Lat: 30.0, Lng: -140.0}, {Lat: 33.7701, Lng: -118.1937}},
	},
	{
		Origin:      "Shanghai, China",
		Destination: "Santos, Brazil",
		Location:    "South Atlantic",
		Carrier:     "COSCO BRASIL",
		Position:    domain.Coordinates{Lat: -15.0, Lng: -25.0},
		Waypoints:   []domain.Coordinates{{Lat: 31.2304, Lng: 121.4737}, {Lat: 1.3521, Lng: 103.8198}, {Lat: -33.9249, Lng: 18.4241}, {Lat: -15.0, Lng: -25.0}, {Lat: -23.9608, Lng: -46.3336}},
	},
	{
		Origin:      "Rotterdam, Netherlands",
		Destination: "Buenos Aires, Argentina",
		Location:    "South Atlantic",
		Carrier:     "MAERSK ARGENTINA",
		Position:    domain.Coordinates{Lat: -25.0, Lng: -35.0},
		Waypoints:   []domain.Coordinates{{Lat: 51.9244, Lng: 4.4777}, {Lat: 14.6928, Lng: -17.4467}, {Lat: -25.0, Lng: -35.0}, {Lat: -34.6037, Lng: -58.3816}},
	},
	{
		Origin:      "Los Angeles, USA",
		Destination: "Valparaiso, Chile",
		Location:    "Eastern Pacific",
		Carrier:     "PACIFIC CHILE",
		Position:    domain.Coordinates{Lat: -10.0, Lng: -90.0},
		Waypoints:   []domain.Coordinates{{Lat: 33.7501, Lng: -118.265}, {Lat: 8.9824, Lng: -79.5199}, {Lat: -10.0, Lng: -90.0}, {Lat: -33.0472, Lng: -71.6127}},
	},
	{
		Origin:      "Hamburg, Germany",
		Destination: "Lima (Callao), Peru",
		Location:    "Caribbean Sea",
		Carrier:     "HAPAG PERU",
		Position:    domain.Coordinates{Lat: 10.0, Lng: -75.0},
		Waypoints:   []domain.Coordinates{{Lat: 53.5511, Lng: 9.9937}, {Lat: 10.0, Lng: -75.0}, {Lat: 8.9824, Lng: -79.5199}, {Lat: -12.0464, Lng: -77.0428}},
	},
	{
		Origin:      "Dubai, UAE",
		Destination: "Cartagena, Colombia",
		Location:    "Central Atlantic",
		Carrier:     "EMIRATES COLOMBIA",
		Position:    domain.Coordinates{Lat: 5.0, Lng: -40.0},
		Waypoints:   []domain.Coordinates{{Lat: 25.0657, Lng: 55.1713}, {Lat: 27.8579, Lng: 34.2853}, {Lat: 36.1408, Lng: -5.3536}, {Lat: 5.0, Lng: -40.0}, {Lat: 10.391, Lng: -75.4794}},
	},
	{
		Origin:      "Tokyo, Japan",
		Destination: "Guayaquil, Ecuador",
		Location:    "Pacific Ocean",
		Carrier:     "NYK ECUADOR",
		Position:    domain.Coordinates{Lat: 5.0, Lng: -100.0},
		Waypoints:   []domain.Coordinates{{Lat: 35.6762, Lng: 139.6503}, {Lat: 5.0, Lng: -100.0}, {Lat: -2.171, Lng: -79.9224}},
	},
	{
		Origin:      "New York, USA",
		Destination: "Montevideo, Uruguay",
		Location:    "South Atlantic",
		Carrier:     "MSC URUGUAY",
		Position:    domain.Coordinates{Lat: -20.0, Lng: -40.0},
		Waypoints:   []domain.Coordinates{{Lat: 40.7128, Lng: -74.006}, {Lat: 0.0, Lng: -30.0}, {Lat: -20.0, Lng: -40.0}, {Lat: -34.9011, Lng: -56.1645}},
	},
	{
		Origin:      "Shanghai, China",
		Destination: "Rotterdam, Netherlands",
		Location:    "Indian Ocean",
		Carrier:     "COSCO EUROPE",
		Position:    domain.Coordinates{Lat: 10.0, Lng: 75.0},
		Waypoints:   []domain.Coordinates{{Lat: 31.2304, Lng: 121.4737}, {Lat: 1.3521, Lng: 103.8198}, {Lat: 10.0, Lng: 75.0}, {Lat: 27.8579, Lng: 34.2853}, {Lat: 51.9244, Lng: 4.4777}},
	},
	{
		Origin:      "Los Angeles, USA",
		Destination: "Hamburg, Germany",
		Location:    "North Atlantic",
		Carrier:     "MSC EUROPA",
		Position:    domain.Coordinates{Lat: 50.0, Lng: -30.0},
		Waypoints:   []domain.Coordinates{{Lat: 33.7501, Lng: -118.265}, {Lat: 8.9824, Lng: -79.5199}, {Lat: 50.0, Lng: -30.0}, {Lat: 53.5511, Lng: 9.9937}},
	},
	{
		Origin:      "Dubai, UAE",
		Destination: "Barcelona, Spain",
		Location:    "Western Mediterranean",
		Carrier:     "EMIRATES BARCELONA",
		Position:    domain.Coordinates{Lat: 37.0, Lng: 2.0},
		Waypoints:   []domain.Coordinates{{Lat: 25.0657, Lng: 55.1713}, {Lat: 27.8579, Lng: 34.2853}, {Lat: 37.0, Lng: 2.0}, {Lat: 41.3851, Lng: 2.1734}},
	},
	{
		Origin:      "Tokyo, Japan",
		Destination: "Antwerp, Belgium",
		Location:    "Arabian Sea",
		Carrier:     "NYK BELGIUM",
		Position:    domain.Coordinates{Lat: 15.0, Lng: 60.0},
		Waypoints:   []domain.Coordinates{{Lat: 35.6762, Lng: 139.6503}, {Lat: 1.3521, Lng: 103.8198}, {Lat: 15.0, Lng: 60.0}, {Lat: 27.8579, Lng: 34.2853}, {Lat: 51.2194, Lng: 4.4025}},
	},
	{
		Origin:      "Singapore",
		Destination: "London, UK",
		Location:    "Bay of Biscay",
		Carrier:     "PIL LONDON",
		Position:    domain.Coordinates{Lat: 45.0, Lng: -5.0},
		Waypoints:   []domain.Coordinates{{Lat: 1.3521, Lng: 103.8198}, {Lat: 27.8579, Lng: 34.2853}, {Lat: 36.1408, Lng: -5.3536}, {Lat: 45.0, Lng: -5.0}, {Lat: 51.5074, Lng: -0.1278}},
	},
	{
		Origin:      "Mumbai, India",
		Destination: "Piraeus, Greece",
		Location:    "Eastern Mediterranean",
		Carrier:     "INDIA GREECE",
		Position:    domain.Coordinates{Lat: 33.0, Lng: 30.0},
		Waypoints:   []domain.Coordinates{{Lat: 19.076, Lng: 72.8777}, {Lat: 27.8579, Lng: 34.2853}, {Lat: 33.0, Lng: 30.0}, {Lat: 37.9415, Lng: 23.647}},
	},
	{
		Origin:      "Jeddah, Saudi Arabia",
		Destination: "Genoa, Italy",
		Location:    "Tyrrhenian Sea",
		Carrier:     "SAUDI ITALIA",
		Position:    domain.Coordinates{Lat: 40.0, Lng: 12.0},
		Waypoints:   []domain.Coordinates{{Lat: 21.4858, Lng: 39.1925}, {Lat: 27.8579, Lng: 34.2853}, {Lat: 40.0, Lng: 12.0}, {Lat: 44.4056, Lng: 8.9463}},
	},
	{
		Origin:      "Busan, South Korea",
		Destination: "Gdansk, Poland",
		Location:    "Baltic Sea",
		Carrier:     "HYUNDAI BALTIC",
		Position:    domain.Coordinates{Lat: 55.0, Lng: 15.0},
		Waypoints:   []domain.Coordinates{{Lat: 35.1796, Lng: 129.0756}, {Lat: 1.3521, Lng: 103.8198}, {Lat: 27.8579, Lng: 34.2853}, {Lat: 55.0, Lng: 15.0}, {Lat: 54.352, Lng: 18.6466}},
	},
	{
		Origin:      "Ho Chi Minh City, Vietnam",
		Destination: "Lisbon, Portugal",
		Location:    "Atlantic Ocean",
		Carrier:     "VIETNAM PORTUGAL",
		Position:    domain.Coordinates{Lat: 35.0, Lng: -15.0},
		Waypoints:   []domain.Coordinates{{Lat: 10.8231, Lng: 106.6297}, {Lat: 1.3521, Lng: 103.8198}, {Lat: 27.8579, Lng: 34.2853}, {Lat: 35.0, Lng: -15.0}, {Lat: 38.7223, Lng: -9.1393}},
	},
	{
		Origin:      "Baghdad, Iraq",
		Destination: "Dublin, Ireland",
		Location:    "English Channel",
		Carrier:     "IRAQ IRELAND EXPRESS",
		Position:    domain.Coordinates{Lat: 50.0, Lng: -3.0},
		Waypoints:   []domain.Coordinates{{Lat: 30.5085, Lng: 47.7804}, {Lat: 27.8579, Lng: 34.2853}, {Lat: 36.1408, Lng: -5.3536}, {Lat: 50.0, Lng: -3.0}, {Lat: 53.3498, Lng: -6.2603}},
	},
	{
		Origin:      "Alexandria, Egypt",
		Destination: "Oslo, Norway",
		Location:    "North Sea",
		Carrier:     "NORDIC NILE",
		Position:    domain.Coordinates{Lat: 58.0, Lng: 5.0},
		Waypoints:   []domain.Coordinates{{Lat: 31.2001, Lng: 29.9187}, {Lat: 36.1408, Lng: -5.3536}, {Lat: 58.0, Lng: 5.0}, {Lat: 59.9139, Lng: 10.7522}},
	},
}

// AirRoutes is the air-cargo counterpart of SeaRoutes; Carrier holds a flight
// designator instead of a vessel name. Append-only for the same reason.
var AirRoutes = []Route{
	{
		Origin:      "Beijing, China",
		Destination: "Baghdad, Iraq",
		Location:    "Over Iran",
		Carrier:     "CA 941",
		Position:    domain.Coordinates{Lat: 32.5, Lng: 51.0},
		Waypoints:   []domain.Coordinates{{Lat: 40.0801, Lng: 116.5846}, {Lat: 32.5, Lng: 51.0}, {Lat: 33.2625, Lng: 44.2346}},
	},
	{
		Origin:      "Frankfurt, Germany",
		Destination: "Basra, Iraq",
		Location:    "Over Turkey",
		Carrier:     "LH 600",
		Position:    domain.Coordinates{Lat: 38.5, Lng: 35.0},
		Waypoints:   []domain.Coordinates{{Lat: 50.0379, Lng: 8.5622}, {Lat: 38.5, Lng: 35.0}, {Lat: 30.5494, Lng: 47.6617}},
	},
	{
		Origin:      "Dubai, UAE",
		Destination: "Erbil, Iraq",
		Location:    "Over Persian Gulf",
		Carrier:     "EK 945",
		Position:    domain.Coordinates{Lat: 28.0, Lng: 50.0},
		Waypoints:   []domain.Coordinates{{Lat: 25.2532, Lng: 55.3657}, {Lat: 28.0, Lng: 50.0}, {Lat: 36.2378, Lng: 43.9633}},
	},
	{
		Origin:      "London, UK",
		Destination: "Jeddah, Saudi Arabia",
		Location:    "Over Mediterranean",
		Carrier:     "BA 263",
		Position:    domain.Coordinates{Lat: 35.0, Lng: 25.0},
		Waypoints:   []domain.Coordinates{{Lat: 51.47, Lng: -0.4543}, {Lat: 35.0, Lng: 25.0}, {Lat: 21.6796, Lng: 39.1564}},
	},
	{
		Origin:      "Paris, France",
		Destination: "Riyadh, Saudi Arabia",
		Location:    "Over Egypt",
		Carrier:     "AF 254",
		Position:    domain.Coordinates{Lat: 28.0, Lng: 32.0},
		Waypoints:   []domain.Coordinates{{Lat: 49.0097, Lng: 2.5479}, {Lat: 28.0, Lng: 32.0}, {Lat: 24.9574, Lng: 46.6989}},
	},
	{
		Origin:      "Istanbul, Turkey",
		Destination: "Kuwait City, Kuwait",
		Location:    "Over Iraq",
		Carrier:     "TK 772",
		Position:    domain.Coordinates{Lat: 33.0, Lng: 43.0},
		Waypoints:   []domain.Coordinates{{Lat: 41.2753, Lng: 28.7519}, {Lat: 33.0, Lng: 43.0}, {Lat: 29.2263, Lng: 47.9689}},
	},
	{
		Origin:      "New York, USA",
		Destination: "Doha, Qatar",
		Location:    "Over Atlantic",
		Carrier:     "QR 702",
		Position:    domain.Coordinates{Lat: 45.0, Lng: -30.0},
		Waypoints:   []domain.Coordinates{{Lat: 40.6413, Lng: -73.7781}, {Lat: 45.0, Lng: -30.0}, {Lat: 35.0, Lng: 15.0}, {Lat: 25.2731, Lng: 51.608}},
	},
	{
		Origin:      "Singapore",
		Destination: "Abu Dhabi, UAE",
		Location:    "Over India",
		Carrier:     "SQ 494",
		Position:    domain.Coordinates{Lat: 20.0, Lng: 75.0},
		Waypoints:   []domain.Coordinates{{Lat: 1.3644, Lng: 103.9915}, {Lat: 20.0, Lng: 75.0}, {Lat: 24.4331, Lng: 54.6511}},
	},
	{
		Origin:      "Tokyo, Japan",
		Destination: "Dubai, UAE",
		Location:    "Over India",
		Carrier:     "EK 319",
		Position:    domain.Coordinates{Lat: 22.0, Lng: 78.0},
		Waypoints:   []domain.Coordinates{{Lat: 35.5494, Lng: 139.7798}, {Lat: 22.0, Lng: 78.0}, {Lat: 25.2532, Lng: 55.3657}},
	},
	{
		Origin:      "Cairo, Egypt",
		Destination: "Amman, Jordan",
		Location:    "Over Sinai",
		Carrier:     "MS 505",
		Position:    domain.Coordinates{Lat: 30.0, Lng: 34.0},
		Waypoints:   []domain.Coordinates{{Lat: 30.1219, Lng: 31.4056}, {Lat: 30.0, Lng: 34.0}, {Lat: 31.7227, Lng: 35.9932}},
	},
	{
		Origin:      "Rome, Italy",
		Destination: "Beirut, Lebanon",
		Location:    "Over Greece",
		Carrier:     "AZ 804",
		Position:    domain.Coordinates{Lat: 38.0, Lng: 23.0},
		Waypoints:   []domain.Coordinates{{Lat: 41.8003, Lng: 12.2389}, {Lat: 38.0, Lng: 23.0}, {Lat: 33.8206, Lng: 35.4883}},
	},
	{
		Origin:      "Mumbai, India",
		Destination: "Muscat, Oman",
		Location:    "Over Arabian Sea",
		Carrier:     "AI 945",
		Position:    domain.Coordinates{Lat: 22.0, Lng: 65.0},
		Waypoints:   []domain.Coordinates{{Lat: 19.0896, Lng: 72.8656}, {Lat: 22.0, Lng: 65.0}, {Lat: 23.5933, Lng: 58.2844}},
	},
	{
		Origin:      "Madrid, Spain",
		Destination: "Casablanca, Morocco",
		Location:    "Over Gibraltar",
		Carrier:     "IB 3901",
		Position:    domain.Coordinates{Lat: 36.0, Lng: -5.5},
		Waypoints:   []domain.Coordinates{{Lat: 40.4719, Lng: -3.5626}, {Lat: 36.0, Lng: -5.5}, {Lat: 33.3676, Lng: -7.5898}},
	},
	{
		Origin:      "Athens, Greece",
		Destination: "Alexandria, Egypt",
		Location:    "Over Mediterranean",
		Carrier:     "A3 928",
		Position:    domain.Coordinates{Lat: 33.5, Lng: 28.0},
		Waypoints:   []domain.Coordinates{{Lat: 37.9364, Lng: 23.9445}, {Lat: 33.5, Lng: 28.0}, {Lat: 31.2001, Lng: 29.9187}},
	},
	{
		Origin:      "Tunis, Tunisia",
		Destination: "Algiers, Algeria",
		Location:    "Over Mediterranean",
		Carrier:     "TU 701",
		Position:    domain.Coordinates{Lat: 37.0, Lng: 5.0},
		Waypoints:   []domain.Coordinates{{Lat: 36.851, Lng: 10.2272}, {Lat: 37.0, Lng: 5.0}, {Lat: 36.691, Lng: 3.2154}},
	},
	{
		Origin:      "Khartoum, Sudan",
		Destination: "Djibouti City, Djibouti",
		Location:    "Over Red Sea",
		Carrier:     "SD 408",
		Position:    domain.Coordinates{Lat: 14.0, Lng: 40.0},
		Waypoints:   []domain.Coordinates{{Lat: 15.5897, Lng: 32.5599}, {Lat: 14.0, Lng: 40.0}, {Lat: 11.5475, Lng: 43.1594}},
	},
	{
		Origin:      "Damascus, Syria",
		Destination: "Baghdad, Iraq",
		Location:    "Over Desert",
		Carrier:     "RB 101",
		Position:    domain.Coordinates{Lat: 33.5, Lng: 40.0},
		Waypoints:   []domain.Coordinates{{Lat: 33.4119, Lng: 36.5155}, {Lat: 33.5, Lng: 40.0}, {Lat: 33.2625, Lng: 44.2346}},
	},
	{
		Origin:      "Sana'a, Yemen",
		Destination: "Cairo, Egypt",
		Location:    "Over Red Sea",
		Carrier:     "IY 322",
		Position:    domain.Coordinates{Lat: 18.0, Lng: 38.0},
		Waypoints:   []domain.Coordinates{{Lat: 15.4769, Lng: 44.1169}, {Lat: 18.0, Lng: 38.0}, {Lat: 30.1219, Lng: 31.4056}},
	},
	{
		Origin:      "Tripoli, Libya",
		Destination: "Tunis, Tunisia",
		Location:    "Over Mediterranean",
		Carrier:     "LN 105",
		Position:    domain.Coordinates{Lat: 35.0, Lng: 12.0},
		Waypoints:   []domain.Coordinates{{Lat: 32.6635, Lng: 13.159}, {Lat: 35.0, Lng: 12.0}, {Lat: 36.851, Lng: 10.2272}},
	},
	{
		Origin:      "Nouakchott, Mauritania",
		Destination: "Casablanca, Morocco",
		Location:    "Over Atlantic",
		Carrier:     "MR 201",
		Position:    domain.Coordinates{Lat: 22.0, Lng: -14.0},
		Waypoints:   []domain.Coordinates{{Lat: 18.0969, Lng: -15.9582}, {Lat: 22.0, Lng: -14.0}, {Lat: 33.3676, Lng: -7.5898}},
	},
	{
		Origin:      "Los Angeles, USA",
		Destination: "Shanghai, China",
		Location:    "Over Pacific",
		Carrier:     "CA 988",
		Position:    domain.Coordinates{Lat: 40.0, Lng: -160.0},
		Waypoints:   []domain.Coordinates{{Lat: 33.9416, Lng: -118.4085}, {Lat: 40.0, Lng: -160.0}, {Lat: 31.1443, Lng: 121.8083}},
	},
	{
		Origin:      "Frankfurt, Germany",
		Destination: "Ho Chi Minh City, Vietnam",
		Location:    "Over India",
		Carrier:     "LH 782",
		Position:    domain.Coordinates{Lat: 25.0, Lng: 80.0},
		Waypoints:   []domain.Coordinates{{Lat: 50.0379, Lng: 8.5622}, {Lat: 25.0, Lng: 80.0}, {Lat: 10.8188, Lng: 106.6519}},
	},
	{
		Origin:      "New York, USA",
		Destination: "Tokyo, Japan",
		Location:    "Over Alaska",
		Carrier:     "JL 006",
		Position:    domain.Coordinates{Lat: 60.0, Lng: -150.0},
		Waypoints:   []domain.Coordinates{{Lat: 40.6413, Lng: -73.7781}, {Lat: 60.0, Lng: -150.0}, {Lat: 35.5494, Lng: 139.7798}},
	},
	{
		Origin:      "London, UK",
		Destination: "Singapore",
		Location:    "Over India",
		Carrier:     "BA 11",
		Position:    domain.Coordinates{Lat: 22.0, Lng: 78.0},
		Waypoints:   []domain.Coordinates{{Lat: 51.47, Lng: -0.4543}, {Lat: 22.0, Lng: 78.0}, {Lat: 1.3644, Lng: 103.9915}},
	},
	{
		Origin:      "Dubai, UAE",
		Destination: "Jakarta, Indonesia",
		Location:    "Over India",
		Carrier:     "EK 368",
		Position:    domain.Coordinates{Lat: 15.0, Lng: 80.0},
		Waypoints:   []domain.Coordinates{{Lat: 25.2532, Lng: 55.3657}, {Lat: 15.0, Lng: 80.0}, {Lat: -6.1256, Lng: 106.6559}},
	},
	{
		Origin:      "Seoul, South Korea",
		Destination: "Bangkok, Thailand",
		Location:    "Over South China Sea",
		Carrier:     "KE 651",
		Position:    domain.Coordinates{Lat: 18.0, Lng: 110.0},
		Waypoints:   []domain.Coordinates{{Lat: 37.4602, Lng: 126.4407}, {Lat: 18.0, Lng: 110.0}, {Lat: 13.69, Lng: 100.7501}},
	},
	{
		Origin:      "Hong Kong",
		Destination: "Mumbai, India",
		Location:    "Over Bay of Bengal",
		Carrier:     "CX 663",
		Position:    domain.Coordinates{Lat: 18.0, Lng: 85.0},
		Waypoints:   []domain.Coordinates{{Lat: 22.308, Lng: 113.9185}, {Lat: 18.0, Lng: 85.0}, {Lat: 19.0896, Lng: 72.8656}},
	},
	{
		Origin:      "Guangzhou, China",
		Destination: "Colombo, Sri Lanka",
		Location:    "Over Bay of Bengal",
		Carrier:     "CZ 349",
		Position:    domain.Coordinates{Lat: 12.0, Lng: 85.0},
		Waypoints:   []domain.Coordinates{{Lat: 23.3924, Lng: 113.2988}, {Lat: 12.0, Lng: 85.0}, {Lat: 7.1808, Lng: 79.8841}},
	},
	{
		Origin:      "Hanoi, Vietnam",
		Destination: "Karachi, Pakistan",
		Location:    "Over India",
		Carrier:     "VN 785",
		Position:    domain.Coordinates{Lat: 22.0, Lng: 75.0},
		Waypoints:   []domain.Coordinates{{Lat: 21.2187, Lng: 105.8019}, {Lat: 22.0, Lng: 75.0}, {Lat: 24.9056, Lng: 67.1608}},
	},
	{
		Origin:      "Manila, Philippines",
		Destination: "Kuala Lumpur, Malaysia",
		Location:    "Over South China Sea",
		Carrier:     "PR 507",
		Position:    domain.Coordinates{Lat: 8.0, Lng: 112.0},
		Waypoints:   []domain.Coordinates{{Lat: 14.5086, Lng: 121.0194}, {Lat: 8.0, Lng: 112.0}, {Lat: 2.7456, Lng: 101.7072}},
	},
	{
		Origin:      "Delhi, India",
		Destination: "Dhaka, Bangladesh",
		Location:    "Over India",
		Carrier:     "AI 237",
		Position:    domain.Coordinates{Lat: 25.0, Lng: 85.0},
		Waypoints:   []domain.Coordinates{{Lat: 28.5562, Lng: 77.1}, {Lat: 25.0, Lng: 85.0}, {Lat: 23.8103, Lng: 90.4125}},
	},
	{
		Origin:      "Kathmandu, Nepal",
		Destination: "Bangkok, Thailand",
		Location:    "Over Myanmar",
		Carrier:     "TG 320",
		Position:    domain.Coordinates{Lat: 20.0, Lng: 95.0},
		Waypoints:   []domain.Coordinates{{Lat: 27.7172, Lng: 85.324}, {Lat: 20.0, Lng: 95.0}, {Lat: 13.69, Lng: 100.7501}},
	},
	{
		Origin:      "Beijing, China",
		Destination: "Nairobi, Kenya",
		Location:    "Over India",
		Carrier:     "CA 863",
		Position:    domain.Coordinates{Lat: 15.0, Lng: 75.0},
		Waypoints:   []domain.Coordinates{{Lat: 40.0801, Lng: 116.5846}, {Lat: 15.0, Lng: 75.0}, {Lat: -1.3192, Lng: 36.9275}},
	},
	{
		Origin:      "Paris, France",
		Destination: "Cape Town, South Africa",
		Location:    "Over Central Africa",
		Carrier:     "AF 990",
		Position:    domain.Coordinates{Lat: -10.0, Lng: 20.0},
		Waypoints:   []domain.Coordinates{{Lat: 49.0097, Lng: 2.5479}, {Lat: 10.0, Lng: 10.0}, {Lat: -10.0, Lng: 20.0}, {Lat: -33.9715, Lng: 18.6021}},
	},
	{
		Origin:      "Dubai, UAE",
		Destination: "Dar es Salaam, Tanzania",
		Location:    "Over Somalia",
		Carrier:     "EK 723",
		Position:    domain.Coordinates{Lat: 5.0, Lng: 45.0},
		Waypoints:   []domain.Coordinates{{Lat: 25.2532, Lng: 55.3657}, {Lat: 5.0, Lng: 45.0}, {Lat: -6.7924, Lng: 39.2083}},
	},
	{
		Origin:      "London, UK",
		Destination: "Lagos, Nigeria",
		Location:    "Over Sahara",
		Carrier:     "BA 75",
		Position:    domain.Coordinates{Lat: 20.0, Lng: 5.0},
		Waypoints:   []domain.Coordinates{{Lat: 51.47, Lng: -0.4543}, {Lat: 20.0, Lng: 5.0}, {Lat: 6.5774, Lng: 3.3213}},
	},
	{
		Origin:      "Istanbul, Turkey",
		Destination: "Johannesburg, South Africa",
		Location:    "Over East Africa",
		Carrier:     "TK 43",
		Position:    domain.Coordinates{Lat: -5.0, Lng: 35.0},
		Waypoints:   []domain.Coordinates{{Lat: 41.2753, Lng: 28.7519}, {Lat: 10.0, Lng: 35.0}, {Lat: -5.0, Lng: 35.0}, {Lat: -26.1367, Lng: 28.2411}},
	},
	{
		Origin:      "Singapore",
		Destination: "Durban, South Africa",
		Location:    "Over Madagascar",
		Carrier:     "SQ 478",
		Position:    domain.Coordinates{Lat: -20.0, Lng: 50.0},
		Waypoints:   []domain.Coordinates{{Lat: 1.3644, Lng: 103.9915}, {Lat: -20.0, Lng: 50.0}, {Lat: -29.8587, Lng: 31.0218}},
	},
	{
		Origin:      "New York, USA",
		Destination: "Accra, Ghana",
		Location:    "Over Atlantic",
		Carrier:     "DL 157",
		Position:    domain.Coordinates{Lat: 15.0, Lng: -30.0},
		Waypoints:   []domain.Coordinates{{Lat: 40.6413, Lng: -73.7781}, {Lat: 15.0, Lng: -30.0}, {Lat: 5.6052, Lng: -0.1679}},
	},
	{
		Origin:      "Frankfurt, Germany",
		Destination: "Addis Ababa, Ethiopia",
		Location:    "Over Sudan",
		Carrier:     "LH 590",
		Position:    domain.Coordinates{Lat: 15.0, Lng: 35.0},
		Waypoints:   []domain.Coordinates{{Lat: 50.0379, Lng: 8.5622}, {Lat: 15.0, Lng: 35.0}, {Lat: 8.9806, Lng: 38.7578}},
	},
	{
		Origin:      "Shanghai, China",
		Destination: "Los Angeles, USA",
		Location:    "Over Pacific",
		Carrier:     "AA 182",
		Position:    domain.Coordinates{Lat: 38.0, Lng: -160.0},
		Waypoints:   []domain.Coordinates{{Lat: 31.1443, Lng: 121.8083}, {Lat: 38.0, Lng: -160.0}, {Lat: 33.9416, Lng: -118.4085}},
	},
	{
		Origin:      "London, UK",
		Destination: "New York, USA",
		Location:    "Over Atlantic",
		Carrier:     "BA 112",
		Position:    domain.Coordinates{Lat: 52.0, Lng: -35.0},
		Waypoints:   []domain.Coordinates{{Lat: 51.47, Lng: -0.4543}, {Lat: 52.0, Lng: -35.0}, {Lat: 40.6413, Lng: -73.7781}},
	},
	{
		Origin:      "Dubai, UAE",
		Destination: "Houston, USA",
		Location:    "Over Atlantic",
		Carrier:     "EK 211",
		Position:    domain.Coordinates{Lat: 35.0, Lng: -50.0},
		Waypoints:   []domain.Coordinates{{Lat: 25.2532, Lng: 55.3657}, {Lat: 35.0, Lng: 15.0}, {Lat: 35.0, Lng: -50.0}, {Lat: 29.9902, Lng: -95.3368}},
	},
	{
		Origin:      "Tokyo, Japan",
		Destination: "Vancouver, Canada",
		Location:    "Over Pacific",
		Carrier:     "AC 004",
		Position:    domain.Coordinates{Lat: 48.0, Lng: -155.0},
		Waypoints:   []domain.Coordinates{{Lat: 35.5494, Lng: 139.7798}, {Lat: 48.0, Lng: -155.0}, {Lat: 49.1967, Lng: -123.1815}},
	},
	{
		Origin:      "Paris, France",
		Destination: "Miami, USA",
		Location:    "Over Atlantic",
		Carrier:     "AF 90",
		Position:    domain.Coordinates{Lat: 38.0, Lng: -45.0},
		Waypoints:   []domain.Coordinates{{Lat: 49.0097, Lng: 2.5479}, {Lat: 38.0, Lng: -45.0}, {Lat: 25.7959, Lng: -80.2871}},
	},
	{
		Origin:      "Seoul, South Korea",
		Destination: "Seattle, USA",
		Location:    "Over Pacific",
		Carrier:     "KE 019",
		Position:    domain.Coordinates{Lat: 50.0, Lng: -165.0},
		Waypoints:   []domain.Coordinates{{Lat: 37.4602, Lng: 126.4407}, {Lat: 50.0, Lng: -165.0}, {Lat: 47.4502, Lng: -122.3088}},
	},
	{
		Origin:      "Mexico City, Mexico",
		Destination: "Toronto, Canada",
		Location:    "Over USA",
		Carrier:     "AM 698",
		Position:    domain.Coordinates{Lat: 35.0, Lng: -95.0},
		Waypoints:   []domain.Coordinates{{Lat: 19.4363, Lng: -99.0721}, {Lat: 35.0, Lng: -95.0}, {Lat: 43.6777, Lng: -79.6248}},
	},
	{
		Origin:      "Madrid, Spain",
		Destination: "São Paulo, Brazil",
		Location:    "Over Atlantic",
		Carrier:     "IB 6821",
		Position:    domain.Coordinates{Lat: -5.0, Lng: -30.0},
		Waypoints:   []domain.Coordinates{{Lat: 40.4719, Lng: -3.5626}, {Lat: -5.0, Lng: -30.0}, {Lat: -23.4356, Lng: -46.4731}},
	},
	{
		Origin:      "Paris, France",
		Destination: "Buenos Aires, Argentina",
		Location:    "Over Brazil",
		Carrier:     "AF 416",
		Position:    domain.Coordinates{Lat: -15.0, Lng: -45.0},
		Waypoints:   []domain.Coordinates{{Lat: 49.0097, Lng: 2.5479}, {Lat: 0.0, Lng: -30.0}, {Lat: -15.0, Lng: -45.0}, {Lat: -34.6118, Lng: -58.4173}},
	},
	{
		Origin:      "Los Angeles, USA",
		Destination: "Santiago, Chile",
		Location:    "Over Pacific",
		Carrier:     "LA 600",
		Position:    domain.Coordinates{Lat: -10.0, Lng: -85.0},
		Waypoints:   []domain.Coordinates{{Lat: 33.9416, Lng: -118.4085}, {Lat: -10.0, Lng: -85.0}, {Lat: -33.393, Lng: -70.7858}},
	},
	{
		Origin:      "Frankfurt, Germany",
		Destination: "Lima, Peru",
		Location:    "Over Atlantic",
		Carrier:     "LH 2574",
		Position:    domain.Coordinates{Lat: 5.0, Lng: -50.0},
		Waypoints:   []domain.Coordinates{{Lat: 50.0379, Lng: 8.5622}, {Lat: 5.0, Lng: -50.0}, {Lat: -12.0219, Lng: -77.1143}},
	},
	{
		Origin:      "Dubai, UAE",
		Destination: "Bogotá, Colombia",
		Location:    "Over Atlantic",
		Carrier:     "EK 247",
		Position:    domain.Coordinates{Lat: 15.0, Lng: -55.0},
		Waypoints:   []domain.Coordinates{{Lat: 25.2532, Lng: 55.3657}, {Lat: 15.0, Lng: 15.0}, {Lat: 15.0, Lng: -55.0}, {Lat: 4.7016, Lng: -74.1469}},
	},
	{
		Origin:      "Amsterdam, Netherlands",
		Destination: "Rio de Janeiro, Brazil",
		Location:    "Over Atlantic",
		Carrier:     "KL 705",
		Position:    domain.Coordinates{Lat: -5.0, Lng: -25.0},
		Waypoints:   []domain.Coordinates{{Lat: 52.3105, Lng: 4.7683}, {Lat: -5.0, Lng: -25.0}, {Lat: -22.8099, Lng: -43.2505}},
	},
	{
		Origin:      "Beijing, China",
		Destination: "Amsterdam, Netherlands",
		Location:    "Over Russia",
		Carrier:     "KL 898",
		Position:    domain.Coordinates{Lat: 55.0, Lng: 60.0},
		Waypoints:   []domain.Coordinates{{Lat: 40.0801, Lng: 116.5846}, {Lat: 55.0, Lng: 60.0}, {Lat: 52.3105, Lng: 4.7683}},
	},
	{
		Origin:      "Los Angeles, USA",
		Destination: "Frankfurt, Germany",
		Location:    "Over Greenland",
		Carrier:     "LH 457",
		Position:    domain.Coordinates{Lat: 65.0, Lng: -40.0},
		Waypoints:   []domain.Coordinates{{Lat: 33.9416, Lng: -118.4085}, {Lat: 65.0, Lng: -40.0}, {Lat: 50.0379, Lng: 8.5622}},
	},
	{
		Origin:      "Dubai, UAE",
		Destination: "Barcelona, Spain",
		Location:    "Over Mediterranean",
		Carrier:     "EK 185",
		Position:    domain.Coordinates{Lat: 36.0, Lng: 15.0},
		Waypoints:   []domain.Coordinates{{Lat: 25.2532, Lng: 55.3657}, {Lat: 36.0, Lng: 15.0}, {Lat: 41.2974, Lng: 2.0833}},
	},
	{
		Origin:      "Tokyo, Japan",
		Destination: "Paris, France",
		Location:    "Over Russia",
		Carrier:     "AF 275",
		Position:    domain.Coordinates{Lat: 58.0, Lng: 80.0},
		Waypoints:   []domain.Coordinates{{Lat: 35.5494, Lng: 139.7798}, {Lat: 58.0, Lng: 80.0}, {Lat: 49.0097, Lng: 2.5479}},
	},
	{
		Origin:      "Singapore",
		Destination: "London, UK",
		Location:    "Over Middle East",
		Carrier:     "SQ 322",
		Position:    domain.Coordinates{Lat: 28.0, Lng: 50.0},
		Waypoints:   []domain.Coordinates{{Lat: 1.3644, Lng: 103.9915}, {Lat: 28.0, Lng: 50.0}, {Lat: 51.47, Lng: -0.4543}},
	},
	{
		Origin:      "Mumbai, India",
		Destination: "Rome, Italy",
		Location:    "Over Middle East",
		Carrier:     "AZ 770",
		Position:    domain.Coordinates{Lat: 28.0, Lng: 45.0},
		Waypoints:   []domain.Coordinates{{Lat: 19.0896, Lng: 72.8656}, {Lat: 28.0, Lng: 45.0}, {Lat: 41.8003, Lng: 12.2389}},
	},
	{
		Origin:      "New York, USA",
		Destination: "Moscow, Russia",
		Location:    "Over Arctic",
		Carrier:     "SU 102",
		Position:    domain.Coordinates{Lat: 65.0, Lng: 30.0},
		Waypoints:   []domain.Coordinates{{Lat: 40.6413, Lng: -73.7781}, {Lat: 65.0, Lng: 30.0}, {Lat: 55.9726, Lng: 37.4146}},
	},
	{
		Origin:      "Seoul, South Korea",
		Destination: "Vienna, Austria",
		Location:    "Over Russia",
		Carrier:     "OS 542",
		Position:    domain.Coordinates{Lat: 52.0, Lng: 85.0},
		Waypoints:   []domain.Coordinates{{Lat: 37.4602, Lng: 126.4407}, {Lat: 52.0, Lng: 85.0}, {Lat: 48.1103, Lng: 16.5697}},
	},
	{
		Origin:      "Singapore",
		Destination: "Sydney, Australia",
		Location:    "Over Indonesia",
		Carrier:     "SQ 221",
		Position:    domain.Coordinates{Lat: -10.0, Lng: 125.0},
		Waypoints:   []domain.Coordinates{{Lat: 1.3644, Lng: 103.9915}, {Lat: -10.0, Lng: 125.0}, {Lat: -33.9399, Lng: 151.1753}},
	},
	{
		Origin:      "Los Angeles, USA",
		Destination: "Auckland, New Zealand",
		Location:    "Over Pacific",
		Carrier:     "NZ 6",
		Position:    domain.Coordinates{Lat: -15.0, Lng: -160.0},
		Waypoints:   []domain.Coordinates{{Lat: 33.9416, Lng: -118.4085}, {Lat: -15.0, Lng: -160.0}, {Lat: -37.0082, Lng: 174.785}},
	},
	{
		Origin:      "Dubai, UAE",
		Destination: "Melbourne, Australia",
		Location:    "Over India",
		Carrier:     "EK 406",
		Position:    domain.Coordinates{Lat: 15.0, Lng: 80.0},
		Waypoints:   []domain.Coordinates{{Lat: 25.2532, Lng: 55.3657}, {Lat: 15.0, Lng: 80.0}, {Lat: -37.669, Lng: 144.841}},
	},
}
