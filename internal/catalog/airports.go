package catalog

import (
	"sort"
	"strings"
)

// Airport is one entry in the static directory
type Airport struct {
	Code    string `json:"code"`
	Name    string `json:"name"`
	City    string `json:"city"`
	Country string `json:"country"`
}

// Country is one entry in the country picker
type Country struct {
	Code string `json:"code"`
	Name string `json:"name"`
	Flag string `json:"flag"`
}

// Airports is the static airport directory, keyed by IATA code
var Airports = map[string]Airport{
	"JFK": {Code: "JFK", Name: "John F. Kennedy International Airport", City: "New York", Country: "United States"},
	"LAX": {Code: "LAX", Name: "Los Angeles International Airport", City: "Los Angeles", Country: "United States"},
	"ORD": {Code: "ORD", Name: "O'Hare International Airport", City: "Chicago", Country: "United States"},
	"MIA": {Code: "MIA", Name: "Miami International Airport", City: "Miami", Country: "United States"},
	"SFO": {Code: "SFO", Name: "San Francisco International Airport", City: "San Francisco", Country: "United States"},
	"LAS": {Code: "LAS", Name: "McCarran International Airport", City: "Las Vegas", Country: "United States"},
	"SEA": {Code: "SEA", Name: "Seattle-Tacoma International Airport", City: "Seattle", Country: "United States"},
	"DFW": {Code: "DFW", Name: "Dallas/Fort Worth International Airport", City: "Dallas", Country: "United States"},
	"LHR": {Code: "LHR", Name: "Heathrow Airport", City: "London", Country: "United Kingdom"},
	"LGW": {Code: "LGW", Name: "Gatwick Airport", City: "London", Country: "United Kingdom"},
	"MAN": {Code: "MAN", Name: "Manchester Airport", City: "Manchester", Country: "United Kingdom"},
	"EDI": {Code: "EDI", Name: "Edinburgh Airport", City: "Edinburgh", Country: "United Kingdom"},
	"CDG": {Code: "CDG", Name: "Charles de Gaulle Airport", City: "Paris", Country: "France"},
	"ORY": {Code: "ORY", Name: "Orly Airport", City: "Paris", Country: "France"},
	"NCE": {Code: "NCE", Name: "Nice Côte d'Azur Airport", City: "Nice", Country: "France"},
	"FRA": {Code: "FRA", Name: "Frankfurt Airport", City: "Frankfurt", Country: "Germany"},
	"MUC": {Code: "MUC", Name: "Munich Airport", City: "Munich", Country: "Germany"},
	"BER": {Code: "BER", Name: "Berlin Brandenburg Airport", City: "Berlin", Country: "Germany"},
	"NRT": {Code: "NRT", Name: "Narita International Airport", City: "Tokyo", Country: "Japan"},
	"HND": {Code: "HND", Name: "Haneda Airport", City: "Tokyo", Country: "Japan"},
	"KIX": {Code: "KIX", Name: "Kansai International Airport", City: "Osaka", Country: "Japan"},
	"SYD": {Code: "SYD", Name: "Sydney Kingsford Smith Airport", City: "Sydney", Country: "Australia"},
	"MEL": {Code: "MEL", Name: "Melbourne Airport", City: "Melbourne", Country: "Australia"},
	"BNE": {Code: "BNE", Name: "Brisbane Airport", City: "Brisbane", Country: "Australia"},
	"YYZ": {Code: "YYZ", Name: "Toronto Pearson International Airport", City: "Toronto", Country: "Canada"},
	"YVR": {Code: "YVR", Name: "Vancouver International Airport", City: "Vancouver", Country: "Canada"},
	"YUL": {Code: "YUL", Name: "Montréal-Pierre Elliott Trudeau International Airport", City: "Montreal", Country: "Canada"},
	"DXB": {Code: "DXB", Name: "Dubai International Airport", City: "Dubai", Country: "United Arab Emirates"},
	"AUH": {Code: "AUH", Name: "Abu Dhabi International Airport", City: "Abu Dhabi", Country: "United Arab Emirates"},
	"SIN": {Code: "SIN", Name: "Singapore Changi Airport", City: "Singapore", Country: "Singapore"},
	"BOM": {Code: "BOM", Name: "Chhatrapati Shivaji Maharaj International Airport", City: "Mumbai", Country: "India"},
	"DEL": {Code: "DEL", Name: "Indira Gandhi International Airport", City: "New Delhi", Country: "India"},
	"BLR": {Code: "BLR", Name: "Kempegowda International Airport", City: "Bangalore", Country: "India"},
	"KHI": {Code: "KHI", Name: "Jinnah International Airport", City: "Karachi", Country: "Pakistan"},
	"LHE": {Code: "LHE", Name: "Allama Iqbal International Airport", City: "Lahore", Country: "Pakistan"},
	"SKT": {Code: "SKT", Name: "Sialkot International Airport", City: "Sialkot", Country: "Pakistan"},
	"ISB": {Code: "ISB", Name: "Islamabad International Airport", City: "Islamabad", Country: "Pakistan"},
	"ICN": {Code: "ICN", Name: "Incheon International Airport", City: "Seoul", Country: "South Korea"},
	"BKK": {Code: "BKK", Name: "Suvarnabhumi Airport", City: "Bangkok", Country: "Thailand"},
	"KUL": {Code: "KUL", Name: "Kuala Lumpur International Airport", City: "Kuala Lumpur", Country: "Malaysia"},
	"AMS": {Code: "AMS", Name: "Amsterdam Airport Schiphol", City: "Amsterdam", Country: "Netherlands"},
	"ZUR": {Code: "ZUR", Name: "Zurich Airport", City: "Zurich", Country: "Switzerland"},
	"FCO": {Code: "FCO", Name: "Leonardo da Vinci International Airport", City: "Rome", Country: "Italy"},
	"MXP": {Code: "MXP", Name: "Milan Malpensa Airport", City: "Milan", Country: "Italy"},
	"MAD": {Code: "MAD", Name: "Adolfo Suárez Madrid–Barajas Airport", City: "Madrid", Country: "Spain"},
	"BCN": {Code: "BCN", Name: "Barcelona-El Prat Airport", City: "Barcelona", Country: "Spain"},
	"GRU": {Code: "GRU", Name: "São Paulo/Guarulhos International Airport", City: "São Paulo", Country: "Brazil"},
	"GIG": {Code: "GIG", Name: "Rio de Janeiro/Galeão International Airport", City: "Rio de Janeiro", Country: "Brazil"},
}

// Countries lists the supported nationalities
var Countries = []Country{
	{Code: "US", Name: "United States", Flag: "🇺🇸"},
	{Code: "UK", Name: "United Kingdom", Flag: "🇬🇧"},
	{Code: "FR", Name: "France", Flag: "🇫🇷"},
	{Code: "DE", Name: "Germany", Flag: "🇩🇪"},
	{Code: "JP", Name: "Japan", Flag: "🇯🇵"},
	{Code: "AU", Name: "Australia", Flag: "🇦🇺"},
	{Code: "CA", Name: "Canada", Flag: "🇨🇦"},
	{Code: "AE", Name: "United Arab Emirates", Flag: "🇦🇪"},
	{Code: "SG", Name: "Singapore", Flag: "🇸🇬"},
	{Code: "IN", Name: "India", Flag: "🇮🇳"},
	{Code: "PK", Name: "Pakistan", Flag: "🇵🇰"},
	{Code: "KR", Name: "South Korea", Flag: "🇰🇷"},
	{Code: "TH", Name: "Thailand", Flag: "🇹🇭"},
	{Code: "MY", Name: "Malaysia", Flag: "🇲🇾"},
	{Code: "NL", Name: "Netherlands", Flag: "🇳🇱"},
	{Code: "CH", Name: "Switzerland", Flag: "🇨🇭"},
	{Code: "IT", Name: "Italy", Flag: "🇮🇹"},
	{Code: "ES", Name: "Spain", Flag: "🇪🇸"},
	{Code: "BR", Name: "Brazil", Flag: "🇧🇷"},
}

// SearchAirports filters the directory by code, name, city, or country
// substring, case-insensitive. An empty query returns every airport.
func SearchAirports(query string) []Airport {
	query = strings.ToLower(strings.TrimSpace(query))
	results := make([]Airport, 0, len(Airports))
	for _, code := range airportCodes() {
		a := Airports[code]
		if query == "" ||
			strings.Contains(strings.ToLower(a.Code), query) ||
			strings.Contains(strings.ToLower(a.Name), query) ||
			strings.Contains(strings.ToLower(a.City), query) ||
			strings.Contains(strings.ToLower(a.Country), query) {
			results = append(results, a)
		}
	}
	return results
}

// airportCodes returns the directory keys sorted for stable output
func airportCodes() []string {
	codes := make([]string, 0, len(Airports))
	for code := range Airports {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}
