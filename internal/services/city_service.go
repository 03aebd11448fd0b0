package services

import (
	"sort"
	"strings"

	"travelai/pkg/utils"
)

const citySuggestionCount = 6

var genericCities = []string{"Capital City", "Historic Town", "Coastal City", "Mountain Resort", "Cultural Center", "Modern District"}

type CityServiceInterface interface {
	// SuggestCities returns up to six cities for a country, or generic placeholders for unknown ones.
	SuggestCities(country string) ([]string, error)
	Countries() []string
}

type CityService struct {
	byCountry map[string][]string
	names     []string
}

func NewCityService() CityServiceInterface {
	s := &CityService{byCountry: make(map[string][]string, len(countryCities))}
	for country, cities := range countryCities {
		s.byCountry[strings.ToLower(country)] = cities
		s.names = append(s.names, country)
	}
	sort.Strings(s.names)
	return s
}

func (s *CityService) SuggestCities(country string) ([]string, error) {
	country = strings.TrimSpace(country)
	if country == "" {
		return nil, utils.InvalidInput("destCountry is required")
	}

	cities, ok := s.byCountry[strings.ToLower(country)]
	if !ok {
		cities = genericCities
	}
	n := min(len(cities), citySuggestionCount)
	return append([]string(nil), cities[:n]...), nil
}

func (s *CityService) Countries() []string {
	return append([]string(nil), s.names...)
}

var countryCities = map[string][]string{
	"France":         {"Paris", "Lyon", "Marseille", "Nice", "Bordeaux", "Strasbourg", "Toulouse", "Nantes"},
	"Italy":          {"Rome", "Milan", "Venice", "Florence", "Naples", "Turin", "Bologna", "Palermo"},
	"Spain":          {"Madrid", "Barcelona", "Seville", "Valencia", "Bilbao", "Granada", "Salamanca", "Toledo"},
	"Germany":        {"Berlin", "Munich", "Hamburg", "Cologne", "Frankfurt", "Dresden", "Heidelberg", "Rothenburg"},
	"United Kingdom": {"London", "Edinburgh", "Manchester", "Liverpool", "Bath", "Oxford", "Cambridge", "York"},
	"Greece":         {"Athens", "Thessaloniki", "Mykonos", "Santorini", "Crete", "Rhodes", "Corfu", "Delphi"},
	"Portugal":       {"Lisbon", "Porto", "Sintra", "Óbidos", "Aveiro", "Braga", "Coimbra", "Évora"},
	"Japan":          {"Tokyo", "Kyoto", "Osaka", "Hiroshima", "Nara", "Yokohama", "Kobe", "Nikko"},
	"Thailand":       {"Bangkok", "Chiang Mai", "Phuket", "Pattaya", "Krabi", "Ayutthaya", "Sukhothai", "Kanchanaburi"},
	"Indonesia":      {"Jakarta", "Bali", "Yogyakarta", "Bandung", "Surabaya", "Medan", "Lombok", "Flores"},
	"Vietnam":        {"Ho Chi Minh City", "Hanoi", "Da Nang", "Hoi An", "Nha Trang", "Hue", "Sapa", "Ha Long"},
	"South Korea":    {"Seoul", "Busan", "Jeju", "Incheon", "Daegu", "Daejeon", "Gwangju", "Gyeongju"},
	"China":          {"Beijing", "Shanghai", "Xi'an", "Guangzhou", "Chengdu", "Hangzhou", "Suzhou", "Guilin"},
	"India":          {"Delhi", "Mumbai", "Bangalore", "Chennai", "Kolkata", "Jaipur", "Agra", "Goa"},
	"United States":  {"New York", "Los Angeles", "Chicago", "Miami", "San Francisco", "Las Vegas", "Boston", "Seattle"},
	"Canada":         {"Toronto", "Vancouver", "Montreal", "Calgary", "Ottawa", "Quebec City", "Winnipeg", "Halifax"},
	"Mexico":         {"Mexico City", "Cancun", "Guadalajara", "Puerto Vallarta", "Playa del Carmen", "Oaxaca", "Merida", "Tulum"},
	"Brazil":         {"Rio de Janeiro", "São Paulo", "Salvador", "Brasília", "Fortaleza", "Recife", "Manaus", "Florianópolis"},
	"Argentina":      {"Buenos Aires", "Córdoba", "Mendoza", "Rosario", "Salta", "Bariloche", "Mar del Plata", "Ushuaia"},
	"Peru":           {"Lima", "Cusco", "Arequipa", "Trujillo", "Iquitos", "Huacachina", "Paracas", "Chachapoyas"},
	"Australia":      {"Sydney", "Melbourne", "Brisbane", "Perth", "Adelaide", "Gold Coast", "Cairns", "Darwin"},
	"New Zealand":    {"Auckland", "Wellington", "Christchurch", "Queenstown", "Rotorua", "Taupo", "Dunedin", "Hamilton"},
	"South Africa":   {"Cape Town", "Johannesburg", "Durban", "Port Elizabeth", "Bloemfontein", "Pretoria", "Knysna", "Hermanus"},
	"Morocco":        {"Marrakech", "Casablanca", "Fez", "Rabat", "Chefchaouen", "Essaouira", "Meknes", "Tangier"},
	"Egypt":          {"Cairo", "Alexandria", "Luxor", "Aswan", "Hurghada", "Sharm El Sheikh", "Dahab", "Siwa"},
	"Kenya":          {"Nairobi", "Mombasa", "Kisumu", "Nakuru", "Eldoret", "Malindi", "Lamu", "Watamu"},
}
