package seed

import (
	"fmt"

	"califraud/cmd/internal/domain/entity"
)

// CountyRef is one California county with its centroid, relative fraud
// weight and population. The weight drives how often synthetic cases land
// in the county, not how severe they are.
type CountyRef struct {
	Name       string
	Lat        float64
	Lng        float64
	Weight     int
	Population int
}

// SchemeRef describes one fraud scheme category: sampling weight, the
// amount range a typical case falls into, and the years (if any) during
// which the scheme was over-represented in filings.
type SchemeRef struct {
	Type        string
	Weight      int
	MinAmount   float64
	MaxAmount   float64
	Description string
	PeakYears   []int
}

// Tables bundles every reference table the generator draws from. Build one
// with DefaultTables, or hand-construct a smaller set for tests.
type Tables struct {
	Counties         []CountyRef
	Schemes          []SchemeRef
	TitleTemplates   map[string][]string
	Cities           map[string][]string
	Statuses         []string
	StatusWeights    []int
	PerpetratorTypes []string
}

// County looks a county up by name.
func (t *Tables) County(name string) (CountyRef, bool) {
	for _, c := range t.Counties {
		if c.Name == name {
			return c, true
		}
	}
	return CountyRef{}, false
}

// Validate fails fast on reference tables that cannot be sampled from.
// A non-positive weight total is a configuration bug, not a runtime
// condition, so it is surfaced before any record is generated.
func (t *Tables) Validate() error {
	if err := checkWeightTotal("counties", len(t.Counties), func(i int) int { return t.Counties[i].Weight }); err != nil {
		return err
	}
	if err := checkWeightTotal("schemes", len(t.Schemes), func(i int) int { return t.Schemes[i].Weight }); err != nil {
		return err
	}
	if len(t.Statuses) != len(t.StatusWeights) {
		return fmt.Errorf("statuses: %w", ErrInvalidWeight)
	}
	return checkWeightTotal("statuses", len(t.StatusWeights), func(i int) int { return t.StatusWeights[i] })
}

func checkWeightTotal(name string, n int, weight func(int) int) error {
	total := 0
	for i := 0; i < n; i++ {
		total += weight(i)
	}
	if total <= 0 {
		return fmt.Errorf("%s: %w", name, ErrInvalidWeight)
	}
	return nil
}

// DefaultTables returns the built-in California reference data: all 58
// counties, the scheme catalog, title templates, city lists and the
// status/perpetrator sets.
func DefaultTables() *Tables {
	return &Tables{
		Counties:         defaultCounties(),
		Schemes:          defaultSchemes(),
		TitleTemplates:   defaultTitleTemplates(),
		Cities:           defaultCities(),
		Statuses:         entity.AllStatuses,
		StatusWeights:    []int{20, 25, 15, 20, 15, 5},
		PerpetratorTypes: defaultPerpetratorTypes(),
	}
}

func defaultCounties() []CountyRef {
	return []CountyRef{
		// Major metros carry most of the fraud volume.
		{Name: "Los Angeles", Lat: 34.0522, Lng: -118.2437, Weight: 28, Population: 10000000},
		{Name: "San Diego", Lat: 32.7157, Lng: -117.1611, Weight: 10, Population: 3300000},
		{Name: "Orange", Lat: 33.7175, Lng: -117.8311, Weight: 9, Population: 3200000},
		{Name: "Riverside", Lat: 33.9806, Lng: -117.3755, Weight: 7, Population: 2500000},
		{Name: "San Bernardino", Lat: 34.1083, Lng: -117.2898, Weight: 7, Population: 2200000},
		{Name: "Santa Clara", Lat: 37.3541, Lng: -121.9552, Weight: 5, Population: 1900000},
		{Name: "Alameda", Lat: 37.8044, Lng: -122.2712, Weight: 5, Population: 1700000},
		{Name: "Sacramento", Lat: 38.5816, Lng: -121.4944, Weight: 5, Population: 1550000},
		{Name: "San Francisco", Lat: 37.7749, Lng: -122.4194, Weight: 4, Population: 870000},
		{Name: "Contra Costa", Lat: 37.9161, Lng: -122.0574, Weight: 3, Population: 1150000},
		{Name: "Fresno", Lat: 36.7378, Lng: -119.7871, Weight: 3, Population: 1000000},
		{Name: "Kern", Lat: 35.3733, Lng: -119.0187, Weight: 3, Population: 900000},
		{Name: "San Mateo", Lat: 37.5585, Lng: -122.2711, Weight: 2, Population: 770000},
		{Name: "Ventura", Lat: 34.2746, Lng: -119.2290, Weight: 2, Population: 850000},
		{Name: "San Joaquin", Lat: 37.9577, Lng: -121.2908, Weight: 2, Population: 780000},
		{Name: "Stanislaus", Lat: 37.5091, Lng: -120.9876, Weight: 2, Population: 550000},
		{Name: "Sonoma", Lat: 38.2921, Lng: -122.4580, Weight: 1, Population: 490000},
		{Name: "Tulare", Lat: 36.2077, Lng: -119.3473, Weight: 2, Population: 470000},
		{Name: "Santa Barbara", Lat: 34.4208, Lng: -119.6982, Weight: 1, Population: 450000},
		{Name: "Monterey", Lat: 36.6002, Lng: -121.8947, Weight: 1, Population: 440000},
		{Name: "Placer", Lat: 38.7849, Lng: -121.2357, Weight: 1, Population: 410000},
		{Name: "Solano", Lat: 38.2494, Lng: -121.7853, Weight: 1, Population: 450000},
		{Name: "Marin", Lat: 37.9735, Lng: -122.5311, Weight: 1, Population: 260000},
		{Name: "Santa Cruz", Lat: 36.9741, Lng: -122.0308, Weight: 1, Population: 270000},
		{Name: "Merced", Lat: 37.3022, Lng: -120.4830, Weight: 1, Population: 290000},
		{Name: "Butte", Lat: 39.7284, Lng: -121.8375, Weight: 1, Population: 220000},
		{Name: "Yolo", Lat: 38.6866, Lng: -121.8261, Weight: 1, Population: 220000},
		{Name: "El Dorado", Lat: 38.7790, Lng: -120.5243, Weight: 1, Population: 190000},
		{Name: "Shasta", Lat: 40.5865, Lng: -122.3917, Weight: 1, Population: 180000},
		{Name: "Imperial", Lat: 32.8476, Lng: -115.5695, Weight: 2, Population: 180000},
		{Name: "Kings", Lat: 36.0753, Lng: -119.8155, Weight: 1, Population: 150000},
		{Name: "Madera", Lat: 37.2519, Lng: -119.7627, Weight: 1, Population: 160000},
		{Name: "Napa", Lat: 38.2975, Lng: -122.2855, Weight: 1, Population: 140000},
		{Name: "Humboldt", Lat: 40.7450, Lng: -123.8695, Weight: 1, Population: 135000},
		{Name: "Nevada", Lat: 39.2616, Lng: -121.0160, Weight: 1, Population: 100000},
		{Name: "Sutter", Lat: 39.0346, Lng: -121.6947, Weight: 1, Population: 100000},
		{Name: "Mendocino", Lat: 39.4457, Lng: -123.3915, Weight: 1, Population: 90000},
		{Name: "Yuba", Lat: 39.2678, Lng: -121.3519, Weight: 1, Population: 80000},
		{Name: "Lake", Lat: 39.0840, Lng: -122.8084, Weight: 1, Population: 68000},
		{Name: "Tehama", Lat: 40.1260, Lng: -122.2342, Weight: 1, Population: 65000},
		{Name: "San Luis Obispo", Lat: 35.2828, Lng: -120.6596, Weight: 1, Population: 280000},
		{Name: "San Benito", Lat: 36.6063, Lng: -121.0850, Weight: 1, Population: 65000},
		{Name: "Tuolumne", Lat: 38.0282, Lng: -119.9546, Weight: 1, Population: 55000},
		{Name: "Calaveras", Lat: 38.1877, Lng: -120.5561, Weight: 1, Population: 45000},
		{Name: "Siskiyou", Lat: 41.5926, Lng: -122.5400, Weight: 1, Population: 45000},
		{Name: "Amador", Lat: 38.4494, Lng: -120.6539, Weight: 1, Population: 40000},
		{Name: "Lassen", Lat: 40.6739, Lng: -120.5917, Weight: 1, Population: 32000},
		{Name: "Glenn", Lat: 39.5983, Lng: -122.3928, Weight: 1, Population: 28000},
		{Name: "Del Norte", Lat: 41.7459, Lng: -124.0860, Weight: 1, Population: 28000},
		{Name: "Colusa", Lat: 39.1776, Lng: -122.2372, Weight: 1, Population: 22000},
		{Name: "Plumas", Lat: 39.9619, Lng: -120.8379, Weight: 1, Population: 20000},
		{Name: "Inyo", Lat: 36.4897, Lng: -117.9807, Weight: 1, Population: 19000},
		{Name: "Mariposa", Lat: 37.4836, Lng: -119.9665, Weight: 1, Population: 18000},
		{Name: "Mono", Lat: 37.9389, Lng: -118.9500, Weight: 1, Population: 14000},
		{Name: "Trinity", Lat: 40.6506, Lng: -123.1130, Weight: 1, Population: 13000},
		{Name: "Modoc", Lat: 41.5890, Lng: -120.7253, Weight: 1, Population: 9000},
		{Name: "Sierra", Lat: 39.5802, Lng: -120.5160, Weight: 1, Population: 3200},
		{Name: "Alpine", Lat: 38.5941, Lng: -119.8206, Weight: 1, Population: 1200},
	}
}

func defaultSchemes() []SchemeRef {
	return []SchemeRef{
		{Type: "edd_unemployment", Weight: 22, MinAmount: 10000, MaxAmount: 25000000,
			Description: "EDD unemployment benefits fraud", PeakYears: []int{2020, 2021, 2022}},
		{Type: "ppp_fraud", Weight: 15, MinAmount: 50000, MaxAmount: 20000000,
			Description: "PPP loan fraud", PeakYears: []int{2020, 2021, 2022}},
		{Type: "eidl_fraud", Weight: 8, MinAmount: 25000, MaxAmount: 10000000,
			Description: "EIDL loan fraud", PeakYears: []int{2020, 2021, 2022}},
		{Type: "medi_cal", Weight: 12, MinAmount: 100000, MaxAmount: 50000000,
			Description: "Medi-Cal billing fraud", PeakYears: []int{2023, 2024, 2025, 2026}},
		{Type: "telemedicine", Weight: 8, MinAmount: 100000, MaxAmount: 40000000,
			Description: "Telemedicine billing fraud", PeakYears: []int{2020, 2021, 2022}},
		{Type: "pharmacy", Weight: 6, MinAmount: 50000, MaxAmount: 30000000,
			Description: "Pharmacy fraud/pill mills"},
		{Type: "dme", Weight: 5, MinAmount: 75000, MaxAmount: 25000000,
			Description: "Durable medical equipment fraud"},
		{Type: "home_health", Weight: 4, MinAmount: 100000, MaxAmount: 35000000,
			Description: "Home health care fraud"},
		{Type: "hospice", Weight: 2, MinAmount: 200000, MaxAmount: 45000000,
			Description: "Hospice care fraud", PeakYears: []int{2024, 2025, 2026}},
		{Type: "homeless_program", Weight: 10, MinAmount: 100000, MaxAmount: 75000000,
			Description: "Homeless program/housing fraud", PeakYears: []int{2024, 2025, 2026}},
		{Type: "calfresh", Weight: 5, MinAmount: 5000, MaxAmount: 5000000,
			Description: "CalFresh/SNAP benefits fraud"},
		{Type: "workers_comp", Weight: 4, MinAmount: 50000, MaxAmount: 15000000,
			Description: "Workers compensation fraud"},
		{Type: "contract_fraud", Weight: 5, MinAmount: 500000, MaxAmount: 100000000,
			Description: "Government contract fraud", PeakYears: []int{2024, 2025, 2026}},
		{Type: "tax_fraud", Weight: 4, MinAmount: 100000, MaxAmount: 50000000,
			Description: "Tax evasion/fraud"},
		{Type: "insurance_fraud", Weight: 4, MinAmount: 25000, MaxAmount: 20000000,
			Description: "Insurance fraud"},
		{Type: "education_fraud", Weight: 2, MinAmount: 100000, MaxAmount: 30000000,
			Description: "Education funding fraud", PeakYears: []int{2024, 2025, 2026}},
		{Type: "substance_abuse", Weight: 3, MinAmount: 500000, MaxAmount: 80000000,
			Description: "Substance abuse treatment fraud", PeakYears: []int{2023, 2024, 2025}},
		{Type: "lab_testing", Weight: 3, MinAmount: 200000, MaxAmount: 60000000,
			Description: "Laboratory testing fraud", PeakYears: []int{2020, 2021, 2022}},
	}
}

func defaultTitleTemplates() map[string][]string {
	return map[string][]string{
		"edd_unemployment": {
			"EDD Fraud Ring - {city}",
			"Unemployment Benefits Fraud - {county} County",
			"Pandemic Unemployment Assistance Scam - {city}",
			"Multi-Million Dollar EDD Scheme - {city}",
			"Identity Theft EDD Fraud - {county}",
			"Organized EDD Benefits Theft - {city}",
			"Fraudulent Unemployment Claims - {county} County",
			"EDD Prisoner Fraud Scheme - {city}",
		},
		"ppp_fraud": {
			"PPP Loan Fraud - {city} Business",
			"Paycheck Protection Program Scheme - {county}",
			"COVID Relief Fund Fraud - {city}",
			"Fraudulent PPP Application - {county} County",
			"PPP Kickback Conspiracy - {city}",
			"Shell Company PPP Fraud - {city}",
		},
		"eidl_fraud": {
			"EIDL Loan Fraud - {city}",
			"Economic Injury Disaster Loan Scheme - {county}",
			"SBA EIDL Fraud - {city}",
			"COVID EIDL Misuse - {county} County",
		},
		"medi_cal": {
			"Medi-Cal Billing Fraud - {city}",
			"Phantom Patient Billing - {county} County",
			"Medi-Cal Overbilling Scheme - {city}",
			"Fraudulent Medi-Cal Claims - {county}",
			"Medi-Cal Kickback Conspiracy - {city}",
			"Upcoding Medi-Cal Services - {county} County",
		},
		"telemedicine": {
			"Telemedicine Fraud Scheme - {city}",
			"COVID Telehealth Billing Fraud - {city}",
			"Remote Consultation Fraud - {county} County",
			"Virtual Visit Upcoding - {city}",
			"Telemedicine Kickback Ring - {county}",
		},
		"pharmacy": {
			"Pharmacy Kickback Scheme - {city}",
			"Prescription Drug Diversion - {county}",
			"Compounding Pharmacy Fraud - {city}",
			"Controlled Substance Mill - {county} County",
			"Pharmacy Billing Fraud - {city}",
		},
		"dme": {
			"DME Fraud Scheme - {city}",
			"Wheelchair Billing Fraud - {county}",
			"Medical Equipment Kickbacks - {city}",
			"Orthotic Device Scheme - {county} County",
		},
		"home_health": {
			"Home Health Care Fraud - {city}",
			"Phantom Patient Scheme - {county}",
			"Home Nursing Kickback - {city}",
			"Unlicensed Care Provider - {county} County",
		},
		"hospice": {
			"Hospice Fraud - {city}",
			"Ineligible Hospice Enrollment - {county}",
			"Hospice Billing Scheme - {city}",
			"End-of-Life Care Fraud - {county} County",
		},
		"homeless_program": {
			"Homeless Program Fraud - {city}",
			"Housing First Program Abuse - {county}",
			"Homeless Services Embezzlement - {city}",
			"Transitional Housing Fraud - {county} County",
			"Shelter Funding Misuse - {city}",
			"Homeless Grant Fraud - {county}",
			"Project Homekey Fraud - {city}",
			"LAHSA Contract Fraud - {county} County",
		},
		"calfresh": {
			"CalFresh Benefits Trafficking - {city}",
			"SNAP Fraud Ring - {county}",
			"EBT Card Scheme - {city}",
			"Food Stamp Fraud - {county} County",
		},
		"workers_comp": {
			"Workers Comp Fraud - {city}",
			"Fraudulent Injury Claims - {county}",
			"Premium Fraud Scheme - {city}",
			"Workers Comp Mill - {county} County",
		},
		"contract_fraud": {
			"Government Contract Fraud - {city}",
			"No-Bid Contract Scheme - {county}",
			"Public Works Fraud - {city}",
			"State Contract Kickbacks - {county} County",
			"Municipal Contract Fraud - {city}",
			"Infrastructure Fraud - {county}",
		},
		"tax_fraud": {
			"Tax Evasion Scheme - {city}",
			"Payroll Tax Fraud - {county}",
			"Sales Tax Scheme - {city}",
			"Income Tax Fraud - {county} County",
		},
		"insurance_fraud": {
			"Auto Insurance Fraud Ring - {city}",
			"Staged Accident Scheme - {county}",
			"Property Insurance Fraud - {city}",
			"Health Insurance Fraud - {county} County",
		},
		"education_fraud": {
			"School Funding Fraud - {city}",
			"Education Grant Embezzlement - {county}",
			"Charter School Fraud - {city}",
			"Student Loan Scheme - {county} County",
			"Title I Funding Fraud - {city}",
		},
		"substance_abuse": {
			"Treatment Center Fraud - {city}",
			"Sober Living Kickbacks - {county}",
			"Addiction Center Billing Fraud - {city}",
			"Patient Brokering Ring - {county} County",
			"Rehab Insurance Fraud - {city}",
		},
		"lab_testing": {
			"Lab Testing Fraud - {city}",
			"COVID Testing Scheme - {county}",
			"Genetic Testing Kickbacks - {city}",
			"Unnecessary Lab Orders - {county} County",
		},
	}
}

func defaultCities() map[string][]string {
	return map[string][]string{
		"Los Angeles": {"Los Angeles", "Long Beach", "Glendale", "Santa Monica", "Pasadena",
			"Burbank", "Torrance", "Inglewood", "Downey", "West Covina", "Norwalk",
			"El Monte", "Carson", "Compton", "South Gate", "Lancaster", "Palmdale",
			"Pomona", "Hawthorne", "Lakewood", "Bellflower", "Baldwin Park", "Lynwood"},
		"San Diego": {"San Diego", "Chula Vista", "Oceanside", "Escondido", "Carlsbad",
			"El Cajon", "Vista", "San Marcos", "Encinitas", "National City"},
		"Orange": {"Anaheim", "Santa Ana", "Irvine", "Huntington Beach", "Garden Grove",
			"Fullerton", "Costa Mesa", "Orange", "Mission Viejo", "Westminster", "Buena Park"},
		"Riverside": {"Riverside", "Corona", "Moreno Valley", "Temecula", "Murrieta",
			"Palm Springs", "Hemet", "Menifee", "Indio", "Palm Desert"},
		"San Bernardino": {"San Bernardino", "Fontana", "Rancho Cucamonga", "Ontario",
			"Victorville", "Rialto", "Hesperia", "Chino", "Upland", "Apple Valley"},
		"Santa Clara": {"San Jose", "Sunnyvale", "Santa Clara", "Mountain View", "Palo Alto",
			"Milpitas", "Cupertino", "Campbell", "Gilroy", "Morgan Hill"},
		"Alameda": {"Oakland", "Fremont", "Hayward", "Berkeley", "San Leandro", "Alameda",
			"Livermore", "Pleasanton", "Union City", "Newark"},
		"Sacramento": {"Sacramento", "Elk Grove", "Roseville", "Folsom", "Citrus Heights",
			"Rancho Cordova", "Arden-Arcade", "Carmichael"},
		"San Francisco": {"San Francisco"},
		"Contra Costa": {"Concord", "Richmond", "Antioch", "Walnut Creek", "San Ramon",
			"Pittsburg", "Brentwood", "Danville"},
		"Fresno":    {"Fresno", "Clovis", "Sanger", "Selma"},
		"Kern":      {"Bakersfield", "Delano", "Ridgecrest", "Tehachapi"},
		"San Mateo": {"Daly City", "San Mateo", "Redwood City", "South San Francisco",
			"San Bruno", "Foster City", "Burlingame"},
		"Ventura":         {"Oxnard", "Thousand Oaks", "Ventura", "Simi Valley", "Camarillo", "Moorpark"},
		"San Joaquin":     {"Stockton", "Tracy", "Manteca", "Lodi", "Modesto"},
		"Stanislaus":      {"Modesto", "Turlock", "Ceres", "Patterson"},
		"Sonoma":          {"Santa Rosa", "Petaluma", "Rohnert Park", "Windsor"},
		"Tulare":          {"Visalia", "Tulare", "Porterville", "Hanford"},
		"Santa Barbara":   {"Santa Barbara", "Santa Maria", "Lompoc", "Goleta"},
		"Monterey":        {"Salinas", "Monterey", "Seaside", "Marina"},
		"Placer":          {"Roseville", "Rocklin", "Lincoln", "Auburn"},
		"Solano":          {"Vallejo", "Fairfield", "Vacaville", "Benicia"},
		"Marin":           {"San Rafael", "Novato", "Mill Valley", "Corte Madera"},
		"Santa Cruz":      {"Santa Cruz", "Watsonville", "Capitola"},
		"Merced":          {"Merced", "Los Banos", "Atwater"},
		"San Luis Obispo": {"San Luis Obispo", "Paso Robles", "Atascadero"},
		"Imperial":        {"El Centro", "Calexico", "Brawley"},
	}
}

func defaultPerpetratorTypes() []string {
	return []string{
		"Individual", "Criminal Ring", "Business Entity", "Healthcare Provider",
		"Government Employee", "Organized Crime", "Identity Theft Ring",
	}
}
