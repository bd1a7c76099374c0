// Package geo carries the static lookup geometry the map endpoints serve:
// county centroids and the state outline. This is reference data, not
// behavior; it is never derived from case records.
package geo

// Point is a WGS84 coordinate pair.
type Point struct {
	Lat float64
	Lng float64
}

// Centroids maps each of the 58 California counties to its geographic
// centroid. These differ slightly from the fraud-weighting coordinates in
// the seed tables, which are anchored on county seats.
var Centroids = map[string]Point{
	"Alameda":         {37.6017, -121.7195},
	"Alpine":          {38.5966, -119.8208},
	"Amador":          {38.4466, -120.6538},
	"Butte":           {39.6670, -121.6008},
	"Calaveras":       {38.1964, -120.5544},
	"Colusa":          {39.1776, -122.2375},
	"Contra Costa":    {37.9195, -121.9290},
	"Del Norte":       {41.7433, -123.8963},
	"El Dorado":       {38.7786, -120.5246},
	"Fresno":          {36.9859, -119.2321},
	"Glenn":           {39.5984, -122.3917},
	"Humboldt":        {40.7450, -123.8695},
	"Imperial":        {33.0395, -115.3650},
	"Inyo":            {36.5108, -117.4109},
	"Kern":            {35.3430, -118.7296},
	"Kings":           {36.0753, -119.8155},
	"Lake":            {39.0996, -122.7531},
	"Lassen":          {40.6736, -120.5962},
	"Los Angeles":     {34.3083, -118.2280},
	"Madera":          {37.2182, -119.7627},
	"Marin":           {38.0834, -122.7633},
	"Mariposa":        {37.5848, -119.9663},
	"Mendocino":       {39.4380, -123.3918},
	"Merced":          {37.1948, -120.7178},
	"Modoc":           {41.5886, -120.7254},
	"Mono":            {37.9390, -118.8869},
	"Monterey":        {36.2400, -121.3103},
	"Napa":            {38.5025, -122.3655},
	"Nevada":          {39.3013, -120.7688},
	"Orange":          {33.7175, -117.8311},
	"Placer":          {39.0634, -120.7175},
	"Plumas":          {40.0035, -120.8388},
	"Riverside":       {33.7437, -115.9940},
	"Sacramento":      {38.4500, -121.3440},
	"San Benito":      {36.6058, -121.0750},
	"San Bernardino":  {34.8414, -116.1781},
	"San Diego":       {33.0289, -116.7694},
	"San Francisco":   {37.7562, -122.4430},
	"San Joaquin":     {37.9352, -121.2714},
	"San Luis Obispo": {35.3869, -120.4357},
	"San Mateo":       {37.4337, -122.4014},
	"Santa Barbara":   {34.5375, -120.0388},
	"Santa Clara":     {37.2333, -121.6963},
	"Santa Cruz":      {37.0603, -122.0069},
	"Shasta":          {40.7637, -122.0407},
	"Sierra":          {39.5804, -120.5161},
	"Siskiyou":        {41.5926, -122.5405},
	"Solano":          {38.2665, -121.9404},
	"Sonoma":          {38.5254, -122.9278},
	"Stanislaus":      {37.5591, -120.9979},
	"Sutter":          {39.0346, -121.6950},
	"Tehama":          {40.1260, -122.2342},
	"Trinity":         {40.6506, -123.1130},
	"Tulare":          {36.2288, -118.7815},
	"Tuolumne":        {38.0282, -119.9546},
	"Ventura":         {34.3587, -119.1335},
	"Yolo":            {38.6866, -121.9016},
	"Yuba":            {39.2678, -121.3519},
}
