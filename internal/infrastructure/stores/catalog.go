// Package stores provides the store-data providers behind the part-search
// flow: a mock catalog with simulated market variance and a provider that
// shells out to the external scraper script. Both satisfy
// interfaces.IStoreProvider.
package stores

import "techassist/internal/domain/entities"

// PriceVarier derives a store-specific price from a part's base price.
// Injecting a fixed-output varier makes search results deterministic in
// tests; the default simulates real market spread.
type PriceVarier func(basePrice int64) int64

type catalogStore struct {
	ID      int64
	Name    string
	Address string
	City    string
	State   string
	Zip     string
	Phone   string
	Hours   string
}

// The demo market: four Columbus-area hardware stores.
var catalogStores = []catalogStore{
	{ID: 1, Name: "Home Depot", Address: "3721 W Dublin Granville Rd", City: "Columbus", State: "OH", Zip: "43235", Phone: "(614) 761-7300", Hours: "6:00 AM - 10:00 PM"},
	{ID: 2, Name: "Lowe's", Address: "2345 Silver Dr", City: "Columbus", State: "OH", Zip: "43211", Phone: "(614) 447-4420", Hours: "6:00 AM - 9:00 PM"},
	{ID: 3, Name: "Ace Hardware", Address: "4780 Reed Rd", City: "Columbus", State: "OH", Zip: "43220", Phone: "(614) 326-1950", Hours: "7:30 AM - 8:00 PM"},
	{ID: 4, Name: "Menards", Address: "1805 Morse Rd", City: "Columbus", State: "OH", Zip: "43229", Phone: "(614) 324-3700", Hours: "6:30 AM - 9:00 PM"},
}

// Base catalog of plumbing/electrical parts. Prices are integer cents and
// serve as the base for per-store variance.
var catalogParts = []entities.StorePart{
	{ID: 1, Name: "Dimmer Light Switch", Price: 1799, InStock: true, Image: "dimmer-switch.jpg", Description: "Single-pole/3-way dimmer switch with LED indicator", Category: "Electrical"},
	{ID: 2, Name: "LED Compatible Dimmer", Price: 2499, InStock: true, Image: "led-dimmer.jpg", Description: "Smart dimmer switch compatible with LED and CFL bulbs", Category: "Electrical"},
	{ID: 3, Name: "Wall Plate - Single Switch", Price: 499, InStock: true, Image: "wall-plate.jpg", Description: "Standard white decorator wall plate for single switch", Category: "Electrical"},
	{ID: 4, Name: "Copper Wire 14-2", Price: 7995, InStock: true, Image: "copper-wire.jpg", Description: "14-gauge copper wire, 100ft roll", Category: "Electrical"},
	{ID: 5, Name: "Wire Connector Pack", Price: 599, InStock: true, Image: "wire-connectors.jpg", Description: "Assorted wire nuts/connectors, pack of 50", Category: "Electrical"},
	{ID: 6, Name: "Toilet Flapper Valve", Price: 899, InStock: true, Image: "toilet-flapper.jpg", Description: "Universal toilet tank flapper valve replacement", Category: "Plumbing"},
	{ID: 7, Name: "Toilet Fill Valve", Price: 1299, InStock: true, Image: "toilet-fill-valve.jpg", Description: "Universal toilet tank fill valve", Category: "Plumbing"},
	{ID: 8, Name: "Bathroom Faucet - Chrome", Price: 7999, InStock: true, Image: "bathroom-faucet.jpg", Description: "4-inch centerset bathroom faucet, chrome finish", Category: "Plumbing"},
	{ID: 9, Name: "Kitchen Sink Drain Assembly", Price: 2499, InStock: true, Image: "sink-drain.jpg", Description: "Complete kitchen sink drain assembly with strainer", Category: "Plumbing"},
	{ID: 10, Name: "Garbage Disposal", Price: 8999, InStock: true, Image: "garbage-disposal.jpg", Description: "1/3 HP continuous feed garbage disposal", Category: "Plumbing"},
}
