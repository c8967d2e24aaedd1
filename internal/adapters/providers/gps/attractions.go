package gps

import "github.com/roamly/tourguide-backend/internal/domain/entities"

// attractionCatalog is the fixed catalog served by the simulated provider,
// static for the lifetime of the process.
var attractionCatalog = []entities.Attraction{
	{AttractionName: "Disneyland", City: "Anaheim", State: "CA", Location: entities.Location{Latitude: 33.817595, Longitude: -117.922008}},
	{AttractionName: "Jackson Hole", City: "Jackson Hole", State: "WY", Location: entities.Location{Latitude: 43.582767, Longitude: -110.821999}},
	{AttractionName: "Mojave National Preserve", City: "Kelso", State: "CA", Location: entities.Location{Latitude: 35.141689, Longitude: -115.510399}},
	{AttractionName: "Joshua Tree National Park", City: "Joshua Tree National Park", State: "CA", Location: entities.Location{Latitude: 33.881866, Longitude: -115.90065}},
	{AttractionName: "Buffalo National River", City: "St Joe", State: "AR", Location: entities.Location{Latitude: 35.985512, Longitude: -92.757652}},
	{AttractionName: "Hot Springs National Park", City: "Hot Springs", State: "AR", Location: entities.Location{Latitude: 34.52153, Longitude: -93.042267}},
	{AttractionName: "Kartchner Caverns State Park", City: "Benson", State: "AZ", Location: entities.Location{Latitude: 31.837551, Longitude: -110.347382}},
	{AttractionName: "Legend Valley", City: "Thornville", State: "OH", Location: entities.Location{Latitude: 39.937778, Longitude: -82.40667}},
	{AttractionName: "Flowers Bakery of London", City: "London", State: "KY", Location: entities.Location{Latitude: 37.131527, Longitude: -84.07486}},
	{AttractionName: "McKinley Tower", City: "Anchorage", State: "AK", Location: entities.Location{Latitude: 61.218887, Longitude: -149.877502}},
	{AttractionName: "Flatiron Building", City: "New York City", State: "NY", Location: entities.Location{Latitude: 40.741112, Longitude: -73.989723}},
	{AttractionName: "Fallingwater", City: "Mill Run", State: "PA", Location: entities.Location{Latitude: 39.906113, Longitude: -79.468056}},
	{AttractionName: "Union Station", City: "Washington D.C.", State: "DC", Location: entities.Location{Latitude: 38.897095, Longitude: -77.006332}},
	{AttractionName: "Roger Dean Stadium", City: "Jupiter", State: "FL", Location: entities.Location{Latitude: 26.890959, Longitude: -80.116577}},
	{AttractionName: "Texas Memorial Stadium", City: "Austin", State: "TX", Location: entities.Location{Latitude: 30.283682, Longitude: -97.732536}},
	{AttractionName: "Bryce Canyon National Park", City: "Bryce Canyon City", State: "UT", Location: entities.Location{Latitude: 37.593048, Longitude: -112.187332}},
	{AttractionName: "Langley Park", City: "Langley Park", State: "MD", Location: entities.Location{Latitude: 38.982079, Longitude: -76.981559}},
	{AttractionName: "Franklin Park Zoo", City: "Boston", State: "MA", Location: entities.Location{Latitude: 42.302601, Longitude: -71.086731}},
	{AttractionName: "Golden Gate Bridge", City: "San Francisco", State: "CA", Location: entities.Location{Latitude: 37.819929, Longitude: -122.478255}},
	{AttractionName: "ZooTampa at Lowry Park", City: "Tampa", State: "FL", Location: entities.Location{Latitude: 28.013579, Longitude: -82.46246}},
	{AttractionName: "Cinderella Castle", City: "Orlando", State: "FL", Location: entities.Location{Latitude: 28.419411, Longitude: -81.5812}},
	{AttractionName: "Mount Rushmore National Memorial", City: "Keystone", State: "SD", Location: entities.Location{Latitude: 43.879102, Longitude: -103.459067}},
	{AttractionName: "Space Needle", City: "Seattle", State: "WA", Location: entities.Location{Latitude: 47.620564, Longitude: -122.349299}},
	{AttractionName: "The Alamo", City: "San Antonio", State: "TX", Location: entities.Location{Latitude: 29.425967, Longitude: -98.486142}},
	{AttractionName: "Gateway Arch", City: "St Louis", State: "MO", Location: entities.Location{Latitude: 38.624691, Longitude: -90.184776}},
	{AttractionName: "Niagara Falls State Park", City: "Niagara Falls", State: "NY", Location: entities.Location{Latitude: 43.087653, Longitude: -79.068991}},
}
