package domain

// Dataset names, also used as file stems (states.json, art.json) and Redis key suffixes.
const (
	DatasetStates = "states"
	DatasetArt    = "art"
)

// Field names the transforms depend on.
const (
	FieldState      = "state"
	FieldCapital    = "capital"
	FieldCountry    = "country"
	FieldTitle      = "title"
	FieldArtistName = "artistName"
	FieldStyle      = "style"
)

const (
	// CountryUSA is the value stamped into every state record by the country exercise.
	CountryUSA = "USA"

	// ArtistRodin is the artist selected by the Rodin filter exercise.
	ArtistRodin = "Auguste Rodin"
)
