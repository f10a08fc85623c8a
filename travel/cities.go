package travel

// knownCities are matched as substrings against venue text that carries no
// postal code. Ordered, so matching stays deterministic when a venue name
// mentions more than one town.
var knownCities = []string{
	"Oberweißbach",
	"Großbreitenbach",
	"Bad Blankenburg",
	"Rudolstadt",
	"Saalfeld",
	"Königsee",
	"Neuhaus",
	"Ilmenau",
	"Arnstadt",
	"Sonneberg",
	"Pößneck",
	"Schleiz",
	"Zeulenroda",
	"Greiz",
	"Altenburg",
	"Schmölln",
	"Jena",
	"Erfurt",
	"Weimar",
	"Apolda",
	"Gera",
	"Gotha",
	"Suhl",
	"Meiningen",
	"Schmalkalden",
	"Eisenach",
	"Sömmerda",
	"Mühlhausen",
	"Nordhausen",
}

type cityPair struct {
	a, b string
}

// pair builds the canonical lookup key; the table is direction-free.
func pair(a, b string) cityPair {
	if a > b {
		a, b = b, a
	}
	return cityPair{a, b}
}

// pairMinutes is the offline driving-time table, measured from the halls we
// actually play in rather than city centers. Values are one-way minutes.
var pairMinutes = map[cityPair]int{
	pair("Oberweißbach", "Bad Blankenburg"): 40,
	pair("Oberweißbach", "Königsee"):        40,
	pair("Oberweißbach", "Großbreitenbach"): 45,
	pair("Oberweißbach", "Neuhaus"):         45,
	pair("Oberweißbach", "Rudolstadt"):      45,
	pair("Oberweißbach", "Saalfeld"):        50,
	pair("Oberweißbach", "Ilmenau"):         55,
	pair("Oberweißbach", "Pößneck"):         65,
	pair("Oberweißbach", "Arnstadt"):        70,
	pair("Oberweißbach", "Sonneberg"):       70,
	pair("Oberweißbach", "Jena"):            75,
	pair("Oberweißbach", "Weimar"):          80,
	pair("Oberweißbach", "Apolda"):          85,
	pair("Oberweißbach", "Schleiz"):         85,
	pair("Oberweißbach", "Suhl"):            85,
	pair("Oberweißbach", "Erfurt"):          90,
	pair("Oberweißbach", "Schmalkalden"):    95,
	pair("Oberweißbach", "Zeulenroda"):      95,
	pair("Oberweißbach", "Gotha"):           100,
	pair("Oberweißbach", "Meiningen"):       100,
	pair("Oberweißbach", "Sömmerda"):        100,
	pair("Oberweißbach", "Gera"):            105,
	pair("Oberweißbach", "Eisenach"):        110,
	pair("Oberweißbach", "Greiz"):           110,
	pair("Oberweißbach", "Altenburg"):       120,
	pair("Oberweißbach", "Mühlhausen"):      120,
	pair("Oberweißbach", "Schmölln"):        115,
	pair("Jena", "Gera"):                    45,
	pair("Jena", "Erfurt"):                  60,
	pair("Jena", "Pößneck"):                 45,
	pair("Jena", "Weimar"):                  35,
	pair("Erfurt", "Weimar"):                30,
	pair("Erfurt", "Gotha"):                 45,
	pair("Gera", "Greiz"):                   45,
	pair("Gera", "Altenburg"):               50,
}
