package repair

// Rule is one literal replacement, applied in table order. Longer, more
// specific entries must come before the shorter ones they contain.
type Rule struct {
	Bad  string `yaml:"bad"`
	Good string `yaml:"good"`
}

// Marker is the rune a Latin-1 umlaut leaves behind after being decoded as
// UTF-8. Every repair ultimately removes all of these.
const Marker = "�"

// fallback for markers no rule resolves.
const fallback = "ß"

// defaultRules covers the mangled club, city and referee names that keep
// showing up in SAMS exports. Extend via the --rules file instead of
// editing this table.
var defaultRules = []Rule{
	{"Oberwei�bach", "Oberweißbach"},
	{"Gro�breitenbach", "Großbreitenbach"},
	{"Th�ringenliga", "Thüringenliga"},
	{"Th�ringen", "Thüringen"},
	{"S�d", "Süd"},
	{"P��neck", "Pößneck"},
	{"S�mmerda", "Sömmerda"},
	{"M�hlhausen", "Mühlhausen"},
	{"K�nigsee", "Königsee"},
	{"Schm�lln", "Schmölln"},
	{"Stadtroda/B�rgel", "Stadtroda/Bürgel"},
	{"M�ller", "Müller"},
	{"Schr�der", "Schröder"},
	{"Kr�ger", "Krüger"},
	{"J�ger", "Jäger"},
	{"B�hm", "Böhm"},
	{"K�hler", "Köhler"},
	{"Sch�fer", "Schäfer"},
	{"Stra�e", "Straße"},
	{"stra�e", "straße"},
	{"M�nner", "Männer"},
	{"m�nnlich", "männlich"},
	{"Wei�e", "Weiße"},
	{"Gro�e", "Große"},
}
