package arm5sheet

// Fixed game enumerations. Order matters: generated rows, option lists and
// enumerated values follow the tabletop sheet's canonical ordering.

// Characteristics are the eight ArM5 characteristics, lowercase as used in
// attribute names and translation keys.
var Characteristics = []string{
	"intelligence",
	"perception",
	"strength",
	"stamina",
	"presence",
	"communication",
	"dexterity",
	"quickness",
}

// Techniques are the five Hermetic techniques.
var Techniques = []string{
	"creo",
	"intellego",
	"muto",
	"perdo",
	"rego",
}

// Forms are the ten Hermetic forms. The sheet renders them as two tables of
// five, in this order.
var Forms = []string{
	"animal",
	"aquam",
	"auram",
	"corpus",
	"herbam",
	"ignem",
	"imaginem",
	"mentem",
	"terram",
	"vim",
}

// TranslationKeys are the i18n labels referenced inside roll macros. Each key
// gets a hidden attribute input and a sheetworker assignment so rolls can
// embed translated text through attribute indirection.
var TranslationKeys = []string{
	"artes",
	"aura",
	"bonus",
	"botch_num",
	"characteristic",
	"circumstances",
	"circumstances-m",
	"circumstantial",
	"fatigue",
	"focus",
	"modifiers",
	"philos",
	"weakness-m",
	"wounds",
}
