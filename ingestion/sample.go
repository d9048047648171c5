package ingestion

import "github.com/poiesic/igbodict/core"

// SampleEntries returns a small Igbo word list used to seed new databases
// and demos. Each call returns fresh entries.
func SampleEntries() []*core.Entry {
	return []*core.Entry{
		{Word: "anụ", WordClass: core.WordClassNoun, Definitions: []string{"animal; meat"}, Variations: []string{"anu"},
			Examples: []core.Example{{Igbo: "Anụ a dị ụtọ.", English: "This meat is tasty."}}},
		{Word: "anụ ọhịa", WordClass: core.WordClassNoun, Definitions: []string{"wild animal", "bush meat"}, Stems: []string{"anụ", "ọhịa"}},
		{Word: "ehi", WordClass: core.WordClassNoun, Definitions: []string{"cow; domestic animal"}},
		{Word: "ewu", WordClass: core.WordClassNoun, Definitions: []string{"goat"},
			Examples: []core.Example{{Igbo: "Ewu na-ata ahịhịa.", English: "The goat is eating grass."}}},
		{Word: "àkwà", WordClass: core.WordClassNoun, Definitions: []string{"bed"}},
		{Word: "ákwà", WordClass: core.WordClassNoun, Definitions: []string{"cloth", "garment"}},
		{Word: "akwá", WordClass: core.WordClassNoun, Definitions: []string{"egg"},
			Examples: []core.Example{{Igbo: "Ọkụkọ yiri akwá.", English: "The hen laid an egg."}}},
		{Word: "ákwá", WordClass: core.WordClassNoun, Definitions: []string{"cry; weeping"}},
		{Word: "ụlọ", WordClass: core.WordClassNoun, Definitions: []string{"house; home"}, Variations: []string{"ụnọ"},
			Examples: []core.Example{{Igbo: "Ụlọ m dị nso.", English: "My house is near."}}},
		{Word: "ụlọ akwụkwọ", WordClass: core.WordClassNoun, Definitions: []string{"school"}, Stems: []string{"ụlọ", "akwụkwọ"}},
		{Word: "akwụkwọ", WordClass: core.WordClassNoun, Definitions: []string{"book; paper", "leaf"}},
		{Word: "bịa", WordClass: core.WordClassActiveVerb, Definitions: []string{"come"},
			Examples: []core.Example{{Igbo: "Bịa ebe a.", English: "Come here."}}},
		{Word: "gaa", WordClass: core.WordClassActiveVerb, Definitions: []string{"go"}, Variations: []string{"ga"}},
		{Word: "rie", WordClass: core.WordClassActiveVerb, Definitions: []string{"eat"}, Stems: []string{"ri"}},
		{Word: "ṅụọ", WordClass: core.WordClassActiveVerb, Definitions: []string{"drink"}, Stems: []string{"ṅụ"}},
		{Word: "hụ", WordClass: core.WordClassActiveVerb, Definitions: []string{"see"}},
		{Word: "nọdụ ala", WordClass: core.WordClassPhrase, Definitions: []string{"sit down"}, Stems: []string{"nọ", "ala"}},
		{Word: "nwa", WordClass: core.WordClassNoun, Definitions: []string{"child"}},
		{Word: "nwanne", WordClass: core.WordClassNoun, Definitions: []string{"sibling"}, Stems: []string{"nwa", "nne"}},
		{Word: "nne", WordClass: core.WordClassNoun, Definitions: []string{"mother"}},
		{Word: "nna", WordClass: core.WordClassNoun, Definitions: []string{"father"}},
		{Word: "mmiri", WordClass: core.WordClassNoun, Definitions: []string{"water; rain"},
			Examples: []core.Example{{Igbo: "Mmiri na-ezo.", English: "It is raining."}}},
		{Word: "ọkụ", WordClass: core.WordClassNoun, Definitions: []string{"fire", "light"}},
		{Word: "nkịta", WordClass: core.WordClassNoun, Definitions: []string{"dog"}},
		{Word: "ọkụkọ", WordClass: core.WordClassNoun, Definitions: []string{"chicken; hen"}},
		{Word: "ji", WordClass: core.WordClassNoun, Definitions: []string{"yam"}},
		{Word: "ala", WordClass: core.WordClassNoun, Definitions: []string{"land; ground"}},
		{Word: "ukwu", WordClass: core.WordClassNoun, Definitions: []string{"leg; foot", "waist"}},
		{Word: "ukwu", WordClass: core.WordClassAdjective, Definitions: []string{"big; great"}},
		{Word: "ọma", WordClass: core.WordClassAdjective, Definitions: []string{"good; beautiful"}},
		{Word: "ọcha", WordClass: core.WordClassAdjective, Definitions: []string{"white; clean"}},
		{Word: "otu", WordClass: core.WordClassNumeral, Definitions: []string{"one"}},
		{Word: "abụọ", WordClass: core.WordClassNumeral, Definitions: []string{"two"}},
		{Word: "atọ", WordClass: core.WordClassNumeral, Definitions: []string{"three"}},
		{Word: "m", WordClass: core.WordClassPronoun, Definitions: []string{"I; me"}},
		{Word: "na", WordClass: core.WordClassConjunction, Definitions: []string{"and"}},
		{Word: "nnọọ", WordClass: core.WordClassInterjection, Definitions: []string{"welcome"}},
		{Word: "daalụ", WordClass: core.WordClassInterjection, Definitions: []string{"thank you"}, Variations: []string{"dalụ"}},
		{Word: "ndewo", WordClass: core.WordClassInterjection, Definitions: []string{"greetings; hello"}},
		{Word: "Chineke", WordClass: core.WordClassProperNoun, Definitions: []string{"God"}, Stems: []string{"chi", "eke"}},
	}
}
