package catalog

func english() Data {
	return Data{
		Locale: "en",
		Templates: Templates{
			Prompt:      "What word means %q?",
			Explanation: "Etymology: %s",
			ReviewTitle: "Review Session",
			CoreTitle:   "Core: %s",
		},
		Morphemes: []Morpheme{
			{ID: "tele-", Kind: KindPrefix, Label: "tele-", Meaning: "far", Origin: "Greek"},
			{ID: "trans-", Kind: KindPrefix, Label: "trans-", Meaning: "across", Origin: "Latin"},
			{ID: "in-", Kind: KindPrefix, Label: "in-", Meaning: "in, into", Origin: "Latin"},
			{ID: "in-neg", Kind: KindPrefix, Label: "in-", Meaning: "not", Origin: "Latin"},
			{ID: "re-", Kind: KindPrefix, Label: "re-", Meaning: "again", Origin: "Latin"},
			{ID: "pre-", Kind: KindPrefix, Label: "pre-", Meaning: "before", Origin: "Latin"},
			{ID: "sub-", Kind: KindPrefix, Label: "sub-", Meaning: "under", Origin: "Latin"},
			{ID: "de-", Kind: KindPrefix, Label: "de-", Meaning: "down, away", Origin: "Latin"},
			{ID: "con-", Kind: KindPrefix, Label: "con-", Meaning: "with, together", Origin: "Latin"},
			{ID: "pro-", Kind: KindPrefix, Label: "pro-", Meaning: "forward", Origin: "Latin"},
			{ID: "ex-", Kind: KindPrefix, Label: "ex-", Meaning: "out", Origin: "Latin"},
			{ID: "per-", Kind: KindPrefix, Label: "per-", Meaning: "through", Origin: "Latin"},
			{ID: "port", Kind: KindRoot, Label: "port", Meaning: "to carry", Origin: "Latin"},
			{ID: "spect", Kind: KindRoot, Label: "spect", Meaning: "to look", Origin: "Latin"},
			{ID: "phon", Kind: KindRoot, Label: "phon", Meaning: "sound", Origin: "Greek"},
			{ID: "vis", Kind: KindRoot, Label: "vis/vid", Meaning: "to see", Origin: "Latin"},
			{ID: "mit", Kind: KindRoot, Label: "mit/mis", Meaning: "to send", Origin: "Latin"},
			{ID: "scrib", Kind: KindRoot, Label: "scrib/script", Meaning: "to write", Origin: "Latin"},
			{ID: "dict", Kind: KindRoot, Label: "dict", Meaning: "to say", Origin: "Latin"},
			{ID: "gress", Kind: KindRoot, Label: "gress", Meaning: "to go", Origin: "Latin"},
			{ID: "pon", Kind: KindRoot, Label: "pon/pos", Meaning: "to place", Origin: "Latin"},
			{ID: "duc", Kind: KindRoot, Label: "duc/duct", Meaning: "to lead", Origin: "Latin"},
			{ID: "-able", Kind: KindSuffix, Label: "-able", Meaning: "able to be", Origin: "Latin"},
			{ID: "-tion", Kind: KindSuffix, Label: "-tion", Meaning: "act of", Origin: "Latin"},
			{ID: "-ion", Kind: KindSuffix, Label: "-ion", Meaning: "act of (noun)", Origin: "Latin"},
			{ID: "-or", Kind: KindSuffix, Label: "-or", Meaning: "one who", Origin: "Latin"},
			{ID: "-acle", Kind: KindSuffix, Label: "-acle", Meaning: "thing for", Origin: "Latin"},
		},
		Items: []Item{
			{Word: "transport", Parts: []string{"trans-", "port"}, Gloss: "to carry across", Meaning: "to move goods or people", Category: "Movement"},
			{Word: "report", Parts: []string{"re-", "port"}, Gloss: "to carry again (back)", Meaning: "to give an account of", Category: "Reporting"},
			{Word: "portable", Parts: []string{"port", "-able"}, Gloss: "able to be carried", Meaning: "easy to carry", Category: "Quality"},
			{Word: "export", Parts: []string{"ex-", "port"}, Gloss: "to carry out", Meaning: "to sell goods abroad", Category: "Trade"},
			{Word: "import", Parts: []string{"in-", "port"}, Gloss: "to carry in", Meaning: "to bring goods from abroad", Category: "Trade"},
			{Word: "inspect", Parts: []string{"in-", "spect"}, Gloss: "to look into", Meaning: "to examine closely", Category: "Investigation"},
			{Word: "respect", Parts: []string{"re-", "spect"}, Gloss: "to look again (at)", Meaning: "to admire deeply", Category: "Esteem"},
			{Word: "prospect", Parts: []string{"pro-", "spect"}, Gloss: "to look forward", Meaning: "a likely future outcome", Category: "Forecast"},
			{Word: "spectacle", Parts: []string{"spect", "-acle"}, Gloss: "a thing to look at", Meaning: "an impressive sight", Category: "Event"},
			{Word: "submit", Parts: []string{"sub-", "mit"}, Gloss: "to send under", Meaning: "to hand in", Category: "Action"},
			{Word: "transmit", Parts: []string{"trans-", "mit"}, Gloss: "to send across", Meaning: "to send a signal", Category: "Communication"},
			{Word: "mission", Parts: []string{"mit", "-ion"}, Gloss: "act of sending", Meaning: "an assigned task", Category: "Work"},
			{Word: "permit", Parts: []string{"per-", "mit"}, Gloss: "to send through", Meaning: "to allow", Category: "Approval"},
			{Word: "predict", Parts: []string{"pre-", "dict"}, Gloss: "to say before", Meaning: "to foretell", Category: "Thinking"},
			{Word: "review", Parts: []string{"re-", "vis"}, Gloss: "to see again", Meaning: "to look over again", Category: "Evaluation"},
			{Word: "telephone", Parts: []string{"tele-", "phon"}, Gloss: "far sound", Meaning: "a device for talking at a distance", Category: "Communication"},
			{Word: "vision", Parts: []string{"vis", "-ion"}, Gloss: "act of seeing", Meaning: "the ability to see", Category: "Sense"},
			{Word: "invisible", Parts: []string{"in-neg", "vis", "-able"}, Gloss: "not able to be seen", Meaning: "impossible to see", Category: "State"},
			{Word: "progress", Parts: []string{"pro-", "gress"}, Gloss: "to go forward", Meaning: "forward movement", Category: "Development"},
			{Word: "describe", Parts: []string{"de-", "scrib"}, Gloss: "to write down", Meaning: "to give an account in words", Category: "Expression"},
			{Word: "compose", Parts: []string{"con-", "pon"}, Gloss: "to place together", Meaning: "to create by putting parts together", Category: "Creation"},
			{Word: "produce", Parts: []string{"pro-", "duc"}, Gloss: "to lead forward", Meaning: "to make or manufacture", Category: "Production"},
		},
		Levels: []Level{
			{ID: "level1", Title: `The "Carry" Group`, Icon: "port", Words: []string{"transport", "report", "portable", "export", "import"}, Unlocks: "level2"},
			{ID: "level2", Title: `The "Look" Group`, Icon: "spect", Words: []string{"inspect", "respect", "prospect", "spectacle"}, Unlocks: "level3"},
			{ID: "level3", Title: `The "Send" Group`, Icon: "mit", Words: []string{"submit", "transmit", "mission", "permit"}, Unlocks: "level4"},
			{ID: "level4", Title: `"Say" and "See"`, Icon: "dict", Words: []string{"predict", "review", "vision", "invisible"}, Unlocks: "level5"},
			{ID: "level5", Title: `"Write" and "Go"`, Icon: "scrib", Words: []string{"describe", "progress"}, Unlocks: "level6"},
			{ID: "level6", Title: `"Place" and "Lead"`, Icon: "pon", Words: []string{"compose", "produce"}},
		},
	}
}
