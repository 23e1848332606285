package catalog

func japanese() Data {
	return Data{
		Locale: "ja",
		Templates: Templates{
			Prompt:      "「%s」を意味する単語は？",
			Explanation: "語源: %s",
			ReviewTitle: "苦手克服レッスン",
			CoreTitle:   "コア: %s",
		},
		Morphemes: []Morpheme{
			{ID: "tele-", Kind: KindPrefix, Label: "tele-", Meaning: "遠い", Origin: "ギリシャ語"},
			{ID: "trans-", Kind: KindPrefix, Label: "trans-", Meaning: "横切って", Origin: "ラテン語"},
			{ID: "in-", Kind: KindPrefix, Label: "in-", Meaning: "中に", Origin: "ラテン語"},
			{ID: "in-neg", Kind: KindPrefix, Label: "in-", Meaning: "〜でない(否定)", Origin: "ラテン語"},
			{ID: "re-", Kind: KindPrefix, Label: "re-", Meaning: "再び", Origin: "ラテン語"},
			{ID: "pre-", Kind: KindPrefix, Label: "pre-", Meaning: "前に", Origin: "ラテン語"},
			{ID: "sub-", Kind: KindPrefix, Label: "sub-", Meaning: "下に", Origin: "ラテン語"},
			{ID: "de-", Kind: KindPrefix, Label: "de-", Meaning: "下に、離れて", Origin: "ラテン語"},
			{ID: "con-", Kind: KindPrefix, Label: "con-", Meaning: "共に", Origin: "ラテン語"},
			{ID: "pro-", Kind: KindPrefix, Label: "pro-", Meaning: "前へ", Origin: "ラテン語"},
			{ID: "ex-", Kind: KindPrefix, Label: "ex-", Meaning: "外に", Origin: "ラテン語"},
			{ID: "per-", Kind: KindPrefix, Label: "per-", Meaning: "通して", Origin: "ラテン語"},
			{ID: "port", Kind: KindRoot, Label: "port", Meaning: "運ぶ", Origin: "ラテン語"},
			{ID: "spect", Kind: KindRoot, Label: "spect", Meaning: "見る", Origin: "ラテン語"},
			{ID: "phon", Kind: KindRoot, Label: "phon", Meaning: "音", Origin: "ギリシャ語"},
			{ID: "vis", Kind: KindRoot, Label: "vis/vid", Meaning: "見る", Origin: "ラテン語"},
			{ID: "mit", Kind: KindRoot, Label: "mit/mis", Meaning: "送る", Origin: "ラテン語"},
			{ID: "scrib", Kind: KindRoot, Label: "scrib/script", Meaning: "書く", Origin: "ラテン語"},
			{ID: "dict", Kind: KindRoot, Label: "dict", Meaning: "言う", Origin: "ラテン語"},
			{ID: "gress", Kind: KindRoot, Label: "gress", Meaning: "進む", Origin: "ラテン語"},
			{ID: "pon", Kind: KindRoot, Label: "pon/pos", Meaning: "置く", Origin: "ラテン語"},
			{ID: "duc", Kind: KindRoot, Label: "duc/duct", Meaning: "導く", Origin: "ラテン語"},
			{ID: "-able", Kind: KindSuffix, Label: "-able", Meaning: "〜できる", Origin: "ラテン語"},
			{ID: "-tion", Kind: KindSuffix, Label: "-tion", Meaning: "こと", Origin: "ラテン語"},
			{ID: "-ion", Kind: KindSuffix, Label: "-ion", Meaning: "こと(名詞化)", Origin: "ラテン語"},
			{ID: "-or", Kind: KindSuffix, Label: "-or", Meaning: "〜する人", Origin: "ラテン語"},
			{ID: "-acle", Kind: KindSuffix, Label: "-acle", Meaning: "もの", Origin: "ラテン語"},
		},
		Items: []Item{
			{Word: "transport", Parts: []string{"trans-", "port"}, Gloss: "横切って運ぶ", Meaning: "輸送する", Category: "移動"},
			{Word: "report", Parts: []string{"re-", "port"}, Gloss: "後ろへ運ぶ", Meaning: "報告する", Category: "報告"},
			{Word: "portable", Parts: []string{"port", "-able"}, Gloss: "運ぶことができる", Meaning: "携帯用の", Category: "性質"},
			{Word: "export", Parts: []string{"ex-", "port"}, Gloss: "外に運ぶ", Meaning: "輸出する", Category: "貿易"},
			{Word: "import", Parts: []string{"in-", "port"}, Gloss: "中に運ぶ", Meaning: "輸入する", Category: "貿易"},
			{Word: "inspect", Parts: []string{"in-", "spect"}, Gloss: "中を見る", Meaning: "検査する", Category: "調査"},
			{Word: "respect", Parts: []string{"re-", "spect"}, Gloss: "再び見る", Meaning: "尊敬する", Category: "尊敬"},
			{Word: "prospect", Parts: []string{"pro-", "spect"}, Gloss: "前を見る", Meaning: "見込み", Category: "予測"},
			{Word: "spectacle", Parts: []string{"spect", "-acle"}, Gloss: "見るもの", Meaning: "光景", Category: "出来事"},
			{Word: "submit", Parts: []string{"sub-", "mit"}, Gloss: "下に送る", Meaning: "提出する", Category: "行動"},
			{Word: "transmit", Parts: []string{"trans-", "mit"}, Gloss: "横切って送る", Meaning: "送信する", Category: "通信"},
			{Word: "mission", Parts: []string{"mit", "-ion"}, Gloss: "送られたもの", Meaning: "任務", Category: "仕事"},
			{Word: "permit", Parts: []string{"per-", "mit"}, Gloss: "通り抜け送る", Meaning: "許可する", Category: "承認"},
			{Word: "predict", Parts: []string{"pre-", "dict"}, Gloss: "前に言う", Meaning: "予言する", Category: "思考"},
			{Word: "review", Parts: []string{"re-", "vis"}, Gloss: "再び見る", Meaning: "見直す", Category: "評価"},
			{Word: "telephone", Parts: []string{"tele-", "phon"}, Gloss: "遠くの音", Meaning: "電話", Category: "通信"},
			{Word: "vision", Parts: []string{"vis", "-ion"}, Gloss: "見ること", Meaning: "視力、未来像", Category: "感覚"},
			{Word: "invisible", Parts: []string{"in-neg", "vis", "-able"}, Gloss: "見ることができない", Meaning: "見えない", Category: "状態"},
			{Word: "progress", Parts: []string{"pro-", "gress"}, Gloss: "前に進む", Meaning: "進歩", Category: "発展"},
			{Word: "describe", Parts: []string{"de-", "scrib"}, Gloss: "書き下ろす", Meaning: "描写する", Category: "表現"},
			{Word: "compose", Parts: []string{"con-", "pon"}, Gloss: "共に置く", Meaning: "構成する", Category: "創造"},
			{Word: "produce", Parts: []string{"pro-", "duc"}, Gloss: "前へ導き出す", Meaning: "生産する", Category: "生産"},
		},
		Levels: []Level{
			{ID: "level1", Title: "「運ぶ」の仲間", Icon: "port", Words: []string{"transport", "report", "portable", "export", "import"}, Unlocks: "level2"},
			{ID: "level2", Title: "「見る」の仲間", Icon: "spect", Words: []string{"inspect", "respect", "prospect", "spectacle"}, Unlocks: "level3"},
			{ID: "level3", Title: "「送る」の仲間", Icon: "mit", Words: []string{"submit", "transmit", "mission", "permit"}, Unlocks: "level4"},
			{ID: "level4", Title: "「言う」と「見る(vis)」", Icon: "dict", Words: []string{"predict", "review", "vision", "invisible"}, Unlocks: "level5"},
			{ID: "level5", Title: "「書く」と「進む」", Icon: "scrib", Words: []string{"describe", "progress"}, Unlocks: "level6"},
			{ID: "level6", Title: "「置く」と「導く」", Icon: "pon", Words: []string{"compose", "produce"}},
		},
	}
}
