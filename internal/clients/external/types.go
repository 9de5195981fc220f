package external

// Wire payloads for the upstream bestiary API. The upstream lists
// resources as name/url references and serves full records at the
// referenced URLs.

type countPayload struct {
	Count int `json:"count"`
}

type listPayload struct {
	Results []resourceRef `json:"results"`
}

type resourceRef struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type statValuePayload struct {
	Axis      resourceRef `json:"axis"`
	BaseValue int         `json:"base_value"`
}

type talentEntryPayload struct {
	Talent   resourceRef `json:"talent"`
	IsHidden bool        `json:"is_hidden"`
}

type speciesPayload struct {
	ID          int                  `json:"id"`
	Name        string               `json:"name"`
	PortraitURL string               `json:"portrait_url"`
	Stats       []statValuePayload   `json:"stats"`
	// FemaleEighths uses the upstream scale: -1 sexless, 0 male only,
	// 8 female only, each unit worth 12.5 percent.
	FemaleEighths    int                  `json:"female_eighths"`
	IsUniversalDonor bool                 `json:"is_universal_donor"`
	KinGroups        []resourceRef        `json:"kin_groups"`
	Talents          []talentEntryPayload `json:"talents"`
}

type temperamentPayload struct {
	ID          int          `json:"id"`
	Name        string       `json:"name"`
	RaisedStat  *resourceRef `json:"raised_stat"`
	LoweredStat *resourceRef `json:"lowered_stat"`
}

type kinGroupPayload struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}
