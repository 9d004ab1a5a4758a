package freedict

// apiEntry represents a single entry from the dictionaryapi.dev response.
// The API returns an array of entries (one per etymology); only the
// pronunciation fields are decoded.
type apiEntry struct {
	Word      string        `json:"word"`
	Phonetic  string        `json:"phonetic"`
	Phonetics []apiPhonetic `json:"phonetics"`
}

// apiPhonetic represents phonetic/pronunciation data from the API.
type apiPhonetic struct {
	Text  string `json:"text"`
	Audio string `json:"audio"`
}
