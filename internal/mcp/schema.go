package mcp

// SplitInput defines the input for the textview_split tool.
type SplitInput struct {
	Text string `json:"text" jsonschema:"Text to split into words"`
	Mode string `json:"mode,omitempty" jsonschema:"Word-character class: unicode (default) or ascii"`
}

// SplitOutput defines the output for the textview_split tool.
type SplitOutput struct {
	Words     []string `json:"words" jsonschema:"Words in order of occurrence"`
	Count     int      `json:"count" jsonschema:"Number of words"`
	Repr      string   `json:"repr" jsonschema:"Bounded debug representation of the text"`
	WordsRepr string   `json:"words_repr" jsonschema:"Bounded debug representation of the word list"`
	Summary   string   `json:"summary" jsonschema:"Human-readable summary"`
}

// AtInput defines the input for the textview_at tool.
type AtInput struct {
	Text  string `json:"text" jsonschema:"Text to split into words"`
	Index int    `json:"index" jsonschema:"Zero-based word index; negative values count from the end"`
	Mode  string `json:"mode,omitempty" jsonschema:"Word-character class: unicode (default) or ascii"`
}

// AtOutput defines the output for the textview_at tool.
type AtOutput struct {
	Word  string `json:"word" jsonschema:"The selected word"`
	Index int    `json:"index" jsonschema:"Non-negative position of the word"`
}

// SliceInput defines the input for the textview_slice tool.
type SliceInput struct {
	Text  string `json:"text" jsonschema:"Text to split into words"`
	Range string `json:"range" jsonschema:"Slice in start:stop[:step] form, e.g. 0:3, -3:, ::-1"`
	Mode  string `json:"mode,omitempty" jsonschema:"Word-character class: unicode (default) or ascii"`
}

// SliceOutput defines the output for the textview_slice tool.
type SliceOutput struct {
	Words []string `json:"words" jsonschema:"Selected words"`
	Count int      `json:"count" jsonschema:"Number of selected words"`
	Range string   `json:"range" jsonschema:"Normalized range expression"`
}

// FindInput defines the input for the textview_find tool.
type FindInput struct {
	Text string `json:"text" jsonschema:"Text to split into words"`
	Word string `json:"word" jsonschema:"Word to look for (exact, case-sensitive)"`
	Mode string `json:"mode,omitempty" jsonschema:"Word-character class: unicode (default) or ascii"`
}

// FindOutput defines the output for the textview_find tool.
type FindOutput struct {
	Found bool `json:"found" jsonschema:"Whether the word occurs"`
	Index int  `json:"index" jsonschema:"Position of the first occurrence, or -1"`
}
