package provider

// DictionaryResult is the structured result from a dictionary API provider.
// Phonetic and AudioURL are the best single candidates picked by the
// adapter; Definitions preserves every definition so the client can offer a
// choice.
type DictionaryResult struct {
	Word        string
	Phonetic    *string
	AudioURL    *string
	Definitions []DefinitionResult
}

// DefinitionResult is a single definition from an external dictionary.
type DefinitionResult struct {
	Text         string
	PartOfSpeech *string
	Example      *string
}
