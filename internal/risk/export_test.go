package risk

// CleanModelJSON is exported for testing.
var CleanModelJSON = cleanModelJSON

// BuildPrompt is exported for testing.
var BuildPrompt = buildPrompt
