package assets

import _ "embed"

// ModelsData is the model catalog offered on the settings screen.
//
//go:embed models.json
var ModelsData []byte
