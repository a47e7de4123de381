package embedded

import _ "embed"

// DarkThemeData contains the embedded dark palette YAML data.
//
//go:embed themes/dark.yaml
var DarkThemeData []byte

// LightThemeData contains the embedded light palette YAML data.
//
//go:embed themes/light.yaml
var LightThemeData []byte
