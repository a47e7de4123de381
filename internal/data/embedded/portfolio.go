// Package embedded provides access to the data files compiled into the binary.
package embedded

import _ "embed"

// PortfolioData contains the bundled portfolio fixture used when live
// project and award records are unavailable.
//
//go:embed portfolio.json
var PortfolioData []byte

// DeveloperViewData contains the markdown shown by the hidden dev command.
//
//go:embed developer.md
var DeveloperViewData []byte
