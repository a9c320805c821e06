// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package catalog

import _ "embed"

// defaultCatalog ships the stock configuration so the binary works without
// an external catalog file.
//
//go:embed defaults.yaml
var defaultCatalog []byte
