package catalog

import _ "embed"

// The bundled catalog ships with the binary so the service runs without any
// external data files. BITETRAK_CATALOG_PATH points at a replacement JSON
// file with the same schema.
//
//go:embed data/meals.json
var embeddedMeals []byte
