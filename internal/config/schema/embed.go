package schema

import _ "embed"

//go:embed pack-config.schema.json
var ConfigSchema []byte

//go:embed repositories.schema.json
var RepositoriesSchema []byte
