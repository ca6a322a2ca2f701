package web

import (
	"embed"
)

//go:embed app.js
var App string

//go:embed static
var Static embed.FS

//go:embed broken.js
var Broken string
