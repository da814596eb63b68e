package web

import (
	"embed"
	"io/fs"
	"net/http"
)

//go:embed static
var staticAssets embed.FS

func getAssets() http.FileSystem {
	subFS, err := fs.Sub(staticAssets, "static")
	if err != nil {
		panic(err)
	}

	return http.FS(subFS)
}
