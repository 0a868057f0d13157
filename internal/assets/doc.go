// Package assets provides the base stylesheets written into homework pages.
//
//	AssetLoader (interface)
//	    ├── EmbeddedLoader  built-in styles (default, print) via go:embed
//	    ├── DirLoader       {basePath}/styles/{name}.css on disk
//	    └── AssetResolver   DirLoader first, EmbeddedLoader on not-found
//
// A custom directory can therefore override a built-in style by name or add
// new ones. Style names are restricted by ValidateStyleName, and DirLoader
// opens files with os.OpenInRoot so links cannot leave the styles directory.
package assets
