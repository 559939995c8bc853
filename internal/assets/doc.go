// Package assets provides the starter CV template sets and sample candidate
// data. Template sets can be loaded from embedded files or from a custom
// directory on disk.
//
// # Loader Architecture
//
//	AssetLoader (interface)
//	    │
//	    ├── EmbeddedLoader    - loads from go:embed filesystem (built-in sets)
//	    ├── FilesystemLoader  - loads from custom directory on disk
//	    └── AssetResolver     - combines both with custom-first fallback
//
// AssetResolver tries the custom FilesystemLoader first, falling back to the
// EmbeddedLoader when the set is not found, so a directory can override one
// set and keep the others.
//
// # Directory Structure
//
//	{basePath}/
//	└── {name}/
//	    ├── template.html        # HTML template, or
//	    ├── template.md          # Markdown template
//	    └── style.css            # optional stylesheet
//
// # Security
//
// Set names are validated to prevent path traversal attacks.
// FilesystemLoader resolves symlinks and verifies paths stay within basePath.
package assets
