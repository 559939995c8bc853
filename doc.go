// Package cv2docx renders CV templates against candidate data and converts
// the resulting HTML into word-processing documents (.docx).
//
// # Quick Start
//
// Create a converter, then render and convert in one step:
//
//	conv, err := cv2docx.NewConverter()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := conv.Generate(ctx, cv2docx.GenerateInput{
//	    Template: "<h1>{{name}}</h1><ul>{{#each skills}}<li>{{this}}</li>{{/each}}</ul>",
//	    Data:     map[string]any{"name": "Jane Doe", "skills": []any{"Go", "SQL"}},
//	    CSS:      "h1 { color: #1f4e79; text-align: center; }",
//	    Filename: "jane-doe",
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	os.WriteFile(result.Document.Filename, result.Document.Content, 0644)
//
// The result also carries the rendered HTML (result.HTML) and the template
// constructs that did not resolve (result.Misses). Misses never fail a
// render: unresolved placeholders are kept verbatim, unresolved loops
// render nothing.
//
// # Template Syntax
//
//	{{path}}                    value at path, e.g. {{contact.email}} or {{jobs[0].title}}
//	{{#each path}}...{{/each}}  body repeated per sequence item, nestable
//	{{this}} {{this.field}}     current loop item, or a field of it
//	{{@index}}                  zero-based index of the current loop item
//
// Inside a loop body, paths resolve against the current item only.
//
// # Conversion Pipeline
//
// Generation follows these stages:
//
//  1. Template expansion (loops, then placeholders); Markdown templates are
//     expanded first and converted to HTML by goldmark afterwards
//  2. HTML walk: headings, paragraphs, lists, preformatted text and images,
//     with styles from the stylesheet, <style> elements and style attributes
//  3. Document model: one block per element, images read from the asset root
//  4. Packaging: an in-memory archive, byte-identical for identical inputs
//
// # Configuration
//
// Use functional options to customize the converter:
//
//	conv, err := cv2docx.NewConverter(
//	    cv2docx.WithDefaults(cv2docx.Defaults{Font: "Georgia", Size: 24}),
//	    cv2docx.WithAssetRoot("/srv/cv/public"),
//	    cv2docx.WithImageSize(320, 240),
//	)
//
// A configuration file loaded by the command-line tool can be applied with
// WithConfig.
//
// # Parallel Processing
//
// A Converter is safe for concurrent use. Batch generates many documents
// with a bounded set of workers and returns results in input order:
//
//	results := conv.Batch(ctx, inputs, cv2docx.ResolvePoolSize(0))
//	for _, r := range results {
//	    if r.Err != nil {
//	        log.Printf("input %d: %v", r.Index, r.Err)
//	    }
//	}
//
// # Data Files
//
// DecodeData reads JSON, YAML and TOML data trees. Variables lists every
// addressable value of a tree along with the template snippet inserting it.
package cv2docx
